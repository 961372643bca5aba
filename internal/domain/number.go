package domain

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// NewItemID returns a fresh opaque identity for a line item. Uniqueness is
// only required within one invoice's lifetime.
func NewItemID() string {
	return uuid.NewString()
}

// NewInvoiceNumber generates a display invoice number of the form
// PREFIX-YYMM-NNNNN. The format is informational; nothing downstream
// depends on it.
func NewInvoiceNumber(prefix string) string {
	if prefix == "" {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-%s-%05d", prefix, time.Now().Format("0601"), 10000+rand.IntN(90000))
}

// Today returns today's date in ISO form, the canonical date format for
// invoice records.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// DueDate returns the date the given number of days from now in ISO form.
func DueDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
