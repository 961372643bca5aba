package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"invoicegen/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var invoiceColumns = []string{
	"Description",
	"Quantity",
	"Unit Price",
	"Amount",
}

var gstColumns = []string{
	"Description",
	"HSN/SAC",
	"Quantity",
	"Unit",
	"Unit Price",
	"Taxable Value",
	"CGST %",
	"CGST Amount",
	"SGST %",
	"SGST Amount",
	"IGST %",
	"IGST Amount",
	"Total",
}

// Writer exports invoice line items as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteInvoice writes the header row and one row per generic line item,
// followed by a totals row.
func (w *Writer) WriteInvoice(inv *domain.Invoice) error {
	if err := w.csv.Write(invoiceColumns); err != nil {
		return err
	}
	for i := range inv.Items {
		item := &inv.Items[i]
		row := []string{
			item.Description,
			formatQty(item.Quantity),
			formatMoney(item.UnitPrice),
			formatMoney(item.Amount),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	totals := []string{"Total", "", "", formatMoney(inv.Payment.Total)}
	return w.csv.Write(totals)
}

// WriteGSTInvoice writes the header row and one row per GST line item,
// followed by a totals row.
func (w *Writer) WriteGSTInvoice(inv *domain.GSTInvoice) error {
	if err := w.csv.Write(gstColumns); err != nil {
		return err
	}
	for i := range inv.Items {
		item := &inv.Items[i]
		row := []string{
			item.Description,
			item.HSNCode,
			formatQty(item.Quantity),
			item.Unit,
			formatMoney(item.UnitPrice),
			formatMoney(item.TaxableValue),
			formatQty(item.CGSTPercent),
			formatMoney(item.CGSTAmount),
			formatQty(item.SGSTPercent),
			formatMoney(item.SGSTAmount),
			formatQty(item.IGSTPercent),
			formatMoney(item.IGSTAmount),
			formatMoney(item.Total),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	totals := make([]string, len(gstColumns))
	totals[0] = "Total"
	totals[5] = formatMoney(inv.SubTotal)
	totals[7] = formatMoney(inv.CGSTTotal)
	totals[9] = formatMoney(inv.SGSTTotal)
	totals[11] = formatMoney(inv.IGSTTotal)
	totals[12] = formatMoney(inv.GrandTotal)
	return w.csv.Write(totals)
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an invoice number for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_invoice_number}_{YYYY-MM-DD}.{ext}
func BuildFilename(invoiceNumber, ext string) string {
	sanitized := SanitizeFilename(invoiceNumber)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
