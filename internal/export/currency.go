package export

import (
	"fmt"

	"invoicegen/internal/domain"
)

// FormatAmount renders an amount with its currency symbol at two decimal
// places. Unknown codes fall back to "CODE 0.00". Amounts are never
// converted between currencies.
func FormatAmount(amount float64, currencyCode string) string {
	if symbol, ok := domain.CurrencySymbols[currencyCode]; ok {
		return fmt.Sprintf("%s%.2f", symbol, amount)
	}
	if currencyCode == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currencyCode, amount)
}
