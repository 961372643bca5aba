package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/domain"
	"invoicegen/internal/export"
)

func TestWriteInvoice(t *testing.T) {
	inv := &domain.Invoice{
		Items: []domain.LineItem{
			domain.ComputeLineItem(domain.LineItem{Description: "Design work", Quantity: 10, UnitPrice: 75}),
			domain.ComputeLineItem(domain.LineItem{Description: "Hosting", Quantity: 1, UnitPrice: 20}),
		},
	}
	inv.Payment = domain.ComputeTotals(inv.Items, domain.PaymentInfo{TaxRate: 10})

	var buf bytes.Buffer
	w := export.NewWriter(&buf)
	require.NoError(t, w.WriteInvoice(inv))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 items + totals

	assert.Equal(t, []string{"Description", "Quantity", "Unit Price", "Amount"}, rows[0])
	assert.Equal(t, []string{"Design work", "10", "75.00", "750.00"}, rows[1])
	assert.Equal(t, []string{"Hosting", "1", "20.00", "20.00"}, rows[2])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "847.00", rows[3][3])
}

func TestWriteInvoice_EmptyItems(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewWriter(&buf)
	require.NoError(t, w.WriteInvoice(&domain.Invoice{}))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + totals
	assert.Equal(t, "0.00", rows[1][3])
}

func TestWriteGSTInvoice(t *testing.T) {
	items := []domain.GSTItem{
		domain.ComputeGSTItem(domain.GSTItem{
			Description: "Steel pipes", HSNCode: "7306", Quantity: 10, Unit: "NOS",
			UnitPrice: 100, CGSTPercent: 9, SGSTPercent: 9, IGSTPercent: 18,
		}, false),
	}
	inv := &domain.GSTInvoice{Items: items, GSTTotals: domain.ComputeGSTTotals(items)}

	var buf bytes.Buffer
	w := export.NewWriter(&buf)
	require.NoError(t, w.WriteGSTInvoice(inv))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Len(t, rows[0], 13)
	assert.Equal(t, "HSN/SAC", rows[0][1])

	item := rows[1]
	assert.Equal(t, "Steel pipes", item[0])
	assert.Equal(t, "7306", item[1])
	assert.Equal(t, "1000.00", item[5])
	assert.Equal(t, "90.00", item[7])  // CGST amount
	assert.Equal(t, "90.00", item[9])  // SGST amount
	assert.Equal(t, "0.00", item[11])  // IGST amount
	assert.Equal(t, "1180.00", item[12])

	totals := rows[2]
	assert.Equal(t, "Total", totals[0])
	assert.Equal(t, "1000.00", totals[5])
	assert.Equal(t, "90.00", totals[7])
	assert.Equal(t, "90.00", totals[9])
	assert.Equal(t, "0.00", totals[11])
	assert.Equal(t, "1180.00", totals[12])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INV-2609-12345", "INV-2609-12345"},
		{"INV/26 09#12345", "INV_26_09_12345"},
		{"___weird___", "weird"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, export.SanitizeFilename(tt.in))
	}
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename("INV/2609", "csv")
	assert.Regexp(t, `^INV_2609_\d{4}-\d{2}-\d{2}\.csv$`, name)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1234.50", export.FormatAmount(1234.5, "USD"))
	assert.Equal(t, "₹99.00", export.FormatAmount(99, "INR"))
	assert.Equal(t, "XYZ 10.00", export.FormatAmount(10, "XYZ"))
	assert.Equal(t, "10.00", export.FormatAmount(10, ""))
}
