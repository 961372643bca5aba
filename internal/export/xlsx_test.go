package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/domain"
	"invoicegen/internal/export"
)

func sampleGSTInvoice() *domain.GSTInvoice {
	items := []domain.GSTItem{
		domain.ComputeGSTItem(domain.GSTItem{
			Description: "Steel pipes", HSNCode: "7306", Quantity: 10, Unit: "NOS",
			UnitPrice: 100, CGSTPercent: 9, SGSTPercent: 9, IGSTPercent: 18,
		}, false),
	}
	return &domain.GSTInvoice{
		InvoiceNumber: "INV-2609-12345",
		InvoiceDate:   "2026-09-01",
		PlaceOfSupply: "Maharashtra",
		Seller:        domain.Party{Name: "Sharma Traders", GSTIN: "27AAPFU0939F1ZV"},
		Buyer:         domain.Party{Name: "Verma Industries", GSTIN: "29AAGCB7383J1Z4"},
		Items:         items,
		GSTTotals:     domain.ComputeGSTTotals(items),
	}
}

func TestBuildGSTWorkbook(t *testing.T) {
	inv := sampleGSTInvoice()

	f, err := export.BuildGSTWorkbook(inv)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Invoice"}, f.GetSheetList())

	title, err := f.GetCellValue("Invoice", "A1")
	require.NoError(t, err)
	assert.Equal(t, "TAX INVOICE", title)

	number, err := f.GetCellValue("Invoice", "B2")
	require.NoError(t, err)
	assert.Equal(t, "INV-2609-12345", number)

	supplyType, err := f.GetCellValue("Invoice", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Intra-State (CGST + SGST)", supplyType)

	seller, err := f.GetCellValue("Invoice", "B7")
	require.NoError(t, err)
	assert.Equal(t, "Sharma Traders", seller)

	buyer, err := f.GetCellValue("Invoice", "E7")
	require.NoError(t, err)
	assert.Equal(t, "Verma Industries", buyer)

	// Item table header and first row.
	header, err := f.GetCellValue("Invoice", "A12")
	require.NoError(t, err)
	assert.Equal(t, "Description", header)

	desc, err := f.GetCellValue("Invoice", "A13")
	require.NoError(t, err)
	assert.Equal(t, "Steel pipes", desc)

	taxable, err := f.GetCellValue("Invoice", "F13")
	require.NoError(t, err)
	assert.Equal(t, "1000", taxable)
}

func TestBuildGSTWorkbook_InterStateLabel(t *testing.T) {
	inv := sampleGSTInvoice()
	inv.IsInterState = true

	f, err := export.BuildGSTWorkbook(inv)
	require.NoError(t, err)
	defer f.Close()

	supplyType, err := f.GetCellValue("Invoice", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Inter-State (IGST)", supplyType)
}

func TestBuildGSTWorkbook_OmitsEmptyBankBlock(t *testing.T) {
	inv := sampleGSTInvoice()

	f, err := export.BuildGSTWorkbook(inv)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoice")
	require.NoError(t, err)
	for _, row := range rows {
		for _, cell := range row {
			assert.NotEqual(t, "Account Number", cell)
		}
	}
}

func TestBuildGSTWorkbook_IncludesBankBlockWhenSet(t *testing.T) {
	inv := sampleGSTInvoice()
	inv.BankDetails = domain.BankDetails{
		BankName:      "HDFC Bank",
		AccountNumber: "123456789012",
		IFSCCode:      "HDFC0001234",
	}

	f, err := export.BuildGSTWorkbook(inv)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoice")
	require.NoError(t, err)
	var found bool
	for _, row := range rows {
		for _, cell := range row {
			if cell == "123456789012" {
				found = true
			}
		}
	}
	assert.True(t, found)
}
