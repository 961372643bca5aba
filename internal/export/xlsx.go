package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoicegen/internal/domain"
)

const sheetName = "Invoice"

// itemHeaderRow is the worksheet row where the item table header lands.
const itemHeaderRow = 12

// BuildGSTWorkbook renders a GST invoice as an XLSX workbook: header block,
// seller/buyer blocks, item table and totals. This is the printable-document
// collaborator; it reads the record and derives nothing.
func BuildGSTWorkbook(inv *domain.GSTInvoice) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	setCell := func(cell string, value interface{}) {
		// excelize only errors on malformed coordinates, which are constant here.
		_ = f.SetCellValue(sheetName, cell, value)
	}

	setCell("A1", "TAX INVOICE")
	setCell("A2", "Invoice Number")
	setCell("B2", inv.InvoiceNumber)
	setCell("A3", "Invoice Date")
	setCell("B3", inv.InvoiceDate)
	setCell("A4", "Place of Supply")
	setCell("B4", inv.PlaceOfSupply)
	setCell("A5", "Supply Type")
	setCell("B5", supplyTypeLabel(inv.IsInterState))

	setCell("A7", "Seller")
	setCell("B7", inv.Seller.Name)
	setCell("A8", "GSTIN")
	setCell("B8", inv.Seller.GSTIN)
	setCell("A9", "Address")
	setCell("B9", inv.Seller.Address)

	setCell("D7", "Buyer")
	setCell("E7", inv.Buyer.Name)
	setCell("D8", "GSTIN")
	setCell("E8", inv.Buyer.GSTIN)
	setCell("D9", "Address")
	setCell("E9", inv.Buyer.Address)

	headers := []string{"Description", "HSN/SAC", "Qty", "Unit", "Unit Price", "Taxable Value", "CGST", "SGST", "IGST", "Total"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, itemHeaderRow)
		if err != nil {
			return nil, err
		}
		setCell(cell, h)
	}

	row := itemHeaderRow + 1
	for i := range inv.Items {
		item := &inv.Items[i]
		values := []interface{}{
			item.Description,
			item.HSNCode,
			item.Quantity,
			item.Unit,
			item.UnitPrice,
			item.TaxableValue,
			item.CGSTAmount,
			item.SGSTAmount,
			item.IGSTAmount,
			item.Total,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			setCell(cell, v)
		}
		row++
	}

	row++
	setCell(fmt.Sprintf("A%d", row), "Sub Total")
	setCell(fmt.Sprintf("B%d", row), inv.SubTotal)
	row++
	setCell(fmt.Sprintf("A%d", row), "CGST Total")
	setCell(fmt.Sprintf("B%d", row), inv.CGSTTotal)
	row++
	setCell(fmt.Sprintf("A%d", row), "SGST Total")
	setCell(fmt.Sprintf("B%d", row), inv.SGSTTotal)
	row++
	setCell(fmt.Sprintf("A%d", row), "IGST Total")
	setCell(fmt.Sprintf("B%d", row), inv.IGSTTotal)
	row++
	setCell(fmt.Sprintf("A%d", row), "Total GST")
	setCell(fmt.Sprintf("B%d", row), inv.TotalGST)
	row++
	setCell(fmt.Sprintf("A%d", row), "Grand Total")
	setCell(fmt.Sprintf("B%d", row), inv.GrandTotal)

	if inv.BankDetails.AccountNumber != "" {
		row += 2
		setCell(fmt.Sprintf("A%d", row), "Bank")
		setCell(fmt.Sprintf("B%d", row), inv.BankDetails.BankName)
		row++
		setCell(fmt.Sprintf("A%d", row), "Account Number")
		setCell(fmt.Sprintf("B%d", row), inv.BankDetails.AccountNumber)
		row++
		setCell(fmt.Sprintf("A%d", row), "IFSC")
		setCell(fmt.Sprintf("B%d", row), inv.BankDetails.IFSCCode)
	}

	if inv.Notes != "" {
		row += 2
		setCell(fmt.Sprintf("A%d", row), "Notes")
		setCell(fmt.Sprintf("B%d", row), inv.Notes)
	}

	return f, nil
}

func supplyTypeLabel(isInterState bool) string {
	if isInterState {
		return "Inter-State (IGST)"
	}
	return "Intra-State (CGST + SGST)"
}
