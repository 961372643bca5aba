package invoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen/internal/domain"
	"invoicegen/internal/validator/invoice"
)

func findFormat(t *testing.T, key string) invoice.RequiredValidator {
	t.Helper()
	for _, v := range invoice.FormatValidators() {
		if v.RuleKey() == key {
			return v
		}
	}
	t.Fatalf("no validator registered under %s", key)
	return nil
}

func TestFormatSellerGSTIN(t *testing.T) {
	v := findFormat(t, "fmt.seller.gstin")

	tests := []struct {
		name   string
		gstin  string
		passed bool
	}{
		{"valid", "27AAPFU0939F1ZV", true},
		{"too short", "27AAPFU0939F1Z", false},
		{"lowercase", "27aapfu0939f1zv", false},
		{"missing Z at 14th", "27AAPFU0939F1XV", false},
		{"empty skips check", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &domain.GSTInvoice{Seller: domain.Party{GSTIN: tt.gstin}}
			results := v.Validate(context.Background(), inv)
			require.Len(t, results, 1)
			assert.Equal(t, tt.passed, results[0].Passed)
		})
	}
}

func TestFormatStateCode(t *testing.T) {
	v := findFormat(t, "fmt.buyer.state_code")

	tests := []struct {
		name   string
		code   string
		passed bool
	}{
		{"valid low", "01", true},
		{"valid high", "38", true},
		{"zero", "00", false},
		{"out of range", "39", false},
		{"one digit", "7", false},
		{"non-numeric", "AB", false},
		{"empty skips check", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &domain.GSTInvoice{Buyer: domain.Party{StateCode: tt.code}}
			results := v.Validate(context.Background(), inv)
			require.Len(t, results, 1)
			assert.Equal(t, tt.passed, results[0].Passed)
		})
	}
}

func TestFormatInvoiceDate(t *testing.T) {
	v := findFormat(t, "fmt.invoice.date")

	tests := []struct {
		name   string
		date   string
		passed bool
	}{
		{"iso", "2026-09-01", true},
		{"indian", "01-09-2026", true},
		{"slashes", "01/09/2026", true},
		{"long form", "Jan 02, 2026", true},
		{"garbage", "not-a-date", false},
		{"empty skips check", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &domain.GSTInvoice{InvoiceDate: tt.date}
			results := v.Validate(context.Background(), inv)
			require.Len(t, results, 1)
			assert.Equal(t, tt.passed, results[0].Passed)
		})
	}
}

func TestFormatIFSCAndAccountNumber(t *testing.T) {
	ifsc := findFormat(t, "fmt.bank.ifsc")
	acct := findFormat(t, "fmt.bank.account_no")

	inv := &domain.GSTInvoice{BankDetails: domain.BankDetails{
		IFSCCode:      "HDFC0001234",
		AccountNumber: "123456789012",
	}}
	assert.True(t, ifsc.Validate(context.Background(), inv)[0].Passed)
	assert.True(t, acct.Validate(context.Background(), inv)[0].Passed)

	bad := &domain.GSTInvoice{BankDetails: domain.BankDetails{
		IFSCCode:      "HDFC1001234",
		AccountNumber: "12345",
	}}
	assert.False(t, ifsc.Validate(context.Background(), bad)[0].Passed)
	assert.False(t, acct.Validate(context.Background(), bad)[0].Passed)
}

func TestFormatHSN_PerItem(t *testing.T) {
	v := findFormat(t, "fmt.item.hsn_code")
	inv := &domain.GSTInvoice{
		Items: []domain.GSTItem{
			{HSNCode: "7306"},
			{HSNCode: "12345678"},
			{HSNCode: "123"},
			{HSNCode: "73A6"},
			{HSNCode: ""},
		},
	}

	results := v.Validate(context.Background(), inv)

	require.Len(t, results, 5)
	assert.True(t, results[0].Passed)
	assert.True(t, results[1].Passed)
	assert.False(t, results[2].Passed)
	assert.False(t, results[3].Passed)
	assert.True(t, results[4].Passed) // empty is a requiredness concern
}
