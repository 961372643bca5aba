package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicegen/internal/domain"
)

func TestComputeLineItem(t *testing.T) {
	item := domain.ComputeLineItem(domain.LineItem{Quantity: 3, UnitPrice: 25.50})
	assert.InDelta(t, 76.50, item.Amount, 1e-9)
}

func TestComputeLineItem_ZeroAndNegative(t *testing.T) {
	zero := domain.ComputeLineItem(domain.LineItem{Quantity: 0, UnitPrice: 100})
	assert.Equal(t, 0.0, zero.Amount)

	neg := domain.ComputeLineItem(domain.LineItem{Quantity: 2, UnitPrice: -50})
	assert.InDelta(t, -100.0, neg.Amount, 1e-9)
}

func TestComputeTotals_WithTax(t *testing.T) {
	items := []domain.LineItem{
		domain.ComputeLineItem(domain.LineItem{Quantity: 2, UnitPrice: 100}),
		domain.ComputeLineItem(domain.LineItem{Quantity: 1, UnitPrice: 50}),
	}
	p := domain.ComputeTotals(items, domain.PaymentInfo{TaxRate: 10})

	assert.InDelta(t, 250.0, p.Subtotal, 1e-9)
	assert.InDelta(t, 25.0, p.TaxAmount, 1e-9)
	assert.InDelta(t, 275.0, p.Total, 1e-9)
	assert.InDelta(t, 275.0, p.BalanceDue, 1e-9)
	assert.Equal(t, domain.PaymentStatusUnpaid, p.Status)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	p := domain.ComputeTotals(nil, domain.PaymentInfo{TaxRate: 18})

	assert.Equal(t, 0.0, p.Subtotal)
	assert.Equal(t, 0.0, p.TaxAmount)
	assert.Equal(t, 0.0, p.Total)
	assert.Equal(t, 0.0, p.BalanceDue)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	items := []domain.LineItem{
		domain.ComputeLineItem(domain.LineItem{Quantity: 4, UnitPrice: 12.25}),
	}
	first := domain.ComputeTotals(items, domain.PaymentInfo{TaxRate: 5, AmountPaid: 10})
	second := domain.ComputeTotals(items, first)

	assert.Equal(t, first, second)
}

func TestComputeTotals_Overpayment(t *testing.T) {
	items := []domain.LineItem{
		domain.ComputeLineItem(domain.LineItem{Quantity: 1, UnitPrice: 100}),
	}
	p := domain.ComputeTotals(items, domain.PaymentInfo{AmountPaid: 150})

	assert.InDelta(t, -50.0, p.BalanceDue, 1e-9)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
}

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		amountPaid float64
		want       domain.PaymentStatus
	}{
		{"nothing paid", 100, 0, domain.PaymentStatusUnpaid},
		{"partially paid", 100, 99.99, domain.PaymentStatusPartial},
		{"exactly paid", 100, 100, domain.PaymentStatusPaid},
		{"overpaid", 100, 150, domain.PaymentStatusPaid},
		{"one cent short", 100, 99.99999, domain.PaymentStatusPartial},
		{"zero total zero paid", 0, 0, domain.PaymentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PaymentStatusFor(tt.total, tt.amountPaid))
		})
	}
}

func TestComputeGSTItem_IntraState(t *testing.T) {
	item := domain.ComputeGSTItem(domain.GSTItem{
		Quantity:    10,
		UnitPrice:   100,
		CGSTPercent: 9,
		SGSTPercent: 9,
		IGSTPercent: 18,
	}, false)

	assert.InDelta(t, 1000.0, item.TaxableValue, 1e-9)
	assert.InDelta(t, 90.0, item.CGSTAmount, 1e-9)
	assert.InDelta(t, 90.0, item.SGSTAmount, 1e-9)
	assert.Equal(t, 0.0, item.IGSTAmount)
	assert.InDelta(t, 1180.0, item.Total, 1e-9)
}

func TestComputeGSTItem_InterState(t *testing.T) {
	item := domain.ComputeGSTItem(domain.GSTItem{
		Quantity:    10,
		UnitPrice:   100,
		CGSTPercent: 9,
		SGSTPercent: 9,
		IGSTPercent: 18,
	}, true)

	assert.InDelta(t, 1000.0, item.TaxableValue, 1e-9)
	assert.Equal(t, 0.0, item.CGSTAmount)
	assert.Equal(t, 0.0, item.SGSTAmount)
	assert.InDelta(t, 180.0, item.IGSTAmount, 1e-9)
	assert.InDelta(t, 1180.0, item.Total, 1e-9)
}

func TestComputeGSTItem_RegimeSwitchClearsOldAmounts(t *testing.T) {
	item := domain.ComputeGSTItem(domain.GSTItem{
		Quantity:    2,
		UnitPrice:   500,
		CGSTPercent: 6,
		SGSTPercent: 6,
		IGSTPercent: 12,
	}, false)
	assert.InDelta(t, 60.0, item.CGSTAmount, 1e-9)

	// Recompute the same item under the other regime; stale amounts must not
	// survive the switch.
	item = domain.ComputeGSTItem(item, true)
	assert.Equal(t, 0.0, item.CGSTAmount)
	assert.Equal(t, 0.0, item.SGSTAmount)
	assert.InDelta(t, 120.0, item.IGSTAmount, 1e-9)
	assert.InDelta(t, 1120.0, item.Total, 1e-9)
}

func TestComputeGSTTotals(t *testing.T) {
	items := []domain.GSTItem{
		domain.ComputeGSTItem(domain.GSTItem{Quantity: 1, UnitPrice: 1000, CGSTPercent: 9, SGSTPercent: 9}, false),
		domain.ComputeGSTItem(domain.GSTItem{Quantity: 2, UnitPrice: 250, CGSTPercent: 2.5, SGSTPercent: 2.5}, false),
	}
	totals := domain.ComputeGSTTotals(items)

	assert.InDelta(t, 1500.0, totals.SubTotal, 1e-9)
	assert.InDelta(t, 102.5, totals.CGSTTotal, 1e-9)
	assert.InDelta(t, 102.5, totals.SGSTTotal, 1e-9)
	assert.Equal(t, 0.0, totals.IGSTTotal)
	assert.InDelta(t, 205.0, totals.TotalGST, 1e-9)
	assert.InDelta(t, 1705.0, totals.GrandTotal, 1e-9)
}

func TestComputeGSTTotals_Empty(t *testing.T) {
	totals := domain.ComputeGSTTotals(nil)
	assert.Equal(t, domain.GSTTotals{}, totals)
}
