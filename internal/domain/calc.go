package domain

// The derivation functions below are total: zero or negative quantities,
// prices and percentages flow through arithmetically and never error.
// Validation of sensible inputs is an outer, advisory concern.

// ComputeLineItem returns the item with its derived amount set.
func ComputeLineItem(item LineItem) LineItem {
	item.Amount = item.Quantity * item.UnitPrice
	return item
}

// ComputeGSTItem returns the item with taxable value, tax amounts and total
// derived. The inter-state flag decides the regime: IGST alone when true,
// CGST+SGST when false. The losing regime's amounts are zeroed so that
// exactly one regime is ever non-zero on a freshly computed item.
func ComputeGSTItem(item GSTItem, isInterState bool) GSTItem {
	item.TaxableValue = item.Quantity * item.UnitPrice

	if isInterState {
		item.IGSTAmount = item.TaxableValue * item.IGSTPercent / 100
		item.CGSTAmount = 0
		item.SGSTAmount = 0
		item.Total = item.TaxableValue + item.IGSTAmount
		return item
	}

	item.CGSTAmount = item.TaxableValue * item.CGSTPercent / 100
	item.SGSTAmount = item.TaxableValue * item.SGSTPercent / 100
	item.IGSTAmount = 0
	item.Total = item.TaxableValue + item.CGSTAmount + item.SGSTAmount
	return item
}

// ComputeTotals reduces the item collection into the payment block's derived
// fields. It reads subtotal inputs only from items and the given payment's
// TaxRate, AmountPaid and Currency, so repeated calls over unchanged items
// yield identical output.
func ComputeTotals(items []LineItem, payment PaymentInfo) PaymentInfo {
	var subtotal float64
	for i := range items {
		subtotal += items[i].Amount
	}
	payment.Subtotal = subtotal
	payment.TaxAmount = subtotal * payment.TaxRate / 100
	payment.Total = payment.Subtotal + payment.TaxAmount
	payment.BalanceDue = payment.Total - payment.AmountPaid
	payment.Status = PaymentStatusFor(payment.Total, payment.AmountPaid)
	return payment
}

// PaymentStatusFor derives the payment status from total and amount paid.
// An overpayment stays "paid" with a negative balance; the balance is
// deliberately not clamped to zero.
func PaymentStatusFor(total, amountPaid float64) PaymentStatus {
	switch {
	case total-amountPaid <= 0:
		return PaymentStatusPaid
	case amountPaid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}

// ComputeGSTTotals reduces the item collection into invoice-level aggregates.
// An empty collection yields all zeroes.
func ComputeGSTTotals(items []GSTItem) GSTTotals {
	var t GSTTotals
	for i := range items {
		item := &items[i]
		t.SubTotal += item.TaxableValue
		t.CGSTTotal += item.CGSTAmount
		t.SGSTTotal += item.SGSTAmount
		t.IGSTTotal += item.IGSTAmount
	}
	t.TotalGST = t.CGSTTotal + t.SGSTTotal + t.IGSTTotal
	t.GrandTotal = t.SubTotal + t.TotalGST
	return t
}
