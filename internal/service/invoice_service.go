package service

import (
	"sync"

	"invoicegen/internal/config"
	"invoicegen/internal/domain"
)

// LineItemInput is the DTO for adding a generic invoice line item.
type LineItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// LineItemPatch is the DTO for a partial line item update.
type LineItemPatch struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
}

// InvoicePatch is the DTO for a partial invoice header update.
type InvoicePatch struct {
	InvoiceNumber *string `json:"invoice_number"`
	DateIssued    *string `json:"date_issued"`
	DateDue       *string `json:"date_due"`
	Notes         *string `json:"notes"`
}

// CompanyPatch is the DTO for a partial company update.
type CompanyPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	LogoURL *string `json:"logo_url"`
}

// ClientPatch is the DTO for a partial client update.
type ClientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
}

// PaymentPatch is the DTO for a partial payment update. Only the raw input
// fields are settable; derived fields are always recomputed.
type PaymentPatch struct {
	TaxRate    *float64 `json:"tax_rate"`
	AmountPaid *float64 `json:"amount_paid"`
	Currency   *string  `json:"currency"`
}

// InvoiceService owns the single generic invoice under edit and keeps its
// derived fields consistent: every mutation recomputes aggregates as its
// final step before returning.
type InvoiceService interface {
	Get() domain.Invoice
	UpdateInvoice(patch InvoicePatch) domain.Invoice
	UpdateCompany(patch CompanyPatch) domain.Invoice
	UpdateClient(patch ClientPatch) domain.Invoice
	UpdatePayment(patch PaymentPatch) domain.Invoice
	AddItem(input LineItemInput) domain.Invoice
	// UpdateItem merges the patch into the item with the given identity and
	// reports whether it was found. A missing identity is a no-op, not an
	// error; the record is returned unchanged alongside found=false.
	UpdateItem(id string, patch LineItemPatch) (domain.Invoice, bool)
	// RemoveItem deletes the item with the given identity, reporting whether
	// it was found. Missing identities are a no-op.
	RemoveItem(id string) (domain.Invoice, bool)
	Recalculate() domain.Invoice
	// Reset discards the current record and replaces it with fresh defaults.
	// Irreversible.
	Reset() domain.Invoice
	// Readiness reports advisory submit-blocking problems as human-readable
	// messages. An empty slice means the invoice is ready.
	Readiness() []string
}

type invoiceService struct {
	mu       sync.Mutex
	defaults config.InvoiceConfig
	invoice  domain.Invoice
}

// NewInvoiceService creates an InvoiceService seeded with a fresh default
// invoice: generated number, today's issue date and a due date offset by the
// configured number of days.
func NewInvoiceService(defaults config.InvoiceConfig) InvoiceService {
	s := &invoiceService{defaults: defaults}
	s.invoice = s.freshInvoice()
	return s
}

func (s *invoiceService) freshInvoice() domain.Invoice {
	return domain.Invoice{
		InvoiceNumber: domain.NewInvoiceNumber(s.defaults.NumberPrefix),
		DateIssued:    domain.Today(),
		DateDue:       domain.DueDate(s.defaults.DueInDays),
		Items:         []domain.LineItem{},
		Payment: domain.PaymentInfo{
			Status:   domain.PaymentStatusUnpaid,
			Currency: s.defaults.Currency,
		},
	}
}

// snapshot returns a copy whose item slice does not alias internal state.
func (s *invoiceService) snapshot() domain.Invoice {
	inv := s.invoice
	inv.Items = make([]domain.LineItem, len(s.invoice.Items))
	copy(inv.Items, s.invoice.Items)
	return inv
}

func (s *invoiceService) recompute() {
	s.invoice.Payment = domain.ComputeTotals(s.invoice.Items, s.invoice.Payment)
}

func (s *invoiceService) Get() domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *invoiceService) UpdateInvoice(patch InvoicePatch) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.InvoiceNumber != nil {
		s.invoice.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.DateIssued != nil {
		s.invoice.DateIssued = *patch.DateIssued
	}
	if patch.DateDue != nil {
		s.invoice.DateDue = *patch.DateDue
	}
	if patch.Notes != nil {
		s.invoice.Notes = *patch.Notes
	}
	s.recompute()
	return s.snapshot()
}

func (s *invoiceService) UpdateCompany(patch CompanyPatch) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.invoice.Company
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.State != nil {
		c.State = *patch.State
	}
	if patch.ZipCode != nil {
		c.ZipCode = *patch.ZipCode
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.LogoURL != nil {
		c.LogoURL = *patch.LogoURL
	}
	s.recompute()
	return s.snapshot()
}

func (s *invoiceService) UpdateClient(patch ClientPatch) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.invoice.Client
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.State != nil {
		c.State = *patch.State
	}
	if patch.ZipCode != nil {
		c.ZipCode = *patch.ZipCode
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	s.recompute()
	return s.snapshot()
}

func (s *invoiceService) UpdatePayment(patch PaymentPatch) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.invoice.Payment
	if patch.TaxRate != nil {
		p.TaxRate = *patch.TaxRate
	}
	if patch.AmountPaid != nil {
		p.AmountPaid = *patch.AmountPaid
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	s.recompute()
	return s.snapshot()
}

func (s *invoiceService) AddItem(input LineItemInput) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.ComputeLineItem(domain.LineItem{
		ID:          domain.NewItemID(),
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
	})
	s.invoice.Items = append(s.invoice.Items, item)
	s.recompute()
	return s.snapshot()
}

func (s *invoiceService) UpdateItem(id string, patch LineItemPatch) (domain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoice.Items {
		if s.invoice.Items[i].ID != id {
			continue
		}
		item := s.invoice.Items[i]
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
		}
		s.invoice.Items[i] = domain.ComputeLineItem(item)
		s.recompute()
		return s.snapshot(), true
	}
	return s.snapshot(), false
}

func (s *invoiceService) RemoveItem(id string) (domain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoice.Items {
		if s.invoice.Items[i].ID != id {
			continue
		}
		s.invoice.Items = append(s.invoice.Items[:i], s.invoice.Items[i+1:]...)
		s.recompute()
		return s.snapshot(), true
	}
	return s.snapshot(), false
}

func (s *invoiceService) Recalculate() domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recompute()
	return s.snapshot()
}

func (s *invoiceService) Reset() domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice = s.freshInvoice()
	return s.snapshot()
}

func (s *invoiceService) Readiness() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var problems []string
	if s.invoice.Company.Name == "" {
		problems = append(problems, "company name is required")
	}
	if s.invoice.Client.Name == "" {
		problems = append(problems, "client name is required")
	}
	if s.invoice.Client.Email == "" {
		problems = append(problems, "client email is required")
	}
	if len(s.invoice.Items) == 0 {
		problems = append(problems, "at least one line item is required")
	}
	return problems
}
