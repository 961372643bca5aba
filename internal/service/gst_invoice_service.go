package service

import (
	"sync"

	"invoicegen/internal/config"
	"invoicegen/internal/domain"
)

// GSTItemInput is the DTO for adding a GST invoice line item.
type GSTItemInput struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	CGSTPercent float64 `json:"cgst_percent"`
	SGSTPercent float64 `json:"sgst_percent"`
	IGSTPercent float64 `json:"igst_percent"`
}

// GSTItemPatch is the DTO for a partial GST line item update.
type GSTItemPatch struct {
	Description *string  `json:"description"`
	HSNCode     *string  `json:"hsn_code"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	UnitPrice   *float64 `json:"unit_price"`
	CGSTPercent *float64 `json:"cgst_percent"`
	SGSTPercent *float64 `json:"sgst_percent"`
	IGSTPercent *float64 `json:"igst_percent"`
}

// PartyPatch is the DTO for a partial seller or buyer update.
type PartyPatch struct {
	Name      *string `json:"name"`
	GSTIN     *string `json:"gstin"`
	Address   *string `json:"address"`
	State     *string `json:"state"`
	StateCode *string `json:"state_code"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// BankDetailsPatch is the DTO for a partial bank details update.
type BankDetailsPatch struct {
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
	BankName      *string `json:"bank_name"`
	BranchName    *string `json:"branch_name"`
	IFSCCode      *string `json:"ifsc_code"`
}

// GSTInvoicePatch is the DTO for a partial GST invoice header update.
// Flipping IsInterState recomputes every item under the new tax regime so
// that no item carries amounts from the previous regime.
type GSTInvoicePatch struct {
	InvoiceNumber *string           `json:"invoice_number"`
	InvoiceDate   *string           `json:"invoice_date"`
	Seller        *PartyPatch       `json:"seller"`
	Buyer         *PartyPatch       `json:"buyer"`
	PlaceOfSupply *string           `json:"place_of_supply"`
	IsInterState  *bool             `json:"is_inter_state"`
	PaymentMode   *string           `json:"payment_mode"`
	BankDetails   *BankDetailsPatch `json:"bank_details"`

	Notes                   *string `json:"notes"`
	TermsAndConditions      *string `json:"terms_and_conditions"`
	AuthorizedSignatoryName *string `json:"authorized_signatory_name"`
}

// GSTInvoiceService owns the single GST invoice under edit. As with
// InvoiceService, every mutation finishes by recomputing the aggregates.
type GSTInvoiceService interface {
	Get() domain.GSTInvoice
	UpdateInvoice(patch GSTInvoicePatch) (domain.GSTInvoice, error)
	AddItem(input GSTItemInput) domain.GSTInvoice
	UpdateItem(id string, patch GSTItemPatch) (domain.GSTInvoice, bool)
	RemoveItem(id string) (domain.GSTInvoice, bool)
	Recalculate() domain.GSTInvoice
	Reset() domain.GSTInvoice
}

type gstInvoiceService struct {
	mu       sync.Mutex
	defaults config.InvoiceConfig
	invoice  domain.GSTInvoice
}

// NewGSTInvoiceService creates a GSTInvoiceService seeded with a fresh
// default GST invoice.
func NewGSTInvoiceService(defaults config.InvoiceConfig) GSTInvoiceService {
	s := &gstInvoiceService{defaults: defaults}
	s.invoice = s.freshInvoice()
	return s
}

func (s *gstInvoiceService) freshInvoice() domain.GSTInvoice {
	return domain.GSTInvoice{
		InvoiceNumber: domain.NewInvoiceNumber(s.defaults.NumberPrefix),
		InvoiceDate:   domain.Today(),
		Items:         []domain.GSTItem{},
		PaymentMode:   domain.PaymentModeCash,
	}
}

func (s *gstInvoiceService) snapshot() domain.GSTInvoice {
	inv := s.invoice
	inv.Items = make([]domain.GSTItem, len(s.invoice.Items))
	copy(inv.Items, s.invoice.Items)
	return inv
}

func (s *gstInvoiceService) recompute() {
	s.invoice.GSTTotals = domain.ComputeGSTTotals(s.invoice.Items)
}

// recomputeItems rederives every item under the current tax regime.
func (s *gstInvoiceService) recomputeItems() {
	for i := range s.invoice.Items {
		s.invoice.Items[i] = domain.ComputeGSTItem(s.invoice.Items[i], s.invoice.IsInterState)
	}
}

func (s *gstInvoiceService) Get() domain.GSTInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *gstInvoiceService) UpdateInvoice(patch GSTInvoicePatch) (domain.GSTInvoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.PaymentMode != nil && !domain.AllowedPaymentModes[domain.PaymentMode(*patch.PaymentMode)] {
		return s.snapshot(), domain.ErrInvalidPaymentMode
	}

	if patch.InvoiceNumber != nil {
		s.invoice.InvoiceNumber = *patch.InvoiceNumber
	}
	if patch.InvoiceDate != nil {
		s.invoice.InvoiceDate = *patch.InvoiceDate
	}
	if patch.Seller != nil {
		mergeParty(&s.invoice.Seller, patch.Seller)
	}
	if patch.Buyer != nil {
		mergeParty(&s.invoice.Buyer, patch.Buyer)
	}
	if patch.PlaceOfSupply != nil {
		s.invoice.PlaceOfSupply = *patch.PlaceOfSupply
	}
	if patch.IsInterState != nil && *patch.IsInterState != s.invoice.IsInterState {
		s.invoice.IsInterState = *patch.IsInterState
		s.recomputeItems()
	}
	if patch.PaymentMode != nil {
		s.invoice.PaymentMode = domain.PaymentMode(*patch.PaymentMode)
	}
	if patch.BankDetails != nil {
		mergeBankDetails(&s.invoice.BankDetails, patch.BankDetails)
	}
	if patch.Notes != nil {
		s.invoice.Notes = *patch.Notes
	}
	if patch.TermsAndConditions != nil {
		s.invoice.TermsAndConditions = *patch.TermsAndConditions
	}
	if patch.AuthorizedSignatoryName != nil {
		s.invoice.AuthorizedSignatoryName = *patch.AuthorizedSignatoryName
	}
	s.recompute()
	return s.snapshot(), nil
}

func mergeParty(p *domain.Party, patch *PartyPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.GSTIN != nil {
		p.GSTIN = *patch.GSTIN
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.StateCode != nil {
		p.StateCode = *patch.StateCode
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
}

func mergeBankDetails(b *domain.BankDetails, patch *BankDetailsPatch) {
	if patch.AccountName != nil {
		b.AccountName = *patch.AccountName
	}
	if patch.AccountNumber != nil {
		b.AccountNumber = *patch.AccountNumber
	}
	if patch.BankName != nil {
		b.BankName = *patch.BankName
	}
	if patch.BranchName != nil {
		b.BranchName = *patch.BranchName
	}
	if patch.IFSCCode != nil {
		b.IFSCCode = *patch.IFSCCode
	}
}

func (s *gstInvoiceService) AddItem(input GSTItemInput) domain.GSTInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.ComputeGSTItem(domain.GSTItem{
		ID:          domain.NewItemID(),
		Description: input.Description,
		HSNCode:     input.HSNCode,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		UnitPrice:   input.UnitPrice,
		CGSTPercent: input.CGSTPercent,
		SGSTPercent: input.SGSTPercent,
		IGSTPercent: input.IGSTPercent,
	}, s.invoice.IsInterState)
	s.invoice.Items = append(s.invoice.Items, item)
	s.recompute()
	return s.snapshot()
}

func (s *gstInvoiceService) UpdateItem(id string, patch GSTItemPatch) (domain.GSTInvoice, bool) {
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
		if patch.HSNCode != nil {
			item.HSNCode = *patch.HSNCode
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Unit != nil {
			item.Unit = *patch.Unit
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
		}
		if patch.CGSTPercent != nil {
			item.CGSTPercent = *patch.CGSTPercent
		}
		if patch.SGSTPercent != nil {
			item.SGSTPercent = *patch.SGSTPercent
		}
		if patch.IGSTPercent != nil {
			item.IGSTPercent = *patch.IGSTPercent
		}
		s.invoice.Items[i] = domain.ComputeGSTItem(item, s.invoice.IsInterState)
		s.recompute()
		return s.snapshot(), true
	}
	return s.snapshot(), false
}

func (s *gstInvoiceService) RemoveItem(id string) (domain.GSTInvoice, bool) {
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

func (s *gstInvoiceService) Recalculate() domain.GSTInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recompute()
	return s.snapshot()
}

func (s *gstInvoiceService) Reset() domain.GSTInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice = s.freshInvoice()
	return s.snapshot()
}
