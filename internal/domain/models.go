package domain

// CompanyInfo holds the issuing company's details on a generic invoice.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url"`
}

// ClientInfo holds the billed client's details on a generic invoice.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// LineItem is a single billable line on a generic invoice.
// Amount is derived: quantity * unit price.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// PaymentInfo holds the derived totals and payment tracking fields of a
// generic invoice. Currency is a display label only; no conversion happens.
type PaymentInfo struct {
	Subtotal   float64       `json:"subtotal"`
	TaxRate    float64       `json:"tax_rate"`
	TaxAmount  float64       `json:"tax_amount"`
	Total      float64       `json:"total"`
	AmountPaid float64       `json:"amount_paid"`
	BalanceDue float64       `json:"balance_due"`
	Status     PaymentStatus `json:"status"`
	Currency   string        `json:"currency"`
}

// Invoice is the generic commercial invoice record. It exclusively owns its
// items and payment block; callers receive copies, never shared references.
type Invoice struct {
	InvoiceNumber string      `json:"invoice_number"`
	DateIssued    string      `json:"date_issued"`
	DateDue       string      `json:"date_due"`
	Company       CompanyInfo `json:"company"`
	Client        ClientInfo  `json:"client"`
	Items         []LineItem  `json:"items"`
	Payment       PaymentInfo `json:"payment"`
	Notes         string      `json:"notes"`
}

// Party represents the seller or buyer on a GST invoice.
type Party struct {
	Name      string `json:"name"`
	GSTIN     string `json:"gstin"`
	Address   string `json:"address"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// GSTItem is a single line on a GST invoice. TaxableValue, the tax amounts
// and Total are derived. Exactly one tax regime carries non-zero amounts,
// decided by the invoice-level inter-state flag at computation time.
type GSTItem struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	HSNCode      string  `json:"hsn_code"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	TaxableValue float64 `json:"taxable_value"`
	CGSTPercent  float64 `json:"cgst_percent"`
	CGSTAmount   float64 `json:"cgst_amount"`
	SGSTPercent  float64 `json:"sgst_percent"`
	SGSTAmount   float64 `json:"sgst_amount"`
	IGSTPercent  float64 `json:"igst_percent"`
	IGSTAmount   float64 `json:"igst_amount"`
	Total        float64 `json:"total"`
}

// GSTTotals holds the invoice-level aggregates, each a plain sum of the
// corresponding per-item field.
type GSTTotals struct {
	SubTotal   float64 `json:"sub_total"`
	CGSTTotal  float64 `json:"cgst_total"`
	SGSTTotal  float64 `json:"sgst_total"`
	IGSTTotal  float64 `json:"igst_total"`
	TotalGST   float64 `json:"total_gst"`
	GrandTotal float64 `json:"grand_total"`
}

// BankDetails holds the seller's bank information for payment.
type BankDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	BranchName    string `json:"branch_name"`
	IFSCCode      string `json:"ifsc_code"`
}

// GSTInvoice is the India-specific GST invoice record.
type GSTInvoice struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`

	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	PlaceOfSupply string `json:"place_of_supply"`
	IsInterState  bool   `json:"is_inter_state"`

	Items []GSTItem `json:"items"`
	GSTTotals

	PaymentMode PaymentMode `json:"payment_mode"`
	BankDetails BankDetails `json:"bank_details"`

	Notes                   string `json:"notes"`
	TermsAndConditions      string `json:"terms_and_conditions"`
	AuthorizedSignatoryName string `json:"authorized_signatory_name"`
}
