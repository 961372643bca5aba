package domain

// PaymentStatus is the derived payment state of a generic invoice.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentMode is the declared settlement method on a GST invoice.
type PaymentMode string

const (
	PaymentModeCash       PaymentMode = "cash"
	PaymentModeCheque     PaymentMode = "cheque"
	PaymentModeUPI        PaymentMode = "upi"
	PaymentModeNetBanking PaymentMode = "netbanking"
	PaymentModeOther      PaymentMode = "other"
)

// AllowedPaymentModes lists every accepted payment mode value.
var AllowedPaymentModes = map[PaymentMode]bool{
	PaymentModeCash:       true,
	PaymentModeCheque:     true,
	PaymentModeUPI:        true,
	PaymentModeNetBanking: true,
	PaymentModeOther:      true,
}

// ValidationSeverity grades an advisory validation finding.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ValidationRuleType categorizes an advisory validation rule.
type ValidationRuleType string

const (
	ValidationRuleRequired ValidationRuleType = "required_field"
	ValidationRuleRegex    ValidationRuleType = "regex_match"
)

// ValidationStatus is the rollup of a validation run.
type ValidationStatus string

const (
	ValidationStatusValid   ValidationStatus = "valid"
	ValidationStatusWarning ValidationStatus = "warning"
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// CurrencySymbols maps supported display currency codes to their symbols.
// Formatting is presentation only; no conversion is performed anywhere.
var CurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
	"SGD": "S$",
}
