package invoice

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"invoicegen/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
	acctPattern  = regexp.MustCompile(`^\d{9,18}$`)
)

// formatValidator checks a field against a regex or format rule. Empty
// optional fields skip the check; requiredness is a separate rule.
type formatValidator struct {
	ruleKey   string
	ruleName  string
	fieldPath string
	severity  domain.ValidationSeverity
	validate  func(*domain.GSTInvoice) []ValidationResult
}

func (v *formatValidator) RuleKey() string                     { return v.ruleKey }
func (v *formatValidator) RuleName() string                    { return v.ruleName }
func (v *formatValidator) RuleType() domain.ValidationRuleType { return domain.ValidationRuleRegex }
func (v *formatValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *formatValidator) Validate(_ context.Context, data *domain.GSTInvoice) []ValidationResult {
	return v.validate(data)
}

func regexCheck(fieldPath, value, pattern, ruleName string, re *regexp.Regexp) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: pattern, ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := re.MatchString(value)
	msg := fmt.Sprintf("%s: %s matches expected format", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s does not match expected format", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: pattern, ActualValue: value, Message: msg,
	}
}

func dateCheck(fieldPath, value, ruleName string) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "parseable date", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping date check", ruleName),
		}
	}
	_, err := parseDate(value)
	passed := err == nil
	msg := fmt.Sprintf("%s: %s is a valid date", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a parseable date", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "parseable date", ActualValue: value, Message: msg,
	}
}

func stateCodeCheck(fieldPath, value, ruleName string) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "2-digit state code (01-38)", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping state code check", ruleName),
		}
	}
	passed := false
	if len(value) == 2 {
		code, err := strconv.Atoi(value)
		if err == nil && code >= 1 && code <= 38 {
			passed = true
		}
	}
	msg := fmt.Sprintf("%s: %s is a valid state code", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a valid 2-digit state code (01-38)", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "2-digit state code (01-38)", ActualValue: value, Message: msg,
	}
}

// parseDate tries common date formats.
func parseDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02-01-2006",
		"02/01/2006",
		"2006/01/02",
		"02 Jan 2006",
		"2 Jan 2006",
		"Jan 02, 2006",
		"January 02, 2006",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}

// FormatValidators returns all format validators.
func FormatValidators() []*formatValidator {
	return []*formatValidator{
		{
			ruleKey: "fmt.seller.gstin", ruleName: "Format: Seller GSTIN",
			fieldPath: "seller.gstin", severity: domain.ValidationSeverityError,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{regexCheck("seller.gstin", d.Seller.GSTIN, "15-char GSTIN format", "Format: Seller GSTIN", gstinPattern)}
			},
		},
		{
			ruleKey: "fmt.buyer.gstin", ruleName: "Format: Buyer GSTIN",
			fieldPath: "buyer.gstin", severity: domain.ValidationSeverityError,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{regexCheck("buyer.gstin", d.Buyer.GSTIN, "15-char GSTIN format", "Format: Buyer GSTIN", gstinPattern)}
			},
		},
		{
			ruleKey: "fmt.seller.state_code", ruleName: "Format: Seller State Code",
			fieldPath: "seller.state_code", severity: domain.ValidationSeverityWarning,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{stateCodeCheck("seller.state_code", d.Seller.StateCode, "Format: Seller State Code")}
			},
		},
		{
			ruleKey: "fmt.buyer.state_code", ruleName: "Format: Buyer State Code",
			fieldPath: "buyer.state_code", severity: domain.ValidationSeverityWarning,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{stateCodeCheck("buyer.state_code", d.Buyer.StateCode, "Format: Buyer State Code")}
			},
		},
		{
			ruleKey: "fmt.invoice.date", ruleName: "Format: Invoice Date",
			fieldPath: "invoice_date", severity: domain.ValidationSeverityError,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{dateCheck("invoice_date", d.InvoiceDate, "Format: Invoice Date")}
			},
		},
		{
			ruleKey: "fmt.bank.ifsc", ruleName: "Format: IFSC Code",
			fieldPath: "bank_details.ifsc_code", severity: domain.ValidationSeverityWarning,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{regexCheck("bank_details.ifsc_code", d.BankDetails.IFSCCode, "IFSC format (XXXX0XXXXXX)", "Format: IFSC Code", ifscPattern)}
			},
		},
		{
			ruleKey: "fmt.bank.account_no", ruleName: "Format: Account Number",
			fieldPath: "bank_details.account_number", severity: domain.ValidationSeverityWarning,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				return []ValidationResult{regexCheck("bank_details.account_number", d.BankDetails.AccountNumber, "9-18 digit account number", "Format: Account Number", acctPattern)}
			},
		},
		{
			ruleKey: "fmt.item.hsn_code", ruleName: "Format: HSN/SAC Code",
			fieldPath: "items[i].hsn_code", severity: domain.ValidationSeverityWarning,
			validate: func(d *domain.GSTInvoice) []ValidationResult {
				results := make([]ValidationResult, 0, len(d.Items))
				for i := range d.Items {
					fp := fmt.Sprintf("items[%d].hsn_code", i)
					results = append(results, regexCheck(fp, d.Items[i].HSNCode, "4-8 digit HSN/SAC code", "Format: HSN/SAC Code", hsnPattern))
				}
				return results
			},
		},
	}
}
