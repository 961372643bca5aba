package invoice

import (
	"context"
	"fmt"
	"strconv"

	"invoicegen/internal/domain"
)

// ValidationResult is a single advisory finding from one rule.
type ValidationResult struct {
	Passed        bool
	FieldPath     string
	ExpectedValue string
	ActualValue   string
	Message       string
}

// requiredFieldValidator checks that a required field is not empty.
type requiredFieldValidator struct {
	ruleKey     string
	ruleName    string
	fieldPath   string
	severity    domain.ValidationSeverity
	extract     func(*domain.GSTInvoice) string
	perItem     bool // true for line-item level checks
	extractItem func(*domain.GSTItem) string
}

func (v *requiredFieldValidator) RuleKey() string  { return v.ruleKey }
func (v *requiredFieldValidator) RuleName() string { return v.ruleName }
func (v *requiredFieldValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleRequired
}
func (v *requiredFieldValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *requiredFieldValidator) Validate(_ context.Context, data *domain.GSTInvoice) []ValidationResult {
	if v.perItem {
		var results []ValidationResult
		for i := range data.Items {
			item := &data.Items[i]
			val := v.extractItem(item)
			fieldPath := fmt.Sprintf("items[%d].%s", i, stripPrefix(v.fieldPath))
			results = append(results, ValidationResult{
				Passed:        val != "",
				FieldPath:     fieldPath,
				ExpectedValue: "non-empty value",
				ActualValue:   val,
				Message:       fieldMessage(val != "", v.ruleName, fieldPath),
			})
		}
		return results
	}

	val := v.extract(data)
	return []ValidationResult{{
		Passed:        val != "",
		FieldPath:     v.fieldPath,
		ExpectedValue: "non-empty value",
		ActualValue:   val,
		Message:       fieldMessage(val != "", v.ruleName, v.fieldPath),
	}}
}

func fieldMessage(passed bool, ruleName, fieldPath string) string {
	if passed {
		return fmt.Sprintf("%s: %s is present", ruleName, fieldPath)
	}
	return fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath)
}

func stripPrefix(fieldPath string) string {
	// "items[i].description" → "description"
	for i := len(fieldPath) - 1; i >= 0; i-- {
		if fieldPath[i] == '.' {
			return fieldPath[i+1:]
		}
	}
	return fieldPath
}

// itemCountValidator checks that the invoice has at least one line item.
type itemCountValidator struct{}

func (v *itemCountValidator) RuleKey() string  { return "req.items.nonempty" }
func (v *itemCountValidator) RuleName() string { return "Required: At Least One Item" }
func (v *itemCountValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleRequired
}
func (v *itemCountValidator) Severity() domain.ValidationSeverity {
	return domain.ValidationSeverityError
}

func (v *itemCountValidator) Validate(_ context.Context, data *domain.GSTInvoice) []ValidationResult {
	passed := len(data.Items) > 0
	msg := "Required: At Least One Item: item list is non-empty"
	if !passed {
		msg = "Required: At Least One Item: invoice has no line items"
	}
	return []ValidationResult{{
		Passed:        passed,
		FieldPath:     "items",
		ExpectedValue: "at least one line item",
		ActualValue:   strconv.Itoa(len(data.Items)),
		Message:       msg,
	}}
}

// RequiredValidator is the common shape of the required-field rules.
type RequiredValidator interface {
	Validate(ctx context.Context, data *domain.GSTInvoice) []ValidationResult
	RuleKey() string
	RuleName() string
	RuleType() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
}

// RequiredFieldValidators returns all required-field validators.
func RequiredFieldValidators() []RequiredValidator {
	return []RequiredValidator{
		&requiredFieldValidator{
			ruleKey: "req.invoice.number", ruleName: "Required: Invoice Number",
			fieldPath: "invoice_number", severity: domain.ValidationSeverityError,
			extract: func(d *domain.GSTInvoice) string { return d.InvoiceNumber },
		},
		&requiredFieldValidator{
			ruleKey: "req.invoice.date", ruleName: "Required: Invoice Date",
			fieldPath: "invoice_date", severity: domain.ValidationSeverityError,
			extract: func(d *domain.GSTInvoice) string { return d.InvoiceDate },
		},
		&requiredFieldValidator{
			ruleKey: "req.invoice.place_of_supply", ruleName: "Required: Place of Supply",
			fieldPath: "place_of_supply", severity: domain.ValidationSeverityWarning,
			extract: func(d *domain.GSTInvoice) string { return d.PlaceOfSupply },
		},
		&requiredFieldValidator{
			ruleKey: "req.seller.name", ruleName: "Required: Seller Name",
			fieldPath: "seller.name", severity: domain.ValidationSeverityError,
			extract: func(d *domain.GSTInvoice) string { return d.Seller.Name },
		},
		&requiredFieldValidator{
			ruleKey: "req.seller.gstin", ruleName: "Required: Seller GSTIN",
			fieldPath: "seller.gstin", severity: domain.ValidationSeverityError,
			extract: func(d *domain.GSTInvoice) string { return d.Seller.GSTIN },
		},
		&requiredFieldValidator{
			ruleKey: "req.seller.state_code", ruleName: "Required: Seller State Code",
			fieldPath: "seller.state_code", severity: domain.ValidationSeverityWarning,
			extract: func(d *domain.GSTInvoice) string { return d.Seller.StateCode },
		},
		&requiredFieldValidator{
			ruleKey: "req.buyer.name", ruleName: "Required: Buyer Name",
			fieldPath: "buyer.name", severity: domain.ValidationSeverityError,
			extract: func(d *domain.GSTInvoice) string { return d.Buyer.Name },
		},
		&requiredFieldValidator{
			ruleKey: "req.buyer.address", ruleName: "Required: Buyer Address",
			fieldPath: "buyer.address", severity: domain.ValidationSeverityError,
			extract: func(d *domain.GSTInvoice) string { return d.Buyer.Address },
		},
		&itemCountValidator{},
		&requiredFieldValidator{
			ruleKey: "req.item.description", ruleName: "Required: Item Description",
			fieldPath: "items[i].description", severity: domain.ValidationSeverityWarning,
			perItem: true, extractItem: func(li *domain.GSTItem) string { return li.Description },
		},
		&requiredFieldValidator{
			ruleKey: "req.item.hsn_code", ruleName: "Required: Item HSN/SAC Code",
			fieldPath: "items[i].hsn_code", severity: domain.ValidationSeverityError,
			perItem: true, extractItem: func(li *domain.GSTItem) string { return li.HSNCode },
		},
	}
}
