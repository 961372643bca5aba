package validator

import (
	"context"

	"invoicegen/internal/domain"
	"invoicegen/internal/validator/invoice"
)

// Validator is the interface for a single built-in advisory rule. Rules never
// fail hard: every finding is reported, none is raised as an error.
type Validator interface {
	Validate(ctx context.Context, data *domain.GSTInvoice) []invoice.ValidationResult
	RuleKey() string
	RuleName() string
	RuleType() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
}
