package validator

import (
	"context"

	"invoicegen/internal/domain"
)

// Engine runs every registered rule against a GST invoice record and rolls
// the findings up into a report. Validation is read-only and advisory: the
// record is never mutated and no finding is raised as an error.
type Engine struct {
	registry *Registry
}

// NewEngine creates a validation engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Report is the result of one validation run.
type Report struct {
	Status  domain.ValidationStatus `json:"status"`
	Summary Summary                 `json:"summary"`
	Results []ResultItem            `json:"results"`
}

// Summary holds aggregate counts of validation results.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// ResultItem is a single finding in the report.
type ResultItem struct {
	RuleName      string `json:"rule_name"`
	RuleType      string `json:"rule_type"`
	Severity      string `json:"severity"`
	Passed        bool   `json:"passed"`
	FieldPath     string `json:"field_path"`
	ExpectedValue string `json:"expected_value"`
	ActualValue   string `json:"actual_value"`
	Message       string `json:"message"`
}

// Validate runs all registered rules and builds the report. Status is
// "invalid" if any error-severity rule failed, "warning" if only
// warning-severity rules failed, "valid" otherwise.
func (e *Engine) Validate(ctx context.Context, inv *domain.GSTInvoice) *Report {
	report := &Report{}
	hasError := false
	hasWarning := false

	for _, v := range e.registry.All() {
		for _, vr := range v.Validate(ctx, inv) {
			report.Results = append(report.Results, ResultItem{
				RuleName:      v.RuleName(),
				RuleType:      string(v.RuleType()),
				Severity:      string(v.Severity()),
				Passed:        vr.Passed,
				FieldPath:     vr.FieldPath,
				ExpectedValue: vr.ExpectedValue,
				ActualValue:   vr.ActualValue,
				Message:       vr.Message,
			})
			if vr.Passed {
				report.Summary.Passed++
				continue
			}
			if v.Severity() == domain.ValidationSeverityError {
				report.Summary.Errors++
				hasError = true
			} else {
				report.Summary.Warnings++
				hasWarning = true
			}
		}
	}
	report.Summary.Total = len(report.Results)

	switch {
	case hasError:
		report.Status = domain.ValidationStatusInvalid
	case hasWarning:
		report.Status = domain.ValidationStatusWarning
	default:
		report.Status = domain.ValidationStatusValid
	}
	return report
}
