package engine

import "github.com/nurseguard/backend/pkg/model"

// escalationRule raises a resolved severity when its predicate matches.
// Every predicate is evaluated against the immutable base severity, so rules
// never chain off each other's results.
type escalationRule struct {
	name    string
	applies func(base model.Severity, confidence int, history []string) bool
	raiseTo model.Severity
}

var escalationRules = []escalationRule{
	{
		name: "high-risk history escalates medium to high",
		applies: func(base model.Severity, confidence int, history []string) bool {
			return base == model.SeverityMedium && confidence > 85 && hasHighRiskHistory(history)
		},
		raiseTo: model.SeverityHigh,
	},
	{
		name: "very high confidence escalates low to medium",
		applies: func(base model.Severity, confidence int, _ []string) bool {
			return base == model.SeverityLow && confidence > 90
		},
		raiseTo: model.SeverityMedium,
	},
}

// ResolveSeverity applies the escalation rules to a template's base severity.
// The result is never lower than the base.
func ResolveSeverity(base model.Severity, confidence int, history []string) model.Severity {
	resolved := base
	for _, rule := range escalationRules {
		if rule.applies(base, confidence, history) && rule.raiseTo.Rank() > resolved.Rank() {
			resolved = rule.raiseTo
		}
	}
	return resolved
}
