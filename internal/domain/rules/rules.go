// Package rules holds the AIIF validation rule set: independent, named,
// pure functions executed in a fixed order against one document and
// checklist registry.
package rules

import (
	"github.com/aiif/aiifcheck/internal/domain"
)

// EmitFunc records one rule outcome. The severity attached to the result
// comes from the registry at emission time, never from the rule.
type EmitFunc func(checkID string, passed bool, message string)

// Rule is a single named validation rule. Run emits zero or more
// outcomes and must not mutate the document or keep state between calls.
type Rule struct {
	Name string
	Run  func(doc domain.Document, reg *domain.Registry, emit EmitFunc)
}

// All returns the rule set in execution order. The order is part of the
// contract: result lists are ordered by rule execution, and reordering
// would change report output.
func All() []Rule {
	return []Rule{
		{Name: "top_level_required_fields", Run: topLevelRequiredFields},
		{Name: "endpoint_uniqueness", Run: endpointUniqueness},
		{Name: "params_uniqueness", Run: paramsUniqueness},
		{Name: "method_values", Run: methodValues},
		{Name: "param_locations", Run: paramLocations},
		{Name: "auth_object", Run: authObject},
		{Name: "auth_docs_requirement", Run: authDocsRequirement},
		{Name: "auth_required_presence", Run: authRequiredPresence},
		{Name: "response_content_type_presence", Run: responseContentTypePresence},
		{Name: "param_constraints_published", Run: paramConstraintsPublished},
		{Name: "agent_rules_consistency", Run: agentRulesConsistency},
	}
}

// Evaluate runs every rule in order and collects the emitted outcomes
// into a single ordered result list. Rules are isolated: a defect in the
// document never aborts evaluation, and running twice on the same inputs
// yields identical results.
func Evaluate(doc domain.Document, reg *domain.Registry) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(All())+1)
	emit := func(checkID string, passed bool, message string) {
		results = append(results, domain.CheckResult{
			CheckID: checkID,
			Level:   reg.SeverityOf(checkID),
			Passed:  passed,
			Message: message,
		})
	}
	for _, r := range All() {
		r.Run(doc, reg, emit)
	}
	return results
}
