package rules

import (
	"fmt"
	"strings"

	"github.com/aiif/aiifcheck/internal/domain"
)

// paramsUniqueness requires (name, location) pairs to be unique within
// each endpoint's params sequence. Non-object params are skipped
// silently; uniqueness is never enforced across endpoints.
func paramsUniqueness(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	var violations []string
	for _, v := range doc.Endpoints() {
		ep, ok := asObject(v)
		if !ok {
			continue
		}
		seen := make(map[string]bool)
		for _, pv := range paramsOf(ep) {
			p, ok := asObject(pv)
			if !ok {
				continue
			}
			key := fmt.Sprintf("(%v, %v)", p["name"], p["location"])
			if seen[key] {
				violations = append(violations, fmt.Sprintf("%s:%s", endpointName(ep), key))
			}
			seen[key] = true
		}
	}

	if len(violations) == 0 {
		emit(domain.CheckParamsUnique, true, "params are unique by (name,location)")
	} else {
		emit(domain.CheckParamsUnique, false,
			fmt.Sprintf("duplicate params: %s", strings.Join(violations, ", ")))
	}
}

// paramLocations requires every param location to be path, query or body.
// Emits only when the checklist defines its id.
func paramLocations(doc domain.Document, reg *domain.Registry, emit EmitFunc) {
	if !reg.Contains(domain.CheckParamLocationAllowed) {
		return
	}

	var bad []string
	for _, v := range doc.Endpoints() {
		ep, ok := asObject(v)
		if !ok {
			continue
		}
		for _, pv := range paramsOf(ep) {
			p, ok := asObject(pv)
			if !ok {
				continue
			}
			location, isString := p["location"].(string)
			if isString && domain.AllowedParamLocations[location] {
				continue
			}
			paramName := "<unknown>"
			if n, ok := p["name"].(string); ok {
				paramName = n
			}
			bad = append(bad, fmt.Sprintf("%s:%s:%v", endpointName(ep), paramName, p["location"]))
		}
	}

	if len(bad) == 0 {
		emit(domain.CheckParamLocationAllowed, true, "all parameter locations are valid")
	} else {
		emit(domain.CheckParamLocationAllowed, false,
			fmt.Sprintf("invalid parameter locations: %s", strings.Join(bad, ", ")))
	}
}

// paramConstraintsPublished passes when at least one param anywhere in
// the document declares a machine-readable constraint. A single
// constrained param satisfies the whole document; with no params at all
// the check is not applicable and passes.
func paramConstraintsPublished(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	total := 0
	constrained := 0

	for _, v := range doc.Endpoints() {
		ep, ok := asObject(v)
		if !ok {
			continue
		}
		for _, pv := range paramsOf(ep) {
			p, ok := asObject(pv)
			if !ok {
				continue
			}
			total++
			for _, field := range domain.ConstraintFields {
				if _, present := p[field]; present {
					constrained++
					break
				}
			}
		}
	}

	if total == 0 {
		emit(domain.CheckParamConstraints, true, "no params defined; constraint publication not applicable")
		return
	}

	emit(domain.CheckParamConstraints, constrained > 0,
		fmt.Sprintf("%d/%d params publish machine-readable constraints", constrained, total))
}
