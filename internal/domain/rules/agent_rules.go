package rules

import (
	"strings"

	"github.com/aiif/aiifcheck/internal/domain"
)

// agentRulesConsistency validates the optional agent_rules field: when
// present it must be a sequence of strings, each non-empty after
// trimming whitespace.
func agentRulesConsistency(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	v, present := doc["agent_rules"]
	if !present || v == nil {
		emit(domain.CheckAgentRulesConsistent, true, "agent_rules not present (optional)")
		return
	}

	entries, isList := v.([]any)
	ok := isList
	for _, entry := range entries {
		s, isString := entry.(string)
		if !isString || strings.TrimSpace(s) == "" {
			ok = false
			break
		}
	}

	if ok {
		emit(domain.CheckAgentRulesConsistent, true, "agent_rules is a non-empty string list")
	} else {
		emit(domain.CheckAgentRulesConsistent, false, "agent_rules should be an array of non-empty strings")
	}
}
