package rules_test

import (
	"testing"

	"github.com/aiif/aiifcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRules_AbsentPasses(t *testing.T) {
	results := runRule(t, "agent_rules_consistency", domain.Document{}, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Equal(t, "agent_rules not present (optional)", results[0].Message)
}

func TestAgentRules_StringListPasses(t *testing.T) {
	doc := domain.Document{"agent_rules": []any{"be gentle", "no retries"}}
	results := runRule(t, "agent_rules_consistency", doc, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}

func TestAgentRules_WrongShapesFail(t *testing.T) {
	for name, value := range map[string]any{
		"not a list":        "be gentle",
		"non-string entry":  []any{"ok", 42},
		"blank entry":       []any{"ok", "   "},
		"empty entry":       []any{""},
	} {
		t.Run(name, func(t *testing.T) {
			doc := domain.Document{"agent_rules": value}
			results := runRule(t, "agent_rules_consistency", doc, fullRegistry("MUST"))
			require.Len(t, results, 1)
			assert.False(t, results[0].Passed)
			assert.Equal(t, "agent_rules should be an array of non-empty strings", results[0].Message)
		})
	}
}
