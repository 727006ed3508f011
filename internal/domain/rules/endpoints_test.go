package rules_test

import (
	"testing"

	"github.com/aiif/aiifcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endpoints(eps ...map[string]any) domain.Document {
	items := make([]any, len(eps))
	for i, ep := range eps {
		items[i] = ep
	}
	return domain.Document{"endpoints": items}
}

func resultFor(t *testing.T, results []domain.CheckResult, id string) domain.CheckResult {
	t.Helper()
	for _, r := range results {
		if r.CheckID == id {
			return r
		}
	}
	t.Fatalf("no result for %s", id)
	return domain.CheckResult{}
}

func TestEndpointUniqueness_UniqueNamesAndPairs(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "a", "method": "GET", "path": "/x"},
		map[string]any{"name": "b", "method": "POST", "path": "/x"},
	)

	results := runRule(t, "endpoint_uniqueness", doc, fullRegistry("MUST"))
	require.Len(t, results, 2)
	assert.True(t, resultFor(t, results, domain.CheckEndpointNameUnique).Passed)
	assert.True(t, resultFor(t, results, domain.CheckMethodPathUnique).Passed)
}

func TestEndpointUniqueness_DuplicateNames(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "dup", "method": "GET", "path": "/x"},
		map[string]any{"name": "dup", "method": "POST", "path": "/y"},
	)

	results := runRule(t, "endpoint_uniqueness", doc, fullRegistry("MUST"))
	nameResult := resultFor(t, results, domain.CheckEndpointNameUnique)
	assert.False(t, nameResult.Passed)
	assert.Contains(t, nameResult.Message, "dup")
	assert.True(t, resultFor(t, results, domain.CheckMethodPathUnique).Passed)
}

func TestEndpointUniqueness_DuplicateMethodPathPairs(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "a", "method": "GET", "path": "/x"},
		map[string]any{"name": "b", "method": "GET", "path": "/x"},
	)

	results := runRule(t, "endpoint_uniqueness", doc, fullRegistry("MUST"))
	assert.True(t, resultFor(t, results, domain.CheckEndpointNameUnique).Passed)
	pairResult := resultFor(t, results, domain.CheckMethodPathUnique)
	assert.False(t, pairResult.Passed)
	assert.Contains(t, pairResult.Message, "(GET, /x)")
}

func TestEndpointUniqueness_DuplicatesSorted(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "zz"},
		map[string]any{"name": "zz"},
		map[string]any{"name": "aa"},
		map[string]any{"name": "aa"},
	)

	results := runRule(t, "endpoint_uniqueness", doc, fullRegistry("MUST"))
	nameResult := resultFor(t, results, domain.CheckEndpointNameUnique)
	assert.Contains(t, nameResult.Message, "aa, zz")
}

func TestEndpointUniqueness_NonStringNamesIgnored(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": 1, "method": "GET", "path": "/x"},
		map[string]any{"name": 1, "method": "POST", "path": "/y"},
	)

	results := runRule(t, "endpoint_uniqueness", doc, fullRegistry("MUST"))
	assert.True(t, resultFor(t, results, domain.CheckEndpointNameUnique).Passed)
}

func TestEndpointUniqueness_NonObjectEndpointsSkipped(t *testing.T) {
	doc := domain.Document{"endpoints": []any{"junk", 42}}
	results := runRule(t, "endpoint_uniqueness", doc, fullRegistry("MUST"))
	require.Len(t, results, 2)
	assert.True(t, results[0].Passed)
	assert.True(t, results[1].Passed)
}

func TestMethodValues_InvalidMethods(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "a", "method": "FETCH", "path": "/x"},
		map[string]any{"name": "b", "method": "GET", "path": "/y"},
		map[string]any{"path": "/z"},
	)

	results := runRule(t, "method_values", doc, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "a:FETCH")
	assert.Contains(t, results[0].Message, "<unknown>:<nil>")
	assert.NotContains(t, results[0].Message, "b:GET")
}

func TestMethodValues_SilentWhenChecklistOmitsIt(t *testing.T) {
	doc := endpoints(map[string]any{"name": "a", "method": "FETCH", "path": "/x"})
	results := runRule(t, "method_values", doc, emptyRegistry())
	assert.Empty(t, results)
}

func TestAuthRequiredPresence_Missing(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "a", "auth_required": false},
		map[string]any{"name": "b"},
		map[string]any{},
	)

	results := runRule(t, "auth_required_presence", doc, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "b")
	assert.Contains(t, results[0].Message, "<unknown>")
}

func TestAuthRequiredPresence_ValueNotTypeChecked(t *testing.T) {
	doc := endpoints(map[string]any{"name": "a", "auth_required": "maybe"})
	results := runRule(t, "auth_required_presence", doc, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}

func TestResponseContentTypePresence_Missing(t *testing.T) {
	doc := endpoints(
		map[string]any{"name": "a", "response_content_type": "application/json"},
		map[string]any{"name": "b"},
	)

	results := runRule(t, "response_content_type_presence", doc, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "endpoints missing response_content_type: b")
}
