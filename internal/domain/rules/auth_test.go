package rules_test

import (
	"testing"

	"github.com/aiif/aiifcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withAuth(auth any) domain.Document {
	return domain.Document{"auth": auth}
}

func TestAuthObject_AbsentEmitsNothing(t *testing.T) {
	results := runRule(t, "auth_object", domain.Document{}, fullRegistry("MUST"))
	assert.Empty(t, results)

	results = runRule(t, "auth_object", withAuth(nil), fullRegistry("MUST"))
	assert.Empty(t, results)
}

func TestAuthObject_NotAnObject(t *testing.T) {
	results := runRule(t, "auth_object", withAuth("bearer"), fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Equal(t, "auth exists but is not an object", results[0].Message)
}

func TestAuthObject_InvalidType(t *testing.T) {
	results := runRule(t, "auth_object", withAuth(map[string]any{"type": "magic"}), fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Message, "auth.type invalid: magic")
}

func TestAuthObject_SimpleTypesEmitNothing(t *testing.T) {
	for _, authType := range []string{"none", "api_key", "basic"} {
		results := runRule(t, "auth_object", withAuth(map[string]any{"type": authType}), fullRegistry("MUST"))
		assert.Empty(t, results, "type %s needs no structured fields", authType)
	}
}

func TestAuthObject_BearerMissingStructuredFields(t *testing.T) {
	results := runRule(t, "auth_object", withAuth(map[string]any{"type": "bearer"}), fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Equal(t, "bearer/oauth2 auth should include instructions, acquire, and apply", results[0].Message)
}

func TestAuthObject_BearerComplete(t *testing.T) {
	auth := map[string]any{
		"type":         "bearer",
		"instructions": []any{"get a token"},
		"acquire":      map[string]any{"method": "POST", "path": "/token"},
		"apply":        map[string]any{"header": "Authorization"},
	}

	results := runRule(t, "auth_object", withAuth(auth), fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}

func TestAuthObject_OAuth2EmptyInstructionsFails(t *testing.T) {
	auth := map[string]any{
		"type":         "oauth2",
		"instructions": []any{},
		"acquire":      map[string]any{},
		"apply":        map[string]any{},
	}

	results := runRule(t, "auth_object", withAuth(auth), fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
}

func TestAuthDocs_AlwaysPasses(t *testing.T) {
	protected := withAuth(map[string]any{"type": "bearer"})
	open := withAuth(map[string]any{"type": "none"})

	for _, doc := range []domain.Document{protected, open, {}} {
		results := runRule(t, "auth_docs_requirement", doc, fullRegistry("MUST"))
		require.Len(t, results, 1)
		assert.True(t, results[0].Passed)
	}
}

func TestAuthDocs_MessagesDistinguishProtected(t *testing.T) {
	results := runRule(t, "auth_docs_requirement", withAuth(map[string]any{"type": "bearer"}), fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "requires /ai-docs/auth")
	assert.Contains(t, results[0].Message, "out of scope")

	results = runRule(t, "auth_docs_requirement", domain.Document{}, fullRegistry("MUST"))
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "not triggered")
}

func TestAuthDocs_SilentWhenChecklistOmitsIt(t *testing.T) {
	results := runRule(t, "auth_docs_requirement", withAuth(map[string]any{"type": "bearer"}), emptyRegistry())
	assert.Empty(t, results)
}
