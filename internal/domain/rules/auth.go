package rules

import (
	"fmt"

	"github.com/aiif/aiifcheck/internal/domain"
)

// authObject validates the optional top-level auth object. When auth is
// absent nothing is emitted. An auth of the wrong shape or with an
// unknown type fails immediately; bearer and oauth2 additionally require
// a non-empty instructions sequence plus acquire and apply objects.
// Valid non-token types (none, api_key, basic) need nothing more and
// emit nothing.
func authObject(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	v, present := doc["auth"]
	if !present || v == nil {
		return
	}

	auth, ok := asObject(v)
	if !ok {
		emit(domain.CheckAuthFlowStructured, false, "auth exists but is not an object")
		return
	}

	authType, isString := auth["type"].(string)
	if !isString || !domain.AllowedAuthTypes[authType] {
		emit(domain.CheckAuthFlowStructured, false, fmt.Sprintf("auth.type invalid: %v", auth["type"]))
		return
	}

	if authType != "bearer" && authType != "oauth2" {
		return
	}

	instructions, _ := auth["instructions"].([]any)
	_, hasAcquire := asObject(auth["acquire"])
	_, hasApply := asObject(auth["apply"])

	if len(instructions) > 0 && hasAcquire && hasApply {
		emit(domain.CheckAuthFlowStructured, true, "bearer/oauth2 auth includes instructions+acquire+apply")
	} else {
		emit(domain.CheckAuthFlowStructured, false, "bearer/oauth2 auth should include instructions, acquire, and apply")
	}
}

// authDocsRequirement records, informationally, whether protected-API
// documentation would be expected. It never fails: runtime verification
// of documentation endpoints is out of scope for static validation.
// Emits only when the checklist defines its id.
func authDocsRequirement(doc domain.Document, reg *domain.Registry, emit EmitFunc) {
	if !reg.Contains(domain.CheckAuthDocsRequired) {
		return
	}

	var authType string
	var isString bool
	if auth, ok := asObject(doc["auth"]); ok {
		authType, isString = auth["type"].(string)
	}

	if isString && authType != "none" {
		emit(domain.CheckAuthDocsRequired, true,
			"requires /ai-docs/auth for protected APIs (runtime endpoint verification out of scope for static document validation)")
	} else {
		emit(domain.CheckAuthDocsRequired, true,
			"auth.type is none or missing; /ai-docs/auth requirement not triggered")
	}
}
