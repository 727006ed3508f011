package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aiif/aiifcheck/internal/domain"
)

// endpointUniqueness checks two independent properties in one pass:
// endpoint names must be unique, and (method, path) pairs must be unique.
// Non-string names are ignored here; pairs are only tracked when both
// method and path are strings.
func endpointUniqueness(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	names := make(map[string]bool)
	dupNames := make(map[string]bool)
	pairs := make(map[string]bool)
	dupPairs := make(map[string]bool)

	for _, v := range doc.Endpoints() {
		ep, ok := asObject(v)
		if !ok {
			continue
		}

		if name, ok := ep["name"].(string); ok {
			if names[name] {
				dupNames[name] = true
			}
			names[name] = true
		}

		method, mok := ep["method"].(string)
		path, pok := ep["path"].(string)
		if mok && pok {
			key := fmt.Sprintf("(%s, %s)", method, path)
			if pairs[key] {
				dupPairs[key] = true
			}
			pairs[key] = true
		}
	}

	if len(dupNames) == 0 {
		emit(domain.CheckEndpointNameUnique, true, "endpoint names are unique")
	} else {
		emit(domain.CheckEndpointNameUnique, false,
			fmt.Sprintf("duplicate endpoint names: %s", strings.Join(sortedKeys(dupNames), ", ")))
	}

	if len(dupPairs) == 0 {
		emit(domain.CheckMethodPathUnique, true, "(method,path) pairs are unique")
	} else {
		emit(domain.CheckMethodPathUnique, false,
			fmt.Sprintf("duplicate (method,path) pairs: %s", strings.Join(sortedKeys(dupPairs), ", ")))
	}
}

// methodValues requires every endpoint method to be one of the allowed
// HTTP methods. Emits only when the checklist defines its id.
func methodValues(doc domain.Document, reg *domain.Registry, emit EmitFunc) {
	if !reg.Contains(domain.CheckMethodAllowed) {
		return
	}

	var bad []string
	for _, v := range doc.Endpoints() {
		ep, ok := asObject(v)
		if !ok {
			continue
		}
		method, isString := ep["method"].(string)
		if !isString || !domain.AllowedMethods[method] {
			bad = append(bad, fmt.Sprintf("%s:%v", endpointName(ep), ep["method"]))
		}
	}

	if len(bad) == 0 {
		emit(domain.CheckMethodAllowed, true, "all methods are allowed")
	} else {
		emit(domain.CheckMethodAllowed, false,
			fmt.Sprintf("invalid methods: %s", strings.Join(bad, ", ")))
	}
}

// authRequiredPresence requires every endpoint to carry an auth_required
// key. The value itself is not type-checked.
func authRequiredPresence(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	missing := endpointsMissingKey(doc, "auth_required")
	if len(missing) == 0 {
		emit(domain.CheckAuthRequiredSupported, true, "all endpoints include auth_required")
	} else {
		emit(domain.CheckAuthRequiredSupported, false,
			fmt.Sprintf("endpoints missing auth_required: %s", strings.Join(missing, ", ")))
	}
}

// responseContentTypePresence requires every endpoint to carry a
// response_content_type key. The value itself is not type-checked.
func responseContentTypePresence(doc domain.Document, _ *domain.Registry, emit EmitFunc) {
	missing := endpointsMissingKey(doc, "response_content_type")
	if len(missing) == 0 {
		emit(domain.CheckResponseContentType, true, "all endpoints include response_content_type")
	} else {
		emit(domain.CheckResponseContentType, false,
			fmt.Sprintf("endpoints missing response_content_type: %s", strings.Join(missing, ", ")))
	}
}

// endpointsMissingKey lists the names of endpoints lacking the given key.
func endpointsMissingKey(doc domain.Document, key string) []string {
	var missing []string
	for _, v := range doc.Endpoints() {
		ep, ok := asObject(v)
		if !ok {
			continue
		}
		if _, present := ep[key]; !present {
			missing = append(missing, endpointName(ep))
		}
	}
	return missing
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
