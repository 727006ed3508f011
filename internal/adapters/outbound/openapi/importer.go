// Package openapi converts OpenAPI 3 documents into AIIF skeletons.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/getkin/kin-openapi/openapi3"
)

// methodOrder fixes the per-path emission order so importing the same
// document twice produces the same endpoint sequence.
var methodOrder = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// Importer implements domain.SpecImporter using kin-openapi.
type Importer struct{}

func New() *Importer { return &Importer{} }

// Import loads the OpenAPI document at path and builds an AIIF document
// skeleton from its paths, parameters and security schemes. Output
// ordering is deterministic: paths sorted, methods in fixed order.
func (i *Importer) Import(path string) (map[string]any, error) {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document: %w", err)
	}

	doc := map[string]any{
		"aiif_version": "1.0",
		"info":         infoObject(spec),
		"endpoints":    endpoints(spec),
	}

	if auth := authObject(spec); auth != nil {
		doc["auth"] = auth
	}

	return doc, nil
}

func infoObject(spec *openapi3.T) map[string]any {
	info := map[string]any{}
	if spec.Info != nil {
		info["title"] = spec.Info.Title
		info["version"] = spec.Info.Version
		if spec.Info.Description != "" {
			info["description"] = spec.Info.Description
		}
	}
	return info
}

func endpoints(spec *openapi3.T) []any {
	if spec.Paths == nil {
		return []any{}
	}

	globalAuth := len(spec.Security) > 0

	paths := make([]string, 0, spec.Paths.Len())
	for p := range spec.Paths.Map() {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	eps := make([]any, 0, len(paths))
	for _, p := range paths {
		item := spec.Paths.Map()[p]
		if item == nil {
			continue
		}
		byMethod := map[string]*openapi3.Operation{
			"GET":    item.Get,
			"POST":   item.Post,
			"PUT":    item.Put,
			"PATCH":  item.Patch,
			"DELETE": item.Delete,
		}
		for _, method := range methodOrder {
			op := byMethod[method]
			if op == nil {
				continue
			}
			eps = append(eps, endpoint(method, p, op, globalAuth))
		}
	}
	return eps
}

func endpoint(method, path string, op *openapi3.Operation, globalAuth bool) map[string]any {
	authRequired := globalAuth
	if op.Security != nil {
		authRequired = len(*op.Security) > 0
	}

	return map[string]any{
		"name":                  endpointName(op.OperationID, method, path),
		"method":                method,
		"path":                  path,
		"params":                params(op),
		"auth_required":         authRequired,
		"response_content_type": responseContentType(op),
	}
}

// endpointName derives a snake_case endpoint name from the operationId,
// falling back to a method+path slug when the id is absent.
func endpointName(operationID, method, path string) string {
	if operationID != "" {
		words := camelcase.Split(operationID)
		parts := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.Trim(w, "_-. "))
			if w != "" {
				parts = append(parts, w)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "_")
		}
	}
	return strings.ToLower(method) + "_" + pathSlug(path)
}

func pathSlug(path string) string {
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		seg = strings.Trim(seg, "{}")
		if seg != "" {
			parts = append(parts, strings.ToLower(seg))
		}
	}
	if len(parts) == 0 {
		return "root"
	}
	return strings.Join(parts, "_")
}

func params(op *openapi3.Operation) []any {
	out := []any{}
	for _, ref := range op.Parameters {
		p := ref.Value
		if p == nil {
			continue
		}
		// AIIF knows only path, query and body locations; header and
		// cookie parameters have no representation and are dropped.
		if p.In != openapi3.ParameterInPath && p.In != openapi3.ParameterInQuery {
			continue
		}
		param := map[string]any{
			"name":     p.Name,
			"location": p.In,
		}
		if p.Schema != nil {
			addConstraints(param, p.Schema.Value)
		}
		out = append(out, param)
	}

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		out = append(out, map[string]any{
			"name":     "body",
			"location": "body",
		})
	}

	return out
}

// addConstraints copies the machine-readable constraints AIIF recognizes
// from an OpenAPI schema onto a param object.
func addConstraints(param map[string]any, schema *openapi3.Schema) {
	if schema == nil {
		return
	}
	if schema.Min != nil {
		param["minimum"] = *schema.Min
	}
	if schema.Max != nil {
		param["maximum"] = *schema.Max
	}
	if schema.MinLength > 0 {
		param["min_length"] = schema.MinLength
	}
	if schema.MaxLength != nil {
		param["max_length"] = *schema.MaxLength
	}
	if schema.Pattern != "" {
		param["pattern"] = schema.Pattern
	}
	if schema.Format != "" {
		param["format"] = schema.Format
	}
}

func responseContentType(op *openapi3.Operation) string {
	if op.Responses == nil {
		return "application/json"
	}

	statuses := make([]string, 0, op.Responses.Len())
	for status := range op.Responses.Map() {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	for _, status := range statuses {
		if !strings.HasPrefix(status, "2") {
			continue
		}
		ref := op.Responses.Map()[status]
		if ref == nil || ref.Value == nil || len(ref.Value.Content) == 0 {
			continue
		}
		types := make([]string, 0, len(ref.Value.Content))
		for t := range ref.Value.Content {
			types = append(types, t)
		}
		sort.Strings(types)
		return types[0]
	}
	return "application/json"
}

// authObject maps the first security scheme (by name, sorted) onto an
// AIIF auth object. Bearer and oauth2 schemes get skeleton instructions,
// acquire and apply sections so the imported document passes structural
// validation out of the box.
func authObject(spec *openapi3.T) map[string]any {
	if spec.Components == nil || len(spec.Components.SecuritySchemes) == 0 {
		return nil
	}

	names := make([]string, 0, len(spec.Components.SecuritySchemes))
	for name := range spec.Components.SecuritySchemes {
		names = append(names, name)
	}
	sort.Strings(names)

	var scheme *openapi3.SecurityScheme
	for _, name := range names {
		ref := spec.Components.SecuritySchemes[name]
		if ref != nil && ref.Value != nil {
			scheme = ref.Value
			break
		}
	}
	if scheme == nil {
		return nil
	}

	authType := "none"
	acquirePath := "/oauth/token"
	switch scheme.Type {
	case "http":
		switch strings.ToLower(scheme.Scheme) {
		case "bearer":
			authType = "bearer"
		case "basic":
			authType = "basic"
		}
	case "apiKey":
		authType = "api_key"
	case "oauth2":
		authType = "oauth2"
		if scheme.Flows != nil && scheme.Flows.ClientCredentials != nil && scheme.Flows.ClientCredentials.TokenURL != "" {
			acquirePath = scheme.Flows.ClientCredentials.TokenURL
		}
	}

	auth := map[string]any{"type": authType}
	if authType == "bearer" || authType == "oauth2" {
		auth["instructions"] = []any{
			"Acquire a token from the token endpoint",
			"Send the token on every request",
		}
		auth["acquire"] = map[string]any{
			"method": "POST",
			"path":   acquirePath,
		}
		auth["apply"] = map[string]any{
			"header": "Authorization",
			"format": "Bearer {token}",
		}
	}
	return auth
}
