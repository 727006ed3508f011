package rules

// asObject narrows a loosely-typed value to a mapping.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// endpointName returns an endpoint's name for use in messages, falling
// back to "<unknown>" when the name is missing or not a string.
func endpointName(ep map[string]any) string {
	if name, ok := ep["name"].(string); ok {
		return name
	}
	return "<unknown>"
}

// paramsOf returns an endpoint's params sequence, or nil when params is
// absent or not a sequence.
func paramsOf(ep map[string]any) []any {
	params, _ := ep["params"].([]any)
	return params
}
