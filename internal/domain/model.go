package domain

// Document is a parsed AIIF document. The checker treats the input as
// loosely-typed data: every field access tolerates missing keys and wrong
// types, turning defects into failing check results instead of errors.
type Document map[string]any

// Endpoints returns the document's endpoint sequence, or nil when the
// endpoints field is absent or not a sequence.
func (d Document) Endpoints() []any {
	eps, _ := d["endpoints"].([]any)
	return eps
}

// Allowed value sets for enumerated AIIF fields.
var (
	AllowedMethods = map[string]bool{
		"GET":    true,
		"POST":   true,
		"PUT":    true,
		"PATCH":  true,
		"DELETE": true,
	}

	AllowedParamLocations = map[string]bool{
		"path":  true,
		"query": true,
		"body":  true,
	}

	AllowedAuthTypes = map[string]bool{
		"none":    true,
		"api_key": true,
		"bearer":  true,
		"basic":   true,
		"oauth2":  true,
	}
)

// ConstraintFields are the param fields that count as machine-readable
// constraints for the constraint-publication check.
var ConstraintFields = []string{
	"minimum", "maximum", "min_length", "max_length", "pattern", "format",
}

// Check ids emitted by the rule set. Severities for these ids come from
// the checklist, never from the rules themselves.
const (
	CheckTopLevelRequiredFields = "impl.top_level.required_fields"
	CheckEndpointNameUnique     = "impl.endpoint_name.unique"
	CheckMethodPathUnique       = "impl.method_path.unique"
	CheckParamsUnique           = "impl.params.unique_by_name_location"
	CheckMethodAllowed          = "impl.endpoint.method.allowed"
	CheckParamLocationAllowed   = "impl.params.location.allowed"
	CheckAuthFlowStructured     = "impl.auth_flow.structured_fields"
	CheckAuthDocsRequired       = "impl.auth_docs.required_for_protected"
	CheckAuthRequiredSupported  = "impl.endpoint.auth_required_supported"
	CheckResponseContentType    = "impl.endpoint.response_content_type_supported"
	CheckParamConstraints       = "impl.params.constraints_published"
	CheckAgentRulesConsistent   = "impl.agent_rules.consistent"
)

// CheckResult is one recorded outcome of running a rule. Results are
// append-only and keep the order in which rules executed.
type CheckResult struct {
	CheckID string   `json:"check_id"`
	Level   Severity `json:"level"`
	Passed  bool     `json:"passed"`
	Message string   `json:"message"`
}

// Report bundles everything a renderer or API consumer needs about one
// validation run.
type Report struct {
	DocumentPath string        `json:"document_path,omitempty"`
	CommitHash   string        `json:"commit_hash,omitempty"`
	Results      []CheckResult `json:"results"`
	Summary      Summary       `json:"summary"`
	Compliant    bool          `json:"compliant"`
}
