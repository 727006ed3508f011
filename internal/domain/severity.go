package domain

// Severity classifies a check's weight in the compliance verdict.
// MUST failures block compliance, SHOULD failures block only in strict
// mode, INFO never blocks.
type Severity string

const (
	SeverityMust   Severity = "MUST"
	SeverityShould Severity = "SHOULD"
	SeverityInfo   Severity = "INFO"
)

// ParseSeverity maps a raw level string to a Severity. Anything that is
// not exactly MUST or SHOULD, including the empty string, falls back to
// INFO so a sloppy checklist can never escalate a check by accident.
func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityMust):
		return SeverityMust
	case string(SeverityShould):
		return SeverityShould
	default:
		return SeverityInfo
	}
}
