package domain

// Summary holds the aggregate counts derived from an ordered result list.
// INFO failures are deliberately not counted: they never affect the
// verdict, only the printed report.
type Summary struct {
	Total          int `json:"total"`
	MustFailures   int `json:"must_failures"`
	ShouldFailures int `json:"should_failures"`
}

// Compliant reports whether the run passed every MUST check. SHOULD and
// INFO failures never affect compliance.
func (s Summary) Compliant() bool { return s.MustFailures == 0 }

// Summarize computes aggregate counts over an ordered result list.
func Summarize(results []CheckResult) Summary {
	var s Summary
	s.Total = len(results)
	for _, r := range results {
		if r.Passed {
			continue
		}
		switch r.Level {
		case SeverityMust:
			s.MustFailures++
		case SeverityShould:
			s.ShouldFailures++
		}
	}
	return s
}

// Process exit statuses. ExitIOError is reserved for the CLI wrapper
// (missing files, invalid syntax) and is never produced here.
const (
	ExitOK           = 0
	ExitNonCompliant = 1
	ExitIOError      = 2
)

// ExitStatus derives the process exit status from aggregate failure
// counts. MUST failures always fail; SHOULD failures fail only under
// strict mode. Pure function, independent of any printed text.
func ExitStatus(mustFailures, shouldFailures int, strict bool) int {
	if mustFailures > 0 {
		return ExitNonCompliant
	}
	if strict && shouldFailures > 0 {
		return ExitNonCompliant
	}
	return ExitOK
}
