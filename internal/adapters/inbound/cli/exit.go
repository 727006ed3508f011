package cli

import (
	"errors"

	"github.com/aiif/aiifcheck/internal/domain"
)

// exitError carries a process exit status through cobra's error return.
// Commands return it instead of calling os.Exit so they stay testable.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// ExitCode maps an Execute error to a process exit status: the embedded
// code for exitErrors, 1 for anything else, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return domain.ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return domain.ExitNonCompliant
}
