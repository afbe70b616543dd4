package sim

import (
	"fmt"
	"strings"
)

// InvalidCwdError indicates the working directory no longer resolves against
// the session's tree.
type InvalidCwdError struct {
	Cwd   []string
	cause error
}

func (e *InvalidCwdError) Error() string {
	return fmt.Sprintf("/%s: invalid working directory: %s", strings.Join(e.Cwd, "/"), e.cause)
}

func (e *InvalidCwdError) Unwrap() error {
	return e.cause
}
