package executor

import (
	"fmt"
)

// LaunchError is returned when a command cannot be located or started.
type LaunchError struct {
	Cmd   string
	Cause error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s: command not found (%v)", e.Cmd, e.Cause)
}
func (e *LaunchError) Unwrap() error { return e.Cause }
