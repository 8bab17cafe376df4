package path

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrNotFound      = errors.New("No such file or directory")
	ErrNotADirectory = errors.New("Not a directory")
)

// -- Error Types --

// ResolveError is returned when a path cannot be resolved to an existing
// directory. Cause is one of the sentinels above or the underlying OS error.
type ResolveError struct {
	Path  string
	Cause error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Cause)
}
func (e *ResolveError) Unwrap() error { return e.Cause }
