package project

import "fmt"

// ValidationError reports a malformed command-line value. It is returned
// before any filesystem mutation happens.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ConflictError reports a destination that cannot be used.
type ConflictError struct {
	Path   string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot use %s: %s", e.Path, e.Reason)
}
