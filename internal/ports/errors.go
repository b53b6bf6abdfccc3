package ports

import (
	"fmt"
	"strings"
)

// ErrNotFound marks an expected resource that is absent.
var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }

// FieldError names one invalid input field. Field is a dotted path such as
// "options.gasOptimization"; "body" refers to the payload as a whole.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing caller input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Message: msg, Fields: []FieldError{{Field: field, Message: msg}}}
}

// UpstreamError wraps the failure of a best-effort dependency. Callers log it
// and carry on.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }
