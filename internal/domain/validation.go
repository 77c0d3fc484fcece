package domain

import (
	"fmt"
	"strings"
)

// FieldError reports one violated input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in a request, not just
// the first one. It satisfies error so it can travel through the usual
// (value, error) returns and be recovered with errors.As.
type ValidationErrors struct {
	Violations []FieldError
}

func (e *ValidationErrors) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a violation.
func (e *ValidationErrors) Add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any violation was collected.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Violations) > 0
}

// ErrOrNil returns the collection as an error when non-empty.
func (e *ValidationErrors) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
