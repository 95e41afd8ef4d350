package field

import (
	"fmt"
	"strings"
)

// ValidateError reports a value that failed conversion or a constraint
// check. It is always recoverable: render loops catch it, surface the
// message, and re-prompt. Extra context values are space-joined after the
// message, matching the terminal output format.
type ValidateError struct {
	Message string
	Values  []any
}

// NewValidateError builds a ValidateError with optional context values.
func NewValidateError(message string, values ...any) *ValidateError {
	return &ValidateError{Message: message, Values: values}
}

func (e *ValidateError) Error() string {
	if len(e.Values) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Values)+1)
	parts = append(parts, e.Message)
	for _, v := range e.Values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
