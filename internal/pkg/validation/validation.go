package validation

import "fmt"

// Error reports a malformed required input, identifying the offending field.
// It is returned (never panicked) so callers can decide whether to skip the
// record, log, or abort the batch.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errorf creates a new validation Error for the given field.
func Errorf(field, format string, args ...any) *Error {
	return &Error{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
