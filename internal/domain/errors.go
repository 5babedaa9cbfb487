package domain

import "fmt"

// ValidationError reports malformed or missing user input. Handlers surface
// it as a 400 with the message; persisted state is never mutated on a
// validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
