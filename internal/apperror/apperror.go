// Package apperror defines the error taxonomy shared between the storage,
// auth, and HTTP layers. Handlers classify an error with errors.Is and map
// it to a status code; everything unclassified becomes a generic 500.
package apperror

import (
	"errors"
	"fmt"

	"portfolio/internal/validate"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("storage unavailable")
)

// Error is a classified application error. Message is safe to return to
// clients; Fields is populated only for validation failures.
type Error struct {
	Err     error           // sentinel identifying the kind
	Message string          // human-readable, client-safe
	Fields  validate.Errors // per-field messages for validation failures
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that the named resource does not exist.
func NotFound(resource string) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// Validation wraps a non-empty field-error list from the validate package.
func Validation(fields validate.Errors) *Error {
	return &Error{
		Err:     ErrValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// Conflict reports a uniqueness violation, e.g. a taken username.
func Conflict(message string) *Error {
	return &Error{
		Err:     ErrConflict,
		Message: message,
	}
}

// Unauthorized reports missing or invalid credentials. The message is
// deliberately generic: it never reveals whether the username or the
// password was wrong.
func Unauthorized(message string) *Error {
	return &Error{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// Unavailable wraps a backend failure. The cause is kept for logging but
// the client-facing message stays generic.
func Unavailable(cause error) *Error {
	return &Error{
		Err:     fmt.Errorf("%w: %w", ErrUnavailable, cause),
		Message: "An unexpected error occurred",
	}
}
