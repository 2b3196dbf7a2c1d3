package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the parent of every input validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNameRequired is returned when the lookup name is absent or blank.
	ErrNameRequired = fmt.Errorf("%w: pokemon name is required", ErrValidation)

	// ErrInvalidName is returned when the lookup name contains characters
	// outside the accepted set.
	ErrInvalidName = fmt.Errorf("%w: invalid pokemon name", ErrValidation)

	// ErrMissingName is returned when an upstream payload carries no name
	// and therefore cannot be projected.
	ErrMissingName = errors.New("payload has no name")
)

// ValidationError describes why a single input field was rejected.
// It wraps one of the sentinel errors above so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
