package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")

	// Lookup Errors
	ErrAuthorNotFound   = errors.New("author not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrContractNotFound = errors.New("contract not found")
)

// ValidationError reports the field that broke its rule and what was expected.
// It is the only error returned by construction and mutation in this package.
type ValidationError struct {
	Field   string // Field name as exposed in JSON (e.g. "royalties")
	Message string // Human-readable expectation
	Err     error  // Underlying rule error
}

// Error implements error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// newValidationError builds a ValidationError for field with the given message
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     errors.New(message),
	}
}
