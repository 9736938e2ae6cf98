package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a user-input shape error.
//
// It is raised for malformed requirements YAML, a wrong top-level manifest
// shape, or a missing required per-entry field. The message always carries a
// human-readable description including, where feasible, the offending raw
// text or field name, so it can surface directly to the end user.
//
// Fields:
//   - Field: Name of the invalid field or entry, if known
//   - Message: Description of what's wrong
//   - Expected: What a valid value or shape should look like
//   - Err: Underlying parse error, may be nil
type ValidationError struct {
	// Field is the name of the field or entry that failed validation.
	Field string

	// Message describes what is wrong with the input.
	Message string

	// Expected describes what a valid value or document shape looks like.
	Expected string

	// Err is the underlying error (e.g. the YAML parse error), may be nil.
	Err error
}

// Error implements the error interface.
//
// Formats the message from the available fields. The field name is prefixed
// when set, and the expected-shape hint is appended when present.
//
// Returns:
//   - string: Formatted error message
func (e *ValidationError) Error() string {
	var sb strings.Builder

	if e.Field != "" {
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	} else {
		sb.WriteString(e.Message)
	}

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf(" (expected: %s)", e.Expected))
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewValidationError creates a ValidationError with a formatted message.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ValidationError: New validation error
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NewFieldValidationError creates a ValidationError for a specific field.
//
// Parameters:
//   - field: The field or entry name that failed validation
//   - message: Description of the error
//   - expected: What a valid value looks like, may be empty
//
// Returns:
//   - *ValidationError: New validation error
func NewFieldValidationError(field, message, expected string) *ValidationError {
	return &ValidationError{
		Field:    field,
		Message:  message,
		Expected: expected,
	}
}
