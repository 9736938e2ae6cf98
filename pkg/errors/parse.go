package errors

import (
	"errors"
	"fmt"
)

// InvalidFilenameError indicates a collection archive filename that does not
// match the expected grammar or carries an invalid version string.
//
// Fields:
//   - Filename: The filename that failed to parse
//   - Expected: The expected filename pattern, set for grammar mismatches
//   - Version: The invalid version segment, set for version failures
//   - Err: Underlying version parse error, may be nil
type InvalidFilenameError struct {
	// Filename is the input that failed to parse.
	Filename string

	// Expected is the expected filename pattern (grammar mismatches only).
	Expected string

	// Version is the invalid version segment (version failures only).
	Version string

	// Err is the underlying version parse error, may be nil.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message naming either the expected pattern
//     or the invalid version value
func (e *InvalidFilenameError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("invalid filename %s: version %q is not a valid semantic version", e.Filename, e.Version)
	}
	return fmt.Sprintf("invalid filename %s. Expected: %s", e.Filename, e.Expected)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *InvalidFilenameError) Unwrap() error {
	return e.Err
}

// IsInvalidFilenameError checks if err is an InvalidFilenameError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *InvalidFilenameError: The InvalidFilenameError if err is one, nil otherwise
//   - bool: true if err is an InvalidFilenameError
func IsInvalidFilenameError(err error) (*InvalidFilenameError, bool) {
	var fe *InvalidFilenameError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// NotFoundError indicates a metadata file path that does not exist or
// cannot be opened for reading.
//
// Fields:
//   - Path: The file path that could not be read
//   - Err: Underlying filesystem error
type NotFoundError struct {
	// Path is the file path that could not be read.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message including the path
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying filesystem error
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsNotFoundError checks if err is a NotFoundError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *NotFoundError: The NotFoundError if err is one, nil otherwise
//   - bool: true if err is a NotFoundError
func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}

// MalformedDataError indicates metadata content that could not be decoded.
//
// Fields:
//   - Path: The file path whose contents failed to decode
//   - Err: Underlying decode error
type MalformedDataError struct {
	// Path is the file path whose contents failed to decode.
	Path string

	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message including the path and decode error
func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed data in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying decode error
func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// IsMalformedDataError checks if err is a MalformedDataError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *MalformedDataError: The MalformedDataError if err is one, nil otherwise
//   - bool: true if err is a MalformedDataError
func IsMalformedDataError(err error) (*MalformedDataError, bool) {
	var mde *MalformedDataError
	if errors.As(err, &mde) {
		return mde, true
	}
	return nil, false
}
