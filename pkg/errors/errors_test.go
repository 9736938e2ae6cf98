package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitError tests ExitError formatting and unwrapping.
//
// It verifies:
//   - Message takes precedence over the wrapped error
//   - The wrapped error is used when no message is set
//   - A default message names the exit code when nothing else is available
func TestExitError(t *testing.T) {
	t.Run("message precedence", func(t *testing.T) {
		err := &ExitError{Code: ExitFailure, Message: "boom", Err: os.ErrClosed}
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("wrapped error fallback", func(t *testing.T) {
		err := NewExitError(ExitFailure, os.ErrClosed)
		assert.Equal(t, os.ErrClosed.Error(), err.Error())
		assert.Equal(t, os.ErrClosed, err.Unwrap())
	})

	t.Run("code-only default", func(t *testing.T) {
		err := &ExitError{Code: ExitValidationError}
		assert.Contains(t, err.Error(), "3")
	})

	t.Run("formatted constructor", func(t *testing.T) {
		err := NewExitErrorf(ExitFailure, "failed on %s", "input")
		assert.Equal(t, "failed on input", err.Error())
	})
}

// TestGetExitCode tests the error-to-exit-code mapping.
//
// It verifies:
//   - nil maps to success
//   - ExitError codes pass through, including when wrapped
//   - Validation-class errors map to the validation exit code
//   - Unknown errors map to failure
func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "exit error", err: NewExitError(ExitPartialFailure, nil), want: ExitPartialFailure},
		{name: "wrapped exit error", err: fmt.Errorf("outer: %w", NewExitError(ExitValidationError, nil)), want: ExitValidationError},
		{name: "validation error", err: NewValidationError("bad shape"), want: ExitValidationError},
		{name: "invalid filename error", err: &InvalidFilenameError{Filename: "x", Expected: "pattern"}, want: ExitValidationError},
		{name: "not found error", err: &NotFoundError{Path: "p", Err: os.ErrNotExist}, want: ExitFailure},
		{name: "plain error", err: os.ErrClosed, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

// TestValidationError tests ValidationError formatting and detection.
//
// It verifies:
//   - Field names prefix the message when set
//   - The expected-shape hint is appended when present
//   - IsValidationError matches wrapped instances
func TestValidationError(t *testing.T) {
	t.Run("field prefix", func(t *testing.T) {
		err := NewFieldValidationError("version", "must be a string", "string value")
		assert.Equal(t, "version: must be a string (expected: string value)", err.Error())
	})

	t.Run("message only", func(t *testing.T) {
		err := NewValidationError("wrong shape: %s", "scalar")
		assert.Equal(t, "wrong shape: scalar", err.Error())
	})

	t.Run("detection through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewValidationError("inner"))
		ve, ok := IsValidationError(wrapped)
		require.True(t, ok)
		assert.Equal(t, "inner", ve.Message)
	})

	t.Run("non-match", func(t *testing.T) {
		_, ok := IsValidationError(os.ErrClosed)
		assert.False(t, ok)
	})
}

// TestInvalidFilenameError tests InvalidFilenameError formatting.
//
// It verifies:
//   - Grammar mismatches name the expected pattern
//   - Version failures name the invalid version value
func TestInvalidFilenameError(t *testing.T) {
	t.Run("grammar mismatch", func(t *testing.T) {
		err := &InvalidFilenameError{Filename: "x.zip", Expected: "{namespace}-{name}-{version}.tar.gz"}
		assert.Contains(t, err.Error(), "{namespace}-{name}-{version}.tar.gz")
		assert.Contains(t, err.Error(), "x.zip")
	})

	t.Run("invalid version", func(t *testing.T) {
		err := &InvalidFilenameError{Filename: "a-b-bad.tar.gz", Version: "bad"}
		assert.Contains(t, err.Error(), `"bad"`)
	})
}

// TestNotFoundAndMalformed tests the metadata loader error types.
//
// It verifies:
//   - Both types carry their path in the message
//   - Both unwrap to the underlying error
//   - The As-based helpers detect each type
func TestNotFoundAndMalformed(t *testing.T) {
	nfe := &NotFoundError{Path: "/missing.json", Err: os.ErrNotExist}
	assert.Contains(t, nfe.Error(), "/missing.json")
	assert.Equal(t, os.ErrNotExist, nfe.Unwrap())

	got, ok := IsNotFoundError(fmt.Errorf("wrap: %w", nfe))
	require.True(t, ok)
	assert.Equal(t, nfe, got)

	mde := &MalformedDataError{Path: "/bad.json", Err: os.ErrInvalid}
	assert.Contains(t, mde.Error(), "/bad.json")
	assert.Equal(t, os.ErrInvalid, mde.Unwrap())

	_, ok = IsMalformedDataError(mde)
	assert.True(t, ok)
}

// TestPartialSuccessError tests partial-success reporting.
//
// It verifies:
//   - The message summarizes succeeded and failed counts
//   - IsPartialSuccess detects instances
func TestPartialSuccessError(t *testing.T) {
	err := NewPartialSuccessError(3, 2, []error{os.ErrClosed, os.ErrInvalid})
	assert.Equal(t, "3 succeeded, 2 failed", err.Error())

	pse, ok := IsPartialSuccess(err)
	require.True(t, ok)
	assert.Len(t, pse.Errors, 2)
}
