package errors

import (
	"errors"
	"fmt"
)

// Exit codes for wsbctl
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitMalformedDocument = 2
	ExitOutOfRange        = 3
	ExitProfileNotFound   = 4
	ExitConfigError       = 5
	ExitIOError           = 6
)

// Error kinds. Match them with errors.Is.
var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrOutOfRange        = errors.New("value out of range")
	ErrProfileNotFound   = errors.New("profile not found")
)

// WsbError is the base error type for wsbctl
type WsbError struct {
	Code    int
	Kind    error
	Message string
	Cause   error
}

func (e *WsbError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WsbError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the kind of this error.
func (e *WsbError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// ExitCode returns the exit code for this error
func (e *WsbError) ExitCode() int {
	return e.Code
}

// New creates a new WsbError
func New(code int, message string) *WsbError {
	return &WsbError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a WsbError
func Wrap(code int, message string, cause error) *WsbError {
	return &WsbError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// MalformedDocument returns an error for a JSON document that cannot be loaded
func MalformedDocument(message string, cause error) *WsbError {
	return &WsbError{
		Code:    ExitMalformedDocument,
		Kind:    ErrMalformedDocument,
		Message: message,
		Cause:   cause,
	}
}

// OutOfRange returns an error for a numeric value outside [min, max]
func OutOfRange(field string, value, min, max int) *WsbError {
	return &WsbError{
		Code:    ExitOutOfRange,
		Kind:    ErrOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d (got %d)", field, min, max, value),
	}
}

// OutOfRangef returns an OutOfRange error with a formatted message
func OutOfRangef(format string, args ...any) *WsbError {
	return &WsbError{
		Code:    ExitOutOfRange,
		Kind:    ErrOutOfRange,
		Message: fmt.Sprintf(format, args...),
	}
}

// ProfileNotFound returns an error for a missing profile
func ProfileNotFound(name string) *WsbError {
	return &WsbError{
		Code:    ExitProfileNotFound,
		Kind:    ErrProfileNotFound,
		Message: fmt.Sprintf("profile not found: %s", name),
	}
}

// ConfigError returns an error for settings issues
func ConfigError(message string, cause error) *WsbError {
	return Wrap(ExitConfigError, message, cause)
}

// IOError returns an error for a failed file operation
func IOError(op, path string, cause error) *WsbError {
	return Wrap(ExitIOError, fmt.Sprintf("failed to %s %s", op, path), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *WsbError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var wsbErr *WsbError
	if errors.As(err, &wsbErr) {
		return wsbErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
