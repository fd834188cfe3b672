// Package errors provides structured error types for gmtgen.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Precondition violations (PRECONDITION_VIOLATION) mark inconsistent or
// unsupported structure specifications: inserting a block into an occupied
// cell, removing a block that does not exist, or a ramp bounding box whose
// major-axis dimension is not a multiple of the ramp length ratio. They are
// always fatal to the target being generated and never silently recovered.
//
// Out-of-bounds lattice coordinates are deliberately NOT an error anywhere
// in gmtgen. They occur on every neighbor scan along a structure boundary and
// simply mean "no edge added".
//
// # Usage
//
//	err := errors.New(errors.ErrCodePrecondition, "vertex at %s already occupied", coord)
//	if errors.Is(err, errors.ErrCodePrecondition) {
//	    // Reject the structure specification
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "write graph %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Structure specification errors
	ErrCodePrecondition       Code = "PRECONDITION_VIOLATION"
	ErrCodeUnsupported        Code = "UNSUPPORTED"
	ErrCodeInvalidSpec        Code = "INVALID_SPEC"
	ErrCodeInvalidKind        Code = "INVALID_KIND"
	ErrCodeInvalidOrientation Code = "INVALID_ORIENTATION"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
