// Package errors provides structured errors for the Planforge application.
//
// Every error carries a machine-readable Code alongside the formatted
// message, so the CLI and library callers can branch on the category
// without string matching, and wrapped causes survive for errors.Is/As.
//
// # Error Codes
//
// Codes group by prefix: INVALID_* for input validation, layout
// failures by subject (INSUFFICIENT_AREA, PACKING_FAILED), and
// INTERNAL_* for bugs.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidProgram, "bedrooms must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidProgram) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPlan, origErr, "failed to decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidProgram   Code = "INVALID_PROGRAM"
	ErrCodeInvalidFootprint Code = "INVALID_FOOTPRINT"
	ErrCodeInvalidOptions   Code = "INVALID_OPTIONS"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPlan      Code = "INVALID_PLAN"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Layout failures (fatal, abort the pipeline)
	ErrCodeInsufficientArea Code = "INSUFFICIENT_AREA"
	ErrCodePackingFailed    Code = "PACKING_FAILED"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeCache        Code = "CACHE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a formatted message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders "CODE: message" with the cause appended when present.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to the errors.Is/As chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error that records cause as the underlying error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether some error in err's chain is an *Error with the
// given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or the
// empty string when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error
// values, and err.Error() for anything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
