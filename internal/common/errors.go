package common

import "errors"

// Code classifies an error for HTTP status mapping.
type Code string

const (
	CodeValidation   Code = "validation"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeDownstream   Code = "downstream"
)

// Error is the coded error type used across all modules.
type Error struct {
	Code    Code
	Message string
	// Field names the offending input field for validation errors.
	Field string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError wraps cause (may be nil) with a code and message.
func NewError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// NewValidationError reports invalid client input for a named field.
func NewValidationError(field, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Field: field}
}

func NewNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeDownstream for
// uncoded errors so unexpected failures map to a 500.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeDownstream
}

// FieldOf returns the offending field name, if any.
func FieldOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Field
	}
	return ""
}
