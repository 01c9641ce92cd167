package common

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation        Code = "validation_error"
	CodeConflict          Code = "duplicate_key"
	CodeNotFound          Code = "not_found"
	CodeForbidden         Code = "forbidden"
	CodeUnauthorized      Code = "unauthorized"
	CodeInvalidState      Code = "invalid_state"
	CodeInvalidTransition Code = "invalid_transition"
	CodeRateLimited       Code = "rate_limited"
	CodeInternal          Code = "internal_error"
)

type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// NewValidationError carries a per-field breakdown for the response body.
func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// Is reports whether err is (or wraps) an Error with the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf extracts the error code, falling back to CodeInternal for
// errors that did not originate in this package.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
