package client

import (
	"errors"
	"fmt"
)

// Code is a machine-readable classification of an API failure.
type Code string

const (
	// CodeNetwork covers transport and connection failures, including
	// unexpected server errors.
	CodeNetwork Code = "NETWORK"
	// CodeAuth indicates the backend rejected the admin credential.
	CodeAuth Code = "AUTH"
	// CodeValidation indicates malformed action parameters.
	CodeValidation Code = "VALIDATION"
	// CodeInvalidState indicates an action attempted outside its allowed
	// state, such as ending a completed session.
	CodeInvalidState Code = "INVALID_STATE"
	// CodeNotFound indicates the referenced session or attempt is absent.
	CodeNotFound Code = "NOT_FOUND"
	// CodeMalformedResponse indicates a payload the client could not decode
	// into its typed form.
	CodeMalformedResponse Code = "MALFORMED_RESPONSE"
	// CodePartialFetch indicates some concurrent detail fetches failed while
	// others succeeded during a refresh.
	CodePartialFetch Code = "PARTIAL_FETCH"
)

// Error is the typed failure returned by Arena API calls. It always carries
// the operation and target so callers can render a specific message.
type Error struct {
	Code Code
	// Op names the failing API operation, e.g. "list sessions".
	Op string
	// Target identifies the session or attempt addressed, empty for
	// collection operations.
	Target  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b []byte
	b = append(b, e.Op...)
	if e.Target != "" {
		b = append(b, ' ')
		b = append(b, e.Target...)
	}
	if e.Message != "" {
		b = append(b, ": "...)
		b = append(b, e.Message...)
	}
	if e.Cause != nil {
		b = append(b, ": "...)
		b = append(b, e.Cause.Error()...)
	}
	return string(b)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an API error with a code, operation, target, and message.
func New(code Code, op, target, message string) *Error {
	return &Error{Code: code, Op: op, Target: target, Message: message}
}

// Wrap creates an API error around an underlying cause.
func Wrap(code Code, op, target string, cause error) *Error {
	return &Error{Code: code, Op: op, Target: target, Cause: cause}
}

// Wrapf creates an API error with a formatted message around a cause.
func Wrapf(code Code, op, target string, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Target: target, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf extracts the code from an error chain, or CodeNetwork when the
// error carries no code.
func CodeOf(err error) Code {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeNetwork
}

// IsCode reports whether the error chain carries the given code.
func IsCode(err error, code Code) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
