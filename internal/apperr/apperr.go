package apperr

import (
	"errors"   // Error wrapping helpers
	"net/http" // HTTP status codes
)

// Kind classifies an error into the HTTP-facing taxonomy
type Kind int

// Error kinds, ordered roughly by severity
const (
	KindBadRequest   Kind = iota // Validation failures, duplicate unique fields
	KindUnauthorized             // Missing, invalid or expired token
	KindForbidden                // Ownership mismatch
	KindNotFound                 // Missing resource or unmatched route
	KindInternal                 // Store/cache failures not classified above
)

// Error carries a client-facing message, a kind and an optional wrapped cause
type Error struct {
	Kind    Kind   // Classification for status mapping
	Message string // Safe to return to clients
	Err     error  // Underlying cause, never sent to clients in production
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is/errors.As
func (e *Error) Unwrap() error { return e.Err }

// BadRequest builds a validation/conflict error
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Unauthorized builds an authentication error
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden builds an ownership error
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound builds a missing-resource error
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Internal wraps an unexpected store/cache failure
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// Status maps an error to its HTTP status code; unclassified errors are 500
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message extracts the client-facing message; unclassified errors are masked
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal Server Error"
}
