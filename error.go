package geoaudit

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to HTTP statuses at the
// transport layer. EUNAVAILABLE is used when an optional collaborator
// (e.g. the text generation service) is not configured; callers treat
// it as a signal to fall back, not as a failure to propagate.
const (
	ECONFLICT    = "conflict"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	ERATELIMIT   = "rate_limit"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("geoaudit error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Returns EINTERNAL for non-application errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Returns a generic message for non-application errors.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
