package tagesschau

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// EUNPROCESSABLE signals structurally unusable input (the archive listing
// container is absent or unrecognizable); EUNSUPPORTED signals an input
// class that is out of scope by design (live-ticker and liveblog pages)
// and should not be retried. The two are never conflated: callers decide
// retry-vs-skip based on the code.
const (
	EINVALID       = "invalid"
	ENOTFOUND      = "not_found"
	EUNSUPPORTED   = "unsupported"
	EUNPROCESSABLE = "unprocessable"
	EINTERNAL      = "internal"
)

// Error represents an application-specific error. Errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is the machine-readable error code.
	Code string

	// Message is the human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("tagesschau error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
