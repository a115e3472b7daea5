package pagemark

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These codes classify errors for programmatic handling. Machine-readable
// codes travel with the error; human-readable messages are extracted with
// ErrorMessage.
const (
	ECLASSIFICATION = "classification" // video-shaped URL with no extractable ID
	EEXTRACTION     = "extraction"     // page yielded no article-shaped content
	EFETCH          = "fetch"          // network call failed or returned unusable content
	EINTERNAL       = "internal"       // internal error
	EINVALID        = "invalid"        // validation failed
	ENOCAPTIONS     = "nocaptions"     // every transcript strategy exhausted
	ENOTFOUND       = "not_found"      // entity does not exist
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("pagemark error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
