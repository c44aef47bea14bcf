package ecode

import (
	"errors"
	"fmt"
)

// Error is an error carrying a business code
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// New creates a coded error. An empty message falls back to Text(code).
func New(code int, message string) *Error {
	if message == "" {
		message = Text(code)
	}
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message
func Newf(code int, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("ecode %d: %s", e.Code, e.Message)
}

// Is reports whether target is a coded error with the same code and message
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Cause returns the code of the first coded error in err's chain.
// nil maps to OK and uncoded errors map to ServerErr.
func Cause(err error) int {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ServerErr
}
