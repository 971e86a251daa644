package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the API surfaces. Services return
// errors built with the constructors below; controllers match with errors.Is
// and map each class to its HTTP status.
var (
	ErrValidation   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error carries a client-facing message plus the class it belongs to.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func New(kind error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return New(ErrValidation, format, args...)
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(ErrUnauthorized, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return New(ErrForbidden, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return New(ErrNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return New(ErrConflict, format, args...)
}
