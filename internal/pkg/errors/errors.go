package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDatabaseError = errors.New("database error")
	ErrRateLimited   = errors.New("rate limited")
)

// InvalidCredentialsMessage is the only message a caller ever sees for a failed login,
// whether the email was unknown or the password was wrong.
const InvalidCredentialsMessage = "Invalid credentials"

type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    "INTERNAL_ERROR",
	}
}

// Database wraps a storage failure so it matches both ErrDatabaseError and the driver error.
func Database(err error, message string) *Error {
	return &Error{
		Err:     fmt.Errorf("%w: %w", ErrDatabaseError, err),
		Message: message,
		Code:    "DATABASE_ERROR",
	}
}

// NotFound reports a missing record in the form "Project #5 not found".
func NotFound(entity string, id uint) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s #%d not found", entity, id),
		Code:    "NOT_FOUND",
	}
}

func Invalid(message string) *Error {
	return &Error{
		Err:     ErrInvalidInput,
		Message: message,
		Code:    "INVALID_INPUT",
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Err:     ErrUnauthorized,
		Message: message,
		Code:    "UNAUTHORIZED",
	}
}

// Message returns the user-facing message carried by err, or fallback when err
// is not one of ours.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// Is forwards to the standard library so callers only need one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
