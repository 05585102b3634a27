// Package apperror defines the error kinds that cross the service boundary.
// Controllers return them unchanged and serverutils maps them to HTTP statuses.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrStorage             = errors.New("storage error")
	ErrAssetMissing        = errors.New("asset missing")
)

// Error carries one of the sentinel kinds above plus a client facing message
// and, optionally, the underlying cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Constraint(message string, cause error) error {
	return &Error{Kind: ErrConstraintViolation, Message: message, Cause: cause}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func Storage(cause error) error {
	return &Error{Kind: ErrStorage, Message: "storage failure", Cause: cause}
}

func AssetMissing(format string, args ...any) error {
	return &Error{Kind: ErrAssetMissing, Message: fmt.Sprintf(format, args...)}
}

// Message returns the client facing message of err. Storage failures never
// leak their cause.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// Code is the machine readable name of the kind carried by err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrConstraintViolation):
		return "CONSTRAINT_VIOLATION"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrAssetMissing):
		return "ASSET_MISSING"
	default:
		return "STORAGE_ERROR"
	}
}
