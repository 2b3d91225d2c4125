// Package apperror defines the tagged error taxonomy shared by all request
// handlers. Every failure that can reach a route boundary is one of a small
// set of kinds, each with a user-facing message and an HTTP status mapping.
package apperror

import (
	"errors"
	"fmt"
)

// Error is an application error with a classification and a message safe to
// show to the user. The wrapped cause, if any, is kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// New creates an Error of the given kind.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidation creates a validation error (bad or missing input).
func NewValidation(message string, err error) *Error {
	return New(KindValidation, message, err)
}

// NewConflict creates a conflict error (duplicate username or slug).
func NewConflict(message string, err error) *Error {
	return New(KindConflict, message, err)
}

// NewNotFound creates a not-found error.
func NewNotFound(message string, err error) *Error {
	return New(KindNotFound, message, err)
}

// NewAuth creates an authentication error. Callers must take care to use the
// same message for every failure mode so users cannot be enumerated.
func NewAuth(message string, err error) *Error {
	return New(KindAuth, message, err)
}

// NewInternal creates an internal error.
func NewInternal(message string, err error) *Error {
	return New(KindInternal, message, err)
}

// KindOf returns the kind of err, or KindInternal for untagged errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// UserMessage returns the user-facing message for err. Untagged errors get a
// generic message so internal details never leak into a flash.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return is(err, KindValidation)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return is(err, KindConflict)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return is(err, KindNotFound)
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	return is(err, KindAuth)
}

func is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
