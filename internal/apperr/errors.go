// Package apperr defines the error taxonomy shared by services and handlers.
// Services build these; handlers map them onto HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Validation      Kind = iota + 1 // malformed or missing input
	Unauthenticated                 // missing, invalid or expired token
	Forbidden                       // role/location policy denial
	NotFound                        // missing resource, or resource outside caller's visibility
	Conflict                        // duplicate unique key
	Storage                         // unexpected persistence failure
)

type Error struct {
	Kind    Kind
	Message string // user-facing
	Err     error  // internal detail, logged but not shown in production
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an internal cause to a user-facing message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// KindOf reports the kind of err; unrecognized errors count as Storage.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
