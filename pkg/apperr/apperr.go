// Package apperr carries the error kinds services return to the HTTP layer.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind string

const (
	NotFound     Kind = "not_found"
	Forbidden    Kind = "forbidden"
	InvalidInput Kind = "invalid_input"
	InvalidState Kind = "invalid_state"
	Unauthorized Kind = "unauthorized"
	Conflict     Kind = "conflict"
	ServerError  Kind = "server_error"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func NewNotFound(msg string) *Error     { return New(NotFound, msg) }
func NewForbidden(msg string) *Error    { return New(Forbidden, msg) }
func NewInvalidInput(msg string) *Error { return New(InvalidInput, msg) }
func NewInvalidState(msg string) *Error { return New(InvalidState, msg) }
func NewUnauthorized(msg string) *Error { return New(Unauthorized, msg) }
func NewConflict(msg string) *Error     { return New(Conflict, msg) }

// Internal wraps a storage or other unexpected failure.
func Internal(err error) *Error { return Wrap(ServerError, "internal error", err) }

// KindOf classifies any error. A bare gorm.ErrRecordNotFound counts as NotFound.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}
	return ServerError
}

// Message is the text safe to show a client.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Kind == ServerError {
			return "internal error"
		}
		if ae.Msg != "" {
			return ae.Msg
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "not found"
	}
	return "internal error"
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
