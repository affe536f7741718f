// Package apperr defines the error taxonomy every handler maps onto HTTP
// statuses. Services return errors built with E; the boundary checks them
// with errors.Is against the sentinels below.
package apperr

import (
	"github.com/pkg/errors"
)

var (
	ErrValidation   = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

type appError struct {
	kind error
	msg  string
}

func (e *appError) Error() string { return e.msg }
func (e *appError) Unwrap() error { return e.kind }

// E returns an error of the given kind carrying a client-facing message.
func E(kind error, msg string) error {
	return &appError{kind: kind, msg: msg}
}
