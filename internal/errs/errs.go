// Package errs defines the error taxonomy used across the service.
//
// A BadRequest describes a problem with the caller's parameters and maps to
// an HTTP 400. Everything else surfaced by the pipeline is treated as a
// server-side failure and maps to an HTTP 500.
package errs

import (
	"errors"
	"fmt"
)

// BadRequest is a validation failure caused by the request parameters.
// The message always names the offending field or value.
type BadRequest struct {
	msg string
}

func (e *BadRequest) Error() string { return e.msg }

// BadRequestf builds a BadRequest from a format string.
func BadRequestf(format string, args ...any) error {
	return &BadRequest{msg: fmt.Sprintf(format, args...)}
}

// IsBadRequest reports whether err is, or wraps, a BadRequest.
func IsBadRequest(err error) bool {
	var br *BadRequest
	return errors.As(err, &br)
}

// ServerError wraps an internal failure with a short description that is
// safe to hand back to the caller.
type ServerError struct {
	Op  string
	Err error
}

func (e *ServerError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *ServerError) Unwrap() error { return e.Err }

// Serverf tags err as a server-side failure of the named operation.
func Serverf(op string, err error) error {
	return &ServerError{Op: op, Err: err}
}
