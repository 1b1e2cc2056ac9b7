// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Error is a status code plus a message and an optional cause. Every error
// produced by this module is an *Error or a plain Status, so callers can
// always recover the status with Code or match it with errors.Is.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

// Error implements error.
func (s Status) Error() string { return s.String() }

// With constructs an error from the status and the given values.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat constructs an error from the status and the formatted message.
// If the format wraps an error, the wrapped error is recorded as the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// Wrap wraps the given error with the status. Wrap returns nil if err is nil.
// If err already carries a known status and the receiver does not add one,
// err is returned unchanged.
func (s Status) Wrap(err error) error {
	if err == nil {
		// The return type must be `error`, otherwise a nil *Error escapes as
		// a non-nil interface
		return nil
	}
	if !s.IsKnownError() {
		if _, ok := err.(*Error); ok {
			return err
		}
	}
	return &Error{Code: s, Cause: err}
}

func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

// Is reports whether the error matches the target status.
func (e *Error) Is(target error) bool {
	s, ok := target.(Status)
	return ok && e.Code == s
}

func (e *Error) Format(f fmt.State, verb rune) {
	if f.Flag('+') && e.Cause != nil {
		fmt.Fprintf(f, "%s: %+v", e.Error(), e.Cause)
		return
	}
	f.Write([]byte(e.Error()))
}

// Code returns the status carried by the error, or UnknownError if the error
// carries none. Code returns OK for a nil error.
func Code(err error) Status {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return UnknownError
}

// Is is a proxy for errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is a proxy for errors.As.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// New is a proxy for errors.New.
func New(text string) error { return errors.New(text) }
