// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is an error bound to a catalog Kind. Its status code and short code
// always come from the kind; its message and optional structured data come
// from the payload it was constructed with. An Error is immutable.
type Error struct {
	kind    Kind
	message string
	data    map[string]any
	cause   error
}

// Envelope is the default response body of an Error.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// New creates an Error of the given kind. A nil payload yields the kind's
// default message. New panics if kind is not a member of the catalog.
func New(kind Kind, p Payload) *Error {
	e := &Error{
		kind:    kind,
		message: kind.DefaultMessage(),
	}
	if p != nil {
		p.apply(e)
	}
	return e
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, Message(fmt.Sprintf(format, args...)))
}

// Wrap binds err to a kind. The message of the result is err's message and
// the result unwraps to err. If err is nil, Wrap returns nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return New(kind, Cause(err))
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the error the Error was constructed from, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the catalog kind of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int {
	return e.kind.Status()
}

// ShortCode returns the short code of the error's kind, e.g. BAD_REQUEST.
func (e *Error) ShortCode() string {
	return e.kind.Code()
}

// Message returns the resolved message of the error.
func (e *Error) Message() string {
	return e.message
}

// Data returns the structured payload the error was constructed with, or nil.
func (e *Error) Data() map[string]any {
	return e.data
}

// Body returns the response body for the error. Structured data, when
// present, replaces the envelope entirely and is returned verbatim.
func (e *Error) Body() any {
	if e.data != nil {
		return e.data
	}
	return Envelope{StatusCode: e.HTTPCode(), Message: e.message}
}

// MarshalJSON encodes the response body of the error.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Body())
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var he *Error
	if errors.As(err, &he) && he != nil {
		return he, true
	}
	return nil, false
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	he, ok := As(err)
	return ok && he.kind == kind
}

// Code extracts the HTTP status code from an error.
// It unwraps the error chain looking for an *Error.
// If none is found, it returns http.StatusInternalServerError (500).
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if he, ok := As(err); ok {
		return he.HTTPCode()
	}

	return http.StatusInternalServerError
}
