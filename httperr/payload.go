// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

// Payload is the optional argument of New and the per-kind constructors.
// It is one of Message, Data or the value returned by Cause; nil means no
// payload.
type Payload interface {
	apply(e *Error)
}

// Message overrides the default message of the kind.
type Message string

func (m Message) apply(e *Error) {
	e.message = string(m)
}

// Data is a structured payload. It becomes the whole response body of the
// error, and the error keeps the kind's default message. A nil Data is
// treated as no payload.
type Data map[string]any

func (d Data) apply(e *Error) {
	if d == nil {
		return
	}
	e.data = d
}

type cause struct {
	err error
}

// apply keeps the kind's default message, and drops the cause, when the
// error cannot report its message (a typed nil pointer, or an Error method
// that panics).
func (c cause) apply(e *Error) {
	msg, ok := causeMessage(c.err)
	if !ok {
		return
	}
	e.message = msg
	e.cause = c.err
}

func causeMessage(err error) (msg string, ok bool) {
	defer func() {
		if recover() != nil {
			msg, ok = "", false
		}
	}()
	return err.Error(), true
}

// Cause builds a payload from an existing error. Only the error's message
// reaches the response body. Cause(nil) is no payload.
func Cause(err error) Payload {
	if err == nil {
		return nil
	}
	return cause{err: err}
}
