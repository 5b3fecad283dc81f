// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package intercept

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/stacklok/httpexception/httperr"
)

const (
	// DefaultContentType is the media type of every rendered failure unless
	// configured otherwise.
	DefaultContentType = "application/json; charset=utf-8"

	internalErrorMessage = "Internal server error"
)

// Response is the status code and serializable body rendered for a failure.
type Response struct {
	Status int
	Body   any
}

func envelope(status int, message string) Response {
	return Response{
		Status: status,
		Body:   httperr.Envelope{StatusCode: status, Message: message},
	}
}

// Resolve converts an arbitrary failure value into a Response:
//   - an *httperr.Error anywhere in an error chain renders its own status and body;
//   - otherwise a host category renders its fixed response;
//   - otherwise an error renders 500 with the error's message;
//   - anything else renders 500 with a generic message.
//
// Resolve never panics.
func Resolve(v any, cat Category) (resp Response) {
	defer func() {
		if recover() != nil {
			resp = envelope(http.StatusInternalServerError, internalErrorMessage)
		}
	}()

	err, isErr := v.(error)
	if isErr {
		if he, ok := httperr.As(err); ok {
			return Response{Status: he.HTTPCode(), Body: he.Body()}
		}
	}

	if fixed, ok := categoryResponses[cat]; ok {
		return fixed
	}

	if isErr && err != nil {
		return envelope(http.StatusInternalServerError, errorMessage(err))
	}

	return envelope(http.StatusInternalServerError, internalErrorMessage)
}

// ToResponse is Resolve without a host category. Handlers use it to turn an
// error they constructed into a response they return themselves.
func ToResponse(v any) Response {
	return Resolve(v, CategoryNone)
}

// errorMessage returns err's message, or the generic message if it is empty
// or Error panics.
func errorMessage(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = internalErrorMessage
		}
	}()
	if msg = err.Error(); msg == "" {
		msg = internalErrorMessage
	}
	return msg
}

// Write sets the content type and writes resp as JSON. A body that cannot be
// encoded is replaced by the generic 500 envelope, and the encoding error is
// returned alongside any write error.
func Write(w http.ResponseWriter, resp Response, contentType string) error {
	data, encErr := encode(resp.Body)
	if encErr != nil {
		resp = envelope(http.StatusInternalServerError, internalErrorMessage)
		data, _ = encode(resp.Body)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.Status)
	_, writeErr := w.Write(data)

	return errors.Join(encErr, writeErr)
}

func encode(body any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encoding response body panicked: %v", r)
		}
	}()
	data, err = json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response body: %w", err)
	}
	return data, nil
}
