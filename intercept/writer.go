// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package intercept

import "net/http"

// ResponseWriter records whether the response has started, so that a
// failure raised after the status line was sent is not rendered into the
// middle of another body.
type ResponseWriter struct {
	http.ResponseWriter
	started bool
}

// NewResponseWriter wraps w. A w that is already a *ResponseWriter is
// returned as is.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// Started reports whether WriteHeader, Write or Flush has been called.
func (rw *ResponseWriter) Started() bool {
	return rw.started
}

func (rw *ResponseWriter) WriteHeader(status int) {
	rw.started = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *ResponseWriter) Write(b []byte) (int, error) {
	rw.started = true
	return rw.ResponseWriter.Write(b)
}

// Flush implements http.Flusher when the wrapped writer does.
func (rw *ResponseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		rw.started = true
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the wrapped writer.
func (rw *ResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func responseStarted(w http.ResponseWriter) bool {
	rw, ok := w.(*ResponseWriter)
	return ok && rw.Started()
}
