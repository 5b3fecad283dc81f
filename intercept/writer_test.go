// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package intercept

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		want  bool
	}{
		{"untouched", func(http.ResponseWriter) {}, false},
		{"header set only", func(w http.ResponseWriter) { w.Header().Set("X-Trace", "1") }, false},
		{"write header", func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }, true},
		{"write body", func(w http.ResponseWriter) { _, _ = w.Write([]byte("x")) }, true},
		{"flush", func(w http.ResponseWriter) { w.(http.Flusher).Flush() }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := NewResponseWriter(rec)
			tt.write(rw)

			assert.Equal(t, tt.want, rw.Started())
			assert.Equal(t, tt.want, responseStarted(rw))
		})
	}
}

func TestNewResponseWriter_Idempotent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)
	require.Same(t, rw, NewResponseWriter(rw))
	assert.Equal(t, rec, rw.Unwrap())
	assert.False(t, responseStarted(rec), "plain writers are never reported as started")
}

func TestResponseWriter_ResponseController(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	require.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rec.Flushed)
}
