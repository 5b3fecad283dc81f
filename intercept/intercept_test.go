// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package intercept

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/httpexception/httperr"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

type panickyError struct{}

func (*panickyError) Error() string { panic("no message for you") }

func TestResolve(t *testing.T) {
	t.Parallel()

	var nilHTTPErr *httperr.Error

	tests := []struct {
		name       string
		value      any
		category   Category
		wantStatus int
		wantBody   string
	}{
		{
			name:       "structured error with message",
			value:      httperr.NotFound(httperr.Message("missing")),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"statusCode":404,"message":"missing"}`,
		},
		{
			name:       "structured error with data",
			value:      httperr.BadRequest(httperr.Data{"error": "VALIDATION_FAILED", "field": "email"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","field":"email"}`,
		},
		{
			name:       "wrapped structured error",
			value:      fmt.Errorf("loading user: %w", httperr.Forbidden(nil)),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"statusCode":403,"message":"Forbidden"}`,
		},
		{
			name:       "structured error wins over category",
			value:      httperr.Conflict(nil),
			category:   CategoryRouteNotFound,
			wantStatus: http.StatusConflict,
			wantBody:   `{"statusCode":409,"message":"Conflict"}`,
		},
		{
			name:       "route not found category",
			category:   CategoryRouteNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"statusCode":404,"message":"Not Found"}`,
		},
		{
			name:       "cookie signature category",
			value:      errors.New("bad cookie"),
			category:   CategoryCookieSignature,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"statusCode":400,"message":"Invalid cookie signature"}`,
		},
		{
			name:       "validation category",
			category:   CategoryValidation,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"statusCode":400,"message":"Invalid request payload"}`,
		},
		{
			name:       "body parse category",
			category:   CategoryBodyParse,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"statusCode":400,"message":"Invalid request payload"}`,
		},
		{
			name:       "file type category",
			category:   CategoryFileType,
			wantStatus: http.StatusUnsupportedMediaType,
			wantBody:   `{"statusCode":415,"message":"Invalid file type"}`,
		},
		{
			name:       "malformed token category",
			category:   CategoryMalformedToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"statusCode":401,"message":"Invalid token"}`,
		},
		{
			name:       "method not allowed category",
			category:   CategoryMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"statusCode":405,"message":"Method Not Allowed"}`,
		},
		{
			name:       "generic error",
			value:      errors.New("x"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"x"}`,
		},
		{
			name:       "generic error with empty message",
			value:      errors.New(""),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name:       "error whose message panics",
			value:      &panickyError{},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name:       "typed nil structured error",
			value:      nilHTTPErr,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name:       "raw string",
			value:      "Some error message",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name:       "nil",
			value:      nil,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name:       "number",
			value:      42,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
		{
			name:       "unknown category",
			value:      "boom",
			category:   Category(99),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"statusCode":500,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := Resolve(tt.value, tt.category)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.JSONEq(t, tt.wantBody, marshal(t, resp.Body))
		})
	}
}

func TestToResponse_Idempotent(t *testing.T) {
	t.Parallel()

	for _, kind := range httperr.Kinds() {
		kind := kind
		t.Run(kind.Code(), func(t *testing.T) {
			t.Parallel()

			e := httperr.New(kind, httperr.Data{"a": 1, "b": 2})
			first := ToResponse(e)
			second := ToResponse(e)

			require.Equal(t, e.HTTPCode(), first.Status)
			require.Equal(t, e.Body(), first.Body)
			require.Equal(t, first, second)
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("writes status, content type and body", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		err := Write(rec, ToResponse(httperr.NotFound(httperr.Message("missing"))), DefaultContentType)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"statusCode":404,"message":"missing"}`, rec.Body.String())
	})

	t.Run("unencodable body degrades to 500", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		resp := ToResponse(httperr.BadRequest(httperr.Data{"ch": make(chan int)}))
		require.Equal(t, http.StatusBadRequest, resp.Status)

		err := Write(rec, resp, DefaultContentType)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"statusCode":500,"message":"Internal server error"}`, rec.Body.String())
	})

	t.Run("body whose encoder panics degrades to 500", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		err := Write(rec, Response{Status: http.StatusTeapot, Body: panickyMarshaler{}}, "application/json")

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})
}

type panickyMarshaler struct{}

func (panickyMarshaler) MarshalJSON() ([]byte, error) { panic("cannot marshal") }
