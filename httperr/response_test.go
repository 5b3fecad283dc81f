// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantMessage string
		wantData    bool
	}{
		{
			name:        "envelope becomes a message",
			status:      http.StatusNotFound,
			body:        `{"statusCode":404,"message":"missing"}`,
			wantKind:    KindNotFound,
			wantMessage: "missing",
		},
		{
			name:        "custom object becomes data",
			status:      http.StatusBadRequest,
			body:        `{"error":"VALIDATION_FAILED","field":"email"}`,
			wantKind:    KindBadRequest,
			wantMessage: "Bad Request",
			wantData:    true,
		},
		{
			name:        "envelope with a different status is data",
			status:      http.StatusConflict,
			body:        `{"statusCode":409.5,"message":"x"}`,
			wantKind:    KindConflict,
			wantMessage: "Conflict",
			wantData:    true,
		},
		{
			name:        "envelope with extra keys is data",
			status:      http.StatusUnauthorized,
			body:        `{"statusCode":401,"message":"x","hint":"login"}`,
			wantKind:    KindUnauthorized,
			wantMessage: "Unauthorized",
			wantData:    true,
		},
		{
			name:        "mismatched status code is data",
			status:      http.StatusBadGateway,
			body:        `{"statusCode":404,"message":"upstream said no"}`,
			wantKind:    KindBadGateway,
			wantMessage: "Bad Gateway",
			wantData:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			he, err := FromResponse(tt.status, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, he.Kind())
			assert.Equal(t, tt.wantMessage, he.Message())
			assert.Equal(t, tt.wantData, he.Data() != nil)

			out, err := json.Marshal(he)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(out))
		})
	}
}

func TestFromResponse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"success status", http.StatusOK, `{"statusCode":200,"message":"ok"}`, ErrUnknownStatus},
		{"unregistered status", 499, `{}`, ErrUnknownStatus},
		{"not JSON", http.StatusBadRequest, `<html>`, ErrInvalidBody},
		{"JSON array", http.StatusBadRequest, `[1,2]`, ErrInvalidBody},
		{"JSON null", http.StatusBadRequest, `null`, ErrInvalidBody},
		{"empty body", http.StatusBadRequest, ``, ErrInvalidBody},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			he, err := FromResponse(tt.status, []byte(tt.body))
			require.Error(t, err)
			require.Nil(t, he)
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestFromResponse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		for name, e := range map[string]*Error{
			"default": New(kind, nil),
			"message": New(kind, Message("something specific")),
			"data":    New(kind, Data{"code": kind.Code(), "retry": false}),
		} {
			e := e
			t.Run(kind.Code()+"/"+name, func(t *testing.T) {
				t.Parallel()

				body, err := json.Marshal(e)
				require.NoError(t, err)

				decoded, err := FromResponse(e.HTTPCode(), body)
				require.NoError(t, err)
				require.Equal(t, e.Kind(), decoded.Kind())

				again, err := json.Marshal(decoded)
				require.NoError(t, err)
				require.JSONEq(t, string(body), string(again))
			})
		}
	}
}
