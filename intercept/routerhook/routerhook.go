// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package routerhook installs the error boundary of package intercept on a
// julienschmidt/httprouter router.
package routerhook

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/stacklok/httpexception/intercept"
)

// Handle is an httprouter handle that reports failure by returning an error.
type Handle func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) error

// Install renders unmatched routes, disallowed methods and recovered panics
// through i. Method-not-allowed responses are enabled on the router.
func Install(router *httprouter.Router, i *intercept.Interceptor) {
	router.HandleMethodNotAllowed = true
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.Render(w, r, nil, intercept.CategoryRouteNotFound)
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.Render(w, r, nil, intercept.CategoryMethodNotAllowed)
	})
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv any) {
		if rcv == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
			panic(rcv)
		}
		i.Render(w, r, rcv, intercept.CategoryNone)
	}
}

// Wrap adapts an error-returning handle. It runs behind i's middleware, so
// the request ID is assigned, a returned error or panic is rendered by i,
// and a failure raised after the response started is only logged.
func Wrap(i *intercept.Interceptor, h Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		i.Handle(func(w http.ResponseWriter, r *http.Request) error {
			return h(w, r, ps)
		}).ServeHTTP(w, r)
	}
}
