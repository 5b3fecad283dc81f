// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package intercept converts failures into JSON error responses at an API's
error boundary.

Any value can reach the boundary: an *httperr.Error, a host framework's own
failure, an ordinary error, or whatever a handler panicked with. Resolve maps
it to a status code and a body:

	resp := intercept.Resolve(err, intercept.CategoryNone)
	// *httperr.Error     -> its status and Body()
	// host category      -> fixed response, e.g. 404 {"statusCode":404,"message":"Not Found"}
	// other error        -> 500 {"statusCode":500,"message":err.Error()}
	// anything else      -> 500 {"statusCode":500,"message":"Internal server error"}

# Returning Errors

A handler that prefers to build its own response uses ToResponse and Write:

	resp := intercept.ToResponse(httperr.NotFound(httperr.Message("missing")))
	_ = intercept.Write(w, resp, intercept.DefaultContentType)

# Raising Errors

An Interceptor installs the boundary on net/http. Handle covers handlers
that return errors, Middleware covers handlers that panic:

	i := intercept.New(intercept.WithLogger(logger))
	mux.Handle("/users/{id}", i.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return httperr.NotFound(httperr.Message("user not found"))
	}))
	srv := &http.Server{Handler: i.Middleware(mux)}

Bindings for other routers live in the echohook and routerhook
sub-packages.
*/
package intercept
