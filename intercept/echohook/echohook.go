// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package echohook installs the error boundary of package intercept on an
// echo server.
package echohook

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stacklok/httpexception/httperr"
	"github.com/stacklok/httpexception/intercept"
)

// Install sets the server's HTTPErrorHandler and adds the panic recovery
// middleware.
func Install(e *echo.Echo, i *intercept.Interceptor) {
	e.HTTPErrorHandler = ErrorHandler(i)
	e.Use(Recover(i))
}

// ErrorHandler returns an echo.HTTPErrorHandler that renders every error
// through i. Failures on responses that are already committed are only
// logged.
func ErrorHandler(i *intercept.Interceptor) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			i.Discard(c.Request(), err)
			return
		}

		cat := Classify(err)
		var v any = err
		if _, ok := httperr.As(err); !ok && cat == intercept.CategoryNone {
			v = normalize(err)
		}

		i.Render(c.Response(), c.Request(), v, cat)
	}
}

// Classify maps echo's built-in failures to host categories and falls back
// to intercept.DefaultClassifier.
func Classify(err error) intercept.Category {
	var bindErr *echo.BindingError
	switch {
	case errors.As(err, &bindErr):
		return intercept.CategoryValidation
	case errors.Is(err, echo.ErrNotFound):
		return intercept.CategoryRouteNotFound
	case errors.Is(err, echo.ErrMethodNotAllowed):
		return intercept.CategoryMethodNotAllowed
	case errors.Is(err, echo.ErrUnsupportedMediaType):
		return intercept.CategoryFileType
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusBadRequest && isDecodeError(he.Internal) {
		return intercept.CategoryBodyParse
	}

	return intercept.DefaultClassifier(err)
}

func isDecodeError(err error) bool {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// normalize turns an *echo.HTTPError with a catalog status into the
// equivalent *httperr.Error so that it renders in the same envelope. A map
// message becomes the structured body.
func normalize(err error) any {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return err
	}
	kind, ok := httperr.KindForStatus(he.Code)
	if !ok {
		return err
	}

	switch msg := he.Message.(type) {
	case nil:
		return httperr.New(kind, nil)
	case string:
		return httperr.New(kind, httperr.Message(msg))
	case error:
		return httperr.New(kind, httperr.Cause(msg))
	case map[string]any:
		return httperr.New(kind, httperr.Data(msg))
	case echo.Map:
		return httperr.New(kind, httperr.Data(msg))
	default:
		return httperr.New(kind, httperr.Message(fmt.Sprint(msg)))
	}
}

// Recover is an echo middleware that assigns the request ID and turns panics
// into rendered failures.
// Panics with an error value are handed to the server's HTTPErrorHandler;
// any other value is rendered directly, so it never reaches the body.
func Recover(i *intercept.Interceptor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			c.SetRequest(i.AssignRequestID(c.Response(), c.Request()))
			defer func() {
				rcv := recover()
				if rcv == nil {
					return
				}
				if rcv == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(rcv)
				}
				if e, ok := rcv.(error); ok {
					err = e
					return
				}
				if c.Response().Committed {
					i.Discard(c.Request(), rcv)
					return
				}
				i.Render(c.Response(), c.Request(), rcv, intercept.CategoryNone)
			}()
			return next(c)
		}
	}
}
