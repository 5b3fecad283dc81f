// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides a catalog of HTTP error kinds and the error type
that carries them through the call stack to an API's error boundary.

Every Kind fixes a status code, a short code and a default message. The
catalog is generated from kinds.yaml; each kind has a constructor of the
same name:

	err := httperr.NotFound(httperr.Message("user 42 not found"))
	err.HTTPCode() // 404
	err.Body()     // httperr.Envelope{StatusCode: 404, Message: "user 42 not found"}

# Payloads

The optional payload decides the message and the response body:

	httperr.BadRequest(nil)                          // default message "Bad Request"
	httperr.BadRequest(httperr.Message("bad email")) // message "bad email"
	httperr.BadGateway(httperr.Cause(err))           // message err.Error(), unwraps to err
	httperr.BadRequest(httperr.Data{                 // body is the map, verbatim
		"error": "VALIDATION_FAILED",
		"field": "email",
	})

A Data payload replaces the envelope: the body contains exactly the keys of
the map, with no statusCode or message added. Callers that want those
fields must put them in the map themselves.

# Extracting Status Codes

Extract the HTTP status code from an error chain:

	code := httperr.Code(err)
	// Returns the kind's status if err contains an *Error
	// Returns http.StatusInternalServerError (500) if none is found
	// Returns http.StatusOK (200) if err is nil

*Error supports the standard wrapping pattern, so errors.Is and errors.As
work through it:

	err := httperr.Wrap(httperr.KindServiceUnavailable, sql.ErrConnDone)
	errors.Is(err, sql.ErrConnDone) // true

# Decoding Responses

FromResponse turns an error response back into an *Error, which is useful
for clients of APIs that use this package:

	he, err := httperr.FromResponse(resp.StatusCode, body)
*/
package httperr
