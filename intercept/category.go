// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package intercept

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Category classifies a failure produced by the host framework itself,
// as opposed to one raised by application code.
type Category int

const (
	// CategoryNone means the host supplied no classification.
	CategoryNone Category = iota
	// CategoryCookieSignature is a signed cookie whose signature does not verify.
	CategoryCookieSignature
	// CategoryValidation is a request that failed schema validation or parameter binding.
	CategoryValidation
	// CategoryBodyParse is a request body that could not be decoded.
	CategoryBodyParse
	// CategoryMalformedToken is an authentication token that could not be parsed.
	CategoryMalformedToken
	// CategoryRouteNotFound is a request that matched no route.
	CategoryRouteNotFound
	// CategoryMethodNotAllowed is a request whose path matched but whose method did not.
	CategoryMethodNotAllowed
	// CategoryFileType is an upload or body with a disallowed content type.
	CategoryFileType
)

var categoryResponses = map[Category]Response{
	CategoryCookieSignature:  envelope(http.StatusBadRequest, "Invalid cookie signature"),
	CategoryValidation:       envelope(http.StatusBadRequest, "Invalid request payload"),
	CategoryBodyParse:        envelope(http.StatusBadRequest, "Invalid request payload"),
	CategoryMalformedToken:   envelope(http.StatusUnauthorized, "Invalid token"),
	CategoryRouteNotFound:    envelope(http.StatusNotFound, "Not Found"),
	CategoryMethodNotAllowed: envelope(http.StatusMethodNotAllowed, "Method Not Allowed"),
	CategoryFileType:         envelope(http.StatusUnsupportedMediaType, "Invalid file type"),
}

var categoryNames = map[Category]string{
	CategoryNone:             "none",
	CategoryCookieSignature:  "cookie-signature",
	CategoryValidation:       "validation",
	CategoryBodyParse:        "body-parse",
	CategoryMalformedToken:   "malformed-token",
	CategoryRouteNotFound:    "route-not-found",
	CategoryMethodNotAllowed: "method-not-allowed",
	CategoryFileType:         "file-type",
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Sentinel errors that plain net/http handlers can return, alone or wrapped,
// to report a host category through DefaultClassifier.
var (
	ErrInvalidCookieSignature = errors.New("invalid cookie signature")
	ErrValidation             = errors.New("request validation failed")
	ErrMalformedToken         = errors.New("malformed authentication token")
	ErrInvalidFileType        = errors.New("invalid file type")
)

// Classifier maps an error to a host category. It returns CategoryNone for
// errors it does not recognize.
type Classifier func(err error) Category

// DefaultClassifier recognizes JSON decoding errors and the sentinel errors
// of this package.
func DefaultClassifier(err error) Category {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, ErrInvalidCookieSignature):
		return CategoryCookieSignature
	case errors.Is(err, ErrValidation):
		return CategoryValidation
	case errors.Is(err, ErrMalformedToken):
		return CategoryMalformedToken
	case errors.Is(err, ErrInvalidFileType):
		return CategoryFileType
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return CategoryBodyParse
	default:
		return CategoryNone
	}
}
