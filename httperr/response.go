// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/envelope.schema.json
var envelopeSchemaData []byte

var envelopeSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(envelopeSchemaData))
})

var (
	// ErrUnknownStatus is returned when a response status has no kind in the catalog.
	ErrUnknownStatus = errors.New("status code is not a catalog kind")

	// ErrInvalidBody is returned when a response body is not a JSON object.
	ErrInvalidBody = errors.New("response body is not a JSON object")
)

// FromResponse reconstructs an *Error from the status code and body of an
// error response. A body shaped like the default envelope, with a status code
// matching status, yields a Message payload; any other JSON object yields a
// Data payload. The Body of the result encodes to the same JSON document.
func FromResponse(status int, body []byte) (*Error, error) {
	kind, ok := KindForStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if obj == nil {
		return nil, ErrInvalidBody
	}

	isEnvelope, err := matchesEnvelope(obj)
	if err != nil {
		return nil, err
	}
	if isEnvelope {
		if sc, _ := obj["statusCode"].(float64); int(sc) == status {
			msg, _ := obj["message"].(string)
			return New(kind, Message(msg)), nil
		}
	}

	return New(kind, Data(obj)), nil
}

func matchesEnvelope(obj map[string]any) (bool, error) {
	schema, err := envelopeSchema()
	if err != nil {
		return false, fmt.Errorf("failed to load envelope schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return false, fmt.Errorf("envelope schema validation failed: %w", err)
	}
	return result.Valid(), nil
}
