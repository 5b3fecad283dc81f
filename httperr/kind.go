// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

//go:generate go run ./internal/gen -in kinds.yaml -out kinds_gen.go

import (
	"fmt"
	"slices"
)

// Kind identifies one recognized HTTP failure category.
// The zero value is not a valid kind.
type Kind uint8

// kindInfo is one row of the generated kind table.
type kindInfo struct {
	kind    Kind
	status  int
	code    string
	message string
}

var (
	kindsByStatus = make(map[int]Kind, len(kinds))
	kindsByCode   = make(map[string]Kind, len(kinds))
)

func init() {
	for i, info := range kinds {
		if info.kind != Kind(i+1) {
			panic(fmt.Sprintf("httperr: kind table out of order at %s", info.code))
		}
		kindsByStatus[info.status] = info.kind
		kindsByCode[info.code] = info.kind
	}
}

// Valid reports whether k is a member of the catalog.
func (k Kind) Valid() bool {
	return k > 0 && int(k) <= len(kinds)
}

func (k Kind) info() kindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("httperr: invalid kind %d", uint8(k)))
	}
	return kinds[k-1]
}

// Status returns the HTTP status code of the kind.
func (k Kind) Status() int {
	return k.info().status
}

// Code returns the short upper snake case identifier of the kind, e.g. NOT_FOUND.
func (k Kind) Code() string {
	return k.info().code
}

// DefaultMessage returns the message used when an error carries no message of its own.
func (k Kind) DefaultMessage() string {
	return k.info().message
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return k.info().code
}

// Kinds returns every kind of the catalog in ascending status order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, info := range kinds {
		out = append(out, info.kind)
	}
	slices.SortFunc(out, func(a, b Kind) int { return a.Status() - b.Status() })
	return out
}

// KindForStatus returns the kind registered for an HTTP status code.
func KindForStatus(status int) (Kind, bool) {
	k, ok := kindsByStatus[status]
	return k, ok
}

// ParseKind returns the kind with the given short code.
func ParseKind(code string) (Kind, bool) {
	k, ok := kindsByCode[code]
	return k, ok
}
