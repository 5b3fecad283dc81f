// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAttrs(t *testing.T) {
	t.Parallel()

	t.Run("attributes reach context-aware entries", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithAttrs(context.Background(), slog.String("request_id", "req-1"))

		New(WithOutput(&buf)).InfoContext(ctx, "handled")

		entry := decodeEntry(t, &buf)
		assert.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("entries without context are unchanged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		New(WithOutput(&buf)).Info("handled")

		assert.NotContains(t, decodeEntry(t, &buf), "request_id")
	})

	t.Run("nested contexts accumulate without sharing", func(t *testing.T) {
		t.Parallel()
		parent := WithAttrs(context.Background(), slog.String("a", "1"))
		left := WithAttrs(parent, slog.String("b", "2"))
		right := WithAttrs(parent, slog.String("c", "3"))

		assert.Equal(t, []slog.Attr{slog.String("a", "1")}, AttrsFrom(parent))
		assert.Equal(t, []slog.Attr{slog.String("a", "1"), slog.String("b", "2")}, AttrsFrom(left))
		assert.Equal(t, []slog.Attr{slog.String("a", "1"), slog.String("c", "3")}, AttrsFrom(right))
	})

	t.Run("no attributes returns the same context", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Equal(t, ctx, WithAttrs(ctx))
		assert.Nil(t, AttrsFrom(ctx))
	})

	t.Run("survives derived loggers", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithAttrs(context.Background(), slog.String("request_id", "req-2"))

		New(WithOutput(&buf)).With("component", "boundary").WithGroup("http").InfoContext(ctx, "handled", "status", 500)

		entry := decodeEntry(t, &buf)
		assert.Equal(t, "boundary", entry["component"])
		group, ok := entry["http"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "req-2", group["request_id"])
		assert.InDelta(t, 500, group["status"], 0)
	})
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)

	h := ContextHandler(base)
	assert.Equal(t, h, ContextHandler(h), "wrapping twice should be a no-op")

	ctx := WithAttrs(context.Background(), slog.String("request_id", "req-3"))
	slog.New(h).InfoContext(ctx, "handled")

	assert.Equal(t, "req-3", decodeEntry(t, &buf)["request_id"])
}
