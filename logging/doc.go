// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the [log/slog.Logger] the error boundary reports
failures with.

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

Without options the logger writes JSON at INFO to stderr. Timestamps are
always RFC3339.

# Request-scoped Attributes

Attributes attached to a context with [WithAttrs] are added to every entry
logged with that context. The interceptor attaches the request ID this way,
so handlers that log with the request context are correlated with the
failure the boundary renders:

	ctx := logging.WithAttrs(r.Context(), slog.String("tenant", tenant))
	logger.InfoContext(ctx, "loading profile")

# Configuration Values

[ParseFormat] and [ParseLevel] convert configuration strings:

	format, err := logging.ParseFormat("text")
	level, err := logging.ParseLevel("debug")
*/
package logging
