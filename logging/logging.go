// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Format represents the log output format.
type Format int

const (
	// FormatJSON writes one JSON object per entry. This is the default.
	FormatJSON Format = iota

	// FormatText writes logfmt-style key=value entries for local development.
	FormatText
)

// String returns the configuration name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a configuration value ("json" or "text") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format %q", s)
	}
}

// ParseLevel converts a configuration value such as "debug" or "WARN+2" to
// a [log/slog.Level].
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return lvl, nil
}

type options struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option configures the logger created by [New].
type Option func(*options)

// WithFormat sets the output format. The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLevel sets the minimum level. The default is [log/slog.LevelInfo].
// A [*log/slog.LevelVar] allows changing the level at runtime.
func WithLevel(l slog.Leveler) Option {
	return func(o *options) {
		o.level = l
	}
}

// WithOutput sets the destination of log entries. The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// New creates the logger used by the error boundary. Entries carry
// RFC3339 timestamps and every attribute attached to their context with
// [WithAttrs].
func New(opts ...Option) *slog.Logger {
	o := &options{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       o.level,
		ReplaceAttr: replaceAttr,
	}

	var base slog.Handler
	switch o.format {
	case FormatText:
		base = slog.NewTextHandler(o.output, handlerOpts)
	default:
		base = slog.NewJSONHandler(o.output, handlerOpts)
	}

	return slog.New(ContextHandler(base))
}

// replaceAttr formats the time attribute as RFC3339.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	}
	return a
}
