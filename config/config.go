// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the settings of the error boundary from a file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"golang.org/x/net/http/httpguts"

	"github.com/stacklok/httpexception/env"
	"github.com/stacklok/httpexception/intercept"
	"github.com/stacklok/httpexception/logging"
)

// Environment variables that override file values.
const (
	EnvContentType     = "HTTPEXCEPTION_CONTENT_TYPE"
	EnvLogFormat       = "HTTPEXCEPTION_LOG_FORMAT"
	EnvLogLevel        = "HTTPEXCEPTION_LOG_LEVEL"
	EnvRequestIDHeader = "HTTPEXCEPTION_REQUEST_ID_HEADER"
)

// configFileName is looked up relative to the XDG config directories.
var configFileName = filepath.Join("httpexception", "config.yaml")

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the error boundary.
type Config struct {
	// ContentType is the media type of rendered failures.
	ContentType string `mapstructure:"content_type"`

	// LogFormat is "json" or "text".
	LogFormat string `mapstructure:"log_format"`

	// LogLevel is a log/slog level name such as "info" or "debug".
	LogLevel string `mapstructure:"log_level"`

	// RequestIDHeader names the header that carries the request ID.
	// An empty value disables echoing the ID on responses.
	RequestIDHeader string `mapstructure:"request_id_header"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContentType:     intercept.DefaultContentType,
		LogFormat:       logging.FormatJSON.String(),
		LogLevel:        "info",
		RequestIDHeader: intercept.DefaultRequestIDHeader,
	}
}

// DefaultPath returns the config file found in the XDG config directories,
// or "" if there is none.
func DefaultPath() string {
	path, err := xdg.SearchConfigFile(configFileName)
	if err != nil {
		return ""
	}
	return path
}

// Load builds a Config from the defaults, the file at path (skipped when
// path is empty) and the environment, in increasing order of precedence.
// The result is validated.
func Load(path string, r env.Reader) (Config, error) {
	cfg := Default()

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetDefault("content_type", cfg.ContentType)
		v.SetDefault("log_format", cfg.LogFormat)
		v.SetDefault("log_level", cfg.LogLevel)
		v.SetDefault("request_id_header", cfg.RequestIDHeader)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	overrides := []struct {
		key string
		dst *string
	}{
		{EnvContentType, &cfg.ContentType},
		{EnvLogFormat, &cfg.LogFormat},
		{EnvLogLevel, &cfg.LogLevel},
		{EnvRequestIDHeader, &cfg.RequestIDHeader},
	}
	for _, o := range overrides {
		if val, ok := r.LookupEnv(o.key); ok {
			*o.dst = val
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.ContentType == "" {
		return fmt.Errorf("%w: content type cannot be empty", ErrInvalidConfig)
	}
	if !httpguts.ValidHeaderFieldValue(c.ContentType) {
		return fmt.Errorf("%w: content type %q contains invalid characters", ErrInvalidConfig, c.ContentType)
	}
	if _, _, err := mime.ParseMediaType(c.ContentType); err != nil {
		return fmt.Errorf("%w: content type %q: %w", ErrInvalidConfig, c.ContentType, err)
	}

	if c.RequestIDHeader != "" && !httpguts.ValidHeaderFieldName(c.RequestIDHeader) {
		return fmt.Errorf("%w: invalid request ID header name %q", ErrInvalidConfig, c.RequestIDHeader)
	}

	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Logger creates the logger described by the configuration, writing to w.
// It assumes the configuration is valid.
func (c Config) Logger(w io.Writer) *slog.Logger {
	format, _ := logging.ParseFormat(c.LogFormat)
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.New(
		logging.WithFormat(format),
		logging.WithLevel(level),
		logging.WithOutput(w),
	)
}

// Interceptor creates the interceptor described by the configuration.
// Additional options are applied last.
func (c Config) Interceptor(logger *slog.Logger, opts ...intercept.Option) *intercept.Interceptor {
	base := []intercept.Option{
		intercept.WithLogger(logger),
		intercept.WithContentType(c.ContentType),
		intercept.WithRequestIDHeader(c.RequestIDHeader),
	}
	return intercept.New(append(base, opts...)...)
}
