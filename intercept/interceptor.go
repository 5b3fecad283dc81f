// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package intercept

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/stacklok/httpexception/httperr"
	"github.com/stacklok/httpexception/logging"
)

// DefaultRequestIDHeader is the header used to correlate a rendered failure
// with its log entry.
const DefaultRequestIDHeader = "X-Request-ID"

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Interceptor renders failures for one application. It is immutable after
// New returns and safe for concurrent use.
type Interceptor struct {
	logger          *slog.Logger
	contentType     string
	classify        Classifier
	requestIDHeader string
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithLogger sets the logger that records rendered failures.
// The default is [logging.New].
func WithLogger(l *slog.Logger) Option {
	return func(i *Interceptor) {
		i.logger = l
	}
}

// WithContentType sets the Content-Type of rendered failures.
// The default is [DefaultContentType].
func WithContentType(ct string) Option {
	return func(i *Interceptor) {
		i.contentType = ct
	}
}

// WithClassifier sets the function that maps unrecognized errors to host
// categories. The default is [DefaultClassifier].
func WithClassifier(c Classifier) Option {
	return func(i *Interceptor) {
		i.classify = c
	}
}

// WithRequestIDHeader sets the header read for the request ID and echoed on
// the response. An empty name disables echoing; log entries still get a
// generated ID.
func WithRequestIDHeader(name string) Option {
	return func(i *Interceptor) {
		i.requestIDHeader = name
	}
}

// New creates an Interceptor.
func New(opts ...Option) *Interceptor {
	i := &Interceptor{
		contentType:     DefaultContentType,
		classify:        DefaultClassifier,
		requestIDHeader: DefaultRequestIDHeader,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = logging.New()
	} else {
		i.logger = slog.New(logging.ContextHandler(i.logger.Handler()))
	}
	if i.classify == nil {
		i.classify = DefaultClassifier
	}
	return i
}

// ContentType returns the Content-Type of rendered failures.
func (i *Interceptor) ContentType() string {
	return i.contentType
}

// Resolve is like the package-level Resolve, but classifies errors with the
// interceptor's Classifier when no category is given.
func (i *Interceptor) Resolve(v any, cat Category) Response {
	return Resolve(v, i.categorize(v, cat))
}

// categorize returns the category that decides the response of v. An
// *httperr.Error in v's chain takes precedence over any category.
func (i *Interceptor) categorize(v any, cat Category) (out Category) {
	defer func() {
		if recover() != nil {
			out = CategoryNone
		}
	}()

	err, ok := v.(error)
	if ok && err != nil {
		if _, isHTTPErr := httperr.As(err); isHTTPErr {
			return CategoryNone
		}
	}
	if cat != CategoryNone {
		return cat
	}
	if !ok || err == nil {
		return CategoryNone
	}
	return i.classify(err)
}

type requestIDKey struct{}

// RequestID returns the request ID assigned by the interceptor, or "" if the
// request has not passed through it.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// AssignRequestID returns r with a request ID unless it already has one.
// The ID is taken from the configured header when present and generated
// otherwise; it is attached to the context for [RequestID] and for logging,
// and echoed on w.
func (i *Interceptor) AssignRequestID(w http.ResponseWriter, r *http.Request) *http.Request {
	id := RequestID(r.Context())
	if id == "" {
		if i.requestIDHeader != "" {
			id = r.Header.Get(i.requestIDHeader)
		}
		if id == "" {
			id = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		ctx = logging.WithAttrs(ctx, slog.String("request_id", id))
		r = r.WithContext(ctx)
	}
	if i.requestIDHeader != "" {
		w.Header().Set(i.requestIDHeader, id)
	}
	return r
}

// Render resolves v and writes the response for request r. If w is a
// *ResponseWriter whose response has already started, the failure is only
// logged.
func (i *Interceptor) Render(w http.ResponseWriter, r *http.Request, v any, cat Category) {
	r = i.AssignRequestID(w, r)
	ctx := r.Context()

	cat = i.categorize(v, cat)
	resp := Resolve(v, cat)

	if responseStarted(w) {
		i.discard(ctx, r, v, cat, resp.Status)
		return
	}

	level := slog.LevelDebug
	if resp.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	i.logger.LogAttrs(ctx, level, "request failed",
		slog.Int("status", resp.Status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("category", cat.String()),
		slog.String("error", fmt.Sprint(v)),
	)

	if err := Write(w, resp, i.contentType); err != nil {
		i.logger.LogAttrs(ctx, slog.LevelError, "failed to write error response",
			slog.String("error", err.Error()),
		)
	}
}

// Discard logs a failure that can no longer be rendered because the
// response to r has already started.
func (i *Interceptor) Discard(r *http.Request, v any) {
	cat := i.categorize(v, CategoryNone)
	i.discard(r.Context(), r, v, cat, Resolve(v, cat).Status)
}

func (i *Interceptor) discard(ctx context.Context, r *http.Request, v any, cat Category, status int) {
	i.logger.LogAttrs(ctx, slog.LevelError, "request failed after response started",
		slog.Int("status", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("category", cat.String()),
		slog.String("error", fmt.Sprint(v)),
	)
}

// Handle adapts an error-returning handler. A returned error, or a panic,
// is rendered by the interceptor.
func (i *Interceptor) Handle(h HandlerFunc) http.Handler {
	return i.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			i.Render(w, r, err, CategoryNone)
		}
	}))
}

// Middleware assigns the request ID, recovers panics raised by next and
// renders the recovered value. A panic with [http.ErrAbortHandler] is
// propagated so that net/http aborts the response as usual. A panic raised
// after next started the response is logged and the response is aborted
// with [http.ErrAbortHandler], since no well-formed body can follow.
func (i *Interceptor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := NewResponseWriter(w)
		r = i.AssignRequestID(rw, r)
		defer func() {
			rcv := recover()
			if rcv == nil {
				return
			}
			if rcv == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
				panic(rcv)
			}
			started := rw.Started()
			i.Render(rw, r, rcv, CategoryNone)
			if started {
				panic(http.ErrAbortHandler)
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
