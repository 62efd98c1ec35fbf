package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/memotori/pkg/core"
)

// options holds the internal configuration for the note engine.
type options struct {
	store          core.Store
	logger         *slog.Logger
	now            func() time.Time
	eventBuffer    int
	queryTimeout   time.Duration
	maxSearchLimit int
	readOnly       bool
}

// Option defines a functional option for configuring the engine.
type Option func(*options)

// defaultOptions returns the default configuration. Zero values are resolved
// by the adapter and the service.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces time.Now for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithEventBuffer sets the per-subscriber event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithStore injects a custom core.Store (e.g. a mock).
// If provided, the SQLite adapter is skipped and the path is ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithQueryTimeout bounds every read query. Zero means default (5s).
func WithQueryTimeout(d time.Duration) Option {
	return func(o *options) {
		o.queryTimeout = d
	}
}

// WithMaxSearchLimit caps the number of rows a search may return.
// Zero means default (1000).
func WithMaxSearchLimit(n int) Option {
	return func(o *options) {
		o.maxSearchLimit = n
	}
}

// WithReadOnly enables read-only mode: every write fails with
// core.ErrWriteFailed wrapping core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}
