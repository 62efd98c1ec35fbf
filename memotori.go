package memotori

import (
	"log/slog"
	"time"

	"github.com/aretw0/memotori/internal/platform"
	"github.com/aretw0/memotori/pkg/adapters/sqlite"
	"github.com/aretw0/memotori/pkg/core"
)

// --- Types ---

type (
	Service      = core.Service
	Note         = core.Note
	NoteListItem = core.NoteListItem
	Event        = core.Event
)

// --- Defaults ---

// Row counts used by the library view and the tag autocomplete. The engine
// itself returns nothing for a non-positive limit.
const (
	DefaultSearchLimit  = sqlite.DefaultSearchLimit
	DefaultSuggestLimit = sqlite.DefaultSuggestLimit
)

// --- Configuration ---

// Option defines a functional option for configuring the engine.
type Option = platform.Option

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock replaces time.Now for note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithEventBuffer sets the per-subscriber event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithStore injects a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithQueryTimeout bounds every read query.
func WithQueryTimeout(d time.Duration) Option {
	return platform.WithQueryTimeout(d)
}

// WithMaxSearchLimit caps the number of rows a search may return.
func WithMaxSearchLimit(n int) Option {
	return platform.WithMaxSearchLimit(n)
}

// WithReadOnly rejects every write.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// --- Factory ---

// Open opens (creating if absent) the note database at path and returns the
// service on top of it. An empty path uses the per-user data directory.
func Open(path string, opts ...Option) (*Service, error) {
	return platform.New(path, opts...)
}

// DefaultPaths resolves (and creates) the per-user data and config directories.
func DefaultPaths() (platform.Paths, error) {
	return platform.ResolvePaths()
}
