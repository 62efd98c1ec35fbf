// Package sqlite is the storage engine: a single SQLite file holding notes,
// tags, their links and an FTS5 index mirroring note content.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/memotori/pkg/core"
	_ "modernc.org/sqlite"
)

const (
	DefaultQueryTimeout   = 5 * time.Second
	DefaultSearchLimit    = 200
	DefaultMaxSearchLimit = 1000
	DefaultSuggestLimit   = 8
)

// Config configures Open. Only Path is required.
type Config struct {
	Path           string
	Logger         *slog.Logger
	Now            func() time.Time
	QueryTimeout   time.Duration
	MaxSearchLimit int
	ReadOnly       bool
}

// Store implements core.Store and core.Browsable on top of database/sql.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
	now    func() time.Time

	queryTimeout   time.Duration
	maxSearchLimit int
	readOnly       bool
}

// Open opens (creating if absent) the database at cfg.Path and applies the schema.
// Any failure is reported as core.ErrInitFailed.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	const op = "open"

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, core.NewStorageError(core.ErrInitFailed, op, errors.New("empty path"))
	}
	if info, err := os.Stat(cfg.Path); err == nil && info.IsDir() {
		return nil, core.NewStorageError(core.ErrInitFailed, op, fmt.Errorf("%s is a directory", cfg.Path))
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, core.NewStorageError(core.ErrInitFailed, op, fmt.Errorf("create parent dir: %w", err))
	}

	dsn, err := fileDSN(cfg.Path)
	if err != nil {
		return nil, core.NewStorageError(core.ErrInitFailed, op, err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, core.NewStorageError(core.ErrInitFailed, op, err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, core.NewStorageError(core.ErrInitFailed, op, fmt.Errorf("ping: %w", err))
	}
	if err := applySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, core.NewStorageError(core.ErrInitFailed, op, err)
	}

	s := &Store{
		db:             db,
		path:           cfg.Path,
		logger:         cfg.Logger,
		now:            cfg.Now,
		queryTimeout:   cfg.QueryTimeout,
		maxSearchLimit: cfg.MaxSearchLimit,
		readOnly:       cfg.ReadOnly,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.queryTimeout <= 0 {
		s.queryTimeout = DefaultQueryTimeout
	}
	if s.maxSearchLimit <= 0 {
		s.maxSearchLimit = DefaultMaxSearchLimit
	}

	s.logger.Debug("sqlite store opened", "path", cfg.Path, "read_only", cfg.ReadOnly)
	return s, nil
}

const pragmas = "_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

// fileDSN builds a file: URI for path. The path is percent-encoded so '?' and
// '#' stay part of the file name instead of starting the query or fragment.
func fileDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: pragmas}
	return u.String(), nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the raw handle, mostly for tests and maintenance tooling.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.db
}

func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// readContext bounds a read by the configured query timeout.
func (s *Store) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

var (
	_ core.Store     = (*Store)(nil)
	_ core.Browsable = (*Store)(nil)
)
