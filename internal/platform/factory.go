package platform

import (
	"context"

	"github.com/aretw0/memotori/pkg/adapters/sqlite"
	"github.com/aretw0/memotori/pkg/core"
)

// New opens the store at path and wraps it in a Service.
// An empty path resolves to the default data location.
//
//	svc, err := memotori.Open("", memotori.WithLogger(logger))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store, err := openStore(path, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(store, core.ServiceConfig{
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	}), nil
}

func openStore(path string, o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	if path == "" {
		paths, err := ResolvePaths()
		if err != nil {
			return nil, core.NewStorageError(core.ErrInitFailed, "resolve paths", err)
		}
		path = paths.DatabasePath()
	}

	return sqlite.Open(context.Background(), sqlite.Config{
		Path:           path,
		Logger:         o.logger,
		Now:            o.now,
		QueryTimeout:   o.queryTimeout,
		MaxSearchLimit: o.maxSearchLimit,
		ReadOnly:       o.readOnly,
	})
}
