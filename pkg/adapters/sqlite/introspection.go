package sqlite

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path            string        `json:"path"`
	ReadOnly        bool          `json:"read_only"`
	QueryTimeout    time.Duration `json:"query_timeout"`
	MaxSearchLimit  int           `json:"max_search_limit"`
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	stats := s.db.Stats()
	return StoreState{
		Path:            s.path,
		ReadOnly:        s.readOnly,
		QueryTimeout:    s.queryTimeout,
		MaxSearchLimit:  s.maxSearchLimit,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
