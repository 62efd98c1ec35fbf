// Package core holds the domain of the note engine: notes, tags, the Store
// contract every persistence adapter satisfies, and the Service that the
// presentation layer talks to.
package core

import (
	"fmt"
	"time"
)

// EventType represents the kind of change committed to the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventRetag  EventType = "RETAG"
)

// Event is published after a write has been committed.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s @%s", e.Type, e.ID, time.Unix(e.Timestamp, 0).UTC().Format(time.RFC3339))
}
