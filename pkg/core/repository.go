package core

import "context"

// Store defines the contract for persisting and querying notes.
// It is the only boundary the presentation layer needs; adapters
// (SQLite today) implement it.
//
// Every failure is a *StorageError. "Not found" is never an error:
// lookups report it through an empty result.
type Store interface {
	// InsertNote creates a note with a fresh ID and links the normalized tags.
	InsertNote(ctx context.Context, content string, tags []string) (string, error)

	// UpdateNoteContent rewrites the content of a live note and refreshes its index row.
	// Unknown or soft-deleted IDs are a silent no-op.
	UpdateNoteContent(ctx context.Context, noteID, content string) error

	// ReplaceNoteTags swaps the whole tag set of a note atomically.
	// Unknown IDs are a silent no-op.
	ReplaceNoteTags(ctx context.Context, noteID string, tags []string) error

	// SearchNotes returns at most limit live notes matching the text query and carrying every tag.
	SearchNotes(ctx context.Context, query string, tags []string, limit int) ([]NoteListItem, error)

	// GetNoteContent returns the content of a live note; found is false otherwise.
	GetNoteContent(ctx context.Context, noteID string) (content string, found bool, err error)

	// GetNoteTags returns the tag names of a live note in ascending order.
	GetNoteTags(ctx context.Context, noteID string) ([]string, error)

	// ListTagsPrefix returns up to limit tag names starting with the normalized prefix.
	// An empty prefix yields an empty result.
	ListTagsPrefix(ctx context.Context, prefix string, limit int) ([]string, error)

	// Close releases the underlying handle.
	Close() error
}

// Browsable is implemented by stores that can return whole note records.
type Browsable interface {
	// GetNote returns the full live note record; found is false otherwise.
	GetNote(ctx context.Context, noteID string) (note Note, found bool, err error)

	// ListNotes returns every live note, most recently updated first.
	ListNotes(ctx context.Context) ([]Note, error)
}
