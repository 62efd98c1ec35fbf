package core

// Note is the central entity of the domain.
// Content is stored verbatim; timestamps are Unix seconds.
type Note struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
	DeletedAt *int64   `json:"deleted_at,omitempty"`
	Pinned    bool     `json:"pinned"`
}

// Live reports whether the note has not been soft-deleted.
func (n Note) Live() bool {
	return n.DeletedAt == nil
}

// NoteListItem is a single search hit.
// Preview carries the full content; deriving a short title is up to the caller.
type NoteListItem struct {
	ID      string `json:"id"`
	Preview string `json:"preview"`
}
