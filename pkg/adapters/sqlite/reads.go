package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aretw0/memotori/pkg/core"
)

// GetNoteContent implements core.Store.
func (s *Store) GetNoteContent(ctx context.Context, noteID string) (string, bool, error) {
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM notes WHERE id = ? AND deleted_at IS NULL`, noteID,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, core.NewStorageError(core.ErrQueryFailed, "get note content", err)
	}
	return content, true, nil
}

// GetNoteTags implements core.Store.
func (s *Store) GetNoteTags(ctx context.Context, noteID string) ([]string, error) {
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	tags, err := s.queryNames(ctx,
		`SELECT t.name FROM notes_tags nt
		 JOIN tags t ON t.id = nt.tag_id
		 JOIN notes n ON n.id = nt.note_id
		 WHERE nt.note_id = ? AND n.deleted_at IS NULL
		 ORDER BY t.name ASC`, noteID)
	if err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, "get note tags", err)
	}
	return tags, nil
}

// likeEscaper neutralizes LIKE wildcards so a prefix is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListTagsPrefix implements core.Store.
func (s *Store) ListTagsPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	p := core.NormalizeTag(prefix)
	if p == "" || limit <= 0 {
		return []string{}, nil
	}

	ctx, cancel := s.readContext(ctx)
	defer cancel()

	tags, err := s.queryNames(ctx,
		`SELECT name FROM tags WHERE name LIKE ? || '%' ESCAPE '\' ORDER BY name ASC LIMIT ?`,
		likeEscaper.Replace(p), limit)
	if err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, "list tags prefix", err)
	}
	return tags, nil
}

func (s *Store) queryNames(ctx context.Context, stmt string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetNote implements core.Browsable.
func (s *Store) GetNote(ctx context.Context, noteID string) (core.Note, bool, error) {
	const op = "get note"

	ctx, cancel := s.readContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, content, created_at, updated_at, deleted_at, pinned FROM notes WHERE id = ? AND deleted_at IS NULL`,
		noteID)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Note{}, false, nil
	}
	if err != nil {
		return core.Note{}, false, core.NewStorageError(core.ErrQueryFailed, op, err)
	}

	note.Tags, err = s.queryNames(ctx,
		`SELECT t.name FROM notes_tags nt JOIN tags t ON t.id = nt.tag_id WHERE nt.note_id = ? ORDER BY t.name ASC`,
		noteID)
	if err != nil {
		return core.Note{}, false, core.NewStorageError(core.ErrQueryFailed, op, err)
	}
	return note, true, nil
}

// ListNotes implements core.Browsable.
func (s *Store) ListNotes(ctx context.Context) ([]core.Note, error) {
	const op = "list notes"

	ctx, cancel := s.readContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, created_at, updated_at, deleted_at, pinned FROM notes
		 WHERE deleted_at IS NULL ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
	}
	defer rows.Close()

	notes := make([]core.Note, 0)
	index := make(map[string]int)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
		}
		note.Tags = []string{}
		index[note.ID] = len(notes)
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
	}

	links, err := s.db.QueryContext(ctx,
		`SELECT nt.note_id, t.name FROM notes_tags nt JOIN tags t ON t.id = nt.tag_id ORDER BY t.name ASC`)
	if err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
	}
	defer links.Close()

	for links.Next() {
		var noteID, name string
		if err := links.Scan(&noteID, &name); err != nil {
			return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
		}
		if i, ok := index[noteID]; ok {
			notes[i].Tags = append(notes[i].Tags, name)
		}
	}
	if err := links.Err(); err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
	}
	return notes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(r rowScanner) (core.Note, error) {
	var (
		note    core.Note
		deleted sql.NullInt64
		pinned  int
	)
	if err := r.Scan(&note.ID, &note.Content, &note.CreatedAt, &note.UpdatedAt, &deleted, &pinned); err != nil {
		return core.Note{}, err
	}
	if deleted.Valid {
		v := deleted.Int64
		note.DeletedAt = &v
	}
	note.Pinned = pinned != 0
	note.Tags = []string{}
	return note, nil
}
