package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aretw0/memotori/pkg/core"
	"github.com/google/uuid"
)

// withTx runs fn inside a transaction. Any error rolls everything back and
// surfaces as core.ErrWriteFailed unless fn already returned a StorageError.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	if s.readOnly {
		return core.NewStorageError(core.ErrWriteFailed, op, core.ErrReadOnly)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return core.NewStorageError(core.ErrWriteFailed, op, fmt.Errorf("begin: %w", err))
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return core.Wrap(core.ErrWriteFailed, op, err)
	}
	if err := tx.Commit(); err != nil {
		return core.NewStorageError(core.ErrWriteFailed, op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

// InsertNote implements core.Store.
func (s *Store) InsertNote(ctx context.Context, content string, tags []string) (string, error) {
	const op = "insert note"

	if s.readOnly {
		return "", core.NewStorageError(core.ErrWriteFailed, op, core.ErrReadOnly)
	}
	now, err := s.unixNow(op)
	if err != nil {
		return "", err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", core.NewStorageError(core.ErrWriteFailed, op, fmt.Errorf("generate id: %w", err))
	}
	noteID := id.String()
	normalized := core.NormalizeTags(tags)

	err = s.withTx(ctx, op, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes (id, content, created_at, updated_at, deleted_at, pinned) VALUES (?, ?, ?, ?, NULL, 0)`,
			noteID, content, now, now,
		); err != nil {
			return fmt.Errorf("insert note row: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes_fts (note_id, content) VALUES (?, ?)`,
			noteID, content,
		); err != nil {
			return fmt.Errorf("insert index row: %w", err)
		}
		return ensureTagLinks(ctx, tx, noteID, normalized)
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("note inserted", "id", noteID, "tags", len(normalized))
	return noteID, nil
}

// UpdateNoteContent implements core.Store. The index row is only rewritten
// when a live note was actually updated.
func (s *Store) UpdateNoteContent(ctx context.Context, noteID, content string) error {
	const op = "update note content"

	if s.readOnly {
		return core.NewStorageError(core.ErrWriteFailed, op, core.ErrReadOnly)
	}
	now, err := s.unixNow(op)
	if err != nil {
		return err
	}

	return s.withTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE notes SET content = ?, updated_at = MAX(created_at, ?) WHERE id = ? AND deleted_at IS NULL`,
			content, now, noteID,
		)
		if err != nil {
			return fmt.Errorf("update note row: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM notes_fts WHERE note_id = ?`, noteID); err != nil {
			return fmt.Errorf("delete index row: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes_fts (note_id, content) VALUES (?, ?)`,
			noteID, content,
		); err != nil {
			return fmt.Errorf("insert index row: %w", err)
		}
		return nil
	})
}

// ReplaceNoteTags implements core.Store.
func (s *Store) ReplaceNoteTags(ctx context.Context, noteID string, tags []string) error {
	const op = "replace note tags"
	normalized := core.NormalizeTags(tags)

	return s.withTx(ctx, op, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM notes WHERE id = ?`, noteID).Scan(&exists)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lookup note: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM notes_tags WHERE note_id = ?`, noteID); err != nil {
			return fmt.Errorf("clear links: %w", err)
		}
		return ensureTagLinks(ctx, tx, noteID, normalized)
	})
}

// ensureTagLinks upserts every tag by name and links it to the note.
// tags must already be normalized; the note must have no link to them yet.
func ensureTagLinks(ctx context.Context, tx *sql.Tx, noteID string, tags []string) error {
	for _, name := range tags {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO tags (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("upsert tag %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes_tags (note_id, tag_id) SELECT ?, id FROM tags WHERE name = ?`,
			noteID, name,
		); err != nil {
			return fmt.Errorf("link tag %q: %w", name, err)
		}
	}
	return nil
}
