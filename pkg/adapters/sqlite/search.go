package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/memotori/pkg/core"
)

// searchQuery assembles the library query from three optional stages:
// a full-text filter, a tag filter (AND semantics) and a row limit.
type searchQuery struct {
	match string
	tags  []string
	limit int
}

func (q searchQuery) build() (string, []any) {
	var (
		sb    strings.Builder
		where []string
		args  []any
	)

	sb.WriteString(`SELECT n.id, n.content FROM notes n`)
	if q.match != "" {
		sb.WriteString(` JOIN notes_fts ON notes_fts.note_id = n.id`)
		where = append(where, `notes_fts MATCH ?`)
		args = append(args, q.match)
	}

	where = append(where, `n.deleted_at IS NULL`)

	if len(q.tags) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(q.tags)), ", ")
		where = append(where, fmt.Sprintf(
			`n.id IN (SELECT nt.note_id FROM notes_tags nt JOIN tags t ON t.id = nt.tag_id WHERE t.name IN (%s) GROUP BY nt.note_id HAVING COUNT(DISTINCT t.name) = ?)`,
			placeholders,
		))
		for _, tag := range q.tags {
			args = append(args, tag)
		}
		args = append(args, len(q.tags))
	}

	sb.WriteString(` WHERE `)
	sb.WriteString(strings.Join(where, ` AND `))

	if q.match != "" {
		sb.WriteString(` ORDER BY bm25(notes_fts), n.updated_at DESC`)
	} else {
		sb.WriteString(` ORDER BY n.updated_at DESC`)
	}

	sb.WriteString(` LIMIT ?`)
	args = append(args, q.limit)

	return sb.String(), args
}

// sanitizeFTS turns free text into FTS5 syntax: each whitespace separated term
// becomes a quoted phrase, and a trailing '*' stays a prefix operator.
func sanitizeFTS(query string) string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		prefix := strings.HasSuffix(f, "*")
		f = strings.TrimRight(f, "*")
		if f == "" {
			continue
		}
		term := `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		if prefix {
			term += "*"
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, " ")
}

func (s *Store) clampLimit(limit int) int {
	if limit > s.maxSearchLimit {
		limit = s.maxSearchLimit
	}
	return limit
}

// SearchNotes implements core.Store.
func (s *Store) SearchNotes(ctx context.Context, query string, tags []string, limit int) ([]core.NoteListItem, error) {
	const op = "search notes"

	if limit <= 0 {
		return []core.NoteListItem{}, nil
	}

	q := searchQuery{
		match: sanitizeFTS(strings.TrimSpace(query)),
		tags:  core.NormalizeTags(tags),
		limit: s.clampLimit(limit),
	}
	stmt, args := q.build()

	ctx, cancel := s.readContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
	}
	defer rows.Close()

	items := make([]core.NoteListItem, 0)
	for rows.Next() {
		var item core.NoteListItem
		if err := rows.Scan(&item.ID, &item.Preview); err != nil {
			return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStorageError(core.ErrQueryFailed, op, err)
	}
	return items, nil
}
