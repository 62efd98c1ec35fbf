// Package transfer moves notes between the store and a directory of Markdown
// files.
package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/memotori/pkg/adapters/markdown"
	"github.com/aretw0/memotori/pkg/core"
)

// DefaultPattern matches every Markdown file below the import root.
const DefaultPattern = "**/*.md"

// NoteLister is implemented by core.Service.
type NoteLister interface {
	ListNotes(ctx context.Context) ([]core.Note, error)
}

// NoteInserter is implemented by core.Service.
type NoteInserter interface {
	InsertNote(ctx context.Context, content string, tags []string) (string, error)
}

// Export writes one <id>.md file per live note into dir and returns how many
// were written. Existing files with the same name are replaced.
func Export(ctx context.Context, notes NoteLister, dir string) (int, error) {
	all, err := notes.ListNotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list notes: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}

	for i, n := range all {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		doc := markdown.Document{
			Meta: markdown.Frontmatter{
				ID:        n.ID,
				Tags:      markdown.TagList(n.Tags),
				CreatedAt: n.CreatedAt,
				UpdatedAt: n.UpdatedAt,
			},
			HasFrontmatter: true,
			Body:           n.Content,
		}
		if err := markdown.WriteDocument(filepath.Join(dir, n.ID+".md"), doc, 0o644); err != nil {
			return i, fmt.Errorf("export note %s: %w", n.ID, err)
		}
	}
	return len(all), nil
}

// ImportResult summarizes an Import run.
type ImportResult struct {
	Imported []string          // new note IDs, in file order
	Skipped  []string          // files with a blank body
	Failed   map[string]string // file -> reason, for files that could not be decoded
}

// Import inserts a new note for every file under root matching pattern.
// Frontmatter tags are applied; other frontmatter keys, including id, are
// ignored. Decode failures are recorded and skipped; a store failure stops
// the run.
func Import(ctx context.Context, notes NoteInserter, root, pattern string) (ImportResult, error) {
	res := ImportResult{Failed: make(map[string]string)}

	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return res, fmt.Errorf("invalid pattern %q", pattern)
	}

	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return res, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			res.Failed[name] = err.Error()
			continue
		}
		doc, err := markdown.Decode(bytes.NewReader(data))
		if err != nil {
			res.Failed[name] = err.Error()
			continue
		}
		if strings.TrimSpace(doc.Body) == "" {
			res.Skipped = append(res.Skipped, name)
			continue
		}

		id, err := notes.InsertNote(ctx, doc.Body, doc.Meta.Tags)
		if err != nil {
			return res, fmt.Errorf("import %s: %w", name, err)
		}
		res.Imported = append(res.Imported, id)
	}
	return res, nil
}
