// Package capture holds the small text helpers behind the quick-entry panel
// and the library list: titles, tag entry parsing and completion, hints.
package capture

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleRunes bounds the title shown in the library list.
	MaxTitleRunes = 60
	// EmptyTitle is shown for notes with no visible text.
	EmptyTitle = "(empty note)"
)

// DefaultHints are the placeholder prompts of the capture panel.
var DefaultHints = []string{
	"L'idee que je viens d'avoir :",
	"Note rapide :",
	"Je ne dois pas oublier :",
	"Pense-bete du moment :",
	"A creuser plus tard :",
}

// NoteTitle returns the first non-blank line of content, trimmed and cut to
// MaxTitleRunes.
func NoteTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > MaxTitleRunes {
			line = string([]rune(line)[:MaxTitleRunes])
		}
		return line
	}
	return EmptyTitle
}

// ParseTags splits a comma separated tag entry, lowercasing and dropping blanks.
func ParseTags(input string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		if tag := strings.ToLower(strings.TrimSpace(part)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CurrentTagFragment is the tag being typed: the text after the last comma.
func CurrentTagFragment(input string) string {
	if i := strings.LastIndex(input, ","); i >= 0 {
		input = input[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(input))
}

// ApplyTagCompletion replaces the fragment being typed with completion and
// leaves the entry ready for the next tag.
func ApplyTagCompletion(input, completion string) string {
	parts := strings.Split(input, ",")
	parts[len(parts)-1] = completion

	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ") + ", "
}

// FilterSuggestions drops the suggestion that is already fully typed.
func FilterSuggestions(fragment string, suggestions []string) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if s != fragment {
			out = append(out, s)
		}
	}
	return out
}

// TagLister is the slice of the store autocompletion needs.
type TagLister interface {
	ListTagsPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
}

// Suggest returns completions for the fragment currently typed in input.
func Suggest(ctx context.Context, tags TagLister, input string, limit int) ([]string, error) {
	fragment := CurrentTagFragment(input)
	if fragment == "" {
		return []string{}, nil
	}
	found, err := tags.ListTagsPrefix(ctx, fragment, limit)
	if err != nil {
		return nil, err
	}
	return FilterSuggestions(fragment, found), nil
}

// PickHint chooses a capture prompt from hints using seed.
// An empty list falls back to the first default hint.
func PickHint(hints []string, seed uint64) string {
	switch len(hints) {
	case 0:
		return DefaultHints[0]
	case 1:
		return hints[0]
	}
	return hints[seed%uint64(len(hints))]
}
