package capture

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNoteTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"first line", "Buy milk\nand bread", "Buy milk"},
		{"skips blank lines", "\n   \n  Idea  \nmore", "Idea"},
		{"empty", "", EmptyTitle},
		{"only whitespace", " \n\t\n", EmptyTitle},
		{"truncated", strings.Repeat("a", 80), strings.Repeat("a", 60)},
		{"truncates runes", strings.Repeat("é", 70), strings.Repeat("é", 60)},
		{"crlf", "Title\r\nbody", "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoteTitle(tt.content); got != tt.want {
				t.Errorf("NoteTitle(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" Work, ideas ,, ,Home")
	want := []string{"work", "ideas", "home"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTags = %v, want %v", got, want)
	}
	if got := ParseTags(""); len(got) != 0 {
		t.Errorf("expected no tags, got %v", got)
	}
}

func TestCurrentTagFragment(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"wo":           "wo",
		"home, WO":     "wo",
		"home, work, ": "",
		"  Ide ":       "ide",
	}
	for in, want := range tests {
		if got := CurrentTagFragment(in); got != want {
			t.Errorf("CurrentTagFragment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyTagCompletion(t *testing.T) {
	tests := []struct {
		input, completion, want string
	}{
		{"", "work", "work, "},
		{"wo", "work", "work, "},
		{"home, wo", "work", "home, work, "},
		{"home,, wo", "work", "home, work, "},
		{"home, ", "work", "home, work, "},
	}
	for _, tt := range tests {
		if got := ApplyTagCompletion(tt.input, tt.completion); got != tt.want {
			t.Errorf("ApplyTagCompletion(%q, %q) = %q, want %q", tt.input, tt.completion, got, tt.want)
		}
	}
}

func TestFilterSuggestions(t *testing.T) {
	got := FilterSuggestions("work", []string{"work", "workshop"})
	if !reflect.DeepEqual(got, []string{"workshop"}) {
		t.Errorf("unexpected suggestions %v", got)
	}
}

type fakeLister struct {
	prefix string
	tags   []string
	err    error
}

func (f *fakeLister) ListTagsPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	f.prefix = prefix
	return f.tags, f.err
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	lister := &fakeLister{tags: []string{"work", "workshop"}}
	got, err := Suggest(ctx, lister, "home, WORK", 8)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if lister.prefix != "work" {
		t.Errorf("expected prefix 'work', got %q", lister.prefix)
	}
	if !reflect.DeepEqual(got, []string{"workshop"}) {
		t.Errorf("unexpected suggestions %v", got)
	}

	empty := &fakeLister{tags: []string{"never"}}
	got, err = Suggest(ctx, empty, "home, ", 8)
	if err != nil || len(got) != 0 || empty.prefix != "" {
		t.Errorf("expected no lookup for empty fragment, got %v %v", got, err)
	}

	failing := &fakeLister{err: errors.New("boom")}
	if _, err := Suggest(ctx, failing, "x", 8); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestPickHint(t *testing.T) {
	if got := PickHint(nil, 42); got != DefaultHints[0] {
		t.Errorf("expected fallback hint, got %q", got)
	}
	if got := PickHint([]string{"only"}, 42); got != "only" {
		t.Errorf("expected single hint, got %q", got)
	}
	hints := []string{"a", "b", "c"}
	if got := PickHint(hints, 4); got != "b" {
		t.Errorf("expected 'b', got %q", got)
	}
}
