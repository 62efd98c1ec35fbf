package markdown

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Run("No Frontmatter", func(t *testing.T) {
		doc, err := Decode(strings.NewReader("just a thought\n---\nnot meta"))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if doc.HasFrontmatter {
			t.Error("expected no frontmatter")
		}
		if doc.Body != "just a thought\n---\nnot meta" {
			t.Errorf("unexpected body %q", doc.Body)
		}
	})

	t.Run("Frontmatter With List Tags", func(t *testing.T) {
		input := "---\nid: abc\ntags:\n  - home\n  - errand\ncreated_at: 10\nupdated_at: 20\nauthor: ignored\n---\nBuy milk\n"
		doc, err := Decode(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !doc.HasFrontmatter {
			t.Fatal("expected frontmatter")
		}
		if doc.Meta.ID != "abc" || doc.Meta.CreatedAt != 10 || doc.Meta.UpdatedAt != 20 {
			t.Errorf("unexpected meta %+v", doc.Meta)
		}
		if !reflect.DeepEqual([]string(doc.Meta.Tags), []string{"home", "errand"}) {
			t.Errorf("unexpected tags %v", doc.Meta.Tags)
		}
		if doc.Body != "Buy milk\n" {
			t.Errorf("unexpected body %q", doc.Body)
		}
	})

	t.Run("Comma Separated Tags", func(t *testing.T) {
		doc, err := Decode(strings.NewReader("---\ntags: \"work, Ideas ,\"\n---\nbody"))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !reflect.DeepEqual([]string(doc.Meta.Tags), []string{"work", "Ideas"}) {
			t.Errorf("unexpected tags %v", doc.Meta.Tags)
		}
	})

	t.Run("CRLF Delimiters", func(t *testing.T) {
		doc, err := Decode(strings.NewReader("---\r\nid: x\r\n---\r\nbody"))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if doc.Meta.ID != "x" || doc.Body != "body" {
			t.Errorf("unexpected doc %+v", doc)
		}
	})

	t.Run("Unclosed Frontmatter", func(t *testing.T) {
		if _, err := Decode(strings.NewReader("---\nid: x\nbody")); err == nil {
			t.Error("expected error for unclosed frontmatter")
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		if _, err := Decode(strings.NewReader("---\ntags: [unterminated\n---\nbody")); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

func TestEncodeDecode_PreservesBody(t *testing.T) {
	bodies := []string{"", "one line", "\nleading newline", "has\n---\ninner delimiter\n", "trailing spaces  "}
	for _, body := range bodies {
		in := Document{
			Meta:           Frontmatter{ID: "id-1", Tags: TagList{"a", "b"}, CreatedAt: 1, UpdatedAt: 2},
			HasFrontmatter: true,
			Body:           body,
		}
		data, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		out, err := Decode(strings.NewReader(string(data)))
		if err != nil {
			t.Fatalf("Decode failed for %q: %v", body, err)
		}
		if out.Body != body {
			t.Errorf("body changed: got %q, want %q", out.Body, body)
		}
		if !reflect.DeepEqual(out.Meta, in.Meta) {
			t.Errorf("meta changed: got %+v, want %+v", out.Meta, in.Meta)
		}
	}
}

func TestEncode_WithoutFrontmatter(t *testing.T) {
	data, err := Encode(Document{Body: "plain"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(data) != "plain" {
		t.Errorf("unexpected output %q", data)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "note.md")
		if err := WriteFileAtomic(filename, []byte("hello"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic failed: %v", err)
		}
		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("unexpected content %q", got)
		}
	})

	t.Run("Overwrites And Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		filename := filepath.Join(dir, "note.md")
		if err := os.WriteFile(filename, []byte("initial"), 0o644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		if err := WriteFileAtomic(filename, []byte("overwritten"), 0o600); err != nil {
			t.Fatalf("WriteFileAtomic failed: %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "overwritten" {
			t.Errorf("unexpected content %q", got)
		}
		info, err := os.Stat(filename)
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("expected 0600, got %v", info.Mode().Perm())
		}

		entries, _ := os.ReadDir(dir)
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Missing Directory", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "missing", "note.md")
		if err := WriteFileAtomic(filename, []byte("x"), 0o644); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestWriteDocument(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "n1.md")
	want := Document{
		Meta:           Frontmatter{ID: "n1", Tags: TagList{"home", "work"}, CreatedAt: 10, UpdatedAt: 20},
		HasFrontmatter: true,
		Body:           "Buy milk\n",
	}
	if err := WriteDocument(filename, want, 0o644); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	got, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
