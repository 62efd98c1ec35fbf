// Package markdown reads and writes notes as Markdown files with an optional
// YAML frontmatter block.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Frontmatter is the metadata block written on export. Unknown keys are
// ignored on decode.
type Frontmatter struct {
	ID        string  `yaml:"id,omitempty"`
	Tags      TagList `yaml:"tags,omitempty"`
	CreatedAt int64   `yaml:"created_at,omitempty"`
	UpdatedAt int64   `yaml:"updated_at,omitempty"`
}

// TagList accepts either a YAML sequence or a comma separated scalar.
type TagList []string

func (l *TagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		var items []string
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		*l = items
	default:
		return fmt.Errorf("tags: unsupported yaml kind %v", value.Kind)
	}
	return nil
}

// Document is a decoded Markdown file.
type Document struct {
	Meta           Frontmatter
	HasFrontmatter bool
	Body           string
}

// Decode parses a Markdown file. Files that do not start with a "---" line
// are returned verbatim as the body.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}

	rest, ok := cutDelimiterLine(data)
	if !ok {
		return Document{Body: string(data)}, nil
	}

	header, body, found := splitClosing(rest)
	if !found {
		return Document{}, errors.New("frontmatter started but no closing delimiter found")
	}

	var doc Document
	if err := yaml.Unmarshal(header, &doc.Meta); err != nil {
		return Document{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	doc.HasFrontmatter = true
	doc.Body = string(body)
	return doc, nil
}

// Encode renders the document. The frontmatter block is only written when
// HasFrontmatter is set; the body is appended verbatim.
func Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if doc.HasFrontmatter {
		buf.WriteString(delimiter + "\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc.Meta); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		buf.WriteString(delimiter + "\n")
	}
	buf.WriteString(doc.Body)
	return buf.Bytes(), nil
}

// cutDelimiterLine strips a leading "---" line.
func cutDelimiterLine(data []byte) ([]byte, bool) {
	for _, prefix := range []string{delimiter + "\n", delimiter + "\r\n"} {
		if rest, ok := bytes.CutPrefix(data, []byte(prefix)); ok {
			return rest, true
		}
	}
	return nil, false
}

// splitClosing finds the first line that is exactly "---" and returns what
// precedes and follows it.
func splitClosing(data []byte) (header, body []byte, found bool) {
	offset := 0
	for offset <= len(data) {
		line := data[offset:]
		end := bytes.IndexByte(line, '\n')
		next := len(data)
		if end >= 0 {
			line = line[:end]
			next = offset + end + 1
		}
		if string(bytes.TrimSuffix(line, []byte("\r"))) == delimiter {
			return data[:offset], data[next:], true
		}
		if end < 0 {
			break
		}
		offset = next
	}
	return nil, nil, false
}
