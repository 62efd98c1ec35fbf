package markdown

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names the scratch files WriteFileAtomic leaves in the target
// directory while a write is in flight. Import globs only match *.md, so a
// crashed export never feeds one back in.
const TempFilePrefix = "memotori-tmp-"

// WriteDocument encodes doc and writes it to filename atomically. Export uses
// it for every <id>.md file.
func WriteDocument(filename string, doc Document, perm os.FileMode) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(filename), err)
	}
	return WriteFileAtomic(filename, data, perm)
}

// WriteFileAtomic replaces filename with data through a synced temp file and
// a rename, so an exported note or the settings file is either the old
// version or the new one. The parent directory must exist.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(filename), err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("replace %s: %w", filename, err)
	}
	return nil
}
