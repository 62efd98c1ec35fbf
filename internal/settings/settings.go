// Package settings loads the application settings file (config.toml).
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/aretw0/memotori/pkg/adapters/markdown"
	"github.com/aretw0/memotori/pkg/capture"
)

const defaultTextScale = 1.0

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the user preferences read by the presentation layer.
type Settings struct {
	QuitOnClose  bool     `toml:"quit_on_close"`
	TextScale    float64  `toml:"text_scale"`
	CaptureHints []string `toml:"capture_hints"`
}

func Default() Settings {
	hints := make([]string, len(capture.DefaultHints))
	copy(hints, capture.DefaultHints)
	return Settings{
		QuitOnClose:  false,
		TextScale:    defaultTextScale,
		CaptureHints: hints,
	}
}

// Hints returns the configured capture hints, or the defaults when none are set.
func (s Settings) Hints() []string {
	if len(s.CaptureHints) == 0 {
		return slices.Clone(capture.DefaultHints)
	}
	return s.CaptureHints
}

// Parse decodes a settings document. Keys that are absent keep their defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.TextScale <= 0 {
		return fmt.Errorf("%w: text_scale must be positive, got %v", ErrInvalidSettings, s.TextScale)
	}
	return nil
}

// Read parses the settings file at path.
func Read(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %q: %w", path, err)
	}
	return s, nil
}

// Load reads the settings file, creating it with the defaults when absent.
func Load(path string) (Settings, error) {
	s, err := Read(path)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Settings{}, err
	}

	s = Default()
	if err := Save(path, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes s to path atomically.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := markdown.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
