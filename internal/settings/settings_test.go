package settings

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memotori/pkg/capture"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo-tori", "config.toml")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quit_on_close = false")
	assert.Contains(t, string(data), "capture_hints")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestParse(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		s, err := Parse([]byte("quit_on_close = true\n"))
		require.NoError(t, err)
		assert.True(t, s.QuitOnClose)
		assert.Equal(t, 1.0, s.TextScale)
		assert.Equal(t, capture.DefaultHints, s.CaptureHints)
	})

	t.Run("full document", func(t *testing.T) {
		s, err := Parse([]byte("quit_on_close = false\ntext_scale = 1.25\ncapture_hints = [\"Idea:\"]\n"))
		require.NoError(t, err)
		assert.Equal(t, 1.25, s.TextScale)
		assert.Equal(t, []string{"Idea:"}, s.CaptureHints)
		assert.Equal(t, []string{"Idea:"}, s.Hints())
	})

	t.Run("empty hints fall back at use", func(t *testing.T) {
		s, err := Parse([]byte("capture_hints = []\n"))
		require.NoError(t, err)
		assert.Empty(t, s.CaptureHints)
		assert.Equal(t, capture.DefaultHints, s.Hints())
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := Parse([]byte("quit_on_close = = true"))
		assert.True(t, errors.Is(err, ErrInvalidSettings))
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Parse([]byte("text_scale = \"big\""))
		assert.True(t, errors.Is(err, ErrInvalidSettings))
	})

	t.Run("non positive scale", func(t *testing.T) {
		_, err := Parse([]byte("text_scale = 0.0"))
		assert.True(t, errors.Is(err, ErrInvalidSettings))
	})
}

func TestSaveRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Settings{QuitOnClose: true, TextScale: 1.5, CaptureHints: []string{"a", "b"}}

	require.NoError(t, Save(path, want))
	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHints_DoesNotExposeDefaults(t *testing.T) {
	original := slices.Clone(capture.DefaultHints)

	hints := Settings{}.Hints()
	require.NotEmpty(t, hints)
	hints[0] = "mutated"

	assert.Equal(t, original, capture.DefaultHints)
	assert.Equal(t, original, Settings{}.Hints())
}
