package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Reloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(path, Default()))

	changes := make(chan Settings, 4)
	errs := make(chan error, 4)
	w := NewWatcher(WatcherConfig{
		Path:     path,
		OnChange: func(s Settings) { changes <- s },
		OnError:  func(err error) { errs <- err },
		Debounce: 20 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("quit_on_close = true\ntext_scale = 2.0\n"), 0o644))

	select {
	case s := <-changes:
		assert.True(t, s.QuitOnClose)
		assert.Equal(t, 2.0, s.TextScale)
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for reload")
	}
}

func TestWatcher_ReportsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(path, Default()))

	errs := make(chan error, 4)
	w := NewWatcher(WatcherConfig{
		Path:     path,
		OnChange: func(Settings) {},
		OnError:  func(err error) { errs <- err },
		Debounce: 20 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("text_scale = -1.0\n"), 0o644))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrInvalidSettings)
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for error")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, Save(path, Default()))

	changes := make(chan Settings, 1)
	w := NewWatcher(WatcherConfig{Path: path, OnChange: func(s Settings) { changes <- s }, Debounce: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))

	select {
	case s := <-changes:
		t.Fatalf("unexpected reload: %+v", s)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_RequiresCallback(t *testing.T) {
	w := NewWatcher(WatcherConfig{Path: filepath.Join(t.TempDir(), "config.toml")})
	assert.Error(t, w.Start(context.Background()))
}
