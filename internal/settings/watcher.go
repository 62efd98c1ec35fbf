package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 50 * time.Millisecond

// WatcherConfig configures a Watcher. OnChange is required.
type WatcherConfig struct {
	Path     string
	OnChange func(Settings)
	OnError  func(error)
	Logger   *slog.Logger
	Debounce time.Duration
}

// Watcher re-reads the settings file whenever it changes on disk.
// The parent directory is watched so editors that replace the file by
// rename are picked up too.
type Watcher struct {
	cfg    WatcherConfig
	target string
}

func NewWatcher(cfg WatcherConfig) *Watcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	return &Watcher{cfg: cfg, target: filepath.Clean(cfg.Path)}
}

// Start begins watching and returns once the watch is registered.
// The watch stops when ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	if w.cfg.OnChange == nil {
		return fmt.Errorf("settings watcher: OnChange is required")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.target)); err != nil {
		_ = fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.target), err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer fw.Close()
		return w.run(ctx, fw)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.cfg.Logger.Error("settings watcher stopped", "error", err)
		w.reportError(err)
	}))
	return nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.cfg.Logger.Debug("settings file changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Reset(w.cfg.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			s, err := Read(w.target)
			if err != nil {
				w.reportError(err)
				continue
			}
			w.cfg.OnChange(s)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.cfg.Logger.Error("fsnotify error", "error", err)
			w.reportError(err)
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.cfg.OnError != nil {
		w.cfg.OnError(err)
	}
}
