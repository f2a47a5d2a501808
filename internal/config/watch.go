package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration whenever the file changes on disk and calls
// onReload with the fresh config. Editors replace rather than rewrite the
// file, so the parent directory is watched and events are debounced. Watch
// blocks until ctx is cancelled.
func Watch(ctx context.Context, onReload func(*Config)) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var debounce *time.Timer
	reload := func() {
		cfg, err := LoadUserConfig()
		if err != nil {
			// a half-written file; the next event retries
			return
		}
		onReload(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, reload)
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}
