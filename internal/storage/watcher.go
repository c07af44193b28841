package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 200 * time.Millisecond

// SettingsWatcher reloads preferences when the settings file changes
// on disk. Editors replace files rather than write in place, so the
// parent directory is watched and events are filtered by name.
type SettingsWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce *time.Timer
	closed   bool
}

// WatchSettings starts watching configPath and invokes onChange after
// writes settle.
func WatchSettings(configPath string, onChange func()) (*SettingsWatcher, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(configPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watch settings directory: %w", err)
	}

	watcher := &SettingsWatcher{watcher: fsWatcher}
	fileName := filepath.Base(configPath)

	go func() {
		for {
			select {
			case event, open := <-fsWatcher.Events:
				if !open {
					return
				}
				if filepath.Base(event.Name) != fileName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				watcher.scheduleReload(onChange)
			case err, open := <-fsWatcher.Errors:
				if !open {
					return
				}
				log.Printf("storage: settings watcher: %v", err)
			}
		}
	}()

	return watcher, nil
}

// Close stops the watcher and cancels any pending reload.
func (watcher *SettingsWatcher) Close() error {
	watcher.mu.Lock()
	watcher.closed = true
	if watcher.debounce != nil {
		watcher.debounce.Stop()
	}
	watcher.mu.Unlock()
	return watcher.watcher.Close()
}

func (watcher *SettingsWatcher) scheduleReload(onChange func()) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	if watcher.closed {
		return
	}
	if watcher.debounce != nil {
		watcher.debounce.Stop()
	}
	watcher.debounce = time.AfterFunc(reloadDebounce, onChange)
}
