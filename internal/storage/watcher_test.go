package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnSettingsWrite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(configPath, []byte("work_minutes: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	watcher, err := WatchSettings(configPath, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watch settings: %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(configPath, []byte("work_minutes: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after settings write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(configPath, []byte("work_minutes: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	watcher, err := WatchSettings(configPath, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watch settings: %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(time.Second):
	}
}
