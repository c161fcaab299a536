// ABOUTME: Tests for polling-based file watcher
// ABOUTME: Validates mtime change detection, removal, stop behavior, and synchronous checks

package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var called atomic.Int32
	w := NewWatcher([]string{path}, func([]string) {
		called.Add(1)
	})
	w.SetInterval(50 * time.Millisecond)
	w.Start()
	defer w.Stop()

	// Wait for initial snapshot
	time.Sleep(100 * time.Millisecond)

	// Modify the file (ensure mtime changes)
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("name: b\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Wait for detection
	time.Sleep(200 * time.Millisecond)

	if called.Load() == 0 {
		t.Error("expected onChange to be called after file modification")
	}
}

func TestWatcher_NoChangeNoCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var called atomic.Int32
	w := NewWatcher([]string{path}, func([]string) {
		called.Add(1)
	})
	w.SetInterval(50 * time.Millisecond)
	w.Start()
	defer w.Stop()

	time.Sleep(200 * time.Millisecond)

	if called.Load() != 0 {
		t.Errorf("expected no onChange calls without modification, got %d", called.Load())
	}
}

func TestWatcher_CheckReportsChangedPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.toml")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte(""), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	w := NewWatcher([]string{a, b}, func(changed []string) {
		got = changed
	})
	w.snapshotLocked()

	// Push b's mtime forward instead of sleeping.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(b, future, future); err != nil {
		t.Fatal(err)
	}

	changed := w.Check()
	if len(changed) != 1 || changed[0] != b {
		t.Fatalf("Check() = %v, want [%s]", changed, b)
	}
	if len(got) != 1 || got[0] != b {
		t.Errorf("onChange got %v, want [%s]", got, b)
	}

	if again := w.Check(); len(again) != 0 {
		t.Errorf("second Check() = %v, want nothing", again)
	}
}

func TestWatcher_NewFileIsAChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "late.yaml")

	w := NewWatcher([]string{path}, func([]string) {})
	w.snapshotLocked()

	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}
	if changed := w.Check(); len(changed) != 1 {
		t.Errorf("Check() = %v, want the new file", changed)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := NewWatcher(nil, func([]string) {})
	w.Start()
	w.Stop()
	w.Stop() // should not panic
}

func TestWatcher_ConcurrentStop(t *testing.T) {
	w := NewWatcher(nil, func([]string) {})
	w.Start()

	// Multiple goroutines calling Stop concurrently must not panic.
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Stop()
		}()
	}
	wg.Wait()
}

func TestWatcher_StartIsIdempotent(t *testing.T) {
	w := NewWatcher(nil, func([]string) {})
	w.Start()
	w.Start() // should not panic or start second goroutine
	w.Stop()
}

func TestWatcher_DetectsFileRemoval(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher([]string{path}, func([]string) {})
	w.snapshotLocked()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	if changed := w.Check(); len(changed) != 1 || changed[0] != path {
		t.Errorf("Check() = %v, want [%s] after removal", changed, path)
	}
}

func TestWatcher_MissingFileNoError(t *testing.T) {
	w := NewWatcher([]string{"/nonexistent/file.json"}, func([]string) {})
	w.SetInterval(50 * time.Millisecond)
	w.Start()
	time.Sleep(100 * time.Millisecond)
	w.Stop() // should not panic
}
