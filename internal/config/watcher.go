// ABOUTME: Polling-based file watcher for settings and tour hot-reload
// ABOUTME: Monitors file mtimes at a configurable interval and reports which paths changed

package config

import (
	"os"
	"sync"
	"time"
)

// Watcher monitors files for changes by polling mtime at regular intervals.
type Watcher struct {
	paths    []string
	onChange func(changed []string)
	interval time.Duration
	mtimes   map[string]time.Time
	stopCh   chan struct{}
	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher that calls onChange with the paths whose
// mtime changed (or which appeared or disappeared) since the last poll.
func NewWatcher(paths []string, onChange func(changed []string)) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: 2 * time.Second,
		mtimes:   make(map[string]time.Time),
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the default polling interval (2s).
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Start begins polling in a goroutine. Safe to call multiple times; subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.snapshotLocked()
	w.mu.Unlock()

	go w.loop()
}

// Stop halts the polling goroutine. Safe to call multiple times and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// Check polls once on the calling goroutine and reports what changed.
// onChange is invoked synchronously when something did.
func (w *Watcher) Check() []string {
	w.mu.Lock()
	changed := w.changedLocked()
	if len(changed) > 0 {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if len(changed) > 0 {
		w.onChange(changed)
	}
	return changed
}

func (w *Watcher) loop() {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// changedLocked compares current mtimes with stored snapshots. Must hold mu.
func (w *Watcher) changedLocked() []string {
	var changed []string
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			// File removed or inaccessible: report it only if it existed before
			if _, existed := w.mtimes[path]; existed {
				changed = append(changed, path)
			}
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			changed = append(changed, path)
		}
	}
	return changed
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
