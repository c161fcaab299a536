// ABOUTME: Event loop for the TUI engine: posted tasks, delayed tasks, and coalesced renders
// ABOUTME: Everything a coach mark observes runs on this single goroutine

package tui

import (
	"sync"
	"time"
)

// Post queues fn to run on the event goroutine.
func (t *TUI) Post(fn func()) {
	t.taskMu.Lock()
	t.tasks = append(t.tasks, fn)
	t.taskMu.Unlock()

	select {
	case t.taskCh <- struct{}{}:
	default: // Already signalled
	}
}

// PostDelayed runs fn on the event goroutine after d. The returned cancel
// stops the timer and drops the task if it was already queued.
func (t *TUI) PostDelayed(d time.Duration, fn func()) (cancel func()) {
	var (
		mu        sync.Mutex
		cancelled bool
	)
	timer := t.clock.AfterFunc(d, func() {
		t.Post(func() {
			mu.Lock()
			skip := cancelled
			mu.Unlock()
			if !skip {
				fn()
			}
		})
	})
	return func() {
		mu.Lock()
		cancelled = true
		mu.Unlock()
		timer.Stop()
	}
}

// RunPending runs queued tasks on the calling goroutine until the queue is
// empty. Tests use it instead of Start.
func (t *TUI) RunPending() {
	for {
		t.taskMu.Lock()
		tasks := t.tasks
		t.tasks = nil
		t.taskMu.Unlock()

		if len(tasks) == 0 {
			return
		}
		for _, fn := range tasks {
			fn()
		}
	}
}

// Start begins the event loop in a goroutine. Call Stop to terminate.
func (t *TUI) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	go t.eventLoop()
}

// Stop terminates the event loop. Safe to call multiple times.
func (t *TUI) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		if !t.running {
			t.mu.Unlock()
			return
		}
		t.running = false
		t.mu.Unlock()
		close(t.stopCh)
	})
}

func (t *TUI) eventLoop() {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.taskCh:
			t.RunPending()
		case <-t.renderCh:
			t.render()
		}
	}
}
