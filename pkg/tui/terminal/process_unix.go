// ABOUTME: Unix-specific SIGWINCH handling for ProcessTerminal resize events.
// ABOUTME: One listener per terminal, stopped by Close.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// startResizeListener installs a SIGWINCH handler the first time it runs.
// Callers hold t.mu.
func (t *ProcessTerminal) startResizeListener() {
	if t.stopResize != nil {
		return
	}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	t.stopResize = func() {
		signal.Stop(sigCh)
		close(sigCh)
	}

	go func() {
		for range sigCh {
			t.notifyResize()
		}
	}()
}
