// ABOUTME: Windows resize handling for ProcessTerminal: polls the console size
// ABOUTME: Windows has no SIGWINCH, so size changes are noticed on a short ticker

//go:build windows

package terminal

import "time"

const resizePollInterval = 250 * time.Millisecond

// startResizeListener starts the size poller the first time it runs.
// Callers hold t.mu.
func (t *ProcessTerminal) startResizeListener() {
	if t.stopResize != nil {
		return
	}
	done := make(chan struct{})
	t.stopResize = func() { close(done) }

	go func() {
		tick := time.NewTicker(resizePollInterval)
		defer tick.Stop()

		lastW, lastH, _ := t.Size()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				w, h, err := t.Size()
				if err != nil || (w == lastW && h == lastH) {
					continue
				}
				lastW, lastH = w, h
				t.notifyResize()
			}
		}
	}()
}
