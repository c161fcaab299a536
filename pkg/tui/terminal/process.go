// ABOUTME: ProcessTerminal implements Terminal using os.Stdout and golang.org/x/term.
// ABOUTME: Manages raw mode state; resize detection is platform-specific and stopped by Close.

package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by os.Stdout and x/term.
type ProcessTerminal struct {
	mu         sync.Mutex
	oldState   *term.State
	resizeFn   func(width, height int)
	stopResize func()
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// OnResize registers the callback invoked with the new size after the
// terminal is resized, replacing any earlier one. The platform listener
// starts on the first call.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeFn = fn
	t.startResizeListener()
}

// Close stops resize detection. Raw mode is left to ExitRawMode.
func (t *ProcessTerminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopResize != nil {
		t.stopResize()
		t.stopResize = nil
		t.resizeFn = nil
	}
	return nil
}

func (t *ProcessTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()

	if fn == nil {
		return
	}
	if w, h, err := t.Size(); err == nil {
		fn(w, h)
	}
}

// Input returns the reader carrying keyboard and mouse reports.
func (t *ProcessTerminal) Input() io.Reader {
	return os.Stdin
}
