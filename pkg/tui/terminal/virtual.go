// ABOUTME: VirtualTerminal implements Terminal for tests: scripted input, captured output
// ABOUTME: Tracks raw mode and whether the alternate screen and mouse reporting are on

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	width    int
	height   int
	rawMode  bool
	fullscr  bool
	mouse    bool
	resizeFn func(width, height int)

	inR *io.PipeReader
	inW *io.PipeWriter
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	r, w := io.Pipe()
	return &VirtualTerminal{width: width, height: height, inR: r, inW: w}
}

func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	return nil
}

func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	return nil
}

func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Input returns the read side of the scripted input; see Type and CloseInput.
func (v *VirtualTerminal) Input() io.Reader {
	return v.inR
}

// Write appends p to the output and follows the screen-mode switches in it.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := string(p)
	v.fullscr = lastToggle(s, altScreenOn, altScreenOff, v.fullscr)
	v.mouse = lastToggle(s, mouseOn, mouseOff, v.mouse)

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// Type feeds s to Input. It blocks until a reader has consumed it.
func (v *VirtualTerminal) Type(s string) error {
	_, err := io.WriteString(v.inW, s)
	return err
}

// CloseInput ends Input with io.EOF, as when stdin is closed.
func (v *VirtualTerminal) CloseInput() {
	_ = v.inW.Close()
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer. Mode tracking is kept.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// IsFullscreen reports whether the alternate screen is on.
func (v *VirtualTerminal) IsFullscreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.fullscr
}

// MouseEnabled reports whether mouse press reporting is on.
func (v *VirtualTerminal) MouseEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.mouse
}

// SetSize updates the dimensions and runs the resize callback, if any.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}

// lastToggle returns the state after whichever of on and off occurs last
// in s, or cur when neither does.
func lastToggle(s, on, off string, cur bool) bool {
	i, j := strings.LastIndex(s, on), strings.LastIndex(s, off)
	if i < 0 && j < 0 {
		return cur
	}
	return i > j
}
