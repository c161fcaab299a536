// ABOUTME: TUI engine with differential rendering, anchor layout, and popup compositing
// ABOUTME: Implements Window; renders full-screen frames with CSI 2026 synchronized output

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mauromedda/coachmark-go/internal/eventbus"
	"github.com/mauromedda/coachmark-go/pkg/tui/key"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// TUI is the main rendering engine and a Window for coach marks.
type TUI struct {
	container *Container
	writer    Writer
	clock     Clock
	preLayout *eventbus.Bus[struct{}]

	mu             sync.Mutex
	width          int
	height         int
	reservedTop    int
	reservedBottom int
	previousLines  []string
	popups         []*Popup
	regions        map[string]Rect
	onKey          func(key.Key)
	running        bool

	renderCh chan struct{}
	taskCh   chan struct{}
	taskMu   sync.Mutex
	tasks    []func()
	stopCh   chan struct{}
	stopOnce sync.Once

	// Relative rendering state
	rstate renderState
}

var _ Window = (*TUI)(nil)

// Option configures a TUI.
type Option func(*TUI)

// WithClock replaces the wall clock used by PostDelayed.
func WithClock(c Clock) Option {
	return func(t *TUI) { t.clock = c }
}

// New creates a new TUI engine writing to w with the given dimensions.
func New(w Writer, termWidth, termHeight int, opts ...Option) *TUI {
	t := &TUI{
		container: NewContainer(),
		writer:    w,
		clock:     SystemClock{},
		preLayout: eventbus.New[struct{}](),
		width:     termWidth,
		height:    termHeight,
		renderCh:  make(chan struct{}, 1),
		taskCh:    make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		rstate:    renderState{firstRender: true},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.container.AttachWindow(t)
	return t
}

// Container returns the root container for adding components.
func (t *TUI) Container() *Container {
	return t.container
}

// SetSize updates the terminal dimensions and triggers a re-render.
func (t *TUI) SetSize(w, h int) {
	t.mu.Lock()
	t.width = w
	t.height = h
	t.previousLines = nil // Force full redraw
	t.mu.Unlock()
	t.container.Invalidate()
	t.RequestRender()
}

// SetReservedRows keeps the given number of rows at the top and bottom of
// the screen out of the visible frame (title and status bars).
func (t *TUI) SetReservedRows(top, bottom int) {
	t.mu.Lock()
	t.reservedTop = max(top, 0)
	t.reservedBottom = max(bottom, 0)
	t.mu.Unlock()
	t.RequestRender()
}

// VisibleFrame returns the screen minus reserved rows.
func (t *TUI) VisibleFrame() Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Rect{
		X:      0,
		Y:      t.reservedTop,
		Width:  t.width,
		Height: max(t.height-t.reservedTop-t.reservedBottom, 0),
	}
}

// RegionBounds returns the bounds of region id from the most recent layout.
func (t *TUI) RegionBounds(id string) (Rect, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.regions[id]
	return r, ok
}

// OnPreLayout registers fn to run after layout on every render.
func (t *TUI) OnPreLayout(fn func()) (unsubscribe func()) {
	return t.preLayout.Subscribe(func(struct{}) { fn() })
}

// AttachAnchor attaches a free-standing anchor (one used through Mark
// rather than added to the container) to this window.
func (t *TUI) AttachAnchor(a *Anchor) {
	a.AttachWindow(t)
}

// AddPopup shows p above the content.
func (t *TUI) AddPopup(p *Popup) error {
	t.mu.Lock()
	for _, existing := range t.popups {
		if existing == p {
			t.mu.Unlock()
			return ErrAlreadyShowing
		}
	}
	t.popups = append(t.popups, p)
	t.mu.Unlock()
	t.RequestRender()
	return nil
}

// RemovePopup hides p. It returns ErrNotAttached if p is not shown here.
func (t *TUI) RemovePopup(p *Popup) error {
	t.mu.Lock()
	idx := -1
	for i, existing := range t.popups {
		if existing == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return ErrNotAttached
	}
	t.popups = append(t.popups[:idx], t.popups[idx+1:]...)
	t.mu.Unlock()
	t.RequestRender()
	return nil
}

// Popups returns a snapshot of shown popups, bottom first.
func (t *TUI) Popups() []*Popup {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Popup, len(t.popups))
	copy(out, t.popups)
	return out
}

// ClearPopups drops every popup without notifying it, as when the window
// is torn down underneath its owners.
func (t *TUI) ClearPopups() {
	t.mu.Lock()
	t.popups = nil
	t.mu.Unlock()
	t.RequestRender()
}

// Close detaches the component tree, drops leftover popups, and stops the loop.
func (t *TUI) Close() {
	t.container.DetachWindow()
	t.ClearPopups()
	t.Stop()
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default: // Already pending; coalesced
	}
}

// Frame returns a copy of the most recently rendered screen lines.
func (t *TUI) Frame() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.previousLines))
	copy(out, t.previousLines)
	return out
}

// RenderOnce performs a single synchronous render. Useful for testing.
func (t *TUI) RenderOnce() {
	t.render()
}

func (t *TUI) render() {
	t.mu.Lock()
	w := t.width
	h := t.height
	prevLines := t.previousLines
	rstate := t.rstate
	t.mu.Unlock()

	if w <= 0 || h <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	t.container.Render(buf, w)

	// Clamp to terminal height: keep bottom lines so footers stay visible
	lines := buf.Lines
	clamped := len(lines) > h
	if clamped {
		lines = lines[len(lines)-h:]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}

	// Detect clamp transition: force full redraw so diff engine stays consistent
	if clamped != rstate.prevClamped {
		prevLines = nil
		rstate.firstRender = true
		rstate.maxRendered = 0
	}
	rstate.prevClamped = clamped

	// Layout: measure anchors, then let observers react before compositing.
	regions := ExtractRegions(lines)
	t.mu.Lock()
	t.regions = regions
	t.mu.Unlock()
	t.preLayout.Publish(struct{}{})

	Composite(lines, t.Popups())

	// Find cursor position and strip marker
	cursorRow, cursorCol := extractCursorPosition(lines)

	// Relative differential update
	output := relativeRender(&rstate, prevLines, lines, w)

	// Position cursor using relative movement
	if cursorRow >= 0 && cursorCol >= 0 {
		var curBuf strings.Builder
		var numBuf [20]byte
		moveCursor(&curBuf, numBuf[:], rstate.cursorRow, cursorRow)
		rstate.cursorRow = cursorRow
		curBuf.WriteString(fmt.Sprintf("\r\x1b[%dC", cursorCol))
		curBuf.WriteString("\x1b[?25h") // Show cursor
		output += curBuf.String()
	} else {
		output += "\x1b[?25l" // Hide cursor
	}

	// Write output atomically
	if output != "" {
		// CSI 2026 synchronized output: begin
		syncOutput := "\x1b[?2026h" + output + "\x1b[?2026l"
		_, _ = t.writer.Write([]byte(syncOutput))
	}

	// Save current lines for next diff, reusing the previous slice when possible.
	saved := prevLines
	if cap(saved) >= len(lines) {
		saved = saved[:len(lines)]
	} else {
		saved = make([]string, len(lines))
	}
	copy(saved, lines)
	t.mu.Lock()
	t.previousLines = saved
	t.rstate = rstate
	t.mu.Unlock()
}

// extractCursorPosition finds the CursorMarker in lines, removes it,
// and returns (row, col). Returns (-1, -1) if not found.
func extractCursorPosition(lines []string) (row, col int) {
	for i, line := range lines {
		idx := strings.Index(line, CursorMarker)
		if idx >= 0 {
			before := line[:idx]
			after := line[idx+len(CursorMarker):]
			lines[i] = before + after
			return i, width.VisibleWidth(before)
		}
	}
	return -1, -1
}

// renderState tracks cursor position across renders for relative movement.
type renderState struct {
	maxRendered int  // max lines ever rendered
	cursorRow   int  // cursor row (0-based, relative to our output region)
	firstRender bool // true until first render completes
	prevWidth   int  // detect width changes
	prevClamped bool // was previous frame clamped to terminal height?
}

// relativeRender generates ANSI commands using relative cursor movement
// instead of absolute positioning, so content scrolls like a chat.
func relativeRender(state *renderState, prev, curr []string, termWidth int) string {
	var b strings.Builder
	var numBuf [20]byte

	// Width change: full clear and re-render everything
	if state.prevWidth != 0 && state.prevWidth != termWidth {
		b.WriteString("\x1b[2J\x1b[H") // clear screen + home
		for i, line := range curr {
			if i > 0 {
				b.WriteString("\r\n")
			}
			b.WriteString(line)
		}
		state.cursorRow = len(curr) - 1
		if state.cursorRow < 0 {
			state.cursorRow = 0
		}
		state.maxRendered = len(curr)
		state.firstRender = false
		state.prevWidth = termWidth
		return b.String()
	}
	state.prevWidth = termWidth

	// First render: just output lines with \r\n
	if state.firstRender {
		for i, line := range curr {
			if i > 0 {
				b.WriteString("\r\n")
			}
			b.WriteString(line)
		}
		state.cursorRow = len(curr) - 1
		if state.cursorRow < 0 {
			state.cursorRow = 0
		}
		state.maxRendered = len(curr)
		state.firstRender = false
		return b.String()
	}

	// Find which lines changed and which are new
	commonLen := len(prev)
	if len(curr) < commonLen {
		commonLen = len(curr)
	}

	// Update changed lines using relative movement
	for i := 0; i < commonLen; i++ {
		if prev[i] == curr[i] {
			continue
		}
		// Move cursor to row i
		moveCursor(&b, numBuf[:], state.cursorRow, i)
		state.cursorRow = i
		b.WriteString("\r\x1b[2K") // carriage return + erase line
		b.WriteString(curr[i])
	}

	// Append new lines
	if len(curr) > len(prev) {
		// Move to the last rendered line
		moveCursor(&b, numBuf[:], state.cursorRow, len(prev)-1)
		state.cursorRow = len(prev) - 1
		if state.cursorRow < 0 {
			state.cursorRow = 0
		}

		for i := len(prev); i < len(curr); i++ {
			b.WriteString("\r\n")
			b.WriteString(curr[i])
			state.cursorRow = i
		}
	}

	// Clear excess lines if content shrank
	if len(curr) < state.maxRendered {
		for i := len(curr); i < state.maxRendered; i++ {
			moveCursor(&b, numBuf[:], state.cursorRow, i)
			state.cursorRow = i
			b.WriteString("\r\x1b[2K")
		}
		// Move back to last content line
		if len(curr) > 0 {
			moveCursor(&b, numBuf[:], state.cursorRow, len(curr)-1)
			state.cursorRow = len(curr) - 1
		}
		// Reset so we don't re-clear on next frame
		state.maxRendered = len(curr)
	}

	if len(curr) > state.maxRendered {
		state.maxRendered = len(curr)
	}

	return b.String()
}

// moveCursor emits relative cursor movement sequences to move from fromRow to toRow.
func moveCursor(b *strings.Builder, numBuf []byte, fromRow, toRow int) {
	if fromRow == toRow {
		return
	}
	delta := toRow - fromRow
	if delta < 0 {
		// Move up
		b.WriteString("\x1b[")
		b.Write(strconv.AppendInt(numBuf[:0], int64(-delta), 10))
		b.WriteByte('A')
	} else {
		// Move down
		b.WriteString("\x1b[")
		b.Write(strconv.AppendInt(numBuf[:0], int64(delta), 10))
		b.WriteByte('B')
	}
}
