// ABOUTME: Core TUI interfaces: Component, KeyHandler, Clickable, Punched, Attacher
// ABOUTME: Defines the contract for renderable elements, popup content, and window attachment

package tui

import "github.com/mauromedda/coachmark-go/pkg/tui/key"

// CursorMarker is a zero-width marker that components embed in render output
// to indicate cursor position. The TUI engine strips it and positions the
// real terminal cursor at that location.
const CursorMarker = "\x1b_cursor\x1b\\"

// Component is the base interface for all TUI elements.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// KeyHandler is implemented by components that process keyboard input.
// HandleKey reports whether the key was consumed.
type KeyHandler interface {
	HandleKey(k key.Key) bool
}

// Clickable is implemented by popup content that reacts to presses.
// x and y are relative to the popup's top-left cell.
type Clickable interface {
	Click(x, y int) bool
}

// Span is a half-open column range [Start, End).
type Span struct {
	Start, End int
}

// Punched is implemented by popup content with see-through regions.
// TransparentSpans returns, for a popup-relative row, the column spans
// where the underlying frame shows through.
type Punched interface {
	TransparentSpans(row int) []Span
}

// Attacher is implemented by components that track the window they are
// attached to. Containers propagate attach and detach to their children.
type Attacher interface {
	AttachWindow(w Window)
	DetachWindow()
}
