// ABOUTME: Anchor wraps a component so the engine can locate it on screen for coach marks
// ABOUTME: Tracks window attachment, visibility, pre-layout observers, and a drawing cache

package tui

import (
	"sync"

	"github.com/mauromedda/coachmark-go/internal/eventbus"
)

// Anchor is a component whose on-screen bounds are measured every layout.
// A nil child makes an inline anchor: embed Mark(text) in another
// component's output instead of adding the anchor to a container.
type Anchor struct {
	id    string
	child Component

	mu        sync.Mutex
	window    Window
	hidden    bool
	cache     []string
	unsubPass func()

	preLayout *eventbus.Bus[struct{}]
	attach    *eventbus.Bus[bool]
}

// NewAnchor creates an anchor named id around child. Ids must be unique per
// window and must not contain ESC.
func NewAnchor(id string, child Component) *Anchor {
	return &Anchor{
		id:        id,
		child:     child,
		preLayout: eventbus.New[struct{}](),
		attach:    eventbus.New[bool](),
	}
}

// ID returns the region id the anchor is measured under.
func (a *Anchor) ID() string { return a.id }

// Child returns the wrapped component, or nil for inline anchors.
func (a *Anchor) Child() Component { return a.child }

// Render draws the child wrapped in region markers and refreshes the
// drawing cache. A hidden anchor keeps its rows but draws blanks.
func (a *Anchor) Render(out *RenderBuffer, width int) {
	if a.child == nil {
		return
	}
	lines := RenderLines(a.child, width)

	a.mu.Lock()
	hidden := a.hidden
	a.cache = lines
	a.mu.Unlock()

	for _, line := range lines {
		if hidden {
			out.WriteLine("")
			continue
		}
		out.WriteLine(markLine(a.id, line))
	}
}

// Invalidate forwards to the child.
func (a *Anchor) Invalidate() {
	if a.child != nil {
		a.child.Invalidate()
	}
}

// Mark wraps text in this anchor's region markers.
func (a *Anchor) Mark(text string) string {
	return Mark(a.id, text)
}

// AttachWindow attaches the anchor to w. Attaching to a different window
// detaches from the previous one first.
func (a *Anchor) AttachWindow(w Window) {
	a.mu.Lock()
	if a.window == w {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	a.DetachWindow()

	unsub := w.OnPreLayout(func() { a.preLayout.Publish(struct{}{}) })
	a.mu.Lock()
	a.window = w
	a.unsubPass = unsub
	a.mu.Unlock()

	a.attach.Publish(true)
}

// DetachWindow detaches the anchor; observers are told it left the window.
func (a *Anchor) DetachWindow() {
	a.mu.Lock()
	if a.window == nil {
		a.mu.Unlock()
		return
	}
	w := a.window
	unsub := a.unsubPass
	a.window = nil
	a.unsubPass = nil
	a.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	a.attach.Publish(false)
	w.RequestRender()
}

// Window returns the window the anchor is attached to, or nil.
func (a *Anchor) Window() Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}

// IsAttached reports whether the anchor is attached to a window.
func (a *Anchor) IsAttached() bool {
	return a.Window() != nil
}

// SetVisible shows or hides the anchor without changing layout.
func (a *Anchor) SetVisible(visible bool) {
	a.mu.Lock()
	a.hidden = !visible
	w := a.window
	a.mu.Unlock()
	if w != nil {
		w.RequestRender()
	}
}

// IsVisible reports the visibility flag set by SetVisible.
func (a *Anchor) IsVisible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.hidden
}

// IsShown reports whether the anchor is attached, visible, and was placed
// on screen by the most recent layout.
func (a *Anchor) IsShown() bool {
	a.mu.Lock()
	w, hidden := a.window, a.hidden
	a.mu.Unlock()
	if w == nil || hidden {
		return false
	}
	_, ok := w.RegionBounds(a.id)
	return ok
}

// Bounds returns the anchor's on-screen rectangle from the most recent
// layout, or the zero Rect when it is not on screen.
func (a *Anchor) Bounds() Rect {
	w := a.Window()
	if w == nil {
		return Rect{}
	}
	r, _ := w.RegionBounds(a.id)
	return r
}

// OnPreLayout registers fn to run after each layout of the anchor's window.
func (a *Anchor) OnPreLayout(fn func()) (unsubscribe func()) {
	return a.preLayout.Subscribe(func(struct{}) { fn() })
}

// OnAttachStateChange registers fn for attach (true) and detach (false).
func (a *Anchor) OnAttachStateChange(fn func(attached bool)) (unsubscribe func()) {
	return a.attach.Subscribe(fn)
}

// DrawingCache returns the child's lines from the most recent render.
func (a *Anchor) DrawingCache() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.cache))
	copy(out, a.cache)
	return out
}

// DestroyDrawingCache drops the cached lines until the next render.
func (a *Anchor) DestroyDrawingCache() {
	a.mu.Lock()
	a.cache = nil
	a.mu.Unlock()
}
