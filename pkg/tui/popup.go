// ABOUTME: Popup is a floating surface composited over a window at an absolute position
// ABOUTME: Carries background, animation id, focus and touch flags, and dismiss-request routing

package tui

import (
	"strings"
	"sync"

	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// DismissRequest says why a window asks a popup to go away.
type DismissRequest int

const (
	// RequestOutsideTouch is a press outside a touchable, non-focusable popup.
	RequestOutsideTouch DismissRequest = iota
	// RequestTouch is an unhandled press inside a touchable popup.
	RequestTouch
	// RequestBack is the Escape key.
	RequestBack
)

func (r DismissRequest) String() string {
	switch r {
	case RequestOutsideTouch:
		return "outside_touch"
	case RequestTouch:
		return "touch"
	case RequestBack:
		return "back"
	default:
		return "unknown"
	}
}

// Popup is a surface shown over a window. Its geometry is either an
// explicit rectangle or the window's whole visible frame.
type Popup struct {
	content Component

	mu         sync.Mutex
	window     Window
	showing    bool
	fullscreen bool
	bounds     Rect
	background theme.Color
	animation  string
	focusable  bool
	touchable  bool
	onRequest  func(DismissRequest)
}

// NewPopup creates a hidden, touchable, non-focusable popup around content.
func NewPopup(content Component) *Popup {
	return &Popup{content: content, touchable: true}
}

// ContentView returns the component drawn inside the popup.
func (p *Popup) ContentView() Component { return p.content }

// ShowAt shows the popup in w at (x, y) with the given size.
func (p *Popup) ShowAt(w Window, x, y, width, height int) error {
	return p.show(w, false, Rect{X: x, Y: y, Width: width, Height: height})
}

// ShowFullscreen shows the popup in w covering the visible frame.
func (p *Popup) ShowFullscreen(w Window) error {
	return p.show(w, true, Rect{})
}

func (p *Popup) show(w Window, fullscreen bool, r Rect) error {
	if w == nil {
		return ErrNilWindow
	}
	p.mu.Lock()
	if p.showing {
		p.mu.Unlock()
		return ErrAlreadyShowing
	}
	p.window = w
	p.fullscreen = fullscreen
	p.bounds = r
	p.showing = true
	p.mu.Unlock()

	if err := w.AddPopup(p); err != nil {
		p.mu.Lock()
		p.showing = false
		p.window = nil
		p.mu.Unlock()
		return err
	}
	return nil
}

// Update moves and resizes a shown popup. Full-screen popups ignore it,
// and an unchanged rectangle does not schedule a render.
func (p *Popup) Update(x, y, width, height int) {
	p.mu.Lock()
	if !p.showing || p.fullscreen {
		p.mu.Unlock()
		return
	}
	r := Rect{X: x, Y: y, Width: width, Height: height}
	if r == p.bounds {
		p.mu.Unlock()
		return
	}
	p.bounds = r
	w := p.window
	p.mu.Unlock()
	w.RequestRender()
}

// Dismiss removes the popup from its window. It returns ErrNotAttached when
// the popup is not showing or the window no longer holds it.
func (p *Popup) Dismiss() error {
	p.mu.Lock()
	if !p.showing {
		p.mu.Unlock()
		return ErrNotAttached
	}
	w := p.window
	p.showing = false
	p.window = nil
	p.mu.Unlock()

	return w.RemovePopup(p)
}

// IsShowing reports whether the popup believes it is shown.
func (p *Popup) IsShowing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.showing
}

// Bounds returns the popup's rectangle; full-screen popups report the
// window's visible frame.
func (p *Popup) Bounds() Rect {
	p.mu.Lock()
	fullscreen, r, w := p.fullscreen, p.bounds, p.window
	p.mu.Unlock()
	if fullscreen && w != nil {
		return w.VisibleFrame()
	}
	return r
}

// IsFullscreen reports whether the popup covers the visible frame.
func (p *Popup) IsFullscreen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fullscreen
}

// SetBackground sets the fill painted behind the content.
func (p *Popup) SetBackground(c theme.Color) {
	p.mu.Lock()
	p.background = c
	p.mu.Unlock()
}

// Background returns the popup fill.
func (p *Popup) Background() theme.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.background
}

// SetAnimation records the entry/exit animation id. Hosts may ignore it.
func (p *Popup) SetAnimation(id string) {
	p.mu.Lock()
	p.animation = id
	p.mu.Unlock()
}

// Animation returns the animation id.
func (p *Popup) Animation() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.animation
}

// SetFocusable makes the popup capture keys and swallow outside presses.
func (p *Popup) SetFocusable(focusable bool) {
	p.mu.Lock()
	p.focusable = focusable
	p.mu.Unlock()
}

// IsFocusable reports the focusable flag.
func (p *Popup) IsFocusable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focusable
}

// SetTouchable controls whether the popup reacts to the mouse at all.
func (p *Popup) SetTouchable(touchable bool) {
	p.mu.Lock()
	p.touchable = touchable
	p.mu.Unlock()
}

// IsTouchable reports the touchable flag.
func (p *Popup) IsTouchable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.touchable
}

// SetDismissRequestHandler registers the callback for window dismiss requests.
func (p *Popup) SetDismissRequestHandler(fn func(DismissRequest)) {
	p.mu.Lock()
	p.onRequest = fn
	p.mu.Unlock()
}

// RequestDismiss forwards r to the dismiss-request handler, if any.
func (p *Popup) RequestDismiss(r DismissRequest) {
	p.mu.Lock()
	fn := p.onRequest
	p.mu.Unlock()
	if fn != nil {
		fn(r)
	}
}

// Click delivers a press at popup-relative (x, y) to Clickable content.
// Unhandled presses become RequestTouch.
func (p *Popup) Click(x, y int) {
	if c, ok := p.content.(Clickable); ok && c.Click(x, y) {
		return
	}
	p.RequestDismiss(RequestTouch)
}

// renderLines draws the content into exactly r.Height lines of r.Width
// columns with the background applied.
func (p *Popup) renderLines(r Rect) []string {
	bg := p.Background()
	lines := RenderLines(p.content, r.Width)
	out := make([]string, r.Height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if width.VisibleWidth(line) > r.Width {
			line = width.SliceByColumn(line, 0, r.Width)
		}
		line = width.PadRight(line, r.Width)
		if !bg.IsTransparent() {
			line = bg.Code() + strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bg.Code()) + "\x1b[0m"
		}
		out[i] = line
	}
	return out
}
