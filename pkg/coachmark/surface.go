// ABOUTME: Collaborator contracts: the Anchor a coach mark follows and the Surface it paints on
// ABOUTME: *tui.Anchor and *tui.Popup satisfy them; tests substitute fakes

package coachmark

import (
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

// Anchor is the live region a coach mark is positioned against. The coach
// mark observes it and never controls its lifetime.
type Anchor interface {
	// Bounds is the anchor's on-screen rectangle from the latest layout.
	Bounds() tui.Rect
	IsAttached() bool
	// IsShown reports attached, visible, and laid out on screen.
	IsShown() bool
	// Window is the window the anchor is attached to, or nil.
	Window() tui.Window
	OnPreLayout(fn func()) (unsubscribe func())
	OnAttachStateChange(fn func(attached bool)) (unsubscribe func())
	// DrawingCache is the anchor's most recently rendered lines.
	DrawingCache() []string
	DestroyDrawingCache()
}

// Surface paints a coach mark above its window.
type Surface interface {
	ShowAt(w tui.Window, x, y, width, height int) error
	ShowFullscreen(w tui.Window) error
	Update(x, y, width, height int)
	// Dismiss removes the surface; tui.ErrNotAttached means it was already gone.
	Dismiss() error
	IsShowing() bool
	SetBackground(c theme.Color)
	SetAnimation(id string)
	SetFocusable(focusable bool)
	IsFocusable() bool
	SetTouchable(touchable bool)
	SetDismissRequestHandler(fn func(tui.DismissRequest))
	ContentView() tui.Component
}

// SurfaceFactory creates the surface around a coach mark's view.
type SurfaceFactory func(view tui.Component) Surface

// NewPopupSurface is the default SurfaceFactory.
func NewPopupSurface(view tui.Component) Surface {
	return tui.NewPopup(view)
}

var (
	_ Anchor  = (*tui.Anchor)(nil)
	_ Surface = (*tui.Popup)(nil)
)
