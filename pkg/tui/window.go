// ABOUTME: Window is the host surface coach marks attach to: frame, regions, popups, scheduling
// ABOUTME: Implemented by the TUI engine and by the Bubble Tea host in pkg/teahost

package tui

import (
	"errors"
	"time"
)

var (
	// ErrNotAttached is returned when removing a popup the window does not hold.
	ErrNotAttached = errors.New("popup not attached to window")

	// ErrAlreadyShowing is returned when showing a popup that is already shown.
	ErrAlreadyShowing = errors.New("popup already showing")

	// ErrNilWindow is returned when showing a popup without a window.
	ErrNilWindow = errors.New("nil window")
)

// Window hosts anchors and popups. All callbacks it invokes (pre-layout
// observers, delayed tasks, dismiss requests) run on its event goroutine.
type Window interface {
	// VisibleFrame is the area popups may occupy: the screen minus reserved rows.
	VisibleFrame() Rect

	// RegionBounds returns the on-screen bounds of the marked region id as
	// measured by the most recent layout.
	RegionBounds(id string) (Rect, bool)

	// OnPreLayout registers fn to run after every layout and before popups
	// are composited.
	OnPreLayout(fn func()) (unsubscribe func())

	AddPopup(p *Popup) error
	RemovePopup(p *Popup) error

	// PostDelayed runs fn on the event goroutine after d. cancel prevents a
	// pending run and is safe to call more than once.
	PostDelayed(d time.Duration, fn func()) (cancel func())

	RequestRender()
}
