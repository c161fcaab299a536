// ABOUTME: Input dispatch for the TUI engine: popups see keys and presses before the content
// ABOUTME: Focusable popups capture input; Escape dismisses the topmost popup, outside presses only touchable ones

package tui

import "github.com/mauromedda/coachmark-go/pkg/tui/key"

// OnKey sets the handler for input no popup consumed.
func (t *TUI) OnKey(fn func(key.Key)) {
	t.mu.Lock()
	t.onKey = fn
	t.mu.Unlock()
}

// HandleKey routes one input event and reports whether a popup consumed it.
// Call it on the event goroutine (for example via Post).
func (t *TUI) HandleKey(k key.Key) bool {
	var consumed bool
	if k.Type == key.KeyMouse {
		consumed = t.dispatchMouse(k.Mouse)
	} else {
		consumed = t.dispatchKey(k)
	}
	if consumed {
		return true
	}

	t.mu.Lock()
	fn := t.onKey
	t.mu.Unlock()
	if fn != nil {
		fn(k)
	}
	return false
}

func (t *TUI) dispatchKey(k key.Key) bool {
	return DispatchKey(t.Popups(), k)
}

func (t *TUI) dispatchMouse(m key.Mouse) bool {
	return DispatchMouse(t.Popups(), m)
}

// DispatchKey applies popup key semantics to popups (bottom first) and
// reports whether the key was consumed. The topmost focusable popup
// captures every key, turning Escape into RequestBack. Without one,
// Escape asks the topmost popup to go away, touchable or not.
func DispatchKey(popups []*Popup, k key.Key) bool {
	for i := len(popups) - 1; i >= 0; i-- {
		p := popups[i]
		if !p.IsFocusable() {
			continue
		}
		if k.IsCancel() {
			p.RequestDismiss(RequestBack)
			return true
		}
		if h, ok := p.ContentView().(KeyHandler); ok {
			h.HandleKey(k)
		}
		return true
	}

	if !k.IsCancel() || len(popups) == 0 {
		return false
	}
	popups[len(popups)-1].RequestDismiss(RequestBack)
	return true
}

// DispatchMouse applies popup press semantics, topmost first. A press inside
// a touchable popup is delivered to it and stops. A press outside a
// focusable popup is swallowed; outside a touchable one it requests
// dismissal and keeps travelling. Non-touchable popups are skipped.
func DispatchMouse(popups []*Popup, m key.Mouse) bool {
	if !m.IsPress() {
		return false
	}
	for i := len(popups) - 1; i >= 0; i-- {
		p := popups[i]
		if !p.IsTouchable() {
			continue
		}
		r := p.Bounds()
		if r.Contains(m.X, m.Y) {
			p.Click(m.X-r.X, m.Y-r.Y)
			return true
		}
		if p.IsFocusable() {
			return true
		}
		p.RequestDismiss(RequestOutsideTouch)
	}
	return false
}
