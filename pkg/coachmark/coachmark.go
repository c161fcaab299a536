// ABOUTME: Coach-mark lifecycle engine: show, track the anchor every layout, dismiss once
// ABOUTME: Timeout, anchor detach, hidden anchor, and surface requests all funnel into dismiss

package coachmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mauromedda/coachmark-go/internal/log"
	"github.com/mauromedda/coachmark-go/pkg/tui"
)

// State is a coach mark's lifecycle position. States only move forward.
type State int

const (
	StateConstructed State = iota
	StateShowing
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateShowing:
		return "showing"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Reason records what dismissed a coach mark.
type Reason string

const (
	ReasonExplicit       Reason = "explicit"
	ReasonTimeout        Reason = "timeout"
	ReasonAnchorDetached Reason = "anchor_detached"
	ReasonAnchorHidden   Reason = "anchor_hidden"
	ReasonOutsideTouch   Reason = "outside_touch"
	ReasonTouch          Reason = "touch"
	ReasonBack           Reason = "back"
)

// reasonFor maps a window dismiss request to a Reason.
func reasonFor(r tui.DismissRequest) Reason {
	switch r {
	case tui.RequestOutsideTouch:
		return ReasonOutsideTouch
	case tui.RequestBack:
		return ReasonBack
	default:
		return ReasonTouch
	}
}

// CoachMark is one anchored overlay. It is shown at most once; showing
// again needs a new CoachMark.
//
// A CoachMark is not safe for concurrent use. Call Show, Dismiss, and the
// other methods on the window's event goroutine, where the pre-layout,
// attach, and timeout callbacks also run.
type CoachMark struct {
	id      string
	cfg     Config
	variant Variant
	view    tui.Component
	surface Surface

	state   State
	reason  Reason
	layout  Layout
	shownAt time.Time

	cancelTimeout  func()
	unsubPreLayout func()
	unsubAttach    func()
}

// New builds the content view and the surface. Nothing is shown until Show.
func New(cfg Config, v Variant) *CoachMark {
	cm := &CoachMark{
		id:      uuid.NewString(),
		cfg:     cfg,
		variant: v,
	}

	cm.view = v.BuildContent(cfg.Content(), cfg)
	cm.surface = v.CreateSurface(cm.view, cfg)
	cm.surface.SetBackground(cfg.Background())
	cm.surface.SetAnimation(cfg.Animation())
	if cfg.FitsScreen() {
		cm.surface.SetFocusable(true)
	}
	cm.surface.SetDismissRequestHandler(func(r tui.DismissRequest) {
		cm.dismiss(reasonFor(r))
	})
	return cm
}

// Show captures the visible frame, places the overlay, arms the timeout,
// and starts following the anchor.
func (cm *CoachMark) Show() error {
	switch cm.state {
	case StateShowing:
		return ErrAlreadyShown
	case StateDismissed:
		return ErrDismissed
	}

	w := cm.cfg.window()
	if w == nil {
		return ErrNoWindow
	}

	// The frame is assumed stable while the mark is visible.
	cm.layout = Layout{
		Frame:   w.VisibleFrame(),
		Padding: cm.cfg.Padding(),
		RTL:     cm.cfg.IsRightToLeft(),
	}
	anchor := cm.variant.AnchorDimens(cm.cfg.Anchor())
	overlay := cm.variant.OverlayDimens(anchor, cm.layout)
	cm.variant.UpdateView(overlay, anchor, cm.layout)

	if t := cm.cfg.Timeout(); t > 0 {
		cm.cancelTimeout = w.PostDelayed(t, cm.onTimeout)
	}

	var err error
	if cm.cfg.FitsScreen() {
		err = cm.surface.ShowFullscreen(w)
	} else {
		err = cm.surface.ShowAt(w, overlay.X, overlay.Y, overlay.Width, overlay.Height)
	}
	if err != nil {
		cm.stopTimeout()
		return fmt.Errorf("coachmark: show %s: %w", cm.variant.Name(), err)
	}

	a := cm.cfg.Anchor()
	cm.unsubPreLayout = a.OnPreLayout(cm.onPreLayout)
	cm.unsubAttach = a.OnAttachStateChange(cm.onAttachStateChange)
	cm.state = StateShowing
	cm.shownAt = time.Now()

	cm.cfg.recorder.ObserveShown(cm.variant.Name())
	log.Debug("coachmark %s: shown %s at %v for anchor %v", cm.id, cm.variant.Name(), overlay, anchor)

	if cm.cfg.onShow != nil {
		cm.cfg.onShow()
	}
	return nil
}

// Dismiss closes the overlay. It is a no-op unless the mark is showing.
func (cm *CoachMark) Dismiss() {
	cm.dismiss(ReasonExplicit)
}

func (cm *CoachMark) dismiss(reason Reason) {
	if cm.state != StateShowing {
		return
	}
	// Set first so triggers fired during teardown see a dismissed mark.
	cm.state = StateDismissed
	cm.reason = reason

	if cm.unsubAttach != nil {
		cm.unsubAttach()
		cm.unsubAttach = nil
	}
	if cm.unsubPreLayout != nil {
		cm.unsubPreLayout()
		cm.unsubPreLayout = nil
	}
	cm.stopTimeout()
	cm.cfg.Anchor().DestroyDrawingCache()

	if err := cm.surface.Dismiss(); err != nil {
		// The window dropped the surface first; nothing left to close.
		if errors.Is(err, tui.ErrNotAttached) {
			cm.cfg.recorder.IncSurfaceRace(cm.variant.Name())
		}
		log.Debug("coachmark %s: surface already gone: %v", cm.id, err)
	}

	cm.cfg.recorder.ObserveDismissed(cm.variant.Name(), string(reason), time.Since(cm.shownAt))
	log.Debug("coachmark %s: dismissed (%s)", cm.id, reason)

	if cm.cfg.onDismiss != nil {
		cm.cfg.onDismiss()
	}
}

func (cm *CoachMark) stopTimeout() {
	if cm.cancelTimeout != nil {
		cm.cancelTimeout()
		cm.cancelTimeout = nil
	}
}

// onPreLayout re-places the overlay, or dismisses when the anchor left the screen.
func (cm *CoachMark) onPreLayout() {
	if cm.state != StateShowing {
		return
	}
	a := cm.cfg.Anchor()
	if !a.IsAttached() || !a.IsShown() {
		cm.dismiss(ReasonAnchorHidden)
		return
	}

	anchor := cm.variant.AnchorDimens(a)
	overlay := cm.variant.OverlayDimens(anchor, cm.layout)
	cm.variant.UpdateView(overlay, anchor, cm.layout)
	if !cm.cfg.FitsScreen() {
		cm.surface.Update(overlay.X, overlay.Y, overlay.Width, overlay.Height)
	}
}

func (cm *CoachMark) onAttachStateChange(attached bool) {
	if attached || !cm.cfg.DismissOnAnchorDetach() {
		return
	}
	cm.dismiss(ReasonAnchorDetached)
}

func (cm *CoachMark) onTimeout() {
	cm.cancelTimeout = nil
	if cm.state != StateShowing || !cm.surface.IsShowing() {
		return
	}
	cm.cfg.recorder.IncTimeout(cm.variant.Name())
	if cm.cfg.onTimeout != nil {
		cm.cfg.onTimeout()
	}
	cm.dismiss(ReasonTimeout)
}

// SetFocusable forwards to the surface. A focusable mark captures keys,
// dismisses on Escape, and makes the rest of the window non-interactive.
func (cm *CoachMark) SetFocusable(focusable bool) {
	cm.surface.SetFocusable(focusable)
}

// IsFocusable reports the surface's focusable flag.
func (cm *CoachMark) IsFocusable() bool {
	return cm.surface.IsFocusable()
}

// IsShowing reports whether the surface is visible.
func (cm *CoachMark) IsShowing() bool {
	return cm.surface.IsShowing()
}

// ContentView returns the view the variant built.
func (cm *CoachMark) ContentView() tui.Component {
	return cm.view
}

// State returns the lifecycle state.
func (cm *CoachMark) State() State { return cm.state }

// Reason returns what dismissed the mark, or "" while it has not been.
func (cm *CoachMark) Reason() Reason { return cm.reason }

// ID is a unique id used in logs.
func (cm *CoachMark) ID() string { return cm.id }

// Config returns the configuration the mark was built from.
func (cm *CoachMark) Config() Config { return cm.cfg }
