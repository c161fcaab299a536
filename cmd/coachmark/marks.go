// ABOUTME: Builds coach marks from tour steps and runs tours step by step
// ABOUTME: marks is the demo state shared by the fullscreen and Bubble Tea hosts

package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/internal/keybindings"
	"github.com/mauromedda/coachmark-go/internal/log"
	"github.com/mauromedda/coachmark-go/pkg/coachmark"
	"github.com/mauromedda/coachmark-go/pkg/tui"
)

// buildMark turns step into a coach mark on one of anchors. Per-step
// settings are appended after opts so they win.
func buildMark(step config.Step, anchors map[string]*tui.Anchor, opts ...coachmark.Option) (*coachmark.CoachMark, error) {
	anchor, ok := anchors[step.Anchor]
	if !ok {
		return nil, fmt.Errorf("%w: unknown anchor %q", config.ErrInvalidStep, step.Anchor)
	}

	content := coachmark.Text(step.Text)
	if step.Markdown != "" {
		content = coachmark.Markdown(step.Markdown)
	}

	if step.TimeoutMs != nil {
		opts = slices.Concat(opts, []coachmark.Option{
			coachmark.WithTimeout(time.Duration(*step.TimeoutMs) * time.Millisecond),
		})
	}

	cfg, err := coachmark.NewConfig(anchor, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("step on %s: %w", step.Anchor, err)
	}
	v, err := variantFor(step, anchors)
	if err != nil {
		return nil, err
	}

	cm := coachmark.New(cfg, v)
	if step.Focusable {
		cm.SetFocusable(true)
	}
	return cm, nil
}

func variantFor(step config.Step, anchors map[string]*tui.Anchor) (coachmark.Variant, error) {
	target := 0.5
	if step.Target != nil {
		target = *step.Target
	}

	switch step.Variant {
	case config.VariantBubble, "":
		return coachmark.NewBubble().WithTarget(target).WithShowBelow(step.ShowBelow), nil
	case config.VariantPunchHole:
		p := coachmark.NewPunchHole()
		if step.TargetAnchor != "" {
			a, ok := anchors[step.TargetAnchor]
			if !ok {
				return nil, fmt.Errorf("%w: unknown anchor %q", config.ErrInvalidStep, step.TargetAnchor)
			}
			p.WithTarget(a)
		}
		return p, nil
	case config.VariantLayered:
		return coachmark.NewLayered().WithTarget(target), nil
	case config.VariantHighlight:
		return coachmark.NewHighlight(), nil
	case config.VariantPunchedBubble:
		return coachmark.NewPunchedBubble().WithTarget(target).WithShowBelow(step.ShowBelow), nil
	}
	return nil, fmt.Errorf("%w: unknown variant %q", config.ErrInvalidStep, step.Variant)
}

// tourRunner shows the steps of a tour one after another. The next step
// starts when the current mark is dismissed, whatever the reason.
type tourRunner struct {
	tour    *config.Tour
	anchors map[string]*tui.Anchor
	opts    []coachmark.Option
	post    func(func())
	onDone  func()

	gen     int
	next    int
	stopped bool
	current *coachmark.CoachMark
}

func newTourRunner(t *config.Tour, anchors map[string]*tui.Anchor, opts []coachmark.Option, post func(func())) *tourRunner {
	return &tourRunner{tour: t, anchors: anchors, opts: opts, post: post}
}

func (r *tourRunner) start() {
	r.gen++
	r.next = 0
	r.stopped = false
	r.advance()
}

// advance shows the next step that can be shown. Steps that fail to build
// or show are logged and skipped.
func (r *tourRunner) advance() {
	r.current = nil
	for !r.stopped && r.next < len(r.tour.Steps) {
		step := r.tour.Steps[r.next]
		r.next++

		gen := r.gen
		next := coachmark.OnDismiss(func() {
			r.post(func() {
				if r.gen == gen {
					r.advance()
				}
			})
		})
		cm, err := buildMark(step, r.anchors, slices.Concat(r.opts, []coachmark.Option{next})...)
		if err != nil {
			log.Warn("tour %s: step %d: %v", r.tour.Name, r.next, err)
			continue
		}
		if err := cm.Show(); err != nil {
			log.Warn("tour %s: step %d: %v", r.tour.Name, r.next, err)
			continue
		}
		r.current = cm
		log.Info("tour %s: step %d/%d (%s on %s)", r.tour.Name, r.next, len(r.tour.Steps), step.Variant, step.Anchor)
		return
	}
	if !r.stopped {
		r.stopped = true
		log.Info("tour %s: finished", r.tour.Name)
		if r.onDone != nil {
			r.onDone()
		}
	}
}

// stop dismisses the current mark without starting the next one.
func (r *tourRunner) stop() {
	r.stopped = true
	r.gen++
	if r.current != nil {
		r.current.Dismiss()
		r.current = nil
	}
}

// step returns the 1-based index of the showing step, or 0.
func (r *tourRunner) step() int {
	if r.current == nil {
		return 0
	}
	return r.next
}

// marks is the demo state: the anchors marks point at, the options every
// mark gets, and whatever is showing. Methods run on the host's event
// goroutine.
type marks struct {
	anchors map[string]*tui.Anchor
	opts    []coachmark.Option
	keys    *keybindings.Manager
	post    func(func())
	status  string

	current *coachmark.CoachMark
	tour    *tourRunner
}

// newMarks uses the default key bindings when keys is nil.
func newMarks(opts []coachmark.Option, keys *keybindings.Manager, post func(func())) *marks {
	if keys == nil {
		keys, _ = keybindings.New(nil)
	}
	return &marks{
		anchors: make(map[string]*tui.Anchor),
		opts:    opts,
		keys:    keys,
		post:    post,
	}
}

// anchorNames returns the anchor ids in a stable order.
func (m *marks) anchorNames() []string {
	names := make([]string, 0, len(m.anchors))
	for id := range m.anchors {
		names = append(names, id)
	}
	slices.Sort(names)
	return names
}

// show replaces whatever is showing with a single mark for step.
func (m *marks) show(step config.Step) {
	m.stop()
	cm, err := buildMark(step, m.anchors, m.opts...)
	if err == nil {
		err = cm.Show()
	}
	if err != nil {
		log.Warn("demo: %v", err)
		m.status = err.Error()
		return
	}
	m.current = cm
	m.status = fmt.Sprintf("%s on %s", step.Variant, step.Anchor)
}

// runTour replaces whatever is showing with t, from its first step.
func (m *marks) runTour(t *config.Tour) {
	m.stop()
	m.tour = newTourRunner(t, m.anchors, m.opts, m.post)
	m.tour.onDone = func() { m.status = fmt.Sprintf("tour %s finished", t.Name) }
	m.status = fmt.Sprintf("tour %s", t.Name)
	m.tour.start()
}

func (m *marks) stop() {
	if m.tour != nil {
		m.tour.stop()
		m.tour = nil
	}
	if m.current != nil {
		m.current.Dismiss()
		m.current = nil
	}
}

// showing returns the mark on screen, if any.
func (m *marks) showing() *coachmark.CoachMark {
	if m.tour != nil && m.tour.current != nil {
		return m.tour.current
	}
	if m.current != nil && m.current.IsShowing() {
		return m.current
	}
	return nil
}

// showActions maps the show actions onto demoTour's steps, in order.
var showActions = []keybindings.Action{
	keybindings.ActionShowBubble,
	keybindings.ActionShowPunchHole,
	keybindings.ActionShowLayered,
	keybindings.ActionShowHighlight,
	keybindings.ActionShowPunchedBubble,
}

// handleAction applies a demo action and reports whether it asks to quit.
func (m *marks) handleAction(a keybindings.Action) (quit bool) {
	switch a {
	case keybindings.ActionQuit:
		m.stop()
		return true
	case keybindings.ActionRunTour:
		m.runTour(&demoTour)
	case keybindings.ActionDismiss:
		m.stop()
		m.status = ""
	default:
		if i := slices.Index(showActions, a); i >= 0 && i < len(demoTour.Steps) {
			m.show(demoTour.Steps[i])
		}
	}
	return false
}
