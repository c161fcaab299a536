// ABOUTME: Tests for building marks from tour steps, the tour runner, and demo key bindings
// ABOUTME: Runs on the real tui engine with a manual clock and RunPending

package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/internal/keybindings"
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/key"
)

type testScreen struct {
	*demoScreen
	quits int
}

func newTestScreen(t *testing.T) *testScreen {
	t.Helper()

	ui := tui.New(&bytes.Buffer{}, 100, 24, tui.WithClock(tui.NewManualClock(time.Unix(0, 0))))
	ts := &testScreen{}
	ts.demoScreen = newDemoScreen(ui, nil, nil, func() { ts.quits++ })
	ui.RenderOnce()

	want := tui.Rect{X: 11, Y: 1, Width: 8, Height: 1}
	if got := ts.anchors["save"].Bounds(); got != want {
		t.Fatalf("save bounds = %+v, want %+v", got, want)
	}
	return ts
}

func (s *testScreen) press(r rune) {
	s.handleKey(key.Key{Type: key.KeyRune, Rune: r})
}

func TestVariantFor(t *testing.T) {
	t.Parallel()

	anchors := map[string]*tui.Anchor{"save": tui.NewAnchor("save", nil)}
	tests := []struct {
		variant string
		want    string
	}{
		{"", "bubble"},
		{config.VariantBubble, "bubble"},
		{config.VariantPunchHole, "punch_hole"},
		{config.VariantLayered, "layered"},
		{config.VariantHighlight, "highlight"},
		{config.VariantPunchedBubble, "punched_bubble"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			v, err := variantFor(config.Step{Anchor: "save", Variant: tt.variant}, anchors)
			if err != nil {
				t.Fatalf("variantFor: %v", err)
			}
			if v.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", v.Name(), tt.want)
			}
		})
	}
}

func TestBuildMark_Errors(t *testing.T) {
	t.Parallel()

	anchors := map[string]*tui.Anchor{"save": tui.NewAnchor("save", nil)}
	tests := []struct {
		name string
		step config.Step
	}{
		{"unknown anchor", config.Step{Anchor: "sav", Text: "x"}},
		{"unknown target anchor", config.Step{Anchor: "save", Variant: config.VariantPunchHole, TargetAnchor: "nope", Text: "x"}},
		{"unknown variant", config.Step{Anchor: "save", Variant: "tooltip", Text: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := buildMark(tt.step, anchors); !errors.Is(err, config.ErrInvalidStep) {
				t.Errorf("buildMark() = %v, want ErrInvalidStep", err)
			}
		})
	}
}

func TestBuildMark_StepSettings(t *testing.T) {
	t.Parallel()

	anchors := map[string]*tui.Anchor{"save": tui.NewAnchor("save", nil)}
	cm, err := buildMark(config.Step{
		Anchor:    "save",
		Markdown:  "**bold**",
		TimeoutMs: intPtr(1500),
		Focusable: true,
	}, anchors)
	if err != nil {
		t.Fatalf("buildMark: %v", err)
	}

	if got := cm.Config().Timeout(); got != 1500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 1.5s", got)
	}
	if !cm.IsFocusable() {
		t.Error("IsFocusable() = false, want true")
	}
	if cm.Config().Content().IsTextual() {
		t.Error("markdown step built textual content")
	}
}

func TestDemoScreen_KeyBindings(t *testing.T) {
	t.Parallel()

	s := newTestScreen(t)

	s.press('1')
	if n := len(s.ui.Popups()); n != 1 {
		t.Fatalf("popups after '1' = %d, want 1", n)
	}
	if s.status != "bubble on save" {
		t.Errorf("status = %q, want %q", s.status, "bubble on save")
	}
	first := s.showing()

	s.press('2')
	if n := len(s.ui.Popups()); n != 1 {
		t.Errorf("popups after '2' = %d, want 1", n)
	}
	if first.IsShowing() {
		t.Error("first mark still showing after '2'")
	}

	s.press('d')
	if n := len(s.ui.Popups()); n != 0 {
		t.Errorf("popups after 'd' = %d, want 0", n)
	}

	s.press('x')
	s.press('q')
	if s.quits != 1 {
		t.Errorf("quits = %d, want 1", s.quits)
	}
}

func TestDemoScreen_CustomBindings(t *testing.T) {
	t.Parallel()

	keys, err := keybindings.New(map[string][]string{"quit": {"x"}, "show_layered": {"l"}})
	if err != nil {
		t.Fatalf("keybindings.New: %v", err)
	}
	ui := tui.New(&bytes.Buffer{}, 100, 24, tui.WithClock(tui.NewManualClock(time.Unix(0, 0))))
	quits := 0
	s := newDemoScreen(ui, nil, keys, func() { quits++ })
	ui.RenderOnce()

	s.handleKey(key.Key{Type: key.KeyRune, Rune: 'l'})
	if s.status != "layered on publish" {
		t.Errorf("status = %q, want %q", s.status, "layered on publish")
	}
	s.handleKey(key.Key{Type: key.KeyRune, Rune: 'q'})
	if quits != 0 {
		t.Errorf("quits after q = %d, want 0", quits)
	}
	s.handleKey(key.Key{Type: key.KeyCtrlC, Ctrl: true})
	s.handleKey(key.Key{Type: key.KeyRune, Rune: 'x'})
	if quits != 2 {
		t.Errorf("quits = %d, want 2", quits)
	}
}

func TestDemoScreen_EveryStepShows(t *testing.T) {
	t.Parallel()

	for i, step := range demoTour.Steps {
		s := newTestScreen(t)
		s.press(rune('1' + i))
		if s.showing() == nil {
			t.Errorf("step %d (%s on %s) not showing: %s", i+1, step.Variant, step.Anchor, s.status)
		}
	}
}

func TestDemoScreen_Tour(t *testing.T) {
	t.Parallel()

	s := newTestScreen(t)
	s.press('t')

	for i := range demoTour.Steps {
		if got := s.tour.step(); got != i+1 {
			t.Fatalf("tour step = %d, want %d", got, i+1)
		}
		if n := len(s.ui.Popups()); n != 1 {
			t.Fatalf("step %d: popups = %d, want 1", i+1, n)
		}
		s.showing().Dismiss()
		s.ui.RunPending()
	}

	if n := len(s.ui.Popups()); n != 0 {
		t.Errorf("popups after tour = %d, want 0", n)
	}
	if s.status != "tour demo finished" {
		t.Errorf("status = %q, want tour finished", s.status)
	}
}

func TestTourRunner_SkipsBadSteps(t *testing.T) {
	t.Parallel()

	s := newTestScreen(t)
	tour := &config.Tour{Name: "t", Steps: []config.Step{
		{Anchor: "missing", Text: "skipped"},
		{Anchor: "save", Text: "shown"},
	}}
	r := newTourRunner(tour, s.anchors, nil, s.ui.Post)
	r.start()

	if r.step() != 2 {
		t.Errorf("step() = %d, want 2", r.step())
	}
}

func TestTourRunner_StopDropsPendingAdvance(t *testing.T) {
	t.Parallel()

	s := newTestScreen(t)
	done := false
	r := newTourRunner(&demoTour, s.anchors, nil, s.ui.Post)
	r.onDone = func() { done = true }
	r.start()

	r.stop()
	s.ui.RunPending()

	if n := len(s.ui.Popups()); n != 0 {
		t.Errorf("popups after stop = %d, want 0", n)
	}
	if r.step() != 0 {
		t.Errorf("step() = %d after stop, want 0", r.step())
	}
	if done {
		t.Error("onDone ran after stop")
	}
}
