// ABOUTME: Test doubles for the coach-mark engine: anchor, window, surface, and metrics recorder
// ABOUTME: Delayed tasks run only when the test fires them, so lifecycles are deterministic

package coachmark

import (
	"sync"
	"time"

	"github.com/mauromedda/coachmark-go/internal/eventbus"
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

type fakeAnchor struct {
	window    tui.Window
	bounds    tui.Rect
	hidden    bool
	cache     []string
	destroyed int

	preLayout *eventbus.Bus[struct{}]
	attach    *eventbus.Bus[bool]
}

func newFakeAnchor(w tui.Window) *fakeAnchor {
	return &fakeAnchor{
		window:    w,
		bounds:    tui.Rect{X: 10, Y: 10, Width: 20, Height: 2},
		preLayout: eventbus.New[struct{}](),
		attach:    eventbus.New[bool](),
	}
}

func (a *fakeAnchor) Bounds() tui.Rect       { return a.bounds }
func (a *fakeAnchor) IsAttached() bool       { return a.window != nil }
func (a *fakeAnchor) IsShown() bool          { return a.window != nil && !a.hidden }
func (a *fakeAnchor) Window() tui.Window     { return a.window }
func (a *fakeAnchor) DrawingCache() []string { return a.cache }
func (a *fakeAnchor) DestroyDrawingCache() {
	a.cache = nil
	a.destroyed++
}

func (a *fakeAnchor) OnPreLayout(fn func()) func() {
	return a.preLayout.Subscribe(func(struct{}) { fn() })
}

func (a *fakeAnchor) OnAttachStateChange(fn func(bool)) func() {
	return a.attach.Subscribe(fn)
}

// layout runs one pre-layout pass.
func (a *fakeAnchor) layout() {
	a.preLayout.Publish(struct{}{})
}

// detach drops the window and tells observers.
func (a *fakeAnchor) detach() {
	a.window = nil
	a.attach.Publish(false)
}

type delayedTask struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

type fakeWindow struct {
	frame   tui.Rect
	tasks   []*delayedTask
	renders int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{frame: tui.Rect{Width: 80, Height: 24}}
}

func (w *fakeWindow) VisibleFrame() tui.Rect               { return w.frame }
func (w *fakeWindow) RegionBounds(string) (tui.Rect, bool) { return tui.Rect{}, false }
func (w *fakeWindow) OnPreLayout(func()) func()            { return func() {} }
func (w *fakeWindow) AddPopup(*tui.Popup) error            { return nil }
func (w *fakeWindow) RemovePopup(*tui.Popup) error         { return nil }
func (w *fakeWindow) RequestRender()                       { w.renders++ }

func (w *fakeWindow) PostDelayed(d time.Duration, fn func()) func() {
	t := &delayedTask{d: d, fn: fn}
	w.tasks = append(w.tasks, t)
	return func() { t.cancelled = true }
}

// pending counts scheduled tasks that were not cancelled.
func (w *fakeWindow) pending() int {
	n := 0
	for _, t := range w.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// fire runs every task that was not cancelled, as if its delay elapsed.
func (w *fakeWindow) fire() {
	tasks := w.tasks
	w.tasks = nil
	for _, t := range tasks {
		if !t.cancelled {
			t.fn()
		}
	}
}

type fakeSurface struct {
	view       tui.Component
	showing    bool
	fullscreen bool
	bounds     tui.Rect
	updates    int
	dismisses  int
	showErr    error
	dismissErr error
	background theme.Color
	animation  string
	focusable  bool
	touchable  bool
	onRequest  func(tui.DismissRequest)
}

func (s *fakeSurface) ShowAt(_ tui.Window, x, y, w, h int) error {
	if s.showErr != nil {
		return s.showErr
	}
	s.showing = true
	s.bounds = tui.Rect{X: x, Y: y, Width: w, Height: h}
	return nil
}

func (s *fakeSurface) ShowFullscreen(w tui.Window) error {
	if s.showErr != nil {
		return s.showErr
	}
	s.showing = true
	s.fullscreen = true
	s.bounds = w.VisibleFrame()
	return nil
}

func (s *fakeSurface) Update(x, y, w, h int) {
	s.updates++
	s.bounds = tui.Rect{X: x, Y: y, Width: w, Height: h}
}

func (s *fakeSurface) Dismiss() error {
	s.dismisses++
	s.showing = false
	return s.dismissErr
}

func (s *fakeSurface) IsShowing() bool                                      { return s.showing }
func (s *fakeSurface) SetBackground(c theme.Color)                          { s.background = c }
func (s *fakeSurface) SetAnimation(id string)                               { s.animation = id }
func (s *fakeSurface) SetFocusable(f bool)                                  { s.focusable = f }
func (s *fakeSurface) IsFocusable() bool                                    { return s.focusable }
func (s *fakeSurface) SetTouchable(t bool)                                  { s.touchable = t }
func (s *fakeSurface) SetDismissRequestHandler(fn func(tui.DismissRequest)) { s.onRequest = fn }
func (s *fakeSurface) ContentView() tui.Component                           { return s.view }

// surfaceFactory returns a factory that hands out s and records the view.
func surfaceFactory(s *fakeSurface) SurfaceFactory {
	return func(view tui.Component) Surface {
		s.view = view
		s.touchable = true
		return s
	}
}

type countingRecorder struct {
	mu        sync.Mutex
	shown     int
	dismissed map[string]int
	timeouts  int
	races     int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{dismissed: make(map[string]int)}
}

func (r *countingRecorder) ObserveShown(string) {
	r.mu.Lock()
	r.shown++
	r.mu.Unlock()
}

func (r *countingRecorder) ObserveDismissed(_, reason string, _ time.Duration) {
	r.mu.Lock()
	r.dismissed[reason]++
	r.mu.Unlock()
}

func (r *countingRecorder) IncTimeout(string) {
	r.mu.Lock()
	r.timeouts++
	r.mu.Unlock()
}

func (r *countingRecorder) IncSurfaceRace(string) {
	r.mu.Lock()
	r.races++
	r.mu.Unlock()
}
