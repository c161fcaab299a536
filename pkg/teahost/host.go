// ABOUTME: Host runs coach marks inside a Bubble Tea program by implementing tui.Window
// ABOUTME: Lays out marked regions from the wrapped model's view and composites popups over it

package teahost

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/coachmark-go/internal/eventbus"
	"github.com/mauromedda/coachmark-go/pkg/tui"
)

// taskMsg fires a delayed task on the program's goroutine.
type taskMsg struct{ id uint64 }

// renderMsg asks Bubble Tea for another View pass.
type renderMsg struct{}

// Host wraps a tea.Model. Its View runs the inner view through region
// layout, pre-layout observers, and popup compositing; its Update routes
// keys and mouse presses to popups before the inner model sees them.
//
// Host is a pointer model: pass it to tea.NewProgram and keep using the
// same value as the coach marks' window.
type Host struct {
	inner     tea.Model
	preLayout *eventbus.Bus[struct{}]

	mu             sync.Mutex
	width          int
	height         int
	reservedTop    int
	reservedBottom int
	regions        map[string]tui.Rect
	popups         []*tui.Popup
	tasks          map[uint64]func()
	nextTask       uint64
	cmds           []tea.Cmd
	renderQueued   bool
}

var (
	_ tui.Window = (*Host)(nil)
	_ tea.Model  = (*Host)(nil)
)

// New wraps inner. The frame is empty until the first tea.WindowSizeMsg.
func New(inner tea.Model) *Host {
	return &Host{
		inner:     inner,
		preLayout: eventbus.New[struct{}](),
		tasks:     make(map[uint64]func()),
	}
}

// Inner returns the wrapped model as last updated.
func (h *Host) Inner() tea.Model {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inner
}

// Region returns an anchor for id attached to this host. Mark text in the
// inner view with it so layout can find it.
func (h *Host) Region(id string) *tui.Anchor {
	a := tui.NewAnchor(id, nil)
	a.AttachWindow(h)
	return a
}

// SetReservedRows keeps rows at the top and bottom out of the visible frame.
func (h *Host) SetReservedRows(top, bottom int) {
	h.mu.Lock()
	h.reservedTop = max(top, 0)
	h.reservedBottom = max(bottom, 0)
	h.mu.Unlock()
	h.RequestRender()
}

// VisibleFrame returns the window size minus reserved rows.
func (h *Host) VisibleFrame() tui.Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	return tui.Rect{
		Y:      h.reservedTop,
		Width:  h.width,
		Height: max(h.height-h.reservedTop-h.reservedBottom, 0),
	}
}

// RegionBounds returns the bounds of region id from the latest View.
func (h *Host) RegionBounds(id string) (tui.Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.regions[id]
	return r, ok
}

// OnPreLayout registers fn to run during View, after layout and before compositing.
func (h *Host) OnPreLayout(fn func()) (unsubscribe func()) {
	return h.preLayout.Subscribe(func(struct{}) { fn() })
}

// AddPopup shows p above the inner view.
func (h *Host) AddPopup(p *tui.Popup) error {
	h.mu.Lock()
	for _, existing := range h.popups {
		if existing == p {
			h.mu.Unlock()
			return tui.ErrAlreadyShowing
		}
	}
	h.popups = append(h.popups, p)
	h.mu.Unlock()
	h.RequestRender()
	return nil
}

// RemovePopup hides p, or returns tui.ErrNotAttached.
func (h *Host) RemovePopup(p *tui.Popup) error {
	h.mu.Lock()
	idx := -1
	for i, existing := range h.popups {
		if existing == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		h.mu.Unlock()
		return tui.ErrNotAttached
	}
	h.popups = append(h.popups[:idx], h.popups[idx+1:]...)
	h.mu.Unlock()
	h.RequestRender()
	return nil
}

// Popups returns a snapshot of shown popups, bottom first.
func (h *Host) Popups() []*tui.Popup {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*tui.Popup, len(h.popups))
	copy(out, h.popups)
	return out
}

// PostDelayed schedules fn as a tea.Tick. The command is handed to Bubble
// Tea by the next Init or Update.
func (h *Host) PostDelayed(d time.Duration, fn func()) (cancel func()) {
	h.mu.Lock()
	h.nextTask++
	id := h.nextTask
	h.tasks[id] = fn
	h.cmds = append(h.cmds, tea.Tick(d, func(time.Time) tea.Msg { return taskMsg{id: id} }))
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.tasks, id)
		h.mu.Unlock()
	}
}

// RequestRender queues a message that makes Bubble Tea call View again.
// Requests coalesce until that message is handled.
func (h *Host) RequestRender() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.renderQueued {
		return
	}
	h.renderQueued = true
	h.cmds = append(h.cmds, func() tea.Msg { return renderMsg{} })
}

// Init starts the inner model and any work scheduled before the program ran.
func (h *Host) Init() tea.Cmd {
	return h.batch(h.inner.Init())
}

// Update routes msg and returns the inner model's commands together with
// any ticks or render requests scheduled while handling it.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		h.mu.Lock()
		fn, ok := h.tasks[msg.id]
		delete(h.tasks, msg.id)
		h.mu.Unlock()
		if ok {
			fn()
		}
		return h, h.batch(nil)

	case renderMsg:
		h.mu.Lock()
		h.renderQueued = false
		h.mu.Unlock()
		return h, h.batch(nil)

	case tea.WindowSizeMsg:
		h.mu.Lock()
		h.width, h.height = msg.Width, msg.Height
		h.mu.Unlock()

	case tea.KeyMsg:
		if k, ok := ConvertKey(msg); ok && tui.DispatchKey(h.Popups(), k) {
			return h, h.batch(nil)
		}

	case tea.MouseMsg:
		if m, ok := ConvertMouse(msg); ok && tui.DispatchMouse(h.Popups(), m) {
			return h, h.batch(nil)
		}
	}

	inner, cmd := h.inner.Update(msg)
	h.mu.Lock()
	h.inner = inner
	h.mu.Unlock()
	return h, h.batch(cmd)
}

// View lays out the inner view, lets observers react, then composites popups.
func (h *Host) View() string {
	h.mu.Lock()
	height := h.height
	inner := h.inner
	h.mu.Unlock()

	lines := strings.Split(inner.View(), "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	regions := tui.ExtractRegions(lines)
	h.mu.Lock()
	h.regions = regions
	h.mu.Unlock()
	h.preLayout.Publish(struct{}{})

	tui.Composite(lines, h.Popups())
	return strings.Join(lines, "\n")
}

// batch appends the queued host commands to cmd.
func (h *Host) batch(cmd tea.Cmd) tea.Cmd {
	h.mu.Lock()
	queued := h.cmds
	h.cmds = nil
	h.mu.Unlock()
	if len(queued) == 0 {
		return cmd
	}
	return tea.Batch(append([]tea.Cmd{cmd}, queued...)...)
}
