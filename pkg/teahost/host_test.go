// ABOUTME: Tests for the Bubble Tea host: region layout, popup compositing, input routing, ticks
// ABOUTME: Drives Update and View directly with messages; no program or terminal is started

package teahost

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/coachmark-go/pkg/coachmark"
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// page is a minimal inner model with one marked button.
type page struct {
	save   *tui.Anchor
	header []string
	seen   []tea.Msg
}

func (p *page) Init() tea.Cmd { return nil }

func (p *page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.seen = append(p.seen, msg)
	return p, nil
}

func (p *page) View() string {
	lines := append([]string{}, p.header...)
	lines = append(lines, "    "+p.save.Mark("[ Save ]"))
	return strings.Join(lines, "\n")
}

func newHost(t *testing.T) (*Host, *page) {
	t.Helper()

	p := &page{header: []string{"title", ""}}
	h := New(p)
	p.save = h.Region("save")
	h.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	h.View()
	return h, p
}

// run executes cmd and any batched commands, returning their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func showBubble(t *testing.T, h *Host, p *page, opts ...coachmark.Option) *coachmark.CoachMark {
	t.Helper()

	base := []coachmark.Option{coachmark.WithLocale("en_US")}
	cfg, err := coachmark.NewConfig(p.save, coachmark.Text("Save your work"), append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	cm := coachmark.New(cfg, coachmark.NewBubble())
	if err := cm.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	return cm
}

func TestHost_RegionLayout(t *testing.T) {
	t.Parallel()

	h, _ := newHost(t)

	want := tui.Rect{X: 4, Y: 2, Width: 8, Height: 1}
	if got, ok := h.RegionBounds("save"); !ok || got != want {
		t.Errorf("RegionBounds = %+v, %v, want %+v", got, ok, want)
	}

	lines := strings.Split(h.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("View lines = %d, want 12", len(lines))
	}
	if lines[2] != "    [ Save ]" {
		t.Errorf("row 2 = %q, markers should be stripped", lines[2])
	}
}

func TestHost_VisibleFrame(t *testing.T) {
	t.Parallel()

	h, _ := newHost(t)
	h.SetReservedRows(1, 1)

	want := tui.Rect{X: 0, Y: 1, Width: 40, Height: 10}
	if got := h.VisibleFrame(); got != want {
		t.Errorf("VisibleFrame() = %+v, want %+v", got, want)
	}
}

func TestHost_ShowComposites(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	p.header = []string{"title", "", "", "", "", ""}
	h.View()

	showBubble(t, h, p)
	view := width.StripANSI(h.View())

	if !strings.Contains(view, "Save your work") {
		t.Errorf("view missing bubble text:\n%s", view)
	}
	if !strings.Contains(view, "[ Save ]") {
		t.Errorf("view missing anchor:\n%s", view)
	}
	if len(h.Popups()) != 1 {
		t.Errorf("popups = %d, want 1", len(h.Popups()))
	}
}

func TestHost_FollowsRegion(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	p.header = []string{"title", "", "", "", "", ""}
	h.View()
	showBubble(t, h, p)
	before := h.Popups()[0].Bounds()

	p.header = append(p.header, "", "")
	h.View()

	after := h.Popups()[0].Bounds()
	if after.Y != before.Y+2 {
		t.Errorf("bubble Y = %d, want %d", after.Y, before.Y+2)
	}
}

func TestHost_Timeout(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	dismissed := make(chan struct{}, 1)
	cm := showBubble(t, h, p,
		coachmark.WithTimeout(5*time.Millisecond),
		coachmark.OnDismiss(func() { dismissed <- struct{}{} }),
	)

	_, cmd := h.Update(renderMsg{})
	for _, msg := range run(cmd) {
		h.Update(msg)
	}

	select {
	case <-dismissed:
	default:
		t.Fatal("timeout did not dismiss the mark")
	}
	if cm.Reason() != coachmark.ReasonTimeout {
		t.Errorf("Reason() = %q, want timeout", cm.Reason())
	}
	if len(h.Popups()) != 0 {
		t.Errorf("popups = %d after timeout, want 0", len(h.Popups()))
	}
}

func TestHost_CancelledTask(t *testing.T) {
	t.Parallel()

	h, _ := newHost(t)
	ran := false
	cancel := h.PostDelayed(time.Millisecond, func() { ran = true })
	cancel()
	cancel()

	_, cmd := h.Update(renderMsg{})
	for _, msg := range run(cmd) {
		h.Update(msg)
	}
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestHost_EscapeDismisses(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	cm := showBubble(t, h, p)
	p.seen = nil

	h.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if cm.Reason() != coachmark.ReasonBack {
		t.Errorf("Reason() = %q, want back", cm.Reason())
	}
	if len(p.seen) != 0 {
		t.Errorf("inner model saw %v, want the key consumed", p.seen)
	}
}

func TestHost_OutsidePress(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	cm := showBubble(t, h, p)
	p.seen = nil

	h.Update(tea.MouseMsg{X: 39, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if cm.Reason() != coachmark.ReasonOutsideTouch {
		t.Errorf("Reason() = %q, want outside_touch", cm.Reason())
	}
	// An outside press still reaches the page under a non-focusable mark.
	if len(p.seen) != 1 {
		t.Errorf("inner model saw %d messages, want 1", len(p.seen))
	}
}

func TestHost_FocusableCapturesKeys(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	cm := showBubble(t, h, p, coachmark.WithFitsScreen(true))
	p.seen = nil

	h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if len(p.seen) != 0 {
		t.Errorf("inner model saw %v under a focusable mark", p.seen)
	}
	if cm.State() != coachmark.StateShowing {
		t.Errorf("State() = %v, want showing", cm.State())
	}
}

func TestHost_ForwardsWithoutPopups(t *testing.T) {
	t.Parallel()

	h, p := newHost(t)
	p.seen = nil

	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	if len(p.seen) != 2 {
		t.Errorf("inner model saw %d messages, want 2", len(p.seen))
	}
	if h.Inner() != tea.Model(p) {
		t.Error("Inner() is not the wrapped model")
	}
}

func TestHost_PopupErrors(t *testing.T) {
	t.Parallel()

	h, _ := newHost(t)
	pop := tui.NewPopup(nil)

	if err := h.RemovePopup(pop); !errors.Is(err, tui.ErrNotAttached) {
		t.Errorf("RemovePopup() = %v, want ErrNotAttached", err)
	}
	if err := h.AddPopup(pop); err != nil {
		t.Fatalf("AddPopup() = %v", err)
	}
	if err := h.AddPopup(pop); !errors.Is(err, tui.ErrAlreadyShowing) {
		t.Errorf("second AddPopup() = %v, want ErrAlreadyShowing", err)
	}
}

func TestHost_RenderRequestsCoalesce(t *testing.T) {
	t.Parallel()

	h, _ := newHost(t)
	h.Update(renderMsg{})

	h.RequestRender()
	h.RequestRender()
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	renders := 0
	for _, msg := range run(cmd) {
		if _, ok := msg.(renderMsg); ok {
			renders++
		}
	}
	if renders != 1 {
		t.Errorf("render messages = %d, want 1", renders)
	}
}
