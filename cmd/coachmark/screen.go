// ABOUTME: The sample screen coach marks explain: title, toolbar, document body, publish button
// ABOUTME: demoScreen lays it out on the fullscreen tui engine and routes unconsumed keys

package main

import (
	"strings"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/internal/keybindings"
	"github.com/mauromedda/coachmark-go/pkg/coachmark"
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/component"
	"github.com/mauromedda/coachmark-go/pkg/tui/key"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

const (
	title        = " coachmark demo"
	publishLabel = "[ Publish ]"
	bodyText     = "Coach marks point at a part of the screen and explain it. They follow " +
		"their anchor when the screen changes and go away on a timeout, on Escape, " +
		"or on a press outside. Try each variant with the number keys, or run the tour."
)

// Toolbar anchors, left to right, with their labels.
var toolbar = []struct{ id, label string }{
	{"open", "[ Open ]"},
	{"save", "[ Save ]"},
	{"search", "[ Search ]"},
	{"help", "[ ? ]"},
}

func intPtr(n int) *int { return &n }

// demoTour shows every variant once.
var demoTour = config.Tour{
	Name: "demo",
	Steps: []config.Step{
		{Anchor: "save", Variant: config.VariantBubble, Text: "Save your work. The bubble points at its anchor and follows it.", ShowBelow: true},
		{Anchor: "search", Variant: config.VariantPunchHole, Text: "Search everything from here. Press anywhere to continue."},
		{Anchor: "publish", Variant: config.VariantLayered, Text: "Publish when you are ready. The button stays lit above the dim layer."},
		{Anchor: "help", Variant: config.VariantHighlight, Text: "Help", TimeoutMs: intPtr(4000)},
		{Anchor: "open", Variant: config.VariantPunchedBubble, Markdown: "**Open** a file, or press *Esc* to skip.", ShowBelow: true},
	},
}

// toolbarLine renders the toolbar with each button marked as its region.
func toolbarLine(anchors map[string]*tui.Anchor) string {
	parts := make([]string, 0, len(toolbar))
	for _, b := range toolbar {
		parts = append(parts, anchors[b.id].Mark(b.label))
	}
	return " " + strings.Join(parts, "  ")
}

// demoScreen is the sample screen on the fullscreen engine.
type demoScreen struct {
	*marks

	ui      *tui.TUI
	quit    func()
	footer  *component.Text
	closers []func()
}

func newDemoScreen(ui *tui.TUI, opts []coachmark.Option, keys *keybindings.Manager, quit func()) *demoScreen {
	s := &demoScreen{ui: ui, quit: quit}
	// Tour steps advance outside key handling; refresh the footer after each.
	s.marks = newMarks(opts, keys, func(fn func()) {
		ui.Post(func() {
			fn()
			s.refreshFooter()
		})
	})
	for _, b := range toolbar {
		a := tui.NewAnchor(b.id, nil)
		ui.AttachAnchor(a)
		s.anchors[b.id] = a
	}
	publish := tui.NewAnchor("publish", component.NewText(publishLabel))
	ui.AttachAnchor(publish)
	s.anchors["publish"] = publish

	p := theme.Current().Palette
	head := component.NewText(title)
	head.SetColor(p.Accent)
	s.footer = component.NewText(s.keys.Help())
	s.footer.SetColor(p.Secondary)

	c := ui.Container()
	c.Add(head)
	c.Add(component.NewText(toolbarLine(s.anchors)))
	c.Add(component.NewText(""))
	c.Add(component.NewText(bodyText).SetWrap(true))
	c.Add(component.NewText(""))
	c.Add(component.NewBox(publish).WithHorizontalPadding(1))
	c.Add(component.NewText(""))
	c.Add(s.footer)

	// The title row is not part of the frame marks lay out in.
	ui.SetReservedRows(1, 0)
	return s
}

// handleKey receives input no popup consumed.
func (s *demoScreen) handleKey(k key.Key) {
	a := s.keys.ActionForKey(k)
	// Ctrl+C quits even when the bindings leave it out.
	if k.Type == key.KeyCtrlC {
		a = keybindings.ActionQuit
	}
	if a == "" {
		return
	}
	if s.handleAction(a) {
		s.quit()
		return
	}
	s.refreshFooter()
}

func (s *demoScreen) refreshFooter() {
	text := s.keys.Help()
	if s.status != "" {
		text += "\n" + s.status
	}
	s.footer.SetContent(text)
	s.ui.RequestRender()
}

// onClose registers fn to run when the session ends.
func (s *demoScreen) onClose(fn func()) {
	s.closers = append(s.closers, fn)
}

func (s *demoScreen) close() {
	s.stop()
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.ui.Close()
}
