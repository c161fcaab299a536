// ABOUTME: The sample screen as a Bubble Tea model hosted by teahost
// ABOUTME: Same key bindings and tour as the fullscreen demo; marks use the host as their window

package main

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/coachmark-go/internal/keybindings"
	"github.com/mauromedda/coachmark-go/pkg/coachmark"
	"github.com/mauromedda/coachmark-go/pkg/teahost"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// teaScreen is the inner model. Marks are shown and dismissed from Update,
// which is the host's event goroutine.
type teaScreen struct {
	*marks

	width       int
	pendingTour bool
}

// startTourMsg arrives after the first sized frame, once regions are laid out.
type startTourMsg struct{}

func newTeaScreen(opts []coachmark.Option, keys *keybindings.Manager) (*teahost.Host, *teaScreen) {
	// Update already runs on the event goroutine; tour steps advance in place.
	s := &teaScreen{marks: newMarks(opts, keys, func(fn func()) { fn() })}
	h := teahost.New(s)
	for _, b := range toolbar {
		s.anchors[b.id] = h.Region(b.id)
	}
	s.anchors["publish"] = h.Region("publish")
	h.SetReservedRows(1, 0)
	return h, s
}

func (s *teaScreen) Init() tea.Cmd { return nil }

func (s *teaScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		if s.pendingTour {
			s.pendingTour = false
			return s, func() tea.Msg { return startTourMsg{} }
		}
	case startTourMsg:
		s.runTour(&demoTour)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			s.stop()
			return s, tea.Quit
		}
		if k, ok := teahost.ConvertKey(msg); ok && s.handleAction(s.keys.ActionForKey(k)) {
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *teaScreen) View() string {
	p := theme.Current().Palette
	head := lipgloss.NewStyle().Foreground(p.Accent.LipglossColor()).Render(title)
	footer := lipgloss.NewStyle().Foreground(p.Secondary.LipglossColor()).Render(s.keys.Help())

	lines := []string{head, toolbarLine(s.anchors), ""}
	if s.width > 0 {
		lines = append(lines, width.WrapWords(bodyText, s.width)...)
	} else {
		lines = append(lines, bodyText)
	}
	lines = append(lines, "", " "+s.anchors["publish"].Mark(publishLabel), "", footer)
	if s.status != "" {
		lines = append(lines, s.status)
	}
	return strings.Join(lines, "\n")
}

// runTea runs the sample screen in a Bubble Tea program on the alternate
// screen with mouse reporting.
func runTea(ctx context.Context, a *app, startTour bool) error {
	opts, err := a.markOptions()
	if err != nil {
		return err
	}
	keys, err := a.keyBindings()
	if err != nil {
		return err
	}
	restoreLogs := a.quietLogs()
	defer restoreLogs()

	host, s := newTeaScreen(opts, keys)
	s.pendingTour = startTour

	prog := tea.NewProgram(host, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = prog.Run()
	s.stop()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
