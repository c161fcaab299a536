// ABOUTME: Tests for the Bubble Tea demo model hosted by teahost
// ABOUTME: Drives the host with messages and inspects popups and the composited view

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTeaScreen_ShowsMarks(t *testing.T) {
	t.Parallel()

	host, s := newTeaScreen(nil, nil)
	host.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	host.View()

	host.Update(runeKey('1'))
	if n := len(host.Popups()); n != 1 {
		t.Fatalf("popups = %d, want 1", n)
	}
	view := width.StripANSI(host.View())
	if !strings.Contains(view, "Save your work") {
		t.Errorf("view missing bubble text:\n%s", view)
	}

	host.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if n := len(host.Popups()); n != 0 {
		t.Errorf("popups after Escape = %d, want 0", n)
	}
	if s.showing() != nil {
		t.Error("mark still showing after Escape")
	}
}

func TestTeaScreen_Quit(t *testing.T) {
	t.Parallel()

	_, s := newTeaScreen(nil, nil)
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := s.Update(msg)
		if cmd == nil {
			t.Fatalf("Update(%v) returned no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%v) did not quit", msg)
		}
	}
}

func TestTeaScreen_StartsTourAfterFirstFrame(t *testing.T) {
	t.Parallel()

	host, s := newTeaScreen(nil, nil)
	s.pendingTour = true

	_, cmd := host.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	host.View()
	if s.tour != nil {
		t.Fatal("tour started before the first frame")
	}

	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(startTourMsg); ok {
			host.Update(msg)
		}
	}
	if s.tour == nil || s.tour.step() != 1 {
		t.Fatalf("tour not at step 1 after startTourMsg")
	}

	// Dismissing advances in place on the host's goroutine.
	host.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := s.tour.step(); got != 2 {
		t.Errorf("tour step after Escape = %d, want 2", got)
	}
}
