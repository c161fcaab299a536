// ABOUTME: Tests for Bubble Tea to tui key and mouse translation
// ABOUTME: Covers Escape, runes, pastes, unknown keys, and non-press mouse events

package teahost

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/coachmark-go/pkg/tui/key"
)

func TestConvertKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   key.Key
		wantOK bool
	}{
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, key.Key{Type: key.KeyEscape}, true},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, key.Key{Type: key.KeyRune, Rune: 'x'}, true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, key.Key{Type: key.KeyRune, Rune: 'x', Alt: true}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, key.Key{Type: key.KeyRune, Rune: ' '}, true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, key.Key{}, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, key.Key{Type: key.KeyCtrlC, Ctrl: true}, true},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF5}, key.Key{Type: key.KeyUnknown}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ConvertKey(tt.msg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ConvertKey = %+v, %v, want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConvertMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   key.Mouse
		wantOK bool
	}{
		{
			"left press",
			tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			key.Mouse{X: 3, Y: 4, Button: key.MouseLeft, Press: true},
			true,
		},
		{
			"ctrl right press",
			tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight, Ctrl: true},
			key.Mouse{X: 1, Y: 2, Button: key.MouseRight, Press: true, Ctrl: true},
			true,
		},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, key.Mouse{}, false},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, key.Mouse{}, false},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, key.Mouse{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ConvertMouse(tt.msg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ConvertMouse = %+v, %v, want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
