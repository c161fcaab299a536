// ABOUTME: Translates Bubble Tea key and mouse messages into the tui key model
// ABOUTME: Only what popup dispatch needs: Escape, runes, and button presses

package teahost

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/coachmark-go/pkg/tui/key"
)

var teaKeys = map[tea.KeyType]key.KeyType{
	tea.KeyEsc:       key.KeyEscape,
	tea.KeyEnter:     key.KeyEnter,
	tea.KeyTab:       key.KeyTab,
	tea.KeyShiftTab:  key.KeyBackTab,
	tea.KeyBackspace: key.KeyBackspace,
	tea.KeyDelete:    key.KeyDelete,
	tea.KeyUp:        key.KeyUp,
	tea.KeyDown:      key.KeyDown,
	tea.KeyLeft:      key.KeyLeft,
	tea.KeyRight:     key.KeyRight,
	tea.KeyHome:      key.KeyHome,
	tea.KeyEnd:       key.KeyEnd,
	tea.KeyPgUp:      key.KeyPageUp,
	tea.KeyPgDown:    key.KeyPageDown,
	tea.KeyCtrlC:     key.KeyCtrlC,
}

// ConvertKey maps msg to a key.Key. Multi-rune input (pastes) is not mapped.
func ConvertKey(msg tea.KeyMsg) (key.Key, bool) {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return key.Key{}, false
		}
		return key.Key{Type: key.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}, true
	}
	if msg.Type == tea.KeySpace {
		return key.Key{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}, true
	}
	t, ok := teaKeys[msg.Type]
	if !ok {
		return key.Key{Type: key.KeyUnknown}, true
	}
	return key.Key{Type: t, Alt: msg.Alt, Ctrl: t == key.KeyCtrlC}, true
}

// ConvertMouse maps button presses; wheel, motion, and release are dropped.
func ConvertMouse(msg tea.MouseMsg) (key.Mouse, bool) {
	if msg.Action != tea.MouseActionPress {
		return key.Mouse{}, false
	}
	var b key.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		b = key.MouseLeft
	case tea.MouseButtonMiddle:
		b = key.MouseMiddle
	case tea.MouseButtonRight:
		b = key.MouseRight
	default:
		return key.Mouse{}, false
	}
	return key.Mouse{
		X:      msg.X,
		Y:      msg.Y,
		Button: b,
		Press:  true,
		Shift:  msg.Shift,
		Alt:    msg.Alt,
		Ctrl:   msg.Ctrl,
	}, true
}
