// ABOUTME: Keybindings manager with O(1) key-to-action lookup for the demo hosts
// ABOUTME: Merges settings overrides onto the defaults and detects keys bound twice

package keybindings

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/pkg/tui/key"
)

// Action is something a demo key does.
type Action string

const (
	ActionShowBubble        Action = "show_bubble"
	ActionShowPunchHole     Action = "show_punch_hole"
	ActionShowLayered       Action = "show_layered"
	ActionShowHighlight     Action = "show_highlight"
	ActionShowPunchedBubble Action = "show_punched_bubble"
	ActionRunTour           Action = "run_tour"
	ActionDismiss           Action = "dismiss"
	ActionQuit              Action = "quit"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionShowBubble,
	ActionShowPunchHole,
	ActionShowLayered,
	ActionShowHighlight,
	ActionShowPunchedBubble,
	ActionRunTour,
	ActionDismiss,
	ActionQuit,
}

var labels = map[Action]string{
	ActionShowBubble:        "bubble",
	ActionShowPunchHole:     "punch hole",
	ActionShowLayered:       "layered",
	ActionShowHighlight:     "highlight",
	ActionShowPunchedBubble: "punched bubble",
	ActionRunTour:           "tour",
	ActionDismiss:           "dismiss",
	ActionQuit:              "quit",
}

// ErrUnknownAction is returned for overrides naming an action that does not exist.
var ErrUnknownAction = errors.New("unknown key action")

// Defaults returns the stock bindings.
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionShowBubble:        {"1"},
		ActionShowPunchHole:     {"2"},
		ActionShowLayered:       {"3"},
		ActionShowHighlight:     {"4"},
		ActionShowPunchedBubble: {"5"},
		ActionRunTour:           {"t"},
		ActionDismiss:           {"d"},
		ActionQuit:              {"q", "ctrl+c"},
	}
}

// ConflictInfo describes a key bound to more than one action.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager provides O(1) key-to-action lookup from merged bindings.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action // "ctrl+c" → ActionQuit
}

// New merges overrides (action name → keys, as in settings) onto the
// defaults. An override replaces every key of its action; an empty list
// unbinds it.
func New(overrides map[string][]string) (*Manager, error) {
	bindings := Defaults()
	names := make([]string, len(Actions))
	for i, a := range Actions {
		names[i] = string(a)
	}

	for name, keys := range overrides {
		a := Action(name)
		if !slices.Contains(Actions, a) {
			msg := fmt.Sprintf("%q", name)
			if s := config.Suggest(name, names, 1); len(s) > 0 {
				msg += fmt.Sprintf(" (did you mean %q?)", s[0])
			}
			return nil, fmt.Errorf("%w: %s", ErrUnknownAction, msg)
		}
		normalized := make([]string, 0, len(keys))
		for _, k := range keys {
			normalized = append(normalized, strings.ToLower(strings.TrimSpace(k)))
		}
		bindings[a] = normalized
	}

	m := &Manager{bindings: bindings}
	m.buildLookup()
	return m, nil
}

// ActionForKey returns the action bound to k, or "" if unbound.
func (m *Manager) ActionForKey(k key.Key) Action {
	return m.lookup[KeyString(k)]
}

// Keys returns the keys bound to a.
func (m *Manager) Keys(a Action) []string {
	return m.bindings[a]
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, a := range Actions {
		for _, k := range m.bindings[a] {
			keyActions[k] = append(keyActions[k], a)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	slices.SortFunc(conflicts, func(a, b ConflictInfo) int { return strings.Compare(a.Key, b.Key) })
	return conflicts
}

// Help returns a one-line summary such as "1 bubble  2 punch hole  q quit",
// using the first key of each bound action.
func (m *Manager) Help() string {
	parts := make([]string, 0, len(Actions))
	for _, a := range Actions {
		keys := m.bindings[a]
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+labels[a])
	}
	return strings.Join(parts, "  ")
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	// Help order decides which action wins a conflicting key.
	for i := len(Actions) - 1; i >= 0; i-- {
		for _, k := range m.bindings[Actions[i]] {
			m.lookup[k] = Actions[i]
		}
	}
}

// KeyString converts k to the string format used in bindings.
func KeyString(k key.Key) string {
	var parts []string

	if k.Ctrl {
		parts = append(parts, "ctrl")
	}
	if k.Alt {
		parts = append(parts, "alt")
	}
	if k.Shift {
		parts = append(parts, "shift")
	}

	switch k.Type {
	case key.KeyRune:
		parts = append(parts, strings.ToLower(string(k.Rune)))
	case key.KeyEnter:
		parts = append(parts, "enter")
	case key.KeyTab:
		parts = append(parts, "tab")
	case key.KeyBackTab:
		return "shift+tab" // BackTab implies shift
	case key.KeyBackspace:
		parts = append(parts, "backspace")
	case key.KeyDelete:
		parts = append(parts, "delete")
	case key.KeyUp:
		parts = append(parts, "up")
	case key.KeyDown:
		parts = append(parts, "down")
	case key.KeyLeft:
		parts = append(parts, "left")
	case key.KeyRight:
		parts = append(parts, "right")
	case key.KeyHome:
		parts = append(parts, "home")
	case key.KeyEnd:
		parts = append(parts, "end")
	case key.KeyPageUp:
		parts = append(parts, "pgup")
	case key.KeyPageDown:
		parts = append(parts, "pgdown")
	case key.KeyEscape:
		parts = append(parts, "escape")
	case key.KeyCtrlC:
		return "ctrl+c"
	case key.KeyCtrlD:
		return "ctrl+d"
	case key.KeyCtrlG:
		return "ctrl+g"
	case key.KeyCtrlL:
		return "ctrl+l"
	case key.KeyCtrlO:
		return "ctrl+o"
	case key.KeyCtrlR:
		return "ctrl+r"
	default:
		return ""
	}

	return strings.Join(parts, "+")
}
