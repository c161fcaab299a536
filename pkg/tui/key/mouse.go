// ABOUTME: SGR (1006) mouse report parsing for outside-touch dismissal and popup clicks
// ABOUTME: ParseMouse decodes ESC [ < b ; x ; y (M|m) into a zero-based Mouse event

package key

import "strings"

// MouseButton identifies which button produced a mouse report.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseRelease
	MouseWheelUp
	MouseWheelDown
	MouseMotion
)

// Mouse is a decoded SGR mouse report. X and Y are zero-based cell coordinates.
type Mouse struct {
	X, Y   int
	Button MouseButton
	Press  bool
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// IsPress reports whether m is a button press (not release, wheel, or motion).
func (m Mouse) IsPress() bool {
	return m.Press && m.Button <= MouseRight
}

// EnableMouse turns on button-event tracking with SGR extended coordinates.
const EnableMouse = "\x1b[?1000h\x1b[?1006h"

// DisableMouse reverses EnableMouse.
const DisableMouse = "\x1b[?1006l\x1b[?1000l"

// IsMouse reports whether data looks like an SGR mouse report.
func IsMouse(data string) bool {
	return strings.HasPrefix(data, "\x1b[<")
}

// ParseMouse decodes a single SGR mouse report. The second return value is
// false when data is not a complete, well-formed report.
func ParseMouse(data string) (Mouse, bool) {
	if len(data) < 9 || !IsMouse(data) {
		return Mouse{}, false
	}

	var params [3]int
	stage := 0
	for i := 3; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			params[stage] = params[stage]*10 + int(b-'0')
		case b == ';':
			stage++
			if stage > 2 {
				return Mouse{}, false
			}
		case b == 'M' || b == 'm':
			if stage != 2 || i != len(data)-1 {
				return Mouse{}, false
			}
			return decodeMouse(params[0], params[1], params[2], b == 'M'), true
		default:
			return Mouse{}, false
		}
	}
	return Mouse{}, false
}

func decodeMouse(code, x, y int, press bool) Mouse {
	m := Mouse{
		X:     x - 1,
		Y:     y - 1,
		Press: press,
		Shift: code&4 != 0,
		Alt:   code&8 != 0,
		Ctrl:  code&16 != 0,
	}
	switch {
	case code&64 != 0:
		if code&1 != 0 {
			m.Button = MouseWheelDown
		} else {
			m.Button = MouseWheelUp
		}
	case code&32 != 0:
		m.Button = MouseMotion
	case !press:
		m.Button = MouseRelease
	default:
		m.Button = MouseButton(code & 3)
	}
	return m
}
