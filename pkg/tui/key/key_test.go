// ABOUTME: Table-driven tests for ParseKey: runes, control bytes, navigation sequences, modifiers
// ABOUTME: Also covers Key.String, which labels keys in debug logs

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		{name: "empty", data: "", want: Key{Type: KeyUnknown}},
		{name: "rune", data: "q", want: Key{Type: KeyRune, Rune: 'q'}},
		{name: "digit", data: "1", want: Key{Type: KeyRune, Rune: '1'}},
		{name: "space", data: " ", want: Key{Type: KeyRune, Rune: ' '}},
		{name: "multibyte rune", data: "é", want: Key{Type: KeyRune, Rune: 'é'}},
		{name: "invalid utf8", data: "\xff\xfe", want: Key{Type: KeyUnknown}},

		{name: "ctrl+c", data: "\x03", want: Key{Type: KeyCtrlC, Ctrl: true}},
		{name: "ctrl+d", data: "\x04", want: Key{Type: KeyCtrlD, Ctrl: true}},
		{name: "ctrl+r", data: "\x12", want: Key{Type: KeyCtrlR, Ctrl: true}},
		{name: "unmapped control", data: "\x01", want: Key{Type: KeyUnknown}},
		{name: "enter", data: "\r", want: Key{Type: KeyEnter}},
		{name: "tab", data: "\t", want: Key{Type: KeyTab}},
		{name: "backspace", data: "\x7f", want: Key{Type: KeyBackspace}},
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},
		{name: "alt+t", data: "\x1bt", want: Key{Type: KeyRune, Rune: 't', Alt: true}},

		{name: "up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "left", data: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "home", data: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "ss3 down", data: "\x1bOB", want: Key{Type: KeyDown}},
		{name: "ss3 end", data: "\x1bOF", want: Key{Type: KeyEnd}},
		{name: "page up", data: "\x1b[5~", want: Key{Type: KeyPageUp}},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}},
		{name: "vt220 home", data: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "rxvt end", data: "\x1b[8~", want: Key{Type: KeyEnd}},
		{name: "backtab", data: "\x1b[Z", want: Key{Type: KeyBackTab, Shift: true}},

		{name: "shift+up", data: "\x1b[1;2A", want: Key{Type: KeyUp, Shift: true}},
		{name: "alt+right", data: "\x1b[1;3C", want: Key{Type: KeyRight, Alt: true}},
		{name: "ctrl+left", data: "\x1b[1;5D", want: Key{Type: KeyLeft, Ctrl: true}},
		{name: "ctrl+shift+end", data: "\x1b[1;6F", want: Key{Type: KeyEnd, Ctrl: true, Shift: true}},
		{name: "ctrl+delete", data: "\x1b[3;5~", want: Key{Type: KeyDelete, Ctrl: true}},

		{name: "unknown final", data: "\x1b[99Z", want: Key{Type: KeyUnknown}},
		{name: "unknown tilde", data: "\x1b[42~", want: Key{Type: KeyUnknown}},
		{name: "bad modifier", data: "\x1b[1;xA", want: Key{Type: KeyUnknown}},
		{name: "zero modifier", data: "\x1b[1;0A", want: Key{Type: KeyUnknown}},
		{name: "too many params", data: "\x1b[1;2;3A", want: Key{Type: KeyUnknown}},
		{name: "arrow with count", data: "\x1b[2A", want: Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseKey(tt.data); got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseKey_MouseRelease(t *testing.T) {
	t.Parallel()

	got := ParseKey("\x1b[<0;5;3m")
	if got.Type != KeyMouse {
		t.Fatalf("ParseKey(release).Type = %v, want KeyMouse", got.Type)
	}
	if got.Mouse.X != 4 || got.Mouse.Y != 2 {
		t.Errorf("mouse cell = (%d, %d), want (4, 2)", got.Mouse.X, got.Mouse.Y)
	}
	if got.Mouse.IsPress() || got.Mouse.Button != MouseRelease {
		t.Errorf("Mouse = %+v, want a release", got.Mouse)
	}
}

func TestKey_IsCancel(t *testing.T) {
	t.Parallel()

	if !(Key{Type: KeyEscape}).IsCancel() {
		t.Error("Escape.IsCancel() = false, want true")
	}
	if (Key{Type: KeyRune, Rune: 'q'}).IsCancel() {
		t.Error("q.IsCancel() = true, want false")
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{Key{Type: KeyRune, Rune: 'a'}, "a"},
		{Key{Type: KeyRune, Rune: 'x', Alt: true}, "Alt+x"},
		{Key{Type: KeyEnter}, "Enter"},
		{Key{Type: KeyUp, Shift: true}, "Shift+Up"},
		{Key{Type: KeyLeft, Ctrl: true, Alt: true}, "Ctrl+Alt+Left"},
		{Key{Type: KeyCtrlC, Ctrl: true}, "Ctrl+C"},
		{Key{Type: KeyBackTab, Shift: true}, "BackTab"},
		{Key{Type: KeyMouse}, "Mouse"},
		{Key{Type: KeyType(99)}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
