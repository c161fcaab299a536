// ABOUTME: CSI and SS3 navigation-key sequences, including xterm modifier parameters
// ABOUTME: "\x1b[1;5A" decodes to Ctrl+Up so bindings such as "shift+up" can match

package key

import (
	"strconv"
	"strings"
)

// navFinal maps the final byte of CSI/SS3 cursor sequences.
var navFinal = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// navTilde maps the first parameter of "\x1b[<n>~" sequences. 1/7 and 4/8
// are the rxvt and VT220 spellings of Home and End.
var navTilde = map[string]KeyType{
	"1": KeyHome,
	"3": KeyDelete,
	"4": KeyEnd,
	"5": KeyPageUp,
	"6": KeyPageDown,
	"7": KeyHome,
	"8": KeyEnd,
}

// parseNavSequence decodes navigation keys. The optional second CSI
// parameter is xterm's 1 + (shift | alt<<1 | ctrl<<2).
func parseNavSequence(data string) (Key, bool) {
	switch {
	case data == "\x1b[Z":
		return Key{Type: KeyBackTab, Shift: true}, true
	case len(data) == 3 && data[1] == 'O':
		// SS3: application cursor mode
		t, ok := navFinal[data[2]]
		return Key{Type: t}, ok
	case len(data) < 3 || data[1] != '[':
		return Key{}, false
	}

	params := strings.Split(data[2:len(data)-1], ";")
	if len(params) > 2 {
		return Key{}, false
	}

	var k Key
	var ok bool
	if final := data[len(data)-1]; final == '~' {
		k.Type, ok = navTilde[params[0]]
	} else if params[0] == "" || params[0] == "1" {
		k.Type, ok = navFinal[final]
	}
	if !ok {
		return Key{}, false
	}

	if len(params) == 2 {
		m, err := strconv.Atoi(params[1])
		if err != nil || m < 1 {
			return Key{}, false
		}
		m--
		k.Shift, k.Alt, k.Ctrl = m&1 != 0, m&2 != 0, m&4 != 0
	}
	return k, true
}
