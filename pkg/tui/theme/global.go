// ABOUTME: Lock-free global theme pointer shared by coach marks and their hosts
// ABOUTME: Current() returns the active theme; Use() resolves a builtin name or JSON file

package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// ErrUnknownTheme is returned by Use for a name that is neither builtin nor a file.
var ErrUnknownTheme = errors.New("unknown theme")

var current atomic.Pointer[Theme]

func init() {
	current.Store(&Theme{Name: "default", Palette: DefaultPalette()})
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme.
func Set(t *Theme) {
	current.Store(t)
}

// Use activates a builtin theme by name, or loads a JSON theme when ref ends in ".json".
func Use(ref string) error {
	if strings.HasSuffix(ref, ".json") {
		t, err := LoadFile(ref)
		if err != nil {
			return err
		}
		Set(t)
		return nil
	}
	t := Builtin(ref)
	if t == nil {
		return fmt.Errorf("%w: %q (builtins: %s)", ErrUnknownTheme, ref, strings.Join(BuiltinNames(), ", "))
	}
	Set(t)
	return nil
}
