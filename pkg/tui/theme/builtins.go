// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary:   NewColor("\x1b[97m"),
			Secondary: NewColor("\x1b[90m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[38;5;214m"),

			BubbleBg:   NewColor("\x1b[48;5;238m"),
			BubbleText: NewColor("\x1b[38;5;230m"),
			Arrow:      NewColor("\x1b[38;5;238m"),
			OverlayDim: NewColor("\x1b[48;5;233m"),
			Highlight:  NewColor("\x1b[38;5;214m"),
			Border:     NewColor("\x1b[38;5;240m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary:   NewColor("\x1b[30m"),
			Secondary: NewColor("\x1b[37m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[38;5;166m"),

			BubbleBg:   NewColor("\x1b[48;5;153m"),
			BubbleText: NewColor("\x1b[30m"),
			Arrow:      NewColor("\x1b[38;5;153m"),
			OverlayDim: NewColor("\x1b[48;5;250m"),
			Highlight:  NewColor("\x1b[38;5;166m"),
			Border:     NewColor("\x1b[38;5;249m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary:   NewColor("\x1b[0m"),
			Secondary: NewColor("\x1b[2m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[1m"),

			BubbleBg:   NewColor("\x1b[7m"),
			BubbleText: NewColor("\x1b[1m"),
			Arrow:      NewColor("\x1b[1m"),
			OverlayDim: NewColor("\x1b[2m"),
			Highlight:  NewColor("\x1b[1m\x1b[4m"),
			Border:     NewColor("\x1b[2m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
