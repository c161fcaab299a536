// ABOUTME: Semantic color theme types: Color, Palette, Theme for coach-mark overlays
// ABOUTME: Color.Apply wraps text in ANSI codes; the zero Color is transparent

package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color represents a terminal color that can style text.
// The zero value is transparent: Apply passes text through unchanged.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Transparent is the color that paints nothing.
var Transparent = Color{}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// IsTransparent reports whether c paints nothing.
func (c Color) IsTransparent() bool {
	return c.code == ""
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// With returns a Color that applies c followed by other.
func (c Color) With(other Color) Color {
	return Color{code: c.code + other.code}
}

// ParseForeground parses "#rrggbb", a 256-color index ("0".."255"), or
// "transparent"/"" into a foreground Color.
func ParseForeground(s string) (Color, error) {
	return parse(s, "38")
}

// ParseBackground is ParseForeground for background colors.
func ParseBackground(s string) (Color, error) {
	return parse(s, "48")
}

func parse(s, layer string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "transparent" || s == "none" {
		return Transparent, nil
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := (v>>16)&0xff, (v>>8)&0xff, v&0xff
		return NewColor(fmt.Sprintf("\x1b[%s;2;%d;%d;%dm", layer, r, g, b)), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return NewColor(fmt.Sprintf("\x1b[%s;5;%dm", layer, n)), nil
}

// Palette holds the semantic colors used by coach marks and their hosts.
type Palette struct {
	// Text
	Primary   Color
	Secondary Color
	Muted     Color
	Accent    Color

	// Coach marks
	BubbleBg   Color // Fill behind bubble content
	BubbleText Color // Default text color inside a bubble
	Arrow      Color // Pointer glyphs connecting bubble and anchor
	OverlayDim Color // Full-screen scrim for punch-hole and layered marks
	Highlight  Color // Frame drawn around a highlighted anchor
	Border     Color

	// Formatting
	Bold      Color
	Dim       Color
	Italic    Color
	Underline Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the stock coach-mark palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   NewColor("\x1b[0m"),
		Secondary: NewColor("\x1b[90m"),
		Muted:     NewColor("\x1b[2m"),
		Accent:    NewColor("\x1b[38;5;208m"),

		BubbleBg:   NewColor("\x1b[48;5;24m"),
		BubbleText: NewColor("\x1b[97m"),
		Arrow:      NewColor("\x1b[38;5;24m"),
		OverlayDim: NewColor("\x1b[48;5;236m"),
		Highlight:  NewColor("\x1b[38;5;208m"),
		Border:     NewColor("\x1b[90m"),

		Bold:      NewColor("\x1b[1m"),
		Dim:       NewColor("\x1b[2m"),
		Italic:    NewColor("\x1b[3m"),
		Underline: NewColor("\x1b[4m"),
	}
}
