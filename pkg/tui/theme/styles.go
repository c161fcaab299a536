// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Parses SGR sequences into lipgloss styles; Styles() returns the coach-mark palette

package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// stylesEntry pairs a theme pointer with its pre-built styles.
type stylesEntry struct {
	theme  *Theme
	styles Styles
}

// cachedStyles is keyed by theme pointer identity; Set invalidates it implicitly.
var cachedStyles atomic.Pointer[stylesEntry]

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

type attrs struct {
	bold      bool
	dim       bool
	italic    bool
	underline bool
	reverse   bool
}

// extractColor returns the lipgloss color spec of the last color-bearing SGR
// sequence in code ("208", "#102030", ...) and whether it is a background.
func extractColor(code string) (spec string, background bool) {
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		if c, bg := parseColorParams(strings.Split(m[1], ";")); c != "" {
			spec, background = c, bg
		}
	}
	return spec, background
}

func parseColorParams(params []string) (string, bool) {
	if len(params) == 0 {
		return "", false
	}
	bg := params[0] == "48"

	switch {
	case len(params) >= 3 && (params[0] == "38" || bg) && params[1] == "5":
		return params[2], bg
	case len(params) >= 5 && (params[0] == "38" || bg) && params[1] == "2":
		r, _ := strconv.Atoi(params[2])
		g, _ := strconv.Atoi(params[3])
		b, _ := strconv.Atoi(params[4])
		return fmt.Sprintf("#%02x%02x%02x", r, g, b), bg
	case len(params) == 1:
		n, err := strconv.Atoi(params[0])
		if err != nil {
			return "", false
		}
		return basicColorToSpec(n)
	}
	return "", false
}

// basicColorToSpec converts a basic ANSI color code to a lipgloss 256-color
// spec. Returns "" for non-color codes (attributes like bold, dim).
func basicColorToSpec(n int) (string, bool) {
	switch {
	case n >= 30 && n <= 37:
		return strconv.Itoa(n - 30), false
	case n >= 40 && n <= 47:
		return strconv.Itoa(n - 40), true
	case n >= 90 && n <= 97:
		return strconv.Itoa(n - 90 + 8), false
	case n >= 100 && n <= 107:
		return strconv.Itoa(n - 100 + 8), true
	default:
		return "", false
	}
}

func extractAttrs(code string) attrs {
	var a attrs
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		for p := range strings.SplitSeq(m[1], ";") {
			switch p {
			case "1":
				a.bold = true
			case "2":
				a.dim = true
			case "3":
				a.italic = true
			case "4":
				a.underline = true
			case "7":
				a.reverse = true
			}
		}
	}
	return a
}

// Style builds a lipgloss.Style from c. A transparent color yields an empty style.
func (c Color) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if spec, bg := extractColor(c.code); spec != "" {
		if bg {
			s = s.Background(lipgloss.Color(spec))
		} else {
			s = s.Foreground(lipgloss.Color(spec))
		}
	}
	a := extractAttrs(c.code)
	if a.bold {
		s = s.Bold(true)
	}
	if a.dim {
		s = s.Faint(true)
	}
	if a.italic {
		s = s.Italic(true)
	}
	if a.underline {
		s = s.Underline(true)
	}
	if a.reverse {
		s = s.Reverse(true)
	}
	return s
}

// LipglossColor returns c's color as a lipgloss.TerminalColor, or
// lipgloss.NoColor when c carries no color.
func (c Color) LipglossColor() lipgloss.TerminalColor {
	spec, _ := extractColor(c.code)
	if spec == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(spec)
}

// Styles holds pre-built lipgloss styles for the coach-mark palette.
type Styles struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style

	Bubble     lipgloss.Style // BubbleText over BubbleBg
	Arrow      lipgloss.Style
	OverlayDim lipgloss.Style
	Highlight  lipgloss.Style
	Border     lipgloss.Style
}

// CurrentStyles returns Styles for the current theme, rebuilding only when
// the theme pointer has changed.
func CurrentStyles() Styles {
	t := Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&stylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(t *Theme) Styles {
	p := t.Palette
	return Styles{
		Primary:   p.Primary.Style(),
		Secondary: p.Secondary.Style(),
		Muted:     p.Muted.Style(),
		Accent:    p.Accent.Style(),

		Bubble: p.BubbleText.Style().
			Background(p.BubbleBg.LipglossColor()),
		Arrow:      p.Arrow.Style(),
		OverlayDim: p.OverlayDim.Style(),
		Highlight:  p.Highlight.Style(),
		Border:     p.Border.Style(),
	}
}
