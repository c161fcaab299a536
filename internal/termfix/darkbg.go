// ABOUTME: Decides lipgloss's dark-background flag before any package can query the terminal
// ABOUTME: Import with _ ahead of bubbletea so the OSC 10/11 probe never reaches stdin

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Once the flag is set explicitly, lipgloss skips its background probe,
	// whose reply would otherwise arrive as key input. Nothing here may
	// import bubbletea, so this init runs before bubbletea's.
	lipgloss.SetHasDarkBackground(DarkBackground(os.Getenv("COLORFGBG")))
}

// DarkBackground reads a COLORFGBG value ("fg;bg" or "fg;default;bg").
// Background colors 0-6 and 8 are dark; anything unparseable counts as dark.
func DarkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return true
	}
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	return bg <= 6 || bg == 8
}
