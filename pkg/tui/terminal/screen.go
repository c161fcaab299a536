// ABOUTME: Full-screen session helpers: alternate screen, hidden cursor, SGR mouse reporting
// ABOUTME: Coach marks address absolute cells, so hosts render on the alternate screen

package terminal

import "fmt"

const (
	altScreenOn   = "\x1b[?1049h"
	altScreenOff  = "\x1b[?1049l"
	cursorHome    = "\x1b[H"
	cursorHide    = "\x1b[?25l"
	cursorShow    = "\x1b[?25h"
	mouseOn       = "\x1b[?1000h\x1b[?1006h"
	mouseOff      = "\x1b[?1006l\x1b[?1000l"
	clearScreen   = "\x1b[2J"
	resetSGR      = "\x1b[0m"
	leaveSequence = resetSGR + mouseOff + cursorShow + altScreenOff
)

// EnterFullscreen puts t in raw mode, switches to the alternate screen with the
// cursor homed and hidden, and enables mouse press reporting.
func EnterFullscreen(t Terminal) error {
	if err := t.EnterRawMode(); err != nil {
		return err
	}
	if _, err := t.Write([]byte(altScreenOn + clearScreen + cursorHome + cursorHide + mouseOn)); err != nil {
		_ = t.ExitRawMode()
		return fmt.Errorf("entering fullscreen: %w", err)
	}
	return nil
}

// LeaveFullscreen reverses EnterFullscreen. Both steps are attempted; the
// first error is returned.
func LeaveFullscreen(t Terminal) error {
	_, werr := t.Write([]byte(leaveSequence))
	rerr := t.ExitRawMode()
	if werr != nil {
		return fmt.Errorf("leaving fullscreen: %w", werr)
	}
	return rerr
}
