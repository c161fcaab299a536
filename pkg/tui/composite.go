// ABOUTME: Popup compositing: splices popup lines over the laid-out frame at absolute cells
// ABOUTME: Punched content re-exposes the underlying frame through transparent spans

package tui

import "github.com/mauromedda/coachmark-go/pkg/tui/width"

// Composite lays popups over lines in order, so later popups win. Hosts
// other than TUI call it after their own layout pass. lines must already
// cover the full screen height.
func Composite(lines []string, popups []*Popup) {
	for _, p := range popups {
		r := p.Bounds()
		if r.Empty() {
			continue
		}
		rendered := p.renderLines(r)
		punched, _ := p.content.(Punched)

		for i, fg := range rendered {
			row := r.Y + i
			if row < 0 || row >= len(lines) {
				continue
			}
			under := lines[row]
			line := width.Splice(under, fg, r.X, r.Width)
			if punched != nil {
				line = reexpose(line, under, r.X, punched.TransparentSpans(i))
			}
			lines[row] = line
		}
	}
}

// reexpose copies columns of under back over line for each span, offset by x.
func reexpose(line, under string, x int, spans []Span) string {
	for _, s := range spans {
		if s.End <= s.Start {
			continue
		}
		col := x + s.Start
		n := s.End - s.Start
		line = width.Splice(line, width.SliceByColumn(under, col, col+n), col, n)
	}
	return line
}
