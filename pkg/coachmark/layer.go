// ABOUTME: Drawing helpers shared by full-frame variants: dim layers and block placement
// ABOUTME: Rows are plain ANSI strings spliced cell-accurately with the width package

package coachmark

import (
	"math"
	"strings"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// paint applies c to s, re-applying it after every reset inside s so
// styled content keeps the fill.
func paint(c theme.Color, s string) string {
	if c.IsTransparent() {
		return s
	}
	return c.Apply(strings.ReplaceAll(s, "\x1b[0m", "\x1b[0m"+c.Code()))
}

// dimRows returns h rows of w blank cells painted with c.
func dimRows(w, h int, c theme.Color) []string {
	row := c.Apply(strings.Repeat(" ", max(w, 0)))
	rows := make([]string, max(h, 0))
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// place lays block over rows with its top-left cell at (x, y), clipping
// anything outside rows. Each block line covers its own visible width.
func place(rows []string, block []string, x, y int) {
	for i, line := range block {
		r := y + i
		if r < 0 || r >= len(rows) {
			continue
		}
		rows[r] = width.Splice(rows[r], line, x, width.VisibleWidth(line))
	}
}

// ellipseSpan returns the columns of row inside the ellipse centred at
// (cx, cy) with radii rx and ry, sampling the row's vertical centre.
func ellipseSpan(row int, cx, cy, rx, ry float64, limit int) (tui.Span, bool) {
	if rx <= 0 || ry <= 0 {
		return tui.Span{}, false
	}
	dy := (float64(row) + 0.5 - cy) / ry
	if dy <= -1 || dy >= 1 {
		return tui.Span{}, false
	}
	half := rx * math.Sqrt(1-dy*dy)
	start := int(math.Round(cx - half))
	end := int(math.Round(cx + half))
	return clipSpan(tui.Span{Start: start, End: end}, limit)
}

// clipSpan clamps s to [0, limit) and reports whether anything is left.
func clipSpan(s tui.Span, limit int) (tui.Span, bool) {
	s.Start = max(s.Start, 0)
	s.End = min(s.End, limit)
	return s, s.End > s.Start
}

// spanContains reports whether column x falls in any of spans.
func spanContains(spans []tui.Span, x int) bool {
	for _, s := range spans {
		if x >= s.Start && x < s.End {
			return true
		}
	}
	return false
}
