// ABOUTME: Zero-width APC region markers that let the engine locate anchors in rendered lines
// ABOUTME: Mark wraps text per line; ExtractRegions strips markers and returns on-screen bounds

package tui

import (
	"strings"

	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// Markers are APC strings terminated by ST so width calculations treat them
// as zero-width. Region ids must not contain ESC.
const (
	markerIntro = "\x1b_cm"
	markerST    = "\x1b\\"
	openKind    = ':'
	closeKind   = '/'
)

// RegionStart returns the marker opening region id on the current line.
func RegionStart(id string) string {
	return markerIntro + string(openKind) + id + markerST
}

// RegionEnd returns the marker closing region id on the current line.
func RegionEnd(id string) string {
	return markerIntro + string(closeKind) + id + markerST
}

// Mark wraps every line of text in region markers for id. Trailing spaces
// stay outside the region so padded lines do not widen it.
func Mark(id, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = markLine(id, line)
	}
	return strings.Join(lines, "\n")
}

func markLine(id, line string) string {
	trimmed := strings.TrimRight(line, " ")
	return RegionStart(id) + trimmed + RegionEnd(id) + line[len(trimmed):]
}

// ExtractRegions removes region markers from lines in place and returns the
// bounds of every region found. Row indices are positions in lines.
// A region spanning several rows reports the union of its per-row spans.
func ExtractRegions(lines []string) map[string]Rect {
	var regions map[string]Rect
	for row, line := range lines {
		if !strings.Contains(line, markerIntro) {
			continue
		}
		stripped, spans := stripLine(line)
		lines[row] = stripped
		for id, span := range spans {
			if regions == nil {
				regions = make(map[string]Rect)
			}
			r := Rect{X: span.Start, Y: row, Width: span.End - span.Start, Height: 1}
			if prev, ok := regions[id]; ok {
				r = prev.Union(r)
			}
			regions[id] = r
		}
	}
	return regions
}

// stripLine removes markers from one line and returns the column span of
// each closed region. Unrecognised APC strings are kept verbatim.
func stripLine(line string) (string, map[string]Span) {
	var b strings.Builder
	b.Grow(len(line))
	open := make(map[string]int)
	spans := make(map[string]Span)

	rest := line
	for {
		i := strings.Index(rest, markerIntro)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		body := rest[i+len(markerIntro):]
		end := strings.Index(body, markerST)
		if end < 1 || (body[0] != openKind && body[0] != closeKind) {
			b.WriteString(markerIntro)
			rest = body
			continue
		}
		id := body[1:end]
		col := width.VisibleWidth(b.String())
		if body[0] == openKind {
			open[id] = col
		} else if start, ok := open[id]; ok {
			delete(open, id)
			if prev, seen := spans[id]; seen {
				spans[id] = Span{Start: min(prev.Start, start), End: max(prev.End, col)}
			} else {
				spans[id] = Span{Start: start, End: col}
			}
		}
		rest = body[end+len(markerST):]
	}
	return b.String(), spans
}
