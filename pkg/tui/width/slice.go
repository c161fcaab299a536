// ABOUTME: Column-based slicing and splicing of ANSI-styled lines
// ABOUTME: Splice lays one styled string over another at a visual column; used by overlay compositing

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const sgrReset = "\x1b[0m"

// SliceByColumn extracts the substring from column start (inclusive) to
// column end (exclusive). SGR sequences met before the range are carried
// so the slice keeps its styling. A wide grapheme straddling a boundary is
// dropped rather than split.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}

	var b strings.Builder
	var sgr ActiveSGR
	started := false
	for _, seg := range extractSegments(s) {
		if seg.isSeq {
			if started {
				b.WriteString(seg.text)
			} else {
				sgr.Apply(seg.text)
			}
			continue
		}
		if seg.col < start || seg.col+seg.width > end {
			if seg.col >= end {
				break
			}
			continue
		}
		if !started {
			b.WriteString(sgr.String())
			started = true
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// PadRight pads s with spaces up to w visible columns. Longer strings are
// returned unchanged.
func PadRight(s string, w int) string {
	vis := VisibleWidth(s)
	if vis >= w {
		return s
	}
	return s + strings.Repeat(" ", w-vis)
}

// Splice returns bg with fg laid over it starting at visible column col.
// fg occupies exactly w columns: it is truncated or space-padded to fit.
// Background columns before col and after col+w are preserved, and styles
// never bleed across the seams.
func Splice(bg, fg string, col, w int) string {
	if w <= 0 {
		return bg
	}
	if col < 0 {
		fg = SliceByColumn(fg, -col, VisibleWidth(fg))
		w += col
		col = 0
		if w <= 0 {
			return bg
		}
	}

	var b strings.Builder
	prefix := SliceByColumn(bg, 0, col)
	b.WriteString(prefix)
	if pad := col - VisibleWidth(prefix); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(sgrReset)

	if VisibleWidth(fg) > w {
		fg = SliceByColumn(fg, 0, w)
	}
	b.WriteString(PadRight(fg, w))
	b.WriteString(sgrReset)

	if rest := SliceByColumn(bg, col+w, VisibleWidth(bg)); rest != "" {
		b.WriteString(rest)
		b.WriteString(sgrReset)
	}
	return b.String()
}

// segment represents either a visible grapheme cluster or an ANSI sequence.
type segment struct {
	text  string
	col   int
	width int
	isSeq bool
}

// extractSegments breaks a string into segments of visible text and ANSI sequences.
func extractSegments(s string) []segment {
	var segs []segment
	col := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			segs = append(segs, segment{text: s[i:end], col: col, isSeq: true})
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		segs = append(segs, segment{text: cluster, col: col, width: w})
		col += w
		i += len(s[i:]) - len(rest)
	}
	return segs
}
