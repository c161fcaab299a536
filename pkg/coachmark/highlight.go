// ABOUTME: Highlight variant: a rounded frame drawn around the anchor with a short caption
// ABOUTME: The interior stays transparent and the surface never takes input

package coachmark

import (
	"strings"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// Highlight outlines the anchor without covering it. Its caption is the
// first line of the content, cut to fit the top border.
type Highlight struct {
	color theme.Color
	view  *highlightView
}

// NewHighlight returns a highlight in the theme's highlight color.
func NewHighlight() *Highlight {
	return &Highlight{}
}

// WithColor sets the frame color; the zero Color uses the theme's.
func (h *Highlight) WithColor(c theme.Color) *Highlight {
	h.color = c
	return h
}

func (h *Highlight) Name() string { return "highlight" }

func (h *Highlight) BuildContent(content Content, cfg Config) tui.Component {
	c := h.color
	if c.IsTransparent() {
		c = theme.Current().Palette.Highlight
	}
	h.view = &highlightView{
		content: content.Build(textColorOr(cfg, c), cfg.IsRightToLeft()),
		color:   c,
		rtl:     cfg.IsRightToLeft(),
	}
	return h.view
}

// CreateSurface returns a surface that lets presses through to the window.
func (h *Highlight) CreateSurface(view tui.Component, cfg Config) Surface {
	s := cfg.newSurface(view)
	s.SetTouchable(false)
	return s
}

func (h *Highlight) AnchorDimens(a Anchor) Dimens[int] {
	return DimensOf(a.Bounds())
}

// OverlayDimens grows the anchor by one cell on every side, clipped to the frame.
func (h *Highlight) OverlayDimens(anchor Dimens[int], l Layout) Dimens[int] {
	r := anchor.Rect().Inset(-1)
	f := l.Frame
	x0, y0 := max(r.X, f.X), max(r.Y, f.Y)
	x1, y1 := min(r.Right(), f.Right()), min(r.Bottom(), f.Bottom())
	return Dimens[int]{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

func (h *Highlight) UpdateView(overlay, _ Dimens[int], _ Layout) {
	h.view.width, h.view.height = overlay.Width, overlay.Height
}

type highlightView struct {
	content tui.Component
	color   theme.Color
	rtl     bool

	width, height int
}

func (v *highlightView) Render(out *tui.RenderBuffer, w int) {
	bw := min(v.width, w)
	if bw < 2 || v.height < 2 {
		return
	}
	out.WriteLine(v.color.Apply(v.top(bw)))
	side := v.color.Apply("│")
	mid := side + strings.Repeat(" ", bw-2) + side
	for i := 0; i < v.height-2; i++ {
		out.WriteLine(mid)
	}
	out.WriteLine(v.color.Apply("╰" + strings.Repeat("─", bw-2) + "╯"))
}

// top is the upper border with the caption set into it.
func (v *highlightView) top(bw int) string {
	inner := bw - 2
	caption := v.caption(inner - 4)
	if caption == "" {
		return "╭" + strings.Repeat("─", inner) + "╮"
	}
	caption = " " + caption + " "
	fill := strings.Repeat("─", inner-1-width.VisibleWidth(caption))
	if v.rtl {
		return "╭" + fill + caption + "─╮"
	}
	return "╭─" + caption + fill + "╮"
}

func (v *highlightView) caption(limit int) string {
	if limit < 1 {
		return ""
	}
	lines := tui.RenderLines(v.content, limit)
	if len(lines) == 0 {
		return ""
	}
	s := strings.TrimSpace(width.StripANSI(lines[0]))
	if width.VisibleWidth(s) > limit {
		s = width.SliceByColumn(s, 0, limit)
	}
	return s
}

func (v *highlightView) Invalidate() {
	v.content.Invalidate()
}

// TransparentSpans keeps everything inside the frame visible.
func (v *highlightView) TransparentSpans(row int) []tui.Span {
	if row <= 0 || row >= v.height-1 || v.width < 3 {
		return nil
	}
	return []tui.Span{{Start: 1, End: v.width - 1}}
}

var (
	_ Variant     = (*Highlight)(nil)
	_ tui.Punched = (*highlightView)(nil)
)
