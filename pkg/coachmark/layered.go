// ABOUTME: Layered variant: dims the frame, repaints the anchor above the dim, adds a content box
// ABOUTME: A connector at the target column joins the box to the anchor

package coachmark

import (
	"strings"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/component"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

const connector = "│"

// Layered lifts the anchor out of a dimmed frame and explains it in a box
// below (or above) it.
type Layered struct {
	target    float64
	showBelow bool
	dim       theme.Color

	anchor Anchor
	view   *layeredView
}

// NewLayered returns a layered mark with its box below the anchor.
func NewLayered() *Layered {
	return &Layered{target: 0.5, showBelow: true}
}

// WithTarget sets the connector at fraction f of the anchor width.
func (l *Layered) WithTarget(f float64) *Layered {
	l.target = min(max(f, 0), 1)
	return l
}

// WithShowBelow chooses the preferred side for the box.
func (l *Layered) WithShowBelow(below bool) *Layered {
	l.showBelow = below
	return l
}

// WithDim sets the dim layer color; the zero Color uses the theme's.
func (l *Layered) WithDim(c theme.Color) *Layered {
	l.dim = c
	return l
}

func (l *Layered) Name() string { return "layered" }

func (l *Layered) BuildContent(content Content, cfg Config) tui.Component {
	p := theme.Current().Palette
	dim := l.dim
	if dim.IsTransparent() {
		dim = p.OverlayDim
	}
	body := content.Build(textColorOr(cfg, p.BubbleText), cfg.IsRightToLeft())
	l.view = &layeredView{
		box:   component.NewBox(body).WithHorizontalPadding(1).WithBackground(p.BubbleBg),
		dim:   dim,
		arrow: p.Arrow,
	}
	return l.view
}

func (l *Layered) CreateSurface(view tui.Component, cfg Config) Surface {
	return cfg.newSurface(view)
}

// AnchorDimens remembers the anchor so its drawing cache can be repainted.
func (l *Layered) AnchorDimens(a Anchor) Dimens[int] {
	l.anchor = a
	return DimensOf(a.Bounds())
}

func (l *Layered) OverlayDimens(_ Dimens[int], layout Layout) Dimens[int] {
	return layout.frameDimens()
}

// UpdateView sizes the box with PopupWidth, places box plus connector row
// with PopupPosition, and aims the connector with ArrowOffset.
func (l *Layered) UpdateView(overlay, anchor Dimens[int], layout Layout) {
	v := l.view
	v.width, v.height = overlay.Width, overlay.Height
	v.anchor = Dimens[int]{X: anchor.X - overlay.X, Y: anchor.Y - overlay.Y, Width: anchor.Width, Height: anchor.Height}
	v.cache = nil
	if l.anchor != nil {
		if c := l.anchor.DrawingCache(); !blankCache(c) {
			v.cache = c
		}
	}

	limit := layout.maxWidth()
	natural := width.MaxWidth(tui.RenderLines(v.box, limit))
	target := MirrorTarget(l.target, layout.RTL)
	w := PopupWidth(arrowWidth+2, limit, natural, anchor.Width, target)
	v.lines = tui.RenderLines(v.box, w)
	h := len(v.lines)

	// One extra row carries the connector.
	p := layout.position(anchor, w, h+1, l.showBelow)
	v.boxX = p.X - overlay.X
	if p.Y >= anchor.Y+anchor.Height {
		v.connectorY = p.Y - overlay.Y
		v.boxY = v.connectorY + 1
	} else {
		v.boxY = p.Y - overlay.Y
		v.connectorY = v.boxY + h
	}
	v.connectorX = p.X - overlay.X + ArrowOffset(target, anchor.Width, arrowWidth, anchor.X, p.X, 0, w-arrowWidth)
}

// layeredView draws dim, anchor copy, connector, and box, in that order.
type layeredView struct {
	box   *component.Box
	dim   theme.Color
	arrow theme.Color

	width, height int
	anchor        Dimens[int]
	cache         []string
	lines         []string
	boxX, boxY    int
	connectorX    int
	connectorY    int
}

func (v *layeredView) Render(out *tui.RenderBuffer, w int) {
	rows := dimRows(min(v.width, w), v.height, v.dim)
	if len(v.cache) > 0 {
		place(rows, v.cache, v.anchor.X, v.anchor.Y)
	}
	if v.connectorY >= 0 && v.connectorY < len(rows) {
		rows[v.connectorY] = width.Splice(rows[v.connectorY], v.arrow.Apply(connector), v.connectorX, arrowWidth)
	}
	place(rows, v.lines, v.boxX, v.boxY)
	out.WriteLines(rows)
}

func (v *layeredView) Invalidate() {
	v.box.Invalidate()
}

// TransparentSpans shows the live anchor through the dim when there is no
// drawing cache to repaint.
func (v *layeredView) TransparentSpans(row int) []tui.Span {
	if len(v.cache) > 0 || row < v.anchor.Y || row >= v.anchor.Y+v.anchor.Height {
		return nil
	}
	s, ok := clipSpan(tui.Span{Start: v.anchor.X, End: v.anchor.X + v.anchor.Width}, v.width)
	if !ok {
		return nil
	}
	return []tui.Span{s}
}

// blankCache reports whether every cached line is empty.
func blankCache(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(width.StripANSI(l)) != "" {
			return false
		}
	}
	return true
}

var (
	_ Variant     = (*Layered)(nil)
	_ tui.Punched = (*layeredView)(nil)
)
