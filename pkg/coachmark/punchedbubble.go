// ABOUTME: Punched-bubble variant: full-frame dim with a rounded-rect hole plus a pointing bubble
// ABOUTME: Combines the bubble's geometry with punch-hole click routing

package coachmark

import (
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

// PunchedBubble dims the frame, cuts a rounded rectangle around the anchor,
// and points a bubble at it.
type PunchedBubble struct {
	target       float64
	showBelow    bool
	extend       int
	cornerRadius int
	overlayColor theme.Color
	onTarget     func()
	onGlobal     func()

	view *punchedBubbleView
}

// NewPunchedBubble returns a punched bubble with a one-cell margin around
// the anchor and square corners.
func NewPunchedBubble() *PunchedBubble {
	return &PunchedBubble{target: 0.5, extend: 1}
}

// WithTarget points the bubble at fraction f of the anchor width.
func (p *PunchedBubble) WithTarget(f float64) *PunchedBubble {
	p.target = min(max(f, 0), 1)
	return p
}

// WithShowBelow prefers placing the bubble below the anchor.
func (p *PunchedBubble) WithShowBelow(below bool) *PunchedBubble {
	p.showBelow = below
	return p
}

// WithExtendPunchHole grows the hole by cells on every side.
func (p *PunchedBubble) WithExtendPunchHole(cells int) *PunchedBubble {
	p.extend = max(cells, 0)
	return p
}

// WithCornerRadius rounds the hole's corners by cutting radius cells
// diagonally from each.
func (p *PunchedBubble) WithCornerRadius(radius int) *PunchedBubble {
	p.cornerRadius = max(radius, 0)
	return p
}

// WithOverlayColor sets the dim layer; the zero Color uses the theme's.
func (p *PunchedBubble) WithOverlayColor(c theme.Color) *PunchedBubble {
	p.overlayColor = c
	return p
}

// OnTargetClick runs fn for presses inside the hole's rectangle, corners
// included. The mark stays up.
func (p *PunchedBubble) OnTargetClick(fn func()) *PunchedBubble {
	p.onTarget = fn
	return p
}

// OnGlobalClick runs fn for other presses.
func (p *PunchedBubble) OnGlobalClick(fn func()) *PunchedBubble {
	p.onGlobal = fn
	return p
}

func (p *PunchedBubble) Name() string { return "punched_bubble" }

func (p *PunchedBubble) BuildContent(content Content, cfg Config) tui.Component {
	pal := theme.Current().Palette
	dim := p.overlayColor
	if dim.IsTransparent() {
		dim = pal.OverlayDim
	}
	bubble := newBubbleView(content.Build(textColorOr(cfg, pal.BubbleText), cfg.IsRightToLeft()), pal.BubbleBg, pal.Border)
	bubble.rowFill = dim
	p.view = &punchedBubbleView{
		bubble:   bubble,
		dim:      dim,
		radius:   p.cornerRadius,
		onTarget: p.onTarget,
		onGlobal: p.onGlobal,
	}
	return p.view
}

func (p *PunchedBubble) CreateSurface(view tui.Component, cfg Config) Surface {
	return cfg.newSurface(view)
}

func (p *PunchedBubble) AnchorDimens(a Anchor) Dimens[int] {
	return DimensOf(a.Bounds())
}

func (p *PunchedBubble) OverlayDimens(_ Dimens[int], l Layout) Dimens[int] {
	return l.frameDimens()
}

// UpdateView cuts the hole around the anchor and places the bubble next to
// it, keeping the bubble clear of the hole's margin.
func (p *PunchedBubble) UpdateView(overlay, anchor Dimens[int], l Layout) {
	v := p.view
	v.width, v.height = overlay.Width, overlay.Height

	hole := anchor.Rect().Inset(-p.extend)
	hole.X -= overlay.X
	hole.Y -= overlay.Y
	v.hole = hole

	target := MirrorTarget(p.target, l.RTL)
	limit := l.maxWidth()
	grown := Dimens[int]{X: anchor.X, Y: anchor.Y - p.extend, Width: anchor.Width, Height: anchor.Height + 2*p.extend}
	w, h := v.bubble.size(anchor, limit, 2+arrowWidth, target)
	pos := l.position(grown, w, h, p.showBelow)
	bubble := Dimens[int]{X: pos.X, Y: pos.Y, Width: w, Height: h}
	v.bubble.aim(bubble, grown, target, 1)
	v.bubbleX, v.bubbleY = pos.X-overlay.X, pos.Y-overlay.Y
}

type punchedBubbleView struct {
	bubble   *bubbleView
	dim      theme.Color
	radius   int
	onTarget func()
	onGlobal func()

	width, height    int
	hole             tui.Rect
	bubbleX, bubbleY int
}

func (v *punchedBubbleView) Render(out *tui.RenderBuffer, w int) {
	rows := dimRows(min(v.width, w), v.height, v.dim)
	place(rows, tui.RenderLines(v.bubble, v.bubble.width), v.bubbleX, v.bubbleY)
	out.WriteLines(rows)
}

func (v *punchedBubbleView) Invalidate() {
	v.bubble.Invalidate()
}

// TransparentSpans returns the hole's columns on row. Rows within radius of
// the top or bottom edge are narrowed by the remaining corner depth.
func (v *punchedBubbleView) TransparentSpans(row int) []tui.Span {
	if row < v.hole.Y || row >= v.hole.Bottom() || v.hole.Empty() {
		return nil
	}
	edge := min(row-v.hole.Y, v.hole.Bottom()-1-row)
	inset := max(v.radius-edge, 0)
	s, ok := clipSpan(tui.Span{Start: v.hole.X + inset, End: v.hole.Right() - inset}, v.width)
	if !ok {
		return nil
	}
	return []tui.Span{s}
}

// Click routes like the punch hole but hit-tests the whole hole rectangle,
// so a press in a rounded-off corner still counts as on target.
func (v *punchedBubbleView) Click(x, y int) bool {
	return routeClick(v.hole.Contains(x, y), v.onTarget, v.onGlobal)
}

var (
	_ Variant       = (*PunchedBubble)(nil)
	_ tui.Punched   = (*punchedBubbleView)(nil)
	_ tui.Clickable = (*punchedBubbleView)(nil)
)
