// ABOUTME: Punch-hole variant: full-frame dim layer with an elliptical window onto the target
// ABOUTME: Content sits above or below the hole; clicks route to target or global listeners

package coachmark

import (
	"math"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// ContentPlacement says where punch-hole content goes relative to the hole.
type ContentPlacement int

const (
	// ContentAuto places content in the larger half of the frame.
	ContentAuto ContentPlacement = iota
	ContentAbove
	ContentBelow
)

// PunchHole dims the whole frame except an elliptical hole around a target.
type PunchHole struct {
	target       Anchor
	placement    ContentPlacement
	overlayColor theme.Color
	holePadding  int
	onTarget     func()
	onGlobal     func()

	view *punchHoleView
}

// NewPunchHole returns a punch hole around the coach mark's anchor.
func NewPunchHole() *PunchHole {
	return &PunchHole{holePadding: 1}
}

// WithTarget reveals a through the hole instead of the coach mark's anchor.
func (p *PunchHole) WithTarget(a Anchor) *PunchHole {
	if !isNilAnchor(a) {
		p.target = a
	}
	return p
}

// WithContentPlacement fixes the content above or below the hole.
func (p *PunchHole) WithContentPlacement(c ContentPlacement) *PunchHole {
	p.placement = c
	return p
}

// WithOverlayColor sets the dim layer; the zero Color uses the theme's.
func (p *PunchHole) WithOverlayColor(c theme.Color) *PunchHole {
	p.overlayColor = c
	return p
}

// WithHolePadding grows the hole by rows vertically (twice that horizontally).
func (p *PunchHole) WithHolePadding(rows int) *PunchHole {
	p.holePadding = max(rows, 0)
	return p
}

// OnTargetClick runs fn for presses inside the hole. The mark stays up;
// fn decides whether to dismiss it.
func (p *PunchHole) OnTargetClick(fn func()) *PunchHole {
	p.onTarget = fn
	return p
}

// OnGlobalClick runs fn for presses not taken by the target listener.
func (p *PunchHole) OnGlobalClick(fn func()) *PunchHole {
	p.onGlobal = fn
	return p
}

func (p *PunchHole) Name() string { return "punch_hole" }

func (p *PunchHole) BuildContent(content Content, cfg Config) tui.Component {
	pal := theme.Current().Palette
	dim := p.overlayColor
	if dim.IsTransparent() {
		dim = pal.OverlayDim
	}
	p.view = &punchHoleView{
		content:   content.Build(textColorOr(cfg, pal.Primary), cfg.IsRightToLeft()),
		dim:       dim,
		placement: p.placement,
		onTarget:  p.onTarget,
		onGlobal:  p.onGlobal,
	}
	return p.view
}

func (p *PunchHole) CreateSurface(view tui.Component, cfg Config) Surface {
	return cfg.newSurface(view)
}

// AnchorDimens measures the hole's target.
func (p *PunchHole) AnchorDimens(a Anchor) Dimens[int] {
	if p.target != nil {
		return DimensOf(p.target.Bounds())
	}
	return DimensOf(a.Bounds())
}

func (p *PunchHole) OverlayDimens(_ Dimens[int], l Layout) Dimens[int] {
	return l.frameDimens()
}

// UpdateView centres the hole on the target and places the content. The
// vertical radius is half the target height plus padding; the horizontal
// radius doubles it, since cells are about twice as tall as wide.
func (p *PunchHole) UpdateView(overlay, anchor Dimens[int], l Layout) {
	v := p.view
	v.width, v.height = overlay.Width, overlay.Height
	v.cx = float64(anchor.X-overlay.X) + float64(anchor.Width)/2
	v.cy = float64(anchor.Y-overlay.Y) + float64(anchor.Height)/2
	v.ry = float64(anchor.Height)/2 + float64(p.holePadding)
	v.rx = max(2*v.ry, float64(anchor.Width)/2+float64(2*p.holePadding))
	v.layoutContent(l.Padding)
}

// punchHoleView paints the dim layer with content and exposes the hole.
type punchHoleView struct {
	content   tui.Component
	dim       theme.Color
	placement ContentPlacement
	onTarget  func()
	onGlobal  func()

	width, height  int
	cx, cy, rx, ry float64
	lines          []string
	contentX       int
	contentY       int
}

// layoutContent renders the content and picks its rows clear of the hole.
func (v *punchHoleView) layoutContent(padding int) {
	inner := max(v.width-2*padding, 1)
	v.lines = tui.RenderLines(v.content, inner)
	h := len(v.lines)
	w := width.MaxWidth(v.lines)

	holeTop := int(math.Floor(v.cy - v.ry))
	holeBottom := int(math.Ceil(v.cy + v.ry))

	above := v.placement == ContentAbove
	if v.placement == ContentAuto {
		above = holeTop > v.height-holeBottom
	}
	if above {
		v.contentY = holeTop - h - 1
	} else {
		v.contentY = holeBottom + 1
	}
	v.contentY = min(max(v.contentY, 0), max(v.height-h, 0))

	x := int(math.Round(v.cx)) - w/2
	x = min(x, v.width-w-padding)
	v.contentX = max(x, padding)
}

func (v *punchHoleView) Render(out *tui.RenderBuffer, w int) {
	rows := dimRows(min(v.width, w), v.height, v.dim)
	block := make([]string, len(v.lines))
	for i, line := range v.lines {
		block[i] = paint(v.dim, line)
	}
	place(rows, block, v.contentX, v.contentY)
	out.WriteLines(rows)
}

func (v *punchHoleView) Invalidate() {
	v.content.Invalidate()
}

func (v *punchHoleView) TransparentSpans(row int) []tui.Span {
	s, ok := ellipseSpan(row, v.cx, v.cy, v.rx, v.ry, v.width)
	if !ok {
		return nil
	}
	return []tui.Span{s}
}

// Click notifies the target listener for presses inside the hole,
// otherwise the global listener. With neither it declines, and the surface
// turns the press into a dismiss request.
func (v *punchHoleView) Click(x, y int) bool {
	return routeClick(spanContains(v.TransparentSpans(y), x), v.onTarget, v.onGlobal)
}

// routeClick calls the listener a press belongs to and reports whether one
// took it.
func routeClick(inHole bool, onTarget, onGlobal func()) bool {
	switch {
	case inHole && onTarget != nil:
		onTarget()
	case onGlobal != nil:
		onGlobal()
	default:
		return false
	}
	return true
}

var (
	_ Variant       = (*PunchHole)(nil)
	_ tui.Punched   = (*punchHoleView)(nil)
	_ tui.Clickable = (*punchHoleView)(nil)
)
