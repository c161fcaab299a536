// ABOUTME: Bubble variant: a bordered speech bubble with a pointer row aimed at the anchor
// ABOUTME: Width, placement, and pointer offset come straight from the geometry functions

package coachmark

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

const (
	arrowUp    = "▲"
	arrowDown  = "▼"
	arrowWidth = 1

	// bubbleChrome is the border plus one column of padding on each side.
	bubbleChrome = 4
	// bubbleRows is the top and bottom border plus the pointer row.
	bubbleRows = 3
)

// Bubble shows content in a bubble above (or below) the anchor with a
// pointer at a fraction of the anchor's width.
type Bubble struct {
	target         float64
	showBelow      bool
	color          theme.Color
	maxWidth       int
	minArrowMargin int

	view *bubbleView
}

// NewBubble returns a bubble pointing at the anchor's centre, shown above
// it when there is room.
func NewBubble() *Bubble {
	return &Bubble{target: 0.5, minArrowMargin: 1}
}

// WithTarget points at fraction f of the anchor's width, clamped to [0, 1].
func (b *Bubble) WithTarget(f float64) *Bubble {
	b.target = min(max(f, 0), 1)
	return b
}

// WithShowBelow prefers placing the bubble below the anchor.
func (b *Bubble) WithShowBelow(below bool) *Bubble {
	b.showBelow = below
	return b
}

// WithColor sets the bubble fill; the zero Color uses the theme's.
func (b *Bubble) WithColor(c theme.Color) *Bubble {
	b.color = c
	return b
}

// WithMaxWidth caps the bubble width in columns; zero means the frame width.
func (b *Bubble) WithMaxWidth(cols int) *Bubble {
	b.maxWidth = max(cols, 0)
	return b
}

// WithMinArrowMargin keeps the pointer at least cols columns from either
// edge of the bubble. The border corner needs one.
func (b *Bubble) WithMinArrowMargin(cols int) *Bubble {
	b.minArrowMargin = max(cols, 1)
	return b
}

func (b *Bubble) Name() string { return "bubble" }

func (b *Bubble) BuildContent(content Content, cfg Config) tui.Component {
	p := theme.Current().Palette
	fill := b.color
	if fill.IsTransparent() {
		fill = p.BubbleBg
	}
	fg := textColorOr(cfg, p.BubbleText)
	b.view = newBubbleView(content.Build(fg, cfg.IsRightToLeft()), fill, p.Border)
	return b.view
}

func (b *Bubble) CreateSurface(view tui.Component, cfg Config) Surface {
	return cfg.newSurface(view)
}

func (b *Bubble) AnchorDimens(a Anchor) Dimens[int] {
	return DimensOf(a.Bounds())
}

func (b *Bubble) OverlayDimens(anchor Dimens[int], l Layout) Dimens[int] {
	w, h := b.view.size(anchor, b.limit(l), b.minWidth(), MirrorTarget(b.target, l.RTL))
	p := l.position(anchor, w, h, b.showBelow)
	return Dimens[int]{X: p.X, Y: p.Y, Width: w, Height: h}
}

func (b *Bubble) UpdateView(overlay, anchor Dimens[int], l Layout) {
	b.view.aim(overlay, anchor, MirrorTarget(b.target, l.RTL), b.minArrowMargin)
}

// limit is the widest the bubble may grow.
func (b *Bubble) limit(l Layout) int {
	limit := l.maxWidth()
	if b.maxWidth > 0 {
		limit = min(limit, b.maxWidth)
	}
	return limit
}

func (b *Bubble) minWidth() int {
	return 2*b.minArrowMargin + arrowWidth
}

// bubbleView draws the bubble body and its pointer row.
type bubbleView struct {
	content tui.Component
	fill    theme.Color
	border  theme.Color

	// Set by aim on every layout pass.
	width    int
	height   int
	arrow    int
	arrowTop bool
	// rowFill paints the pointer row beside the arrow; transparent lets
	// the window show through.
	rowFill theme.Color
}

func newBubbleView(content tui.Component, fill, border theme.Color) *bubbleView {
	return &bubbleView{content: content, fill: fill, border: border}
}

// size returns the bubble's width and height for the anchor.
func (v *bubbleView) size(anchor Dimens[int], limit, minWidth int, target float64) (int, int) {
	natural := width.MaxWidth(v.body(max(limit-bubbleChrome, 1))) + bubbleChrome
	w := PopupWidth(minWidth, limit, natural, anchor.Width, target)
	return w, len(v.body(max(w-bubbleChrome, 1))) + bubbleRows
}

// aim records the bubble's geometry and points the arrow at the anchor.
// The arrow sits on top when the bubble is below the anchor.
func (v *bubbleView) aim(overlay, anchor Dimens[int], target float64, minMargin int) {
	v.width = overlay.Width
	v.height = overlay.Height
	v.arrowTop = overlay.Y > anchor.Y
	maxMargin := overlay.Width - minMargin - arrowWidth
	v.arrow = ArrowOffset(target, anchor.Width, arrowWidth, anchor.X, overlay.X, minMargin, maxMargin)
}

func (v *bubbleView) body(inner int) []string {
	return tui.RenderLines(v.content, inner)
}

func (v *bubbleView) Render(out *tui.RenderBuffer, w int) {
	bw := v.width
	if bw <= 0 || bw > w {
		bw = w
	}
	if bw < bubbleChrome {
		return
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(v.border.LipglossColor()).
		BorderBackground(v.fill.LipglossColor()).
		Background(v.fill.LipglossColor()).
		Padding(0, 1).
		Width(bw - 2)
	box := strings.Split(style.Render(strings.Join(v.body(bw-bubbleChrome), "\n")), "\n")

	if v.arrowTop {
		out.WriteLine(v.arrowRow(bw))
		out.WriteLines(box)
		return
	}
	out.WriteLines(box)
	out.WriteLine(v.arrowRow(bw))
}

func (v *bubbleView) Invalidate() {
	v.content.Invalidate()
}

func (v *bubbleView) arrowRow(bw int) string {
	glyph := arrowDown
	if v.arrowTop {
		glyph = arrowUp
	}
	arrow := lipgloss.NewStyle().Foreground(v.fill.LipglossColor()).Render(glyph)
	left := v.rowFill.Apply(strings.Repeat(" ", max(v.arrow, 0)))
	right := v.rowFill.Apply(strings.Repeat(" ", max(bw-v.arrow-arrowWidth, 0)))
	return left + arrow + right
}

// arrowRowIndex is the pointer row within the bubble's own lines.
func (v *bubbleView) arrowRowIndex() int {
	if v.arrowTop {
		return 0
	}
	return v.height - 1
}

// TransparentSpans exposes the window on both sides of the pointer.
func (v *bubbleView) TransparentSpans(row int) []tui.Span {
	if row != v.arrowRowIndex() || !v.rowFill.IsTransparent() {
		return nil
	}
	return []tui.Span{
		{Start: 0, End: v.arrow},
		{Start: v.arrow + arrowWidth, End: v.width},
	}
}

var (
	_ Variant     = (*Bubble)(nil)
	_ tui.Punched = (*bubbleView)(nil)
)
