// ABOUTME: Variant strategy contract: content, surface flags, and geometry per overlay kind
// ABOUTME: Layout carries the frame snapshot taken at show time into every layout pass

package coachmark

import (
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

// Layout is the context of one layout pass. Frame is the visible frame
// captured when the coach mark was shown and is not refreshed afterwards.
type Layout struct {
	Frame   tui.Rect
	Padding int
	RTL     bool
}

// Variant is one kind of coach mark. A Variant instance serves exactly one
// CoachMark; it keeps the visual state of that mark between passes.
type Variant interface {
	// Name identifies the variant in logs and metrics.
	Name() string

	// BuildContent turns the content descriptor into the overlay's view.
	BuildContent(content Content, cfg Config) tui.Component

	// CreateSurface wraps view in a surface with variant-specific flags.
	CreateSurface(view tui.Component, cfg Config) Surface

	// AnchorDimens measures the anchor in screen cells.
	AnchorDimens(anchor Anchor) Dimens[int]

	// OverlayDimens places the overlay for the measured anchor.
	OverlayDimens(anchor Dimens[int], layout Layout) Dimens[int]

	// UpdateView applies freshly computed dimensions to the view.
	UpdateView(overlay, anchor Dimens[int], layout Layout)
}

// maxWidth is the widest an overlay may be inside the padded frame.
func (l Layout) maxWidth() int {
	return max(l.Frame.Width-2*l.Padding, 0)
}

// position runs PopupPosition in frame-relative coordinates and returns a
// screen position.
func (l Layout) position(anchor Dimens[int], w, h int, showBelow bool) Point {
	rel := anchor
	rel.X -= l.Frame.X
	rel.Y -= l.Frame.Y
	p := PopupPosition(rel, w, h, l.Frame.Width, l.Frame.Height, l.Padding, showBelow)
	return Point{X: p.X + l.Frame.X, Y: p.Y + l.Frame.Y}
}

// frameDimens is the overlay for variants that cover the whole frame.
func (l Layout) frameDimens() Dimens[int] {
	return DimensOf(l.Frame)
}

// textColorOr returns the configured text color, or def when none was set.
func textColorOr(cfg Config, def theme.Color) theme.Color {
	if c, ok := cfg.TextColor(); ok {
		return c
	}
	return def
}
