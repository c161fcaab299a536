// ABOUTME: Box component that wraps a child with padding and an optional background
// ABOUTME: Shrink-wraps to the child's widest line so popups can size themselves from it

package component

import (
	"strings"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// Box wraps a child component with padding.
type Box struct {
	Child    tui.Component
	PadTop   int
	PadBot   int
	PadLeft  int
	PadRight int
	Bg       theme.Color
}

// NewBox creates a Box around the given child component.
func NewBox(child tui.Component) *Box {
	return &Box{Child: child}
}

// WithPadding sets uniform padding on all sides.
func (b *Box) WithPadding(pad int) *Box {
	b.PadTop = pad
	b.PadBot = pad
	b.PadLeft = pad
	b.PadRight = pad
	return b
}

// WithHorizontalPadding sets left and right padding only.
func (b *Box) WithHorizontalPadding(pad int) *Box {
	b.PadLeft = pad
	b.PadRight = pad
	return b
}

// WithBackground sets the fill color.
func (b *Box) WithBackground(c theme.Color) *Box {
	b.Bg = c
	return b
}

// Render draws the child with padding applied. Every line is exactly as
// wide as the widest child line plus horizontal padding.
func (b *Box) Render(out *tui.RenderBuffer, w int) {
	innerWidth := w - b.PadLeft - b.PadRight
	if innerWidth <= 0 {
		return
	}

	lines := tui.RenderLines(b.Child, innerWidth)
	inner := width.MaxWidth(lines)
	boxWidth := inner + b.PadLeft + b.PadRight

	for i := 0; i < b.PadTop; i++ {
		out.WriteLine(b.fill(strings.Repeat(" ", boxWidth)))
	}

	leftPad := strings.Repeat(" ", b.PadLeft)
	rightPad := strings.Repeat(" ", b.PadRight)
	for _, line := range lines {
		out.WriteLine(b.fill(leftPad + width.PadRight(line, inner) + rightPad))
	}

	for i := 0; i < b.PadBot; i++ {
		out.WriteLine(b.fill(strings.Repeat(" ", boxWidth)))
	}
}

// Invalidate invalidates the child.
func (b *Box) Invalidate() {
	if b.Child != nil {
		b.Child.Invalidate()
	}
}

func (b *Box) fill(line string) string {
	if b.Bg.IsTransparent() {
		return line
	}
	return b.Bg.Code() + strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+b.Bg.Code()) + "\x1b[0m"
}
