// ABOUTME: Text display component: static or word-wrapped lines with color and alignment
// ABOUTME: Serves as anchor bodies in hosts and as the textual content of coach marks

package component

import (
	"strings"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

// Align selects horizontal alignment of text lines within the text block.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Text renders text content. Lines are split on newlines and, when Wrap is
// enabled, word-wrapped to the render width.
type Text struct {
	content string
	color   theme.Color
	align   Align
	wrap    bool
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// SetContent updates the displayed text.
func (t *Text) SetContent(content string) {
	t.content = content
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// SetColor sets the text color; the zero Color keeps terminal defaults.
func (t *Text) SetColor(c theme.Color) {
	t.color = c
}

// Color returns the text color.
func (t *Text) Color() theme.Color {
	return t.color
}

// SetAlign sets line alignment within the widest line.
func (t *Text) SetAlign(a Align) {
	t.align = a
}

// SetWrap enables word wrapping at the render width.
func (t *Text) SetWrap(wrap bool) *Text {
	t.wrap = wrap
	return t
}

// Render writes the text lines into the buffer.
func (t *Text) Render(out *tui.RenderBuffer, w int) {
	var lines []string
	if t.wrap && w > 0 {
		lines = width.WrapWords(t.content, w)
	} else {
		lines = splitLines(t.content)
	}

	block := width.MaxWidth(lines)
	for _, line := range lines {
		if gap := block - width.VisibleWidth(line); gap > 0 {
			switch t.align {
			case AlignRight:
				line = strings.Repeat(" ", gap) + line
			case AlignCenter:
				line = strings.Repeat(" ", gap/2) + line + strings.Repeat(" ", gap-gap/2)
			}
		}
		out.WriteLine(t.color.Apply(line))
	}
}

// Invalidate is a no-op; Text renders from its content every frame.
func (t *Text) Invalidate() {}

// splitLines splits a string by newlines.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
