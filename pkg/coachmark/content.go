// ABOUTME: Content descriptors for coach marks: plain text, markdown, or a custom component
// ABOUTME: Only text is textual, so only text accepts a configured text color

package coachmark

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/component"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

type contentKind int

const (
	kindNone contentKind = iota
	kindText
	kindMarkdown
	kindView
)

// Content describes what a coach mark shows. The zero value is empty and
// rejected by NewConfig.
type Content struct {
	kind contentKind
	text string
	view tui.Component
}

// Text is word-wrapped plain text.
func Text(msg string) Content {
	return Content{kind: kindText, text: msg}
}

// Markdown is rendered through glamour at the overlay's width.
func Markdown(md string) Content {
	return Content{kind: kindMarkdown, text: md}
}

// View shows a caller-built component. A nil component is empty content.
func View(c tui.Component) Content {
	if c == nil {
		return Content{}
	}
	return Content{kind: kindView, view: c}
}

// IsTextual reports whether the content is plain text.
func (c Content) IsTextual() bool { return c.kind == kindText }

// IsZero reports whether the content is empty.
func (c Content) IsZero() bool { return c.kind == kindNone }

// Build returns the component for c. Text gets textColor and is
// right-aligned in right-to-left layouts.
func (c Content) Build(textColor theme.Color, rtl bool) tui.Component {
	switch c.kind {
	case kindText:
		t := component.NewText(c.text).SetWrap(true)
		t.SetColor(textColor)
		if rtl {
			t.SetAlign(component.AlignRight)
		}
		return t
	case kindMarkdown:
		return &markdownView{source: c.text}
	case kindView:
		return c.view
	default:
		return component.NewText("")
	}
}

// markdownView renders markdown with glamour, caching the lines per width.
type markdownView struct {
	source string

	mu    sync.Mutex
	width int
	lines []string
}

func (m *markdownView) Render(out *tui.RenderBuffer, w int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lines == nil || m.width != w {
		m.lines = renderMarkdown(m.source, w)
		m.width = w
	}
	out.WriteLines(m.lines)
}

func (m *markdownView) Invalidate() {
	m.mu.Lock()
	m.lines = nil
	m.mu.Unlock()
}

// renderMarkdown renders md wrapped at w. Glamour pads every line to the
// wrap width; that padding is trimmed so the overlay can shrink-wrap.
func renderMarkdown(md string, w int) []string {
	if md == "" || w <= 0 {
		return []string{""}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		// Fallback: raw text
		return width.WrapWords(md, w)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return width.WrapWords(md, w)
	}

	rendered = strings.Trim(rendered, "\n")
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = trimTrailingSpace(line)
	}
	return lines
}

func trimTrailingSpace(line string) string {
	plain := width.StripANSI(line)
	trimmed := strings.TrimRight(plain, " ")
	switch {
	case len(trimmed) == len(plain):
		return line
	case trimmed == "":
		return ""
	}
	return width.SliceByColumn(line, 0, width.VisibleWidth(trimmed)) + "\x1b[0m"
}
