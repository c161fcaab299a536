// ABOUTME: Tests for basic TUI components: Text and Box
// ABOUTME: Verifies wrapping, alignment, color, padding, and shrink-wrapped width

package component

import (
	"testing"

	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
	"github.com/mauromedda/coachmark-go/pkg/tui/width"
)

func TestText_Render(t *testing.T) {
	t.Parallel()

	comp := NewText("hello\nworld")
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	comp.Render(buf, 80)

	if buf.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", buf.Len())
	}
	if buf.Lines[0] != "hello" || buf.Lines[1] != "world" {
		t.Errorf("unexpected lines: %v", buf.Lines)
	}
}

func TestText_SetContent(t *testing.T) {
	t.Parallel()

	comp := NewText("old")
	comp.SetContent("new")

	lines := tui.RenderLines(comp, 80)
	if len(lines) != 1 || lines[0] != "new" {
		t.Errorf("expected 'new', got %v", lines)
	}
}

func TestText_Wrap(t *testing.T) {
	t.Parallel()

	comp := NewText("tap here to save").SetWrap(true)
	lines := tui.RenderLines(comp, 8)

	if len(lines) < 2 {
		t.Fatalf("expected wrapped lines, got %v", lines)
	}
	for _, l := range lines {
		if w := width.VisibleWidth(l); w > 8 {
			t.Errorf("line %q width %d exceeds 8", l, w)
		}
	}
}

func TestText_AlignRight(t *testing.T) {
	t.Parallel()

	comp := NewText("ab\nabcd")
	comp.SetAlign(AlignRight)
	lines := tui.RenderLines(comp, 80)

	if lines[0] != "  ab" || lines[1] != "abcd" {
		t.Errorf("right-aligned lines = %q", lines)
	}
}

func TestText_Color(t *testing.T) {
	t.Parallel()

	comp := NewText("hi")
	comp.SetColor(theme.NewColor("\x1b[31m"))
	lines := tui.RenderLines(comp, 80)

	if lines[0] != "\x1b[31mhi\x1b[0m" {
		t.Errorf("colored line = %q", lines[0])
	}
	if comp.Color().Code() != "\x1b[31m" {
		t.Errorf("Color() = %q", comp.Color().Code())
	}
}

func TestBox_Render(t *testing.T) {
	t.Parallel()

	box := NewBox(NewText("content")).WithPadding(1)
	lines := tui.RenderLines(box, 40)

	// 1 top pad + 1 content + 1 bottom pad
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	for i, l := range lines {
		if w := width.VisibleWidth(l); w != 9 {
			t.Errorf("line %d width = %d, want 9 (shrink-wrapped)", i, w)
		}
	}
	if lines[1] != " content " {
		t.Errorf("content line = %q", lines[1])
	}
}

func TestBox_Background(t *testing.T) {
	t.Parallel()

	bg := theme.NewColor("\x1b[44m")
	box := NewBox(NewText("x")).WithBackground(bg)
	lines := tui.RenderLines(box, 10)

	if lines[0] != "\x1b[44mx\x1b[0m" {
		t.Errorf("line = %q", lines[0])
	}
}

func TestBox_TooNarrow(t *testing.T) {
	t.Parallel()

	box := NewBox(NewText("x")).WithHorizontalPadding(3)
	if lines := tui.RenderLines(box, 6); len(lines) != 0 {
		t.Errorf("expected nothing when padding eats the width, got %v", lines)
	}
}
