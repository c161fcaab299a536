// ABOUTME: Tests for region markers: Mark round-trips through ExtractRegions
// ABOUTME: Covers inline, multi-row, styled, wide-rune, and malformed marker input

package tui

import "testing"

func TestExtractRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     []string
		wantLines []string
		want      map[string]Rect
	}{
		{
			name:      "inline region",
			lines:     []string{"File  " + Mark("save", "[Save]") + "  Quit"},
			wantLines: []string{"File  [Save]  Quit"},
			want:      map[string]Rect{"save": {X: 6, Y: 0, Width: 6, Height: 1}},
		},
		{
			name:      "multi-row block",
			lines:     []string{"header", Mark("box", "ab"), Mark("box", "abcd   ")},
			wantLines: []string{"header", "ab", "abcd   "},
			want:      map[string]Rect{"box": {X: 0, Y: 1, Width: 4, Height: 2}},
		},
		{
			name:      "styled text has zero-width escapes",
			lines:     []string{"\x1b[1mx\x1b[0m" + Mark("b", "\x1b[31mred\x1b[0m")},
			wantLines: []string{"\x1b[1mx\x1b[0m\x1b[31mred\x1b[0m"},
			want:      map[string]Rect{"b": {X: 1, Y: 0, Width: 3, Height: 1}},
		},
		{
			name:      "wide runes",
			lines:     []string{"日本" + Mark("w", "語")},
			wantLines: []string{"日本語"},
			want:      map[string]Rect{"w": {X: 4, Y: 0, Width: 2, Height: 1}},
		},
		{
			name:      "unclosed region is ignored",
			lines:     []string{RegionStart("x") + "abc"},
			wantLines: []string{"abc"},
			want:      nil,
		},
		{
			name:      "foreign APC kept",
			lines:     []string{"a\x1b_cmZ\x1b\\b"},
			wantLines: []string{"a\x1b_cmZ\x1b\\b"},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := append([]string(nil), tt.lines...)
			got := ExtractRegions(lines)

			if len(got) != len(tt.want) {
				t.Fatalf("ExtractRegions() = %v, want %v", got, tt.want)
			}
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("region %q = %+v, want %+v", id, got[id], want)
				}
			}
			for i := range lines {
				if lines[i] != tt.wantLines[i] {
					t.Errorf("line %d = %q, want %q", i, lines[i], tt.wantLines[i])
				}
			}
		})
	}
}

func TestMark_KeepsTrailingSpacesOutside(t *testing.T) {
	t.Parallel()

	got := Mark("id", "ok  ")
	want := RegionStart("id") + "ok" + RegionEnd("id") + "  "
	if got != want {
		t.Errorf("Mark() = %q, want %q", got, want)
	}
}
