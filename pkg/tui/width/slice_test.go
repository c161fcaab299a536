// ABOUTME: Tests for column slicing and overlay splicing
// ABOUTME: Covers plain text, styled text, padding, and off-screen columns

package width

import "testing"

func TestSliceByColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{name: "middle", input: "abcdef", start: 1, end: 4, want: "bcd"},
		{name: "empty range", input: "abc", start: 2, end: 2, want: ""},
		{name: "past end", input: "abc", start: 1, end: 10, want: "bc"},
		{name: "carries style", input: "\x1b[31mabc", start: 1, end: 2, want: "\x1b[31mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SliceByColumn(tt.input, tt.start, tt.end); got != tt.want {
				t.Errorf("SliceByColumn(%q, %d, %d) = %q, want %q", tt.input, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSplice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bg, fg string
		col, w int
		want   string
	}{
		{name: "middle", bg: "..........", fg: "XX", col: 3, w: 2, want: "..."},
		{name: "short background", bg: "..", fg: "XX", col: 4, w: 2, want: "..  "},
		{name: "zero width", bg: "abc", fg: "XX", col: 1, w: 0, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Splice(tt.bg, tt.fg, tt.col, tt.w)
			if tt.w == 0 {
				if got != tt.want {
					t.Errorf("Splice = %q, want %q", got, tt.want)
				}
				return
			}
			plain := StripANSI(got)
			if plain[:len(tt.want)] != tt.want {
				t.Errorf("Splice prefix = %q, want %q", plain, tt.want)
			}
			if plain[tt.col:tt.col+tt.w] != tt.fg {
				t.Errorf("Splice overlay = %q, want %q at col %d", plain, tt.fg, tt.col)
			}
		})
	}
}

func TestSplice_PreservesSuffix(t *testing.T) {
	t.Parallel()

	got := StripANSI(Splice("0123456789", "ab", 2, 4))
	if got != "01ab  6789" {
		t.Errorf("Splice = %q, want %q", got, "01ab  6789")
	}
}

func TestSplice_NegativeColumn(t *testing.T) {
	t.Parallel()

	got := StripANSI(Splice("0123456789", "abcd", -2, 4))
	if got != "cd23456789" {
		t.Errorf("Splice = %q, want %q", got, "cd23456789")
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q, want %q", got, "ab  ")
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight = %q, want unchanged", got)
	}
}
