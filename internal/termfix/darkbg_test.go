// ABOUTME: Tests for reading the terminal background from COLORFGBG
// ABOUTME: Table-driven over the two- and three-field forms

package termfix

import "testing"

func TestDarkBackground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"15;0", true},
		{"0;15", false},
		{"0;default;15", false},
		{"7;8", true},
		{"0;7", false},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := DarkBackground(tt.in); got != tt.want {
				t.Errorf("DarkBackground(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
