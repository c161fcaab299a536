// ABOUTME: Tests for the placement math: width growth, vertical flip, horizontal clamp, pointer offset
// ABOUTME: Includes the worked anchor examples used to check the whole pipeline

package coachmark

import "testing"

func TestPopupWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                         string
		minW, maxW, desired, anchorW int
		target                       float64
		want                         int
	}{
		{"desired wins at centre", 20, 300, 250, 200, 0.5, 250},
		{"clamped to max", 20, 300, 400, 200, 0.5, 300},
		{"grows for off-centre target", 20, 300, 100, 200, 0.0, 220},
		{"grows for right edge target", 20, 300, 100, 200, 1.0, 220},
		{"quarter target", 10, 300, 50, 200, 0.25, 110},
		{"max below min", 20, 10, 5, 0, 0.5, 10},
		{"zero anchor", 5, 80, 30, 0, 0.1, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PopupWidth(tt.minW, tt.maxW, tt.desired, tt.anchorW, tt.target)
			if got != tt.want {
				t.Errorf("PopupWidth = %d, want %d", got, tt.want)
			}
			if got > tt.maxW {
				t.Errorf("PopupWidth = %d exceeds max %d", got, tt.maxW)
			}
		})
	}
}

func TestPopupPosition(t *testing.T) {
	t.Parallel()

	anchor := Dimens[int]{X: 100, Y: 500, Width: 200, Height: 50}

	tests := []struct {
		name      string
		anchor    Dimens[int]
		w, h      int
		showBelow bool
		want      Point
	}{
		{"above fits", anchor, 250, 80, false, Point{X: 75, Y: 420}},
		{"above flips below", Dimens[int]{X: 100, Y: 30, Width: 200, Height: 50}, 250, 80, false, Point{X: 75, Y: 80}},
		{"below fits", anchor, 250, 80, true, Point{X: 75, Y: 550}},
		{"below flips above", Dimens[int]{X: 100, Y: 700, Width: 200, Height: 50}, 250, 80, true, Point{X: 75, Y: 620}},
		{"clamped left", Dimens[int]{X: 0, Y: 500, Width: 20, Height: 10}, 100, 10, false, Point{X: 10, Y: 490}},
		{"clamped right", Dimens[int]{X: 380, Y: 500, Width: 20, Height: 10}, 100, 10, false, Point{X: 290, Y: 490}},
		{"too wide keeps left padding", anchor, 395, 80, false, Point{X: 10, Y: 420}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PopupPosition(tt.anchor, tt.w, tt.h, 400, 800, 10, tt.showBelow)
			if got != tt.want {
				t.Errorf("PopupPosition = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPopupPosition_BothSidesOverflow(t *testing.T) {
	t.Parallel()

	// Neither side fits: the fallback side is used without further checks.
	anchor := Dimens[int]{X: 0, Y: 5, Width: 10, Height: 10}
	got := PopupPosition(anchor, 10, 20, 100, 20, 0, false)
	if got.Y != 15 {
		t.Errorf("Y = %d, want 15", got.Y)
	}
	got = PopupPosition(anchor, 10, 20, 100, 20, 0, true)
	if got.Y != -15 {
		t.Errorf("Y = %d, want -15", got.Y)
	}
}

func TestArrowOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		target               float64
		anchorW, arrowW      int
		anchorX, overlayX    int
		minMargin, maxMargin int
		want                 int
	}{
		{"centre", 0.5, 200, 20, 100, 75, 0, 230, 115},
		{"left edge clamps to min", 0.0, 200, 20, 100, 100, 5, 200, 5},
		{"right edge clamps to max", 1.0, 200, 20, 100, 75, 0, 200, 200},
		{"crossed bounds, below min", 0.5, 10, 1, 0, 0, 8, 4, 8},
		{"crossed bounds, at or above min", 1.0, 10, 0, 0, 0, 8, 4, 4},
		{"odd arrow width", 0.5, 10, 3, 0, 0, 0, 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ArrowOffset(tt.target, tt.anchorW, tt.arrowW, tt.anchorX, tt.overlayX, tt.minMargin, tt.maxMargin)
			if got != tt.want {
				t.Errorf("ArrowOffset = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeometry_EndToEnd(t *testing.T) {
	t.Parallel()

	anchor := Dimens[int]{X: 100, Y: 500, Width: 200, Height: 50}
	w := PopupWidth(20, 300, 250, anchor.Width, 0.5)
	if w != 250 {
		t.Fatalf("width = %d, want 250", w)
	}
	p := PopupPosition(anchor, w, 80, 400, 800, 10, false)
	if p != (Point{X: 75, Y: 420}) {
		t.Fatalf("position = %+v, want {75 420}", p)
	}
	arrow := ArrowOffset(0.5, anchor.Width, 2, anchor.X, p.X, 1, w-3)
	// Anchor centre is column 200; the pointer's left cell sits one before it.
	if got := p.X + arrow; got != 199 {
		t.Errorf("pointer column = %d, want 199", got)
	}
}
