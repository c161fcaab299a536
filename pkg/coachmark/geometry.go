// ABOUTME: Pure placement math: overlay width, above/below position, and pointer offset
// ABOUTME: Total for finite non-negative inputs; callers reject negative sizes

package coachmark

// PopupWidth returns the overlay width. The overlay grows past desiredWidth
// when the pointer at fraction target of the anchor would otherwise fall
// outside it, and never exceeds maxWidth.
//
//	clearance = 2*|0.5-target|*anchorWidth + minWidth
//	width     = min(max(clearance, desiredWidth), maxWidth)
func PopupWidth(minWidth, maxWidth, desiredWidth, anchorWidth int, target float64) int {
	off := 0.5 - target
	if off < 0 {
		off = -off
	}
	clearance := int(2*off*float64(anchorWidth)) + minWidth
	return min(max(clearance, desiredWidth), maxWidth)
}

// PopupPosition centres an overlay of width w and height h over anchor and
// flips it vertically when the preferred side does not fit. The horizontal
// position is clamped into [padding, screenWidth-w-padding]; when that
// interval is empty the left bound wins.
func PopupPosition(anchor Dimens[int], w, h, screenWidth, screenHeight, padding int, showBelow bool) Point {
	x := anchor.X + (anchor.Width-w)/2

	above := anchor.Y - h
	below := anchor.Y + anchor.Height

	var y int
	if showBelow {
		y = below
		if below+h > screenHeight {
			y = above
		}
	} else {
		y = above
		if above < 0 {
			y = below
		}
	}

	x = min(x, screenWidth-w-padding)
	x = max(x, padding)
	return Point{X: x, Y: y}
}

// ArrowOffset returns the pointer's offset from the overlay's left edge so
// it indicates fraction target of the anchor, clamped to [minMargin, maxMargin].
// The lower bound is checked first: with crossed bounds a margin below
// minMargin gives minMargin and any other gives maxMargin.
func ArrowOffset(target float64, anchorWidth, arrowWidth, anchorX, overlayX, minMargin, maxMargin int) int {
	margin := int(target*float64(anchorWidth)) - arrowWidth/2 + anchorX - overlayX
	switch {
	case margin < minMargin:
		return minMargin
	case margin > maxMargin:
		return maxMargin
	}
	return margin
}
