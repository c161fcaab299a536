// ABOUTME: Dimens value type: x, y, width, height of an anchor or overlay in screen cells
// ABOUTME: Generic over numeric types so sub-cell variants can measure in fractions

package coachmark

import (
	"errors"
	"fmt"

	"github.com/mauromedda/coachmark-go/pkg/tui"
)

// ErrNegativeSize is returned when building Dimens with a negative width or height.
var ErrNegativeSize = errors.New("coachmark: negative size")

// Number is any numeric type Dimens can measure in.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a screen cell.
type Point struct {
	X, Y int
}

// Dimens is an immutable rectangle. Width and Height are never negative
// when built through NewDimens.
type Dimens[T Number] struct {
	X, Y          T
	Width, Height T
}

// NewDimens builds Dimens, rejecting negative sizes.
func NewDimens[T Number](x, y, width, height T) (Dimens[T], error) {
	if width < 0 || height < 0 {
		return Dimens[T]{}, fmt.Errorf("%w: %vx%v", ErrNegativeSize, width, height)
	}
	return Dimens[T]{X: x, Y: y, Width: width, Height: height}, nil
}

// DimensOf converts a tui.Rect. Negative sizes are clamped to zero.
func DimensOf(r tui.Rect) Dimens[int] {
	return Dimens[int]{X: r.X, Y: r.Y, Width: max(r.Width, 0), Height: max(r.Height, 0)}
}

// Pos returns the top-left corner truncated to whole cells.
func (d Dimens[T]) Pos() Point {
	return Point{X: int(d.X), Y: int(d.Y)}
}

// Rect returns d as a tui.Rect truncated to whole cells.
func (d Dimens[T]) Rect() tui.Rect {
	return tui.Rect{X: int(d.X), Y: int(d.Y), Width: int(d.Width), Height: int(d.Height)}
}

func (d Dimens[T]) String() string {
	return fmt.Sprintf("%vx%v@%v,%v", d.Width, d.Height, d.X, d.Y)
}
