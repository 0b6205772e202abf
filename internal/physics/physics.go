// Package physics provides axis-aligned collision and bounds utilities.
package physics

// Rect is an axis-aligned bounding box in logical field coordinates.
// Y grows downward, so Top < Bottom for a non-empty rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Overlaps reports whether two rectangles strictly intersect.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left < b.Right &&
		a.Right > b.Left &&
		a.Top < b.Bottom &&
		a.Bottom > b.Top
}

// Clamp limits v to the range [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
