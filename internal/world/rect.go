package world

// Rect is a half-open rectangle in grid coordinates: X2 = X1 + width, Y2 = Y1 + height.
// The cells on X1, X2, Y1 and Y2 form the room's wall border; the floor is the interior.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect builds a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns X2 - X1.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the integer midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects returns true if this rectangle touches or overlaps another.
// Edges are compared inclusively, so rooms sharing a wall line intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}

// InInterior returns true if (x, y) is a floor cell of the room:
// X1 < x < X2 and Y1 < y < Y2.
func (r Rect) InInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// InteriorArea returns the number of floor cells the room carves.
func (r Rect) InteriorArea() int {
	w, h := r.Width()-1, r.Height()-1
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
