package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/zonarl/internal/world"
)

// VisibleSet is the set of cells visible in one frame.
type VisibleSet struct {
	set mapset.Set[world.Point]
}

// NewVisibleSet returns an empty set.
func NewVisibleSet() *VisibleSet {
	return &VisibleSet{set: mapset.New[world.Point]()}
}

func (v *VisibleSet) add(p world.Point) {
	v.set.Put(p)
}

// Contains reports whether (x, y) is visible.
func (v *VisibleSet) Contains(x, y int) bool {
	if v == nil {
		return false
	}
	return v.set.Has(world.Point{X: x, Y: y})
}

// Len returns the number of visible cells.
func (v *VisibleSet) Len() int {
	if v == nil {
		return 0
	}
	return v.set.Size()
}

// Points returns the visible cells ordered row by row.
func (v *VisibleSet) Points() []world.Point {
	if v == nil {
		return nil
	}
	points := make([]world.Point, 0, v.set.Size())
	v.set.Each(func(p world.Point) {
		points = append(points, p)
	})
	sortPoints(points)
	return points
}
