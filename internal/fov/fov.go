// Package fov computes field of view over a world.Grid and folds it into the
// grid's explored state.
//
// Every algorithm measures the radius with Chebyshev distance: a cell is in
// range when max(|dx|, |dy|) <= radius. A radius of zero or less means the
// whole map is in range.
package fov

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samdwyer/zonarl/internal/world"
)

// ErrUnknownAlgorithm is returned by ByName for an unrecognised selector.
var ErrUnknownAlgorithm = errors.New("unknown fov algorithm")

// Algorithm computes the cells lit from an origin.
//
// Implementations return every cell they consider visible within radius,
// opaque cells included; Compute applies the radius bound and the light-walls
// rule on top. The result must depend only on the grid's transparency, the
// origin and the radius.
type Algorithm interface {
	Name() string
	Lit(grid *world.Grid, origin world.Point, radius int) []world.Point
}

// Algorithm selectors accepted by ByName.
const (
	AlgorithmBasic     = "basic"
	AlgorithmShadow    = "shadow"
	AlgorithmSymmetric = "symmetric"
)

// ByName returns the algorithm for a configuration selector.
func ByName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case AlgorithmBasic:
		return RayCast{}, nil
	case AlgorithmShadow, "":
		return Shadowcast{}, nil
	case AlgorithmSymmetric:
		return NewSymmetric(), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// Names lists the accepted algorithm selectors.
func Names() []string {
	return []string{AlgorithmBasic, AlgorithmShadow, AlgorithmSymmetric}
}

// Compute returns the set of cells visible from origin.
//
// The origin is always visible. When lightWalls is false, opaque cells are
// left out of the result. No cell farther than radius (Chebyshev) is returned.
func Compute(grid *world.Grid, origin world.Point, radius int, lightWalls bool, alg Algorithm) (*VisibleSet, error) {
	if !grid.InBounds(origin.X, origin.Y) {
		return nil, &world.OutOfBoundsError{X: origin.X, Y: origin.Y, Width: grid.Width(), Height: grid.Height()}
	}

	radius = effectiveRadius(grid, radius)
	visible := NewVisibleSet()
	visible.add(origin)

	for _, p := range alg.Lit(grid, origin, radius) {
		if p == origin || !grid.InBounds(p.X, p.Y) {
			continue
		}
		if chebyshev(origin, p) > radius {
			continue
		}
		if !lightWalls && !grid.IsTransparent(p.X, p.Y) {
			continue
		}
		visible.add(p)
	}

	return visible, nil
}

// effectiveRadius maps a non-positive radius to one covering the whole grid.
func effectiveRadius(grid *world.Grid, radius int) int {
	if radius > 0 {
		return radius
	}
	return max(grid.Width(), grid.Height())
}

// chebyshev returns the chessboard distance between two points.
func chebyshev(a, b world.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sortPoints orders points row by row.
func sortPoints(points []world.Point) {
	slices.SortFunc(points, func(a, b world.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}
