package fov

import "github.com/samdwyer/zonarl/internal/world"

// RayCast traces a Bresenham line from the origin to every cell in range.
// A cell is lit when every cell strictly between it and the origin is transparent.
type RayCast struct{}

// Name returns the selector for this algorithm.
func (RayCast) Name() string {
	return AlgorithmBasic
}

// Lit returns the cells with a clear line of sight from origin.
func (RayCast) Lit(grid *world.Grid, origin world.Point, radius int) []world.Point {
	lit := make([]world.Point, 0, (2*radius+1)*(2*radius+1))

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			target := origin.Add(dx, dy)
			if !grid.InBounds(target.X, target.Y) {
				continue
			}
			if hasLineOfSight(grid, origin, target) {
				lit = append(lit, target)
			}
		}
	}
	return lit
}

// hasLineOfSight steps along the longer axis from a to b and fails on the
// first opaque cell before b.
func hasLineOfSight(grid *world.Grid, a, b world.Point) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)
	x, y := a.X, a.Y

	if absDx >= absDy {
		err := 2*absDy - absDx
		for x != b.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if x == b.X && y == b.Y {
				return true
			}
			if !grid.IsTransparent(x, y) {
				return false
			}
		}
	} else {
		err := 2*absDx - absDy
		for y != b.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx

			if x == b.X && y == b.Y {
				return true
			}
			if !grid.IsTransparent(x, y) {
				return false
			}
		}
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
