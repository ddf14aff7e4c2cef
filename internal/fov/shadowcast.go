package fov

import "github.com/samdwyer/zonarl/internal/world"

// octant transform matrices.
// A (col, row) sweep offset maps to a world offset via:
//
//	worldX = ox + col*xx + row*xy
//	worldY = oy + col*yx + row*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Shadowcast is recursive shadowcasting over eight octants.
type Shadowcast struct{}

// Name returns the selector for this algorithm.
func (Shadowcast) Name() string {
	return AlgorithmShadow
}

// Lit returns the cells reached by light cast from origin.
func (Shadowcast) Lit(grid *world.Grid, origin world.Point, radius int) []world.Point {
	c := &caster{grid: grid, origin: origin, radius: radius}
	for _, m := range octants {
		c.cast(1, 1.0, 0.0, m[0], m[1], m[2], m[3])
	}
	return c.lit
}

type caster struct {
	grid   *world.Grid
	origin world.Point
	radius int
	lit    []world.Point
}

// cast scans one octant from row outward between the start and end slopes.
// Every row index is at most radius and every column offset is at most the
// row index, so lit cells never exceed the Chebyshev radius.
func (c *caster) cast(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	newStart := start

	for j := row; j <= c.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := c.origin.X + dx*xx + dy*xy
			wy := c.origin.Y + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if c.grid.InBounds(wx, wy) {
				c.lit = append(c.lit, world.Point{X: wx, Y: wy})
			}

			opaque := !c.grid.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < c.radius {
				blocked = true
				c.cast(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
