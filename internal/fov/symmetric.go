package fov

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/samdwyer/zonarl/internal/world"
)

// Symmetric is symmetric shadow casting backed by gruid's rl.FOV.
// If a cell is visible from the origin, the origin is visible from that cell.
type Symmetric struct {
	fov           *rl.FOV
	width, height int
}

// NewSymmetric returns a symmetric shadow caster. Its buffers are sized on first use.
func NewSymmetric() *Symmetric {
	return &Symmetric{}
}

// Name returns the selector for this algorithm.
func (s *Symmetric) Name() string {
	return AlgorithmSymmetric
}

// Lit returns the cells visible from origin within radius.
func (s *Symmetric) Lit(grid *world.Grid, origin world.Point, radius int) []world.Point {
	if s.fov == nil || s.width != grid.Width() || s.height != grid.Height() {
		s.width, s.height = grid.Width(), grid.Height()
		s.fov = rl.NewFOV(gruid.NewRange(0, 0, s.width, s.height))
	}

	passable := func(p gruid.Point) bool {
		return grid.IsTransparent(p.X, p.Y)
	}
	src := gruid.Point{X: origin.X, Y: origin.Y}

	points := s.fov.SSCVisionMap(src, radius, passable, false)
	lit := make([]world.Point, 0, len(points))
	for _, p := range points {
		lit = append(lit, world.Point{X: p.X, Y: p.Y})
	}
	return lit
}
