package fov

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zonarl/internal/telemetry"
	"github.com/samdwyer/zonarl/internal/world"
)

// DefaultRadius is the default field of view radius.
const DefaultRadius = 10

// Engine tracks the visible set for one observer and folds every visible
// cell into the grid's explored state.
//
// Update only recomputes when the origin differs from the one used for the
// previous computation, or after Invalidate.
type Engine struct {
	grid       *world.Grid
	alg        Algorithm
	radius     int
	lightWalls bool

	visible    *VisibleSet
	origin     world.Point
	valid      bool
	recomputes int
}

// NewEngine creates an engine over grid. Nothing is visible until the first Update.
func NewEngine(grid *world.Grid, alg Algorithm, radius int, lightWalls bool) *Engine {
	return &Engine{
		grid:       grid,
		alg:        alg,
		radius:     radius,
		lightWalls: lightWalls,
		visible:    NewVisibleSet(),
	}
}

// Update recomputes the visible set from origin if the origin moved.
// It reports whether a recompute happened.
func (e *Engine) Update(ctx context.Context, origin world.Point) (bool, error) {
	if e.valid && origin == e.origin {
		return false, nil
	}

	tracer := telemetry.Tracer("fov")
	_, span := tracer.Start(ctx, "fov.recompute")
	defer span.End()

	visible, err := Compute(e.grid, origin, e.radius, e.lightWalls, e.alg)
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("recompute fov: %w", err)
	}

	for _, p := range visible.Points() {
		if err := e.grid.MarkExplored(p.X, p.Y); err != nil {
			return false, err
		}
	}

	e.visible = visible
	e.origin = origin
	e.valid = true
	e.recomputes++

	span.SetAttributes(
		attribute.String("fov.algorithm", e.alg.Name()),
		attribute.Int("fov.radius", e.radius),
		attribute.Int("fov.origin_x", origin.X),
		attribute.Int("fov.origin_y", origin.Y),
		attribute.Int("fov.visible_count", visible.Len()),
	)

	return true, nil
}

// Invalidate forces the next Update to recompute.
func (e *Engine) Invalidate() {
	e.valid = false
}

// IsVisible reports whether (x, y) was visible at the latest recompute.
// Cells outside the grid are never visible.
func (e *Engine) IsVisible(x, y int) bool {
	return e.visible.Contains(x, y)
}

// Visible returns the latest visible set.
func (e *Engine) Visible() *VisibleSet {
	return e.visible
}

// Recomputes returns how many times the visible set has been computed.
func (e *Engine) Recomputes() int {
	return e.recomputes
}

// Algorithm returns the configured algorithm.
func (e *Engine) Algorithm() Algorithm {
	return e.alg
}
