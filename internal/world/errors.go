package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// OutOfBoundsError records the offending coordinate and the grid extents.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("(%d,%d) outside %dx%d grid: %v", e.X, e.Y, e.Width, e.Height, ErrOutOfBounds)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// ConfigError reports generation parameters that can never produce a map.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid dungeon config: %s %s", e.Field, e.Reason)
}
