package entity

import (
	"fmt"

	"github.com/samdwyer/zonarl/internal/world"
)

// TryMove moves the entity by (dx, dy) unless the target tile is blocked.
// It reports whether the entity moved. A target outside the grid is an error
// and leaves the entity where it was.
func TryMove(e *Entity, dx, dy int, grid *world.Grid) (bool, error) {
	tx, ty := e.X+dx, e.Y+dy

	blocked, err := grid.IsBlocked(tx, ty)
	if err != nil {
		return false, fmt.Errorf("move %s by (%d,%d): %w", e.Name, dx, dy, err)
	}
	if blocked {
		return false, nil
	}

	e.X, e.Y = tx, ty
	return true, nil
}
