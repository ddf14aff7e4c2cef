// Package world provides dungeon generation and map management.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked     bool // Movement into the cell is refused
	BlocksSight bool // Light does not pass through the cell
	Explored    bool // The cell has been visible at least once
}

// Wall returns an impassable, opaque tile. Grids start filled with walls.
func Wall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// Floor returns an open tile.
func Floor() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.BlocksSight {
		return '#'
	}
	return '.'
}
