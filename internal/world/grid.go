package world

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a fixed-size two-dimensional store of tiles.
// Tiles are addressed with 0 <= x < Width and 0 <= y < Height.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "width", Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ConfigError{Field: "height", Reason: "must be positive"}
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall()
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return y*g.width + x, nil
}

// At returns a copy of the tile at the given position.
func (g *Grid) At(x, y int) (Tile, error) {
	i, err := g.index(x, y)
	if err != nil {
		return Tile{}, err
	}
	return g.tiles[i], nil
}

// IsBlocked reports whether movement into (x, y) is refused.
func (g *Grid) IsBlocked(x, y int) (bool, error) {
	i, err := g.index(x, y)
	if err != nil {
		return false, err
	}
	return g.tiles[i].Blocked, nil
}

// IsTransparent reports whether light passes through (x, y).
// Cells outside the grid are opaque.
func (g *Grid) IsTransparent(x, y int) bool {
	i, err := g.index(x, y)
	if err != nil {
		return false
	}
	return !g.tiles[i].BlocksSight
}

// IsPassable returns true if the given position can be walked on.
// Cells outside the grid are not passable.
func (g *Grid) IsPassable(x, y int) bool {
	i, err := g.index(x, y)
	if err != nil {
		return false
	}
	return g.tiles[i].IsPassable()
}

// MarkExplored sets the explored flag on (x, y). The flag is never cleared.
func (g *Grid) MarkExplored(x, y int) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.tiles[i].Explored = true
	return nil
}

// ExploredCount returns the number of explored cells.
func (g *Grid) ExploredCount() int {
	n := 0
	for _, t := range g.tiles {
		if t.Explored {
			n++
		}
	}
	return n
}

// carve opens (x, y), keeping its explored flag. Callers have already clipped the coordinate.
func (g *Grid) carve(x, y int) {
	t := &g.tiles[y*g.width+x]
	t.Blocked = false
	t.BlocksSight = false
}
