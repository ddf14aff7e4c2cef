package world

// CarveRoom opens the interior of the room, leaving its border as wall.
// Cells outside the grid are skipped.
func (g *Grid) CarveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			if g.InBounds(x, y) {
				g.carve(x, y)
			}
		}
	}
}

// CarveHorizontalTunnel opens every cell on row y between x1 and x2 inclusive.
func (g *Grid) CarveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if g.InBounds(x, y) {
			g.carve(x, y)
		}
	}
}

// CarveVerticalTunnel opens every cell on column x between y1 and y2 inclusive.
func (g *Grid) CarveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if g.InBounds(x, y) {
			g.carve(x, y)
		}
	}
}
