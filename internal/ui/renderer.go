package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zonarl/internal/entity"
	"github.com/samdwyer/zonarl/internal/world"
)

// Map colors: lit cells are in view, dark cells are explored but out of view.
var (
	ColorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	ColorLightWall   = tcell.NewRGBColor(130, 110, 50)
	ColorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	ColorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// View is the read-only level state the renderer draws.
type View interface {
	Width() int
	Height() int
	TileAt(x, y int) (world.Tile, error)
	IsVisible(x, y int) bool
	Entities() []entity.Entity
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the visible entities and a status line below the map.
// A terminal too small for the map and status line gets a notice instead.
func (r *Renderer) Render(view View, status string) {
	r.screen.Clear()

	if w, h := r.screen.Size(); w < view.Width() || h < view.Height()+1 {
		r.RenderMessage(fmt.Sprintf("terminal too small: need %dx%d", view.Width(), view.Height()+1), 0)
		r.screen.Show()
		return
	}

	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			tile, err := view.TileAt(x, y)
			if err != nil {
				continue
			}
			visible := view.IsVisible(x, y)
			if !visible && !tile.Explored {
				continue // never seen
			}
			r.screen.SetContent(x, y, tile.Rune(), TileStyle(tile, visible))
		}
	}

	// Player last so monsters sharing its cell never hide it
	entities := view.Entities()
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if i != entity.PlayerSlot && !view.IsVisible(e.X, e.Y) {
			continue
		}
		style := TileStyle(world.Floor(), true).Foreground(e.Color)
		if i == entity.PlayerSlot {
			style = style.Bold(true)
		}
		r.screen.SetContent(e.X, e.Y, e.Glyph, style)
	}

	r.RenderMessage(status, view.Height())

	r.screen.Show()
}

// TileStyle returns the style for a tile that is either in view or remembered.
func TileStyle(tile world.Tile, visible bool) tcell.Style {
	var bg tcell.Color
	switch {
	case tile.BlocksSight && visible:
		bg = ColorLightWall
	case tile.BlocksSight:
		bg = ColorDarkWall
	case visible:
		bg = ColorLightGround
	default:
		bg = ColorDarkGround
	}
	return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
