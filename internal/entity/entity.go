// Package entity provides the player, monsters and the rules for placing and moving them.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zonarl/internal/world"
)

// PlayerSlot is the collection index reserved for the player.
const PlayerSlot = 0

// Entity is anything drawn on top of the map: the player or a monster.
type Entity struct {
	X, Y           int         // Position in the dungeon
	Glyph          rune        // Display character
	Color          tcell.Color // Foreground color
	Name           string      // Display name
	Species        string      // Species ID, empty for the player
	BlocksMovement bool        // Other entities cannot share the cell
	Alive          bool
}

// NewPlayer creates the player entity at the given position.
func NewPlayer(x, y int) *Entity {
	return &Entity{
		X:              x,
		Y:              y,
		Glyph:          '@',
		Color:          tcell.ColorWhite,
		Name:           "player",
		BlocksMovement: true,
		Alive:          true,
	}
}

// Position returns the entity's current coordinates.
func (e *Entity) Position() world.Point {
	return world.Point{X: e.X, Y: e.Y}
}

// Collection is the ordered set of entities on a level.
// Slot 0 holds the player; monsters follow in placement order.
type Collection struct {
	entities []*Entity
}

// NewCollection creates a collection with the player in slot 0.
func NewCollection(player *Entity) *Collection {
	return &Collection{entities: []*Entity{player}}
}

// Add appends an entity after the existing ones.
func (c *Collection) Add(e *Entity) {
	c.entities = append(c.entities, e)
}

// Player returns the entity in the player slot.
func (c *Collection) Player() *Entity {
	return c.entities[PlayerSlot]
}

// Len returns the number of entities, player included.
func (c *Collection) Len() int {
	return len(c.entities)
}

// At returns the entity in the given slot, or nil.
func (c *Collection) At(slot int) *Entity {
	if slot < 0 || slot >= len(c.entities) {
		return nil
	}
	return c.entities[slot]
}

// Snapshot returns copies of all entities in slot order.
// Mutating the result does not affect the collection.
func (c *Collection) Snapshot() []Entity {
	out := make([]Entity, len(c.entities))
	for i, e := range c.entities {
		out[i] = *e
	}
	return out
}

// Monsters returns every entity after the player slot.
func (c *Collection) Monsters() []*Entity {
	return c.entities[PlayerSlot+1:]
}

// MonsterAt returns the first living monster at (x, y), or nil.
func (c *Collection) MonsterAt(x, y int) *Entity {
	for _, e := range c.Monsters() {
		if e.Alive && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}
