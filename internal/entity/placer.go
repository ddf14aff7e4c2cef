package entity

import (
	"math/rand"

	"github.com/samdwyer/zonarl/internal/gamedata"
	"github.com/samdwyer/zonarl/internal/world"
)

// DefaultMaxRoomMonsters caps how many monsters a single room receives.
const DefaultMaxRoomMonsters = 3

// Sink receives newly placed entities.
type Sink interface {
	Add(e *Entity)
}

// Placer populates accepted rooms with monsters.
type Placer struct {
	MaxRoomMonsters int
	Species         *gamedata.SpeciesRegistry
}

// NewPlacer creates a placer drawing species from the given registry.
func NewPlacer(species *gamedata.SpeciesRegistry, maxRoomMonsters int) *Placer {
	return &Placer{
		MaxRoomMonsters: maxRoomMonsters,
		Species:         species,
	}
}

// Place adds between 0 and MaxRoomMonsters monsters to the room's interior and
// returns how many were placed. Positions are drawn independently, so two
// monsters may share a cell. A placer without species places nothing.
func (p *Placer) Place(room world.Rect, rng *rand.Rand, sink Sink) int {
	if p.Species == nil || p.MaxRoomMonsters <= 0 || room.InteriorArea() == 0 {
		return 0
	}

	count := rng.Intn(p.MaxRoomMonsters + 1)
	for range count {
		x := room.X1 + 1 + rng.Intn(room.Width()-1)
		y := room.Y1 + 1 + rng.Intn(room.Height()-1)
		sink.Add(NewMonster(p.Species.SpawnRandom(rng), x, y))
	}
	return count
}

// NewMonster creates a living monster of the given species.
func NewMonster(def *gamedata.SpeciesDef, x, y int) *Entity {
	return &Entity{
		X:              x,
		Y:              y,
		Glyph:          def.GlyphRune(),
		Color:          def.TCellColor(),
		Name:           def.Name,
		Species:        def.ID,
		BlocksMovement: true,
		Alive:          true,
	}
}
