package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/zonarl/internal/gamedata"
	"github.com/samdwyer/zonarl/internal/world"
)

// openRoomGrid returns a 5x5 grid whose 3x3 interior is open.
func openRoomGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(5, 5)
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}
	g.CarveRoom(world.NewRect(0, 0, 4, 4))
	return g
}

func testRegistry(t *testing.T) *gamedata.SpeciesRegistry {
	t.Helper()
	registry, err := gamedata.NewSpeciesRegistry([]gamedata.SpeciesDef{
		{ID: "orc", Name: "orc", Glyph: "o", Color: "#3F7F3F", SpawnWeight: 80},
		{ID: "troll", Name: "troll", Glyph: "T", Color: "#007F00", SpawnWeight: 20},
	})
	if err != nil {
		t.Fatalf("NewSpeciesRegistry() error: %v", err)
	}
	return registry
}

func TestTryMove(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    int
		wantMoved bool
		wantX     int
		wantY     int
	}{
		{"floor east", 1, 0, true, 3, 2},
		{"floor diagonal", -1, -1, true, 1, 1},
		{"stay", 0, 0, true, 2, 2},
		{"wall east", 2, 0, false, 2, 2},
		{"wall north", 0, -2, false, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := openRoomGrid(t)
			p := NewPlayer(2, 2)

			moved, err := TryMove(p, tt.dx, tt.dy, g)
			if err != nil {
				t.Fatalf("TryMove() error: %v", err)
			}
			if moved != tt.wantMoved {
				t.Errorf("TryMove() = %v, want %v", moved, tt.wantMoved)
			}
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTryMoveOutOfBounds(t *testing.T) {
	g := openRoomGrid(t)
	p := NewPlayer(2, 2)

	moved, err := TryMove(p, 5, 0, g)
	if !errors.Is(err, world.ErrOutOfBounds) {
		t.Fatalf("TryMove() error = %v, want ErrOutOfBounds", err)
	}
	if moved || p.X != 2 || p.Y != 2 {
		t.Errorf("out of bounds move changed position to (%d,%d)", p.X, p.Y)
	}
}

func TestCollection(t *testing.T) {
	player := NewPlayer(1, 1)
	c := NewCollection(player)
	registry := testRegistry(t)
	orc := NewMonster(registry.GetByID("orc"), 3, 3)
	c.Add(orc)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Player() != player || c.At(PlayerSlot) != player {
		t.Error("player is not in slot 0")
	}
	if c.At(1) != orc || c.At(2) != nil || c.At(-1) != nil {
		t.Error("At() returned the wrong entity")
	}
	if got := c.Monsters(); len(got) != 1 || got[0] != orc {
		t.Errorf("Monsters() = %v", got)
	}

	snap := c.Snapshot()
	snap[0].X = 99
	if player.X != 1 {
		t.Error("mutating a snapshot changed the collection")
	}

	if c.MonsterAt(3, 3) != orc {
		t.Error("MonsterAt should find the orc")
	}
	if c.MonsterAt(1, 1) != nil {
		t.Error("MonsterAt should skip the player")
	}
	orc.Alive = false
	if c.MonsterAt(3, 3) != nil {
		t.Error("dead monsters should not be found")
	}
}

type countingSink struct {
	entities []*Entity
}

func (s *countingSink) Add(e *Entity) {
	s.entities = append(s.entities, e)
}

func TestPlacerStaysInsideRoom(t *testing.T) {
	placer := NewPlacer(testRegistry(t), 3)
	rng := rand.New(rand.NewSource(42))
	room := world.NewRect(10, 5, 6, 4)

	for i := 0; i < 500; i++ {
		sink := &countingSink{}
		n := placer.Place(room, rng, sink)
		if n < 0 || n > 3 {
			t.Fatalf("placed %d monsters, want 0..3", n)
		}
		if len(sink.entities) != n {
			t.Fatalf("sink received %d entities, Place reported %d", len(sink.entities), n)
		}
		for _, e := range sink.entities {
			if !room.InInterior(e.X, e.Y) {
				t.Fatalf("monster at (%d,%d) outside interior of %+v", e.X, e.Y, room)
			}
			if !e.BlocksMovement || !e.Alive {
				t.Errorf("monster %+v should block movement and be alive", e)
			}
		}
	}
}

func TestPlacerUsesWholeRange(t *testing.T) {
	placer := NewPlacer(testRegistry(t), 3)
	rng := rand.New(rand.NewSource(1))
	room := world.NewRect(0, 0, 8, 8)

	counts := make(map[int]int)
	species := make(map[string]int)
	for i := 0; i < 400; i++ {
		sink := &countingSink{}
		counts[placer.Place(room, rng, sink)]++
		for _, e := range sink.entities {
			species[e.Species]++
		}
	}

	for n := 0; n <= 3; n++ {
		if counts[n] == 0 {
			t.Errorf("never placed exactly %d monsters", n)
		}
	}
	if species["orc"] <= species["troll"] {
		t.Errorf("orcs (%d) should outnumber trolls (%d)", species["orc"], species["troll"])
	}
}

func TestPlacerDisabled(t *testing.T) {
	placer := NewPlacer(testRegistry(t), 0)
	sink := &countingSink{}
	if n := placer.Place(world.NewRect(0, 0, 5, 5), rand.New(rand.NewSource(1)), sink); n != 0 {
		t.Errorf("Place() = %d with MaxRoomMonsters 0", n)
	}
}

func TestPlacerWithoutSpecies(t *testing.T) {
	placer := NewPlacer(nil, 3)
	sink := &countingSink{}
	if n := placer.Place(world.NewRect(0, 0, 5, 5), rand.New(rand.NewSource(1)), sink); n != 0 || len(sink.entities) != 0 {
		t.Errorf("Place() = %d with no species table", n)
	}
}
