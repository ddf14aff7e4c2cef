// Package game owns the per-level state and the main game loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zonarl/internal/entity"
	"github.com/samdwyer/zonarl/internal/fov"
	"github.com/samdwyer/zonarl/internal/gamedata"
	"github.com/samdwyer/zonarl/internal/logger"
	"github.com/samdwyer/zonarl/internal/telemetry"
	"github.com/samdwyer/zonarl/internal/world"
)

// Level is one generated dungeon level: its map, its entities and the
// player's field of view. A new Level replaces the old one wholesale.
type Level struct {
	ID   uuid.UUID
	Seed int64

	dungeon  *world.Dungeon
	entities *entity.Collection
	vision   *fov.Engine
}

// NewLevel generates a level from cfg using seed, places the player on the
// spawn point and computes the initial field of view.
func NewLevel(ctx context.Context, cfg *Config, species *gamedata.SpeciesRegistry, seed int64) (*Level, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.new")
	defer span.End()

	if species == nil {
		return nil, errors.New("new level: nil species registry")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alg, err := fov.ByName(cfg.FOV.Algorithm)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	player := entity.NewPlayer(0, 0)
	entities := entity.NewCollection(player)
	placer := entity.NewPlacer(species, cfg.Monsters.MaxPerRoom)

	dungeon, err := world.Generate(ctx, cfg.GenConfig(), rng, func(_ int, room world.Rect) {
		placer.Place(room, rng, entities)
	})
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	player.X, player.Y = dungeon.Spawn.X, dungeon.Spawn.Y

	l := &Level{
		ID:       uuid.New(),
		Seed:     seed,
		dungeon:  dungeon,
		entities: entities,
		vision:   fov.NewEngine(dungeon.Grid, alg, cfg.FOV.Radius, cfg.FOV.LightWalls),
	}

	if _, err := l.Tick(ctx); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("level.id", l.ID.String()),
		attribute.Int64("level.seed", seed),
		attribute.Int("level.rooms", len(dungeon.Rooms)),
		attribute.Int("level.entities", entities.Len()),
		attribute.Int("level.monsters", l.MonsterCount()),
	)
	logger.Info("level generated",
		"level_id", l.ID.String(),
		"seed", seed,
		"rooms", len(dungeon.Rooms),
		"attempts", dungeon.Attempts,
		"monsters", l.MonsterCount(),
		"fov", alg.Name(),
	)

	return l, nil
}

// Width returns the map width.
func (l *Level) Width() int {
	return l.dungeon.Grid.Width()
}

// Height returns the map height.
func (l *Level) Height() int {
	return l.dungeon.Grid.Height()
}

// TileAt returns the terrain and explored state of a cell.
func (l *Level) TileAt(x, y int) (world.Tile, error) {
	return l.dungeon.Grid.At(x, y)
}

// IsVisible reports whether the cell was in view at the latest recompute.
// It is total: cells outside the map are never visible, and TileAt is the
// query that reports them as out of bounds.
func (l *Level) IsVisible(x, y int) bool {
	return l.vision.IsVisible(x, y)
}

// Entities returns a snapshot of every entity, player first.
func (l *Level) Entities() []entity.Entity {
	return l.entities.Snapshot()
}

// Player returns the player entity.
func (l *Level) Player() *entity.Entity {
	return l.entities.Player()
}

// Rooms returns the accepted rooms in placement order.
func (l *Level) Rooms() []world.Rect {
	return l.dungeon.Rooms
}

// Grid returns the level's tile grid.
func (l *Level) Grid() *world.Grid {
	return l.dungeon.Grid
}

// Vision returns the player's visibility engine.
func (l *Level) Vision() *fov.Engine {
	return l.vision
}

// MovePlayer moves the player by (dx, dy) and reports whether it moved.
// Only the tile grid decides; monsters never block the way.
func (l *Level) MovePlayer(dx, dy int) (bool, error) {
	player := l.entities.Player()

	moved, err := entity.TryMove(player, dx, dy, l.dungeon.Grid)
	if err != nil {
		return false, err
	}
	if !moved {
		logger.Debug("move blocked by wall", "x", player.X+dx, "y", player.Y+dy)
		return false, nil
	}

	if m := l.entities.MonsterAt(player.X, player.Y); m != nil {
		logger.Debug("player shares a cell", "with", m.Name, "x", player.X, "y", player.Y)
	}
	return true, nil
}

// MonsterCount returns the number of monsters on the level.
func (l *Level) MonsterCount() int {
	return len(l.entities.Monsters())
}

// RoomAt returns the index of the room whose floor holds (x, y), or -1 in a
// corridor or outside the map.
func (l *Level) RoomAt(x, y int) int {
	return l.dungeon.RoomIndexAt(x, y)
}

// Tick recomputes the field of view if the player moved since the last tick.
func (l *Level) Tick(ctx context.Context) (bool, error) {
	return l.vision.Update(ctx, l.entities.Player().Position())
}

// ExploredPercent returns the share of open cells the player has explored.
func (l *Level) ExploredPercent() int {
	g := l.dungeon.Grid
	open, explored := 0, 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t, _ := g.At(x, y)
			if t.Blocked {
				continue
			}
			open++
			if t.Explored {
				explored++
			}
		}
	}
	if open == 0 {
		return 0
	}
	return explored * 100 / open
}
