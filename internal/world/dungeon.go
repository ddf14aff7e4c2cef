package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/zonarl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Default room parameters
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
	DefaultMaxRooms    = 30

	// minRoomSize keeps the room center on an interior floor cell.
	minRoomSize = 2
)

// GenConfig holds the dungeon generation parameters.
type GenConfig struct {
	Width       int
	Height      int
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
}

// DefaultGenConfig returns the parameters used by the game.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate returns a *ConfigError if no room could ever be placed.
func (c GenConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Reason: "must be positive"}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Reason: "must be positive"}
	case c.MaxRooms < 1:
		return &ConfigError{Field: "max_rooms", Reason: "must be at least 1"}
	case c.RoomMinSize < minRoomSize:
		return &ConfigError{Field: "room_min_size", Reason: "must be at least 2"}
	case c.RoomMaxSize < c.RoomMinSize:
		return &ConfigError{Field: "room_max_size", Reason: "must not be smaller than room_min_size"}
	case c.RoomMaxSize >= c.Width:
		return &ConfigError{Field: "room_max_size", Reason: "does not fit inside the map width"}
	case c.RoomMaxSize >= c.Height:
		return &ConfigError{Field: "room_max_size", Reason: "does not fit inside the map height"}
	}
	return nil
}

// RoomFunc is called once for every accepted room, in acceptance order.
type RoomFunc func(index int, room Rect)

// Dungeon represents a generated level map.
type Dungeon struct {
	Grid     *Grid
	Rooms    []Rect // Accepted rooms in placement order
	Spawn    Point  // Center of the first room
	Attempts int    // Candidate rooms proposed
}

// Generate builds a dungeon by proposing up to MaxRooms random rooms, rejecting
// any that intersect an accepted room, and joining each accepted room to the
// previous one with an L-shaped corridor.
//
// onRoom may be nil. All randomness comes from rng, so a fixed seed yields an
// identical dungeon.
func Generate(ctx context.Context, cfg GenConfig, rng *rand.Rand, onRoom RoomFunc) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	startTime := time.Now()

	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	d := &Dungeon{
		Grid:  grid,
		Rooms: make([]Rect, 0, cfg.MaxRooms),
	}

	for range cfg.MaxRooms {
		d.Attempts++

		w := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		x := rng.Intn(cfg.Width - w)
		y := rng.Intn(cfg.Height - h)
		candidate := NewRect(x, y, w, h)

		if d.overlaps(candidate) {
			continue
		}

		grid.CarveRoom(candidate)
		if onRoom != nil {
			onRoom(len(d.Rooms), candidate)
		}

		cx, cy := candidate.Center()
		if len(d.Rooms) == 0 {
			d.Spawn = Point{X: cx, Y: cy}
		} else {
			px, py := d.Rooms[len(d.Rooms)-1].Center()
			d.carveCorridor(rng, px, py, cx, cy)
		}

		d.Rooms = append(d.Rooms, candidate)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int("dungeon.attempts", d.Attempts),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d, nil
}

// overlaps scans the accepted rooms for an intersection.
func (d *Dungeon) overlaps(candidate Rect) bool {
	for _, room := range d.Rooms {
		if candidate.Intersects(room) {
			return true
		}
	}
	return false
}

// carveCorridor joins (x1,y1) to (x2,y2), choosing the elbow at random.
func (d *Dungeon) carveCorridor(rng *rand.Rand, x1, y1, x2, y2 int) {
	if rng.Intn(2) == 0 {
		d.Grid.CarveHorizontalTunnel(x1, x2, y1)
		d.Grid.CarveVerticalTunnel(y1, y2, x2)
	} else {
		d.Grid.CarveVerticalTunnel(y1, y2, x1)
		d.Grid.CarveHorizontalTunnel(x1, x2, y2)
	}
}

// RoomIndexAt returns the index of the room whose interior contains the position, or -1.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.InInterior(x, y) {
			return i
		}
	}
	return -1
}
