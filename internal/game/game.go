package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zonarl/internal/gamedata"
	"github.com/samdwyer/zonarl/internal/logger"
	"github.com/samdwyer/zonarl/internal/telemetry"
	"github.com/samdwyer/zonarl/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg     *Config
	species *gamedata.SpeciesRegistry
	level   *Level
	running bool
}

// New validates cfg, loads the species table and generates the first level.
// A zero cfg.Seed picks a time-based seed.
func New(ctx context.Context, cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	species, err := gamedata.LoadSpeciesRegistry()
	if err != nil {
		return nil, fmt.Errorf("load species: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     cfg,
		species: species,
		running: true,
	}
	if err := g.newLevel(ctx, seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Level returns the current level.
func (g *Game) Level() *Level {
	return g.level
}

// Running reports whether the main loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// Run executes the main game loop until the player exits.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	renderer := ui.NewRenderer(screen)

	for g.running {
		renderer.Render(g.level, g.Status())

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if _, err := g.HandleKey(ctx, ev.Key(), ev.Rune()); err != nil {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized underneath us
			g.running = false
		}
	}

	return nil
}

// Status returns the one-line summary drawn below the map.
func (g *Game) Status() string {
	where := "corridor"
	p := g.level.Player()
	if room := g.level.RoomAt(p.X, p.Y); room >= 0 {
		where = fmt.Sprintf("room %d", room+1)
	}
	return fmt.Sprintf("seed %d  %s  explored %d%%  [arrows/hjklyubn] move  [r] new level  [q] quit",
		g.level.Seed, where, g.level.ExploredPercent())
}

// HandleKey applies a single key press and reports what it cost.
// A move that took a turn triggers the visibility tick.
func (g *Game) HandleKey(ctx context.Context, key tcell.Key, r rune) (PlayerAction, error) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return Exit, nil
	case tcell.KeyUp:
		return g.move(ctx, 0, -1)
	case tcell.KeyDown:
		return g.move(ctx, 0, 1)
	case tcell.KeyLeft:
		return g.move(ctx, -1, 0)
	case tcell.KeyRight:
		return g.move(ctx, 1, 0)
	case tcell.KeyRune:
	default:
		return DidntTakeTurn, nil
	}

	switch r {
	case 'q', 'Q':
		g.running = false
		return Exit, nil
	case 'k':
		return g.move(ctx, 0, -1)
	case 'j':
		return g.move(ctx, 0, 1)
	case 'h':
		return g.move(ctx, -1, 0)
	case 'l':
		return g.move(ctx, 1, 0)
	case 'y':
		return g.move(ctx, -1, -1)
	case 'u':
		return g.move(ctx, 1, -1)
	case 'b':
		return g.move(ctx, -1, 1)
	case 'n':
		return g.move(ctx, 1, 1)
	case 'r':
		if err := g.newLevel(ctx, g.level.Seed+1); err != nil {
			return DidntTakeTurn, err
		}
		return DidntTakeTurn, nil
	}

	return DidntTakeTurn, nil
}

// move tries to move the player and ticks the world if it succeeded.
func (g *Game) move(ctx context.Context, dx, dy int) (PlayerAction, error) {
	moved, err := g.level.MovePlayer(dx, dy)
	if err != nil {
		return DidntTakeTurn, err
	}
	if !moved {
		return DidntTakeTurn, nil
	}

	if _, err := g.level.Tick(ctx); err != nil {
		return TookTurn, err
	}
	return TookTurn, nil
}

// newLevel replaces the current level wholesale.
func (g *Game) newLevel(ctx context.Context, seed int64) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new_level")
	defer span.End()

	level, err := NewLevel(ctx, g.cfg, g.species, seed)
	if err != nil {
		logger.Error("level generation failed", "seed", seed, "error", err)
		return err
	}
	g.level = level

	span.SetAttributes(attribute.Int64("level.seed", seed))
	return nil
}
