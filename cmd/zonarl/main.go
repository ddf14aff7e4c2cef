// Package main is the entry point for zonarl.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/zonarl/internal/game"
	"github.com/samdwyer/zonarl/internal/logger"
	"github.com/samdwyer/zonarl/internal/telemetry"
	"github.com/samdwyer/zonarl/internal/ui"
)

func main() {
	configPath := flag.String("config", "zonarl.yaml", "path to the YAML configuration file")
	seed := flag.Int64("seed", 0, "dungeon seed (0 picks one from the clock)")
	fovName := flag.String("fov", "", "field of view algorithm: basic, shadow or symmetric")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// run owns every deferred cleanup, so exit only once it has returned
	if err := run(*configPath, *seed, *fovName); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, seed int64, fovName string) error {
	logConfig, err := logger.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := logger.Initialize(logConfig, nil); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() {
		if cerr := logger.Close(); cerr != nil {
			log.Printf("Error closing log files: %v", cerr)
		}
	}()

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if fovName != "" {
		cfg.FOV.Algorithm = fovName
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		logger.Error("game init failed", "error", err)
		return fmt.Errorf("initialize game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	runErr := g.Run(ctx, screen)
	screen.Close()
	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		return fmt.Errorf("game loop: %w", runErr)
	}

	logger.Info("game exited", "seed", g.Level().Seed)
	return nil
}
