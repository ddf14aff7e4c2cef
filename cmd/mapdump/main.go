// Command mapdump generates a level and prints it as text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/samdwyer/zonarl/internal/devtools"
	"github.com/samdwyer/zonarl/internal/game"
	"github.com/samdwyer/zonarl/internal/gamedata"
	"github.com/samdwyer/zonarl/internal/logger"
)

type options struct {
	configPath string
	seed       int64
	fov        string
	reveal     bool
	color      string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "zonarl.yaml", "path to the YAML configuration file")
	flag.Int64Var(&opts.seed, "seed", 1, "dungeon seed")
	flag.StringVar(&opts.fov, "fov", "", "field of view algorithm: basic, shadow or symmetric")
	flag.BoolVar(&opts.reveal, "reveal", false, "show the whole map instead of what is visible from the spawn point")
	flag.StringVar(&opts.color, "color", "auto", "colour output: auto, always or never")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	logConfig, err := logger.LoadConfig(opts.configPath)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	logConfig.ConsoleEnabled = true
	logConfig.FileEnabled = false
	if err := logger.Initialize(logConfig, os.Stderr); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			log.Printf("Error closing log files: %v", err)
		}
	}()

	cfg, err := game.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Seed = opts.seed
	if opts.fov != "" {
		cfg.FOV.Algorithm = opts.fov
	}

	species, err := gamedata.LoadSpeciesRegistry()
	if err != nil {
		return fmt.Errorf("load species: %w", err)
	}

	level, err := game.NewLevel(context.Background(), cfg, species, cfg.Seed)
	if err != nil {
		return fmt.Errorf("generate level: %w", err)
	}

	dump := devtools.DumpOptions{Reveal: opts.reveal}
	switch opts.color {
	case "always":
		dump.Color = true
	case "never":
	default:
		dump.Color = term.IsTerminal(int(os.Stdout.Fd()))
	}

	if err := devtools.DumpMap(os.Stdout, level, dump); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}
