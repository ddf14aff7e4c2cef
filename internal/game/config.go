package game

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/zonarl/internal/entity"
	"github.com/samdwyer/zonarl/internal/fov"
	"github.com/samdwyer/zonarl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Map      MapConfig      `yaml:"map"`
	Rooms    RoomsConfig    `yaml:"rooms"`
	Monsters MonstersConfig `yaml:"monsters"`
	FOV      FOVConfig      `yaml:"fov"`
}

// MapConfig holds the level dimensions.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomsConfig holds the room generation parameters.
type RoomsConfig struct {
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
	MaxRooms int `yaml:"max_rooms"`
}

// MonstersConfig holds the monster placement parameters.
type MonstersConfig struct {
	MaxPerRoom int `yaml:"max_per_room"`
}

// FOVConfig holds the field of view parameters.
type FOVConfig struct {
	// Radius in cells, Chebyshev distance. 0 means unlimited.
	Radius     int    `yaml:"radius"`
	LightWalls bool   `yaml:"light_walls"`
	Algorithm  string `yaml:"algorithm"` // basic, shadow or symmetric
}

// DefaultConfig returns the configuration the game ships with.
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Width:  world.DefaultWidth,
			Height: world.DefaultHeight,
		},
		Rooms: RoomsConfig{
			MinSize:  world.DefaultRoomMinSize,
			MaxSize:  world.DefaultRoomMaxSize,
			MaxRooms: world.DefaultMaxRooms,
		},
		Monsters: MonstersConfig{
			MaxPerRoom: entity.DefaultMaxRoomMonsters,
		},
		FOV: FOVConfig{
			Radius:     fov.DefaultRadius,
			LightWalls: true,
			Algorithm:  fov.AlgorithmShadow,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults,
// then applies ZONARL_* environment overrides.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	if seed := os.Getenv("ZONARL_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("ZONARL_SEED: %w", err)
		}
		c.Seed = v
	}

	if alg := os.Getenv("ZONARL_FOV_ALGORITHM"); alg != "" {
		c.FOV.Algorithm = alg
	}

	if radius := os.Getenv("ZONARL_FOV_RADIUS"); radius != "" {
		v, err := strconv.Atoi(radius)
		if err != nil {
			return fmt.Errorf("ZONARL_FOV_RADIUS: %w", err)
		}
		c.FOV.Radius = v
	}

	return nil
}

// GenConfig returns the dungeon generation parameters.
func (c *Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		MaxRooms:    c.Rooms.MaxRooms,
		RoomMinSize: c.Rooms.MinSize,
		RoomMaxSize: c.Rooms.MaxSize,
	}
}

// Validate reports the first setting that prevents a level from being built.
// Every failure is a *world.ConfigError.
func (c *Config) Validate() error {
	if err := c.GenConfig().Validate(); err != nil {
		return err
	}
	if c.Monsters.MaxPerRoom < 0 {
		return &world.ConfigError{Field: "monsters.max_per_room", Reason: "must not be negative"}
	}
	if _, err := fov.ByName(c.FOV.Algorithm); err != nil {
		return &world.ConfigError{Field: "fov.algorithm", Reason: err.Error()}
	}
	return nil
}
