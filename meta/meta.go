// meta/meta.go
package meta

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// WIDTH defines the default number of cell columns.
const WIDTH = 8

// HEIGHT defines the default number of cell rows.
const HEIGHT = 6

// STONES defines how many stones each player starts with.
const STONES = 32

// MAX_TURNS defines when a game is stopped without a winner.
const MAX_TURNS = 300

// GAMES defines the number of games per match-up.
const GAMES = 10

// GO_ROUTINES defines the number of games played in parallel.
const GO_ROUTINES = 4

// SAMPLES defines how often a greedy agent rolls out a fire.
const SAMPLES = 8

var ErrConfig = errors.New("invalid config")

type Config struct {
	Width      int    `env:"IRONCLAD_WIDTH"`
	Height     int    `env:"IRONCLAD_HEIGHT"`
	Stones     int    `env:"IRONCLAD_STONES"`
	Seed       uint64 `env:"IRONCLAD_SEED"` // 0 seeds from entropy
	MaxTurns   int    `env:"IRONCLAD_MAX_TURNS"`
	Games      int    `env:"IRONCLAD_GAMES"`
	Workers    int    `env:"IRONCLAD_WORKERS"`
	LogLevel   string `env:"IRONCLAD_LOG_LEVEL"`
	OutputDir  string `env:"IRONCLAD_OUTPUT_DIR"`
	Experiment string `env:"IRONCLAD_EXPERIMENT"` // "strength" or "throughput"
}

func Default() Config {
	return Config{
		Width:      WIDTH,
		Height:     HEIGHT,
		Stones:     STONES,
		MaxTurns:   MAX_TURNS,
		Games:      GAMES,
		Workers:    GO_ROUTINES,
		LogLevel:   "info",
		OutputDir:  "experiments",
		Experiment: "strength",
	}
}

// Load reads the configuration from the environment on top of the defaults.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: board must be at least 4x4, got %dx%d", ErrConfig, c.Width, c.Height)
	}
	if c.Stones < 0 {
		return fmt.Errorf("%w: stones cannot be negative", ErrConfig)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: need at least one game per match-up", ErrConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: need at least one worker", ErrConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", ErrConfig)
	}
	return nil
}
