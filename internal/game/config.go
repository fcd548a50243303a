package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/bobbyscolumns/internal/columns"
)

// Environment variables read by LoadConfig.
const (
	EnvWidth   = "COLUMNS_WIDTH"
	EnvHeight  = "COLUMNS_HEIGHT"
	EnvTickMs  = "COLUMNS_TICK_MS"
	EnvSeed    = "COLUMNS_SEED"
	EnvPalette = "COLUMNS_PALETTE"
)

// Config holds game configuration options.
type Config struct {
	// Board dimensions in cells.
	Width  int
	Height int

	// TickInterval is how often the host delivers a Tick. It only controls
	// animation cadence; pieces still fall once per columns.FallInterval.
	TickInterval time.Duration

	// Seed for piece colours. A seed of 0 derives colours from the spawn
	// timestamp instead.
	Seed uint64

	// Palette is the path of a palette JSON file. Empty means the built-in
	// palette.
	Palette string
}

// DefaultConfig returns the classic six-wide, thirteen-tall board ticking at
// roughly 30 frames per second.
func DefaultConfig() Config {
	return Config{
		Width:        6,
		Height:       13,
		TickInterval: 33 * time.Millisecond,
	}
}

// LoadConfig starts from DefaultConfig and applies any COLUMNS_* environment
// variables that are set.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := envInt(EnvWidth, &cfg.Width); err != nil {
		return cfg, err
	}
	if err := envInt(EnvHeight, &cfg.Height); err != nil {
		return cfg, err
	}

	tickMs := int(cfg.TickInterval / time.Millisecond)
	if err := envInt(EnvTickMs, &tickMs); err != nil {
		return cfg, err
	}
	cfg.TickInterval = time.Duration(tickMs) * time.Millisecond

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	cfg.Palette = os.Getenv(EnvPalette)

	return cfg, cfg.Validate()
}

// Validate checks that the board can hold a spawned piece and the ticker can run.
func (c Config) Validate() error {
	var errs []error
	if c.Width < columns.SpawnColumn {
		errs = append(errs, fmt.Errorf("board width %d is narrower than spawn column %d", c.Width, columns.SpawnColumn))
	}
	if c.Height < 1 {
		errs = append(errs, fmt.Errorf("board height %d must be positive", c.Height))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval %v must be positive", c.TickInterval))
	}
	return errors.Join(errs...)
}

// envInt overwrites dst with the integer value of the named variable, if set.
func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}
