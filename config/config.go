// Package config loads driver settings from the environment, with an optional
// .env file in the working directory.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/plus3/powertris/input"
	"github.com/plus3/powertris/tetris"
)

// Config is everything a driver needs to start a session.
type Config struct {
	Game tetris.Config

	// Seed for the piece generator. Zero picks one from the wall clock.
	Seed uint64

	CellSize       int
	DebugUI        bool
	TargetFPS      int
	RepeatDelay    time.Duration
	RepeatInterval time.Duration

	LogLevel zerolog.Level
	LogFile  string
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		Game:           tetris.DefaultConfig(),
		CellSize:       30,
		TargetFPS:      60,
		RepeatDelay:    input.DefaultRepeatDelay,
		RepeatInterval: input.DefaultRepeatInterval,
		LogLevel:       zerolog.InfoLevel,
	}
}

// Load reads .env if present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl
	cfg.LogFile = getEnv("POWERTRIS_LOG_FILE", "")

	if cfg.Seed, err = envUint("POWERTRIS_SEED", 0); err != nil {
		return cfg, err
	}
	if cfg.Game.Width, err = envInt("POWERTRIS_WIDTH", cfg.Game.Width); err != nil {
		return cfg, err
	}
	if cfg.Game.Height, err = envInt("POWERTRIS_HEIGHT", cfg.Game.Height); err != nil {
		return cfg, err
	}
	if cfg.Game.PowerChance, err = envFloat("POWERTRIS_POWER_CHANCE", cfg.Game.PowerChance); err != nil {
		return cfg, err
	}
	if cfg.CellSize, err = envInt("POWERTRIS_CELL_SIZE", cfg.CellSize); err != nil {
		return cfg, err
	}
	if cfg.TargetFPS, err = envInt("POWERTRIS_TARGET_FPS", cfg.TargetFPS); err != nil {
		return cfg, err
	}
	if cfg.DebugUI, err = envBool("POWERTRIS_DEBUG_UI", cfg.DebugUI); err != nil {
		return cfg, err
	}
	if cfg.RepeatDelay, err = envDuration("POWERTRIS_REPEAT_DELAY", cfg.RepeatDelay); err != nil {
		return cfg, err
	}
	if cfg.RepeatInterval, err = envDuration("POWERTRIS_REPEAT_INTERVAL", cfg.RepeatInterval); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the engine or drivers cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Game.Width < 4 || c.Game.Height < 4:
		return fmt.Errorf("board %dx%d is too small, need at least 4x4", c.Game.Width, c.Game.Height)
	case c.Game.PowerChance < 0 || c.Game.PowerChance > 1:
		return fmt.Errorf("power chance %v outside [0,1]", c.Game.PowerChance)
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.TargetFPS <= 0:
		return fmt.Errorf("target fps must be positive, got %d", c.TargetFPS)
	case c.RepeatDelay < 0 || c.RepeatInterval < 0:
		return fmt.Errorf("key repeat timings must not be negative")
	}
	return nil
}

// FrameInterval is the scheduler period for TargetFPS.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}

// SeedOrNow returns Seed, or a wall-clock derived seed when Seed is zero.
func (c Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// NewLogger builds a timestamped logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envUint(k string, def uint64) (uint64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envFloat(k string, def float64) (float64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return f, nil
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}
