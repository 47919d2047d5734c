package tetris

import (
	"fmt"
	"time"
)

// QueueDepth is the number of upcoming pieces kept in the spawn queue.
const QueueDepth = 3

// Config holds the tunables of a game session.
type Config struct {
	Width  int
	Height int

	// PowerChance is the probability that a generated piece carries a power.
	PowerChance float64

	BaseFallInterval time.Duration
	FallIntervalStep time.Duration
	MinFallInterval  time.Duration
	LinesPerLevel    int

	Powers PowerRules
}

// DefaultConfig returns a 10x20 board with the stock timing and power tables.
func DefaultConfig() Config {
	return Config{
		Width:            10,
		Height:           20,
		PowerChance:      0.10,
		BaseFallInterval: 500 * time.Millisecond,
		FallIntervalStep: 35 * time.Millisecond,
		MinFallInterval:  100 * time.Millisecond,
		LinesPerLevel:    10,
		Powers:           DefaultPowerRules(),
	}
}

// FallIntervalFor returns the gravity step for a level, ignoring modifiers.
func (c Config) FallIntervalFor(level int) time.Duration {
	return max(c.MinFallInterval, c.BaseFallInterval-time.Duration(level-1)*c.FallIntervalStep)
}

// validate panics on configurations no engine can run with.
func (c Config) validate() {
	switch {
	case c.Width < 4 || c.Height < 4:
		panic(fmt.Sprintf("tetris: board %dx%d too small", c.Width, c.Height))
	case c.PowerChance < 0 || c.PowerChance > 1:
		panic(fmt.Sprintf("tetris: power chance %v outside [0,1]", c.PowerChance))
	case c.MinFallInterval <= 0 || c.BaseFallInterval < c.MinFallInterval:
		panic("tetris: fall interval must be positive and at least the floor")
	case c.LinesPerLevel <= 0:
		panic("tetris: lines per level must be positive")
	}
}
