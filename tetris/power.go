package tetris

import (
	"image/color"
	"time"
)

// Power is the modifier a piece may carry into the board.
type Power uint8

const (
	PowerNone Power = iota
	PowerBomb
	PowerSlow
	PowerWild
)

// powerKinds lists the powers the generator picks from, in draw order.
var powerKinds = [...]Power{PowerBomb, PowerSlow, PowerWild}

var powerColors = map[Power]color.RGBA{
	PowerBomb: {R: 255, G: 69, B: 0, A: 255},
	PowerSlow: {R: 135, G: 206, B: 250, A: 255},
	PowerWild: {R: 220, G: 220, B: 220, A: 255},
}

func (p Power) String() string {
	switch p {
	case PowerNone:
		return "none"
	case PowerBomb:
		return "bomb"
	case PowerSlow:
		return "slow"
	case PowerWild:
		return "wild"
	default:
		return "unknown"
	}
}

// Color returns the override color for power pieces. ok is false for PowerNone.
func (p Power) Color() (c color.RGBA, ok bool) {
	c, ok = powerColors[p]
	return c, ok
}

// PowerEffect describes what activating a power does to the engine.
type PowerEffect struct {
	Bonus     int
	SlowFor   time.Duration
	WildPiece bool
}

// PowerRules maps each power to its effect.
type PowerRules map[Power]PowerEffect

// DefaultPowerRules returns the stock policy: bomb +50, slow for 5s, wild deals
// an I piece next and awards +30.
func DefaultPowerRules() PowerRules {
	return PowerRules{
		PowerBomb: {Bonus: 50},
		PowerSlow: {SlowFor: 5 * time.Second},
		PowerWild: {Bonus: 30, WildPiece: true},
	}
}
