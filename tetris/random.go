package tetris

import "math/rand/v2"

// Randomizer is the entropy source for piece generation. *rand.Rand from
// math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
	Float64() float64
}

// NewRandom returns a seeded PCG generator so sessions can be replayed.
func NewRandom(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// generate draws a shape uniformly, then independently decides whether the
// piece carries one of the three powers.
func generate(rng Randomizer, powerChance float64) Piece {
	shape := Shape(rng.IntN(ShapeCount))
	power := PowerNone
	if rng.Float64() < powerChance {
		power = powerKinds[rng.IntN(len(powerKinds))]
	}
	return NewPiece(shape, power)
}
