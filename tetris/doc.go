// Package tetris implements the game-state engine of a falling-block puzzle
// with collectible power-ups.
//
// An Engine owns a Board, the active piece, a three-piece spawn queue and a
// single hold slot. Drivers forward input through Move, Rotate, SoftDrop,
// HardDrop and Hold, call Tick once per frame with the current time, and read
// the result through Snapshot. The engine never sleeps and holds no locks;
// time only enters through Tick and the configured Clock, which keeps it fully
// deterministic under a ManualClock and a seeded Randomizer.
//
// Pieces that carry a Power leave tagged cells behind when they lock. When a
// row holding such a cell is cleared the power fires once:
//
//   - PowerBomb awards a flat bonus
//   - PowerSlow doubles the gravity interval for a few seconds
//   - PowerWild replaces the next queued piece with an I piece and awards a bonus
//
// At most one power fires per lock, taken from the last tagged cell seen while
// scanning the cleared rows from the bottom up.
package tetris
