package tetris

import "time"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Piece matrices are shared with the engine but are never mutated.
type Snapshot struct {
	Width  int
	Height int

	// Cells is indexed [row][column].
	Cells [][]Cell

	Active   Piece
	GhostRow int
	Queue    []Piece
	Held     Piece
	HasHeld  bool
	CanHold  bool

	Score int
	Level int
	Lines int

	FallInterval time.Duration
	SlowActive   bool
	SlowDeadline time.Time

	State    State
	LastLock LockResult
	Stats    Stats
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([][]Cell, e.board.Height())
	for y := range cells {
		cells[y] = e.board.Row(y)
	}

	return Snapshot{
		Width:        e.board.Width(),
		Height:       e.board.Height(),
		Cells:        cells,
		Active:       e.active,
		GhostRow:     e.GhostRow(),
		Queue:        e.Queue(),
		Held:         e.held,
		HasHeld:      e.hasHeld,
		CanHold:      e.canHold,
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		FallInterval: e.fallInterval,
		SlowActive:   e.slowActive,
		SlowDeadline: e.slowDeadline,
		State:        e.state,
		LastLock:     e.lastLock,
		Stats:        e.stats,
	}
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Ghost returns the active piece moved to its resting row.
func (s Snapshot) Ghost() Piece {
	return s.Active.At(s.Active.X, s.GhostRow)
}
