package main

import (
	"time"

	"github.com/plus3/powertris/frame"
	"github.com/plus3/powertris/input"
	"github.com/plus3/powertris/tetris"
)

// Evaluation weights for a resting board.
const (
	weightHeight = -0.510066
	weightLines  = 0.760666
	weightHoles  = -0.35663
	weightBumps  = -0.184483
)

// Placement is a target rotation count and column for the active piece.
type Placement struct {
	Rotations int
	X         int
	Score     float64
}

// BestPlacement tries every rotation and column for active on board and
// returns the one whose resting board evaluates best. ok is false when the
// piece has nowhere to go.
func BestPlacement(board *tetris.Board, active tetris.Piece) (best Placement, ok bool) {
	p := active
	for r := range 4 {
		if r > 0 {
			p = p.Rotated()
		}
		for x := -p.Width(); x <= board.Width(); x++ {
			c := p.At(x, active.Y)
			if board.Collides(c, 0, 0) {
				continue
			}
			for !board.Collides(c, 0, 1) {
				c = c.Moved(0, 1)
			}

			sim := board.Clone()
			sim.Lock(c)
			cleared, _ := sim.ClearFullRows()
			score := Evaluate(sim, cleared)

			if !ok || score > best.Score {
				best = Placement{Rotations: r, X: x, Score: score}
				ok = true
			}
		}
	}
	return best, ok
}

// Evaluate scores a board after a placement that cleared the given rows.
// Higher is better.
func Evaluate(b *tetris.Board, cleared int) float64 {
	heights := ColumnHeights(b)

	aggregate, bumps := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumps += abs(h - heights[x-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(cleared) +
		weightHoles*float64(Holes(b, heights)) +
		weightBumps*float64(bumps)
}

// ColumnHeights returns, per column, the distance from the floor to the
// highest occupied cell.
func ColumnHeights(b *tetris.Board) []int {
	heights := make([]int, b.Width())
	for x := range b.Width() {
		for y := range b.Height() {
			if !b.At(x, y).IsEmpty() {
				heights[x] = b.Height() - y
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells below the top of their column.
func Holes(b *tetris.Board, heights []int) int {
	holes := 0
	for x, h := range heights {
		for y := b.Height() - h + 1; y < b.Height(); y++ {
			if b.At(x, y).IsEmpty() {
				holes++
			}
		}
	}
	return holes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BotSystem plays one piece every Think interval through the same actions a
// keyboard would produce. The first piece of each game is held.
type BotSystem struct {
	Think time.Duration

	lastMove time.Time
}

func (b *BotSystem) Execute(f *frame.UpdateFrame) {
	engine := f.Session.Engine()
	if engine.GameOver() || f.Now.Sub(b.lastMove) < b.Think {
		return
	}
	b.lastMove = f.Now

	if _, held := engine.Held(); !held {
		input.Dispatch(engine, input.ActionHold)
		if engine.GameOver() {
			return
		}
	}

	target, ok := BestPlacement(engine.Board(), engine.Active())
	if !ok {
		input.Dispatch(engine, input.ActionHardDrop)
		return
	}

	for range target.Rotations {
		input.Dispatch(engine, input.ActionRotate)
	}

	step := input.ActionRight
	if target.X < engine.Active().X {
		step = input.ActionLeft
	}
	for engine.Active().X != target.X {
		if !input.Dispatch(engine, step) {
			break
		}
	}

	input.Dispatch(engine, input.ActionHardDrop)
}

// RecorderSystem adds finished games to the report and restarts the session.
type RecorderSystem struct {
	Report *Report
}

func (r *RecorderSystem) Execute(f *frame.UpdateFrame) {
	engine := f.Session.Engine()
	if !engine.GameOver() {
		return
	}

	r.Report.AddGame(GameResult{
		Session: f.Session.ID.String(),
		Score:   engine.Score(),
		Level:   engine.Level(),
		Lines:   engine.Lines(),
		Stats:   engine.Stats(),
	})
	f.Commands.Restart()
}
