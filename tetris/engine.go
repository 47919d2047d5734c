package tetris

import (
	"time"

	"github.com/rs/zerolog"
)

// State is the engine's lifecycle state. StateGameOver is terminal.
type State uint8

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Kick offsets tried, in order, when a rotation lands in a wall or stack.
var (
	wallKicks   = []int{0, -1, 1}
	iPieceKicks = []int{0, -1, 1, -2, 2}
)

// LockResult describes what the most recent lock did to the board.
type LockResult struct {
	Lines int
	Power Power
}

// Stats are cumulative counters for a session.
type Stats struct {
	PiecesLocked     int
	HardDrops        int
	Holds            int
	PowerActivations [PowerWild + 1]int
}

// Engine owns the board and every piece of a single game session. It is not
// safe for concurrent use; drivers call it from one goroutine.
type Engine struct {
	cfg    Config
	board  *Board
	rng    Randomizer
	clock  Clock
	logger zerolog.Logger

	active  Piece
	queue   []Piece
	held    Piece
	hasHeld bool
	canHold bool

	score int
	level int
	lines int

	fallInterval time.Duration
	lastFall     time.Time
	slowActive   bool
	slowDeadline time.Time

	state    State
	lastLock LockResult
	stats    Stats
}

type Option func(*Engine)

// WithLogger attaches a logger for power, level and game-over events.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRandomizer replaces the default time-seeded generator.
func WithRandomizer(rng Randomizer) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithClock sets the clock used by HardDrop and SoftDrop. Tick always uses the
// time it is given.
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine starts a session: empty board, one active piece and a full queue.
// It panics if cfg cannot describe a playable board.
func NewEngine(cfg Config, opts ...Option) *Engine {
	cfg.validate()
	if cfg.Powers == nil {
		cfg.Powers = DefaultPowerRules()
	}

	e := &Engine{
		cfg:     cfg,
		board:   NewBoard(cfg.Width, cfg.Height),
		clock:   SystemClock{},
		logger:  zerolog.Nop(),
		canHold: true,
		level:   1,
		state:   StateRunning,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(uint64(time.Now().UnixNano()))
	}

	e.fallInterval = cfg.FallIntervalFor(e.level)
	e.lastFall = e.clock.Now()

	e.active = e.spawnOrigin(generate(e.rng, cfg.PowerChance))
	e.queue = make([]Piece, 0, QueueDepth)
	for range QueueDepth {
		e.queue = append(e.queue, e.spawnOrigin(generate(e.rng, cfg.PowerChance)))
	}
	if e.board.Collides(e.active, 0, 0) {
		e.endGame()
	}

	return e
}

// spawnOrigin places p horizontally centered on row 0.
func (e *Engine) spawnOrigin(p Piece) Piece {
	return p.At(e.cfg.Width/2-p.Width()/2, 0)
}

func (e *Engine) GameOver() bool { return e.state == StateGameOver }
func (e *Engine) State() State   { return e.state }
func (e *Engine) Score() int     { return e.score }
func (e *Engine) Level() int     { return e.level }
func (e *Engine) Lines() int     { return e.lines }
func (e *Engine) CanHold() bool  { return e.canHold }
func (e *Engine) Active() Piece  { return e.active }
func (e *Engine) Stats() Stats   { return e.stats }
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) FallInterval() time.Duration { return e.fallInterval }

// SlowActive reports whether the slow modifier is in effect and until when.
func (e *Engine) SlowActive() (bool, time.Time) {
	return e.slowActive, e.slowDeadline
}

// Held returns the held piece, if any.
func (e *Engine) Held() (Piece, bool) {
	return e.held, e.hasHeld
}

// Queue returns a copy of the upcoming pieces, next first.
func (e *Engine) Queue() []Piece {
	out := make([]Piece, len(e.queue))
	copy(out, e.queue)
	return out
}

// Board returns a copy of the locked grid.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// LastLock reports the outcome of the most recent lock.
func (e *Engine) LastLock() LockResult {
	return e.lastLock
}

// Move shifts the active piece if the destination is free.
func (e *Engine) Move(dx, dy int) bool {
	if e.state == StateGameOver {
		return false
	}
	if e.board.Collides(e.active, dx, dy) {
		return false
	}
	e.active = e.active.Moved(dx, dy)
	return true
}

// SoftDrop moves the piece down one row and restarts the gravity timer. The
// timer restarts even when the piece is already resting, so the next lock
// waits a full interval.
func (e *Engine) SoftDrop() bool {
	if e.state == StateGameOver {
		return false
	}
	moved := e.Move(0, 1)
	e.lastFall = e.clock.Now()
	return moved
}

// Rotate turns the active piece clockwise, trying wall kicks if needed. On
// failure the piece is left exactly as it was.
func (e *Engine) Rotate() bool {
	if e.state == StateGameOver {
		return false
	}

	kicks := wallKicks
	if e.active.Shape == ShapeI {
		kicks = iPieceKicks
	}

	rotated := e.active.Rotated()
	for _, dx := range kicks {
		if !e.board.Collides(rotated, dx, 0) {
			e.active = rotated.Moved(dx, 0)
			return true
		}
	}
	return false
}

// HardDrop drops the active piece to its resting row and locks it. It returns
// the number of rows the piece fell.
func (e *Engine) HardDrop() int {
	if e.state == StateGameOver {
		return 0
	}

	rows := 0
	for !e.board.Collides(e.active, 0, 1) {
		e.active = e.active.Moved(0, 1)
		rows++
	}
	e.stats.HardDrops++
	e.lock(e.clock.Now())
	return rows
}

// Hold stores the active piece, or swaps it with the stored one. Allowed once
// per lock.
func (e *Engine) Hold() bool {
	if e.state == StateGameOver || !e.canHold {
		return false
	}

	outgoing := e.spawnOrigin(NewPiece(e.active.Shape, e.active.Power))
	if e.hasHeld {
		e.active = e.spawnOrigin(NewPiece(e.held.Shape, e.held.Power))
	} else {
		e.active = e.popQueue()
	}
	e.held = outgoing
	e.hasHeld = true
	e.canHold = false
	e.stats.Holds++

	if e.board.Collides(e.active, 0, 0) {
		e.endGame()
	}
	return true
}

// Tick advances gravity and modifier timers to now.
func (e *Engine) Tick(now time.Time) {
	if e.state == StateGameOver {
		return
	}

	if e.slowActive && now.After(e.slowDeadline) {
		e.slowActive = false
		e.fallInterval = e.cfg.FallIntervalFor(e.level)
		e.logger.Debug().Dur("interval", e.fallInterval).Msg("slow expired")
	}

	if now.Sub(e.lastFall) > e.fallInterval {
		if !e.Move(0, 1) {
			e.lock(now)
		}
		e.lastFall = now
	}
}

// GhostRow returns the row the active piece would come to rest on if dropped
// straight down. It does not change any state.
func (e *Engine) GhostRow() int {
	ghost := e.active
	for !e.board.Collides(ghost, 0, 1) {
		ghost = ghost.Moved(0, 1)
	}
	return ghost.Y
}

func (e *Engine) lock(now time.Time) {
	e.board.Lock(e.active)
	e.stats.PiecesLocked++

	cleared, power := e.board.ClearFullRows()
	if cleared > 0 {
		e.score += LineScore(cleared, e.level)
		e.lines += cleared
		e.checkLevelUp()
	}
	if power != PowerNone {
		e.activate(power, now)
	}
	e.lastLock = LockResult{Lines: cleared, Power: power}

	e.spawnNext()
}

func (e *Engine) popQueue() Piece {
	next := e.queue[0]
	e.queue = append(e.queue[:0], e.queue[1:]...)
	e.queue = append(e.queue, e.spawnOrigin(generate(e.rng, e.cfg.PowerChance)))
	return next
}

func (e *Engine) spawnNext() {
	e.active = e.popQueue()
	e.canHold = true
	if e.board.Collides(e.active, 0, 0) {
		e.endGame()
	}
}

func (e *Engine) checkLevelUp() {
	if e.lines/e.cfg.LinesPerLevel < e.level {
		return
	}
	e.level++
	e.fallInterval = e.cfg.FallIntervalFor(e.level)
	if e.slowActive {
		e.fallInterval *= 2
	}
	e.logger.Info().Int("level", e.level).Dur("interval", e.fallInterval).Msg("level up")
}

func (e *Engine) activate(p Power, now time.Time) {
	effect, ok := e.cfg.Powers[p]
	if !ok {
		return
	}

	e.score += effect.Bonus
	if effect.SlowFor > 0 {
		// Each activation doubles the current interval; expiry restores the level interval.
		e.slowActive = true
		e.slowDeadline = now.Add(effect.SlowFor)
		e.fallInterval *= 2
	}
	if effect.WildPiece && len(e.queue) > 0 {
		e.queue[0] = e.spawnOrigin(NewPiece(ShapeI, PowerNone))
	}

	e.stats.PowerActivations[p]++
	e.logger.Info().Stringer("power", p).Int("score", e.score).Msg("power activated")
}

func (e *Engine) endGame() {
	e.state = StateGameOver
	e.logger.Info().
		Int("score", e.score).
		Int("level", e.level).
		Int("lines", e.lines).
		Msg("game over")
}
