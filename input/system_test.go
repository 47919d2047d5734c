package input_test

import (
	"testing"
	"time"

	"github.com/plus3/powertris/frame"
	"github.com/plus3/powertris/input"
	"github.com/plus3/powertris/tetris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onlyO struct{}

func (onlyO) IntN(int) int     { return int(tetris.ShapeO) }
func (onlyO) Float64() float64 { return 1 }

// keys is a KeySource backed by a set of held actions.
type keys map[input.Action]bool

func (k keys) Down(a input.Action) bool { return k[a] }

func newTestScheduler(t *testing.T, source input.KeySource) *frame.Scheduler {
	t.Helper()
	clock := tetris.NewManualClock(epoch)
	session := frame.NewSession(func(logger zerolog.Logger) *tetris.Engine {
		return tetris.NewEngine(tetris.DefaultConfig(),
			tetris.WithRandomizer(onlyO{}),
			tetris.WithClock(clock),
			tetris.WithLogger(logger),
		)
	}, zerolog.Nop())

	scheduler := frame.NewScheduler(session)
	scheduler.Register(&input.System{Source: source})
	return scheduler
}

func TestDispatch(t *testing.T) {
	engine := tetris.NewEngine(tetris.DefaultConfig(),
		tetris.WithRandomizer(onlyO{}),
		tetris.WithClock(tetris.NewManualClock(epoch)),
	)
	startX := engine.Active().X

	assert.True(t, input.Dispatch(engine, input.ActionLeft))
	assert.Equal(t, startX-1, engine.Active().X)
	assert.True(t, input.Dispatch(engine, input.ActionRight))
	assert.Equal(t, startX, engine.Active().X)
	assert.True(t, input.Dispatch(engine, input.ActionSoftDrop))
	assert.Equal(t, 1, engine.Active().Y)
	assert.True(t, input.Dispatch(engine, input.ActionHold))
	assert.False(t, input.Dispatch(engine, input.ActionHold))
	assert.False(t, input.Dispatch(engine, input.ActionRestart))

	assert.True(t, input.Dispatch(engine, input.ActionHardDrop))
	assert.Equal(t, 1, engine.Stats().PiecesLocked)
}

func TestSystem(t *testing.T) {
	t.Run("held left slides the piece with repeat", func(t *testing.T) {
		held := keys{input.ActionLeft: true}
		scheduler := newTestScheduler(t, held)
		engine := scheduler.Session().Engine()
		startX := engine.Active().X

		scheduler.Once(epoch)
		assert.Equal(t, startX-1, engine.Active().X)

		scheduler.Once(epoch.Add(100 * time.Millisecond))
		assert.Equal(t, startX-1, engine.Active().X)

		scheduler.Once(epoch.Add(250 * time.Millisecond))
		assert.Equal(t, startX-2, engine.Active().X)
	})

	t.Run("restart ignored while running", func(t *testing.T) {
		held := keys{input.ActionRestart: true}
		scheduler := newTestScheduler(t, held)
		before := scheduler.Session().Engine()

		scheduler.Once(epoch)
		assert.Same(t, before, scheduler.Session().Engine())
		assert.Equal(t, 0, scheduler.Session().Restarts())
	})

	t.Run("restart after game over", func(t *testing.T) {
		held := keys{}
		scheduler := newTestScheduler(t, held)
		before := scheduler.Session().Engine()

		for i := 0; !before.GameOver(); i++ {
			require.Less(t, i, 100)
			before.HardDrop()
		}

		held[input.ActionRestart] = true
		scheduler.Once(epoch)

		after := scheduler.Session().Engine()
		assert.NotSame(t, before, after)
		assert.False(t, after.GameOver())
		assert.Equal(t, 1, scheduler.Session().Restarts())
	})
}

func TestQueue(t *testing.T) {
	queue := &input.Queue{}
	scheduler := newTestScheduler(t, keys{})
	scheduler.Register(queue)
	engine := scheduler.Session().Engine()
	startX := engine.Active().X

	queue.Push(input.ActionLeft)
	queue.Push(input.ActionLeft)
	queue.Push(input.ActionRotate)
	assert.Equal(t, 3, queue.Len())

	scheduler.Once(epoch)
	assert.Equal(t, startX-2, engine.Active().X)
	assert.Equal(t, 0, queue.Len())

	queue.Push(input.ActionRestart)
	scheduler.Once(epoch.Add(time.Millisecond))
	assert.Same(t, engine, scheduler.Session().Engine())

	for !engine.GameOver() {
		engine.HardDrop()
	}
	queue.Push(input.ActionRestart)
	queue.Push(input.ActionRestart)
	scheduler.Once(epoch.Add(2 * time.Millisecond))
	assert.NotSame(t, engine, scheduler.Session().Engine())
	assert.Equal(t, 1, scheduler.Session().Restarts())
}
