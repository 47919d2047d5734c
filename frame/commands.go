package frame

// Commands buffers operations that must not happen while systems are still
// reading the current engine. They are applied when the frame ends.
type Commands struct {
	restart bool
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function to run after all systems have executed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Restart queues replacing the session's engine with a fresh one. Multiple
// requests in the same frame collapse into one restart.
func (c *Commands) Restart() {
	c.restart = true
}

// Flush applies the buffered commands to the session, resetting the buffer state
func (c *Commands) Flush(session *Session) {
	if c.restart {
		session.Restart()
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.restart = false
	c.defers = c.defers[:0]
}
