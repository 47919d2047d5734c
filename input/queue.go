package input

import "github.com/plus3/powertris/frame"

// Queue is a System for event-driven frontends that only see key presses.
// Pushed actions are dispatched in order on the next frame.
type Queue struct {
	pending []Action
}

func (q *Queue) Push(a Action) {
	q.pending = append(q.pending, a)
}

// Len returns the number of actions waiting for the next frame.
func (q *Queue) Len() int {
	return len(q.pending)
}

func (q *Queue) Execute(f *frame.UpdateFrame) {
	engine := f.Session.Engine()
	for _, a := range q.pending {
		if a == ActionRestart {
			if Dispatch(engine, a) {
				f.Commands.Restart()
			}
			continue
		}
		Dispatch(engine, a)
	}
	q.pending = q.pending[:0]
}
