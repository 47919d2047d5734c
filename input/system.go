package input

import "github.com/plus3/powertris/frame"

// KeySource reports whether the key bound to an action is currently down.
type KeySource interface {
	Down(a Action) bool
}

// System polls a KeySource every frame and forwards the resulting actions to
// the session's engine. Restart requests are deferred to the end of the frame.
type System struct {
	Source   KeySource
	Repeater *Repeater
}

func (s *System) Execute(f *frame.UpdateFrame) {
	if s.Repeater == nil {
		s.Repeater = NewRepeater(DefaultRepeatDelay, DefaultRepeatInterval)
	}

	engine := f.Session.Engine()
	for _, a := range Actions {
		if !s.Repeater.Update(a, s.Source.Down(a), f.Now) {
			continue
		}
		if a == ActionRestart {
			if Dispatch(engine, a) {
				f.Commands.Restart()
			}
			continue
		}
		Dispatch(engine, a)
	}
}
