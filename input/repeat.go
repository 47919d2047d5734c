package input

import (
	"time"

	"github.com/kamstrup/intmap"
)

const (
	DefaultRepeatDelay    = 200 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)

type keyState struct {
	pressedAt  time.Time
	lastRepeat time.Time
}

// Repeater turns per-frame "is it down" samples into discrete firings. It
// remembers, per action, when the press started and when it last repeated.
type Repeater struct {
	Delay    time.Duration
	Interval time.Duration

	held *intmap.Map[Action, keyState]
}

func NewRepeater(delay, interval time.Duration) *Repeater {
	return &Repeater{
		Delay:    delay,
		Interval: interval,
		held:     intmap.New[Action, keyState](len(Actions)),
	}
}

// Update records the state of action at now and reports whether it fires.
// A new press fires at once. A held repeating action fires again once it has
// been down longer than Delay, then at most once per Interval.
func (r *Repeater) Update(action Action, down bool, now time.Time) bool {
	if !down {
		r.held.Del(action)
		return false
	}

	state, ok := r.held.Get(action)
	if !ok {
		r.held.Put(action, keyState{pressedAt: now})
		return true
	}

	if !action.Repeats() {
		return false
	}

	if now.Sub(state.pressedAt) > r.Delay && now.Sub(state.lastRepeat) > r.Interval {
		state.lastRepeat = now
		r.held.Put(action, state)
		return true
	}
	return false
}

// Held returns the number of actions currently down.
func (r *Repeater) Held() int {
	return r.held.Len()
}

// Reset forgets every held action.
func (r *Repeater) Reset() {
	for _, a := range Actions {
		r.held.Del(a)
	}
}
