package frame

import (
	"reflect"
	"time"
)

// FrameStats summarises the frames a scheduler has run. Frame durations cover
// every system plus the command flush.
type FrameStats struct {
	Frames  int64
	Last    time.Duration
	Avg     time.Duration
	Max     time.Duration
	Systems []SystemStats
}

// SystemStats is the time a single system spent across frames.
type SystemStats struct {
	Name string
	Runs int64
	Last time.Duration
	Avg  time.Duration
	Max  time.Duration
}

type timing struct {
	count int64
	total time.Duration
	last  time.Duration
	max   time.Duration
}

func (t *timing) observe(d time.Duration) {
	t.count++
	t.total += d
	t.last = d
	t.max = max(t.max, d)
}

func (t *timing) avg() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.total / time.Duration(t.count)
}

type entry struct {
	name   string
	system System
	timing timing
}

// Scheduler runs registered systems against a session once per frame.
type Scheduler struct {
	session *Session
	entries []*entry
	frames  timing
	lastNow time.Time
}

func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{session: session}
}

// Session returns the session the scheduler drives.
func (s *Scheduler) Session() *Session {
	return s.session
}

// Register appends a system to the execution order. It is reported under its
// type name.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.entries = append(s.entries, &entry{name: t.Name(), system: system})
}

// Once executes all registered systems for a frame at time now, then flushes
// the frame's commands. DeltaTime is zero on the first frame.
func (s *Scheduler) Once(now time.Time) {
	frameStart := time.Now()

	var dt float64
	if !s.lastNow.IsZero() {
		dt = now.Sub(s.lastNow).Seconds()
	}
	s.lastNow = now

	frame := newUpdateFrame(now, dt, s.session)
	for _, e := range s.entries {
		start := time.Now()
		e.system.Execute(frame)
		e.timing.observe(time.Since(start))
	}
	frame.Commands.Flush(s.session)

	s.frames.observe(time.Since(frameStart))
}

// Stats returns whole-frame timings and the share of each system.
func (s *Scheduler) Stats() FrameStats {
	stats := FrameStats{
		Frames:  s.frames.count,
		Last:    s.frames.last,
		Avg:     s.frames.avg(),
		Max:     s.frames.max,
		Systems: make([]SystemStats, len(s.entries)),
	}
	for i, e := range s.entries {
		stats.Systems[i] = SystemStats{
			Name: e.name,
			Runs: e.timing.count,
			Last: e.timing.last,
			Avg:  e.timing.avg(),
			Max:  e.timing.max,
		}
	}
	return stats
}
