package debugui

import "github.com/plus3/powertris/frame"

// Install registers an ImguiSystem with the stock debug windows on scheduler.
// Windows are first placed in a column starting at pixel x left.
func Install(scheduler *frame.Scheduler, left float32) *ImguiSystem {
	perf := NewPerformanceStats(120)
	perf.Left = left
	timer := NewFrameTimer()

	system := &ImguiSystem{}
	system.Add(
		ImguiItem{Render: func() { perf.Render(scheduler, timer.GetDeltaTime()) }},
		ImguiItem{Render: func() { RenderEngineStats(scheduler.Session(), left) }},
	)
	scheduler.Register(system)
	return system
}
