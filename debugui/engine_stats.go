package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/powertris/frame"
	"github.com/plus3/powertris/tetris"
)

// RenderEngineStats draws the session and engine counters window, initially
// at pixel x left.
func RenderEngineStats(session *frame.Session, left float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(left, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := session.Engine()
	snap := engine.Snapshot()

	imgui.Text(fmt.Sprintf("Session: %s", session.ID))
	imgui.Text(fmt.Sprintf("Restarts: %d", session.Restarts()))
	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", snap.Score, snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Fall Interval: %s", snap.FallInterval))
	if snap.SlowActive {
		imgui.Text(fmt.Sprintf("Slow until: %s", snap.SlowDeadline.Format("15:04:05.000")))
	}
	imgui.Text(fmt.Sprintf("Active: %s (%s) at %d,%d", snap.Active.Shape, snap.Active.Power, snap.Active.X, snap.Active.Y))
	imgui.Text(fmt.Sprintf("Last Lock: %d rows, %s", snap.LastLock.Lines, snap.LastLock.Power))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pieces Locked: %d", snap.Stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Hard Drops: %d", snap.Stats.HardDrops))
	imgui.Text(fmt.Sprintf("Holds: %d", snap.Stats.Holds))
	for _, p := range []tetris.Power{tetris.PowerBomb, tetris.PowerSlow, tetris.PowerWild} {
		imgui.BulletText(fmt.Sprintf("%s: %d", p, snap.Stats.PowerActivations[p]))
	}

	Inspect("Config", engine.Config())

	imgui.End()
}
