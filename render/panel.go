package render

import (
	"fmt"
	"time"

	"github.com/plus3/powertris/tetris"
)

// Panel text rows, used by drivers to position previews next to the labels.
const (
	LineScore = 0
	LineLevel = 1
	LineLines = 2
	LineNext  = 4
	LineHold  = 14
	LineSlow  = 19
)

// PanelLine is one label of the side panel.
type PanelLine struct {
	Row  int
	Text string
}

// PanelText returns the side panel labels for s. now is used for the slow
// countdown.
func PanelText(s tetris.Snapshot, now time.Time) []PanelLine {
	lines := []PanelLine{
		{LineScore, fmt.Sprintf("Score: %d", s.Score)},
		{LineLevel, fmt.Sprintf("Level: %d", s.Level)},
		{LineLines, fmt.Sprintf("Lines: %d", s.Lines)},
		{LineNext, "Next:"},
		{LineHold, holdLabel(s)},
	}

	if s.SlowActive {
		left := max(0, s.SlowDeadline.Sub(now))
		lines = append(lines, PanelLine{LineSlow, fmt.Sprintf("SLOW %.1fs", left.Seconds())})
	}
	return lines
}

func holdLabel(s tetris.Snapshot) string {
	if s.HasHeld && !s.CanHold {
		return "Hold: (used)"
	}
	return "Hold:"
}

// GameOverText is the banner shown once the game has ended.
func GameOverText() (title, hint string) {
	return "GAME OVER", "Press 'R' to Restart"
}

// PowerGlyph is a one-character marker for power cells in text frontends.
func PowerGlyph(p tetris.Power) rune {
	switch p {
	case tetris.PowerBomb:
		return 'B'
	case tetris.PowerSlow:
		return 'S'
	case tetris.PowerWild:
		return 'W'
	default:
		return ' '
	}
}
