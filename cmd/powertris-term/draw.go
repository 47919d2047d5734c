package main

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/powertris/render"
	"github.com/plus3/powertris/tetris"
)

const (
	boardLeft = 1
	boardTop  = 1
	cellWidth = 2
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func panelLeft(s tetris.Snapshot) int {
	return boardLeft + s.Width*cellWidth + 3
}

// drawCell paints one board cell at board coordinates (x, y).
func drawCell(screen tcell.Screen, x, y int, ch rune, style tcell.Style) {
	sx := boardLeft + 1 + x*cellWidth
	sy := boardTop + 1 + y
	for i := range cellWidth {
		screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func draw(screen tcell.Screen, s tetris.Snapshot, now time.Time) {
	screen.Clear()

	frame := tcell.StyleDefault.Foreground(rgb(render.GridLine))
	right := boardLeft + 1 + s.Width*cellWidth
	bottom := boardTop + 1 + s.Height
	for y := boardTop; y <= bottom; y++ {
		screen.SetContent(boardLeft, y, '│', nil, frame)
		screen.SetContent(right, y, '│', nil, frame)
	}
	for x := boardLeft; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, frame)
	}

	for y, row := range s.Cells {
		for x, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			style := tcell.StyleDefault.Background(rgb(cell.Color)).Foreground(tcell.ColorBlack)
			drawCell(screen, x, y, render.PowerGlyph(cell.PowerKind()), style)
		}
	}

	if !s.GameOver() {
		ghost := tcell.StyleDefault.Foreground(rgb(render.Dim(s.Active.Color)))
		for x, y := range s.Ghost().Blocks() {
			drawCell(screen, x, y, '░', ghost)
		}

		active := tcell.StyleDefault.Background(rgb(s.Active.Color)).Foreground(tcell.ColorBlack)
		for x, y := range s.Active.Blocks() {
			drawCell(screen, x, y, render.PowerGlyph(s.Active.Power), active)
		}
	}

	drawPanel(screen, s, now)

	if s.GameOver() {
		title, hint := render.GameOverText()
		mid := boardTop + s.Height/2
		banner := tcell.StyleDefault.Foreground(rgb(render.GameOverRed)).Bold(true)
		drawText(screen, boardLeft+1+(s.Width*cellWidth-len(title))/2, mid, title, banner)
		drawText(screen, boardLeft+1+max(0, s.Width*cellWidth-len(hint))/2, mid+1, hint, tcell.StyleDefault)
	}

	screen.Show()
}

func drawPanel(screen tcell.Screen, s tetris.Snapshot, now time.Time) {
	left := panelLeft(s)
	text := tcell.StyleDefault

	// Panel rows are laid out for pixels; in the terminal each label gets one
	// row and previews take two.
	row := boardTop
	for _, line := range render.PanelText(s, now) {
		drawText(screen, left, row, line.Text, text)
		row++

		switch line.Row {
		case render.LineNext:
			for _, p := range s.Queue {
				drawPreview(screen, left, row, p)
				row += 3
			}
		case render.LineHold:
			if s.HasHeld {
				drawPreview(screen, left, row, s.Held)
			}
			row += 3
		}
	}
}

func drawPreview(screen tcell.Screen, left, top int, p tetris.Piece) {
	style := tcell.StyleDefault.Background(rgb(p.Color))
	for x, y := range p.At(0, 0).Blocks() {
		for i := range cellWidth {
			screen.SetContent(left+x*cellWidth+i, top+y, render.PowerGlyph(p.Power), nil, style)
		}
	}
}
