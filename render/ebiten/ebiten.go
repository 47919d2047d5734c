// Package ebiten draws game snapshots onto Ebiten images.
package ebiten

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/powertris/render"
	"github.com/plus3/powertris/tetris"
)

// Renderer draws the playfield, the falling and ghost pieces, the side panel
// and the game over banner.
type Renderer struct {
	Layout render.Layout
}

func NewRenderer(layout render.Layout) *Renderer {
	return &Renderer{Layout: layout}
}

// Draw renders s onto screen. now drives the slow countdown.
func (r *Renderer) Draw(screen *ebiten.Image, s tetris.Snapshot, now time.Time) {
	screen.Fill(render.Background)

	r.drawGrid(screen, s)
	if !s.GameOver() {
		r.drawPiece(screen, s.Ghost(), image.Point{}, r.Layout.CellSize, true)
		r.drawPiece(screen, s.Active, image.Point{}, r.Layout.CellSize, false)
	}
	r.drawPanel(screen, s, now)

	if s.GameOver() {
		r.drawGameOver(screen)
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, s tetris.Snapshot) {
	for y, row := range s.Cells {
		for x, cell := range row {
			rect := r.Layout.Cell(x, y)
			if !cell.IsEmpty() {
				fillRect(screen, rect, cell.Color)
			}
			strokeRect(screen, rect, render.LockedBorder, render.CellBorder(cell))
		}
	}
}

// drawPiece draws p at its board position, shifted by origin pixels.
func (r *Renderer) drawPiece(screen *ebiten.Image, p tetris.Piece, origin image.Point, size int, ghost bool) {
	fill := p.Color
	if ghost {
		fill = render.Dim(p.Color)
	}

	for x, y := range p.Blocks() {
		rect := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size).Add(origin)
		fillRect(screen, rect, fill)
		if !ghost {
			strokeRect(screen, rect, render.ActiveBorder, render.PieceBorder(p))
		}
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, s tetris.Snapshot, now time.Time) {
	fillRect(screen, r.Layout.Panel(), render.PanelBackground)

	for _, line := range render.PanelText(s, now) {
		pt := r.Layout.TextLine(line.Row)
		ebitenutil.DebugPrintAt(screen, line.Text, pt.X, pt.Y)
	}

	size := r.Layout.PreviewCellSize()
	for i, p := range s.Queue {
		r.drawPiece(screen, p.At(0, 0), r.Layout.PreviewSlot(render.LineNext, i), size, false)
	}
	if s.HasHeld {
		r.drawPiece(screen, s.Held.At(0, 0), r.Layout.PreviewSlot(render.LineHold, 0), size, false)
	}
}

func (r *Renderer) drawGameOver(screen *ebiten.Image) {
	fillRect(screen, r.Layout.Board(), render.Overlay)

	title, hint := render.GameOverText()
	c := r.Layout.Center()
	banner := image.Rect(0, c.Y-30, r.Layout.Board().Dx(), c.Y+30)
	fillRect(screen, banner, render.GameOverRed)

	ebitenutil.DebugPrintAt(screen, title, c.X-len(title)*3, c.Y-20)
	ebitenutil.DebugPrintAt(screen, hint, c.X-len(hint)*3, c.Y+4)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}
