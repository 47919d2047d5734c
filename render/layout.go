package render

import "image"

const (
	DefaultCellSize = 30
	PanelWidth      = 200
	panelPadding    = 10
	lineHeight      = 20
)

// Layout maps board coordinates to pixels. The board occupies the left of
// the screen and the side panel the right.
type Layout struct {
	CellSize int
	Cols     int
	Rows     int
}

func NewLayout(cellSize, cols, rows int) Layout {
	return Layout{CellSize: cellSize, Cols: cols, Rows: rows}
}

// ScreenSize returns the total window size in pixels.
func (l Layout) ScreenSize() (int, int) {
	return l.Cols*l.CellSize + PanelWidth, l.Rows * l.CellSize
}

// Board returns the pixel bounds of the playfield.
func (l Layout) Board() image.Rectangle {
	return image.Rect(0, 0, l.Cols*l.CellSize, l.Rows*l.CellSize)
}

// Panel returns the pixel bounds of the side panel.
func (l Layout) Panel() image.Rectangle {
	left := l.Cols * l.CellSize
	return image.Rect(left, 0, left+PanelWidth, l.Rows*l.CellSize)
}

// Cell returns the pixel bounds of board cell (x, y).
func (l Layout) Cell(x, y int) image.Rectangle {
	return image.Rect(x*l.CellSize, y*l.CellSize, (x+1)*l.CellSize, (y+1)*l.CellSize)
}

// PreviewCellSize is the cell size used for pieces drawn in the panel.
func (l Layout) PreviewCellSize() int {
	return max(4, l.CellSize*2/3)
}

// TextLine returns the top-left pixel of panel text line n.
func (l Layout) TextLine(n int) image.Point {
	p := l.Panel().Min
	return image.Pt(p.X+panelPadding, p.Y+panelPadding+n*lineHeight)
}

// PreviewSlot returns the top-left pixel of the i-th piece drawn below panel
// text line n. Each slot is three preview cells tall.
func (l Layout) PreviewSlot(n, i int) image.Point {
	p := l.TextLine(n + 1)
	return image.Pt(p.X, p.Y+i*3*l.PreviewCellSize())
}

// Center returns the middle of the playfield.
func (l Layout) Center() image.Point {
	b := l.Board()
	return image.Pt(b.Dx()/2, b.Dy()/2)
}
