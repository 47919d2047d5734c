// Package render holds the device-independent parts of drawing a game: the
// palette, the screen layout, and the side panel text.
package render

import (
	"image/color"

	"github.com/plus3/powertris/tetris"
)

var (
	Background      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	GridLine        = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	PanelBackground = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Overlay         = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	GameOverRed     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Border widths for locked cells and the falling piece.
const (
	LockedBorder = 1
	ActiveBorder = 2
)

// Lighten adds amount to each channel, saturating at 255.
func Lighten(c color.RGBA, amount uint8) color.RGBA {
	return color.RGBA{
		R: addClamp(c.R, amount),
		G: addClamp(c.G, amount),
		B: addClamp(c.B, amount),
		A: c.A,
	}
}

// Dim halves each color channel. Ghost pieces are drawn with it.
func Dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// CellBorder is the outline color of a locked cell.
func CellBorder(c tetris.Cell) color.RGBA {
	if c.IsEmpty() {
		return GridLine
	}
	return Lighten(c.Color, 50)
}

// PieceBorder is the outline color of the falling piece.
func PieceBorder(p tetris.Piece) color.RGBA {
	return Lighten(p.Color, 70)
}

func addClamp(v, amount uint8) uint8 {
	if int(v)+int(amount) > 255 {
		return 255
	}
	return v + amount
}
