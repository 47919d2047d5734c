package tetris

import (
	"fmt"
	"image/color"
	"iter"
)

// Shape selects both the geometry and the base color of a piece.
type Shape int

const (
	ShapeI Shape = iota
	ShapeS
	ShapeZ
	ShapeT
	ShapeL
	ShapeJ
	ShapeO
)

// ShapeCount is the number of distinct tetromino shapes.
const ShapeCount = 7

var shapeMatrices = [ShapeCount][][]bool{
	{ // I
		{true, true, true, true},
	},
	{ // S
		{true, true, false},
		{false, true, true},
	},
	{ // Z
		{false, true, true},
		{true, true, false},
	},
	{ // T
		{true, true, true},
		{false, true, false},
	},
	{ // L
		{true, true, true},
		{true, false, false},
	},
	{ // J
		{true, true, true},
		{false, false, true},
	},
	{ // O
		{true, true},
		{true, true},
	},
}

var shapeColors = [ShapeCount]color.RGBA{
	{R: 0, G: 255, B: 255, A: 255}, // cyan
	{R: 0, G: 255, B: 0, A: 255},   // green
	{R: 255, G: 0, B: 0, A: 255},   // red
	{R: 128, G: 0, B: 128, A: 255}, // purple
	{R: 255, G: 165, B: 0, A: 255}, // orange
	{R: 0, G: 0, B: 255, A: 255},   // blue
	{R: 255, G: 255, B: 0, A: 255}, // yellow
}

var shapeNames = [ShapeCount]string{"I", "S", "Z", "T", "L", "J", "O"}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// BaseColor returns the color a non-power piece of this shape is drawn with.
func (s Shape) BaseColor() color.RGBA {
	return shapeColors[s]
}

// Piece is an immutable falling piece. Transforms return new values; the
// Cells matrix is never written after construction and may be shared.
type Piece struct {
	Shape    Shape
	Cells    [][]bool
	X, Y     int
	Color    color.RGBA
	Power    Power
	Rotation int
}

// NewPiece builds a piece at the origin in rotation 0. It panics on an invalid
// shape since that can only come from a programming error.
func NewPiece(shape Shape, power Power) Piece {
	if !shape.Valid() {
		panic(fmt.Sprintf("tetris: invalid shape index %d", int(shape)))
	}

	c := shape.BaseColor()
	if pc, ok := power.Color(); ok {
		c = pc
	}

	return Piece{
		Shape: shape,
		Cells: copyMatrix(shapeMatrices[shape]),
		Color: c,
		Power: power,
	}
}

// Width is the bounding-box width of the current rotation.
func (p Piece) Width() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Height is the bounding-box height of the current rotation.
func (p Piece) Height() int {
	return len(p.Cells)
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// At returns the piece placed with its bounding box at (x, y).
func (p Piece) At(x, y int) Piece {
	p.X = x
	p.Y = y
	return p
}

// Rotated returns the piece turned 90 degrees clockwise. The O piece is
// returned unchanged.
func (p Piece) Rotated() Piece {
	if p.Shape == ShapeO {
		return p
	}

	h := len(p.Cells)
	w := p.Width()
	rotated := make([][]bool, w)
	for i := range w {
		rotated[i] = make([]bool, h)
		for j := range h {
			rotated[i][j] = p.Cells[h-1-j][i]
		}
	}

	p.Cells = rotated
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// Unrotated is the inverse of Rotated: three forward turns.
func (p Piece) Unrotated() Piece {
	if p.Shape == ShapeO {
		return p
	}
	for range 3 {
		p = p.Rotated()
	}
	return p
}

// Blocks yields the absolute board coordinates of every filled cell.
func (p Piece) Blocks() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range p.Cells {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(p.X+c, p.Y+r) {
					return
				}
			}
		}
	}
}

func copyMatrix(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i := range m {
		out[i] = make([]bool, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}
