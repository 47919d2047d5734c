package tetris

import "fmt"

// Board is the fixed-size grid of locked cells. Row 0 is the top.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board. Non-positive dimensions panic.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at column x, row y. Out of range coordinates panic.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
	return b.cells[y*b.width+x]
}

// Set overwrites the cell at column x, row y.
func (b *Board) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
	b.cells[y*b.width+x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Cell {
	row := make([]Cell, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row
}

// Collides reports whether the piece, shifted by (dx, dy), overlaps a wall, the
// floor or a locked cell.
func (b *Board) Collides(p Piece, dx, dy int) bool {
	for x, y := range p.Blocks() {
		x += dx
		y += dy
		if !b.inBounds(x, y) {
			return true
		}
		if !b.cells[y*b.width+x].IsEmpty() {
			return true
		}
	}
	return false
}

// Lock writes the piece into the grid at its current position. The caller is
// expected to have checked Collides(p, 0, 0).
func (b *Board) Lock(p Piece) {
	cell := OccupiedCell(p.Color)
	if p.Power != PowerNone {
		cell = OccupiedPowerCell(p.Color, p.Power)
	}

	for x, y := range p.Blocks() {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = cell
		}
	}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and compacts the rest downward.
//
// At most one power is reported per call: rows are scanned bottom to top and
// the last power-tagged cell seen left to right in a full row replaces any
// power found earlier.
func (b *Board) ClearFullRows() (int, Power) {
	cleared := 0
	triggered := PowerNone
	full := make([]bool, b.height)

	for y := b.height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		full[y] = true
		cleared++

		rowPower := PowerNone
		for _, c := range b.cells[y*b.width : (y+1)*b.width] {
			if p := c.PowerKind(); p != PowerNone {
				rowPower = p
			}
		}
		if rowPower != PowerNone {
			triggered = rowPower
		}
	}

	if cleared == 0 {
		return 0, PowerNone
	}

	compacted := make([]Cell, len(b.cells))
	dst := b.height - 1
	for y := b.height - 1; y >= 0; y-- {
		if full[y] {
			continue
		}
		copy(compacted[dst*b.width:(dst+1)*b.width], b.cells[y*b.width:(y+1)*b.width])
		dst--
	}
	b.cells = compacted

	return cleared, triggered
}

// OccupiedCount returns the number of non-empty cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}
