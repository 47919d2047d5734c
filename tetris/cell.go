package tetris

import "image/color"

// CellKind discriminates the three states a board cell can be in.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellOccupied
	CellOccupiedPower
)

// Cell is a single grid square. Color is meaningful for occupied cells and
// Power only for CellOccupiedPower.
type Cell struct {
	Kind  CellKind
	Color color.RGBA
	Power Power
}

// EmptyCell returns an unoccupied cell.
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedCell returns a locked cell of the given color.
func OccupiedCell(c color.RGBA) Cell {
	return Cell{Kind: CellOccupied, Color: c}
}

// OccupiedPowerCell returns a locked cell that will trigger p when its row clears.
func OccupiedPowerCell(c color.RGBA, p Power) Cell {
	return Cell{Kind: CellOccupiedPower, Color: c, Power: p}
}

// IsEmpty reports whether no block occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// PowerKind returns the power carried by the cell, or PowerNone.
func (c Cell) PowerKind() Power {
	switch c.Kind {
	case CellOccupiedPower:
		return c.Power
	case CellEmpty, CellOccupied:
		return PowerNone
	default:
		panic("tetris: unknown cell kind")
	}
}
