package geom

import "math"

// Cell is an integer grid position: one ASCII column by one text line. Each
// cell spans a rectangle of CellWidth by CellHeight lattice units.
type Cell struct {
	X, Y int
}

// NewCell constructs a Cell.
func NewCell(x, y int) Cell { return Cell{X: x, Y: y} }

const (
	// CellWidth is the width of one cell in lattice units.
	CellWidth = 1.0
	// CellHeight is the height of one cell in lattice units.
	CellHeight = 2.0
)

// Compare orders cells row-major: by Y then X.
func (c Cell) Compare(other Cell) int {
	if c.Y != other.Y {
		if c.Y < other.Y {
			return -1
		}
		return 1
	}
	if c.X != other.X {
		if c.X < other.X {
			return -1
		}
		return 1
	}
	return 0
}

// Direction identifies one of the 8 compass neighbours of a cell, and is
// reused to describe a line's heading.
type Direction int

const (
	TopLeft Direction = iota
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case TopLeft:
		return BottomRight
	case Top:
		return Bottom
	case TopRight:
		return BottomLeft
	case Left:
		return Right
	case Right:
		return Left
	case BottomLeft:
		return TopRight
	case Bottom:
		return Top
	case BottomRight:
		return TopLeft
	default:
		return d
	}
}

// ThresholdLength returns a lattice distance for direction d. The merger
// does not consult it; its bullet reach is a fixed constant in
// internal/fragment.
func (d Direction) ThresholdLength() float64 {
	switch d {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return diagonalLength
	case Left, Right:
		return CellWidth
	default: // Top, Bottom
		return CellHeight
	}
}

var diagonalLength = math.Hypot(CellWidth, CellHeight)

// Neighbor returns the cell in direction d from c. Cells are not bounds
// checked here; callers restrict to cells actually present in a span.
func (c Cell) Neighbor(d Direction) Cell {
	switch d {
	case TopLeft:
		return Cell{c.X - 1, c.Y - 1}
	case Top:
		return Cell{c.X, c.Y - 1}
	case TopRight:
		return Cell{c.X + 1, c.Y - 1}
	case Left:
		return Cell{c.X - 1, c.Y}
	case Right:
		return Cell{c.X + 1, c.Y}
	case BottomLeft:
		return Cell{c.X - 1, c.Y + 1}
	case Bottom:
		return Cell{c.X, c.Y + 1}
	case BottomRight:
		return Cell{c.X + 1, c.Y + 1}
	default:
		return c
	}
}

// AllDirections enumerates the 8 neighbour directions in a fixed order,
// used wherever iteration order must be deterministic.
var AllDirections = [8]Direction{TopLeft, Top, TopRight, Left, Right, BottomLeft, Bottom, BottomRight}

// Neighbors returns the 8 neighbouring cells in AllDirections order.
func (c Cell) Neighbors() [8]Cell {
	var out [8]Cell
	for i, d := range AllDirections {
		out[i] = c.Neighbor(d)
	}
	return out
}

// AbsolutePosition translates a point expressed in cell-local lattice units
// (relative to the cell's top-left corner, see CellGrid) into the
// document's absolute coordinate space.
func (c Cell) AbsolutePosition(p Point) Point {
	return Point{
		X: p.X + float64(c.X)*CellWidth,
		Y: p.Y + float64(c.Y)*CellHeight,
	}
}

// TopLeftPoint returns the absolute top-left corner of the cell.
func (c Cell) TopLeftPoint() Point {
	return Point{X: float64(c.X) * CellWidth, Y: float64(c.Y) * CellHeight}
}
