package geom

// CellGrid is the 5x5 lattice of named intersection points inside a single
// cell, used by the property table and circle/arc catalog to describe
// fragment geometry without repeating raw coordinates everywhere:
//
//	     0 1 2 3 4           B C D
//	    0┌─┬─┬─┬─┐        A┌─┬─┬─┬─┐E
//	    1├─┼─┼─┼─┤         │ │ │ │ │
//	    2├─┼─┼─┼─┤        F├─G─H─I─┤J
//	    3├─┼─┼─┼─┤         │ │ │ │ │
//	    4├─┼─┼─┼─┤        K├─L─M─N─┤O
//	    5├─┼─┼─┼─┤         │ │ │ │ │
//	    6├─┼─┼─┼─┤        P├─Q─R─S─┤T
//	    7├─┼─┼─┼─┤         │ │ │ │ │
//	    8└─┴─┴─┴─┘        U└─┴─┴─┴─┘Y
//	                         V W X
var (
	A = gridPoint(0, 0)
	B = gridPoint(1, 0)
	C = gridPoint(2, 0)
	D = gridPoint(3, 0)
	E = gridPoint(4, 0)
	F = gridPoint(0, 2)
	G = gridPoint(1, 2)
	H = gridPoint(2, 2)
	I = gridPoint(3, 2)
	J = gridPoint(4, 2)
	K = gridPoint(0, 4)
	L = gridPoint(1, 4)
	M = gridPoint(2, 4)
	N = gridPoint(3, 4)
	O = gridPoint(4, 4)
	P = gridPoint(0, 6)
	Q = gridPoint(1, 6)
	R = gridPoint(2, 6)
	S = gridPoint(3, 6)
	T = gridPoint(4, 6)
	U = gridPoint(0, 8)
	V = gridPoint(1, 8)
	W = gridPoint(2, 8)
	X = gridPoint(3, 8)
	Y = gridPoint(4, 8)
)

const (
	horizontalSlices = 4
	verticalSlices   = 8
	unitX            = CellWidth / horizontalSlices
	unitY            = CellHeight / verticalSlices
)

// GridPoint returns the lattice intersection at sub-cell coordinates
// (x, y), x in [0,4], y in [0,8].
func GridPoint(x, y int) Point { return gridPoint(x, y) }

func gridPoint(x, y int) Point {
	return Point{X: float64(x) * unitX, Y: float64(y) * unitY}
}

// DiagonalLength is the length of the cell's diagonal, used as the padding
// of the bounding-box pre-check in fragment.IsContacting.
func DiagonalLength() float64 { return diagonalLength }
