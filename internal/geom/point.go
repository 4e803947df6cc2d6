// Package geom provides the coordinate primitives the rest of the pipeline
// builds on: lattice-aligned points with a deterministic total order, and
// the integer cell grid the ASCII/Unicode input is tokenized into.
package geom

import "math"

// Epsilon is the tolerance used for all geometric equality in the pipeline,
// in lattice units. Every stage from the fragment buffer through the
// endorser compares points, slopes, and distances using this tolerance so
// that sorts, merges, and containment tests stay mutually consistent.
const Epsilon = 0.01

// Point is a 2-D coordinate in lattice units, with a total order of (y, then
// x) baked into comparison so that downstream sorts are coherent with
// geometric equality.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Compare returns -1, 0, or 1 ordering p before, equal to, or after other,
// using the (y, then x) order with Epsilon tolerance.
func (p Point) Compare(other Point) int {
	if c := cmpFloat(p.Y, other.Y); c != 0 {
		return c
	}
	return cmpFloat(p.X, other.X)
}

func cmpFloat(a, b float64) int {
	if math.Abs(a-b) <= Epsilon {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Less reports whether p sorts before other.
func (p Point) Less(other Point) bool { return p.Compare(other) < 0 }

// Equal reports whether p and other are the same point within Epsilon.
func (p Point) Equal(other Point) bool { return p.Compare(other) == 0 }

// Min returns whichever of p, other sorts first.
func (p Point) Min(other Point) Point {
	if p.Compare(other) <= 0 {
		return p
	}
	return other
}

// Max returns whichever of p, other sorts last.
func (p Point) Max(other Point) Point {
	if p.Compare(other) >= 0 {
		return p
	}
	return other
}

// Add returns the component-wise sum.
func (p Point) Add(other Point) Point { return Point{p.X + other.X, p.Y + other.Y} }

// Sub returns the component-wise difference.
func (p Point) Sub(other Point) Point { return Point{p.X - other.X, p.Y - other.Y} }

// Scale multiplies both components by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Translate shifts p by (dx, dy).
func (p Point) Translate(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx, dy := p.X-other.X, p.Y-other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Align snaps p to the half-integer grid svgbob draws bullets and markers
// on: x to the nearest N+0.5, y to the nearest odd integer.
func (p Point) Align() Point {
	x := math.Floor(p.X) + 0.5
	y := 2*math.Floor(p.Y/2) + 1
	return Point{X: x, Y: y}
}

// Cross returns the z-component of the cross product of (b-a) and (c-a);
// zero (within Epsilon) means a, b, c are collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Collinear reports whether a, b, c lie on a common line within Epsilon.
func Collinear(a, b, c Point) bool {
	return math.Abs(Cross(a, b, c)) <= Epsilon
}
