package fragment

import (
	"math"

	"github.com/asciigeom/bobdiagram/internal/geom"
)

// Arc is a circular arc from Start to End around Center with the given
// Radius. Sweep selects which of the two possible arcs (the minor or major
// one) the path travels; Go's SVG arc command needs this explicitly since
// two points and a radius describe two arcs.
type Arc struct {
	Start, End geom.Point
	Center     geom.Point
	Radius     float64
	Sweep      bool // true = clockwise sweep flag for the SVG "A" command
}

func (*Arc) isFragment() {}

// NewArc builds an Arc, canonicalizing endpoint order the same way Line
// does so merges and comparisons have one orientation to consider.
func NewArc(start, end, center geom.Point, radius float64, sweep bool) *Arc {
	if end.Less(start) {
		start, end, sweep = end, start, !sweep
	}
	return &Arc{Start: start, End: end, Center: center, Radius: radius, Sweep: sweep}
}

// IsRightAngle reports whether the arc subtends exactly a quarter turn
// (90 degrees, within geom.Epsilon), the shape used for rounded-rectangle
// corners (see internal/endorse).
func (a *Arc) IsRightAngle() bool {
	v1 := geom.Point{X: a.Start.X - a.Center.X, Y: a.Start.Y - a.Center.Y}
	v2 := geom.Point{X: a.End.X - a.Center.X, Y: a.End.Y - a.Center.Y}
	dot := v1.X*v2.X + v1.Y*v2.Y
	return math.Abs(dot) <= geom.Epsilon
}

// IsAxisAligned reports whether both endpoints lie on the horizontal or
// vertical axis through Center, the condition for a corner-rounding arc
// (as opposed to an arbitrary open arc read from the template catalog).
func (a *Arc) IsAxisAligned() bool {
	onAxis := func(p geom.Point) bool {
		dx, dy := math.Abs(p.X-a.Center.X), math.Abs(p.Y-a.Center.Y)
		return dx <= geom.Epsilon || dy <= geom.Epsilon
	}
	return onAxis(a.Start) && onAxis(a.End)
}

// SameCircle reports whether a and other lie on the same circle (equal
// center and radius within Epsilon), the precondition for merging two
// catalog-sourced arcs into a wider arc or full circle.
func (a *Arc) SameCircle(other *Arc) bool {
	return a.Center.Equal(other.Center) && math.Abs(a.Radius-other.Radius) <= geom.Epsilon
}
