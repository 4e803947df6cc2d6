package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// Circle is a full circle: either read from the template catalog
// (internal/catalog) when a run of cells matches one of its fixed
// diameters, or a small bullet circle contributed by a single glyph.
type Circle struct {
	Center geom.Point
	Radius float64
	Filled bool
}

func (*Circle) isFragment() {}

// NewCircle builds a Circle.
func NewCircle(center geom.Point, radius float64, filled bool) *Circle {
	return &Circle{Center: center, Radius: radius, Filled: filled}
}
