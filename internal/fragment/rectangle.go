package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// Rectangle is an axis-aligned box promoted by the Endorser from four
// touching Line fragments (or eight, for a rounded corner variant).
// Radius is nil for a square-cornered rectangle and non-nil for rounded.
type Rectangle struct {
	Start, End geom.Point
	Radius     *float64
	Broken     bool
	Filled     bool
}

func (*Rectangle) isFragment() {}

// NewRectangle builds a Rectangle with corners normalized so Start is the
// top-left and End the bottom-right.
func NewRectangle(a, b geom.Point, radius *float64) *Rectangle {
	start := geom.Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	end := geom.Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return &Rectangle{Start: start, End: end, Radius: radius}
}

// Width returns the rectangle's horizontal extent.
func (r *Rectangle) Width() float64 { return r.End.X - r.Start.X }

// Height returns the rectangle's vertical extent.
func (r *Rectangle) Height() float64 { return r.End.Y - r.Start.Y }

// IsRounded reports whether the rectangle has a corner radius.
func (r *Rectangle) IsRounded() bool { return r.Radius != nil && *r.Radius > 0 }
