// Package fragment implements the Fragment tagged variant described in
// spec section 3 ("Data model") and its capability set (bounds, merge,
// is_contacting, absolute_position, scale, ordering). Rather than modeling
// the source's trait objects with Go interfaces-per-capability, every
// concrete case is a plain struct and the ~8 operations are free functions
// that dispatch on a type switch — see design notes: "dispatch from a
// match/switch on the tag; do not re-introduce inheritance."
package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// Fragment is the tag interface every case implements. It carries no
// behavior of its own; all operations live in the dispatcher functions
// below so that adding an operation never requires touching every case.
type Fragment interface {
	isFragment()
}

// Bounds returns the axis-aligned (min, max) corners of f.
func Bounds(f Fragment) (geom.Point, geom.Point) {
	switch v := f.(type) {
	case *Line:
		return polygonBounds([]geom.Point{v.Start, v.End})
	case *MarkerLine:
		return Bounds(&v.Line)
	case *Arc:
		return polygonBounds([]geom.Point{v.Start, v.End})
	case *Circle:
		r := v.Radius
		return geom.Point{X: v.Center.X - r, Y: v.Center.Y - r},
			geom.Point{X: v.Center.X + r, Y: v.Center.Y + r}
	case *Rectangle:
		return v.Start, v.End
	case *Polygon:
		return polygonBounds(v.Points)
	case *CellText:
		p := v.Cell.TopLeftPoint()
		return p, p.Translate(geom.CellWidth, geom.CellHeight)
	case *Text:
		return v.Point, v.Point
	default:
		panic("fragment: Bounds: unknown fragment case")
	}
}

func polygonBounds(points []geom.Point) (geom.Point, geom.Point) {
	if len(points) == 0 {
		return geom.Point{}, geom.Point{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = geom.Point{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = geom.Point{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	return lo, hi
}

// AbsolutePosition translates every coordinate in f by the owning cell's
// offset, converting cell-local lattice coordinates to document space.
func AbsolutePosition(f Fragment, cell geom.Cell) Fragment {
	switch v := f.(type) {
	case *Line:
		l := *v
		l.Start = cell.AbsolutePosition(v.Start)
		l.End = cell.AbsolutePosition(v.End)
		return &l
	case *MarkerLine:
		ml := *v
		abs := AbsolutePosition(&v.Line, cell).(*Line)
		ml.Line = *abs
		return &ml
	case *Arc:
		a := *v
		a.Start = cell.AbsolutePosition(v.Start)
		a.End = cell.AbsolutePosition(v.End)
		return &a
	case *Circle:
		c := *v
		c.Center = cell.AbsolutePosition(v.Center)
		return &c
	case *Rectangle:
		r := *v
		r.Start = cell.AbsolutePosition(v.Start)
		r.End = cell.AbsolutePosition(v.End)
		return &r
	case *Polygon:
		p := *v
		pts := make([]geom.Point, len(v.Points))
		for i, pt := range v.Points {
			pts[i] = cell.AbsolutePosition(pt)
		}
		p.Points = pts
		return &p
	case *CellText:
		t := *v
		return &t
	case *Text:
		t := *v
		t.Point = cell.AbsolutePosition(v.Point)
		return &t
	default:
		panic("fragment: AbsolutePosition: unknown fragment case")
	}
}

// Scale multiplies every coordinate (and radius) in f by s.
func Scale(f Fragment, s float64) Fragment {
	switch v := f.(type) {
	case *Line:
		l := *v
		l.Start, l.End = v.Start.Scale(s), v.End.Scale(s)
		return &l
	case *MarkerLine:
		ml := *v
		ml.Line = *Scale(&v.Line, s).(*Line)
		return &ml
	case *Arc:
		a := *v
		a.Start, a.End = v.Start.Scale(s), v.End.Scale(s)
		a.Radius *= s
		return &a
	case *Circle:
		c := *v
		c.Center = v.Center.Scale(s)
		c.Radius *= s
		return &c
	case *Rectangle:
		r := *v
		r.Start, r.End = v.Start.Scale(s), v.End.Scale(s)
		if v.Radius != nil {
			scaled := *v.Radius * s
			r.Radius = &scaled
		}
		return &r
	case *Polygon:
		p := *v
		pts := make([]geom.Point, len(v.Points))
		for i, pt := range v.Points {
			pts[i] = pt.Scale(s)
		}
		p.Points = pts
		return &p
	case *CellText:
		t := *v
		return &t
	case *Text:
		t := *v
		t.Point = v.Point.Scale(s)
		return &t
	default:
		panic("fragment: Scale: unknown fragment case")
	}
}

// IsBroken reports whether f represents a dashed/gapped primitive.
func IsBroken(f Fragment) bool {
	switch v := f.(type) {
	case *Line:
		return v.Broken
	case *MarkerLine:
		return v.Line.Broken
	case *Rectangle:
		return v.Broken
	default:
		return false
	}
}

// CSSTags returns the CSS class names f contributes to its enclosing
// fragment when f is a `{...}`-shaped text label (see internal/tree).
func CSSTags(f Fragment) []string {
	switch v := f.(type) {
	case *CellText:
		if tag, ok := classNameTag(v.Text); ok {
			return []string{tag}
		}
	case *Text:
		if tag, ok := classNameTag(v.Text); ok {
			return []string{tag}
		}
	}
	return nil
}
