package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// PolygonTag classifies the small closed shapes drawn for arrowheads and
// bullets that don't fit the Line/MarkerLine model (a filled triangle
// pointing diagonally, or a diamond bullet).
type PolygonTag int

const (
	ArrowTopLeft PolygonTag = iota
	ArrowTop
	ArrowTopRight
	ArrowLeft
	ArrowRight
	ArrowBottomLeft
	ArrowBottom
	ArrowBottomRight
	DiamondBullet
)

// GetMarker reports the Marker a polygon tag corresponds to as a line-end
// marker, and whether the tag has one at all (DiamondBullet does not
// correspond to a line-end marker). Merge has no Polygon case: a Polygon is
// never combined with a Line into a MarkerLine.
func (t PolygonTag) GetMarker() (Marker, bool) {
	switch t {
	case ArrowTopLeft, ArrowTop, ArrowTopRight, ArrowLeft, ArrowRight,
		ArrowBottomLeft, ArrowBottom, ArrowBottomRight:
		return Arrow, true
	default:
		return 0, false
	}
}

// Polygon is a closed shape made of an ordered point list, used for
// arrowhead triangles and bullet diamonds. Neither the glyph property
// table nor the circle template catalog produces Polygons.
type Polygon struct {
	Points []geom.Point
	Tag    PolygonTag
	Filled bool
}

func (*Polygon) isFragment() {}

// NewPolygon builds a Polygon from its ordered vertex list.
func NewPolygon(points []geom.Point, tag PolygonTag, filled bool) *Polygon {
	return &Polygon{Points: points, Tag: tag, Filled: filled}
}
