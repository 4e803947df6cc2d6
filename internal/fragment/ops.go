package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// IsContacting reports whether a and b touch closely enough to belong to
// the same contact group: two Lines, MarkerLines or Arcs share an endpoint
// (within geom.Epsilon), or a Line's endpoint lies within a Circle's radius
// (plus geom.Epsilon) of its center.
func IsContacting(a, b Fragment) bool {
	aMin, aMax := Bounds(a)
	bMin, bMax := Bounds(b)
	if !aabbOverlaps(aMin, aMax, bMin, bMax) {
		return false
	}
	switch av := a.(type) {
	case *Line:
		return lineContacts(av, b)
	case *MarkerLine:
		return lineContacts(&av.Line, b)
	case *Arc:
		return arcContacts(av, b)
	case *Circle:
		return circleContacts(av, b)
	default:
		return false
	}
}

func aabbOverlaps(aMin, aMax, bMin, bMax geom.Point) bool {
	pad := geom.DiagonalLength()
	return aMin.X-pad <= bMax.X && bMin.X-pad <= aMax.X &&
		aMin.Y-pad <= bMax.Y && bMin.Y-pad <= aMax.Y
}

func lineContacts(l *Line, b Fragment) bool {
	switch bv := b.(type) {
	case *Line:
		return endpointsTouch(l.Start, l.End, bv.Start, bv.End)
	case *MarkerLine:
		return endpointsTouch(l.Start, l.End, bv.Start, bv.End)
	case *Arc:
		return endpointsTouch(l.Start, l.End, bv.Start, bv.End)
	case *Circle:
		return l.Start.Distance(bv.Center) <= bv.Radius+geom.Epsilon ||
			l.End.Distance(bv.Center) <= bv.Radius+geom.Epsilon
	default:
		return false
	}
}

func arcContacts(a *Arc, b Fragment) bool {
	switch bv := b.(type) {
	case *Line:
		return endpointsTouch(a.Start, a.End, bv.Start, bv.End)
	case *MarkerLine:
		return endpointsTouch(a.Start, a.End, bv.Start, bv.End)
	case *Arc:
		return endpointsTouch(a.Start, a.End, bv.Start, bv.End)
	default:
		return false
	}
}

func circleContacts(c *Circle, b Fragment) bool {
	switch bv := b.(type) {
	case *Line:
		return bv.Start.Distance(c.Center) <= c.Radius+geom.Epsilon ||
			bv.End.Distance(c.Center) <= c.Radius+geom.Epsilon
	default:
		return false
	}
}

// endpointsTouch reports whether any endpoint of (s1,e1) lies within
// geom.Epsilon of any endpoint of (s2,e2).
func endpointsTouch(s1, e1, s2, e2 geom.Point) bool {
	return s1.Equal(s2) || s1.Equal(e2) || e1.Equal(s2) || e1.Equal(e2)
}

// Merge attempts to combine a and b into a single, simpler fragment: two
// collinear touching Lines into one longer Line; a Line touching a
// MarkerLine's stub into one longer MarkerLine, keeping the marker
// anchored to its original endpoint; a Line touching a bullet-sized Circle
// into a MarkerLine terminated by the matching bullet Marker; two
// same-circle Arcs into a wider Arc or full Circle. It reports ok=false
// when a and b don't combine, in which case callers keep both unchanged.
func Merge(a, b Fragment) (Fragment, bool) {
	if l1, ok := a.(*Line); ok {
		switch bv := b.(type) {
		case *Line:
			return mergeLines(l1, bv)
		case *MarkerLine:
			return mergeLineMarkerLine(l1, bv)
		case *Circle:
			return mergeLineBullet(l1, bv)
		}
	}
	if ml, ok := a.(*MarkerLine); ok {
		if l2, ok := b.(*Line); ok {
			return mergeLineMarkerLine(l2, ml)
		}
	}
	if c, ok := a.(*Circle); ok {
		if l2, ok := b.(*Line); ok {
			return mergeLineBullet(l2, c)
		}
	}
	if arc1, ok := a.(*Arc); ok {
		if arc2, ok := b.(*Arc); ok {
			return mergeArcs(arc1, arc2)
		}
	}
	return nil, false
}

// mergeLineMarkerLine extends ml's stub by line, the way a dash run
// collapses into its neighbouring arrowhead: the combined fragment keeps
// ml's marker(s) anchored to their original absolute endpoint, regardless
// of which side of the canonicalized result that endpoint ends up on.
func mergeLineMarkerLine(line *Line, ml *MarkerLine) (Fragment, bool) {
	if line.Broken != ml.Line.Broken {
		return nil, false
	}
	if !geom.Collinear(line.Start, line.End, ml.Start) || !geom.Collinear(line.Start, line.End, ml.End) {
		return nil, false
	}
	pts := []geom.Point{line.Start, line.End, ml.Start, ml.End}
	shared := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if pts[i].Equal(pts[j]) {
				shared++
			}
		}
	}
	if shared == 0 {
		return nil, false
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}

	var start, end *Marker
	if ml.Start.Equal(min) {
		start = ml.StartMarker
	} else if ml.Start.Equal(max) {
		end = ml.StartMarker
	}
	if ml.End.Equal(min) {
		start = ml.EndMarker
	} else if ml.End.Equal(max) {
		end = ml.EndMarker
	}
	return NewMarkerLine(*NewLine(min, max, line.Broken), start, end), true
}

// bulletRadiusLimit separates a bullet glyph's small marker Circle from
// the circle/arc template catalog's shapes, whose smallest diameter (3
// cell-width units) yields a radius well above this.
const bulletRadiusLimit = geom.CellWidth

// bulletMergeReach is how far a Line's endpoint may sit from a bullet
// Circle's center and still be considered touching it: half a cell height
// (one cell width), the same in every direction.
const bulletMergeReach = geom.CellHeight / 2

// bulletMarker reports the Marker a bullet-sized Circle renders as once
// flattened into a MarkerLine, and whether c is bullet-sized at all.
func bulletMarker(c *Circle) (Marker, bool) {
	if c.Radius >= bulletRadiusLimit {
		return 0, false
	}
	switch {
	case c.Filled:
		return MarkerCircle, true
	case c.Radius >= 0.4:
		return BigOpenCircle, true
	default:
		return OpenCircle, true
	}
}

// mergeLineBullet promotes line plus a touching bullet-like circle into a
// MarkerLine, snapping the touching endpoint to the circle's center.
func mergeLineBullet(line *Line, circle *Circle) (Fragment, bool) {
	marker, ok := bulletMarker(circle)
	if !ok {
		return nil, false
	}
	var markerEnd, otherEnd geom.Point
	dStart, dEnd := line.Start.Distance(circle.Center), line.End.Distance(circle.Center)
	switch {
	case dStart <= dEnd && dStart <= bulletMergeReach+geom.Epsilon:
		markerEnd, otherEnd = circle.Center, line.End
	case dEnd <= bulletMergeReach+geom.Epsilon:
		markerEnd, otherEnd = circle.Center, line.Start
	default:
		return nil, false
	}
	newLine := NewLine(markerEnd, otherEnd, line.Broken)
	m := marker
	var start, end *Marker
	if newLine.Start.Equal(markerEnd) {
		start = &m
	} else {
		end = &m
	}
	return NewMarkerLine(*newLine, start, end), true
}

// MergeShapes extends Merge with the additional fusion
// Settings.MergeLineWithShapes opts into: a Line touching a full-size
// circle/arc template match (as opposed to a small bullet glyph) is
// absorbed into a MarkerLine the same way a touching bullet already is.
// Everything Merge already combines unconditionally still combines here;
// this only adds the shape case on top.
func MergeShapes(a, b Fragment) (Fragment, bool) {
	if merged, ok := Merge(a, b); ok {
		return merged, ok
	}
	if line, circle, ok := lineAndCircle(a, b); ok {
		return mergeLineShapeCircle(line, circle)
	}
	return nil, false
}

func lineAndCircle(a, b Fragment) (*Line, *Circle, bool) {
	if l, ok := a.(*Line); ok {
		if c, ok := b.(*Circle); ok {
			return l, c, true
		}
	}
	if l, ok := b.(*Line); ok {
		if c, ok := a.(*Circle); ok {
			return l, c, true
		}
	}
	return nil, nil, false
}

// mergeLineShapeCircle promotes line plus a touching full-size circle
// template into a MarkerLine, snapping the touching endpoint to the
// circle's center. Reach scales with the circle's own radius since, unlike
// a bullet glyph, a template circle's edge may sit well outside the cell
// the adjoining line's stub reaches.
func mergeLineShapeCircle(line *Line, circle *Circle) (Fragment, bool) {
	if circle.Radius < bulletRadiusLimit {
		return nil, false
	}
	marker := BigOpenCircle
	if circle.Filled {
		marker = MarkerCircle
	}
	reach := circle.Radius + bulletMergeReach
	var markerEnd, otherEnd geom.Point
	dStart, dEnd := line.Start.Distance(circle.Center), line.End.Distance(circle.Center)
	switch {
	case dStart <= dEnd && dStart <= reach+geom.Epsilon:
		markerEnd, otherEnd = circle.Center, line.End
	case dEnd <= reach+geom.Epsilon:
		markerEnd, otherEnd = circle.Center, line.Start
	default:
		return nil, false
	}
	newLine := NewLine(markerEnd, otherEnd, line.Broken)
	m := marker
	var start, end *Marker
	if newLine.Start.Equal(markerEnd) {
		start = &m
	} else {
		end = &m
	}
	return NewMarkerLine(*newLine, start, end), true
}

func mergeLines(a, b *Line) (Fragment, bool) {
	if a.Broken != b.Broken {
		return nil, false
	}
	if !geom.Collinear(a.Start, a.End, b.Start) || !geom.Collinear(a.Start, a.End, b.End) {
		return nil, false
	}
	pts := []geom.Point{a.Start, a.End, b.Start, b.End}
	shared := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if pts[i].Equal(pts[j]) {
				shared++
			}
		}
	}
	if shared == 0 {
		return nil, false
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return NewLine(min, max, a.Broken), true
}

func mergeArcs(a, b *Arc) (Fragment, bool) {
	if !a.SameCircle(b) {
		return nil, false
	}
	if !endpointsTouch(a.Start, a.End, b.Start, b.End) {
		return nil, false
	}
	if a.Start.Equal(b.Start) && a.End.Equal(b.End) && a.Sweep != b.Sweep {
		return NewCircle(a.Center, a.Radius, false), true
	}
	var start, end geom.Point
	switch {
	case a.End.Equal(b.Start):
		start, end = a.Start, b.End
	case b.End.Equal(a.Start):
		start, end = b.Start, a.End
	case a.Start.Equal(b.Start):
		start, end = a.End, b.End
	default:
		start, end = a.Start, b.End
	}
	return NewArc(start, end, a.Center, a.Radius, a.Sweep), true
}

// Compare imposes the total order used to sort a fragment list
// deterministically before merge/endorse/emit, based on each fragment's
// bounds' minimum point.
func Compare(a, b Fragment) int {
	aMin, _ := Bounds(a)
	bMin, _ := Bounds(b)
	return aMin.Compare(bMin)
}

// CanFit reports whether outer's bounds fully contain inner's bounds,
// the containment test the Fragment Tree uses to build its forest.
func CanFit(outer, inner Fragment) bool {
	oMin, oMax := Bounds(outer)
	iMin, iMax := Bounds(inner)
	return oMin.X-geom.Epsilon <= iMin.X && oMin.Y-geom.Epsilon <= iMin.Y &&
		oMax.X+geom.Epsilon >= iMax.X && oMax.Y+geom.Epsilon >= iMax.Y
}
