package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// Line is a straight segment from Start to End. Construction always
// canonicalizes so Start <= End under geom.Point.Compare, giving every
// downstream stage a single orientation to reason about.
type Line struct {
	Start, End geom.Point
	Broken     bool
}

func (*Line) isFragment() {}

// NewLine builds a Line with endpoints ordered Start <= End.
func NewLine(a, b geom.Point, broken bool) *Line {
	if b.Less(a) {
		a, b = b, a
	}
	return &Line{Start: a, End: b, Broken: broken}
}

// Heading returns the direction of travel from Start to End.
func (l *Line) Heading() geom.Direction {
	dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	switch {
	case dx == 0 && dy < 0:
		return geom.Top
	case dx == 0 && dy > 0:
		return geom.Bottom
	case dy == 0 && dx < 0:
		return geom.Left
	case dy == 0 && dx > 0:
		return geom.Right
	case dx > 0 && dy < 0:
		return geom.TopRight
	case dx < 0 && dy < 0:
		return geom.TopLeft
	case dx > 0 && dy > 0:
		return geom.BottomRight
	default:
		return geom.BottomLeft
	}
}

// IsHorizontal reports whether the line runs along a single y coordinate.
func (l *Line) IsHorizontal() bool { return l.Start.Y == l.End.Y }

// IsVertical reports whether the line runs along a single x coordinate.
func (l *Line) IsVertical() bool { return l.Start.X == l.End.X }

// Length returns the Euclidean length of the line.
func (l *Line) Length() float64 { return l.Start.Distance(l.End) }

// Marker identifies the arrowhead or bullet glyph a MarkerLine ends in.
type Marker int

const (
	Arrow Marker = iota
	ClearArrow
	MarkerCircle
	Square
	Diamond
	OpenCircle
	BigOpenCircle
)

// MarkerLine is a Line that terminates in an arrowhead or bullet at one or
// both ends.
type MarkerLine struct {
	Line
	StartMarker *Marker
	EndMarker   *Marker
}

func (*MarkerLine) isFragment() {}

// NewMarkerLine builds a MarkerLine from a canonical Line plus optional
// start/end markers.
func NewMarkerLine(line Line, start, end *Marker) *MarkerLine {
	return &MarkerLine{Line: line, StartMarker: start, EndMarker: end}
}
