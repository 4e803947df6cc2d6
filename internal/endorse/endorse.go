// Package endorse implements the Endorser stage: testing a
// Contacts group for rectangle or rounded-rectangle shape and, on
// acceptance, replacing the group with a single Rectangle FragmentSpan.
// Tie-breaks are canonical: rectangle is preferred over rounded-rectangle
// over leaving the group as free fragments.
package endorse

import (
	"github.com/asciigeom/bobdiagram/internal/contact"
	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
)

// Endorse tries, in canonical order, to promote group into a single
// Rectangle. It reports ok=false when neither endorsement applies, in
// which case callers should keep the group's original fragments.
func Endorse(group contact.Group) (fragment.FragmentSpan, bool) {
	if fs, ok := endorseRectangle(group); ok {
		return fs, true
	}
	if fs, ok := endorseRoundedRectangle(group); ok {
		return fs, true
	}
	return fragment.FragmentSpan{}, false
}

func endorseRectangle(group contact.Group) (fragment.FragmentSpan, bool) {
	lines, ok := onlyLines(group.Spans)
	if !ok || len(lines) != 4 {
		return fragment.FragmentSpan{}, false
	}
	corners, broken, ok := fourLinesToRectangle(lines)
	if !ok {
		return fragment.FragmentSpan{}, false
	}
	if !cornersCoincide(corners, lines) {
		return fragment.FragmentSpan{}, false
	}
	rect := fragment.NewRectangle(corners[0], corners[1], nil)
	rect.Broken = broken
	return mergedSpan(rect, group), true
}

// cornersCoincide requires each of the rectangle's 4 geometric corners to
// equal an actual endpoint of both a horizontal and a vertical line,
// which is only true of a square-cornered rectangle — a rounded
// rectangle's lines stop short of the corner to leave room for the arc.
func cornersCoincide(corners [2]geom.Point, lines []*fragment.Line) bool {
	want := []geom.Point{
		{X: corners[0].X, Y: corners[0].Y}, {X: corners[1].X, Y: corners[0].Y},
		{X: corners[0].X, Y: corners[1].Y}, {X: corners[1].X, Y: corners[1].Y},
	}
	for _, c := range want {
		touched := false
		for _, l := range lines {
			if cornerTouchedBy(c, l) {
				touched = true
				break
			}
		}
		if !touched {
			return false
		}
	}
	return true
}

func endorseRoundedRectangle(group contact.Group) (fragment.FragmentSpan, bool) {
	if len(group.Spans) != 8 {
		return fragment.FragmentSpan{}, false
	}
	var lines []*fragment.Line
	var arcs []*fragment.Arc
	for _, fs := range group.Spans {
		switch v := fs.Fragment.(type) {
		case *fragment.Line:
			lines = append(lines, v)
		case *fragment.Arc:
			arcs = append(arcs, v)
		default:
			return fragment.FragmentSpan{}, false
		}
	}
	if len(lines) != 4 || len(arcs) != 4 {
		return fragment.FragmentSpan{}, false
	}
	for _, a := range arcs {
		if !a.IsRightAngle() || !a.IsAxisAligned() {
			return fragment.FragmentSpan{}, false
		}
	}
	corners, broken, ok := fourLinesToRectangle(lines)
	if !ok {
		return fragment.FragmentSpan{}, false
	}
	radius := arcs[0].Radius
	for _, a := range arcs[1:] {
		if absDiff(a.Radius, radius) > geom.Epsilon {
			return fragment.FragmentSpan{}, false
		}
	}
	rect := fragment.NewRectangle(corners[0], corners[1], &radius)
	rect.Broken = broken
	return mergedSpan(rect, group), true
}

func onlyLines(spans []fragment.FragmentSpan) ([]*fragment.Line, bool) {
	lines := make([]*fragment.Line, 0, len(spans))
	for _, fs := range spans {
		l, ok := fs.Fragment.(*fragment.Line)
		if !ok {
			return nil, false
		}
		lines = append(lines, l)
	}
	return lines, true
}

// fourLinesToRectangle checks that lines form 2 perpendicular
// axis-parallel pairs and returns the rectangle's (min, max) corners;
// whether the corners coincide is checked separately by cornersCoincide.
func fourLinesToRectangle(lines []*fragment.Line) ([2]geom.Point, bool, bool) {
	var horizontals, verticals []*fragment.Line
	for _, l := range lines {
		switch {
		case l.IsHorizontal():
			horizontals = append(horizontals, l)
		case l.IsVertical():
			verticals = append(verticals, l)
		default:
			return [2]geom.Point{}, false, false
		}
	}
	if len(horizontals) != 2 || len(verticals) != 2 {
		return [2]geom.Point{}, false, false
	}

	top, bottom := horizontals[0], horizontals[1]
	if top.Start.Y > bottom.Start.Y {
		top, bottom = bottom, top
	}
	left, right := verticals[0], verticals[1]
	if left.Start.X > right.Start.X {
		left, right = right, left
	}

	minP := geom.Point{X: left.Start.X, Y: top.Start.Y}
	maxP := geom.Point{X: right.Start.X, Y: bottom.Start.Y}

	broken := top.Broken || bottom.Broken || left.Broken || right.Broken
	return [2]geom.Point{minP, maxP}, broken, true
}

func cornerTouchedBy(c geom.Point, l *fragment.Line) bool {
	return c.Equal(l.Start) || c.Equal(l.End)
}

func absDiff(a, b float64) float64 {
	if a < b {
		return b - a
	}
	return a - b
}

func mergedSpan(f fragment.Fragment, group contact.Group) fragment.FragmentSpan {
	var cells []fragment.ProvenanceCell
	for _, fs := range group.Spans {
		cells = append(cells, fs.Cells...)
	}
	return fragment.NewFragmentSpan(f, cells)
}
