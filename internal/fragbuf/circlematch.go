package fragbuf

import (
	"sort"

	"github.com/asciigeom/bobdiagram/internal/catalog"
	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
	"github.com/asciigeom/bobdiagram/internal/spanbuf"
)

// MatchCircles tests span against the circle/arc template catalog, anchored
// at every candidate cell, preferring the largest radius that fits. Matched
// cells' individual fragments are dropped from fragSpans and replaced by a
// single Circle or Arc FragmentSpan. includeArcs gates half/quarter-arc
// templates, off by default.
func MatchCircles(span spanbuf.Span, fragSpans []fragment.FragmentSpan, includeArcs bool) []fragment.FragmentSpan {
	templates := catalog.Circles()
	covered := make(map[geom.Cell]bool)
	var matched []fragment.FragmentSpan

	for _, c := range sortedCells(span) {
		if covered[c] {
			continue
		}
		for _, tpl := range templates {
			if tpl.IsArc && !includeArcs {
				continue
			}
			if cells, ok := matchTemplate(span, c, tpl, covered); ok {
				for _, mc := range cells {
					covered[mc] = true
				}
				matched = append(matched, buildCircleFragmentSpan(tpl, c, cells))
				break
			}
		}
	}
	if len(matched) == 0 {
		return fragSpans
	}

	out := make([]fragment.FragmentSpan, 0, len(fragSpans)+len(matched))
	for _, fs := range fragSpans {
		if allCoveredByOtherCells(fs, covered) {
			continue
		}
		out = append(out, fs)
	}
	out = append(out, matched...)
	return out
}

func sortedCells(span spanbuf.Span) []geom.Cell {
	cells := make([]geom.Cell, len(span.Cells))
	for i, cc := range span.Cells {
		cells[i] = cc.Cell
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Compare(cells[j]) < 0 })
	return cells
}

// matchTemplate reports whether tpl, anchored so its own origin offset
// lands on anchor, is fully present (by stroke-class compatibility) within
// span and not already covered by an earlier, larger match.
func matchTemplate(span spanbuf.Span, anchor geom.Cell, tpl catalog.CircleTemplate, covered map[geom.Cell]bool) ([]geom.Cell, bool) {
	cells := make([]geom.Cell, 0, len(tpl.Cells))
	for offset, want := range tpl.Cells {
		c := geom.NewCell(anchor.X+offset.X, anchor.Y+offset.Y)
		if covered[c] {
			return nil, false
		}
		got, ok := span.Char(c)
		if !ok || !strokeClassCompatible(got, want) {
			return nil, false
		}
		cells = append(cells, c)
	}
	return cells, len(cells) > 0
}

// strokeClassCompatible reports whether got (an actual glyph in the
// diagram) belongs to the same stroke family as want (the glyph the
// algorithmically generated template expects at that position): "-"/"+"
// are horizontal-compatible, "|"/"+" vertical-compatible, and "/", "\"
// match only themselves.
func strokeClassCompatible(got, want rune) bool {
	if got == want {
		return true
	}
	switch want {
	case '-':
		return got == '+'
	case '|':
		return got == '+'
	default:
		return false
	}
}

func buildCircleFragmentSpan(tpl catalog.CircleTemplate, anchor geom.Cell, cells []geom.Cell) fragment.FragmentSpan {
	center := anchor.AbsolutePosition(geom.Point{X: geom.CellWidth / 2, Y: geom.CellHeight / 2})
	var f fragment.Fragment
	if tpl.IsArc {
		f = fragment.NewArc(
			geom.Point{X: center.X - tpl.Radius, Y: center.Y},
			geom.Point{X: center.X, Y: center.Y - tpl.Radius},
			center, tpl.Radius, true)
	} else {
		f = fragment.NewCircle(center, tpl.Radius, false)
	}
	provenance := make([]fragment.ProvenanceCell, 0, len(cells))
	for _, c := range cells {
		provenance = append(provenance, fragment.ProvenanceCell{Cell: c})
	}
	return fragment.NewFragmentSpan(f, provenance)
}

func allCoveredByOtherCells(fs fragment.FragmentSpan, covered map[geom.Cell]bool) bool {
	if len(fs.Cells) == 0 {
		return false
	}
	for _, pc := range fs.Cells {
		if !covered[pc.Cell] {
			return false
		}
	}
	return true
}
