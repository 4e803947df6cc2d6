package fragment

import "github.com/asciigeom/bobdiagram/internal/geom"

// ProvenanceCell records one (cell, char) pair a FragmentSpan was
// synthesized from.
type ProvenanceCell struct {
	Cell geom.Cell
	Char rune
}

// FragmentSpan pairs a Fragment with the cells/characters it was
// synthesized from, preserving provenance through the merge/contact/
// endorse/tree stages so that text fragments can be reattached and so
// is_broken-style flags can look back at the source glyphs if needed.
type FragmentSpan struct {
	Fragment Fragment
	Cells    []ProvenanceCell
}

// NewFragmentSpan builds a FragmentSpan from a fragment and its source
// cells.
func NewFragmentSpan(f Fragment, cells []ProvenanceCell) FragmentSpan {
	return FragmentSpan{Fragment: f, Cells: cells}
}

// Merge attempts to combine fs and other's fragments, concatenating
// provenance on success.
func (fs FragmentSpan) Merge(other FragmentSpan) (FragmentSpan, bool) {
	merged, ok := Merge(fs.Fragment, other.Fragment)
	if !ok {
		return FragmentSpan{}, false
	}
	cells := make([]ProvenanceCell, 0, len(fs.Cells)+len(other.Cells))
	cells = append(cells, fs.Cells...)
	cells = append(cells, other.Cells...)
	return FragmentSpan{Fragment: merged, Cells: cells}, true
}

// MergeShapes is Merge's counterpart using the MergeShapes dispatcher,
// for callers running with Settings.MergeLineWithShapes enabled.
func (fs FragmentSpan) MergeShapes(other FragmentSpan) (FragmentSpan, bool) {
	merged, ok := MergeShapes(fs.Fragment, other.Fragment)
	if !ok {
		return FragmentSpan{}, false
	}
	cells := make([]ProvenanceCell, 0, len(fs.Cells)+len(other.Cells))
	cells = append(cells, fs.Cells...)
	cells = append(cells, other.Cells...)
	return FragmentSpan{Fragment: merged, Cells: cells}, true
}

// IsContacting reports whether fs and other's fragments touch.
func (fs FragmentSpan) IsContacting(other FragmentSpan) bool {
	return IsContacting(fs.Fragment, other.Fragment)
}

// Compare orders fs before other using the Fragment total order.
func (fs FragmentSpan) Compare(other FragmentSpan) int {
	return Compare(fs.Fragment, other.Fragment)
}
