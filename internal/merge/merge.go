// Package merge implements the Fragment Merger stage: folding
// a sorted FragmentSpan list to a fixed point by repeatedly collapsing
// mergeable neighbours, per the design notes' "while changed { changed =
// pass(list) }" guidance rather than unbounded recursion.
package merge

import (
	"sort"

	"github.com/asciigeom/bobdiagram/internal/fragment"
)

// Merge repeatedly folds spans until no pass reduces its length,
// returning the fixed-point result. The input should already be sorted by
// the Fragment total order for deterministic output; Merge re-sorts
// defensively before each pass. mergeShapes mirrors Settings.MergeLineWithShapes:
// when true, a touching Line and full-size circle/arc template shape fuse
// into a MarkerLine on top of the fusions Merge always performs.
func Merge(spans []fragment.FragmentSpan, mergeShapes bool) []fragment.FragmentSpan {
	current := append([]fragment.FragmentSpan(nil), spans...)
	for {
		next, changed := pass(current, mergeShapes)
		current = next
		if !changed {
			return current
		}
	}
}

// pass walks the accumulator from the tail forward for each candidate
// (exploiting recency, per the design notes) and replaces the first
// mergeable neighbour with the merged result. It reports whether the
// fragment count shrank.
func pass(spans []fragment.FragmentSpan, mergeShapes bool) ([]fragment.FragmentSpan, bool) {
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Compare(spans[j]) < 0 })

	var acc []fragment.FragmentSpan
	for _, candidate := range spans {
		merged := false
		for i := len(acc) - 1; i >= 0; i-- {
			var result fragment.FragmentSpan
			var ok bool
			if mergeShapes {
				result, ok = acc[i].MergeShapes(candidate)
			} else {
				result, ok = acc[i].Merge(candidate)
			}
			if ok {
				acc[i] = result
				merged = true
				break
			}
		}
		if !merged {
			acc = append(acc, candidate)
		}
	}
	return acc, len(acc) < len(spans)
}
