// Package tree implements the Fragment Tree stage: building a
// containment forest over the endorsed fragments so that nested text
// becomes a CSS class or a child element of whatever shape encloses it.
package tree

import (
	"sort"

	"github.com/asciigeom/bobdiagram/internal/fragment"
)

// Node is one fragment in the forest, holding its own FragmentSpan, any
// CSS class names its `{...}`-labeled children contributed, and the
// ordered children geometrically inside it. Children reference parents
// only through ownership (no back-pointers), per the design notes.
type Node struct {
	Span     fragment.FragmentSpan
	Classes  []string
	Children []*Node
}

// Build inserts every span into a forest via deepest-first insertion
// (avoiding back-pointers), in a single pass over the spans ordered
// largest area first. A `{name}`-shaped text fragment is never inserted as a child;
// its name is appended to its would-be parent's Classes instead.
func Build(spans []fragment.FragmentSpan) []*Node {
	sorted := append([]fragment.FragmentSpan(nil), spans...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return biggerFirst(sorted[i], sorted[j])
	})

	var roots []*Node
	for _, fs := range sorted {
		if tags := fragment.CSSTags(fs.Fragment); len(tags) > 0 {
			if parent := deepestContaining(roots, fs.Fragment); parent != nil {
				parent.Classes = append(parent.Classes, tags...)
				continue
			}
		}
		node := &Node{Span: fs}
		if parent := deepestContaining(roots, fs.Fragment); parent != nil {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots
}

// biggerFirst orders larger-area fragments before smaller ones so
// potential containers are inserted, and therefore available as
// candidate parents, before the fragments they might contain.
func biggerFirst(a, b fragment.FragmentSpan) bool {
	return area(a.Fragment) > area(b.Fragment)
}

func area(f fragment.Fragment) float64 {
	min, max := fragment.Bounds(f)
	return (max.X - min.X) * (max.Y - min.Y)
}

// deepestContaining performs a depth-first search for the deepest node in
// roots whose fragment contains candidate's bounds, as fragment.CanFit
// tests it: containment is inclusive, so bounds that touch or are equal
// (within geom.Epsilon) count as contained.
func deepestContaining(roots []*Node, candidate fragment.Fragment) *Node {
	var best *Node
	for _, n := range roots {
		if !fragment.CanFit(n.Span.Fragment, candidate) {
			continue
		}
		if child := deepestContaining(n.Children, candidate); child != nil {
			best = child
		} else {
			best = n
		}
	}
	return best
}
