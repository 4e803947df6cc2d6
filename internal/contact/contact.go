// Package contact implements the Contact Grouper stage:
// partitioning merged FragmentSpans into Contacts groups by the
// is_contacting relation, using the same union-find approach as Span
// Extraction.
package contact

import (
	"sort"

	"github.com/asciigeom/bobdiagram/internal/fragment"
)

// Group is a set of FragmentSpans known to be pairwise reachable through
// IsContacting.
type Group struct {
	Spans []fragment.FragmentSpan
}

// GroupSpans partitions spans into connected Contacts groups, each sorted
// by the Fragment total order.
func GroupSpans(spans []fragment.FragmentSpan) []Group {
	n := len(spans)
	if n == 0 {
		return nil
	}
	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if spans[i].IsContacting(spans[j]) {
				uf.union(i, j)
			}
		}
	}

	byRoot := make(map[int][]fragment.FragmentSpan)
	for i, fs := range spans {
		root := uf.find(i)
		byRoot[root] = append(byRoot[root], fs)
	}

	roots := make([]int, 0, len(byRoot))
	for root := range byRoot {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return byRoot[roots[i]][0].Compare(byRoot[roots[j]][0]) < 0
	})

	groups := make([]Group, 0, len(roots))
	for _, root := range roots {
		members := byRoot[root]
		sort.Slice(members, func(i, j int) bool { return members[i].Compare(members[j]) < 0 })
		groups = append(groups, Group{Spans: members})
	}
	return groups
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
