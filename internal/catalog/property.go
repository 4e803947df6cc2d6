// Package catalog holds the two static, read-only tables the pipeline
// consults: the glyph Property table and the circle/arc template catalog.
// Both are built once, lazily, at first use — see PropertyTable and
// Circles — and never mutated afterward.
package catalog

import (
	"sync"

	"github.com/asciigeom/bobdiagram/internal/geom"
)

// Signal is the strength of a character's contribution to a fragment,
// used to break ties between competing interpretations of a cell (e.g.
// rounded vs. sharp corners).
type Signal int

const (
	Weak Signal = iota
	Medium
	Strong
)

// FragmentBuilder constructs the absolute-position-relative fragments a
// glyph contributes, given the Signal strengths present at each of the
// cell's 8 neighbour directions (from the neighbour's own Property). It
// returns nil when the character's behavior predicate is not satisfied by
// the neighbourhood.
type FragmentBuilder func(neighbors NeighborSignals) []CatalogFragment

// CatalogFragment pairs a Signal strength with the lattice-relative
// geometry it produces; FragmentBuilder returns these and the Fragment
// Buffer Construction stage (internal/fragbuf) converts them to absolute
// fragment.Fragment values.
type CatalogFragment struct {
	Signal Signal
	Kind   FragmentKind
	A, B   geom.Point // endpoints for Line-shaped kinds
}

// FragmentKind distinguishes which lattice-relative shape a
// CatalogFragment describes.
type FragmentKind int

const (
	KindHalfLineUp FragmentKind = iota
	KindHalfLineDown
	KindHalfLineLeft
	KindHalfLineRight
	KindDiagonalLineULtoDR
	KindDiagonalLineURtoDL
	KindRoundCornerTL
	KindRoundCornerTR
	KindRoundCornerBL
	KindRoundCornerBR
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
	KindBullet
)

// NeighborSignals reports, for each of the 8 compass directions, the
// strongest Signal the neighbour in that direction contributes toward a
// line meeting this cell from that side. A direction absent from the map
// (or Span) contributes no signal.
type NeighborSignals map[geom.Direction]Signal

// Property describes everything one character can contribute: a fixed set
// of (Signal, geometry) pairs for fragments that are always present, plus
// conditional fragments activated by a neighbourhood predicate.
type Property struct {
	Char       rune
	Static     []CatalogFragment
	Behaviors  []FragmentBuilder
	IsAlphaNum bool // true for glyphs that should fall back to CellText when isolated
}

var (
	propertyOnce  sync.Once
	propertyTable map[rune]Property
)

// PropertyTable returns the static char -> Property lookup, building it on
// first call. Characters absent from the table have no entry and the
// Fragment Buffer treats their cells as literal text.
func PropertyTable() map[rune]Property {
	propertyOnce.Do(func() {
		propertyTable = buildPropertyTable()
	})
	return propertyTable
}

func buildPropertyTable() map[rune]Property {
	t := make(map[rune]Property, 32)

	t['-'] = Property{
		Char: '-',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindHalfLineLeft, A: geom.K, B: geom.M},
			{Signal: Strong, Kind: KindHalfLineRight, A: geom.M, B: geom.O},
		},
	}
	t['|'] = Property{
		Char: '|',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindHalfLineUp, A: geom.C, B: geom.M},
			{Signal: Strong, Kind: KindHalfLineDown, A: geom.M, B: geom.W},
		},
	}
	t['+'] = Property{
		Char: '+',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindHalfLineLeft, A: geom.K, B: geom.M},
			{Signal: Strong, Kind: KindHalfLineRight, A: geom.M, B: geom.O},
			{Signal: Strong, Kind: KindHalfLineUp, A: geom.C, B: geom.M},
			{Signal: Strong, Kind: KindHalfLineDown, A: geom.M, B: geom.W},
		},
	}
	t['.'] = Property{
		Char: '.',
		Behaviors: []FragmentBuilder{
			func(n NeighborSignals) []CatalogFragment {
				below := n[geom.Bottom] >= Medium
				left := n[geom.Left] >= Medium
				right := n[geom.Right] >= Medium
				var out []CatalogFragment
				switch {
				case below && left:
					out = append(out, CatalogFragment{Signal: Strong, Kind: KindRoundCornerTR, A: geom.K, B: geom.M})
				case below && right:
					out = append(out, CatalogFragment{Signal: Strong, Kind: KindRoundCornerTL, A: geom.M, B: geom.O})
				case below:
					out = append(out, CatalogFragment{Signal: Weak, Kind: KindHalfLineDown, A: geom.M, B: geom.W})
				}
				return out
			},
		},
	}
	t['\''] = Property{
		Char: '\'',
		Behaviors: []FragmentBuilder{
			func(n NeighborSignals) []CatalogFragment {
				above := n[geom.Top] >= Medium
				left := n[geom.Left] >= Medium
				right := n[geom.Right] >= Medium
				var out []CatalogFragment
				switch {
				case above && left:
					out = append(out, CatalogFragment{Signal: Strong, Kind: KindRoundCornerBR, A: geom.M, B: geom.K})
				case above && right:
					out = append(out, CatalogFragment{Signal: Strong, Kind: KindRoundCornerBL, A: geom.O, B: geom.M})
				case above:
					out = append(out, CatalogFragment{Signal: Weak, Kind: KindHalfLineUp, A: geom.C, B: geom.M})
				}
				return out
			},
		},
	}
	t['/'] = Property{
		Char: '/',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindDiagonalLineURtoDL, A: geom.U, B: geom.E},
		},
	}
	t['\\'] = Property{
		Char: '\\',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindDiagonalLineULtoDR, A: geom.A, B: geom.Y},
		},
	}
	t['*'] = Property{
		Char: '*',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindBullet, A: geom.M, B: geom.M},
		},
	}
	t['o'] = Property{
		Char: 'o',
		Static: []CatalogFragment{
			{Signal: Medium, Kind: KindBullet, A: geom.M, B: geom.M},
		},
	}
	t['O'] = Property{
		Char: 'O',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindBullet, A: geom.M, B: geom.M},
		},
	}
	t['<'] = Property{
		Char: '<',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindArrowLeft, A: geom.K, B: geom.O},
		},
	}
	t['>'] = Property{
		Char: '>',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindArrowRight, A: geom.O, B: geom.K},
		},
	}
	t['^'] = Property{
		Char: '^',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindArrowUp, A: geom.C, B: geom.W},
		},
	}
	t['v'] = Property{
		Char: 'v',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindArrowDown, A: geom.W, B: geom.C},
		},
	}
	t['#'] = Property{
		Char: '#',
		Static: []CatalogFragment{
			{Signal: Strong, Kind: KindHalfLineLeft, A: geom.K, B: geom.M},
			{Signal: Strong, Kind: KindHalfLineRight, A: geom.M, B: geom.O},
			{Signal: Strong, Kind: KindHalfLineUp, A: geom.C, B: geom.M},
			{Signal: Strong, Kind: KindHalfLineDown, A: geom.M, B: geom.W},
		},
	}
	t['('] = Property{
		Char: '(',
		Static: []CatalogFragment{
			{Signal: Medium, Kind: KindDiagonalLineULtoDR, A: geom.C, B: geom.W},
		},
	}
	t[')'] = Property{
		Char: ')',
		Static: []CatalogFragment{
			{Signal: Medium, Kind: KindDiagonalLineURtoDL, A: geom.C, B: geom.W},
		},
	}

	addBoxDrawing(t)

	return t
}

// halfLine builds a Strong-signal CatalogFragment for one of the four
// half-line kinds, reducing the boilerplate of the box-drawing entries
// below, each of which is a combination of two to four half-lines meeting
// at the cell center.
func halfLine(kind FragmentKind, a, b geom.Point) CatalogFragment {
	return CatalogFragment{Signal: Strong, Kind: kind, A: a, B: b}
}

// addBoxDrawing registers the selected Unicode box-drawing code points
// (the light single-line set) as the same half-line combinations their
// ASCII equivalents already express — '─'/'│' as '-'/'|', corners and
// tees as the matching pair/triple of half-lines, and the full cross as
// '+'.
func addBoxDrawing(t map[rune]Property) {
	left := halfLine(KindHalfLineLeft, geom.K, geom.M)
	right := halfLine(KindHalfLineRight, geom.M, geom.O)
	up := halfLine(KindHalfLineUp, geom.C, geom.M)
	down := halfLine(KindHalfLineDown, geom.M, geom.W)

	entries := map[rune][]CatalogFragment{
		'─': {left, right},
		'│': {up, down},
		'┌': {right, down},
		'┐': {left, down},
		'└': {right, up},
		'┘': {left, up},
		'├': {up, down, right},
		'┤': {up, down, left},
		'┬': {down, left, right},
		'┴': {up, left, right},
		'┼': {up, down, left, right},
	}
	for ch, frags := range entries {
		t[ch] = Property{Char: ch, Static: frags}
	}
}

// Lookup returns the Property for r and whether one exists. Characters
// without an entry render as literal text (CellText).
func Lookup(r rune) (Property, bool) {
	p, ok := PropertyTable()[r]
	return p, ok
}
