// Package fragbuf implements Fragment Buffer Construction: for
// each cell of a Span, resolving its Property against its 8 neighbours to
// emit the Fragments that cell contributes, in absolute coordinates.
package fragbuf

import (
	"sort"

	"github.com/asciigeom/bobdiagram/internal/catalog"
	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
	"github.com/asciigeom/bobdiagram/internal/spanbuf"
)

// kindDirections reports which compass direction(s) a CatalogFragment of
// the given kind signals toward — the direction(s) a neighbouring cell
// would see a Signal arriving from when asking "does my neighbour in
// direction d want to meet me here".
func kindDirections(k catalog.FragmentKind) []geom.Direction {
	switch k {
	case catalog.KindHalfLineUp:
		return []geom.Direction{geom.Top}
	case catalog.KindHalfLineDown:
		return []geom.Direction{geom.Bottom}
	case catalog.KindHalfLineLeft:
		return []geom.Direction{geom.Left}
	case catalog.KindHalfLineRight:
		return []geom.Direction{geom.Right}
	case catalog.KindDiagonalLineULtoDR:
		return []geom.Direction{geom.TopLeft, geom.BottomRight}
	case catalog.KindDiagonalLineURtoDL:
		return []geom.Direction{geom.TopRight, geom.BottomLeft}
	case catalog.KindRoundCornerTL:
		return []geom.Direction{geom.Top, geom.Left}
	case catalog.KindRoundCornerTR:
		return []geom.Direction{geom.Top, geom.Right}
	case catalog.KindRoundCornerBL:
		return []geom.Direction{geom.Bottom, geom.Left}
	case catalog.KindRoundCornerBR:
		return []geom.Direction{geom.Bottom, geom.Right}
	case catalog.KindArrowUp:
		return []geom.Direction{geom.Bottom}
	case catalog.KindArrowDown:
		return []geom.Direction{geom.Top}
	case catalog.KindArrowLeft:
		return []geom.Direction{geom.Right}
	case catalog.KindArrowRight:
		return []geom.Direction{geom.Left}
	default:
		return nil
	}
}

// neighborSignals computes, for cell c within span, the strongest Signal
// each of its 8 neighbours contributes toward c, consulting only the
// neighbours' static (unconditional) fragments — behaviors are not
// evaluated recursively, avoiding dependency cycles between conditional
// glyphs.
func neighborSignals(span spanbuf.Span, c geom.Cell) catalog.NeighborSignals {
	out := make(catalog.NeighborSignals, 8)
	for _, d := range geom.AllDirections {
		n := c.Neighbor(d)
		ch, ok := span.Char(n)
		if !ok {
			continue
		}
		prop, ok := catalog.Lookup(ch)
		if !ok {
			continue
		}
		want := d.Opposite()
		best := catalog.Weak - 1
		for _, cf := range prop.Static {
			for _, dir := range kindDirections(cf.Kind) {
				if dir == want && cf.Signal > best {
					best = cf.Signal
				}
			}
		}
		if best >= catalog.Weak {
			out[d] = best
		}
	}
	return out
}

// Build resolves every cell of span into FragmentSpans, in cell order,
// with fragments within a cell sorted by the Fragment total order.
func Build(span spanbuf.Span) []fragment.FragmentSpan {
	cells := append([]geom.Cell(nil), cellsOf(span)...)
	sort.Slice(cells, func(i, j int) bool { return cells[i].Compare(cells[j]) < 0 })

	var out []fragment.FragmentSpan
	for _, c := range cells {
		ch, _ := span.Char(c)
		prop, ok := catalog.Lookup(ch)
		if !ok {
			out = append(out, fragment.NewFragmentSpan(
				fragment.NewCellText(c, string(ch)),
				[]fragment.ProvenanceCell{{Cell: c, Char: ch}}))
			continue
		}

		var catalogFrags []catalog.CatalogFragment
		catalogFrags = append(catalogFrags, prop.Static...)
		if len(prop.Behaviors) > 0 {
			signals := neighborSignals(span, c)
			for _, behavior := range prop.Behaviors {
				catalogFrags = append(catalogFrags, behavior(signals)...)
			}
		}

		cellFrags := make([]fragment.Fragment, 0, len(catalogFrags))
		for _, cf := range catalogFrags {
			cellFrags = append(cellFrags, toFragment(cf, ch))
		}
		sort.Slice(cellFrags, func(i, j int) bool { return fragment.Compare(cellFrags[i], cellFrags[j]) < 0 })

		for _, f := range cellFrags {
			abs := fragment.AbsolutePosition(f, c)
			out = append(out, fragment.NewFragmentSpan(abs, []fragment.ProvenanceCell{{Cell: c, Char: ch}}))
		}
	}
	return out
}

func cellsOf(span spanbuf.Span) []geom.Cell {
	out := make([]geom.Cell, len(span.Cells))
	for i, cc := range span.Cells {
		out[i] = cc.Cell
	}
	return out
}

func toFragment(cf catalog.CatalogFragment, ch rune) fragment.Fragment {
	broken := ch == '.' || ch == '\''
	switch cf.Kind {
	case catalog.KindBullet:
		switch ch {
		case '*':
			return fragment.NewCircle(cf.A, 0.3, true)
		case 'O':
			return fragment.NewCircle(cf.A, 0.5, false)
		default: // 'o'
			return fragment.NewCircle(cf.A, 0.3, false)
		}
	case catalog.KindArrowUp, catalog.KindArrowDown, catalog.KindArrowLeft, catalog.KindArrowRight:
		marker := fragment.Arrow
		line := fragment.NewLine(cf.A, cf.B, false)
		if line.Start.Equal(cf.A) {
			return fragment.NewMarkerLine(*line, &marker, nil)
		}
		return fragment.NewMarkerLine(*line, nil, &marker)
	default:
		return fragment.NewLine(cf.A, cf.B, broken)
	}
}
