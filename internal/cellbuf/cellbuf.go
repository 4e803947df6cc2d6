// Package cellbuf implements the Cell Buffer stage: tokenizing a UTF-8
// diagram string into a sparse mapping from integer Cell coordinates to the
// grapheme that occupies them, accounting for multi-width (CJK) and
// zero-width (combining mark) code points the way a terminal emulator
// would.
package cellbuf

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/asciigeom/bobdiagram/internal/geom"
)

// Buffer is a sparse grid of characters keyed by Cell. Whitespace
// characters are never stored — Span Extraction treats an absent cell the
// same as a blank one.
type Buffer struct {
	cells    map[geom.Cell]rune
	maxCol   int
	maxRow   int
	hasCells bool
}

// From tokenizes diagram into a Buffer. Tab expansion is not performed;
// inputs are assumed space-padded.
func From(diagram string) *Buffer {
	b := &Buffer{cells: make(map[geom.Cell]rune)}
	row := 0
	for _, line := range strings.Split(diagram, "\n") {
		col := 0
		state := -1
		remaining := line
		for len(remaining) > 0 {
			var cluster string
			var width int
			cluster, remaining, width, state = uniseg.FirstGraphemeClusterInString(remaining, state)
			if cluster == "" {
				break
			}
			runes := []rune(cluster)
			r := runes[0]
			if width <= 0 {
				// Zero-width code points (combining marks) attach to the
				// preceding cell visually but contribute no new column;
				// the leading rune is still what's stored for that cell
				// since this pipeline only needs a codepoint per cell,
				// not full grapheme fidelity.
				continue
			}
			if r != ' ' && r != '\t' {
				b.set(geom.NewCell(col, row), r)
			}
			col += width
		}
		row++
	}
	return b
}

func (b *Buffer) set(c geom.Cell, r rune) {
	b.cells[c] = r
	b.hasCells = true
	if c.X > b.maxCol {
		b.maxCol = c.X
	}
	if c.Y > b.maxRow {
		b.maxRow = c.Y
	}
}

// Get returns the character at c and whether a cell is present there.
func (b *Buffer) Get(c geom.Cell) (rune, bool) {
	r, ok := b.cells[c]
	return r, ok
}

// Bounds returns the largest column and row index with a stored cell.
func (b *Buffer) Bounds() (maxCol, maxRow int) { return b.maxCol, b.maxRow }

// Empty reports whether the buffer has no non-whitespace cells at all.
func (b *Buffer) Empty() bool { return !b.hasCells }

// Cells returns every stored (Cell, rune) pair. The returned slice is not
// sorted; callers that need Cell order should sort it themselves (see
// internal/spanbuf, which does this when building Spans).
func (b *Buffer) Cells() []CellChar {
	out := make([]CellChar, 0, len(b.cells))
	for c, r := range b.cells {
		out = append(out, CellChar{Cell: c, Char: r})
	}
	return out
}

// CellChar pairs a Cell with the character stored there.
type CellChar struct {
	Cell geom.Cell
	Char rune
}
