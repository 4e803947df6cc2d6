package spanbuf

import (
	"testing"

	"github.com/asciigeom/bobdiagram/internal/cellbuf"
	"github.com/asciigeom/bobdiagram/internal/geom"
)

func TestExtractSingleSpan(t *testing.T) {
	b := cellbuf.From("+--+\n|  |\n+--+")
	spans := Extract(b)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
}

func TestExtractTwoDisconnectedSpans(t *testing.T) {
	b := cellbuf.From("+-+     +-+\n| |     | |\n+-+     +-+")
	spans := Extract(b)
	if len(spans) != 2 {
		t.Fatalf("expected 2 disconnected spans, got %d", len(spans))
	}
}

func TestExtractDiagonalAdjacencyConnects(t *testing.T) {
	b := cellbuf.From("*.\n.*")
	spans := Extract(b)
	if len(spans) != 1 {
		t.Fatalf("expected diagonal-adjacent cells to form 1 span, got %d", len(spans))
	}
}

func TestExtractEmptyBufferYieldsNoSpans(t *testing.T) {
	b := cellbuf.From("")
	if spans := Extract(b); spans != nil {
		t.Fatalf("expected no spans for an empty buffer, got %v", spans)
	}
}

func TestSpanCellsAreSortedByCellOrder(t *testing.T) {
	b := cellbuf.From("+-+\n| |\n+-+")
	spans := Extract(b)
	cells := spans[0].Cells
	for i := 1; i < len(cells); i++ {
		if cells[i].Cell.Compare(cells[i-1].Cell) < 0 {
			t.Fatalf("expected span cells sorted by cell order, got %v before %v", cells[i-1].Cell, cells[i].Cell)
		}
	}
}

func TestSpanHasAndChar(t *testing.T) {
	b := cellbuf.From("+-+")
	spans := Extract(b)
	if !spans[0].Has(geom.NewCell(0, 0)) {
		t.Fatal("expected span to contain (0,0)")
	}
	if r, ok := spans[0].Char(geom.NewCell(0, 0)); !ok || r != '+' {
		t.Fatalf("expected '+' at (0,0), got %q ok=%v", r, ok)
	}
	if spans[0].Has(geom.NewCell(99, 99)) {
		t.Fatal("expected out-of-range cell not to be in span")
	}
}
