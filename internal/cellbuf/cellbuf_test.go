package cellbuf

import (
	"testing"

	"github.com/asciigeom/bobdiagram/internal/geom"
)

func TestFromSimpleBox(t *testing.T) {
	b := From("+--+\n|  |\n+--+")
	if r, ok := b.Get(geom.NewCell(0, 0)); !ok || r != '+' {
		t.Fatalf("expected '+' at (0,0), got %q ok=%v", r, ok)
	}
	if r, ok := b.Get(geom.NewCell(3, 0)); !ok || r != '+' {
		t.Fatalf("expected '+' at (3,0), got %q ok=%v", r, ok)
	}
	if _, ok := b.Get(geom.NewCell(1, 1)); ok {
		t.Fatal("expected interior whitespace cell to be absent")
	}
	maxCol, maxRow := b.Bounds()
	if maxCol != 3 || maxRow != 2 {
		t.Fatalf("expected bounds (3,2), got (%d,%d)", maxCol, maxRow)
	}
}

func TestFromEmptyStringIsEmpty(t *testing.T) {
	b := From("")
	if !b.Empty() {
		t.Fatal("expected empty diagram to produce an empty buffer")
	}
}

func TestFromWhitespaceOnlyIsEmpty(t *testing.T) {
	b := From("   \n\t\n  ")
	if !b.Empty() {
		t.Fatal("expected whitespace-only diagram to produce an empty buffer")
	}
}

func TestFromWideCharacterAdvancesTwoColumns(t *testing.T) {
	b := From("漢-")
	if _, ok := b.Get(geom.NewCell(0, 0)); !ok {
		t.Fatal("expected a cell at column 0 for the wide character")
	}
	if r, ok := b.Get(geom.NewCell(2, 0)); !ok || r != '-' {
		t.Fatalf("expected '-' at column 2 after a double-wide character, got %q ok=%v", r, ok)
	}
}

func TestFromTrailingNewlineDoesNotAddCells(t *testing.T) {
	a := From("+-+\n| |\n+-+")
	b := From("+-+\n| |\n+-+\n")
	if len(a.Cells()) != len(b.Cells()) {
		t.Fatalf("expected trailing newline not to change cell count: %d vs %d", len(a.Cells()), len(b.Cells()))
	}
}
