package tree

import (
	"testing"

	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
)

func TestBuildNestsTextInsideRectangle(t *testing.T) {
	rect := fragment.NewFragmentSpan(
		fragment.NewRectangle(geom.NewPoint(0, 0), geom.NewPoint(10, 10), nil), nil)
	text := fragment.NewFragmentSpan(
		fragment.NewText(geom.NewPoint(5, 5), "hi"), nil)

	roots := Build([]fragment.FragmentSpan{rect, text})
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 {
		t.Fatalf("expected text nested as a child of the rectangle, got %d children", len(roots[0].Children))
	}
}

func TestBuildExtractsBraceLabelAsClass(t *testing.T) {
	rect := fragment.NewFragmentSpan(
		fragment.NewRectangle(geom.NewPoint(0, 0), geom.NewPoint(10, 10), nil), nil)
	label := fragment.NewFragmentSpan(
		fragment.NewText(geom.NewPoint(5, 5), "{highlight}"), nil)

	roots := Build([]fragment.FragmentSpan{rect, label})
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if len(roots[0].Children) != 0 {
		t.Fatalf("expected brace-labeled text not to become a child, got %d children", len(roots[0].Children))
	}
	if len(roots[0].Classes) != 1 || roots[0].Classes[0] != "highlight" {
		t.Fatalf("expected class 'highlight', got %v", roots[0].Classes)
	}
}

func TestBuildTwoDisconnectedRectanglesAreBothRoots(t *testing.T) {
	a := fragment.NewFragmentSpan(fragment.NewRectangle(geom.NewPoint(0, 0), geom.NewPoint(2, 2), nil), nil)
	b := fragment.NewFragmentSpan(fragment.NewRectangle(geom.NewPoint(10, 10), geom.NewPoint(12, 12), nil), nil)

	roots := Build([]fragment.FragmentSpan{a, b})
	if len(roots) != 2 {
		t.Fatalf("expected 2 independent roots, got %d", len(roots))
	}
}

func TestBuildNestsThroughMultipleLevels(t *testing.T) {
	outer := fragment.NewFragmentSpan(fragment.NewRectangle(geom.NewPoint(0, 0), geom.NewPoint(20, 20), nil), nil)
	inner := fragment.NewFragmentSpan(fragment.NewRectangle(geom.NewPoint(5, 5), geom.NewPoint(10, 10), nil), nil)
	text := fragment.NewFragmentSpan(fragment.NewText(geom.NewPoint(7, 7), "hi"), nil)

	roots := Build([]fragment.FragmentSpan{outer, inner, text})
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 {
		t.Fatalf("expected inner rectangle nested under outer, got %d children", len(roots[0].Children))
	}
	innerNode := roots[0].Children[0]
	if len(innerNode.Children) != 1 {
		t.Fatalf("expected text nested under inner rectangle, got %d children", len(innerNode.Children))
	}
}
