package contact

import (
	"testing"

	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
)

func span(f fragment.Fragment) fragment.FragmentSpan {
	return fragment.NewFragmentSpan(f, nil)
}

func TestGroupSpansTouchingLinesGroup(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false)),
		span(fragment.NewLine(geom.NewPoint(1, 0), geom.NewPoint(1, 1), false)),
	}
	groups := GroupSpans(spans)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group for touching lines, got %d", len(groups))
	}
	if len(groups[0].Spans) != 2 {
		t.Fatalf("expected 2 spans in the group, got %d", len(groups[0].Spans))
	}
}

func TestGroupSpansDistantLinesSeparate(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false)),
		span(fragment.NewLine(geom.NewPoint(50, 50), geom.NewPoint(51, 50), false)),
	}
	groups := GroupSpans(spans)
	if len(groups) != 2 {
		t.Fatalf("expected 2 independent groups, got %d", len(groups))
	}
}

func TestGroupSpansEmptyInput(t *testing.T) {
	if groups := GroupSpans(nil); groups != nil {
		t.Fatalf("expected nil groups for empty input, got %v", groups)
	}
}

func TestGroupSpansTransitiveChain(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false)),
		span(fragment.NewLine(geom.NewPoint(1, 0), geom.NewPoint(1, 1), false)),
		span(fragment.NewLine(geom.NewPoint(1, 1), geom.NewPoint(0, 1), false)),
	}
	groups := GroupSpans(spans)
	if len(groups) != 1 {
		t.Fatalf("expected a transitive chain to form 1 group, got %d", len(groups))
	}
}
