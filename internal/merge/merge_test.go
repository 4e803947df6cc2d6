package merge

import (
	"math/rand"
	"testing"

	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
)

func span(f fragment.Fragment) fragment.FragmentSpan {
	return fragment.NewFragmentSpan(f, nil)
}

func TestMergeCollapsesThreeCollinearLines(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false)),
		span(fragment.NewLine(geom.NewPoint(1, 0), geom.NewPoint(2, 0), false)),
		span(fragment.NewLine(geom.NewPoint(2, 0), geom.NewPoint(3, 0), false)),
	}
	result := Merge(spans, false)
	if len(result) != 1 {
		t.Fatalf("expected 3 collinear touching lines to collapse to 1, got %d", len(result))
	}
	line := result[0].Fragment.(*fragment.Line)
	if !line.Start.Equal(geom.NewPoint(0, 0)) || !line.End.Equal(geom.NewPoint(3, 0)) {
		t.Fatalf("unexpected merged span: %+v", line)
	}
}

func TestMergeIsConfluentUnderShuffling(t *testing.T) {
	base := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false)),
		span(fragment.NewLine(geom.NewPoint(1, 0), geom.NewPoint(2, 0), false)),
		span(fragment.NewLine(geom.NewPoint(5, 5), geom.NewPoint(6, 5), false)),
		span(fragment.NewLine(geom.NewPoint(6, 5), geom.NewPoint(7, 5), false)),
	}
	want := Merge(append([]fragment.FragmentSpan(nil), base...), false)

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]fragment.FragmentSpan(nil), base...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := Merge(shuffled, false)
		if len(got) != len(want) {
			t.Fatalf("trial %d: expected %d merged fragments, got %d", trial, len(want), len(got))
		}
	}
}

func TestMergeLeavesUnrelatedFragmentsSeparate(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false)),
		span(fragment.NewLine(geom.NewPoint(50, 50), geom.NewPoint(51, 50), false)),
	}
	result := Merge(spans, false)
	if len(result) != 2 {
		t.Fatalf("expected 2 unrelated fragments to stay separate, got %d", len(result))
	}
}

func TestMergeRespectsBrokenFlag(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), true)),
		span(fragment.NewLine(geom.NewPoint(1, 0), geom.NewPoint(2, 0), false)),
	}
	result := Merge(spans, false)
	if len(result) != 2 {
		t.Fatalf("expected broken and solid touching lines not to merge, got %d", len(result))
	}
}

func TestMergeLeavesLineAndShapeCircleSeparateByDefault(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1.5, 0), false)),
		span(fragment.NewCircle(geom.NewPoint(3, 0), 1.5, false)),
	}
	result := Merge(spans, false)
	if len(result) != 2 {
		t.Fatalf("expected line and shape circle to stay separate without MergeLineWithShapes, got %d", len(result))
	}
}

func TestMergeFusesLineAndShapeCircleWhenEnabled(t *testing.T) {
	spans := []fragment.FragmentSpan{
		span(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1.5, 0), false)),
		span(fragment.NewCircle(geom.NewPoint(3, 0), 1.5, false)),
	}
	result := Merge(spans, true)
	if len(result) != 1 {
		t.Fatalf("expected line and shape circle to fuse with MergeLineWithShapes, got %d", len(result))
	}
	ml, ok := result[0].Fragment.(*fragment.MarkerLine)
	if !ok {
		t.Fatalf("expected a MarkerLine, got %T", result[0].Fragment)
	}
	if ml.EndMarker == nil || *ml.EndMarker != fragment.BigOpenCircle {
		t.Fatalf("expected a BigOpenCircle marker at the end, got start=%v end=%v", ml.StartMarker, ml.EndMarker)
	}
}
