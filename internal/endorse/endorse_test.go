package endorse

import (
	"testing"

	"github.com/asciigeom/bobdiagram/internal/contact"
	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
)

func rectGroup(broken bool) contact.Group {
	top := fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(3, 0), broken)
	bottom := fragment.NewLine(geom.NewPoint(0, 2), geom.NewPoint(3, 2), broken)
	left := fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(0, 2), broken)
	right := fragment.NewLine(geom.NewPoint(3, 0), geom.NewPoint(3, 2), broken)
	return contact.Group{Spans: []fragment.FragmentSpan{
		fragment.NewFragmentSpan(top, nil),
		fragment.NewFragmentSpan(bottom, nil),
		fragment.NewFragmentSpan(left, nil),
		fragment.NewFragmentSpan(right, nil),
	}}
}

func TestEndorseSimpleRectangle(t *testing.T) {
	fs, ok := Endorse(rectGroup(false))
	if !ok {
		t.Fatal("expected 4 perpendicular touching lines to endorse as a rectangle")
	}
	rect, ok := fs.Fragment.(*fragment.Rectangle)
	if !ok {
		t.Fatalf("expected a Rectangle fragment, got %T", fs.Fragment)
	}
	if rect.IsRounded() {
		t.Fatal("expected a square-cornered rectangle")
	}
	if !rect.Start.Equal(geom.NewPoint(0, 0)) || !rect.End.Equal(geom.NewPoint(3, 2)) {
		t.Fatalf("unexpected rectangle bounds: %+v", rect)
	}
}

func TestEndorseRectanglePropagatesBroken(t *testing.T) {
	fs, ok := Endorse(rectGroup(true))
	if !ok {
		t.Fatal("expected endorsement to succeed")
	}
	rect := fs.Fragment.(*fragment.Rectangle)
	if !rect.Broken {
		t.Fatal("expected is_broken = any(line.is_broken)")
	}
}

func TestEndorseRejectsNonRectangleGroup(t *testing.T) {
	group := contact.Group{Spans: []fragment.FragmentSpan{
		fragment.NewFragmentSpan(fragment.NewLine(geom.NewPoint(0, 0), geom.NewPoint(1, 0), false), nil),
		fragment.NewFragmentSpan(fragment.NewLine(geom.NewPoint(1, 0), geom.NewPoint(1, 1), false), nil),
	}}
	if _, ok := Endorse(group); ok {
		t.Fatal("expected a 2-line group not to endorse as a rectangle")
	}
}

func TestEndorseRoundedRectangle(t *testing.T) {
	radius := 0.5
	top := fragment.NewLine(geom.NewPoint(0.5, 0), geom.NewPoint(2.5, 0), false)
	bottom := fragment.NewLine(geom.NewPoint(0.5, 2), geom.NewPoint(2.5, 2), false)
	left := fragment.NewLine(geom.NewPoint(0, 0.5), geom.NewPoint(0, 1.5), false)
	right := fragment.NewLine(geom.NewPoint(3, 0.5), geom.NewPoint(3, 1.5), false)

	arcTL := fragment.NewArc(geom.NewPoint(0, 0.5), geom.NewPoint(0.5, 0), geom.NewPoint(0, 0), radius, false)
	arcTR := fragment.NewArc(geom.NewPoint(2.5, 0), geom.NewPoint(3, 0.5), geom.NewPoint(3, 0), radius, false)
	arcBL := fragment.NewArc(geom.NewPoint(0, 1.5), geom.NewPoint(0.5, 2), geom.NewPoint(0, 2), radius, false)
	arcBR := fragment.NewArc(geom.NewPoint(2.5, 2), geom.NewPoint(3, 1.5), geom.NewPoint(3, 2), radius, false)

	group := contact.Group{Spans: []fragment.FragmentSpan{
		fragment.NewFragmentSpan(top, nil),
		fragment.NewFragmentSpan(bottom, nil),
		fragment.NewFragmentSpan(left, nil),
		fragment.NewFragmentSpan(right, nil),
		fragment.NewFragmentSpan(arcTL, nil),
		fragment.NewFragmentSpan(arcTR, nil),
		fragment.NewFragmentSpan(arcBL, nil),
		fragment.NewFragmentSpan(arcBR, nil),
	}}

	fs, ok := Endorse(group)
	if !ok {
		t.Fatal("expected 4 lines + 4 right-angle arcs to endorse as a rounded rectangle")
	}
	rect := fs.Fragment.(*fragment.Rectangle)
	if !rect.IsRounded() {
		t.Fatal("expected a rounded rectangle")
	}
}
