package svgnode

import "testing"

func TestFmtFloatTrimsTrailingZeros(t *testing.T) {
	cases := map[float64]string{
		3.0:   "3",
		3.5:   "3.5",
		0.25:  "0.25",
		-2.5:  "-2.5",
		10.10: "10.1",
	}
	for in, want := range cases {
		if got := fmtFloat(in); got != want {
			t.Errorf("fmtFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRectRenderIncludesRxWhenRounded(t *testing.T) {
	r := &Rect{X: 0, Y: 0, Width: 10, Height: 5, Rx: 2, Ry: 2}
	got := r.Render()
	if !contains(got, `rx="2"`) {
		t.Fatalf("expected rx attribute in %q", got)
	}
}

func TestRectRenderOmitsRxWhenSquare(t *testing.T) {
	r := &Rect{X: 0, Y: 0, Width: 10, Height: 5}
	got := r.Render()
	if contains(got, "rx=") {
		t.Fatalf("expected no rx attribute in %q", got)
	}
}

func TestTextEscapesContent(t *testing.T) {
	txt := &Text{X: 1, Y: 1, Content: "a<b>&c"}
	got := txt.Render()
	if contains(got, "<b>") {
		t.Fatalf("expected content to be escaped, got %q", got)
	}
}

func TestSVGRenderIncludesDefsWhenPresent(t *testing.T) {
	s := &SVG{Width: 10, Height: 10, Defs: []Element{&Title{Content: "x"}}}
	got := s.Render()
	if !contains(got, "<defs>") {
		t.Fatalf("expected <defs> in %q", got)
	}
}

func TestSVGRenderOmitsDefsWhenAbsent(t *testing.T) {
	s := &SVG{Width: 10, Height: 10}
	got := s.Render()
	if contains(got, "<defs>") {
		t.Fatalf("expected no <defs> in %q", got)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
