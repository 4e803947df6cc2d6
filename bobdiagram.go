// Package bobdiagram compiles ASCII/Unicode box-drawing diagrams into SVG,
// wiring the pipeline stages in order: Cell Buffer, Span Extraction,
// Fragment Buffer Construction, Circle/Arc Matcher, Fragment Merger,
// Contact Grouper, Endorser, Fragment Tree, and Node Emitter.
package bobdiagram

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/asciigeom/bobdiagram/internal/cellbuf"
	"github.com/asciigeom/bobdiagram/internal/contact"
	"github.com/asciigeom/bobdiagram/internal/endorse"
	"github.com/asciigeom/bobdiagram/internal/fragbuf"
	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/geom"
	"github.com/asciigeom/bobdiagram/internal/merge"
	"github.com/asciigeom/bobdiagram/internal/spanbuf"
	"github.com/asciigeom/bobdiagram/internal/svgnode"
	"github.com/asciigeom/bobdiagram/internal/tree"
)

// Settings is the superset of every rendering option across the diagram
// compiler's lifetime, including the SVGClass/SVGID fields an older variant
// carried.
type Settings struct {
	FontSize   int
	FontFamily string
	FillColor  string
	Background string

	StrokeColor string
	StrokeWidth float64

	Scale float64

	EnhanceCircuitries  bool
	IncludeBackdrop     bool
	IncludeStyles       bool
	IncludeDefs         bool
	MergeLineWithShapes bool

	// IncludeArcTemplates gates the half-arc/quarter-arc catalog entries
	// (radius 4.5/5.0) in addition to the full-circle diameters; off by
	// default.
	IncludeArcTemplates bool

	SVGClass string
	SVGID    string
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		FontSize:    14,
		FontFamily:  "monospace",
		FillColor:   "none",
		Background:  "white",
		StrokeColor: "black",
		StrokeWidth: 2.0,
		Scale:       8.0,

		EnhanceCircuitries:  true,
		IncludeBackdrop:     false,
		IncludeStyles:       false,
		IncludeDefs:         false,
		IncludeArcTemplates: false,

		SVGClass: "bob",
	}
}

// ValidateColors reports an error naming a malformed hex color field (when
// several are malformed, which one is named is not fixed), so callers
// (cmd/bobdiagram) can reject bad Settings before rendering instead of
// emitting invalid SVG silently.
func (s Settings) ValidateColors() error {
	fields := map[string]string{
		"fill_color":  s.FillColor,
		"background":  s.Background,
		"stroke_color": s.StrokeColor,
	}
	for name, v := range fields {
		if v == "" || v[0] != '#' {
			continue // named CSS colors (e.g. "black", "none", "transparent") pass through unchecked
		}
		if _, err := colorful.Hex(v); err != nil {
			return fmt.Errorf("bobdiagram: %s: invalid hex color %q: %w", name, v, err)
		}
	}
	return nil
}

// ToSVG renders diagram using DefaultSettings.
func ToSVG(diagram string) string {
	return ToSVGWithSettings(diagram, DefaultSettings())
}

// ToSVGWithSettings runs the full pipeline over diagram and returns a
// complete, self-contained <svg> document.
func ToSVGWithSettings(diagram string, settings Settings) string {
	buf := cellbuf.From(diagram)
	if buf.Empty() {
		return emptyDocument(settings)
	}

	spans := spanbuf.Extract(buf)

	var built []fragment.FragmentSpan
	for _, span := range spans {
		fragSpans := fragbuf.Build(span)
		fragSpans = fragbuf.MatchCircles(span, fragSpans, settings.IncludeArcTemplates)
		built = append(built, fragSpans...)
	}

	if settings.EnhanceCircuitries {
		built = enhanceCircuitries(built)
	}

	merged := merge.Merge(built, settings.MergeLineWithShapes)

	groups := contact.GroupSpans(merged)
	var endorsed []fragment.FragmentSpan
	for _, g := range groups {
		if fs, ok := endorse.Endorse(g); ok {
			endorsed = append(endorsed, fs)
			continue
		}
		endorsed = append(endorsed, g.Spans...)
	}

	roots := tree.Build(endorsed)

	maxCol, maxRow := buf.Bounds()
	width := settings.Scale * float64(maxCol+2) * geom.CellWidth
	height := settings.Scale * float64(maxRow+2) * geom.CellHeight

	scaledRoots := scaleForest(roots, settings.Scale)

	opts := svgnode.Options{
		Width: width, Height: height,
		FontFamily:  settings.FontFamily,
		FontSize:    float64(settings.FontSize),
		StrokeColor: settings.StrokeColor,
		StrokeWidth: settings.StrokeWidth,
		FillColor:   settings.FillColor,
		SVGClass:    settings.SVGClass,
		SVGID:       settings.SVGID,
	}
	if settings.IncludeBackdrop {
		opts.Background = settings.Background
	}
	if settings.IncludeStyles {
		opts.StyleCSS = defaultStyleSheet(settings)
	}
	return svgnode.Emit(scaledRoots, opts)
}

func emptyDocument(settings Settings) string {
	return svgnode.Emit(nil, svgnode.Options{
		Width: settings.Scale * 2 * geom.CellWidth, Height: settings.Scale * 2 * geom.CellHeight,
		SVGClass: settings.SVGClass, SVGID: settings.SVGID,
	})
}

// scaleForest rescales every fragment in the forest in place (depth first),
// matching "scale × cell dimensions" applying to the whole document, not
// just the top-level bounding box.
func scaleForest(roots []*tree.Node, s float64) []*tree.Node {
	for _, n := range roots {
		n.Span = fragment.FragmentSpan{Fragment: fragment.Scale(n.Span.Fragment, s), Cells: n.Span.Cells}
		n.Children = scaleForest(n.Children, s)
	}
	return roots
}

// circuitryEpsilon is the tolerance Settings.EnhanceCircuitries nudges
// near-miss endpoints within, looser than geom.Epsilon's exact-touch test
// but tight enough not to bridge endpoints a whole lattice unit apart.
const circuitryEpsilon = 0.2

// enhanceCircuitries snaps near-miss Line/Line and Line/Arc endpoint pairs
// together before the Fragment Merger runs: two endpoints within
// circuitryEpsilon of each other, but not already touching to the Merger's
// exact-equality tolerance, are pulled to a shared point so the Merger's
// touch test can fuse the fragments that carry them.
func enhanceCircuitries(spans []fragment.FragmentSpan) []fragment.FragmentSpan {
	type endpointRef struct {
		spanIdx int
		isStart bool
	}

	var points []geom.Point
	var refs []endpointRef
	for i, s := range spans {
		switch f := s.Fragment.(type) {
		case *fragment.Line:
			points = append(points, f.Start, f.End)
			refs = append(refs, endpointRef{i, true}, endpointRef{i, false})
		case *fragment.Arc:
			points = append(points, f.Start, f.End)
			refs = append(refs, endpointRef{i, true}, endpointRef{i, false})
		}
	}

	canonical := append([]geom.Point(nil), points...)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if refs[i].spanIdx == refs[j].spanIdx {
				continue
			}
			d := canonical[i].Distance(points[j])
			if d > geom.Epsilon && d <= circuitryEpsilon {
				canonical[j] = canonical[i]
			}
		}
	}

	nudged := make(map[int][2]geom.Point)
	for idx, ref := range refs {
		pair := nudged[ref.spanIdx]
		if ref.isStart {
			pair[0] = canonical[idx]
		} else {
			pair[1] = canonical[idx]
		}
		nudged[ref.spanIdx] = pair
	}

	out := append([]fragment.FragmentSpan(nil), spans...)
	for spanIdx, pair := range nudged {
		switch f := spans[spanIdx].Fragment.(type) {
		case *fragment.Line:
			if pair[0].Equal(f.Start) && pair[1].Equal(f.End) {
				continue
			}
			out[spanIdx] = fragment.FragmentSpan{
				Fragment: fragment.NewLine(pair[0], pair[1], f.Broken),
				Cells:    spans[spanIdx].Cells,
			}
		case *fragment.Arc:
			if pair[0].Equal(f.Start) && pair[1].Equal(f.End) {
				continue
			}
			out[spanIdx] = fragment.FragmentSpan{
				Fragment: fragment.NewArc(pair[0], pair[1], f.Center, f.Radius, f.Sweep),
				Cells:    spans[spanIdx].Cells,
			}
		}
	}
	return out
}

func defaultStyleSheet(settings Settings) string {
	return fmt.Sprintf(
		"line,path,circle,rect,polygon{stroke:%s;stroke-width:%s;}"+
			"text{fill:%s;font-family:%s;}"+
			".broken{stroke-dasharray:4,2;}"+
			".filled{fill:%s;}",
		settings.StrokeColor, fmtFloatForCSS(settings.StrokeWidth),
		settings.StrokeColor, settings.FontFamily, settings.FillColor)
}

func fmtFloatForCSS(v float64) string {
	return fmt.Sprintf("%g", v)
}
