// Package svgnode's Emit function is the Node Emitter itself:
// it walks a Fragment Tree forest and produces a serialized <svg> document,
// the final stage of the pipeline.
package svgnode

import (
	"fmt"
	"strings"

	"github.com/asciigeom/bobdiagram/internal/fragment"
	"github.com/asciigeom/bobdiagram/internal/tree"
)

// Options controls the emitted document's appearance. The root package
// maps its user-facing Settings onto this smaller, emitter-local shape so
// svgnode never needs to import the root package.
type Options struct {
	Width, Height float64
	FontFamily    string
	FontSize      float64
	StrokeColor   string
	StrokeWidth   float64
	FillColor     string
	Background    string
	StyleCSS      string
	SVGClass      string
	SVGID         string
}

// Emit renders a Fragment Tree forest into a complete SVG document string.
func Emit(roots []*tree.Node, opts Options) string {
	doc := &SVG{
		Width:   opts.Width,
		Height:  opts.Height,
		ViewBox: fmt.Sprintf("0 0 %s %s", fmtFloat(opts.Width), fmtFloat(opts.Height)),
		Class:   opts.SVGClass,
		ID:      opts.SVGID,
		Style:   opts.StyleCSS,
	}
	if used := collectMarkers(roots); len(used) > 0 {
		doc.Defs = markerDefs(used)
	}
	if opts.Background != "" {
		doc.Children = append(doc.Children, &Rect{
			X: 0, Y: 0, Width: opts.Width, Height: opts.Height, Fill: opts.Background,
		})
	}
	for _, n := range roots {
		doc.Children = append(doc.Children, renderNode(n, opts))
	}
	return doc.Render()
}

func renderNode(n *tree.Node, opts Options) Element {
	el := renderFragment(n.Span.Fragment, opts)
	if len(n.Children) == 0 && len(n.Classes) == 0 {
		return el
	}
	g := &Group{Class: strings.Join(n.Classes, " "), Children: []Element{el}}
	for _, c := range n.Children {
		g.Children = append(g.Children, renderNode(c, opts))
	}
	return g
}

func renderFragment(f fragment.Fragment, opts Options) Element {
	switch v := f.(type) {
	case *fragment.Line:
		return renderLine(v, opts, "", "")
	case *fragment.MarkerLine:
		start, end := "", ""
		if v.StartMarker != nil {
			start = markerID(*v.StartMarker)
		}
		if v.EndMarker != nil {
			end = markerID(*v.EndMarker)
		}
		return renderLine(&v.Line, opts, start, end)
	case *fragment.Arc:
		return renderArc(v, opts)
	case *fragment.Circle:
		return renderCircle(v, opts)
	case *fragment.Rectangle:
		return renderRectangle(v, opts)
	case *fragment.Polygon:
		return renderPolygon(v, opts)
	case *fragment.CellText:
		return renderText(v.Text, 0, 0, opts)
	case *fragment.Text:
		return renderText(v.Text, v.Point.X, v.Point.Y, opts)
	default:
		panic("svgnode: Emit: unknown fragment case")
	}
}

func renderLine(l *fragment.Line, opts Options, startMarker, endMarker string) Element {
	class := "solid"
	dash := ""
	if l.Broken {
		class = "broken"
		dash = "4,2"
	}
	return &Line{
		X1: l.Start.X, Y1: l.Start.Y, X2: l.End.X, Y2: l.End.Y,
		Stroke: opts.StrokeColor, StrokeWidth: opts.StrokeWidth,
		DashArray: dash, Class: class,
		MarkerStart: startMarker, MarkerEnd: endMarker,
	}
}

func renderArc(a *fragment.Arc, opts Options) Element {
	pb := NewPathBuilder().MoveTo(a.Start.X, a.Start.Y)
	pb.ArcTo(a.Radius, a.Radius, 0, false, a.Sweep, a.End.X, a.End.Y)
	return &Path{
		D: pb.String(), Stroke: opts.StrokeColor, StrokeWidth: opts.StrokeWidth, Class: "arc",
	}
}

func renderCircle(c *fragment.Circle, opts Options) Element {
	fill := "none"
	if c.Filled {
		fill = opts.StrokeColor
	}
	class := "nofill"
	if c.Filled {
		class = "filled"
	}
	return &Circle{
		Cx: c.Center.X, Cy: c.Center.Y, R: c.Radius,
		Fill: fill, Stroke: opts.StrokeColor, StrokeWidth: opts.StrokeWidth, Class: class,
	}
}

func renderRectangle(r *fragment.Rectangle, opts Options) Element {
	fill := "none"
	class := "solid nofill"
	if r.Broken {
		class = "broken nofill"
	}
	if r.Filled {
		fill = opts.StrokeColor
		class = strings.Replace(class, "nofill", "filled", 1)
	}
	rect := &Rect{
		X: r.Start.X, Y: r.Start.Y, Width: r.Width(), Height: r.Height(),
		Fill: fill, Stroke: opts.StrokeColor, StrokeWidth: opts.StrokeWidth, Class: class,
	}
	if r.IsRounded() {
		rect.Rx, rect.Ry = *r.Radius, *r.Radius
	}
	if r.Broken {
		rect.DashArray = "4,2"
	}
	return rect
}

func renderPolygon(p *fragment.Polygon, opts Options) Element {
	var pts strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		pts.WriteString(fmtFloat(pt.X) + "," + fmtFloat(pt.Y))
	}
	fill := "none"
	if p.Filled {
		fill = opts.StrokeColor
	}
	return &Polygon{
		Points: pts.String(), Fill: fill, Stroke: opts.StrokeColor, StrokeWidth: opts.StrokeWidth,
	}
}

func renderText(content string, x, y float64, opts Options) Element {
	return &Text{
		X: x, Y: y, Content: content,
		FontFamily: opts.FontFamily, FontSize: opts.FontSize, Fill: opts.StrokeColor,
	}
}

// markerID names the <marker> def a Marker renders as.
func markerID(m fragment.Marker) string {
	switch m {
	case fragment.Arrow:
		return "arrow"
	case fragment.ClearArrow:
		return "arrow-clear"
	case fragment.MarkerCircle:
		return "marker-circle"
	case fragment.Square:
		return "marker-square"
	case fragment.Diamond:
		return "marker-diamond"
	case fragment.OpenCircle:
		return "marker-open-circle"
	case fragment.BigOpenCircle:
		return "marker-big-open-circle"
	default:
		return "arrow"
	}
}

func collectMarkers(roots []*tree.Node) map[fragment.Marker]bool {
	used := map[fragment.Marker]bool{}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if ml, ok := n.Span.Fragment.(*fragment.MarkerLine); ok {
			if ml.StartMarker != nil {
				used[*ml.StartMarker] = true
			}
			if ml.EndMarker != nil {
				used[*ml.EndMarker] = true
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return used
}

// markerDefs builds the <marker> definitions for every marker kind
// actually used by the document, keyed by markerID so Line/MarkerLine
// references resolve via "url(#id)".
func markerDefs(used map[fragment.Marker]bool) []Element {
	order := []fragment.Marker{
		fragment.Arrow, fragment.ClearArrow, fragment.MarkerCircle,
		fragment.Square, fragment.Diamond, fragment.OpenCircle, fragment.BigOpenCircle,
	}
	var defs []Element
	for _, m := range order {
		if !used[m] {
			continue
		}
		defs = append(defs, markerDef(m))
	}
	return defs
}

func markerDef(m fragment.Marker) Element {
	id := markerID(m)
	var body Element
	switch m {
	case fragment.Arrow:
		body = &Polygon{Points: "0,0 8,4 0,8", Fill: "context-stroke"}
	case fragment.ClearArrow:
		body = &Polygon{Points: "0,0 8,4 0,8", Fill: "none", Stroke: "context-stroke"}
	case fragment.MarkerCircle, fragment.OpenCircle, fragment.BigOpenCircle:
		fill := "context-stroke"
		if m != fragment.MarkerCircle {
			fill = "white"
		}
		radius := 3.0
		if m == fragment.BigOpenCircle {
			radius = 4.0
		}
		body = &Circle{Cx: 4, Cy: 4, R: radius, Fill: fill, Stroke: "context-stroke"}
	case fragment.Square:
		body = &Rect{X: 1, Y: 1, Width: 6, Height: 6, Fill: "context-stroke"}
	case fragment.Diamond:
		body = &Polygon{Points: "4,0 8,4 4,8 0,4", Fill: "context-stroke"}
	}
	return &markerWrapper{id: id, inner: body}
}

// markerWrapper renders an SVG <marker> element wrapping a single shape.
type markerWrapper struct {
	id    string
	inner Element
}

func (m *markerWrapper) Render() string {
	return fmt.Sprintf(
		`<marker id="%s" markerWidth="8" markerHeight="8" refX="4" refY="4" orient="auto-start-reverse">%s</marker>`,
		m.id, m.inner.Render())
}
