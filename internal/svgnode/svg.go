// Package svgnode is the Node Emitter boundary: a small SVG
// element tree plus a deterministic serializer, adapted from the
// teacher's hand-rolled renderer rather than an off-the-shelf SVG library,
// because golden-file testing requires a fixed attribute order no
// generic library promises.
package svgnode

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// fmtFloat formats a float64 for SVG attributes with consistent
// cross-platform output: fixed-decimal with trailing zeros trimmed, so
// the same geometry always serializes to the same string regardless of
// floating-point rounding differences between platforms.
func fmtFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 10, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// Element is the interface every SVG node implements.
type Element interface {
	Render() string
}

// Group is an SVG <g> element.
type Group struct {
	Class     string
	Transform string
	Children  []Element
}

func (g *Group) Render() string {
	var attrs []string
	if g.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, g.Class))
	}
	if g.Transform != "" {
		attrs = append(attrs, fmt.Sprintf(`transform="%s"`, g.Transform))
	}
	var children strings.Builder
	for _, c := range g.Children {
		children.WriteString(c.Render())
	}
	return fmt.Sprintf("<g%s>%s</g>", attrStr(attrs), children.String())
}

// Rect is an SVG <rect> element.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Rx, Ry        float64
	Fill          string
	Stroke        string
	StrokeWidth   float64
	DashArray     string
	Class         string
}

func (r *Rect) Render() string {
	attrs := []string{
		`x="` + fmtFloat(r.X) + `"`,
		`y="` + fmtFloat(r.Y) + `"`,
		`width="` + fmtFloat(r.Width) + `"`,
		`height="` + fmtFloat(r.Height) + `"`,
	}
	if r.Rx > 0 {
		attrs = append(attrs, `rx="`+fmtFloat(r.Rx)+`"`)
	}
	if r.Ry > 0 {
		attrs = append(attrs, `ry="`+fmtFloat(r.Ry)+`"`)
	}
	attrs = appendPaint(attrs, r.Fill, r.Stroke, r.StrokeWidth, r.DashArray)
	if r.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, r.Class))
	}
	return fmt.Sprintf("<rect %s/>", strings.Join(attrs, " "))
}

// Circle is an SVG <circle> element.
type Circle struct {
	Cx, Cy, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Class       string
}

func (c *Circle) Render() string {
	attrs := []string{
		`cx="` + fmtFloat(c.Cx) + `"`,
		`cy="` + fmtFloat(c.Cy) + `"`,
		`r="` + fmtFloat(c.R) + `"`,
	}
	attrs = appendPaint(attrs, c.Fill, c.Stroke, c.StrokeWidth, "")
	if c.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, c.Class))
	}
	return fmt.Sprintf("<circle %s/>", strings.Join(attrs, " "))
}

// Polygon is an SVG <polygon> element.
type Polygon struct {
	Points      string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Class       string
}

func (p *Polygon) Render() string {
	attrs := []string{`points="` + p.Points + `"`}
	attrs = appendPaint(attrs, p.Fill, p.Stroke, p.StrokeWidth, "")
	if p.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, p.Class))
	}
	return fmt.Sprintf("<polygon %s/>", strings.Join(attrs, " "))
}

// Text is an SVG <text> element.
type Text struct {
	X, Y       float64
	Content    string
	FontFamily string
	FontSize   float64
	Fill       string
	Anchor     string
	Class      string
	Spans      []*TSpan
}

func (t *Text) Render() string {
	attrs := []string{`x="` + fmtFloat(t.X) + `"`, `y="` + fmtFloat(t.Y) + `"`}
	if t.FontFamily != "" {
		attrs = append(attrs, fmt.Sprintf(`font-family="%s"`, t.FontFamily))
	}
	if t.FontSize > 0 {
		attrs = append(attrs, `font-size="`+fmtFloat(t.FontSize)+`"`)
	}
	if t.Fill != "" {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, t.Fill))
	}
	if t.Anchor != "" {
		attrs = append(attrs, fmt.Sprintf(`text-anchor="%s"`, t.Anchor))
	}
	if t.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, t.Class))
	}
	var content string
	if len(t.Spans) > 0 {
		var spans strings.Builder
		for _, s := range t.Spans {
			spans.WriteString(s.Render())
		}
		content = spans.String()
	} else {
		content = html.EscapeString(t.Content)
	}
	return fmt.Sprintf("<text %s>%s</text>", strings.Join(attrs, " "), content)
}

// TSpan is an SVG <tspan> element inside Text.
type TSpan struct {
	Content string
	Class   string
	Fill    string
}

func (ts *TSpan) Render() string {
	var attrs []string
	if ts.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, ts.Class))
	}
	if ts.Fill != "" {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, ts.Fill))
	}
	return fmt.Sprintf("<tspan%s>%s</tspan>", attrStr(attrs), html.EscapeString(ts.Content))
}

// Path is an SVG <path> element.
type Path struct {
	D           string
	Fill        string
	Stroke      string
	StrokeWidth float64
	MarkerStart string
	MarkerEnd   string
	Class       string
}

func (p *Path) Render() string {
	attrs := []string{fmt.Sprintf(`d="%s"`, p.D)}
	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	attrs = append(attrs, fmt.Sprintf(`fill="%s"`, fill))
	if p.Stroke != "" {
		attrs = append(attrs, fmt.Sprintf(`stroke="%s"`, p.Stroke))
	}
	if p.StrokeWidth > 0 {
		attrs = append(attrs, `stroke-width="`+fmtFloat(p.StrokeWidth)+`"`)
	}
	if p.MarkerStart != "" {
		attrs = append(attrs, fmt.Sprintf(`marker-start="url(#%s)"`, p.MarkerStart))
	}
	if p.MarkerEnd != "" {
		attrs = append(attrs, fmt.Sprintf(`marker-end="url(#%s)"`, p.MarkerEnd))
	}
	if p.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, p.Class))
	}
	return fmt.Sprintf("<path %s/>", strings.Join(attrs, " "))
}

// Line is an SVG <line> element.
type Line struct {
	X1, Y1      float64
	X2, Y2      float64
	Stroke      string
	StrokeWidth float64
	DashArray   string
	MarkerStart string
	MarkerEnd   string
	Class       string
}

func (l *Line) Render() string {
	attrs := []string{
		`x1="` + fmtFloat(l.X1) + `"`, `y1="` + fmtFloat(l.Y1) + `"`,
		`x2="` + fmtFloat(l.X2) + `"`, `y2="` + fmtFloat(l.Y2) + `"`,
	}
	attrs = appendPaint(attrs, "", l.Stroke, l.StrokeWidth, l.DashArray)
	if l.MarkerStart != "" {
		attrs = append(attrs, fmt.Sprintf(`marker-start="url(#%s)"`, l.MarkerStart))
	}
	if l.MarkerEnd != "" {
		attrs = append(attrs, fmt.Sprintf(`marker-end="url(#%s)"`, l.MarkerEnd))
	}
	if l.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, l.Class))
	}
	return fmt.Sprintf("<line %s/>", strings.Join(attrs, " "))
}

// Title is an SVG <title> element.
type Title struct{ Content string }

func (t *Title) Render() string {
	return fmt.Sprintf("<title>%s</title>", html.EscapeString(t.Content))
}

// SVG is the root <svg> element.
type SVG struct {
	Width    float64
	Height   float64
	ViewBox  string
	Class    string
	ID       string
	Defs     []Element
	Children []Element
	Style    string
}

func (s *SVG) Render() string {
	attrs := []string{`xmlns="http://www.w3.org/2000/svg"`}
	if s.Width > 0 {
		attrs = append(attrs, `width="`+fmtFloat(s.Width)+`"`)
	}
	if s.Height > 0 {
		attrs = append(attrs, `height="`+fmtFloat(s.Height)+`"`)
	}
	if s.ViewBox != "" {
		attrs = append(attrs, fmt.Sprintf(`viewBox="%s"`, s.ViewBox))
	}
	if s.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, s.Class))
	}
	if s.ID != "" {
		attrs = append(attrs, fmt.Sprintf(`id="%s"`, s.ID))
	}

	var body strings.Builder
	if s.Style != "" {
		body.WriteString(fmt.Sprintf("<style>%s</style>", s.Style))
	}
	if len(s.Defs) > 0 {
		body.WriteString("<defs>")
		for _, d := range s.Defs {
			body.WriteString(d.Render())
		}
		body.WriteString("</defs>")
	}
	for _, c := range s.Children {
		body.WriteString(c.Render())
	}
	return fmt.Sprintf("<svg %s>%s</svg>", strings.Join(attrs, " "), body.String())
}

func attrStr(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

func appendPaint(attrs []string, fill, stroke string, strokeWidth float64, dash string) []string {
	if fill != "" {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, fill))
	}
	if stroke != "" {
		attrs = append(attrs, fmt.Sprintf(`stroke="%s"`, stroke))
	}
	if strokeWidth > 0 {
		attrs = append(attrs, `stroke-width="`+fmtFloat(strokeWidth)+`"`)
	}
	if dash != "" {
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, dash))
	}
	return attrs
}
