package svgnode

import (
	"strconv"
	"strings"
)

// PathBuilder accumulates SVG path-data commands for the "d" attribute of
// a <path> element.
type PathBuilder struct {
	commands []string
}

// NewPathBuilder returns an empty PathBuilder.
func NewPathBuilder() *PathBuilder { return &PathBuilder{} }

// MoveTo adds an absolute move command (M).
func (pb *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	pb.commands = append(pb.commands, "M "+fmtFloat(x)+" "+fmtFloat(y))
	return pb
}

// LineTo adds an absolute line command (L).
func (pb *PathBuilder) LineTo(x, y float64) *PathBuilder {
	pb.commands = append(pb.commands, "L "+fmtFloat(x)+" "+fmtFloat(y))
	return pb
}

// ArcTo adds an absolute elliptical arc command (A).
func (pb *PathBuilder) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *PathBuilder {
	la, sw := 0, 0
	if largeArc {
		la = 1
	}
	if sweep {
		sw = 1
	}
	pb.commands = append(pb.commands, "A "+fmtFloat(rx)+" "+fmtFloat(ry)+" "+fmtFloat(rotation)+" "+
		strconv.Itoa(la)+" "+strconv.Itoa(sw)+" "+fmtFloat(x)+" "+fmtFloat(y))
	return pb
}

// ClosePath adds a close-path command (Z).
func (pb *PathBuilder) ClosePath() *PathBuilder {
	pb.commands = append(pb.commands, "Z")
	return pb
}

// String joins the accumulated commands into a single "d" attribute value.
func (pb *PathBuilder) String() string {
	return strings.Join(pb.commands, " ")
}
