package fragment

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/asciigeom/bobdiagram/internal/geom"
)

// classNamePattern matches a "{name}" label, where name is a CSS
// identifier. regexp2 (rather than stdlib regexp) is used here because the
// pattern's negative lookahead rejects "{{escaped}}" literal braces — a
// construct stdlib regexp's RE2 engine cannot express. internal/tree reaches
// it only through CSSTags.
var classNamePattern = regexp2.MustCompile(`^\{(?!\{)([A-Za-z0-9_-]+)\}$`, regexp2.None)

// CellText is a single cell's worth of literal (non-drawing) text, still
// tied to the cell it came from so the Fragment Tree can decide whether it
// falls inside an enclosing shape. The pipeline emits CellText as it is;
// no stage combines CellText fragments into a Text run.
type CellText struct {
	Cell geom.Cell
	Text string
}

func (*CellText) isFragment() {}

// NewCellText builds a CellText.
func NewCellText(cell geom.Cell, text string) *CellText {
	return &CellText{Cell: cell, Text: text}
}

// Text is a string anchored at an absolute Point, ready for the Node
// Emitter. No pipeline stage builds Text values from CellText.
type Text struct {
	Point geom.Point
	Text  string
}

func (*Text) isFragment() {}

// NewText builds a Text run.
func NewText(point geom.Point, text string) *Text {
	return &Text{Point: point, Text: text}
}

// classNameTag reports whether s is a "{name}"-shaped label and, if so,
// returns the bare name. Used by CSSTags to decide whether a text
// fragment becomes a CSS class on its enclosing fragment instead of being
// rendered as a child element.
func classNameTag(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	m, err := classNamePattern.FindStringMatch(trimmed)
	if err != nil || m == nil {
		return "", false
	}
	return m.Groups()[1].String(), true
}
