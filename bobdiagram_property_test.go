package bobdiagram_test

import (
	"strings"
	"testing"

	"github.com/asciigeom/bobdiagram"
	"pgregory.net/rapid"
)

// glyphs drawn from the recognized box-drawing/ASCII alphabet plus plain
// whitespace and letters, so generated diagrams exercise the cell resolver
// without drowning every draw in noise bytes.
var diagramGlyphs = []rune(" -|+/\\*oO.,'\"<>^vAaBb0123456789{}_=~")

func randomLine(t *rapid.T, maxWidth int) string {
	width := rapid.IntRange(0, maxWidth).Draw(t, "width")
	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := rapid.IntRange(0, len(diagramGlyphs)-1).Draw(t, "glyph")
		b.WriteRune(diagramGlyphs[idx])
	}
	return b.String()
}

func randomDiagram(t *rapid.T) string {
	rows := rapid.IntRange(0, 64).Draw(t, "rows")
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = randomLine(t, 64)
	}
	return strings.Join(lines, "\n")
}

// TestToSVGNeverPanicsOnRandomDiagrams asserts that any input up to 64x64
// renders without panicking.
func TestToSVGNeverPanicsOnRandomDiagrams(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		diagram := randomDiagram(t)
		_ = bobdiagram.ToSVG(diagram)
	})
}

// TestToSVGAlwaysWellFormedOnRandomDiagrams asserts the output always
// starts with <svg, ends with </svg>, and has as many <svg as </svg> tags,
// regardless of input.
func TestToSVGAlwaysWellFormedOnRandomDiagrams(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		diagram := randomDiagram(t)
		svg := bobdiagram.ToSVG(diagram)

		if !strings.HasPrefix(svg, "<svg") {
			t.Fatalf("output does not start with <svg: %q", firstN(svg, 40))
		}
		if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
			t.Fatalf("output does not end with </svg>: %q", lastN(svg, 40))
		}
		if strings.Count(svg, "<svg") != strings.Count(svg, "</svg>") {
			t.Fatalf("unbalanced svg root tags in output: %q", svg)
		}
	})
}

// TestToSVGWithSettingsNeverPanicsAcrossRandomSettings sweeps Settings'
// numeric/bool fields alongside random diagrams, since a malformed scale or
// font size is as plausible a fuzz input as malformed diagram text.
func TestToSVGWithSettingsNeverPanicsAcrossRandomSettings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		diagram := randomDiagram(t)
		settings := bobdiagram.DefaultSettings()
		settings.Scale = rapid.Float64Range(0.1, 32.0).Draw(t, "scale")
		settings.FontSize = rapid.IntRange(1, 72).Draw(t, "fontSize")
		settings.StrokeWidth = rapid.Float64Range(0.1, 16.0).Draw(t, "strokeWidth")
		settings.EnhanceCircuitries = rapid.Bool().Draw(t, "enhance")
		settings.IncludeArcTemplates = rapid.Bool().Draw(t, "arcTemplates")
		settings.MergeLineWithShapes = rapid.Bool().Draw(t, "mergeLines")

		_ = bobdiagram.ToSVGWithSettings(diagram, settings)
	})
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
