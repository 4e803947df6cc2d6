package catalog

import (
	"math"
	"sort"
	"sync"

	"github.com/asciigeom/bobdiagram/internal/geom"
)

// CircleTemplate is one entry in the circle/arc template catalog: the
// exact set of (Δcell, char) offsets a hand-drawn circle or arc of this
// radius is expected to occupy, anchored at its top-left cell.
type CircleTemplate struct {
	Radius float64
	Cells  map[geom.Cell]rune
	// IsArc marks half/quarter-arc templates, gated behind a settings flag
	// rather than always matched.
	IsArc bool
}

// diameters lists the supported full-circle diameters, in cell-width
// units.
var diameters = []int{3, 4, 5, 8, 12, 14, 16, 18, 20}

// quarterArcRadii lists the supported quarter/half-arc radii, confirmed
// against the pack's circle-map tests (4.5 and 5.0 cell-width units).
var quarterArcRadii = []float64{4.5, 5.0}

var (
	circlesOnce sync.Once
	circles     []CircleTemplate
)

// Circles returns the static circle/arc template catalog, building it on
// first call, largest radius first so the matcher (internal/fragbuf)
// prefers the largest template that fits.
func Circles() []CircleTemplate {
	circlesOnce.Do(func() {
		for _, d := range diameters {
			radius := float64(d) / 2.0 * geom.CellWidth
			circles = append(circles, generateCircleTemplate(radius, false))
		}
		for _, r := range quarterArcRadii {
			circles = append(circles, generateCircleTemplate(r*geom.CellWidth, true))
		}
		sort.Slice(circles, func(i, j int) bool { return circles[i].Radius > circles[j].Radius })
	})
	return circles
}

// generateCircleTemplate rasterizes the ring of cells at distance radius
// from an origin cell, classifying each boundary cell's glyph by the
// tangent direction of the circle at that angle: "-" along the top and
// bottom, "|" along the left and right sides, "/" and "\" on the
// diagonals. Only these four glyphs are produced.
func generateCircleTemplate(radius float64, isArc bool) CircleTemplate {
	halfW := int(math.Ceil(radius/geom.CellWidth)) + 1
	halfH := int(math.Ceil(radius/geom.CellHeight)) + 1
	thickness := math.Max(geom.CellWidth, geom.CellHeight) * 0.6

	cells := make(map[geom.Cell]rune)
	for cy := -halfH; cy <= halfH; cy++ {
		for cx := -halfW; cx <= halfW; cx++ {
			cx0 := (float64(cx) + 0.5) * geom.CellWidth
			cy0 := (float64(cy) + 0.5) * geom.CellHeight
			dist := math.Hypot(cx0, cy0)
			if math.Abs(dist-radius) > thickness {
				continue
			}
			cells[geom.Cell{X: cx, Y: cy}] = glyphForAngle(math.Atan2(cy0, cx0))
		}
	}
	return CircleTemplate{Radius: radius, Cells: cells, IsArc: isArc}
}

// glyphForAngle maps an angle in radians (atan2 convention, 0 = east,
// positive = clockwise in screen coordinates) to the ASCII glyph whose
// tangent best approximates the circle's boundary at that angle.
func glyphForAngle(theta float64) rune {
	deg := theta * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	switch {
	case deg < 22.5, deg >= 337.5:
		return '|'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '-'
	case deg < 157.5:
		return '\\'
	case deg < 202.5:
		return '|'
	case deg < 247.5:
		return '/'
	case deg < 292.5:
		return '-'
	default:
		return '\\'
	}
}
