package export

import (
	"errors"
	"math"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// Number of straight pieces used when a backend has no native arc.
const arcSegments = 24

// Arrowhead barb length in drawing mm.
const arrowSize = 1.2

// ptPerMM converts typographic points to mm.
const ptPerMM = 72.0 / 25.4

const radPerDeg = math.Pi / 180

// pageTransform maps drawing coordinates (mm, y up) into a y-down page
// area with a uniform scale, keeping the 1:1 aspect ratio.
type pageTransform struct {
	scale   float64
	offsetX float64
	offsetY float64
	bounds  model.Bounds
}

// fitTransform scales the drawing bounds into a w x h area at (x, y),
// centered horizontally.
func fitTransform(b model.Bounds, x, y, w, h float64) pageTransform {
	scale := 1.0
	if b.Width() > 0 && b.Height() > 0 {
		scale = math.Min(w/b.Width(), h/b.Height())
	}
	return pageTransform{
		scale:   scale,
		offsetX: x + (w-b.Width()*scale)/2,
		offsetY: y,
		bounds:  b,
	}
}

// pt converts a drawing point to page coordinates.
func (t pageTransform) pt(p model.Point2D) (float64, float64) {
	return t.offsetX + (p.X-t.bounds.MinX)*t.scale,
		t.offsetY + (t.bounds.MaxY-p.Y)*t.scale
}

// length scales a drawing length.
func (t pageTransform) length(v float64) float64 {
	return v * t.scale
}

// rect returns the top-left corner and size of a drawing rectangle on the page.
func (t pageTransform) rect(r model.Rect) (x, y, w, h float64) {
	x, y = t.pt(model.Point2D{X: r.X, Y: r.Y + r.H})
	return x, y, t.length(r.W), t.length(r.H)
}

// errEmptyDrawing is returned when asked to export a drawing with no profile
// geometry, which happens when validation failed upstream.
var errEmptyDrawing = errors.New("no drawing to export")

func checkDrawing(d model.Drawing) error {
	if len(d.Rects) == 0 {
		return errEmptyDrawing
	}
	return nil
}
