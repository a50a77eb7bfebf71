// Package engine builds the side-view drawing of an end mill from its
// dimensional parameters.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// drawingNamespace seeds the name-based drawing IDs, so equal profiles
// always get the same ID.
var drawingNamespace = uuid.MustParse("6f1c2a4e-5d0b-4c7e-9a43-2b8e1f0d7c55")

// Generate validates the profile and renders it. On invalid geometry it
// returns the validation error and no drawing.
func Generate(p model.ToolProfile) (model.Drawing, error) {
	if err := model.Validate(p); err != nil {
		return model.Drawing{}, err
	}
	return Render(p), nil
}

// Render builds the drawing, tip at x=0 and the shank to the right.
// It assumes Validate has passed; invalid lengths give overlapping or
// inverted shapes rather than an error.
func Render(p model.ToolProfile) model.Drawing {
	d := model.Drawing{
		ID:        DrawingID(p),
		Profile:   p,
		StockCode: model.StockCode(p),
		Summary:   model.Summary(p),
		Bounds:    bounds(p),
	}

	profileOutline(&d, p)
	d.Flutes = fluteLines(p)
	annotate(&d, p)

	return d
}

// profileOutline adds the shank, neck and cutting body rectangles followed by
// the rounded nose: two fillet arcs, the tip face and the cutting edges.
func profileOutline(d *model.Drawing, p model.ToolProfile) {
	d.Rects = append(d.Rects,
		model.Rect{Section: model.SectionShank, X: p.L3, Y: -p.D2 / 2, W: p.L1 - p.L3, H: p.D2},
		model.Rect{Section: model.SectionNeck, X: p.L2, Y: -p.D3 / 2, W: p.L3 - p.L2, H: p.D3},
		// Starts at r, the fillets close the gap to the tip.
		model.Rect{Section: model.SectionCutting, X: p.R, Y: -p.D1 / 2, W: p.L2 - p.R, H: p.D1},
	)

	filletY := p.D1/2 - p.R
	d.Arcs = append(d.Arcs,
		model.Arc{Center: model.Point2D{X: p.R, Y: filletY}, Radius: p.R, StartDeg: 90, EndDeg: 180},
		model.Arc{Center: model.Point2D{X: p.R, Y: -filletY}, Radius: p.R, StartDeg: 180, EndDeg: 270},
	)

	d.Segments = append(d.Segments,
		model.Segment{From: model.Point2D{X: 0, Y: -filletY}, To: model.Point2D{X: 0, Y: filletY}},
		model.Segment{From: model.Point2D{X: p.R, Y: p.D1 / 2}, To: model.Point2D{X: p.L2, Y: p.D1 / 2}},
		model.Segment{From: model.Point2D{X: p.R, Y: -p.D1 / 2}, To: model.Point2D{X: p.L2, Y: -p.D1 / 2}},
	)
}

// DrawingID returns a short name-based ID for the profile.
func DrawingID(p model.ToolProfile) string {
	key := fmt.Sprintf("%g|%g|%g|%g|%g|%g|%g|%d|%g",
		p.D1, p.D2, p.D3, p.L1, p.L2, p.L3, p.R, p.Flutes, p.HelixAngle)
	return uuid.NewSHA1(drawingNamespace, []byte(key)).String()[:8]
}
