package engine

import (
	"fmt"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// Layout offsets in mm. Length dimensions stack below the profile, the
// longest furthest out, so their labels never overlap.
const (
	l1DimOffset = 15.0
	l3DimOffset = 9.0
	l2DimOffset = 3.0

	d2DimOffset = 5.0 // right of the shank end
	d3DimOffset = 2.0 // right of the neck/cutting boundary
	d1DimOffset = 0.0 // at mid cutting length

	labelGap = 1.0 // between a dimension line and its text

	boundsLeft   = 5.0
	boundsRight  = 25.0
	boundsMargin = 20.0
)

// horizontalDimension adds a length dimension from x1 to x2 at height y,
// with dashed extension lines from both ends up to the axis.
func horizontalDimension(d *model.Drawing, x1, x2, y float64, label string) {
	d.Dimensions = append(d.Dimensions, model.Dimension{
		Orientation: model.Horizontal,
		From:        model.Point2D{X: x1, Y: y},
		To:          model.Point2D{X: x2, Y: y},
		Label:       label,
		LabelAt:     model.Point2D{X: (x1 + x2) / 2, Y: y + labelGap},
	})
	d.Segments = append(d.Segments,
		extension(model.Point2D{X: x1, Y: 0}, model.Point2D{X: x1, Y: y}),
		extension(model.Point2D{X: x2, Y: 0}, model.Point2D{X: x2, Y: y}),
	)
}

// verticalDimension adds a diameter dimension spanning y1..y2 placed at
// x+offset, with extension lines running back to the tip.
func verticalDimension(d *model.Drawing, x, y1, y2, offset float64, label string) {
	xPos := x + offset
	d.Dimensions = append(d.Dimensions, model.Dimension{
		Orientation: model.Vertical,
		From:        model.Point2D{X: xPos, Y: y1},
		To:          model.Point2D{X: xPos, Y: y2},
		Label:       label,
		LabelAt:     model.Point2D{X: xPos + labelGap, Y: (y1 + y2) / 2},
	})
	d.Segments = append(d.Segments,
		extension(model.Point2D{X: 0, Y: y1}, model.Point2D{X: xPos, Y: y1}),
		extension(model.Point2D{X: 0, Y: y2}, model.Point2D{X: xPos, Y: y2}),
	)
}

func extension(from, to model.Point2D) model.Segment {
	return model.Segment{From: from, To: to, Kind: model.SegmentExtension}
}

// annotate places every dimension of the tool: l1, l3, l2 below the
// profile, d2, d3, d1 across it and the corner radius leader at the tip.
func annotate(d *model.Drawing, p model.ToolProfile) {
	maxH := p.MaxHeight()

	horizontalDimension(d, 0, p.L1, -(maxH/2 + l1DimOffset), dimLabel("l1", p.L1))
	horizontalDimension(d, 0, p.L3, -(maxH/2 + l3DimOffset), dimLabel("l3", p.L3))
	horizontalDimension(d, 0, p.L2, -(maxH/2 + l2DimOffset), dimLabel("l2", p.L2))

	verticalDimension(d, p.L1, -p.D2/2, p.D2/2, d2DimOffset, dimLabel("d2", p.D2))
	verticalDimension(d, p.L2, -p.D3/2, p.D3/2, d3DimOffset, dimLabel("d3", p.D3))
	verticalDimension(d, p.L2/2, -p.D1/2, p.D1/2, d1DimOffset, dimLabel("d1", p.D1))

	d.Leaders = append(d.Leaders, model.Leader{
		Tip:    model.Point2D{X: p.R * 0.4, Y: -p.D1/2 + p.R*0.2},
		TextAt: model.Point2D{X: p.R + 5, Y: -p.D1/2 - 8},
		Label:  dimLabel("R", p.R),
	})
}

func dimLabel(symbol string, v float64) string {
	return fmt.Sprintf("%s: %s", symbol, model.FormatMM(v))
}

// bounds returns the visible extent: x ∈ [-5, l1+25], y ∈ ±(maxH+20).
func bounds(p model.ToolProfile) model.Bounds {
	maxH := p.MaxHeight()
	return model.Bounds{
		MinX: -boundsLeft,
		MaxX: p.L1 + boundsRight,
		MinY: -(maxH + boundsMargin),
		MaxY: maxH + boundsMargin,
	}
}
