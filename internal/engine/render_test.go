package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolDraft/internal/model"
)

func TestGenerate_DefaultTool(t *testing.T) {
	p := model.DefaultToolProfile()

	d, err := Generate(p)
	require.NoError(t, err)

	shank, ok := d.Rect(model.SectionShank)
	require.True(t, ok)
	assert.Equal(t, 30.0, shank.MinX())
	assert.Equal(t, 75.0, shank.MaxX())
	assert.Equal(t, -5.0, shank.Y)
	assert.Equal(t, 10.0, shank.H)

	neck, ok := d.Rect(model.SectionNeck)
	require.True(t, ok)
	assert.Equal(t, 25.0, neck.MinX())
	assert.Equal(t, 30.0, neck.MaxX())
	assert.Equal(t, -4.75, neck.Y)
	assert.Equal(t, 9.5, neck.H)

	body, ok := d.Rect(model.SectionCutting)
	require.True(t, ok)
	assert.Equal(t, 0.5, body.MinX())
	assert.Equal(t, 25.0, body.MaxX())
	assert.Equal(t, 10.0, body.H)

	assert.Equal(t, "EM-10R0.5-4Z-25", d.StockCode)
	assert.Len(t, d.Summary, 3)
	assert.Len(t, d.ID, 8)
}

func TestGenerate_InvalidOrderingProducesNoDrawing(t *testing.T) {
	p := model.DefaultToolProfile()
	p.L3 = 20 // l3 < l2

	d, err := Generate(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidGeometry))
	assert.Empty(t, d.Rects)
	assert.Empty(t, d.Flutes)
	assert.Empty(t, d.Dimensions)
}

func TestRender_SectionsAreContiguous(t *testing.T) {
	profiles := []model.ToolProfile{
		model.DefaultToolProfile(),
		{D1: 6, D2: 6, D3: 5.5, L1: 57, L2: 12, L3: 12, R: 0, Flutes: 2, HelixAngle: 45},
		{D1: 20, D2: 16, D3: 18, L1: 150, L2: 60, L3: 90, R: 2, Flutes: 6, HelixAngle: 0},
	}

	for _, p := range profiles {
		require.NoError(t, model.Validate(p))
		d := Render(p)

		body, _ := d.Rect(model.SectionCutting)
		neck, _ := d.Rect(model.SectionNeck)
		shank, _ := d.Rect(model.SectionShank)

		assert.Equal(t, p.R, body.MinX())
		assert.Equal(t, body.MaxX(), neck.MinX(), "cutting body ends where the neck starts")
		assert.Equal(t, neck.MaxX(), shank.MinX(), "neck ends where the shank starts")
		assert.Equal(t, p.L1, shank.MaxX())
		assert.LessOrEqual(t, body.MaxX(), neck.MinX())
		assert.LessOrEqual(t, neck.MaxX(), shank.MinX())
	}
}

func TestRender_TipFillets(t *testing.T) {
	p := model.DefaultToolProfile()
	d := Render(p)

	require.Len(t, d.Arcs, 2)
	top, bottom := d.Arcs[0], d.Arcs[1]

	assert.Equal(t, model.Point2D{X: 0.5, Y: 4.5}, top.Center)
	assert.Equal(t, 90.0, top.StartDeg)
	assert.Equal(t, 180.0, top.EndDeg)
	assert.Equal(t, model.Point2D{X: 0.5, Y: -4.5}, bottom.Center)
	assert.Equal(t, 180.0, bottom.StartDeg)
	assert.Equal(t, 270.0, bottom.EndDeg)
	assert.Equal(t, 0.5, top.Radius)

	// Tip face joins the two fillet tangent points
	face := d.Segments[0]
	assert.Equal(t, model.SegmentOutline, face.Kind)
	assert.Equal(t, model.Point2D{X: 0, Y: -4.5}, face.From)
	assert.Equal(t, model.Point2D{X: 0, Y: 4.5}, face.To)

	// Cutting edges run from the end of the fillet to the end of the body
	assert.Equal(t, model.Point2D{X: 0.5, Y: 5}, d.Segments[1].From)
	assert.Equal(t, model.Point2D{X: 25, Y: 5}, d.Segments[1].To)
	assert.Equal(t, model.Point2D{X: 0.5, Y: -5}, d.Segments[2].From)
	assert.Equal(t, model.Point2D{X: 25, Y: -5}, d.Segments[2].To)
}

func TestRender_Bounds(t *testing.T) {
	p := model.DefaultToolProfile()
	p.D2 = 12
	d := Render(p)

	assert.Equal(t, model.Bounds{MinX: -5, MaxX: 100, MinY: -32, MaxY: 32}, d.Bounds)
}

func TestRender_DimensionLayout(t *testing.T) {
	d := Render(model.DefaultToolProfile())
	require.Len(t, d.Dimensions, 6)

	labels := make([]string, len(d.Dimensions))
	for i, dim := range d.Dimensions {
		labels[i] = dim.Label
	}
	assert.Equal(t, []string{"l1: 75.0", "l3: 30.0", "l2: 25.0", "d2: 10.0", "d3: 9.5", "d1: 10.0"}, labels)

	l1, l3, l2 := d.Dimensions[0], d.Dimensions[1], d.Dimensions[2]
	assert.Equal(t, -20.0, l1.From.Y)
	assert.Equal(t, -14.0, l3.From.Y)
	assert.Equal(t, -8.0, l2.From.Y)
	assert.Less(t, l1.From.Y, l3.From.Y, "longest length sits furthest from the body")
	assert.Less(t, l3.From.Y, l2.From.Y)
	assert.Equal(t, model.Point2D{X: 37.5, Y: -19}, l1.LabelAt)

	d2, d3, d1 := d.Dimensions[3], d.Dimensions[4], d.Dimensions[5]
	assert.Equal(t, model.Vertical, d2.Orientation)
	assert.Equal(t, 80.0, d2.From.X)
	assert.Equal(t, 27.0, d3.From.X)
	assert.Equal(t, 12.5, d1.From.X)
	assert.Equal(t, -4.75, d3.From.Y)
	assert.Equal(t, 4.75, d3.To.Y)
	assert.Equal(t, model.Point2D{X: 13.5, Y: 0}, d1.LabelAt)

	require.Len(t, d.Leaders, 1)
	assert.Equal(t, "R: 0.5", d.Leaders[0].Label)
	assert.InDelta(t, 0.2, d.Leaders[0].Tip.X, 1e-9)
	assert.InDelta(t, -4.9, d.Leaders[0].Tip.Y, 1e-9)
	assert.Equal(t, model.Point2D{X: 5.5, Y: -13}, d.Leaders[0].TextAt)
}

func TestRender_ExtensionLines(t *testing.T) {
	d := Render(model.DefaultToolProfile())

	var extensions []model.Segment
	for _, s := range d.Segments {
		if s.Kind == model.SegmentExtension {
			extensions = append(extensions, s)
		}
	}
	// Two per dimension line
	require.Len(t, extensions, 12)

	// l1 extensions drop from the axis to the dimension line
	assert.Equal(t, model.Point2D{X: 0, Y: 0}, extensions[0].From)
	assert.Equal(t, model.Point2D{X: 0, Y: -20}, extensions[0].To)
	assert.Equal(t, model.Point2D{X: 75, Y: 0}, extensions[1].From)

	// d2 extensions run back from the dimension to the tip
	assert.Equal(t, model.Point2D{X: 0, Y: -5}, extensions[6].From)
	assert.Equal(t, model.Point2D{X: 80, Y: -5}, extensions[6].To)
}

func TestRender_IsDeterministic(t *testing.T) {
	p := model.DefaultToolProfile()
	a := Render(p)
	b := Render(p)
	assert.Equal(t, a, b)

	p.R = 1
	assert.NotEqual(t, a.ID, Render(p).ID)
}

func TestRender_DegenerateInputDoesNotPanic(t *testing.T) {
	p := model.ToolProfile{D1: -10, D2: 0, D3: 0, L1: 5, L2: 30, L3: 10, R: 20, Flutes: 0, HelixAngle: -10}
	assert.NotPanics(t, func() {
		d := Render(p)
		assert.Empty(t, d.Flutes)
		for _, s := range d.Segments {
			assert.False(t, math.IsNaN(s.From.X) || math.IsNaN(s.From.Y))
		}
	})
}
