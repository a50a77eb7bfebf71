package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// DXF layer names. Profile geometry, flutes and annotation are kept apart so
// CAM and CAD users can toggle them.
const (
	LayerOutline    = "OUTLINE"
	LayerFlutes     = "FLUTES"
	LayerDimensions = "DIMENSIONS"
)

// dxfTextHeight is the annotation text height in mm.
const dxfTextHeight = 2.5

// ExportDXF writes the drawing at 1:1 scale in millimetres. Drawing
// coordinates are used as-is since DXF is y-up.
func ExportDXF(path string, d model.Drawing) error {
	if err := checkDrawing(d); err != nil {
		return err
	}

	dw := dxf.NewDrawing()
	if err := addDXFLayers(dw); err != nil {
		return err
	}

	if err := writeDXFOutline(dw, d); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}
	if err := writeDXFFlutes(dw, d); err != nil {
		return fmt.Errorf("failed to write flutes: %w", err)
	}
	if err := writeDXFAnnotations(dw, d); err != nil {
		return fmt.Errorf("failed to write dimensions: %w", err)
	}

	if err := dw.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

func addDXFLayers(dw *drawing.Drawing) error {
	layers := []struct {
		name  string
		color color.ColorNumber
		lt    *table.LineType
	}{
		{LayerOutline, dxf.DefaultColor, dxf.DefaultLineType},
		{LayerFlutes, color.Cyan, dxf.DefaultLineType},
		{LayerDimensions, color.Red, dxf.DefaultLineType},
	}
	for _, l := range layers {
		if _, err := dw.AddLayer(l.name, l.color, l.lt, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}
	return nil
}

func writeDXFOutline(dw *drawing.Drawing, d model.Drawing) error {
	if err := dw.ChangeLayer(LayerOutline); err != nil {
		return err
	}
	for _, r := range d.Rects {
		if _, err := dw.LwPolyline(true,
			[]float64{r.X, r.Y},
			[]float64{r.X + r.W, r.Y},
			[]float64{r.X + r.W, r.Y + r.H},
			[]float64{r.X, r.Y + r.H},
		); err != nil {
			return err
		}
	}
	for _, a := range d.Arcs {
		if _, err := dw.Arc(a.Center.X, a.Center.Y, 0, a.Radius, a.StartDeg, a.EndDeg); err != nil {
			return err
		}
	}
	for _, s := range d.Segments {
		if s.Kind != model.SegmentOutline {
			continue
		}
		if _, err := dw.Line(s.From.X, s.From.Y, 0, s.To.X, s.To.Y, 0); err != nil {
			return err
		}
	}
	return nil
}

func writeDXFFlutes(dw *drawing.Drawing, d model.Drawing) error {
	if err := dw.ChangeLayer(LayerFlutes); err != nil {
		return err
	}
	for _, f := range d.Flutes {
		verts := make([][]float64, len(f.Points))
		for i, p := range f.Points {
			verts[i] = []float64{p.X, p.Y}
		}
		if _, err := dw.LwPolyline(false, verts...); err != nil {
			return err
		}
	}
	return nil
}

func writeDXFAnnotations(dw *drawing.Drawing, d model.Drawing) error {
	if err := dw.ChangeLayer(LayerDimensions); err != nil {
		return err
	}
	for _, s := range d.Segments {
		if s.Kind != model.SegmentExtension {
			continue
		}
		if _, err := dw.Line(s.From.X, s.From.Y, 0, s.To.X, s.To.Y, 0); err != nil {
			return err
		}
	}
	for _, dim := range d.Dimensions {
		if err := dxfArrow(dw, dim.From, dim.To, true); err != nil {
			return err
		}
		if _, err := dw.Text(dim.Label, dim.LabelAt.X, dim.LabelAt.Y, 0, dxfTextHeight); err != nil {
			return err
		}
	}
	for _, l := range d.Leaders {
		if err := dxfArrow(dw, l.TextAt, l.Tip, false); err != nil {
			return err
		}
		if _, err := dw.Text(l.Label, l.TextAt.X, l.TextAt.Y, 0, dxfTextHeight); err != nil {
			return err
		}
	}
	return nil
}

func dxfArrow(dw *drawing.Drawing, tail, tip model.Point2D, both bool) error {
	if _, err := dw.Line(tail.X, tail.Y, 0, tip.X, tip.Y, 0); err != nil {
		return err
	}
	heads := [][2]model.Point2D{{tip, tail}}
	if both {
		heads = append(heads, [2]model.Point2D{tail, tip})
	}
	for _, h := range heads {
		left, right := model.ArrowHead(h[0], h[1], arrowSize)
		if _, err := dw.LwPolyline(false,
			[]float64{left.X, left.Y},
			[]float64{h[0].X, h[0].Y},
			[]float64{right.X, right.Y},
		); err != nil {
			return err
		}
	}
	return nil
}
