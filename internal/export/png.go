package export

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// PNG rendering defaults.
const (
	DefaultPNGDPI = 150
	pngScale      = 2.0 // page mm per drawing mm
	maxPNGPixels  = 8000
)

// ExportPNG rasterises the drawing to a PNG file at the given resolution.
// A non-positive dpi selects DefaultPNGDPI.
func ExportPNG(path string, d model.Drawing, style model.Style, dpi int) error {
	if err := checkDrawing(d); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	if err := WritePNG(f, d, style, dpi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePNG rasterises the drawing and writes the PNG stream to w.
func WritePNG(w io.Writer, d model.Drawing, style model.Style, dpi int) error {
	if err := checkDrawing(d); err != nil {
		return err
	}
	if dpi <= 0 {
		dpi = DefaultPNGDPI
	}

	scale := pngFitScale(d.Bounds, dpi)
	unit := vg.Millimeter * vg.Length(scale)
	px := vg.Inch / vg.Length(dpi)
	c := vgimg.NewWith(
		vgimg.UseWH(max(vg.Length(d.Bounds.Width())*unit, px), max(vg.Length(d.Bounds.Height())*unit, px)),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	r := pngRenderer{c: c, scale: scale, unit: unit, bounds: d.Bounds}
	r.draw(d, style)

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// pngFitScale returns pngScale, reduced when needed so that the longer
// image side stays within maxPNGPixels.
func pngFitScale(b model.Bounds, dpi int) float64 {
	side := max(b.Width(), b.Height()) * pngScale / 25.4 * float64(dpi)
	if side <= maxPNGPixels {
		return pngScale
	}
	return pngScale * maxPNGPixels / side
}

// pngRenderer draws on a y-up vg canvas, so drawing coordinates only need
// translating and scaling.
type pngRenderer struct {
	c      vg.Canvas
	scale  float64
	unit   vg.Length
	bounds model.Bounds
}

func (r pngRenderer) pt(p model.Point2D) vg.Point {
	return vg.Point{
		X: vg.Length(p.X-r.bounds.MinX) * r.unit,
		Y: vg.Length(p.Y-r.bounds.MinY) * r.unit,
	}
}

func (r pngRenderer) path(pts model.Polyline) vg.Path {
	var p vg.Path
	for i, pt := range pts {
		if i == 0 {
			p.Move(r.pt(pt))
		} else {
			p.Line(r.pt(pt))
		}
	}
	return p
}

func (r pngRenderer) draw(d model.Drawing, style model.Style) {
	c := r.c

	c.SetLineWidth(vg.Points(style.LineWidth * r.scale))
	for _, rect := range d.Rects {
		p := r.path(model.Polyline{
			{X: rect.X, Y: rect.Y},
			{X: rect.X + rect.W, Y: rect.Y},
			{X: rect.X + rect.W, Y: rect.Y + rect.H},
			{X: rect.X, Y: rect.Y + rect.H},
		})
		p.Close()
		c.SetColor(style.FillColor)
		c.Fill(p)
		c.SetColor(style.LineColor)
		c.Stroke(p)
	}
	for _, a := range d.Arcs {
		var p vg.Path
		start := a.StartDeg * radPerDeg
		p.Move(r.pt(a.Points(1)[0]))
		p.Arc(r.pt(a.Center), vg.Length(a.Radius)*r.unit, start, (a.EndDeg-a.StartDeg)*radPerDeg)
		c.Stroke(p)
	}
	for _, s := range d.Segments {
		if s.Kind == model.SegmentOutline {
			c.Stroke(r.path(model.Polyline{s.From, s.To}))
		}
	}

	c.SetColor(style.FluteColor)
	c.SetLineWidth(vg.Points(style.FluteWidth * r.scale))
	for _, f := range d.Flutes {
		c.Stroke(r.path(f.Points))
	}

	c.SetColor(style.ExtensionColor)
	c.SetLineWidth(vg.Points(style.ExtensionWidth * r.scale))
	c.SetLineDash([]vg.Length{1.5 * r.unit, r.unit}, 0)
	for _, s := range d.Segments {
		if s.Kind == model.SegmentExtension {
			c.Stroke(r.path(model.Polyline{s.From, s.To}))
		}
	}
	c.SetLineDash(nil, 0)

	fnt := plot.DefaultFont
	fnt.Variant = "Sans"
	face := font.DefaultCache.Lookup(fnt, vg.Points(style.FontSize*r.scale))

	c.SetLineWidth(vg.Points(0.8 * r.scale))
	for _, dim := range d.Dimensions {
		c.SetColor(style.DimensionColorFor(dim.Orientation))
		r.arrow(dim.From, dim.To, true)

		at := r.pt(dim.LabelAt)
		if dim.Orientation == model.Horizontal {
			at.X -= face.Width(dim.Label) / 2
		} else {
			at.Y -= face.Font.Size / 3
		}
		c.FillString(face, at, dim.Label)
	}

	c.SetColor(style.LeaderColor)
	for _, l := range d.Leaders {
		r.arrow(l.TextAt, l.Tip, false)
		c.FillString(face, r.pt(l.TextAt), l.Label)
	}
}

func (r pngRenderer) arrow(tail, tip model.Point2D, both bool) {
	r.c.Stroke(r.path(model.Polyline{tail, tip}))
	heads := [][2]model.Point2D{{tip, tail}}
	if both {
		heads = append(heads, [2]model.Point2D{tail, tip})
	}
	for _, h := range heads {
		left, right := model.ArrowHead(h[0], h[1], arrowSize)
		r.c.Stroke(r.path(model.Polyline{left, h[0], right}))
	}
}
