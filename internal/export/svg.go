package export

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// svgUnitsPerMM is the resolution of the SVG user space. The viewBox is
// expressed in hundredths of a millimetre, the document size in mm.
const svgUnitsPerMM = 100.0

// ExportSVG writes the drawing to an SVG file sized in millimetres.
func ExportSVG(path string, d model.Drawing, style model.Style) error {
	if err := checkDrawing(d); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	if err := WriteSVG(f, d, style); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSVG writes the drawing as an SVG document to w.
func WriteSVG(w io.Writer, d model.Drawing, style model.Style) error {
	if err := checkDrawing(d); err != nil {
		return err
	}

	// The page is rounded up to whole millimetres and the viewBox covers the
	// same area, keeping user units at exactly 1/100 mm.
	t := pageTransform{scale: svgUnitsPerMM, bounds: d.Bounds}
	pageW := int(math.Ceil(d.Bounds.Width()))
	pageH := int(math.Ceil(d.Bounds.Height()))

	canvas := svg.New(w)
	canvas.StartviewUnit(pageW, pageH, "mm", 0, 0, pageW*svgUnitsPerMM, pageH*svgUnitsPerMM)
	canvas.Title(fmt.Sprintf("End mill %s", d.StockCode))
	canvas.Desc(fmt.Sprintf("Drawing %s", d.ID))

	outline := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round",
		hexColor(style.LineColor), svgStroke(t, style.LineWidth))

	canvas.Gid("profile")
	for _, r := range d.Rects {
		x, y, rw, rh := t.rect(r)
		canvas.Rect(iround(x), iround(y), iround(rw), iround(rh),
			fmt.Sprintf("fill:%s;%s", hexColor(style.FillColor), outline))
	}
	for _, a := range d.Arcs {
		svgArc(canvas, t, a, "fill:none;"+outline)
	}
	for _, s := range d.Segments {
		if s.Kind == model.SegmentOutline {
			svgLine(canvas, t, s.From, s.To, outline)
		}
	}
	canvas.Gend()

	canvas.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.2f;stroke-width:%d",
		hexColor(style.FluteColor), alpha(style.FluteColor), svgStroke(t, style.FluteWidth)))
	for _, f := range d.Flutes {
		xs, ys := svgPoints(t, f.Points)
		canvas.Polyline(xs, ys)
	}
	canvas.Gend()

	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:%d;stroke-dasharray:%d,%d",
		hexColor(style.ExtensionColor), alpha(style.ExtensionColor), svgStroke(t, style.ExtensionWidth),
		iround(t.length(1.5)), iround(t.length(1))))
	for _, s := range d.Segments {
		if s.Kind == model.SegmentExtension {
			svgLine(canvas, t, s.From, s.To)
		}
	}
	canvas.Gend()

	fontSize := iround(t.length(style.FontSize / ptPerMM))
	for _, dim := range d.Dimensions {
		col := hexColor(style.DimensionColorFor(dim.Orientation))
		stroke := fmt.Sprintf("stroke:%s;stroke-width:%d", col, svgStroke(t, 0.8))
		svgArrow(canvas, t, dim.From, dim.To, true, stroke)

		x, y := t.pt(dim.LabelAt)
		anchor := "middle"
		baseline := ""
		if dim.Orientation == model.Vertical {
			anchor = "start"
			baseline = ";dominant-baseline:middle"
		}
		canvas.Text(iround(x), iround(y), dim.Label,
			fmt.Sprintf("fill:%s;font-family:sans-serif;font-weight:bold;font-size:%d;text-anchor:%s%s",
				col, fontSize, anchor, baseline))
	}

	leaderCol := hexColor(style.LeaderColor)
	for _, l := range d.Leaders {
		svgArrow(canvas, t, l.TextAt, l.Tip, false,
			fmt.Sprintf("stroke:%s;stroke-width:%d", leaderCol, svgStroke(t, 0.8)))
		x, y := t.pt(l.TextAt)
		canvas.Text(iround(x), iround(y), l.Label,
			fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%d", leaderCol, fontSize*9/10))
	}

	canvas.End()
	return nil
}

// svgStroke converts a stroke width in points to user units.
func svgStroke(t pageTransform, widthPt float64) int {
	w := iround(t.length(widthPt / ptPerMM))
	if w < 1 {
		return 1
	}
	return w
}

func svgLine(canvas *svg.SVG, t pageTransform, from, to model.Point2D, s ...string) {
	x1, y1 := t.pt(from)
	x2, y2 := t.pt(to)
	canvas.Line(iround(x1), iround(y1), iround(x2), iround(y2), s...)
}

// svgArc draws a counter-clockwise drawing arc. The page y axis points
// down, so the sweep flag is cleared.
func svgArc(canvas *svg.SVG, t pageTransform, a model.Arc, s string) {
	pts := a.Points(1)
	sx, sy := t.pt(pts[0])
	ex, ey := t.pt(pts[1])
	r := iround(t.length(a.Radius))
	large := math.Abs(a.EndDeg-a.StartDeg) > 180
	canvas.Arc(iround(sx), iround(sy), r, r, 0, large, false, iround(ex), iround(ey), s)
}

func svgPoints(t pageTransform, pts model.Polyline) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		x, y := t.pt(p)
		xs[i], ys[i] = iround(x), iround(y)
	}
	return xs, ys
}

func svgArrow(canvas *svg.SVG, t pageTransform, tail, tip model.Point2D, both bool, s string) {
	svgLine(canvas, t, tail, tip, s)

	heads := [][2]model.Point2D{{tip, tail}}
	if both {
		heads = append(heads, [2]model.Point2D{tail, tip})
	}
	for _, h := range heads {
		left, right := model.ArrowHead(h[0], h[1], arrowSize)
		xs, ys := svgPoints(t, model.Polyline{left, h[0], right})
		canvas.Polyline(xs, ys, "fill:none;"+s)
	}
}

func iround(v float64) int {
	return int(math.Round(v))
}
