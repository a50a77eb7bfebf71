package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// Screen-space constants in pixels.
const (
	arcSegments   = 24
	arrowSizeMM   = 1.2
	dashLength    = 6
	dashGap       = 4
	minCanvasSize = 200
)

var paperColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// DrawingCanvas renders a tool drawing scaled to fit its current size with
// a 1:1 aspect ratio. A nil drawing shows an empty sheet.
type DrawingCanvas struct {
	widget.BaseWidget
	drawing *model.Drawing
	style   model.Style
}

func NewDrawingCanvas(style model.Style) *DrawingCanvas {
	dc := &DrawingCanvas{style: style}
	dc.ExtendBaseWidget(dc)
	return dc
}

// SetDrawing replaces the displayed drawing. Pass nil to clear it.
func (dc *DrawingCanvas) SetDrawing(d *model.Drawing) {
	dc.drawing = d
	dc.Refresh()
}

// SetStyle changes colors and stroke widths.
func (dc *DrawingCanvas) SetStyle(s model.Style) {
	dc.style = s
	dc.Refresh()
}

// Drawing returns the displayed drawing, or nil.
func (dc *DrawingCanvas) Drawing() *model.Drawing {
	return dc.drawing
}

func (dc *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &drawingCanvasRenderer{dc: dc}
}

type drawingCanvasRenderer struct {
	dc      *DrawingCanvas
	size    fyne.Size
	objects []fyne.CanvasObject
}

// viewTransform maps drawing mm (y up) onto widget pixels (y down).
type viewTransform struct {
	scale   float32
	offsetX float32
	offsetY float32
	bounds  model.Bounds
}

// fitView centres the bounds in a w x h area at uniform scale.
func fitView(b model.Bounds, w, h float32) viewTransform {
	bw, bh := float32(b.Width()), float32(b.Height())
	if bw <= 0 || bh <= 0 || w <= 0 || h <= 0 {
		return viewTransform{scale: 1, bounds: b}
	}
	scale := w / bw
	if h/bh < scale {
		scale = h / bh
	}
	return viewTransform{
		scale:   scale,
		offsetX: (w - bw*scale) / 2,
		offsetY: (h - bh*scale) / 2,
		bounds:  b,
	}
}

func (t viewTransform) pos(p model.Point2D) fyne.Position {
	return fyne.NewPos(
		t.offsetX+float32(p.X-t.bounds.MinX)*t.scale,
		t.offsetY+float32(t.bounds.MaxY-p.Y)*t.scale,
	)
}

// dashes splits from-to into dash segments of the given lengths in mm.
func dashes(from, to model.Point2D, dash, gap float64) [][2]model.Point2D {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 || dash <= 0 {
		return nil
	}
	ux, uy := dx/length, dy/length

	var out [][2]model.Point2D
	for s := 0.0; s < length; s += dash + gap {
		e := math.Min(s+dash, length)
		out = append(out, [2]model.Point2D{
			{X: from.X + ux*s, Y: from.Y + uy*s},
			{X: from.X + ux*e, Y: from.Y + uy*e},
		})
	}
	return out
}

func (r *drawingCanvasRenderer) line(t viewTransform, from, to model.Point2D, col color.Color, width float32) {
	l := canvas.NewLine(col)
	l.StrokeWidth = width
	l.Position1 = t.pos(from)
	l.Position2 = t.pos(to)
	r.objects = append(r.objects, l)
}

func (r *drawingCanvasRenderer) polyline(t viewTransform, pts model.Polyline, col color.Color, width float32) {
	for i := 1; i < len(pts); i++ {
		r.line(t, pts[i-1], pts[i], col, width)
	}
}

func (r *drawingCanvasRenderer) arrow(t viewTransform, tail, tip model.Point2D, both bool, col color.Color) {
	r.line(t, tail, tip, col, 1)
	heads := [][2]model.Point2D{{tip, tail}}
	if both {
		heads = append(heads, [2]model.Point2D{tail, tip})
	}
	for _, h := range heads {
		left, right := model.ArrowHead(h[0], h[1], arrowSizeMM)
		r.polyline(t, model.Polyline{left, h[0], right}, col, 1)
	}
}

func (r *drawingCanvasRenderer) text(t viewTransform, at model.Point2D, s string, col color.Color, size float32, centred bool) {
	txt := canvas.NewText(s, col)
	txt.TextSize = size
	txt.TextStyle = fyne.TextStyle{Bold: true}
	pos := t.pos(at)
	ts := txt.MinSize()
	if centred {
		pos.X -= ts.Width / 2
		pos.Y -= ts.Height
	} else {
		pos.Y -= ts.Height / 2
	}
	txt.Move(pos)
	r.objects = append(r.objects, txt)
}

func (r *drawingCanvasRenderer) rebuild() {
	r.objects = nil

	bg := canvas.NewRectangle(paperColor)
	bg.Resize(r.size)
	r.objects = append(r.objects, bg)

	d := r.dc.drawing
	if d == nil {
		return
	}
	style := r.dc.style
	t := fitView(d.Bounds, r.size.Width, r.size.Height)
	lw := float32(style.LineWidth)

	for _, rect := range d.Rects {
		box := canvas.NewRectangle(style.FillColor)
		box.StrokeColor = style.LineColor
		box.StrokeWidth = lw
		box.Move(t.pos(model.Point2D{X: rect.X, Y: rect.Y + rect.H}))
		box.Resize(fyne.NewSize(float32(rect.W)*t.scale, float32(rect.H)*t.scale))
		r.objects = append(r.objects, box)
	}
	for _, a := range d.Arcs {
		r.polyline(t, a.Points(arcSegments), style.LineColor, lw)
	}
	for _, s := range d.Segments {
		if s.Kind == model.SegmentOutline {
			r.line(t, s.From, s.To, style.LineColor, lw)
		}
	}

	for _, f := range d.Flutes {
		r.polyline(t, f.Points, style.FluteColor, float32(style.FluteWidth))
	}

	dashMM := float64(dashLength / t.scale)
	gapMM := float64(dashGap / t.scale)
	for _, s := range d.Segments {
		if s.Kind != model.SegmentExtension {
			continue
		}
		for _, dash := range dashes(s.From, s.To, dashMM, gapMM) {
			r.line(t, dash[0], dash[1], style.ExtensionColor, float32(style.ExtensionWidth))
		}
	}

	fontSize := float32(style.FontSize)
	for _, dim := range d.Dimensions {
		col := style.DimensionColorFor(dim.Orientation)
		r.arrow(t, dim.From, dim.To, true, col)
		r.text(t, dim.LabelAt, dim.Label, col, fontSize, dim.Orientation == model.Horizontal)
	}
	for _, l := range d.Leaders {
		r.arrow(t, l.TextAt, l.Tip, false, style.LeaderColor)
		r.text(t, l.TextAt, l.Label, style.LeaderColor, fontSize-1, false)
	}
}

func (r *drawingCanvasRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

func (r *drawingCanvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.dc)
}

func (r *drawingCanvasRenderer) Destroy()                     {}
func (r *drawingCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *drawingCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minCanvasSize*1.75, minCanvasSize)
}
