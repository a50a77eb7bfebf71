package model

import "image/color"

// Point2D represents a 2D coordinate in mm. X runs along the tool axis with
// the tip at 0, Y is measured from the axis.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polyline is an open sequence of points.
type Polyline []Point2D

// Section identifies which part of the tool a rectangle belongs to.
type Section int

const (
	SectionShank   Section = iota // Rear gripping section
	SectionNeck                   // Reduced-diameter clearance section
	SectionCutting                // Fluted cutting body
)

func (s Section) String() string {
	switch s {
	case SectionShank:
		return "Shank"
	case SectionNeck:
		return "Neck"
	default:
		return "Cutting"
	}
}

// Rect is an axis-aligned filled rectangle with its lower-left corner at X, Y.
type Rect struct {
	Section Section `json:"section"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
}

// MinX returns the left edge along the tool axis.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge along the tool axis.
func (r Rect) MaxX() float64 { return r.X + r.W }

// Arc is a circular arc swept counter-clockwise from StartDeg to EndDeg,
// angles measured from the positive x axis.
type Arc struct {
	Center   Point2D `json:"center"`
	Radius   float64 `json:"radius"`
	StartDeg float64 `json:"start_deg"`
	EndDeg   float64 `json:"end_deg"`
}

// SegmentKind selects how a straight segment is stroked.
type SegmentKind int

const (
	SegmentOutline   SegmentKind = iota // Solid profile edge
	SegmentExtension                    // Light dashed dimension extension line
)

// Segment is a straight line between two points.
type Segment struct {
	From Point2D     `json:"from"`
	To   Point2D     `json:"to"`
	Kind SegmentKind `json:"kind"`
}

// Flute is one sampled helix line on the cutting body.
type Flute struct {
	Index  int      `json:"index"`
	Phase  float64  `json:"phase"` // radians
	Points Polyline `json:"points"`
}

// Orientation of a dimension line.
type Orientation int

const (
	Horizontal Orientation = iota // Measures a length along the axis
	Vertical                      // Measures a diameter
)

// Dimension is a double-headed arrow between From and To with a label.
type Dimension struct {
	Orientation Orientation `json:"orientation"`
	From        Point2D     `json:"from"`
	To          Point2D     `json:"to"`
	Label       string      `json:"label"`
	LabelAt     Point2D     `json:"label_at"`
}

// Leader is a single-headed arrow pointing at Tip with its text at TextAt.
type Leader struct {
	Tip    Point2D `json:"tip"`
	TextAt Point2D `json:"text_at"`
	Label  string  `json:"label"`
}

// Bounds is the visible extent of a drawing in mm.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Drawing is the complete side view of one tool. Renderers draw the slices
// in declaration order: rects, arcs, segments, flutes, dimensions, leaders.
type Drawing struct {
	ID         string      `json:"id"`
	Profile    ToolProfile `json:"profile"`
	Rects      []Rect      `json:"rects"`
	Arcs       []Arc       `json:"arcs"`
	Segments   []Segment   `json:"segments"`
	Flutes     []Flute     `json:"flutes"`
	Dimensions []Dimension `json:"dimensions"`
	Leaders    []Leader    `json:"leaders"`
	Bounds     Bounds      `json:"bounds"`
	StockCode  string      `json:"stock_code"`
	Summary    []string    `json:"summary"`
}

// Rect returns the rectangle for a section, and false if it is missing.
func (d Drawing) Rect(s Section) (Rect, bool) {
	for _, r := range d.Rects {
		if r.Section == s {
			return r, true
		}
	}
	return Rect{}, false
}

// Style holds the stroke and fill settings shared by all renderers.
type Style struct {
	LineColor      color.NRGBA `json:"line_color"`
	FillColor      color.NRGBA `json:"fill_color"`
	LineWidth      float64     `json:"line_width"`
	DimensionColor color.NRGBA `json:"dimension_color"` // Length dimensions
	DiameterColor  color.NRGBA `json:"diameter_color"`  // Diameter dimensions
	FluteColor     color.NRGBA `json:"flute_color"`
	FluteWidth     float64     `json:"flute_width"`
	ExtensionColor color.NRGBA `json:"extension_color"`
	ExtensionWidth float64     `json:"extension_width"`
	LeaderColor    color.NRGBA `json:"leader_color"`
	FontSize       float64     `json:"font_size"` // pt
}

// DefaultStyle returns the grey-metal look of the drawing sheet.
func DefaultStyle() Style {
	return Style{
		LineColor:      color.NRGBA{A: 255},
		FillColor:      color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 255},
		LineWidth:      1.5,
		DimensionColor: color.NRGBA{R: 255, A: 255},
		DiameterColor:  color.NRGBA{B: 255, A: 255},
		FluteColor:     color.NRGBA{A: 102}, // 40% black
		FluteWidth:     0.8,
		ExtensionColor: color.NRGBA{A: 51}, // 20% black
		ExtensionWidth: 0.5,
		LeaderColor:    color.NRGBA{A: 255},
		FontSize:       10,
	}
}

// DimensionColorFor picks the stroke color for a dimension orientation.
func (s Style) DimensionColorFor(o Orientation) color.NRGBA {
	if o == Vertical {
		return s.DiameterColor
	}
	return s.DimensionColor
}
