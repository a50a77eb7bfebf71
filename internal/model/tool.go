package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToolProfile describes one end mill for a single drawing pass.
// Diameters and lengths are in mm, the helix angle in degrees.
type ToolProfile struct {
	D1         float64 `json:"d1"`          // Cutting diameter
	D2         float64 `json:"d2"`          // Shank diameter
	D3         float64 `json:"d3"`          // Neck diameter
	L1         float64 `json:"l1"`          // Overall length
	L2         float64 `json:"l2"`          // Cutting length
	L3         float64 `json:"l3"`          // Reach (neck) length
	R          float64 `json:"r"`           // Corner fillet radius
	Flutes     int     `json:"flutes"`      // Number of cutting edges
	HelixAngle float64 `json:"helix_angle"` // Angle between flute and tool axis
}

// Input ranges enforced by the form widgets, not by Validate.
const (
	MinFlutes     = 1
	MaxFlutes     = 6
	MinHelixAngle = 0.0
	MaxHelixAngle = 60.0
	HelixStep     = 5.0
)

// DefaultToolProfile returns the 10 mm four flute end mill the form starts with.
func DefaultToolProfile() ToolProfile {
	return ToolProfile{
		D1:         10.0,
		D2:         10.0,
		D3:         9.5,
		L1:         75.0,
		L2:         25.0,
		L3:         30.0,
		R:          0.5,
		Flutes:     4,
		HelixAngle: 30,
	}
}

// MaxHeight returns the larger of the cutting and shank diameters. The
// dimension layout and drawing bounds are sized from it.
func (p ToolProfile) MaxHeight() float64 {
	return math.Max(p.D1, p.D2)
}

// ErrInvalidGeometry is returned when the length parameters do not nest.
var ErrInvalidGeometry = errors.New("invalid geometry")

// InvalidGeometryError carries the lengths that failed the ordering check.
type InvalidGeometryError struct {
	L1, L2, L3 float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: lengths must satisfy l1 > l3 >= l2 (l1=%s, l3=%s, l2=%s)",
		FormatMM(e.L1), FormatMM(e.L3), FormatMM(e.L2))
}

func (e *InvalidGeometryError) Unwrap() error { return ErrInvalidGeometry }

// Validate checks that overall length exceeds reach length and that reach
// length is at least the cutting length. No other field is checked.
func Validate(p ToolProfile) error {
	if p.L1 > p.L3 && p.L3 >= p.L2 {
		return nil
	}
	return &InvalidGeometryError{L1: p.L1, L2: p.L2, L3: p.L3}
}

// Advisories lists suspicious values that Validate lets through. They never
// block a drawing; the result may just look degenerate.
func Advisories(p ToolProfile) []string {
	var notes []string
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"d1", p.D1}, {"d2", p.D2}, {"d3", p.D3},
	} {
		if d.value <= 0 {
			notes = append(notes, fmt.Sprintf("%s should be > 0 (got %s)", d.name, FormatMM(d.value)))
		}
	}
	if p.R < 0 {
		notes = append(notes, fmt.Sprintf("corner radius is negative (%s)", FormatMM(p.R)))
	}
	if p.R > p.D1/2 {
		notes = append(notes, fmt.Sprintf("corner radius %s exceeds half the cutting diameter (%s)",
			FormatMM(p.R), FormatMM(p.D1/2)))
	}
	if p.Flutes < MinFlutes || p.Flutes > MaxFlutes {
		notes = append(notes, fmt.Sprintf("flute count %d outside %d..%d", p.Flutes, MinFlutes, MaxFlutes))
	}
	if p.HelixAngle < MinHelixAngle || p.HelixAngle > MaxHelixAngle {
		notes = append(notes, fmt.Sprintf("helix angle %s° outside %.0f..%.0f", FormatAngle(p.HelixAngle),
			MinHelixAngle, MaxHelixAngle))
	}
	return notes
}

// StockCode suggests a catalog identifier: EM-{d1}R{r}-{flutes}Z-{l2} with
// the diameter and cutting length truncated to whole millimetres.
func StockCode(p ToolProfile) string {
	return fmt.Sprintf("EM-%dR%s-%dZ-%d", int(p.D1), FormatMM(p.R), p.Flutes, int(p.L2))
}

// Summary returns the tool properties shown next to the drawing.
func Summary(p ToolProfile) []string {
	return []string{
		fmt.Sprintf("Flutes (Z): %d", p.Flutes),
		fmt.Sprintf("Helix angle: %s°", FormatAngle(p.HelixAngle)),
		fmt.Sprintf("Diameter: Ø%s mm", FormatMM(p.D1)),
	}
}

// FormatMM prints a length with the shortest exact representation, always
// keeping one decimal place for whole numbers (75 -> "75.0", 0.5 -> "0.5").
func FormatMM(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// FormatAngle prints whole angles without a decimal part.
func FormatAngle(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
