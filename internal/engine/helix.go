package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// FluteSamples is the number of points sampled along each flute line.
const FluteSamples = 200

// straightPitch stands in for an infinite pitch when the helix angle is zero,
// flattening the sine wave into a straight line.
const straightPitch = 999999.0

// HelixPitch returns the axial length of one helix turn, π·d / tan(angle).
// Angles at or below zero yield straightPitch instead of dividing by tan(0).
func HelixPitch(diameter, helixDeg float64) float64 {
	if helixDeg <= 0 {
		return straightPitch
	}
	return math.Pi * diameter / math.Tan(helixDeg*math.Pi/180)
}

// PhaseShifts returns the phase of each flute, 2π·i/n for i in [0, n).
// A non-positive flute count yields no phases.
func PhaseShifts(flutes int) []float64 {
	if flutes <= 0 {
		return nil
	}
	phases := make([]float64, flutes)
	for i := range phases {
		phases[i] = 2 * math.Pi * float64(i) / float64(flutes)
	}
	return phases
}

// fluteLines samples every flute as y = (d1/2)·sin((2π/pitch)·x + phase)
// over the cutting body, x ∈ [r, l2].
//
// This is the side view of a helix wrapped on a cylinder approximated by a
// sine wave, not an exact projection.
func fluteLines(p model.ToolProfile) []model.Flute {
	phases := PhaseShifts(p.Flutes)
	if len(phases) == 0 {
		return nil
	}

	xs := floats.Span(make([]float64, FluteSamples), p.R, p.L2)
	k := 2 * math.Pi / HelixPitch(p.D1, p.HelixAngle)
	amplitude := p.D1 / 2

	flutes := make([]model.Flute, 0, len(phases))
	for i, phase := range phases {
		pts := make(model.Polyline, len(xs))
		for j, x := range xs {
			pts[j] = model.Point2D{X: x, Y: amplitude * math.Sin(k*x+phase)}
		}
		flutes = append(flutes, model.Flute{Index: i, Phase: phase, Points: pts})
	}
	return flutes
}
