package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolDraft/internal/model"
)

func TestHelixPitch(t *testing.T) {
	// 10mm at 45° climbs one circumference per turn
	assert.InDelta(t, math.Pi*10, HelixPitch(10, 45), 1e-9)
	// 30°: π·d / tan(30°)
	assert.InDelta(t, math.Pi*10/math.Tan(math.Pi/6), HelixPitch(10, 30), 1e-9)
}

func TestHelixPitchZeroAngle(t *testing.T) {
	pitch := HelixPitch(10, 0)
	assert.False(t, math.IsInf(pitch, 0))
	assert.False(t, math.IsNaN(pitch))
	assert.Equal(t, straightPitch, pitch)
}

func TestPhaseShifts(t *testing.T) {
	assert.Equal(t, []float64{0}, PhaseShifts(1))
	assert.Nil(t, PhaseShifts(0))
	assert.Nil(t, PhaseShifts(-3))

	for n := 1; n <= model.MaxFlutes; n++ {
		phases := PhaseShifts(n)
		require.Len(t, phases, n)
		assert.Equal(t, 0.0, phases[0])
		step := 2 * math.Pi / float64(n)
		for i := 1; i < n; i++ {
			assert.Greater(t, phases[i], phases[i-1], "phases must strictly increase")
			assert.InDelta(t, step, phases[i]-phases[i-1], 1e-12, "phases must be evenly spaced")
		}
		assert.Less(t, phases[n-1], 2*math.Pi)
	}
}

func TestFluteLines_SampleCutLength(t *testing.T) {
	p := model.DefaultToolProfile()
	d := Render(p)

	require.Len(t, d.Flutes, 4)
	for i, f := range d.Flutes {
		assert.Equal(t, i, f.Index)
		require.Len(t, f.Points, FluteSamples)
		assert.Equal(t, p.R, f.Points[0].X)
		assert.InDelta(t, p.L2, f.Points[FluteSamples-1].X, 1e-9)

		for _, pt := range f.Points {
			assert.LessOrEqual(t, math.Abs(pt.Y), p.D1/2+1e-9)
		}
	}
	assert.InDelta(t, math.Pi/2, d.Flutes[1].Phase, 1e-12)

	// First flute starts at the sine value of its phase at x=r
	k := 2 * math.Pi / HelixPitch(p.D1, p.HelixAngle)
	assert.InDelta(t, 5*math.Sin(k*p.R), d.Flutes[0].Points[0].Y, 1e-9)
}

func TestFluteLines_SingleFlute(t *testing.T) {
	p := model.DefaultToolProfile()
	p.Flutes = 1
	d := Render(p)

	require.Len(t, d.Flutes, 1)
	assert.Equal(t, 0.0, d.Flutes[0].Phase)
}

func TestFluteLines_ZeroHelixIsNearlyStraight(t *testing.T) {
	p := model.DefaultToolProfile()
	p.HelixAngle = 0
	d := Render(p)

	require.Len(t, d.Flutes, 4)
	for _, f := range d.Flutes {
		first := f.Points[0].Y
		for _, pt := range f.Points {
			assert.False(t, math.IsNaN(pt.Y))
			// Over 25mm a 999999mm pitch drifts by well under a thousandth
			assert.InDelta(t, first, pt.Y, 1e-3)
		}
	}
}
