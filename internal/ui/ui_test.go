package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolDraft/internal/model"
)

func TestRoundStep(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		step float64
		want float64
	}{
		{"accumulated tenths", 0.1 + 0.2, 0.1, 0.3},
		{"whole millimetres", 24.9999, 1, 25},
		{"negative step ignored", 1.23, -1, 1.23},
		{"zero step ignored", 1.23, 0, 1.23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roundStep(tt.v, tt.step), 1e-9)
		})
	}
}

func TestThemeVariant(t *testing.T) {
	assert.Equal(t, theme.VariantLight, ThemeVariant("light"))
	assert.Equal(t, theme.VariantDark, ThemeVariant("dark"))
	assert.Equal(t, ThemeSystem, ThemeVariant("system"))
	assert.Equal(t, ThemeSystem, ThemeVariant(""))
}

func TestThemeForcesVariant(t *testing.T) {
	test.NewTempApp(t)

	dark := NewToolDraftThemeWithVariant(theme.VariantDark)
	base := theme.DefaultTheme()
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))

	system := NewToolDraftThemeWithVariant(ThemeSystem)
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantLight),
		system.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, float32(3), system.Size(theme.SizeNamePadding))
}

func TestCatalogDrawingsSkipsInvalidTools(t *testing.T) {
	c := model.DefaultCatalog()
	bad := model.DefaultToolProfile()
	bad.L3 = bad.L1 + 1
	c.Entries = append(c.Entries, model.NewCatalogEntry("broken", bad))

	drawings := catalogDrawings(c)
	require.Len(t, drawings, 3)
	for i, d := range drawings {
		assert.Equal(t, model.StockCode(c.Entries[i].Profile), d.StockCode)
	}
}

func TestParseStepperValue(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{" 9,5 ", 9.5, true},
		{"-3", -3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"inf", 0, false},
		{"-Infinity", 0, false},
		{"NaN", 0, false},
		{"1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v, ok := parseStepperValue(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSliderLabelsMarkClampedValues(t *testing.T) {
	assert.Equal(t, "4", flutesLabel(4))
	assert.Equal(t, "8 (off scale)", flutesLabel(8))
	assert.Equal(t, "0 (off scale)", flutesLabel(0))

	assert.Equal(t, "30°", helixLabel(30))
	assert.Equal(t, "60°", helixLabel(model.MaxHelixAngle))
	assert.Equal(t, "75° (off scale)", helixLabel(75))
	assert.Equal(t, "-5° (off scale)", helixLabel(-5))
}
