package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolDraft/internal/engine"
	"github.com/piwi3910/ToolDraft/internal/model"
)

func TestWriteSVG_DefaultTool(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, defaultDrawing(t), model.DefaultStyle()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `viewBox="0 0 10500 6000"`)
	assert.Contains(t, out, "EM-10R0.5-4Z-25")
	assert.Contains(t, out, "<title>")
	assert.Equal(t, 3, strings.Count(out, "<rect"))
	assert.Equal(t, 2, strings.Count(out, " A"), "expected one elliptical arc per tip fillet")
	assert.Contains(t, out, "stroke-dasharray")
	assert.Contains(t, out, ">R: 0.5<")
	assert.Contains(t, out, ">l1: 75.0<")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#0000ff")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestWriteSVG_FractionalBoundsKeepScale(t *testing.T) {
	p := model.DefaultToolProfile()
	p.L1 = 75.25
	d, err := engine.Generate(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, d, model.DefaultStyle()))
	out := buf.String()
	assert.Contains(t, out, `width="106mm" height="60mm"`)
	assert.Contains(t, out, `viewBox="0 0 10600 6000"`)
}

func TestWriteSVG_NoFilletsWithoutRadius(t *testing.T) {
	p := model.DefaultToolProfile()
	p.R = 0
	d := defaultDrawing(t)
	d.Arcs = nil
	d.Profile = p

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, d, model.DefaultStyle()))
	assert.Equal(t, 0, strings.Count(buf.String(), " A"))
}

func TestWriteSVG_EmptyDrawing(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteSVG(&buf, model.Drawing{}, model.DefaultStyle()))
	assert.Zero(t, buf.Len())
}

func TestExportSVG_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.svg")
	require.NoError(t, ExportSVG(path, defaultDrawing(t), model.DefaultStyle()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSVGStroke_Minimum(t *testing.T) {
	tr := pageTransform{scale: svgUnitsPerMM}
	assert.Equal(t, 1, svgStroke(tr, 0))
	assert.Equal(t, 53, svgStroke(tr, 1.5))
}
