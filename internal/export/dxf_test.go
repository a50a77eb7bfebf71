package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/ToolDraft/internal/model"
)

func TestExportDXF_RoundTrip(t *testing.T) {
	d := defaultDrawing(t)
	path := filepath.Join(t.TempDir(), "tool.dxf")
	require.NoError(t, ExportDXF(path, d))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var arcs []*entity.Arc
	polylines, lines := 0, 0
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.Arc:
			arcs = append(arcs, e)
		case *entity.LwPolyline:
			polylines++
		case *entity.Line:
			lines++
		}
	}

	require.Len(t, arcs, 2)
	for _, a := range arcs {
		assert.InDelta(t, 0.5, a.Circle.Radius, 1e-9)
	}
	assert.InDelta(t, 90, arcs[0].Angle[0], 1e-9)
	assert.InDelta(t, 180, arcs[0].Angle[1], 1e-9)

	// Three section outlines, one polyline per flute, and arrowheads.
	arrowheads := 2*len(d.Dimensions) + len(d.Leaders)
	assert.Equal(t, len(d.Rects)+len(d.Flutes)+arrowheads, polylines)
	assert.Equal(t, len(d.Segments)+len(d.Dimensions)+len(d.Leaders), lines)
}

func TestExportDXF_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.dxf")
	require.NoError(t, ExportDXF(path, defaultDrawing(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, layer := range []string{LayerOutline, LayerFlutes, LayerDimensions} {
		assert.True(t, strings.Contains(string(data), layer), "missing layer %s", layer)
	}
}

func TestExportDXF_EmptyDrawing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dxf")
	assert.Error(t, ExportDXF(path, model.Drawing{}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
