package export

import (
	"testing"

	"github.com/piwi3910/ToolDraft/internal/engine"
	"github.com/piwi3910/ToolDraft/internal/model"
)

// defaultDrawing renders the stock 10 mm four flute tool.
func defaultDrawing(t *testing.T) model.Drawing {
	t.Helper()
	d, err := engine.Generate(model.DefaultToolProfile())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return d
}

func TestFitTransform_KeepsAspectAndFlipsY(t *testing.T) {
	b := model.Bounds{MinX: 0, MaxX: 100, MinY: -25, MaxY: 25}
	tr := fitTransform(b, 10, 20, 200, 200)

	if tr.scale != 2 {
		t.Fatalf("expected scale 2, got %v", tr.scale)
	}
	x, y := tr.pt(model.Point2D{X: 0, Y: 25})
	if x != 10 || y != 20 {
		t.Errorf("top-left maps to (%v, %v), want (10, 20)", x, y)
	}
	_, yBottom := tr.pt(model.Point2D{X: 0, Y: -25})
	if yBottom != 120 {
		t.Errorf("bottom edge maps to y=%v, want 120", yBottom)
	}
}

func TestPageTransform_Rect(t *testing.T) {
	tr := pageTransform{scale: 1, bounds: model.Bounds{MinX: -5, MaxX: 100, MinY: -30, MaxY: 30}}
	x, y, w, h := tr.rect(model.Rect{X: 30, Y: -5, W: 45, H: 10})
	if x != 35 || y != 25 || w != 45 || h != 10 {
		t.Errorf("rect = (%v, %v, %v, %v), want (35, 25, 45, 10)", x, y, w, h)
	}
}

func TestCheckDrawing_Empty(t *testing.T) {
	if err := checkDrawing(model.Drawing{}); err == nil {
		t.Fatal("expected error for empty drawing")
	}
}
