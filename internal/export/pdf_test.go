package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ToolDraft/internal/model"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.pdf")

	if err := ExportPDF(path, defaultDrawing(t), model.DefaultStyle()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if len(data) < 1000 {
		t.Errorf("PDF file seems too small: %d bytes", len(data))
	}
}

func TestWritePDF_EmptyDrawing(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, model.Drawing{}, model.DefaultStyle()); err == nil {
		t.Fatal("expected error for empty drawing, got nil")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %d bytes", buf.Len())
	}
}

func TestWritePDF_ZeroHelixAndRadius(t *testing.T) {
	p := model.DefaultToolProfile()
	p.HelixAngle = 0
	p.R = 0
	p.Flutes = 1

	d := defaultDrawing(t)
	d.Profile = p

	var buf bytes.Buffer
	if err := WritePDF(&buf, d, model.DefaultStyle()); err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("WritePDF wrote nothing")
	}
}

func TestExportPDF_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "tool.pdf")
	if err := ExportPDF(path, defaultDrawing(t), model.DefaultStyle()); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
