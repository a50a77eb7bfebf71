// Package export writes tool drawings to SVG, PDF, DXF, PNG and XLSX files.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth     = 297.0
	pageHeight    = 210.0
	marginLeft    = 15.0
	marginRight   = 15.0
	marginTop     = 15.0
	marginBottom  = 15.0
	headerHeight  = 12.0
	titleBlockH   = 42.0
	titleBlockW   = 120.0
	drawAreaTop   = marginTop + headerHeight + 3.0
	drawAreaBelow = titleBlockH + 5.0
	tagQRSize     = 30.0 // QR code size in the title block
)

// ExportPDF writes the drawing on a single A4 landscape sheet with a title
// block holding the summary, stock code and a QR code of the stock code.
func ExportPDF(path string, d model.Drawing, style model.Style) error {
	pdf, err := buildPDF(d, style)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WritePDF writes the same sheet as ExportPDF to w.
func WritePDF(w io.Writer, d model.Drawing, style model.Style) error {
	pdf, err := buildPDF(d, style)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildPDF(d model.Drawing, style model.Style) (*fpdf.Fpdf, error) {
	if err := checkDrawing(d); err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(fmt.Sprintf("End mill %s", d.StockCode), true)
	pdf.SetSubject(fmt.Sprintf("Drawing %s", d.ID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		"End Mill Technical Drawing - "+d.StockCode, "", 0, "L", false, 0, "")

	drawW := pageWidth - marginLeft - marginRight
	drawH := pageHeight - drawAreaTop - marginBottom - drawAreaBelow
	t := fitTransform(d.Bounds, marginLeft, drawAreaTop, drawW, drawH)

	renderPDFDrawing(pdf, tr, d, style, t)

	if err := renderTitleBlock(pdf, tr, d); err != nil {
		return nil, err
	}
	if pdf.Err() {
		return nil, fmt.Errorf("failed to build PDF: %w", pdf.Error())
	}
	return pdf, nil
}

// renderPDFDrawing strokes the drawing records in order onto the page.
func renderPDFDrawing(pdf *fpdf.Fpdf, tr func(string) string, d model.Drawing, style model.Style, t pageTransform) {
	// Profile fill and outline
	setDrawColor(pdf, style.LineColor)
	setFillColor(pdf, style.FillColor)
	pdf.SetLineWidth(style.LineWidth / ptPerMM)
	for _, r := range d.Rects {
		x, y, w, h := t.rect(r)
		pdf.Rect(x, y, w, h, "FD")
	}

	for _, a := range d.Arcs {
		pdfPolyline(pdf, t, a.Points(arcSegments))
	}

	for _, s := range d.Segments {
		if s.Kind == model.SegmentExtension {
			continue
		}
		x1, y1 := t.pt(s.From)
		x2, y2 := t.pt(s.To)
		pdf.Line(x1, y1, x2, y2)
	}

	// Flutes
	setDrawColor(pdf, style.FluteColor)
	pdf.SetAlpha(alpha(style.FluteColor), "Normal")
	pdf.SetLineWidth(style.FluteWidth / ptPerMM)
	for _, f := range d.Flutes {
		pdfPolyline(pdf, t, f.Points)
	}

	// Dashed extension lines
	setDrawColor(pdf, style.ExtensionColor)
	pdf.SetAlpha(alpha(style.ExtensionColor), "Normal")
	pdf.SetLineWidth(style.ExtensionWidth / ptPerMM)
	pdf.SetDashPattern([]float64{1.5, 1}, 0)
	for _, s := range d.Segments {
		if s.Kind != model.SegmentExtension {
			continue
		}
		x1, y1 := t.pt(s.From)
		x2, y2 := t.pt(s.To)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetAlpha(1, "Normal")

	// Dimensions
	pdf.SetLineWidth(0.25)
	pdf.SetFont("Helvetica", "B", style.FontSize)
	for _, dim := range d.Dimensions {
		col := style.DimensionColorFor(dim.Orientation)
		setDrawColor(pdf, col)
		pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
		pdfArrow(pdf, t, dim.From, dim.To, true)

		label := tr(dim.Label)
		lx, ly := t.pt(dim.LabelAt)
		if dim.Orientation == model.Horizontal {
			pdf.Text(lx-pdf.GetStringWidth(label)/2, ly, label)
		} else {
			_, fontH := pdf.GetFontSize()
			pdf.Text(lx, ly+fontH/3, label)
		}
	}

	// Corner radius leader
	pdf.SetFont("Helvetica", "", style.FontSize-1)
	setDrawColor(pdf, style.LeaderColor)
	pdf.SetTextColor(int(style.LeaderColor.R), int(style.LeaderColor.G), int(style.LeaderColor.B))
	for _, l := range d.Leaders {
		pdfArrow(pdf, t, l.TextAt, l.Tip, false)
		x, y := t.pt(l.TextAt)
		pdf.Text(x, y, tr(l.Label))
	}

	pdf.SetTextColor(0, 0, 0)
}

// renderTitleBlock draws the bordered title block in the bottom-right corner.
func renderTitleBlock(pdf *fpdf.Fpdf, tr func(string) string, d model.Drawing) error {
	x := pageWidth - marginRight - titleBlockW
	y := pageHeight - marginBottom - titleBlockH

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x, y, titleBlockW, titleBlockH, "D")
	pdf.Line(x+titleBlockW-tagQRSize-4, y, x+titleBlockW-tagQRSize-4, y+titleBlockH)

	textX := x + 3
	textW := titleBlockW - tagQRSize - 10

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(textX, y+2)
	pdf.CellFormat(textW, 5, "Stock code", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(textX, y+7)
	pdf.CellFormat(textW, 7, d.StockCode, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	lineY := y + 16
	for _, line := range d.Summary {
		pdf.SetXY(textX, lineY)
		pdf.CellFormat(textW, 4.5, tr(line), "", 1, "L", false, 0, "")
		lineY += 4.5
	}

	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+titleBlockH-6)
	pdf.CellFormat(textW, 4, fmt.Sprintf("Drawing %s - not to scale for manufacture", d.ID), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	qrPNG, err := qrcode.Encode(d.StockCode, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	imgName := "qr_" + d.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := x + titleBlockW - tagQRSize - 2
	qrY := y + (titleBlockH-tagQRSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, tagQRSize, tagQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	renderDimensionTable(pdf, d.Profile, pageHeight-marginBottom-titleBlockH)
	return nil
}

// renderDimensionTable lists the input parameters left of the title block.
func renderDimensionTable(pdf *fpdf.Fpdf, p model.ToolProfile, y float64) {
	rows := dimensionRows(p)
	colWidths := []float64{14, 42, 20, 12}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range []string{"Symbol", "Name", "Value", "Unit"} {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 4.5, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 4.5

	pdf.SetFont("Helvetica", "", 8)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range []string{row.Symbol, row.Name, row.Value, row.Unit} {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 4, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 4
	}
}

func pdfPolyline(pdf *fpdf.Fpdf, t pageTransform, pts model.Polyline) {
	for i := 1; i < len(pts); i++ {
		x1, y1 := t.pt(pts[i-1])
		x2, y2 := t.pt(pts[i])
		pdf.Line(x1, y1, x2, y2)
	}
}

// pdfArrow draws a shaft from tail to tip with an arrowhead at the tip, and
// at the tail too when both is set.
func pdfArrow(pdf *fpdf.Fpdf, t pageTransform, tail, tip model.Point2D, both bool) {
	x1, y1 := t.pt(tail)
	x2, y2 := t.pt(tip)
	pdf.Line(x1, y1, x2, y2)

	heads := [][2]model.Point2D{{tip, tail}}
	if both {
		heads = append(heads, [2]model.Point2D{tail, tip})
	}
	for _, h := range heads {
		left, right := model.ArrowHead(h[0], h[1], arrowSize)
		hx, hy := t.pt(h[0])
		lx, ly := t.pt(left)
		rx, ry := t.pt(right)
		pdf.Line(hx, hy, lx, ly)
		pdf.Line(hx, hy, rx, ry)
	}
}
