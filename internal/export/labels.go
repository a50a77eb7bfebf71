package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// LabelInfo holds the data encoded into each tool label's QR code.
type LabelInfo struct {
	StockCode  string  `json:"code"`
	DrawingID  string  `json:"drawing"`
	D1         float64 `json:"d1_mm"`
	L1         float64 `json:"l1_mm"`
	L2         float64 `json:"l2_mm"`
	R          float64 `json:"r_mm"`
	Flutes     int     `json:"flutes"`
	HelixAngle float64 `json:"helix_deg"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportLabels generates a PDF sheet of QR-coded tool crib labels, one per
// drawing. The QR code carries the tool parameters as JSON.
func ExportLabels(path string, drawings []model.Drawing) error {
	labels := CollectLabelInfos(drawings)
	if len(labels) == 0 {
		return fmt.Errorf("no drawings to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.StockCode, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, idx int, info LabelInfo) error {
	// Cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("label_%d_%s", idx, info.DrawingID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	code := info.StockCode
	if pdf.GetStringWidth(code) > textW {
		for len(code) > 0 && pdf.GetStringWidth(code+"...") > textW {
			code = code[:len(code)-1]
		}
		code += "..."
	}
	pdf.CellFormat(textW, 4.5, code, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("Ø%s x %s mm, R%s", model.FormatMM(info.D1), model.FormatMM(info.L1), model.FormatMM(info.R))
	pdf.CellFormat(textW, 3.5, tr(dims), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	cut := fmt.Sprintf("%dZ, cut %s mm, helix %s°", info.Flutes, model.FormatMM(info.L2), model.FormatAngle(info.HelixAngle))
	pdf.CellFormat(textW, 3, tr(cut), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, info.DrawingID, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from drawings, skipping any
// drawing without geometry.
func CollectLabelInfos(drawings []model.Drawing) []LabelInfo {
	var labels []LabelInfo
	for _, d := range drawings {
		if checkDrawing(d) != nil {
			continue
		}
		p := d.Profile
		labels = append(labels, LabelInfo{
			StockCode:  d.StockCode,
			DrawingID:  d.ID,
			D1:         p.D1,
			L1:         p.L1,
			L2:         p.L2,
			R:          p.R,
			Flutes:     p.Flutes,
			HelixAngle: p.HelixAngle,
		})
	}
	return labels
}
