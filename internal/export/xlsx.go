package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// DimensionSheet is the worksheet name used by ExportXLSX.
const DimensionSheet = "Dimensions"

// DimensionRow is one line of the dimension table.
type DimensionRow struct {
	Symbol string
	Name   string
	Value  string
	Unit   string
}

// dimensionRows lists the tool parameters in drawing order.
func dimensionRows(p model.ToolProfile) []DimensionRow {
	return []DimensionRow{
		{"d1", "Cutting diameter", model.FormatMM(p.D1), "mm"},
		{"d2", "Shank diameter", model.FormatMM(p.D2), "mm"},
		{"d3", "Neck diameter", model.FormatMM(p.D3), "mm"},
		{"l1", "Overall length", model.FormatMM(p.L1), "mm"},
		{"l2", "Cutting length", model.FormatMM(p.L2), "mm"},
		{"l3", "Reach length", model.FormatMM(p.L3), "mm"},
		{"R", "Corner radius", model.FormatMM(p.R), "mm"},
		{"Z", "Flutes", strconv.Itoa(p.Flutes), ""},
		{"α", "Helix angle", model.FormatAngle(p.HelixAngle), "°"},
	}
}

// ExportXLSX writes the dimension table of the drawing to a workbook with a
// single "Dimensions" sheet, followed by the stock code.
func ExportXLSX(path string, d model.Drawing) error {
	if err := checkDrawing(d); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DimensionSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := []interface{}{"Symbol", "Name", "Value", "Unit"}
	if err := f.SetSheetRow(DimensionSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(DimensionSheet, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	rows := dimensionRows(d.Profile)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Symbol, row.Name, row.Value, row.Unit}
		if err := f.SetSheetRow(DimensionSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	codeRow := len(rows) + 3
	codeCell, _ := excelize.CoordinatesToCellName(1, codeRow)
	codeValues := []interface{}{"Stock code", d.StockCode}
	if err := f.SetSheetRow(DimensionSheet, codeCell, &codeValues); err != nil {
		return fmt.Errorf("failed to write stock code: %w", err)
	}
	if err := f.SetCellStyle(DimensionSheet, codeCell, codeCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style stock code: %w", err)
	}

	if err := f.SetColWidth(DimensionSheet, "B", "B", 20); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
