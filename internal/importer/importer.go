// Package importer reads tool catalogs from CSV and Excel files.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// Tool is one catalog entry.
type Tool struct {
	Name    string
	Profile model.ToolProfile
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Tools    []Tool
	Errors   []string
	Warnings []string
}

// ColumnMapping maps tool parameters to their indices in the data.
// A value of -1 means the column is absent.
type ColumnMapping struct {
	Name   int
	D1     int
	D2     int
	D3     int
	L1     int
	L2     int
	L3     int
	R      int
	Flutes int
	Helix  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":   {"name", "label", "tool", "code", "description", "desc", "item"},
	"d1":     {"d1", "diameter", "cutting diameter", "dc", "dia"},
	"d2":     {"d2", "shank", "shank diameter", "dms"},
	"d3":     {"d3", "neck", "neck diameter", "dn"},
	"l1":     {"l1", "length", "overall length", "oal", "lf"},
	"l2":     {"l2", "cut", "cutting length", "loc", "flute length"},
	"l3":     {"l3", "reach", "reach length", "lu", "neck length"},
	"r":      {"r", "radius", "corner radius", "re"},
	"flutes": {"flutes", "z", "teeth", "flute count"},
	"helix":  {"helix", "helix angle", "alpha", "α"},
}

// positionalMapping is used when the first row is not a header.
var positionalMapping = ColumnMapping{
	Name: 0, D1: 1, D2: 2, D3: 3, L1: 4, L2: 5, L3: 6, R: 7, Flutes: 8, Helix: 9,
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		records, err := newCSVReader(bytes.NewReader(data), delim).ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, D1: -1, D2: -1, D3: -1, L1: -1, L2: -1, L3: -1, R: -1, Flutes: -1, Helix: -1,
	}
	slots := map[string]*int{
		"name": &mapping.Name, "d1": &mapping.D1, "d2": &mapping.D2, "d3": &mapping.D3,
		"l1": &mapping.L1, "l2": &mapping.L2, "l3": &mapping.L3, "r": &mapping.R,
		"flutes": &mapping.Flutes, "helix": &mapping.Helix,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber reads an optional numeric cell. Decimal commas are accepted.
// ok is false when the cell is empty.
func parseNumber(row []string, idx int) (v float64, ok bool, err error) {
	s := getCell(row, idx)
	if s == "" {
		return 0, false, nil
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "°"), "mm")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err = strconv.ParseFloat(s, 64)
	return v, err == nil, err
}

// parseRow extracts a Tool from a row using the given column mapping.
// Missing optional columns fall back to the default profile, with d2 and d3
// following d1. Unnamed tools are named by stock code. Returns the tool,
// any error message, and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (Tool, string, []string) {
	p := model.DefaultToolProfile()
	var warnings []string

	numeric := []struct {
		name     string
		idx      int
		dst      *float64
		required bool
	}{
		{"d1", mapping.D1, &p.D1, true},
		{"d2", mapping.D2, &p.D2, false},
		{"d3", mapping.D3, &p.D3, false},
		{"l1", mapping.L1, &p.L1, true},
		{"l2", mapping.L2, &p.L2, true},
		{"l3", mapping.L3, &p.L3, true},
		{"R", mapping.R, &p.R, false},
		{"helix angle", mapping.Helix, &p.HelixAngle, false},
	}

	present := map[string]bool{}
	for _, col := range numeric {
		v, ok, err := parseNumber(row, col.idx)
		if err != nil {
			return Tool{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, col.name, getCell(row, col.idx)), nil
		}
		if !ok {
			if col.required {
				return Tool{}, fmt.Sprintf("%s: Missing %s value", rowLabel, col.name), nil
			}
			continue
		}
		*col.dst = v
		present[col.name] = true
	}
	if !present["d2"] {
		p.D2 = p.D1
	}
	if !present["d3"] {
		p.D3 = p.D1
	}

	if s := getCell(row, mapping.Flutes); s != "" {
		z, err := strconv.Atoi(s)
		if err != nil {
			return Tool{}, fmt.Sprintf("%s: Invalid flutes '%s'", rowLabel, s), nil
		}
		p.Flutes = z
	}

	if err := model.Validate(p); err != nil {
		return Tool{}, fmt.Sprintf("%s: %v", rowLabel, err), nil
	}
	for _, adv := range model.Advisories(p) {
		warnings = append(warnings, fmt.Sprintf("%s: %s", rowLabel, adv))
	}

	name := getCell(row, mapping.Name)
	if name == "" {
		name = model.StockCode(p)
	}

	return Tool{Name: name, Profile: p}, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// newCSVReader returns a lenient reader that tolerates ragged rows and
// stray quotes, as produced by spreadsheet exports.
func newCSVReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader
}

var delimiterNames = map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}

// ImportCSV imports a tool catalog from a CSV file, detecting the delimiter.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if name, ok := delimiterNames[delimiter]; ok {
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", name))
	}

	records, err := newCSVReader(bytes.NewReader(data), delimiter).ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports a tool catalog from r using a known delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	records, err := newCSVReader(r, delimiter).ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", nil)
}

// ImportExcel imports a tool catalog from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		for _, req := range []struct {
			name string
			idx  int
		}{{"d1", mapping.D1}, {"l1", mapping.L1}, {"l2", mapping.L2}, {"l3", mapping.L3}} {
			if req.idx == -1 {
				missing = append(missing, req.name)
			}
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// An unrecognised header still has a non-numeric d1 cell.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		tool, errMsg, warnings := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Tools = append(result.Tools, tool)
	}

	return result
}

// Import dispatches on the file extension.
func Import(path string) ImportResult {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return ImportExcel(path)
	default:
		return ImportCSV(path)
	}
}
