package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a workbook with a front page and a procedure sheet,
// colouring the step cell of every row listed in boundaries, and reopens it.
func buildWorkbook(t *testing.T, procedure [][]string, boundaries []int) *excelize.File {
	t.Helper()
	cfg := config.Default()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cfg.Sheets.FrontPage); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	front := cfg.Sheets.FrontPage
	f.SetCellValue(front, "A1", "OPS-SAT PROCEDURE")
	f.SetCellValue(front, "C3", "Title:")
	f.SetCellValue(front, "D3", "Activate ADCS idle mode")
	f.SetCellValue(front, "C4", "ID:")
	f.SetCellValue(front, "D4", "R-ADC-N210")
	f.SetCellValue(front, "D6", "line one\nline two")

	if _, err := f.NewSheet(cfg.Sheets.Procedure); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	for r, row := range procedure {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue(cfg.Sheets.Procedure, cell, v)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"92CDDC"}},
	})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	for _, n := range boundaries {
		cell, _ := excelize.CoordinatesToCellName(1, n)
		if err := f.SetCellStyle(cfg.Sheets.Procedure, cell, cell, style); err != nil {
			t.Fatalf("Failed to set style: %v", err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadSheet(t *testing.T) {
	f := buildWorkbook(t, [][]string{
		{"Step", "Operation", "ID", "Description", "Type", "Raw", "Eng", "Unit"},
		{"1", "PREPARATION"},
		{"", "SEND", "F1E1Cmd", "switch on", "U8", " 1 ", "ON", "V"},
		{"2", "END"},
		{},
		{},
	}, []int{2, 4, 6})

	sheet, err := ReadSheet(f, "Procedure", config.Default().Columns)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	// row 6 has no text but carries the boundary fill
	if sheet.Len() != 6 {
		t.Fatalf("Expected 6 rows, got %d", sheet.Len())
	}

	row, ok := sheet.Row(3)
	if !ok {
		t.Fatal("Expected row 3 to exist")
	}
	if row.Operation != "SEND" || row.ID != "F1E1Cmd" || row.Eng != "ON" || row.Unit != "V" {
		t.Errorf("Unexpected row 3: %+v", row)
	}
	if row.Raw != "1" {
		t.Errorf("Expected trimmed raw value '1', got %q", row.Raw)
	}
	if row.Fill != "" {
		t.Errorf("Expected no fill on row 3, got %q", row.Fill)
	}

	for _, n := range []int{2, 4, 6} {
		r, _ := sheet.Row(n)
		if r.Fill != "92CDDC" {
			t.Errorf("Row %d: expected fill 92CDDC, got %q", n, r.Fill)
		}
	}
}

func TestReadSheetCustomColumns(t *testing.T) {
	f := buildWorkbook(t, [][]string{
		{"", "", "", "WAIT FOR 5s"},
	}, nil)

	cols := config.Default().Columns
	cols.Operation = "D"
	sheet, err := ReadSheet(f, "Procedure", cols)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	row, _ := sheet.Row(1)
	if row.Operation != "WAIT FOR 5s" {
		t.Errorf("Expected operation from column D, got %q", row.Operation)
	}
}

func TestReadFrontPage(t *testing.T) {
	f := buildWorkbook(t, [][]string{{"1"}}, nil)

	front, err := ReadFrontPage(f, "Front Page", config.Default().FrontPage)
	if err != nil {
		t.Fatalf("ReadFrontPage failed: %v", err)
	}
	if front.Title != "Activate ADCS idle mode" {
		t.Errorf("Expected title, got %q", front.Title)
	}
	if front.ID != "R-ADC-N210" {
		t.Errorf("Expected ID, got %q", front.ID)
	}
	if len(front.Lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(front.Lines))
	}
	if len(front.Lines[0]) != 5 || front.Lines[0][0] != "OPS-SAT PROCEDURE" {
		t.Errorf("Unexpected first line: %q", front.Lines[0])
	}
	if front.Lines[5][3] != "line one\nline two" {
		t.Errorf("Expected multi-line cell to be kept, got %q", front.Lines[5][3])
	}
}

func TestReadProcedureMissingSheet(t *testing.T) {
	f := buildWorkbook(t, [][]string{{"1"}}, nil)

	cfg := config.Default()
	cfg.Sheets.Procedure = "Steps"
	_, err := ReadProcedure(f, cfg)
	if !errors.Is(err, ErrMissingSheet) {
		t.Errorf("Expected ErrMissingSheet, got %v", err)
	}
}

func TestReadProcedure(t *testing.T) {
	f := buildWorkbook(t, [][]string{{"1", "PREPARATION"}, {"2", "END"}}, []int{1, 2})

	proc, err := ReadProcedure(f, config.Default())
	if err != nil {
		t.Fatalf("ReadProcedure failed: %v", err)
	}
	if proc.FrontPage.ID != "R-ADC-N210" {
		t.Errorf("Expected front page ID, got %q", proc.FrontPage.ID)
	}
	if proc.Sheet.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", proc.Sheet.Len())
	}
}

func TestExtractParameters(t *testing.T) {
	f := buildWorkbook(t, [][]string{
		{"Step", "Operation", "ID"},
		{"", "Parameters:", "$MODE", "target mode", "U8"},
		{"", "", "$TIMEOUT", "seconds", "Float"},
		{"", "", "", "not an argument"},
		{"", "", "$LATE", "after the gap"},
	}, nil)

	params, err := ExtractParameters(f, config.Default())
	if err != nil {
		t.Fatalf("ExtractParameters failed: %v", err)
	}
	if len(params) != 2 {
		t.Fatalf("Expected 2 parameters, got %d: %+v", len(params), params)
	}
	if params[0].ID != "MODE" || params[0].Description != "target mode" || params[0].Type != "U8" {
		t.Errorf("Unexpected first parameter: %+v", params[0])
	}
	if params[1].ID != "TIMEOUT" || params[1].Type != "Float" {
		t.Errorf("Unexpected second parameter: %+v", params[1])
	}
}

func TestExtractParametersNone(t *testing.T) {
	f := buildWorkbook(t, [][]string{{"1", "PREPARATION"}}, nil)

	params, err := ExtractParameters(f, config.Default())
	if err != nil {
		t.Fatalf("ExtractParameters failed: %v", err)
	}
	if len(params) != 0 {
		t.Errorf("Expected no parameters, got %+v", params)
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		name                           string
		rows                           [][]string
		minRow, maxRow, minCol, maxCol int
	}{
		{"empty", nil, -1, -1, -1, -1},
		{"single", [][]string{{"", "x"}}, 0, 0, 1, 1},
		{"sparse", [][]string{{}, {"", "", "a"}, {"b"}, {""}}, 1, 2, 0, 2},
	}
	for _, tt := range tests {
		minRow, maxRow, minCol, maxCol := findDataBounds(tt.rows)
		if minRow != tt.minRow || maxRow != tt.maxRow || minCol != tt.minCol || maxCol != tt.maxCol {
			t.Errorf("%s: findDataBounds = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
				tt.name, minRow, maxRow, minCol, maxCol, tt.minRow, tt.maxRow, tt.minCol, tt.maxCol)
		}
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		row      []string
		idx      int
		expected string
	}{
		{[]string{"a", " b "}, 1, "b"},
		{[]string{"a"}, 3, ""},
		{nil, 0, ""},
		{[]string{"a"}, -1, ""},
		{[]string{"   "}, 0, ""},
	}
	for _, tt := range tests {
		if got := cellAt(tt.row, tt.idx); got != tt.expected {
			t.Errorf("cellAt(%q, %d) = %q, expected %q", tt.row, tt.idx, got, tt.expected)
		}
	}
}
