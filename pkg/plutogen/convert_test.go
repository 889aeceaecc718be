package plutogen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
)

var validProcedure = [][]string{
	{"", "Parameters:", "$MODE", "target mode", "U8"},
	{"1", "PREPARATION"},
	{"", "SEND", "F1E1Cmd", "switch {on}", "U8", "1"},
	{"2", "END"},
}

// writeWorkbook saves a procedure workbook at path. Rows listed in
// boundaries get the section fill on their step cell.
func writeWorkbook(t *testing.T, path string, procedure [][]string, boundaries []int) {
	t.Helper()
	cfg := config.Default()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", cfg.Sheets.FrontPage))
	front := cfg.Sheets.FrontPage
	f.SetCellValue(front, "A1", "OPS-SAT PROCEDURE")
	f.SetCellValue(front, "D3", "Activate idle")
	f.SetCellValue(front, "D4", "R-ADC-N210")
	f.SetCellValue(front, "D6", "line one\nline two")

	_, err := f.NewSheet(cfg.Sheets.Procedure)
	require.NoError(t, err)
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
	require.NoError(t, err)
	for _, n := range boundaries {
		cell, _ := excelize.CoordinatesToCellName(1, n)
		require.NoError(t, f.SetCellStyle(cfg.Sheets.Procedure, cell, cell, style))
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.SaveAs(path))
}

func fixedOptions(mode Mode) Options {
	opts := DefaultOptions()
	opts.Mode = mode
	opts.GeneratedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	return opts
}

func TestConvert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R-ADC-N210_Activate_idle.xlsx")
	writeWorkbook(t, path, validProcedure, []int{2, 4})

	res, err := Convert(path, fixedOptions(ModeStandard))
	require.NoError(t, err)

	assert.Equal(t, "R-ADC-N210_Activate_idle.xlsx", res.Source)
	assert.Contains(t, res.Text, "// Date for Base Code auto-generation: 2026-10-19 12:00:00\n")
	assert.Contains(t, res.Text, "\n//OPS-SAT PROCEDURE")
	assert.Contains(t, res.Text, "\n//\t\t\t\t\tline two")
	assert.Contains(t, res.Text, "// START OF PROCEDURE CODE\n")
	assert.Contains(t, res.Text, "\tinitiate and confirm step R_ADC_N210_Activate_idle\n")
	assert.Contains(t, res.Text, "initiate F1E1Cmd of FBO of MIB_TCs of Telecommands of SSM;\t\t\t//switch on\n")
	assert.True(t, strings.HasSuffix(res.Text, "end procedure\n"))
	assert.Len(t, res.Matrix, 3)
	assert.Empty(t, res.Diagnostics)
}

func TestConvertLightMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R-ADC-N210_Activate_idle.xlsx")
	writeWorkbook(t, path, validProcedure, []int{2, 4})

	res, err := Convert(path, fixedOptions(ModeLight))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Text, "procedure\n"))
	assert.NotContains(t, res.Text, "IDENTIFIER MATRIX")
}

func TestConvertVerboseMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R-ADC-N210_Activate_idle.xlsx")
	writeWorkbook(t, path, validProcedure, []int{2, 4})

	res, err := Convert(path, fixedOptions(ModeVerbose))
	require.NoError(t, err)
	assert.Contains(t, res.Text, "// IDENTIFIER MATRIX\n// 2\tNEW_OPERATION_STEP\tPREPARATION\t\n// 3\tNEW_ID_FIELD\tSEND\tF1E1Cmd\n")
}

func TestConvertWithoutSanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R-ADC-N210_Activate_idle.xlsx")
	writeWorkbook(t, path, validProcedure, []int{2, 4})

	opts := fixedOptions(ModeLight)
	off := false
	opts.Sanitize = &off
	res, err := Convert(path, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "//switch {on}")
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a zip"), 0o644))

	flat := filepath.Join(dir, "R-ADC-N211_Flat.xlsx")
	writeWorkbook(t, flat, validProcedure, nil)

	tests := []struct {
		name  string
		path  string
		err   error
		stage string
	}{
		{"missing", filepath.Join(dir, "missing.xlsx"), ErrFileNotFound, StageOpen},
		{"invalid", garbage, ErrInvalidFormat, StageOpen},
		{"no boundaries", flat, ErrNoBoundaries, StageClassify},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.path, DefaultOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "expected %v, got %v", tt.err, err)

			var convErr *ConversionError
			require.True(t, errors.As(err, &convErr))
			assert.Equal(t, tt.stage, convErr.Stage)
		})
	}
}

func TestConvertMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R-ADC-N210_Activate_idle.xlsx")
	writeWorkbook(t, path, validProcedure, []int{2, 4})

	opts := DefaultOptions()
	opts.Config.Sheets.Procedure = "Steps"
	_, err := Convert(path, opts)
	assert.ErrorIs(t, err, ErrMissingSheet)
}

func TestConvertLogsCatalogMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R-ADC-N210_Activate_idle.xlsx")
	writeWorkbook(t, path, [][]string{
		{"1", "PREPARATION"},
		{"", "SEND", "ZZZ9", "unknown"},
		{"2", "END"},
	}, []int{1, 3})

	core, logs := observer.New(zapcore.WarnLevel)
	opts := fixedOptions(ModeLight)
	opts.Logger = zap.New(core)

	res, err := Convert(path, opts)
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 1, logs.FilterField(zap.String("file", "R-ADC-N210_Activate_idle.xlsx")).Len())
}

func TestOptions(t *testing.T) {
	yes := true
	tests := []struct {
		name   string
		opts   Options
		header bool
		clean  bool
	}{
		{"light", Options{Mode: ModeLight}, false, true},
		{"standard", Options{Mode: ModeStandard}, true, true},
		{"override", Options{Mode: ModeLight, IncludeHeader: &yes}, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.header, tt.opts.ShouldIncludeHeader(), tt.name)
		assert.Equal(t, tt.clean, tt.opts.ShouldSanitize(), tt.name)
	}

	// unset configuration and catalogs fall back to the defaults
	var zero Options
	assert.Equal(t, config.Default(), zero.config())
	assert.Equal(t, catalog.ParameterTree().PrefixCount(), zero.catalogs().Parameters.PrefixCount())
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"light", "standard", "verbose"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}
	_, err := ParseMode("loud")
	assert.Error(t, err)
}
