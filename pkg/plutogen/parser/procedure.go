// Package parser reads procedure workbooks with excelize.
package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
	"github.com/xuri/excelize/v2"
)

// ErrMissingSheet indicates a required sheet is absent from the workbook.
var ErrMissingSheet = errors.New("missing sheet")

// ReadProcedure reads the front page and the procedure sheet named in cfg.
// The returned Procedure has no Source; callers set it.
func ReadProcedure(f *excelize.File, cfg config.Config) (*models.Procedure, error) {
	front, err := ReadFrontPage(f, cfg.Sheets.FrontPage, cfg.FrontPage)
	if err != nil {
		return nil, err
	}
	sheet, err := ReadSheet(f, cfg.Sheets.Procedure, cfg.Columns)
	if err != nil {
		return nil, err
	}
	return &models.Procedure{
		FrontPage: front,
		Sheet:     sheet,
	}, nil
}

// ReadSheet reads the eight procedure columns of every row up to the last
// used one, plus the fill colour of the step cell.
func ReadSheet(f *excelize.File, sheetName string, cols config.ColumnsConfig) (*models.Sheet, error) {
	if err := requireSheet(f, sheetName); err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", sheetName, err)
	}

	idx := newColumnSet(cols)
	fills := newFillCache(f)
	last := lastUsedRow(f, sheetName, rows)

	result := make([]models.Row, 0, last)
	for n := 1; n <= last; n++ {
		cells := rowAt(rows, n)
		stepCell, err := excelize.CoordinatesToCellName(idx.step+1, n)
		if err != nil {
			return nil, err
		}
		fill, err := fills.cellFill(sheetName, stepCell)
		if err != nil {
			return nil, err
		}
		result = append(result, models.Row{
			Number:      n,
			Step:        cellAt(cells, idx.step),
			Operation:   cellAt(cells, idx.operation),
			ID:          cellAt(cells, idx.id),
			Description: cellAt(cells, idx.description),
			Type:        cellAt(cells, idx.typ),
			Raw:         cellAt(cells, idx.raw),
			Eng:         cellAt(cells, idx.eng),
			Unit:        cellAt(cells, idx.unit),
			Fill:        fill,
		})
	}

	return models.NewSheet(sheetName, result), nil
}

// ReadFrontPage reads the title and ID cells and the documentation columns
// of every used front-page row.
func ReadFrontPage(f *excelize.File, sheetName string, layout config.FrontPageConfig) (models.FrontPage, error) {
	if err := requireSheet(f, sheetName); err != nil {
		return models.FrontPage{}, err
	}
	title, err := f.GetCellValue(sheetName, layout.TitleCell)
	if err != nil {
		return models.FrontPage{}, fmt.Errorf("failed to read title cell: %w", err)
	}
	id, err := f.GetCellValue(sheetName, layout.IDCell)
	if err != nil {
		return models.FrontPage{}, fmt.Errorf("failed to read ID cell: %w", err)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.FrontPage{}, fmt.Errorf("failed to read rows of %q: %w", sheetName, err)
	}
	_, maxRow, _, _ := findDataBounds(rows)

	lines := make([][]string, 0, maxRow+1)
	for i := 0; i <= maxRow; i++ {
		line := make([]string, len(layout.Columns))
		for j, letter := range layout.Columns {
			// newlines inside cells are kept; the header writer comments them
			if col := config.ColumnIndex(letter); col >= 0 && col < len(rows[i]) {
				line[j] = rows[i][col]
			}
		}
		lines = append(lines, line)
	}

	return models.FrontPage{
		Title: title,
		ID:    id,
		Lines: lines,
	}, nil
}

func requireSheet(f *excelize.File, sheetName string) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", sheetName, err)
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrMissingSheet, sheetName)
	}
	return nil
}
