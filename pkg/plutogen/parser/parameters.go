package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
	"github.com/xuri/excelize/v2"
)

// parameterSearchRows bounds the search for the "Parameters:" row.
const parameterSearchRows = 20

// ExtractParameters returns the procedure's input arguments. The block starts
// at the first row among the first twenty whose operation cell begins with
// "Parameters:" and runs while the identifier cell is non-empty.
func ExtractParameters(f *excelize.File, cfg config.Config) ([]models.Parameter, error) {
	sheetName := cfg.Sheets.Procedure
	if err := requireSheet(f, sheetName); err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", sheetName, err)
	}
	idx := newColumnSet(cfg.Columns)

	start := 0
	for n := 1; n <= parameterSearchRows && n <= len(rows); n++ {
		if strings.HasPrefix(cellAt(rowAt(rows, n), idx.operation), "Parameters:") {
			start = n
			break
		}
	}
	if start == 0 {
		return nil, nil
	}

	var params []models.Parameter
	for n := start; n <= len(rows); n++ {
		cells := rowAt(rows, n)
		id := cellAt(cells, idx.id)
		if id == "" {
			break
		}
		params = append(params, models.Parameter{
			ID:          strings.ReplaceAll(id, "$", ""),
			Description: cellAt(cells, idx.description),
			Type:        cellAt(cells, idx.typ),
		})
	}
	return params, nil
}
