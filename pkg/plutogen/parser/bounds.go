package parser

import (
	"github.com/xuri/excelize/v2"
)

// findDataBounds finds the bounding box of non-empty cells.
// All results are 0-based and -1 when rows holds no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// lastUsedRow returns the 1-based number of the last row to read. Styled but
// empty rows count, since boundary markers may sit on rows without text.
func lastUsedRow(f *excelize.File, sheetName string, rows [][]string) int {
	_, maxRow, _, _ := findDataBounds(rows)
	last := maxRow + 1

	it, err := f.Rows(sheetName)
	if err != nil {
		return last
	}
	defer it.Close()
	n := 0
	for it.Next() {
		n++
	}
	if n > last {
		last = n
	}
	return last
}
