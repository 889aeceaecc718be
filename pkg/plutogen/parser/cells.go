package parser

import (
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
)

// columnSet holds the 0-based indexes of the eight procedure columns.
type columnSet struct {
	step, operation, id, description, typ, raw, eng, unit int
}

func newColumnSet(cols config.ColumnsConfig) columnSet {
	return columnSet{
		step:        config.ColumnIndex(cols.Step),
		operation:   config.ColumnIndex(cols.Operation),
		id:          config.ColumnIndex(cols.ID),
		description: config.ColumnIndex(cols.Description),
		typ:         config.ColumnIndex(cols.Type),
		raw:         config.ColumnIndex(cols.Raw),
		eng:         config.ColumnIndex(cols.Eng),
		unit:        config.ColumnIndex(cols.Unit),
	}
}

// cellAt returns the trimmed cell at colIdx, or "" past the end of the row.
// Cells holding only whitespace count as empty.
func cellAt(row []string, colIdx int) string {
	if colIdx < 0 || colIdx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[colIdx])
}

// rowAt returns the cells of the 1-based row n, or nil past the data.
func rowAt(rows [][]string, n int) []string {
	if n < 1 || n > len(rows) {
		return nil
	}
	return rows[n-1]
}
