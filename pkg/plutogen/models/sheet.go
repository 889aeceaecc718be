package models

// Sheet represents the rows of a single procedure sheet.
type Sheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains every row up to the last used one; Rows[i].Number == i+1.
	Rows []Row `json:"rows,omitempty"`
}

// Row returns the row with the given 1-based number.
// The second result is false when n is outside the sheet.
func (s *Sheet) Row(n int) (Row, bool) {
	if s == nil || n < 1 || n > len(s.Rows) {
		return Row{Number: n}, false
	}
	return s.Rows[n-1], true
}

// Len returns the number of the last row in the sheet.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// NewSheet builds a dense sheet from rows, numbering them when Number is unset
// and filling gaps with empty rows.
func NewSheet(name string, rows []Row) *Sheet {
	sheet := &Sheet{Name: name}
	for i, row := range rows {
		if row.Number == 0 {
			row.Number = i + 1
		}
		for len(sheet.Rows) < row.Number-1 {
			sheet.Rows = append(sheet.Rows, Row{Number: len(sheet.Rows) + 1})
		}
		if row.Number <= len(sheet.Rows) {
			sheet.Rows[row.Number-1] = row
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}
