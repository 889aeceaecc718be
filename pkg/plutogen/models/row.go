// Package models defines data structures for procedure conversion.
package models

// Row represents one row of the procedure sheet.
type Row struct {
	// Number is the row index (1-based).
	Number int `json:"r"`
	// Step is the step label cell.
	Step string `json:"step,omitempty"`
	// Operation is the operation text cell.
	Operation string `json:"operation,omitempty"`
	// ID is the command, parameter or variable identifier cell.
	ID string `json:"id,omitempty"`
	// Description is the free-text description cell.
	Description string `json:"description,omitempty"`
	// Type is the declared SCOS type cell (e.g. "U8", "Boolean").
	Type string `json:"type,omitempty"`
	// Raw is the raw value cell.
	Raw string `json:"raw,omitempty"`
	// Eng is the engineering value cell.
	Eng string `json:"eng,omitempty"`
	// Unit is the unit cell.
	Unit string `json:"unit,omitempty"`
	// Fill is the normalized fill colour of the step cell (e.g. "92CDDC").
	Fill string `json:"fill,omitempty"`
}

// HasID reports whether the identifier cell is non-empty.
func (r Row) HasID() bool {
	return r.ID != ""
}

// HasOperation reports whether the operation cell is non-empty.
func (r Row) HasOperation() bool {
	return r.Operation != ""
}
