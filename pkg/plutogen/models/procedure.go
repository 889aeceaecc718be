package models

// FrontPage holds the metadata sheet of a procedure workbook.
type FrontPage struct {
	// Title is the procedure title cell.
	Title string `json:"title"`
	// ID is the procedure identifier cell.
	ID string `json:"id"`
	// Lines contains the documentation columns of every used front-page row.
	Lines [][]string `json:"lines,omitempty"`
}

// Procedure is a workbook ready for conversion.
type Procedure struct {
	// Source is the workbook file name (no path).
	Source string `json:"source"`
	// FrontPage is the metadata sheet.
	FrontPage FrontPage `json:"front_page"`
	// Sheet is the procedure sheet.
	Sheet *Sheet `json:"sheet"`
}
