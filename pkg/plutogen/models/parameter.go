package models

// Parameter is one input argument declared in the parameter block of a
// procedure sheet.
type Parameter struct {
	// ID is the argument identifier without the "$" marker.
	ID string `json:"id"`
	// Description is the argument description cell.
	Description string `json:"description,omitempty"`
	// Type is the declared SCOS type cell.
	Type string `json:"type,omitempty"`
}
