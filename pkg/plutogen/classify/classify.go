// Package classify turns a procedure sheet into the identifier matrix that
// drives code generation.
package classify

import (
	"errors"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// ErrNoBoundaries indicates a sheet without any operation boundary row.
var ErrNoBoundaries = errors.New("no operation boundaries found")

// ContinuationMarker is appended to the operator of a run of identifier rows
// to form the token of the rows that follow the first one.
const ContinuationMarker = "_"

// Boundaries returns the rows whose step cell carries the boundary colour,
// in increasing order.
func Boundaries(sheet *models.Sheet, color string) []int {
	want := config.NormalizeColor(color)
	var rows []int
	for _, row := range sheet.Rows {
		if row.Fill != "" && config.NormalizeColor(row.Fill) == want {
			rows = append(rows, row.Number)
		}
	}
	return rows
}

// Classify builds the identifier matrix of sheet. Every boundary but the last
// opens a section with a NewOperationStep entry followed by the classified
// rows up to the next boundary; the last boundary adds one trailing marker.
// Role assignment looks only at which cells are empty.
func Classify(sheet *models.Sheet, color string) (models.Matrix, error) {
	bounds := Boundaries(sheet, color)
	if len(bounds) == 0 {
		return nil, ErrNoBoundaries
	}

	var matrix models.Matrix
	for i := 0; i < len(bounds)-1; i++ {
		head, _ := sheet.Row(bounds[i])
		matrix = append(matrix, models.ClassifiedRow{
			Row:      head.Number,
			Role:     models.NewOperationStep,
			Operator: head.Operation,
		})
		matrix = classifySection(matrix, sheet, bounds[i]+1, bounds[i+1]-1)
	}

	tail, _ := sheet.Row(bounds[len(bounds)-1])
	matrix = append(matrix, models.ClassifiedRow{
		Row:      tail.Number,
		Role:     models.NewOperationStep,
		Operator: tail.Operation,
	})
	return matrix, nil
}

// classifySection appends the entries of rows first..last. The row before
// first is treated as having an empty identifier.
func classifySection(matrix models.Matrix, sheet *models.Sheet, first, last int) models.Matrix {
	prevHasID := false
	runOperator := ""
	for n := first; n <= last; n++ {
		row, _ := sheet.Row(n)
		switch {
		case row.HasID() && !prevHasID:
			runOperator = row.Operation
			matrix = append(matrix, models.ClassifiedRow{Row: n, Role: models.NewIDField, Operator: row.Operation})
		case row.HasID():
			matrix = append(matrix, models.ClassifiedRow{Row: n, Role: models.FollowIDField, Operator: runOperator + ContinuationMarker})
		case row.HasOperation() && IsKnown(row.Operation):
			matrix = append(matrix, models.ClassifiedRow{Row: n, Role: models.NewOperationField, Operator: row.Operation})
		case row.HasOperation():
			matrix = append(matrix, models.ClassifiedRow{Row: n, Role: models.FollowOperationField, Operator: row.Operation})
		}
		prevHasID = row.HasID()
	}
	return matrix
}
