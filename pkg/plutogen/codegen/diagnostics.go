package codegen

import "fmt"

// DiagnosticKind classifies a non-fatal conversion problem.
type DiagnosticKind int

const (
	// StructuralAnomaly is an expected template row or block closer that is
	// missing or out of place.
	StructuralAnomaly DiagnosticKind = iota
	// CatalogMiss is an identifier no catalog prefix matches.
	CatalogMiss
	// UnrecognizedOperator is a row kept as an unidentified comment.
	UnrecognizedOperator
)

func (k DiagnosticKind) String() string {
	switch k {
	case StructuralAnomaly:
		return "StructuralAnomaly"
	case CatalogMiss:
		return "CatalogMiss"
	case UnrecognizedOperator:
		return "UnrecognizedOperator"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is one problem found while converting a procedure.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Row     int            `json:"row"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("row %d: %s: %s", d.Row, d.Kind, d.Message)
}

// CountDiagnostics returns how many diagnostics of kind ds holds.
func CountDiagnostics(ds []Diagnostic, kind DiagnosticKind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
