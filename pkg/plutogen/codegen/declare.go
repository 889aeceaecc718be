package codegen

import (
	"fmt"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// Declaration is one variable of the procedure's declare block.
type Declaration struct {
	Name        string
	Type        models.ValueType
	Description string
	// Scratch is set for the shared per-type variables that receive
	// telemetry bound to names nobody declared.
	Scratch bool
}

func (d Declaration) line() string {
	s := "variable " + d.Name + " of type " + d.Type.PlutoName()
	if !d.Scratch {
		s += ` described by "` + literal(d.Description) + `"`
	}
	return s
}

// Declarations is the result of the declaration pre-pass.
type Declarations struct {
	Entries []Declaration

	explicit map[string]bool
	scratch  map[models.ValueType]bool
	rows     map[int]bool
}

// CollectDeclarations scans the matrix for explicitly declared variables
// ($NAME identifiers inside DECLARE VARIABLES regions) and then allocates
// one scratch variable per type for bindings to undeclared names.
func CollectDeclarations(matrix models.Matrix, sheet *models.Sheet) (*Declarations, []Diagnostic) {
	d := &Declarations{
		explicit: make(map[string]bool),
		scratch:  make(map[models.ValueType]bool),
		rows:     make(map[int]bool),
	}
	var diags []Diagnostic

	inRegion := false
	for _, e := range matrix {
		switch {
		case isDeclareHeader(e.Operator):
			inRegion = true
		case !e.Role.IsIDField() || classify.IsKnown(e.Operator):
			inRegion = false
		}
		if !inRegion {
			continue
		}
		row, _ := sheet.Row(e.Row)
		id := classify.Normalize(row.ID)
		if !strings.HasPrefix(id, "$") {
			continue
		}
		d.rows[e.Row] = true
		name := stripVars(id)
		if name == "" || strings.HasPrefix(name, "VAL") {
			continue
		}
		if d.explicit[name] {
			diags = append(diags, Diagnostic{
				Kind:    StructuralAnomaly,
				Row:     e.Row,
				Message: fmt.Sprintf("variable %s declared twice", name),
			})
			continue
		}
		d.explicit[name] = true
		d.Entries = append(d.Entries, Declaration{
			Name:        name,
			Type:        models.ParseValueType(row.Type),
			Description: row.Description,
		})
	}

	for _, e := range matrix {
		row, _ := sheet.Row(e.Row)
		typ := models.ParseValueType(row.Type)
		if !typ.Known() || d.scratch[typ] {
			continue
		}
		name, ok := bindingName(row)
		if !ok || d.explicit[name] {
			continue
		}
		d.scratch[typ] = true
		d.Entries = append(d.Entries, Declaration{Name: typ.ScratchName(), Type: typ, Scratch: true})
	}
	return d, diags
}

// isDeclareHeader matches the DECLARE VARIABLES operator and the
// continuation token of its identifier run.
func isDeclareHeader(op string) bool {
	return strings.HasPrefix(classify.Normalize(op), "DECLAREVARIABLES")
}

// bindingName returns the variable a row's raw or engineering cell binds to
// with the "@$NAME" form.
func bindingName(row models.Row) (string, bool) {
	for _, v := range []string{row.Raw, row.Eng} {
		v = classify.Normalize(v)
		if strings.HasPrefix(v, "@$") {
			return strings.TrimLeft(v, "@$"), true
		}
	}
	return "", false
}

// Names returns the declared variable names in declaration order.
func (d *Declarations) Names() []string {
	names := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		names = append(names, e.Name)
	}
	return names
}

// Declared reports whether name was explicitly declared.
func (d *Declarations) Declared(name string) bool {
	return d.explicit[name]
}

// Covers reports whether row n is a variable row of a DECLARE VARIABLES
// region, which the declare block already accounts for.
func (d *Declarations) Covers(n int) bool {
	return d.rows[n]
}

// Target returns the variable a binding to name of type t is written into:
// name itself when declared, otherwise the scratch variable for t. It returns
// "" when neither exists.
func (d *Declarations) Target(name string, t models.ValueType) string {
	if d.explicit[name] {
		return name
	}
	if d.scratch[t] {
		return t.ScratchName()
	}
	return ""
}

// Write emits the declare block. Nothing is written without declarations.
func (d *Declarations) Write(em *Emitter) {
	if len(d.Entries) == 0 {
		return
	}
	em.Line("declare")
	em.Indent()
	for i, e := range d.Entries {
		line := e.line()
		if i < len(d.Entries)-1 {
			line += ","
		}
		em.Line(line)
	}
	em.Dedent()
	em.Line("end declare")
}
