package codegen

import (
	"fmt"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// Offsets of the CALL PROCEDURE template rows relative to its first entry.
const (
	callIDOffset     = 1
	callTitleOffset  = 2
	callReasonOffset = 3
	callParamsOffset = 5
)

// emitCallProcedure consumes a CALL PROCEDURE template: ID, TITLE and REASON
// rows, one ignored row, then parameter rows up to THEN RETURN.
func (c *GeneratorContext) emitCallProcedure(e models.ClassifiedRow) {
	start := c.cursor
	end, terminated := c.callTerminator(start)
	if !terminated {
		c.report(StructuralAnomaly, e.Row, "CALL PROCEDURE without THEN RETURN")
		c.em.Line("// WARNING: CALL PROCEDURE HAS NO THEN RETURN, PLEASE COMPARE WITH EXCEL PROCEDURE")
	}

	token := func(off int) string {
		i := start + off
		if i >= end {
			return ""
		}
		t, _ := c.entry(i)
		return t.Operator
	}

	idToken := token(callIDOffset)
	title := strings.TrimSpace(after(token(callTitleOffset), "TITLE:"))
	reason := strings.TrimSpace(after(token(callReasonOffset), "REASON:"))

	var params []string
	for i := start + callParamsOffset; i < end; i++ {
		t, _ := c.entry(i)
		dot := strings.Index(t.Operator, ".")
		if dot < 0 {
			c.em.Line("//NON STANDARD COMMAND: " + oneLine(t.Operator))
			continue
		}
		params = append(params, strings.TrimSpace(assignment(stripVars(t.Operator[dot+1:]))))
	}

	name := strings.ReplaceAll(classify.Normalize(after(idToken, "ID:")), "-", "_")
	res := c.gen.procedures.Resolve(name)
	if !res.Found {
		c.report(CatalogMiss, e.Row, fmt.Sprintf("procedure %q is not in the %s catalog", name, catalog.ProcedurePlaceholder))
	}

	c.em.Linef("// CALL PROCEDURE: %s", oneLine(idToken))
	c.em.Linef("// TITLE: %s", oneLine(title))
	c.em.Linef("// REASON: %s", strings.ReplaceAll(oneLine(reason), "  ", ""))

	header := "initiate and confirm " + res.Qualified()
	if len(params) == 0 {
		c.em.Line(header + ";")
	} else {
		c.em.Line(header)
		c.em.Indent()
		c.em.Line("with arguments")
		c.em.Indent()
		for i, p := range params {
			if i < len(params)-1 {
				p += ","
			}
			c.em.Line(p)
		}
		c.em.Dedent()
		c.em.Line("end with;")
		c.em.Dedent()
	}

	if terminated {
		c.cursor = end
	} else {
		c.cursor = end - 1
	}
}

// callTerminator finds the THEN RETURN entry closing the template at start.
// Without one it returns the index of the next section marker, or the end of
// the matrix.
func (c *GeneratorContext) callTerminator(start int) (int, bool) {
	for i := start + 1; i < len(c.matrix); i++ {
		e := c.matrix[i]
		if e.Role == models.NewOperationStep {
			return i, false
		}
		if strings.HasPrefix(classify.Normalize(e.Operator), "THENRETURN") {
			return i, true
		}
	}
	return len(c.matrix), false
}
