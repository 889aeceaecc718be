package codegen

import (
	"regexp"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

var selectVariable = regexp.MustCompile(`\$\w+`)

func (c *GeneratorContext) emitSelect(e models.ClassifiedRow) {
	if m := selectVariable.FindString(e.Operator); m != "" {
		c.em.Line("in case " + stripVars(m))
	} else {
		c.report(StructuralAnomaly, e.Row, "SELECT CASE without a $variable")
		c.em.Line("//NON STANDARD COMMAND: " + oneLine(e.Operator))
	}
	c.em.Indent()
	c.push(frame{kind: frameSelect, row: e.Row})
}

func (c *GeneratorContext) emitCase(e models.ClassifiedRow) {
	if !c.closeUntil(frameSelect, e.Row) {
		c.unmatched(e, "case")
		return
	}
	f := c.top()
	value := classify.Normalize(after(e.Operator, ":"))
	if f.cases == 0 {
		c.em.Line("is = " + value + ":")
	} else {
		c.em.Dedent()
		c.em.Line("or is = " + value + ":")
	}
	c.em.Indent()
	f.cases++
}

func (c *GeneratorContext) emitCaseElse(e models.ClassifiedRow) {
	if !c.closeUntil(frameSelect, e.Row) {
		c.unmatched(e, "case else")
		return
	}
	f := c.top()
	if f.cases > 0 {
		c.em.Dedent()
	}
	c.em.Line("otherwise:")
	c.em.Indent()
	f.cases++
}

func (c *GeneratorContext) emitEndCase(e models.ClassifiedRow) {
	if !c.closeUntil(frameSelect, e.Row) {
		c.unmatched(e, "end case")
		return
	}
	c.closeFrame()
}

// ifCondition extracts the condition of "IF <cond> THEN" (or "ELSE IF").
func ifCondition(op, keyword string) string {
	cond, ok := between(op, keyword+" ", " THEN")
	if !ok {
		cond = strings.TrimPrefix(after(op, keyword), " ")
		cond = strings.TrimSuffix(strings.TrimSpace(cond), "THEN")
	}
	return condition(cond)
}

func (c *GeneratorContext) emitIf(e models.ClassifiedRow) {
	c.em.Line("if " + ifCondition(e.Operator, "IF") + " then")
	c.em.Indent()
	c.push(frame{kind: frameIf, row: e.Row})
}

// emitIfIn writes "IF $X IN" followed by identifier rows listing the
// accepted values as a disjunction of equalities. The listed rows are
// consumed.
func (c *GeneratorContext) emitIfIn(e models.ClassifiedRow) {
	c.writeIfIn(e, e.Operator)
}

func (c *GeneratorContext) writeIfIn(e models.ClassifiedRow, op string) {
	variable, ok := between(op, "IF ", " IN")
	if !ok {
		variable = strings.TrimSuffix(strings.TrimPrefix(classify.Normalize(op), "IF"), "IN")
	}
	variable = strings.TrimSpace(stripVars(variable))

	var values []string
	if r := c.row(e.Row); r.HasID() {
		values = append(values, r.ID)
	}
	for {
		next, ok := c.next()
		if !ok || !next.Role.IsIDField() {
			break
		}
		values = append(values, c.row(next.Row).ID)
		c.cursor++
	}

	if len(values) == 0 {
		c.report(StructuralAnomaly, e.Row, "IF "+variable+" IN lists no values")
		c.em.Linef("if FALSE then\t\t\t// WARNING: no values listed for %s", variable)
	} else {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = variable + ` = "` + literal(v) + `"`
		}
		c.em.Line("if " + strings.Join(parts, " or ") + " then")
	}
	c.em.Indent()
	c.push(frame{kind: frameIf, row: e.Row})
}

func (c *GeneratorContext) emitThen(e models.ClassifiedRow) {
	stmt := strings.TrimSpace(assignment(stripVars(after(e.Operator, "THEN"))))
	if stmt == "" {
		return
	}
	if !strings.HasSuffix(stmt, ";") {
		stmt += ";"
	}
	c.em.Line(stmt)
}

func (c *GeneratorContext) emitElseIf(e models.ClassifiedRow) {
	if !c.closeUntil(frameIf, e.Row) {
		c.unmatched(e, "else if")
		return
	}
	norm := classify.Normalize(e.Operator)
	if strings.HasSuffix(norm, "IN") {
		c.closeFrame()
		c.writeIfIn(e, after(e.Operator, "ELSE"))
		return
	}
	keyword := "ELSE IF"
	if !strings.Contains(e.Operator, keyword) {
		keyword = "ELSEIF"
	}
	c.em.Dedent()
	c.em.Line("else if " + ifCondition(e.Operator, keyword) + " then")
	c.em.Indent()
}

func (c *GeneratorContext) emitElse(e models.ClassifiedRow) {
	if !c.closeUntil(frameIf, e.Row) {
		c.unmatched(e, "else")
		return
	}
	c.em.Dedent()
	c.em.Line("else")
	c.em.Indent()
}

func (c *GeneratorContext) emitEndIf(e models.ClassifiedRow) {
	if !c.closeUntil(frameIf, e.Row) {
		c.unmatched(e, "end if")
		return
	}
	c.closeFrame()
}

// emitAssignment writes "$X = v" as "X := v;".
func (c *GeneratorContext) emitAssignment(e models.ClassifiedRow) {
	stmt := strings.TrimSpace(assignment(stripVars(e.Operator)))
	if !strings.HasSuffix(stmt, ";") {
		stmt += ";"
	}
	c.em.Line(stmt)
}
