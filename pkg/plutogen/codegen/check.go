package codegen

import (
	"fmt"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// relational operators, longest first so ">=" is not read as ">".
var relationalOps = []string{">=", "<=", "!=", "<>", ">", "<", "="}

var negatedOps = map[string]string{
	">=": "<",
	"<=": ">",
	">":  "<=",
	"<":  ">=",
	"!=": "=",
	"<>": "=",
	"=":  "!=",
}

// emitCheck writes a telemetry check: either an assignment of the parameter
// to a variable, or a guard warning when the value is not the expected one.
func (c *GeneratorContext) emitCheck(e models.ClassifiedRow) {
	v := c.cells(e)
	res := c.resolveParameter(v.RawID, e.Row)

	value, prefix := v.Eng, ""
	if value == "" {
		value, prefix = v.Raw, "raw_value of "
	}
	subject := prefix + res.Qualified()
	desc := literal(v.Description)

	c.em.Linef("// DESCRIPTION: %s, ID: %s", oneLine(v.Description), v.ID)
	if strings.TrimSpace(value) == "" {
		c.report(StructuralAnomaly, e.Row, "telemetry check without an expected value")
		c.em.Line("// CHECK TM WITHOUT EXPECTED VALUE: " + v.ID)
		c.em.Blank()
		return
	}

	if strings.Contains(value, "@") {
		name := strings.TrimLeft(classify.Normalize(value), "@$")
		target := c.decls.Target(name, v.Type)
		if target == "" {
			c.report(StructuralAnomaly, e.Row, fmt.Sprintf("binding to undeclared variable %s of unknown type", name))
			target = name
		}
		c.em.Line(target + " := " + subject + ";")
		c.em.Line("\tlog \"LOG: CHECK TM ASSIGNMENT: VALUE = \" + " + target +
			" + \"; DESCRIPTION: " + desc + "; ID: " + v.ID + "\";")
		c.em.Blank()
		return
	}

	cond, expected := checkCondition(subject, value)
	c.em.Line("if " + cond + " then")
	c.em.Indent()
	c.em.Linef(`warn "LOG: FAILURE; ID: %s, TYPE: %s, expected: %s, got: " + %s + ", DESCRIPTION: %s";`,
		v.ID, v.Type.PlutoName(), expected, subject, desc)
	c.em.Dedent()
	c.em.Line("end if;")
	c.em.Blank()
}

// checkCondition returns the failure condition for subject against value and
// the text describing the expectation inside the warn message.
func checkCondition(subject, value string) (cond, expected string) {
	value = strings.TrimSpace(value)
	expected = strings.ReplaceAll(stripVars(value), `"`, "")

	switch {
	case strings.HasPrefix(value, "["):
		inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
		lo, hi := inner, inner
		if i := strings.LastIndex(inner, ","); i >= 0 {
			lo, hi = inner[:i], inner[i+1:]
		}
		lo, hi = strings.TrimSpace(stripVars(lo)), strings.TrimSpace(stripVars(hi))
		return subject + " < " + lo + " or " + subject + " > " + hi, expected

	case strings.HasPrefix(value, "{"):
		inner := strings.TrimSuffix(strings.TrimPrefix(value, "{"), "}")
		var parts []string
		for _, item := range strings.Split(inner, ",") {
			item = classify.Normalize(stripVars(item))
			if item == "" {
				continue
			}
			parts = append(parts, subject+" != "+item)
		}
		if len(parts) == 0 {
			return "FALSE", expected
		}
		return strings.Join(parts, " and "), expected

	case strings.ContainsAny(value[:1], "<>!="):
		for _, op := range relationalOps {
			if strings.HasPrefix(value, op) {
				operand := strings.TrimSpace(value[len(op):])
				expected = op + " " + strings.ReplaceAll(stripVars(operand), `"`, "")
				if strings.HasPrefix(operand, "$") {
					expected = op + ` " + ` + stripVars(operand) + ` + "`
				}
				return subject + " " + negatedOps[op] + " " + stripVars(operand), expected
			}
		}
	}

	if strings.HasPrefix(value, "$") {
		name := stripVars(value)
		return subject + " != " + name, `" + ` + name + ` + "`
	}
	return subject + " != " + value, expected
}
