package codegen

import (
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// emitTerminal runs the row's description as a shell command on the control
// system.
func (c *GeneratorContext) emitTerminal(e models.ClassifiedRow) {
	cmd := strings.ReplaceAll(oneLine(stripVars(c.row(e.Row).Description)), `"`, `\"`)
	c.em.Line("initiate and confirm " + c.gen.settings.TerminalPath)
	c.em.Indent()
	c.em.Line("with arguments")
	c.em.Indent()
	c.em.Line(`COMMAND := "` + cmd + `"`)
	c.em.Dedent()
	c.em.Line("end with;")
	c.em.Dedent()
}

// emitCallEngineer sends the notification mail. The message is the operator
// text of the following entry.
func (c *GeneratorContext) emitCallEngineer(e models.ClassifiedRow) {
	msg := ""
	if next, ok := c.next(); ok && next.Role != models.NewOperationStep {
		msg = literal(next.Operator)
	} else {
		c.report(StructuralAnomaly, e.Row, "CALL ENGINEER without a message row")
	}
	eng := c.gen.settings.Engineer
	c.em.Line("initiate and confirm " + eng.Path)
	c.em.Indent()
	c.em.Line("with arguments")
	c.em.Indent()
	c.em.Line(`Subject := "` + literal(eng.Subject) + `",`)
	c.em.Line(`Message := "` + msg + `",`)
	c.em.Line(`ToMail := "` + literal(eng.ToMail) + `",`)
	c.em.Line(`ToName := "` + literal(eng.ToName) + `"`)
	c.em.Dedent()
	c.em.Line("end with;")
	c.em.Dedent()
}

func (c *GeneratorContext) emitWait(e models.ClassifiedRow) {
	_, d, ok := strings.Cut(e.Operator, "WAIT FOR ")
	d = strings.TrimSpace(stripVars(d))
	if !ok || d == "" {
		c.report(StructuralAnomaly, e.Row, "WAIT without a duration")
		c.em.Line("// WAITING TIME HAS NOT BEEN FOUND, PLEASE COMPARE WITH EXCEL PROCEDURE: " + oneLine(e.Operator))
		return
	}
	c.em.Line("wait for " + d + ";")
}
