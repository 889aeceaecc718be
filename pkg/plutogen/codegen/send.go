package codegen

import (
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

func (c *GeneratorContext) emitPlainSend(e models.ClassifiedRow) {
	c.emitSend(e, false, true)
}

func (c *GeneratorContext) emitTimeTaggedSend(e models.ClassifiedRow) {
	c.emitSend(e, false, true)
}

func (c *GeneratorContext) emitConfirmedSend(e models.ClassifiedRow) {
	c.emitSend(e, true, false)
}

// emitSend writes a telecommand send. When the following entries continue
// the send, its header is written and an argument frame is left open for
// them. Otherwise the send is complete in one statement.
func (c *GeneratorContext) emitSend(e models.ClassifiedRow, confirm, wait bool) {
	v := c.cells(e)
	res := c.resolveParameter(v.RawID, e.Row)

	header := "initiate "
	if confirm {
		header = "initiate and confirm "
	}
	header += res.Qualified()
	comment := ""
	if v.Description != "" {
		comment = "\t\t\t//" + oneLine(v.Description)
	}

	token := e.Operator + classify.ContinuationMarker
	cont := c.continuation(token)
	if len(cont) > 0 {
		c.em.Line(header + comment)
		c.em.Indent()
		if confirm && hasLengthRow(c, cont) {
			c.emitLengthGroup(e, cont, wait)
			return
		}
		c.push(frame{kind: frameArgs, row: e.Row, token: token, wait: wait})
		return
	}

	if dirs := c.directivesAfter(e.Row); len(dirs) > 0 {
		c.em.Line(header + comment)
		c.em.Indent()
		c.writeDirectives(dirs)
		c.em.Dedent()
	} else {
		c.em.Line(header + ";" + comment)
	}
	if wait {
		c.writeSendWait()
	}
}

// continuation returns the entries directly after the cursor whose token is
// token.
func (c *GeneratorContext) continuation(token string) []models.ClassifiedRow {
	var out []models.ClassifiedRow
	for i := c.cursor + 1; i < len(c.matrix) && c.matrix[i].Operator == token; i++ {
		out = append(out, c.matrix[i])
	}
	return out
}

func hasLengthRow(c *GeneratorContext, entries []models.ClassifiedRow) bool {
	for _, e := range entries {
		if strings.HasPrefix(classify.Normalize(c.row(e.Row).Operation), "LEN") {
			return true
		}
	}
	return false
}

// emitLengthGroup writes every argument of a length-prefixed group at once
// and leaves a length frame so the generator skips those rows.
func (c *GeneratorContext) emitLengthGroup(e models.ClassifiedRow, cont []models.ClassifiedRow, wait bool) {
	c.em.Line("with arguments")
	c.em.Indent()
	for i, a := range cont {
		c.writeArgument(c.cells(a), i < len(cont)-1)
	}
	last := cont[len(cont)-1].Row
	c.finishArguments(last, wait)
	c.push(frame{kind: frameLength, row: e.Row, lastRow: last})
}

// emitArgument writes one argument of the open send, closing the block after
// the last one.
func (c *GeneratorContext) emitArgument(e models.ClassifiedRow) {
	f := c.top()
	if f == nil || f.kind != frameArgs || e.Operator != f.token {
		c.report(StructuralAnomaly, e.Row, "argument row without a send")
		c.bufferUnknown(e, "orphan argument")
		return
	}
	if !f.opened {
		c.em.Line("with arguments")
		c.em.Indent()
		f.opened = true
	}

	next, ok := c.next()
	more := ok && next.Operator == f.token
	c.writeArgument(c.cells(e), more)
	if more {
		return
	}
	wait := f.wait
	c.pop()
	c.finishArguments(e.Row, wait)
}

// finishArguments closes an argument block whose last row is lastRow,
// adding the directives that follow it.
func (c *GeneratorContext) finishArguments(lastRow int, wait bool) {
	c.em.Dedent()
	if dirs := c.directivesAfter(lastRow); len(dirs) > 0 {
		c.em.Line("end with")
		c.writeDirectives(dirs)
	} else {
		c.em.Line("end with;")
	}
	c.em.Dedent()
	if wait {
		c.writeSendWait()
	}
}

func (c *GeneratorContext) writeArgument(v cells, more bool) {
	comma := ""
	if more {
		comma = ","
	}
	typ := v.Type.PlutoName()

	var line string
	switch {
	case v.Eng != "":
		line = v.ID + " := " + stripVars(v.Eng) + comma
		if v.Raw != "" {
			line += "\t\t//RAW: " + stripVars(v.Raw) + "\t//TYPE: " + typ
		} else {
			line += "\t\t//TYPE: " + typ
		}
	case v.Type == models.TypeBoolean:
		var val string
		switch {
		case v.Raw == "TRUE":
			val = `"1"`
		case v.Raw == "FALSE":
			val = `"0"`
		case strings.HasPrefix(v.Raw, "$"):
			val = stripVars(v.Raw)
		default:
			val = "NotTRUEorFALSE"
		}
		line = stripVars(v.ID) + " := " + val + comma + "\t\t//TYPE: " + typ + "\t\t//DESCRIPTION: " + oneLine(v.Description)
	default:
		line = "raw value of " + stripVars(v.ID) + " := " + stripVars(v.Raw) + comma +
			"\t\t//TYPE: " + typ + "\t\t//DESCRIPTION: " + oneLine(v.Description)
	}
	c.em.Line(line)
}

func (c *GeneratorContext) writeSendWait() {
	c.em.Line("wait for " + c.gen.settings.SendWait + ";")
}

// directivesAfter collects the directive rows following row n: rows with no
// identifier and a description.
func (c *GeneratorContext) directivesAfter(n int) []string {
	var out []string
	for i := n + 1; ; i++ {
		r, ok := c.sheet.Row(i)
		if !ok || r.HasID() || r.Description == "" {
			return out
		}
		out = append(out, directive(r))
	}
}

func directive(r models.Row) string {
	when := strings.ReplaceAll(stripVars(r.Raw), "NOW", "current_time()")
	switch key := classify.Normalize(strings.ToUpper(r.Description)); {
	case strings.HasPrefix(key, "DYNAMICPTVOVERRIDE"):
		return `dynamic_ptv := "overridden"`
	case strings.HasPrefix(key, "STATICPTVOVERRIDE"):
		return `static_ptv := "overridden"`
	case strings.HasPrefix(key, "EXECUTIONTIME"):
		return "execution_time := " + when
	case strings.HasPrefix(key, "RELEASETIME"):
		return "release_time := " + when
	case strings.HasPrefix(key, "CEVDISABLE"):
		return `execution_verification := "disabled"`
	default:
		return "//COMMAND HAS NOT YET BEEN DEFINED; Original = " + oneLine(r.Description)
	}
}

func (c *GeneratorContext) writeDirectives(dirs []string) {
	c.em.Line("with directives")
	c.em.Indent()
	for i, d := range dirs {
		if i < len(dirs)-1 && !strings.HasPrefix(d, "//") {
			d += ","
		}
		c.em.Line(d)
	}
	c.em.Dedent()
	c.em.Line("end with;")
}
