package codegen

import (
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// rule pairs a predicate on a matrix entry with the emitter handling it.
type rule struct {
	name  string
	match func(*GeneratorContext, models.ClassifiedRow) bool
	emit  func(*GeneratorContext, models.ClassifiedRow)
}

// rules is evaluated in order; the first match wins.
var rules = []rule{
	{"section", isSection, (*GeneratorContext).emitSection},
	{"length group", inLength, (*GeneratorContext).emitLengthRow},
	{"declared variable", isDeclaredVariable, (*GeneratorContext).emitNothing},
	{"argument", isOpenArgument, (*GeneratorContext).emitArgument},
	{"send time tag", prefixExcept("SENDTIMETAG", "SENDTIMETAG_"), (*GeneratorContext).emitTimeTaggedSend},
	{"send time tag argument", hasPrefix("SENDTIMETAG_"), (*GeneratorContext).emitArgument},
	{"send and check", prefixExcept("SENDANDCHECKTCV", "SENDANDCHECKTCV_"), (*GeneratorContext).emitConfirmedSend},
	{"send and check argument", hasPrefix("SENDANDCHECKTCV_"), (*GeneratorContext).emitArgument},
	{"send", prefixExcept("SEND", "SEND_", "SENDANDCHECKTCV"), (*GeneratorContext).emitPlainSend},
	{"send argument", isExactly("SEND_"), (*GeneratorContext).emitArgument},
	{"check tm", hasPrefix("CHECKTM"), (*GeneratorContext).emitCheck},
	{"declare variables", hasPrefix("DECLAREVARIABLES"), (*GeneratorContext).emitNothing},
	{"select case", hasPrefix("SELECTCASE"), (*GeneratorContext).emitSelect},
	{"case", hasPrefix("CASE:"), (*GeneratorContext).emitCase},
	{"assignment", hasPrefix("$"), (*GeneratorContext).emitAssignment},
	{"case else", hasPrefix("CASEELSE"), (*GeneratorContext).emitCaseElse},
	{"end case", hasPrefix("ENDCASE"), (*GeneratorContext).emitEndCase},
	{"if", isIfCondition, (*GeneratorContext).emitIf},
	{"if in", isIfIn, (*GeneratorContext).emitIfIn},
	{"then", prefixExcept("THEN", "THENRETURN"), (*GeneratorContext).emitThen},
	{"else if", hasPrefix("ELSEIF"), (*GeneratorContext).emitElseIf},
	{"else", hasPrefix("ELSE"), (*GeneratorContext).emitElse},
	{"end if", hasPrefix("ENDIF"), (*GeneratorContext).emitEndIf},
	{"call procedure", hasPrefix("CALLPROCEDURE"), (*GeneratorContext).emitCallProcedure},
	{"execute in terminal", hasPrefix("EXECUTEINTERMINALONMCSMACHINE"), (*GeneratorContext).emitTerminal},
	{"call engineer", hasPrefix("CALLENGINEER"), (*GeneratorContext).emitCallEngineer},
	{"wait", hasPrefix("WAIT"), (*GeneratorContext).emitWait},
}

func isSection(_ *GeneratorContext, e models.ClassifiedRow) bool {
	return e.Role == models.NewOperationStep
}

// isOpenArgument matches a continuation of the send whose argument block is
// open, whatever the send's spelling.
func isOpenArgument(c *GeneratorContext, e models.ClassifiedRow) bool {
	f := c.top()
	return f != nil && f.kind == frameArgs && e.Operator == f.token
}

func hasPrefix(p string) func(*GeneratorContext, models.ClassifiedRow) bool {
	return func(_ *GeneratorContext, e models.ClassifiedRow) bool {
		return strings.HasPrefix(classify.Normalize(e.Operator), p)
	}
}

func isExactly(p string) func(*GeneratorContext, models.ClassifiedRow) bool {
	return func(_ *GeneratorContext, e models.ClassifiedRow) bool {
		return classify.Normalize(e.Operator) == p
	}
}

func prefixExcept(p string, excluded ...string) func(*GeneratorContext, models.ClassifiedRow) bool {
	return func(_ *GeneratorContext, e models.ClassifiedRow) bool {
		norm := classify.Normalize(e.Operator)
		if !strings.HasPrefix(norm, p) {
			return false
		}
		for _, x := range excluded {
			if strings.HasPrefix(norm, x) {
				return false
			}
		}
		return true
	}
}

func isDeclaredVariable(c *GeneratorContext, e models.ClassifiedRow) bool {
	return c.decls.Covers(e.Row)
}

func inLength(c *GeneratorContext, _ models.ClassifiedRow) bool {
	return c.topIs(frameLength)
}

func isIfCondition(_ *GeneratorContext, e models.ClassifiedRow) bool {
	norm := classify.Normalize(e.Operator)
	return strings.HasPrefix(norm, "IF") && !strings.HasSuffix(norm, "IN")
}

func isIfIn(_ *GeneratorContext, e models.ClassifiedRow) bool {
	norm := classify.Normalize(e.Operator)
	return strings.HasPrefix(norm, "IF") && strings.HasSuffix(norm, "IN")
}

func (c *GeneratorContext) emitNothing(models.ClassifiedRow) {}

// emitLengthRow skips a row already written with its length-prefixed group.
func (c *GeneratorContext) emitLengthRow(e models.ClassifiedRow) {
	if f := c.top(); e.Row >= f.lastRow {
		c.pop()
	}
}
