// Package codegen turns a classified procedure sheet into procedure-language
// source text.
package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/classify"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/config"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
	"go.uber.org/zap"
)

// ErrEmptyMatrix is returned when there is nothing to generate from.
var ErrEmptyMatrix = errors.New("empty identifier matrix")

// Settings holds the site-specific values written into generated code.
type Settings struct {
	// SendWait is the pause after every plain send, e.g. "0.5s".
	SendWait     string
	Engineer     config.EngineerConfig
	TerminalPath string
}

// SettingsFromConfig extracts the generator settings from cfg.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		SendWait:     cfg.SendWait,
		Engineer:     cfg.Engineer,
		TerminalPath: cfg.Terminal.Path,
	}
}

// DefaultSettings returns the settings of the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// Generator emits procedure-language code. It is safe for concurrent use:
// every Generate call works on its own context.
type Generator struct {
	params     *catalog.Resolver
	procedures *catalog.Resolver
	settings   Settings
	logger     *zap.Logger
}

// New creates a Generator. A nil logger disables logging.
func New(params, procedures *catalog.Resolver, settings Settings, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		params:     params,
		procedures: procedures,
		settings:   settings,
		logger:     logger,
	}
}

// Result is the output of one Generate call.
type Result struct {
	// Text is the procedure body from "procedure" to "end procedure".
	Text string
	// Declared lists the variables of the declare block.
	Declared    []string
	Diagnostics []Diagnostic
}

// Generate emits the procedure for proc using its identifier matrix.
func (g *Generator) Generate(proc *models.Procedure, matrix models.Matrix) (*Result, error) {
	if proc == nil || proc.Sheet == nil {
		return nil, errors.New("procedure has no sheet")
	}
	if len(matrix) == 0 {
		return nil, ErrEmptyMatrix
	}

	ctx := &GeneratorContext{
		gen:    g,
		em:     &Emitter{},
		proc:   proc,
		sheet:  proc.Sheet,
		matrix: matrix,
		logger: g.logger.With(zap.String("file", proc.Source)),
	}

	ctx.em.Line("procedure")
	ctx.em.Indent()
	ctx.push(frame{kind: frameProcedure})
	ctx.em.Line("initiate and confirm step " +
		SanitizeIdentifier(proc.FrontPage.ID) + "_" + SanitizeIdentifier(proc.FrontPage.Title))
	ctx.em.Indent()
	ctx.push(frame{kind: frameStep})

	decls, diags := CollectDeclarations(matrix, proc.Sheet)
	ctx.decls = decls
	for _, d := range diags {
		ctx.report(d.Kind, d.Row, d.Message)
	}
	decls.Write(ctx.em)

	for ctx.cursor = 0; ctx.cursor < len(matrix); ctx.cursor++ {
		ctx.dispatch(matrix[ctx.cursor])
	}
	ctx.flushUnknown()
	ctx.finish()

	return &Result{
		Text:        ctx.em.String(),
		Declared:    decls.Names(),
		Diagnostics: ctx.diags,
	}, nil
}

// GeneratorContext is the mutable state of one Generate call.
type GeneratorContext struct {
	gen     *Generator
	em      *Emitter
	proc    *models.Procedure
	sheet   *models.Sheet
	matrix  models.Matrix
	cursor  int
	frames  []frame
	decls   *Declarations
	unknown []string
	diags   []Diagnostic
	logger  *zap.Logger
}

// State returns the generator state implied by the innermost open frame.
func (c *GeneratorContext) State() State {
	if len(c.frames) == 0 {
		return StateTop
	}
	return c.frames[len(c.frames)-1].state()
}

func (c *GeneratorContext) push(f frame) {
	c.frames = append(c.frames, f)
}

func (c *GeneratorContext) pop() {
	if len(c.frames) > 0 {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

func (c *GeneratorContext) top() *frame {
	if len(c.frames) == 0 {
		return nil
	}
	return &c.frames[len(c.frames)-1]
}

func (c *GeneratorContext) topIs(kind frameKind) bool {
	f := c.top()
	return f != nil && f.kind == kind
}

// entry returns the matrix entry at index i.
func (c *GeneratorContext) entry(i int) (models.ClassifiedRow, bool) {
	if i < 0 || i >= len(c.matrix) {
		return models.ClassifiedRow{}, false
	}
	return c.matrix[i], true
}

func (c *GeneratorContext) next() (models.ClassifiedRow, bool) {
	return c.entry(c.cursor + 1)
}

func (c *GeneratorContext) row(n int) models.Row {
	r, _ := c.sheet.Row(n)
	return r
}

func (c *GeneratorContext) cells(e models.ClassifiedRow) cells {
	return readCells(c.row(e.Row))
}

func (c *GeneratorContext) report(kind DiagnosticKind, row int, msg string) {
	c.diags = append(c.diags, Diagnostic{Kind: kind, Row: row, Message: msg})
	fields := []zap.Field{zap.Int("row", row), zap.Stringer("kind", kind)}
	if kind == UnrecognizedOperator {
		c.logger.Debug(msg, fields...)
		return
	}
	c.logger.Warn(msg, fields...)
}

// resolveParameter looks id up in the parameter catalog, reporting misses.
func (c *GeneratorContext) resolveParameter(id string, row int) catalog.Resolution {
	res := c.gen.params.Resolve(id)
	if !res.Found {
		c.report(CatalogMiss, row, fmt.Sprintf("identifier %q is not in the %s catalog", id, catalog.ParameterPlaceholder))
	}
	return res
}

func (c *GeneratorContext) dispatch(e models.ClassifiedRow) {
	for _, r := range rules {
		if r.match(c, e) {
			c.logger.Debug("dispatch",
				zap.Int("row", e.Row),
				zap.String("rule", r.name),
				zap.Stringer("state", c.State()))
			r.emit(c, e)
			return
		}
	}
	c.bufferUnknown(e, "unrecognized operator")
}

// closeFrame closes the innermost frame, writing whatever its block needs.
func (c *GeneratorContext) closeFrame() {
	f := c.top()
	if f == nil {
		return
	}
	switch f.kind {
	case frameIf:
		c.em.Dedent()
		c.em.Line("end if;")
	case frameSelect:
		c.em.Dedent()
		if f.cases > 0 {
			c.em.Dedent()
		}
		c.em.Line("end case;")
	case frameArgs:
		if f.opened {
			c.em.Dedent()
			c.em.Line("end with;")
		} else {
			c.em.Line(";")
		}
		c.em.Dedent()
	case frameStep:
		c.em.Dedent()
		c.em.Line("end step;")
	case frameProcedure:
		c.em.Dedent()
		c.em.Line("end procedure")
	}
	c.pop()
}

// closeDangling closes every frame above the innermost step, reporting each.
func (c *GeneratorContext) closeDangling(row int) {
	for {
		f := c.top()
		if f == nil || f.kind == frameStep || f.kind == frameProcedure {
			return
		}
		if f.kind != frameLength {
			c.report(StructuralAnomaly, row, fmt.Sprintf("%s opened at row %d was never closed", f.describe(), f.row))
		}
		c.closeFrame()
	}
}

// closeUntil closes frames down to the innermost one of kind, without
// closing that frame. It reports false and closes nothing when no such frame
// is open in the current step.
func (c *GeneratorContext) closeUntil(kind frameKind, row int) bool {
	found := false
	for i := len(c.frames) - 1; i >= 0; i-- {
		k := c.frames[i].kind
		if k == kind {
			found = true
			break
		}
		if k == frameStep || k == frameProcedure {
			break
		}
	}
	if !found {
		return false
	}
	for !c.topIs(kind) {
		f := c.top()
		c.report(StructuralAnomaly, row, fmt.Sprintf("%s opened at row %d was never closed", f.describe(), f.row))
		c.closeFrame()
	}
	return true
}

func (c *GeneratorContext) finish() {
	last := c.matrix[len(c.matrix)-1].Row
	c.closeDangling(last)
	for len(c.frames) > 0 {
		f := c.top()
		if f.kind == frameStep && f.section {
			c.report(StructuralAnomaly, last, fmt.Sprintf("step opened at row %d was never closed", f.row))
		}
		c.closeFrame()
	}
}

// emitSection closes the previous operation section and opens the next one.
// The trailing marker only closes.
func (c *GeneratorContext) emitSection(e models.ClassifiedRow) {
	c.closeDangling(e.Row)
	if f := c.top(); f != nil && f.kind == frameStep && f.section {
		c.closeFrame()
	}

	row := c.row(e.Row)
	c.em.Blank()
	c.em.Linef("// STEP: %s, OPERATION: %s", oneLine(row.Step), oneLine(row.Operation))
	if c.cursor == len(c.matrix)-1 {
		return
	}
	c.em.Line("initiate and confirm step " + SanitizeIdentifier(row.Operation))
	c.em.Indent()
	c.push(frame{kind: frameStep, row: e.Row, section: true})
}

// bufferUnknown keeps a row the generator cannot translate as a comment line.
func (c *GeneratorContext) bufferUnknown(e models.ClassifiedRow, reason string) {
	v := c.cells(e)
	line := fmt.Sprintf("// STEP: %s; OPERATION: %s; ID: %s; DESCRIPTION: %s; TYPE: %s; RAW: %s; ENG: %s; UNIT: %s",
		v.Step, v.Operation, v.ID, v.Description, v.Type.PlutoName(), v.Raw, v.Eng, v.Unit)
	c.unknown = append(c.unknown, oneLine(line))
	c.report(UnrecognizedOperator, e.Row, reason+": "+oneLine(e.Operator))

	next, ok := c.next()
	if !ok || next.Role == models.NewOperationStep || classify.IsKnown(next.Operator) {
		c.flushUnknown()
	}
}

func (c *GeneratorContext) flushUnknown() {
	if len(c.unknown) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("\n//////////////////////////////////////\n")
	b.WriteString("// TODO: UNIDENTIFIED COMMENT(S)\n")
	for _, l := range c.unknown {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("// END UNIDENTIFIED COMMENT(S)\n")
	b.WriteString("//////////////////////////////////////\n\n")
	c.em.Raw(b.String())
	c.unknown = c.unknown[:0]
}

// unmatched writes a comment for a block keyword with no opener.
func (c *GeneratorContext) unmatched(e models.ClassifiedRow, what string) {
	c.report(StructuralAnomaly, e.Row, what+" without a matching opener")
	c.em.Linef("// %s WITHOUT MATCHING OPENER: %s", strings.ToUpper(what), oneLine(e.Operator))
}
