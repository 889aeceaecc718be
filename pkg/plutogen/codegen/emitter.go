package codegen

import (
	"fmt"
	"strings"
)

// Emitter writes tab-indented lines into a buffer.
type Emitter struct {
	buf   strings.Builder
	depth int
}

// Indent opens one nesting level.
func (e *Emitter) Indent() {
	e.depth++
}

// Dedent closes one nesting level. Depth never goes below zero.
func (e *Emitter) Dedent() {
	if e.depth > 0 {
		e.depth--
	}
}

// Depth returns the current nesting level.
func (e *Emitter) Depth() int {
	return e.depth
}

// Line writes s at the current depth followed by a newline.
func (e *Emitter) Line(s string) {
	e.buf.WriteString(strings.Repeat("\t", e.depth))
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

// Linef formats and writes one line at the current depth.
func (e *Emitter) Linef(format string, args ...any) {
	e.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (e *Emitter) Blank() {
	e.buf.WriteByte('\n')
}

// Raw writes s verbatim, ignoring depth.
func (e *Emitter) Raw(s string) {
	e.buf.WriteString(s)
}

// String returns everything written so far.
func (e *Emitter) String() string {
	return e.buf.String()
}
