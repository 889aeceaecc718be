package plutogen

import (
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/postproc"
)

const banner = "////////////////////////////////////////////////////////////////////////////////////////\n"

// emptyCell stands in for an empty front-page cell so the columns line up.
const emptyCell = "\t\t\t\t\t"

// Header renders the documentation header: generation banner, the front page
// as comments and the start-of-code marker.
func Header(proc *models.Procedure, at time.Time) string {
	var b strings.Builder
	b.WriteString(banner)
	fmt.Fprintf(&b, "// Date for Base Code auto-generation: %s\n", at.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "// Source: %s\n", proc.Source)
	b.WriteString("//\n")
	b.WriteString("// Last manually edited at: None\n")
	b.WriteString("// Last manually edited by: None\n")
	b.WriteString("//\n")
	b.WriteString("// Last tested and validated at: None\n")
	b.WriteString("// Last tested and validated by: None\n")
	b.WriteString("//\n")
	b.WriteString("// DISCLAIMER: The generated code may contain wrong syntax for some cases,\n")
	b.WriteString("//             so double-check it against the spreadsheet procedure.\n")
	b.WriteString(banner)
	b.WriteString(banner)

	var front strings.Builder
	for _, line := range proc.FrontPage.Lines {
		front.WriteString("//")
		for _, cell := range line {
			if cell == "" {
				front.WriteString(emptyCell)
				continue
			}
			front.WriteString(cell)
		}
		front.WriteByte('\n')
	}
	b.WriteString(postproc.CommentStray(front.String()))

	b.WriteString(banner)
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("// START OF PROCEDURE CODE\n")
	b.WriteString(banner)
	return b.String()
}

// MatrixComment renders the identifier matrix as trailing comments.
func MatrixComment(sheet *models.Sheet, matrix models.Matrix) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("// IDENTIFIER MATRIX\n")
	for _, e := range matrix {
		r, _ := sheet.Row(e.Row)
		fmt.Fprintf(&b, "// %d\t%s\t%s\t%s\n", e.Row, e.Role, oneLine(e.Operator), oneLine(r.ID))
	}
	b.WriteString(banner)
	return b.String()
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
