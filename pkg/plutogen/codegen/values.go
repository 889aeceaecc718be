package codegen

import (
	"strconv"
	"strings"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/catalog"
	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

// cells is a sheet row with its values normalised for emission.
type cells struct {
	Step        string
	Operation   string
	RawID       string
	ID          string // escaped
	Description string
	Type        models.ValueType
	Raw         string
	Eng         string
	Unit        string
}

func readCells(row models.Row) cells {
	typ := models.ParseValueType(row.Type)
	return cells{
		Step:        row.Step,
		Operation:   row.Operation,
		RawID:       row.ID,
		ID:          catalog.EscapeIdentifier(row.ID),
		Description: row.Description,
		Type:        typ,
		Raw:         normalizeRaw(typ, row.Raw, row.Eng),
		Eng:         quoteEng(row.Eng),
		Unit:        row.Unit,
	}
}

// normalizeRaw folds boolean raw values to TRUE or FALSE unless they refer to
// a variable.
func normalizeRaw(typ models.ValueType, raw, eng string) string {
	if typ != models.TypeBoolean || strings.Contains(raw, "$") || strings.Contains(eng, "@$") {
		return raw
	}
	switch strings.ToUpper(raw) {
	case "", "FALSE", "0":
		return "FALSE"
	default:
		return "TRUE"
	}
}

// quoteEng wraps an engineering value in double quotes unless it is numeric,
// a variable reference, a range, an enumeration, a comparison, a binding or
// already quoted.
func quoteEng(v string) string {
	if v == "" || strings.Contains(v, "$") || isNumber(v) || strings.ContainsAny(v[:1], "[{<>@") {
		return v
	}
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v
	}
	return `"` + v + `"`
}

func isNumber(v string) bool {
	if _, err := strconv.ParseInt(v, 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func stripVars(s string) string {
	return strings.ReplaceAll(s, "$", "")
}

// oneLine replaces line breaks so a cell fits in a single comment line.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// literal makes s safe inside a double-quoted string.
func literal(s string) string {
	return strings.ReplaceAll(oneLine(s), `"`, "'")
}

var identifierReplacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"\\", "_",
	"/", "_",
	"\n", "_",
	"(", "",
	")", "",
	":", "",
	";", "",
	",", "",
	"$", "",
	"+", "PLUS",
)

// SanitizeIdentifier turns free text such as an operation title into a
// step name.
func SanitizeIdentifier(s string) string {
	return identifierReplacer.Replace(strings.TrimSpace(s))
}

// assignment converts the first standalone "=" of s into ":=". Comparison
// operators and existing assignments are left alone.
func assignment(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != '=' {
			continue
		}
		if i > 0 && strings.ContainsRune(":<>!=", rune(s[i-1])) {
			if s[i-1] == ':' {
				return s
			}
			continue
		}
		if i+1 < len(s) && s[i+1] == '=' {
			i++
			continue
		}
		return s[:i] + ":=" + s[i+1:]
	}
	return s
}

// condition rewrites a sheet comparison into the procedure language.
func condition(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(stripVars(s), "==", "="))
}

// between returns the text after the first occurrence of open and before the
// last occurrence of closeTok. ok is false when either is missing.
func between(s, open, closeTok string) (string, bool) {
	i := strings.Index(s, open)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(open):]
	j := strings.LastIndex(rest, closeTok)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// after returns the text following the first occurrence of sep, or s when
// sep does not occur.
func after(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}
