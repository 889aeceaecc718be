package classify

import "strings"

// Vocabulary lists the operator prefixes, without spaces, that the code
// generator understands.
var Vocabulary = []string{
	"SEND",
	"SEND_",
	"SENDTIMETAG",
	"SENDTIMETAG_",
	"SENDANDCHECKTCV",
	"SENDANDCHECKTCV_",
	"CHECKTM",
	"CHECKTM_",
	"DECLAREVARIABLES",
	"SELECTCASE",
	"CASE:",
	"$",
	"CASEELSE",
	"ENDCASE",
	"IF",
	"ELSEIF",
	"ELSE",
	"THEN",
	"ENDIF",
	"CALLPROCEDURE",
	"THENRETURN",
	"EXECUTEINTERMINALONMCSMACHINE",
	"CALLENGINEER",
	"WAIT",
}

// Normalize removes all spaces from an operator token.
func Normalize(token string) string {
	return strings.ReplaceAll(token, " ", "")
}

// IsKnown reports whether token starts with a vocabulary entry, ignoring spaces.
func IsKnown(token string) bool {
	norm := Normalize(token)
	if norm == "" {
		return false
	}
	for _, op := range Vocabulary {
		if strings.HasPrefix(norm, op) {
			return true
		}
	}
	return false
}
