package codegen

import (
	"testing"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

func TestQuoteEng(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"ON", `"ON"`},
		{"5", "5"},
		{"-2.5", "-2.5"},
		{"0x1F", "0x1F"},
		{"$MODE", "$MODE"},
		{"[0, 5]", "[0, 5]"},
		{"{1, 2}", "{1, 2}"},
		{">3", ">3"},
		{"@$X", "@$X"},
		{`"IDLE"`, `"IDLE"`},
	}
	for _, tt := range tests {
		if got := quoteEng(tt.in); got != tt.expected {
			t.Errorf("quoteEng(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNormalizeRaw(t *testing.T) {
	tests := []struct {
		typ      models.ValueType
		raw, eng string
		expected string
	}{
		{models.TypeBoolean, "", "", "FALSE"},
		{models.TypeBoolean, "false", "", "FALSE"},
		{models.TypeBoolean, "0", "", "FALSE"},
		{models.TypeBoolean, "1", "", "TRUE"},
		{models.TypeBoolean, "yes", "", "TRUE"},
		{models.TypeBoolean, "$FLAG", "", "$FLAG"},
		{models.TypeBoolean, "", "@$FLAG", ""},
		{models.TypeUnsignedInteger, "0", "", "0"},
	}
	for _, tt := range tests {
		if got := normalizeRaw(tt.typ, tt.raw, tt.eng); got != tt.expected {
			t.Errorf("normalizeRaw(%v, %q, %q) = %q, expected %q", tt.typ, tt.raw, tt.eng, got, tt.expected)
		}
	}
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"X = 1", "X := 1"},
		{"X := 1", "X := 1"},
		{"X == 1", "X == 1"},
		{"X = Y = 2", "X := Y = 2"},
		{"X >= 1", "X >= 1"},
		{"no equals", "no equals"},
	}
	for _, tt := range tests {
		if got := assignment(tt.in); got != tt.expected {
			t.Errorf("assignment(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"R-ADC-N210", "R_ADC_N210"},
		{"Switch on (nominal): EPS/OBC", "Switch_on_nominal_EPS_OBC"},
		{"A+B, $C", "APLUSB_C"},
		{"  padded ", "padded"},
	}
	for _, tt := range tests {
		if got := SanitizeIdentifier(tt.in); got != tt.expected {
			t.Errorf("SanitizeIdentifier(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestEmitterIndentation(t *testing.T) {
	var em Emitter
	em.Line("a")
	em.Indent()
	em.Linef("b%d", 1)
	em.Dedent()
	em.Dedent()
	em.Line("c")
	em.Raw("raw\n")

	expected := "a\n\tb1\nc\nraw\n"
	if em.String() != expected {
		t.Errorf("Emitter output = %q, expected %q", em.String(), expected)
	}
	if em.Depth() != 0 {
		t.Errorf("Depth() = %d, expected 0", em.Depth())
	}
}
