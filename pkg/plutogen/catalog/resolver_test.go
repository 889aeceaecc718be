package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlapTree(first, second Category) Tree {
	return Tree{
		Name:        "parameters",
		Placeholder: ParameterPlaceholder,
		Roots: []Root{{
			Name: "SSM",
			Families: []Family{{
				Name:  "Telecommands",
				Kinds: []Kind{{Name: "MIB_TCs", Categories: []Category{first, second}}},
			}},
		}},
	}
}

func TestResolveFirstDeclaredPrefixWins(t *testing.T) {
	generic := Category{Name: "NanomindTCs", Prefixes: []string{"M4A0"}}
	critical := Category{Name: "NanomindTCs_critical", Prefixes: []string{"M4A0B01b"}}

	tests := []struct {
		name     string
		tree     Tree
		category string
		prefix   string
	}{
		{"generic first", overlapTree(generic, critical), "NanomindTCs", "M4A0"},
		{"critical first", overlapTree(critical, generic), "NanomindTCs_critical", "M4A0B01b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResolver(tt.tree).Resolve("M4A0B01bSomething")
			require.True(t, res.Found)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.prefix, res.Prefix)
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	params := NewResolver(ParameterTree())

	tests := []struct {
		id        string
		qualified string
	}{
		{"F1E1SetMode", "F1E1SetMode of FBO of MIB_TCs of Telecommands of SSM"},
		{"M4A0B01bReset", "M4A0B01bReset of NanomindTCs_critical of MIB_TCs of Telecommands of SSM"},
		{"M4A0Ping", "M4A0Ping of NanomindTCs of MIB_TCs of Telecommands of SSM"},
		{"EPS_VBAT", "EPS_VBAT of EPS of MIB_TMs of Telemetry of SSM"},
		{"XYZ", "XYZ of not inside of SOME_TC_and_TM of not inside of not inside"},
		{"9ABC", "~9ABC of not inside of SOME_TC_and_TM of not inside of not inside"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.qualified, params.Resolve(tt.id).Qualified())
		})
	}

	procs := NewResolver(ProcedureTree())
	res := procs.Resolve("R_ADC_N210")
	assert.Equal(t, "R_ADC_N210 of ADC of Routine_nominal of Procedures of SSM", res.Qualified())

	miss := procs.Resolve("UNKNOWN_PROC")
	assert.False(t, miss.Found)
	assert.Equal(t, ProcedurePlaceholder, miss.Prefix)
	assert.Equal(t, ProcedurePlaceholder, miss.Kind)
	assert.Equal(t, NotInside, miss.Category)
}

func TestResolveIsPure(t *testing.T) {
	r := NewResolver(ParameterTree())
	for _, id := range []string{"M4B1708bX", "", "1", "cFlag", "nothing"} {
		first := r.Resolve(id)
		for i := 0; i < 10; i++ {
			if diff := cmp.Diff(first, r.Resolve(id)); diff != "" {
				t.Fatalf("Resolve(%q) changed between calls (-first +again):\n%s", id, diff)
			}
		}
	}
}

func TestNewResolverCopiesTree(t *testing.T) {
	tree := overlapTree(Category{Name: "A", Prefixes: []string{"AB"}}, Category{Name: "B", Prefixes: []string{"A"}})
	r := NewResolver(tree)

	tree.Roots[0].Families[0].Kinds[0].Categories[0].Prefixes[0] = "ZZ"

	assert.Equal(t, "A", r.Resolve("ABC").Category)
}

func TestEscapeIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1ABC", "~1ABC"},
		{"ABC1", "ABC1"},
		{"", ""},
		{"~1", "~1"},
	}
	for _, tt := range tests {
		if got := EscapeIdentifier(tt.input); got != tt.expected {
			t.Errorf("EscapeIdentifier(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestPrefixCount(t *testing.T) {
	assert.Equal(t, 60, ParameterTree().PrefixCount())
	assert.Greater(t, ProcedureTree().PrefixCount(), 100)
}
