package manifest

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/plutogen-go/pkg/plutogen/models"
)

func TestProcedureName(t *testing.T) {
	tests := []struct {
		file, name, description string
	}{
		{"R-ADC-N210_Activate_ADCS_idle.xlsx", "R_ADC_N210", "Activate ADCS idle"},
		{"dir/R-EPS-N001_Check.xlsx", "R_EPS_N001", "Check"},
		{"NOUNDERSCORE.xlsx", "NOUNDERSCORE", ""},
	}
	for _, tt := range tests {
		name, desc := ProcedureName(tt.file)
		assert.Equal(t, tt.name, name, tt.file)
		assert.Equal(t, tt.description, desc, tt.file)
	}
}

func TestEncode(t *testing.T) {
	m := New()
	m.Add(NewObject("R-ADC-N210_Activate_<idle>.xlsx", []models.Parameter{
		{ID: "MODE", Description: "target \"mode\"", Type: "U8"},
		{ID: "NOTE", Description: "free text", Type: ""},
	}))

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, Header+"<LocalSystemElement SchemaVersion=\"1.0\">\n\t<SEObject Name=\"R_ADC_N210\">"))
	assert.Contains(t, out, `Description="Activate &lt;idle&gt;"`)
	assert.Contains(t, out, `EstimatedDuration="000:00:05:00.000" ValidationState="draft"`)
	assert.Contains(t, out, `Constraints="" Objectives="" Preconditions="" Postconditions=""`)
	assert.Contains(t, out, `<Scalar Type="unsignedInteger">`)
	assert.Contains(t, out, `<Scalar Type="string">`)

	var decoded LocalSystemElement
	require.NoError(t, xml.Unmarshal([]byte(strings.TrimPrefix(out, Header)), &decoded))
	require.Len(t, decoded.Objects, 1)
	args := decoded.Objects[0].Activity.Arguments
	require.Len(t, args, 2)
	assert.Equal(t, `target "mode"`, args[0].Description)
}

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated", "ADCS")
	m := New()
	m.Add(NewObject("R-ADC-N210_Activate.xlsx", nil))

	path, err := m.WriteFile(out, "Excel/ADCS")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "ADCS.se.xml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<SEObject Name="R_ADC_N210">`)
}
