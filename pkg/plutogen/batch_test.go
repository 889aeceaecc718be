package plutogen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// buildTree lays out one valid workbook, one without boundaries and one in
// an "old" folder.
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeWorkbook(t, filepath.Join(root, "ADCS", "R-ADC-N210_Activate_idle.xlsx"), validProcedure, []int{2, 4})
	writeWorkbook(t, filepath.Join(root, "EPS", "R-EPS-N001_Broken.xlsx"), validProcedure, nil)
	writeWorkbook(t, filepath.Join(root, "ADCS", "old", "R-ADC-N100_Superseded.xlsx"), validProcedure, []int{2, 4})
	return root
}

func TestConvertTree(t *testing.T) {
	in := buildTree(t)
	out := t.TempDir()

	opts := DefaultOptions()
	opts.Config.Workers = 2
	opts.Manifests = true

	report, err := ConvertTree(context.Background(), in, out, opts)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, filepath.Join("ADCS", "R-ADC-N210_Activate_idle.xlsx"), report.Files[0].Source)
	assert.Equal(t, filepath.Join("EPS", "R-EPS-N001_Broken.xlsx"), report.Files[1].Source)
	assert.Equal(t, 1, report.Failed())

	ok := report.Files[0]
	require.NoError(t, ok.Err)
	assert.Equal(t, filepath.Join(out, "ADCS", "R_ADC_N210.pluto"), ok.Output)
	text, err := os.ReadFile(ok.Output)
	require.NoError(t, err)
	assert.Contains(t, string(text), "initiate F1E1Cmd of FBO")

	bad := report.Files[1]
	assert.ErrorIs(t, bad.Err, ErrNoBoundaries)
	assert.Empty(t, bad.Output)
	assert.NoFileExists(t, filepath.Join(out, "EPS", "R_EPS_N001.pluto"))

	// failed conversions still get their manifest entry
	require.Equal(t, []string{
		filepath.Join(out, "ADCS", "ADCS.se.xml"),
		filepath.Join(out, "EPS", "EPS.se.xml"),
	}, report.Manifests)
	xml, err := os.ReadFile(report.Manifests[0])
	require.NoError(t, err)
	assert.Contains(t, string(xml), "R_ADC_N210")
	assert.Contains(t, string(xml), "MODE")
	assert.NotContains(t, string(xml), "R_ADC_N100")
}

func TestConvertTreeCanceled(t *testing.T) {
	in := buildTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := ConvertTree(ctx, in, t.TempDir(), DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	for _, f := range report.Files {
		assert.ErrorIs(t, f.Err, context.Canceled)
	}
}

func TestConvertTreeMissingRoot(t *testing.T) {
	_, err := ConvertTree(context.Background(), filepath.Join(t.TempDir(), "none"), t.TempDir(), DefaultOptions())
	assert.Error(t, err)
}

func TestWriteManifests(t *testing.T) {
	in := t.TempDir()
	writeWorkbook(t, filepath.Join(in, "R-ADC-N210_Activate_idle.xlsx"), validProcedure, []int{2, 4})
	out := t.TempDir()

	paths, err := WriteManifests(in, out, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(out, filepath.Base(in)+".se.xml"), paths[0])
	assert.FileExists(t, paths[0])
}
