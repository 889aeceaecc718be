package dyn2dat

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "MISC context export\n" +
	"### Battery voltage\n" +
	"# measured at the bus\n" +
	"BATV\t1\t0\n" +
	"# ignored, no block open\n" +
	"TEMP\t2\n" +
	"###\n" +
	"# =========\n" +
	"SEP\t3\n" +
	"\n"

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Name: "BATV", Description: "Battery voltage measured at the bus"},
		{Name: "TEMP", Description: ""},
		{Name: "SEP", Description: ""},
	}, entries)
}

func TestParseSkipsHeaderOnly(t *testing.T) {
	entries, err := Parse(strings.NewReader("BATV\t1\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []Entry{{"BATV", "Battery voltage"}, {"TEMP", ""}}))
	assert.Equal(t, "BATV\tBattery voltage\nTEMP\t\n", buf.String())
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "MISCcontext.dyn")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o644))

	out := OutputPath(in)
	assert.Equal(t, filepath.Join(dir, "MISCcontext.dat"), out)

	n, err := Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BATV\tBattery voltage measured at the bus\n"))
}

func TestConvertMissingInput(t *testing.T) {
	_, err := Convert(filepath.Join(t.TempDir(), "missing.dyn"), "unused.dat")
	assert.Error(t, err)
}
