package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShow_Text(t *testing.T) {
	out, _, err := runCmd(t, "show", "--bandwidth", "7MHz", "--cp", "1/16")
	require.NoError(t, err)

	assert.Contains(t, out, "1.142857")
	assert.Contains(t, out, "8 MHz (8000000 Hz)")
	assert.Contains(t, out, "31.25 kHz")
	assert.Contains(t, out, "34.000 µs")
	assert.Contains(t, out, "272")
}

func TestShow_YAML(t *testing.T) {
	out, _, err := runCmd(t, "show", "-b", "3MHz", "-g", "1/4", "-o", "yaml")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "3MHz@1/4", docs[0]["name"])
	assert.InDelta(t, 3440000.0, docs[0]["samplingFrequency"], 0)
	assert.InDelta(t, 13437.5, docs[0]["subcarrierSpacing"], 0)
}

func TestShow_InvalidInputs(t *testing.T) {
	_, _, err := runCmd(t, "show", "--bandwidth", "10MHz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bandwidth")

	_, _, err = runCmd(t, "show", "--cp", "1/2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cyclic prefix")

	_, _, err = runCmd(t, "show", "--bandwidth", "wide")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse bandwidth")
}

func TestRoot_InvalidFlags(t *testing.T) {
	_, _, err := runCmd(t, "show", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")

	_, _, err = runCmd(t, "show", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestTable_Text(t *testing.T) {
	out, _, err := runCmd(t, "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13, "header plus one row per profile")
	assert.Contains(t, lines[0], "Ts (µs)")
	assert.Contains(t, lines[1], "3.44 MHz")
	assert.Contains(t, lines[12], "33.000")
}

func TestTable_YAML(t *testing.T) {
	out, _, err := runCmd(t, "table", "-o", "yaml")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 12)
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	content := `profiles:
  - name: good
    bandwidth: 3.5MHz
    cyclicPrefix: 1/8
  - name: bad
    bandwidth: 10MHz
    cyclicPrefix: 1/8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, logs, err := runCmd(t, "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 profiles failed")

	assert.Contains(t, out, "Profile:")
	assert.Contains(t, out, "good")
	assert.NotContains(t, out, "bad")

	assert.Contains(t, logs, "skipping profile")
	assert.Contains(t, logs, "profile=bad")
}

func TestBatch_AllValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	content := "profiles:\n  - bandwidth: 7MHz\n    cyclicPrefix: 1/32\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, _, err := runCmd(t, "batch", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "7MHz@1/32")
	assert.Contains(t, out, "33.000 µs")
}

func TestBatch_MissingFile(t *testing.T) {
	_, _, err := runCmd(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open batch file")
}

func TestNormalizeFlagName(t *testing.T) {
	tests := map[string]string{
		"bandwidth":     "bandwidth",
		"bw":            "bandwidth",
		"cyclic-prefix": "cp",
		"cyclic_prefix": "cp",
		"Output":        "format",
		"log_level":     "log-level",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, string(normalizeFlagName(nil, input)), "input %q", input)
	}
}

func TestShow_FlagAliases(t *testing.T) {
	out, _, err := runCmd(t, "show", "--bw", "3.5MHz", "--cyclic-prefix", "1/4", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "samplingFrequency: 4e+06")
}
