package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns its output.
// A --config pointing into an empty temp dir keeps the test independent
// of any config file on the host.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.toml")))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// TestConvertCmd_KilopoundToNewton tests the worked conversion end to end.
func TestConvertCmd_KilopoundToNewton(t *testing.T) {
	out, err := runCLI(t, "convert", "1", "--dim", "force", "--from", "kilopound", "--to", "newton")

	require.NoError(t, err)
	assert.Contains(t, out, "4448.221615 N")
}

// TestConvertCmd_DefaultDimension tests that --dim falls back to the
// configured default (force).
func TestConvertCmd_DefaultDimension(t *testing.T) {
	out, err := runCLI(t, "convert", "10", "--dim", "", "--from", "newton", "--to", "newton")

	require.NoError(t, err)
	assert.Contains(t, out, "10.000000 N")
}

// TestConvertCmd_MassUnits tests a mass conversion.
func TestConvertCmd_MassUnits(t *testing.T) {
	out, err := runCLI(t, "convert", "2", "--dim", "mass", "--from", "tonne", "--to", "kilogram")

	require.NoError(t, err)
	assert.Contains(t, out, "2000.000000 kg")
}

// TestConvertCmd_InvalidValue tests rejection of a non-numeric value.
func TestConvertCmd_InvalidValue(t *testing.T) {
	_, err := runCLI(t, "convert", "abc", "--dim", "force", "--from", "newton", "--to", "newton")

	assert.Error(t, err)
}

// TestConvertCmd_UnknownDimension tests the sentinel error surfaces.
func TestConvertCmd_UnknownDimension(t *testing.T) {
	_, err := runCLI(t, "convert", "1", "--dim", "charge", "--from", "coulomb", "--to", "coulomb")

	assert.ErrorIs(t, err, ErrUnknownDimension)
}

// TestConvertCmd_UnknownUnit tests the sentinel error surfaces.
func TestConvertCmd_UnknownUnit(t *testing.T) {
	_, err := runCLI(t, "convert", "1", "--dim", "force", "--from", "dyne", "--to", "newton")

	assert.ErrorIs(t, err, ErrUnknownUnit)
}

// TestTableCmd_AllDimensions tests the factor table output.
func TestTableCmd_AllDimensions(t *testing.T) {
	out, err := runCLI(t, "table")

	require.NoError(t, err)
	assert.Contains(t, out, "force")
	assert.Contains(t, out, "kilopound")
	assert.Contains(t, out, "4448.221615255")
	assert.Contains(t, out, "temperature")
	assert.Contains(t, out, "rankine")
}

// TestTableCmd_SingleDimension tests the --dim filter.
func TestTableCmd_SingleDimension(t *testing.T) {
	out, err := runCLI(t, "table", "--dim", "duration")

	require.NoError(t, err)
	assert.Contains(t, out, "hour")
	assert.NotContains(t, out, "kilopound")
}
