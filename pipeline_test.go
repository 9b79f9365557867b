package lvt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig(t *testing.T, rows int) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputFile = writeWorkbook(t, dir, testRows(rows))
	cfg.OutputFile = filepath.Join(dir, "data.js")
	return cfg
}

func TestRunDeterministic(t *testing.T) {
	cfg := testConfig(t, 40)
	cfg.SampleSize = 15

	_, err := Run(cfg, io.Discard)
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	_, err = Run(cfg, io.Discard)
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
}

func TestRunSampled(t *testing.T) {
	cfg := testConfig(t, 40)
	cfg.SampleSize = 15

	var out bytes.Buffer
	doc, err := Run(cfg, &out)
	require.NoError(t, err)

	require.Len(t, doc.Properties, 15)
	require.Equal(t, 40, doc.Statistics.TotalProperties)
	require.Contains(t, out.String(), "✓ Using sample of 15 properties from 40 total")

	source := make(map[string]bool)
	for _, row := range testRows(40) {
		source[row[0].(string)] = true
	}
	for _, p := range doc.Properties {
		require.True(t, source[p.Label], "label %q not in source", p.Label)
		require.GreaterOrEqual(t, p.Latitude, MinLatitude)
		require.LessOrEqual(t, p.Latitude, MaxLatitude)
		require.GreaterOrEqual(t, p.Longitude, MinLongitude)
		require.LessOrEqual(t, p.Longitude, MaxLongitude)
	}

	written, err := ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	require.Equal(t, jsons(doc), jsons(written))
}

func TestRunAllRows(t *testing.T) {
	for _, useSample := range []bool{true, false} {
		cfg := testConfig(t, 3)
		cfg.UseSample = useSample

		var out bytes.Buffer
		doc, err := Run(cfg, &out)
		require.NoError(t, err)

		require.Len(t, doc.Properties, 3)
		require.Equal(t, 3, doc.Statistics.TotalProperties)
		require.Equal(t, (100.0+200.0+300.0)/3, doc.Statistics.AvgCouncilTax)
		require.Contains(t, out.String(), "✓ Using all 3 properties")
		require.Contains(t, out.String(), "  Average council tax: £200.00")
	}
}

func TestRunThousandsSeparator(t *testing.T) {
	cfg := testConfig(t, 4000)
	cfg.UseSample = true

	var out bytes.Buffer
	_, err := Run(cfg, &out)
	require.NoError(t, err)

	// Mean land value of 1000, 2000, ... 4000000.
	require.Contains(t, out.String(), "  Average land value: £2,000,500.00")
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputFile = filepath.Join(dir, "missing.xlsx")
	cfg.OutputFile = filepath.Join(dir, "data.js")

	var out bytes.Buffer
	_, err := Run(cfg, &out)
	require.ErrorIs(t, err, ErrInputNotFound)
	require.Contains(t, out.String(), "✗ Error: File '"+cfg.InputFile+"' not found")

	_, err = os.Stat(cfg.OutputFile)
	require.True(t, os.IsNotExist(err), "output file was created")
}

func TestRunBadValueKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	rows := testRows(3)
	rows[1][1] = "unknown"

	cfg := DefaultConfig()
	cfg.InputFile = writeWorkbook(t, dir, rows)
	cfg.OutputFile = filepath.Join(dir, "data.js")
	require.NoError(t, os.WriteFile(cfg.OutputFile, []byte("previous"), 0o644))

	_, err := Run(cfg, io.Discard)
	require.Error(t, err)

	bs, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	require.Equal(t, "previous", string(bs))
}

func TestRunCoercionSheetRow(t *testing.T) {
	dir := t.TempDir()
	rows := testRows(40)
	rows[29][1] = "bad" // sheet row 31

	cfg := DefaultConfig()
	cfg.InputFile = writeWorkbook(t, dir, rows)
	cfg.OutputFile = filepath.Join(dir, "data.js")
	cfg.SampleSize = 39

	// A blank row above the data moves the bad value to sheet row 32.
	f, err := excelize.OpenFile(cfg.InputFile)
	require.NoError(t, err)
	require.NoError(t, f.InsertRows(f.GetSheetName(0), 3, 1))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	var out bytes.Buffer
	_, err = Run(cfg, &out)
	var cerr *CoercionError
	require.True(t, errors.As(err, &cerr), "expected CoercionError, got %v", err)
	require.Equal(t, 32, cerr.Row)
	require.Equal(t, ColArea, cerr.Column)
	require.Contains(t, out.String(), "row 32, column Area")
}

func TestRunRejectsNaN(t *testing.T) {
	dir := t.TempDir()
	rows := testRows(3)
	rows[2][5] = "NaN"

	cfg := DefaultConfig()
	cfg.InputFile = writeWorkbook(t, dir, rows)
	cfg.OutputFile = filepath.Join(dir, "data.js")

	var out bytes.Buffer
	_, err := Run(cfg, &out)
	require.ErrorIs(t, err, errNotFinite)
	require.NotContains(t, out.String(), "✓ Converted")

	_, err = os.Stat(cfg.OutputFile)
	require.True(t, os.IsNotExist(err), "output file was created")
}

func TestRunWriteFailure(t *testing.T) {
	cfg := testConfig(t, 3)
	cfg.OutputFile = filepath.Join(filepath.Dir(cfg.OutputFile), "missing", "data.js")

	var out bytes.Buffer
	_, err := Run(cfg, &out)
	require.Error(t, err)
	require.Contains(t, out.String(), "✗ Error writing JavaScript file")
	require.True(t, strings.HasSuffix(out.String(), "✗ Data generation failed\n"))
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.SampleSize = 0
	require.Error(t, cfg.Validate())
	cfg.UseSample = false
	require.NoError(t, cfg.Validate())

	cfg.Coordinates = nil
	require.Error(t, cfg.Validate())
}
