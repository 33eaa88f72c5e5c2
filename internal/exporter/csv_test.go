package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcli/internal/config"
	"simcli/internal/simreport"
)

func testResultSet(t *testing.T) *simreport.ResultSet {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rs, err := simreport.NewParser(logger).Parse(simreport.NewDocument("baseline", []string{
		"REPORT- PS-F Energy End-Use Summary for EM1          WEATHER FILE- CHICAGO OHARE",
		"JAN",
		"KWH            4053.      0.      9768.      0.      13045.      0.      791.      5979.      0.      0.      0.      0.      33636.",
		"REPORT- LV-D Details of Exterior Surfaces          WEATHER FILE- CHICAGO OHARE",
		"ALL WALLS        0.512      0.097      0.150      400.      1600.      2000.",
	}))
	require.NoError(t, err)
	return rs
}

func testPaths(outDir string) *config.Paths {
	return &config.Paths{OutputDir: outDir}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "file must start with a UTF-8 BOM")

	r := csv.NewReader(bytes.NewReader(data[3:]))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVExportWritesEveryReport(t *testing.T) {
	outDir := t.TempDir()
	rs := testResultSet(t)

	require.NoError(t, NewCSVWriter(testPaths(outDir)).Export(rs))

	for _, code := range simreport.ReportCodes() {
		path := filepath.Join(outDir, "baseline", fmt.Sprintf("baseline %s.csv", code))
		assert.FileExists(t, path)
	}
}

func TestCSVExportLVD(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, NewCSVWriter(testPaths(outDir)).Export(testResultSet(t)))

	records := readCSV(t, filepath.Join(outDir, "baseline", "baseline LV-D.csv"))
	require.GreaterOrEqual(t, len(records), 5)

	assert.Equal(t, []string{"baseline LV-D Report"}, records[0])
	assert.Equal(t, []string{"Avg_U"}, records[1])
	assert.Equal(t, []string{"WWR%", "0.2"}, records[2])
	assert.Equal(t, "Surface", records[3][0])
	assert.Len(t, records[3], 7)
	assert.Equal(t, []string{"ALL WALLS", "0.512", "0.097", "0.150", "400.", "1600.", "2000."}, records[4])
}

// PS-F blocks come out rotated: measures across, end uses down.
func TestCSVExportPSFTransposed(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, NewCSVWriter(testPaths(outDir)).Export(testResultSet(t)))

	records := readCSV(t, filepath.Join(outDir, "baseline", "baseline PS-F.csv"))
	require.Len(t, records, 17)

	assert.Equal(t, []string{"baseline PS-F Report"}, records[0])
	assert.Equal(t, []string{"EM1"}, records[1])
	// two header rows carry the month/measure pairs across the columns
	assert.Equal(t, []string{"Month", "JAN"}, records[2])
	assert.Equal(t, []string{"Measure", "KWH"}, records[3])
	// one row per end use
	assert.Equal(t, []string{"Lights", "4053."}, records[4])
	assert.Equal(t, []string{"Total", "33636."}, records[16])
}
