package simreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLVDSurfaceRows(t *testing.T) {
	rs := parseLines(t, fullDocument()...)
	avgU := rs.Reports[ReportLVD].Table(TableAvgU)
	require.NotNil(t, avgU)

	v, ok := avgU.Float(Flat("NORTH"), "Avg Window U-value")
	require.True(t, ok)
	assert.Equal(t, 0.532, v)

	// the indented variant drops its leading padding, not a field
	v, ok = avgU.Float(Flat("WEST"), "Window Area (sqft)")
	require.True(t, ok)
	assert.Equal(t, 80.0, v)

	// the aggregate row is right-shifted one field vs leaf rows
	v, ok = avgU.Float(Flat("ALL WALLS"), "Win+Wall Area (sqft)")
	require.True(t, ok)
	assert.Equal(t, 2000.0, v)
}

func TestLVDWindowToWallRatio(t *testing.T) {
	rs := parseLines(t, fullDocument()...)

	wwr, ok := CoerceFloat(rs.Reports[ReportLVD].Summary["WWR%"])
	require.True(t, ok)
	assert.InDelta(t, 0.2, wwr, 1e-12)
}

func TestLVDNoAggregateRowNoRatio(t *testing.T) {
	rs := parseLines(t,
		"REPORT- LV-D Details of Exterior Surfaces          WEATHER FILE- CHICAGO OHARE",
		"    WEST             0.498      0.101      0.149      80.       620.       700.",
	)
	_, present := rs.Reports[ReportLVD].Summary["WWR%"]
	assert.False(t, present)
}
