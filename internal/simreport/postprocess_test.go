package simreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func derivedFloat(t *testing.T, tbl *Table, key RowKey, col string) float64 {
	t.Helper()
	v, ok := tbl.Float(key, col)
	require.True(t, ok, "column %q of %v should coerce", col, key)
	return v
}

func TestPumpSpecificPower(t *testing.T) {
	rs := parseLines(t, fullDocument()...)
	pumps := rs.Reports[ReportPVA].Table(ClassPumps)
	require.NotNil(t, pumps)

	// Flow 100 GPM at 5 kW
	assert.InDelta(t, 50.0, derivedFloat(t, pumps, Flat("CHW-PUMP"), "W/GPM"), 1e-9)
}

func TestChillerDerivedMetrics(t *testing.T) {
	rs := parseLines(t, fullDocument()...)
	chillers := rs.Reports[ReportPVA].Table(ClassChillers)
	require.NotNil(t, chillers)

	key := Flat("CHLR-1")
	// EIR 0.25
	assert.InDelta(t, 4.0, derivedFloat(t, chillers, key, "COP"), 1e-9)
	assert.InDelta(t, 0.8792, derivedFloat(t, chillers, key, "kW/ton"), 1e-4)
	// 244 GPM over 1.464 mmBTU/hr
	assert.InDelta(t, 2.0, derivedFloat(t, chillers, key, "GPM/ton"), 1e-9)
}

func TestBoilerThermalEfficiency(t *testing.T) {
	rs := parseLines(t, fullDocument()...)
	boilers := rs.Reports[ReportPVA].Table(ClassBoilers)
	require.NotNil(t, boilers)

	// HIR 1.25
	assert.InDelta(t, 0.8, derivedFloat(t, boilers, Flat("BOILER-1"), "Thermal Eff"), 1e-9)
}

func TestCoolingTowerDerivedMetrics(t *testing.T) {
	rs := parseLines(t, fullDocument()...)
	towers := rs.Reports[ReportPVA].Table(ClassCoolingTowers)
	require.NotNil(t, towers)

	key := Flat("TOWER-1")
	// 7.5 kW per cell, 2 cells, 500 GPM
	assert.InDelta(t, 30.0, derivedFloat(t, towers, key, "Fan W/GPM"), 1e-9)
	// 500 GPM over 2.0 mmBTU/hr
	assert.InDelta(t, 3.0, derivedFloat(t, towers, key, "GPM/ton"), 1e-9)
}

func TestDHWThermalEfficiency(t *testing.T) {
	rs := parseLines(t, fullDocument()...)
	dhw := rs.Reports[ReportPVA].Table(ClassDWHeaters)
	require.NotNil(t, dhw)

	assert.InDelta(t, 1.0, derivedFloat(t, dhw, Flat("DHW-1"), "Thermal Eff"), 1e-9)
}

func TestFanAndZoneSpecificPower(t *testing.T) {
	rs := parseLines(t, fullDocument()...)

	fans := rs.Reports[ReportSVA].Table(TableFans)
	// 3.73 kW over 5000 CFM
	assert.InDelta(t, 0.746, derivedFloat(t, fans, Grouped("RTU-1", "SUPPLY"), "W/CFM"), 1e-9)

	zones := rs.Reports[ReportSVA].Table(TableZones)
	assert.InDelta(t, 0.0, derivedFloat(t, zones, Grouped("RTU-1", "Apt 1 Zn"), "W/CFM"), 1e-9)
}

func TestDerivedMissOnZeroDenominator(t *testing.T) {
	tbl := NewTable(ClassPumps, []string{"Pump"}, schemas[ReportPVA].Tables[1].Columns)
	require.NoError(t, tbl.SetRow(Flat("p"), []string{
		"LOOP", "0.0", "10.0", "0.0", "ONE-SPEED-PUMP", "5.0", "0.77", "0.90",
	}))

	tbl.AppendDerived("W/GPM", func(r Row) (float64, bool) {
		return specificPower(r, "Power (kW)", "Flow (GPM)")
	})
	cell, ok := tbl.Cell(Flat("p"), "W/GPM")
	require.True(t, ok)
	assert.Equal(t, "", cell, "zero flow yields an empty derived cell")
}
