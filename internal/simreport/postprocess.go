package simreport

import "strings"

// heatingWaterMarker partitions PRIMARY EQUIPMENT: an equipment type
// containing it is a hot-water boiler, anything else a chiller.
const heatingWaterMarker = "HW"

// postProcess appends the derived metrics to the finished tables. It runs
// exactly once, after the scan completes, and reads only the tables.
func postProcess(rs *ResultSet) {
	postProcessPVA(rs.Reports[ReportPVA])
	postProcessSVA(rs.Reports[ReportSVA])
	postProcessBEPS(rs.Reports[ReportBEPS])
	postProcessLVD(rs.Reports[ReportLVD])
}

func postProcessPVA(rt *ReportTables) {
	if pumps := rt.Table(ClassPumps); pumps != nil {
		pumps.AppendDerived("W/GPM", func(r Row) (float64, bool) {
			return specificPower(r, "Power (kW)", "Flow (GPM)")
		})
	}

	if ct := rt.Table(ClassCoolingTowers); ct != nil {
		ct.AppendDerived("Fan W/GPM", func(r Row) (float64, bool) {
			kw, ok1 := r.Float("Fan Power per Cell (kW)")
			cells, ok2 := r.Float("Nb of Cells")
			flow, ok3 := r.Float("Flow (GPM)")
			if !ok1 || !ok2 || !ok3 || flow == 0 {
				return 0, false
			}
			return 1000 * kw * cells / flow, true
		})
		ct.AppendDerived("GPM/ton", func(r Row) (float64, bool) {
			return gpmPerTon(r, "Flow (GPM)", "Cap. (mmBTU/hr)")
		})
	}

	if prim := rt.Table(ClassPrimaryEquipment); prim != nil {
		partitionPrimaryEquipment(rt, prim)
	}

	if dhw := rt.Table(ClassDWHeaters); dhw != nil {
		dhw.AppendDerived("Thermal Eff", thermalEfficiency)
	}
}

// partitionPrimaryEquipment splits the primary-equipment table into BOILERS
// and CHILLERS on the heating-water marker, replacing it in the report at
// the same position. Boilers get thermal efficiency only; chillers get COP,
// kW/ton, and GPM/ton.
func partitionPrimaryEquipment(rt *ReportTables, prim *Table) {
	boilers := NewTable(ClassBoilers, prim.IndexNames, prim.Columns())
	chillers := NewTable(ClassChillers, prim.IndexNames, prim.Columns())
	boilers.MarkText("Equipment Type", "Attached to")
	chillers.MarkText("Equipment Type", "Attached to")

	for _, key := range prim.Keys() {
		row, _ := prim.Row(key)
		equipType, _ := prim.Cell(key, "Equipment Type")
		if strings.Contains(equipType, heatingWaterMarker) {
			boilers.SetRow(key, row)
		} else {
			chillers.SetRow(key, row)
		}
	}

	boilers.AppendDerived("Thermal Eff", thermalEfficiency)
	chillers.AppendDerived("COP", func(r Row) (float64, bool) {
		eir, ok := r.Float("EIR")
		if !ok || eir == 0 {
			return 0, false
		}
		return 1 / eir, true
	})
	chillers.AppendDerived("kW/ton", func(r Row) (float64, bool) {
		cop, ok := r.Float("COP")
		if !ok || cop == 0 {
			return 0, false
		}
		return 12 / (cop * 3.412), true
	})
	chillers.AppendDerived("GPM/ton", func(r Row) (float64, bool) {
		return gpmPerTon(r, "Flow (GPM)", "Capacity (mmBTU/hr)")
	})

	rt.replaceTable(ClassPrimaryEquipment, boilers, chillers)
}

func postProcessSVA(rt *ReportTables) {
	if fans := rt.Table(TableFans); fans != nil {
		fans.AppendDerived("W/CFM", func(r Row) (float64, bool) {
			return specificPower(r, "Power Demand (kW)", "Capacity (CFM)")
		})
	}
	if zones := rt.Table(TableZones); zones != nil {
		zones.AppendDerived("W/CFM", func(r Row) (float64, bool) {
			return specificPower(r, "Fan (kW)", "Supply Flow (CFM)")
		})
	}
}

// postProcessBEPS converts the two unmet percentages to fractions in place.
func postProcessBEPS(rt *ReportTables) {
	unmet := rt.Table(TableUnmetInfo)
	if unmet == nil {
		return
	}
	for _, key := range unmet.Keys() {
		for _, col := range []string{
			"% of Hours Outside Throttling Range",
			"% of Hours Plant Load Unmet",
		} {
			if v, ok := unmet.Float(key, col); ok {
				unmet.SetCell(key, col, FormatFloat(v/100))
			}
		}
	}
}

// postProcessLVD computes the window-to-wall ratio from the ALL WALLS
// aggregate row.
func postProcessLVD(rt *ReportTables) {
	avgU := rt.Table(TableAvgU)
	if avgU == nil {
		return
	}
	win, ok1 := avgU.Float(Flat(lvdAllWalls), "Window Area (sqft)")
	total, ok2 := avgU.Float(Flat(lvdAllWalls), "Win+Wall Area (sqft)")
	if !ok1 || !ok2 || total == 0 {
		return
	}
	rt.Summary["WWR%"] = FormatFloat(win / total)
}

// thermalEfficiency inverts the heat input ratio.
func thermalEfficiency(r Row) (float64, bool) {
	hir, ok := r.Float("HIR")
	if !ok || hir == 0 {
		return 0, false
	}
	return 1 / hir, true
}

// specificPower is the recurring kW-per-flow metric expressed in W.
func specificPower(r Row, powerCol, flowCol string) (float64, bool) {
	kw, ok1 := r.Float(powerCol)
	flow, ok2 := r.Float(flowCol)
	if !ok1 || !ok2 || flow == 0 {
		return 0, false
	}
	return 1000 * kw / flow, true
}

func gpmPerTon(r Row, flowCol, capCol string) (float64, bool) {
	flow, ok1 := r.Float(flowCol)
	capacity, ok2 := r.Float(capCol)
	if !ok1 || !ok2 || capacity == 0 {
		return 0, false
	}
	return flow * 12 / (1000 * capacity), true
}
