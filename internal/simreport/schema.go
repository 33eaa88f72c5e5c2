package simreport

import "regexp"

// ReportCode names one of the seven report sections extracted from a .SIM
// document.
type ReportCode string

const (
	ReportBEPS ReportCode = "BEPS"
	ReportPVA  ReportCode = "PV-A"
	ReportSVA  ReportCode = "SV-A"
	ReportPSF  ReportCode = "PS-F"
	ReportSSA  ReportCode = "SS-A"
	ReportSSB  ReportCode = "SS-B"
	ReportLVD  ReportCode = "LV-D"
)

// sectionMarker is the first token of every section-header line.
const sectionMarker = "REPORT-"

// Sub-table names within the shared-table report codes.
const (
	TableBuildingComponents = "BUILDING COMPONENTS"
	TableEnergySummary      = "ENERGY SUMMARY"
	TableUnmetInfo          = "UNMET INFO"

	TableSystems = "Systems"
	TableFans    = "Fans"
	TableZones   = "Zones"

	TableAvgU = "Avg_U"

	ClassCirculationLoops = "CIRCULATION LOOPS"
	ClassPumps            = "PUMPS"
	ClassPrimaryEquipment = "PRIMARY EQUIPMENT"
	ClassCoolingTowers    = "COOLING TOWERS"
	ClassDWHeaters        = "DW-HEATERS"
	ClassBoilers          = "BOILERS"
	ClassChillers         = "CHILLERS"
)

// months in report order; also the fixed leading index of SS-A/SS-B tables.
var months = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

var monthSet = func() map[string]bool {
	m := make(map[string]bool, len(months))
	for _, name := range months {
		m[name] = true
	}
	return m
}()

// TableSchema describes one table: its index shape, columns, and which
// columns stay text under coercion. Fixed lists row keys preallocated at
// table creation (the 14-row SS-A/SS-B index).
type TableSchema struct {
	Name        string
	IndexNames  []string
	Columns     []string
	TextColumns []string
	Fixed       []RowKey
}

// Schema is the static, process-wide definition of one report code. For
// per-entity codes Tables holds a single template instantiated once per
// discovered entity; for shared codes it holds the fixed sub-tables.
type Schema struct {
	Code      ReportCode
	PerEntity bool
	// Header captures the entity name from a section-header line. Nil for
	// codes whose tables need no name from the header.
	Header *regexp.Regexp
	Tables []TableSchema
}

// build builds an empty table from the schema, under the given name.
func (ts TableSchema) build(name string) *Table {
	t := NewTable(name, ts.IndexNames, ts.Columns)
	t.MarkText(ts.TextColumns...)
	t.Preallocate(ts.Fixed...)
	return t
}

var ssFixedIndex = func() []RowKey {
	keys := make([]RowKey, 0, 14)
	for _, m := range months {
		keys = append(keys, Flat(m))
	}
	return append(keys, Flat("TOTAL"), Flat("MAX"))
}()

var psfEndUseColumns = []string{
	"Lights",
	"Task Lights",
	"Misc Equipment",
	"Space Heating",
	"Space Cooling",
	"Heat Reject",
	"Pumps/Aux",
	"Vent Fans",
	"Refrig Display",
	"Ht Pump Supplem",
	"DHW",
	"Ext Usage",
	"Total",
}

var schemas = map[ReportCode]Schema{
	ReportBEPS: {
		Code: ReportBEPS,
		Tables: []TableSchema{
			{
				Name:        TableBuildingComponents,
				IndexNames:  []string{"Meters"},
				Columns:     append([]string{"Energy Type"}, psfEndUseColumns...),
				TextColumns: []string{"Energy Type"},
			},
			{
				Name:       TableEnergySummary,
				IndexNames: []string{"Energy Summary"},
				Columns: []string{
					"Total [MBTU]",
					"Energy per GFA [kBTU/sqft]",
					"Energy per Net Area [kBTU/sqft]",
				},
			},
			{
				Name:       TableUnmetInfo,
				IndexNames: []string{"Unmet Info"},
				Columns: []string{
					"% of Hours Outside Throttling Range",
					"% of Hours Plant Load Unmet",
					"Hours Cooling Unmet",
					"Hours Heating Unmet",
				},
			},
		},
	},
	ReportPVA: {
		Code: ReportPVA,
		Tables: []TableSchema{
			{
				Name:       ClassCirculationLoops,
				IndexNames: []string{"Circulation Loop"},
				Columns: []string{
					"Heating Cap. (mmBTU/hr)",
					"Cooling Cap. (mmBTU/hr)",
					"Loop Flow (GPM)",
					"Total Head (ft)",
					"Supply UA (BTU/h.F)",
					"Supply Loss DT (F)",
					"Return UA (BTU/h.F)",
					"Return Loss DT (F)",
					"Loop Volume (gal)",
					"Fluid Heat Cap. (BTU/lb.F)",
				},
			},
			{
				Name:       ClassPumps,
				IndexNames: []string{"Pump"},
				Columns: []string{
					"Attached to",
					"Flow (GPM)",
					"Head (ft)",
					"Head Setpoint (ft)",
					"Capacity Control",
					"Power (kW)",
					"Mech. Eff",
					"Motor Eff",
				},
				TextColumns: []string{"Attached to", "Capacity Control"},
			},
			{
				Name:       ClassPrimaryEquipment,
				IndexNames: []string{"Primary Equipment"},
				Columns: []string{
					"Equipment Type",
					"Attached to",
					"Capacity (mmBTU/hr)",
					"Flow (GPM)",
					"EIR",
					"HIR",
					"Aux. (kW)",
				},
				TextColumns: []string{"Equipment Type", "Attached to"},
			},
			{
				Name:       ClassCoolingTowers,
				IndexNames: []string{"Cooling Tower"},
				Columns: []string{
					"Equipment Type",
					"Attached to",
					"Cap. (mmBTU/hr)",
					"Flow (GPM)",
					"Nb of Cells",
					"Fan Power per Cell (kW)",
					"Spray Power per Cell (kW)",
					"Aux. (kW)",
				},
				TextColumns: []string{"Equipment Type", "Attached to"},
			},
			{
				Name:       ClassDWHeaters,
				IndexNames: []string{"DHW Heaters"},
				Columns: []string{
					"Equipment Type",
					"Attached to",
					"Cap. (mmBTU/hr)",
					"Flow (GPM)",
					"EIR",
					"HIR",
					"Auxiliary (kW)",
					"Tank (Gal)",
					"Tank UA (BTU/h.ft)",
				},
				TextColumns: []string{"Equipment Type", "Attached to"},
			},
		},
	},
	ReportSVA: {
		Code:   ReportSVA,
		Header: regexp.MustCompile(`^REPORT- SV-A System Design Parameters for\s+(.*?)\s+WEATHER FILE`),
		Tables: []TableSchema{
			{
				Name:       TableSystems,
				IndexNames: []string{"System"},
				Columns: []string{
					"System Type",
					"Altitude Factor",
					"Floor Area (sqft)",
					"Max People",
					"Outside Air Ratio",
					"Cooling Capacity (kBTU/hr)",
					"Sensible (SHR)",
					"Heating Capacity (kBTU/hr)",
					"Cooling EIR (BTU/BTU)",
					"Heating EIR (BTU/BTU)",
					"Heat Pump Supplemental Heat (kBTU/hr)",
				},
				TextColumns: []string{"System Type"},
			},
			{
				Name:       TableFans,
				IndexNames: []string{"System", "Fan Type"},
				Columns: []string{
					"Capacity (CFM)",
					"Diversity Factor (FRAC)",
					"Power Demand (kW)",
					"Fan deltaT (F)",
					"Static Pressure (in w.c.)",
					"Total efficiency",
					"Mechanical Efficiency",
					"Fan Placement",
					"Fan Control",
					"Max Fan Ratio (Frac)",
					"Min Fan Ratio (Frac)",
				},
				TextColumns: []string{"Fan Placement", "Fan Control"},
			},
			{
				Name:       TableZones,
				IndexNames: []string{"System", "Zone Name"},
				Columns: []string{
					"Supply Flow (CFM)",
					"Exhaust Flow (CFM)",
					"Fan (kW)",
					"Minimum Flow (Frac)",
					"Outside Air Flow (CFM)",
					"Cooling Capacity (kBTU/hr)",
					"Sensible (FRAC)",
					"Extract Rate (kBTU/hr)",
					"Heating Capacity (kBTU/hr)",
					"Addition Rate (kBTU/hr)",
					"Zone Mult",
				},
			},
		},
	},
	ReportPSF: {
		Code:      ReportPSF,
		PerEntity: true,
		Header:    regexp.MustCompile(`^REPORT- PS-F Energy End-Use Summary for\s+(.*?)\s+WEATHER FILE`),
		Tables: []TableSchema{
			{
				IndexNames: []string{"Month", "Measure"},
				Columns:    psfEndUseColumns,
			},
		},
	},
	ReportSSA: {
		Code:      ReportSSA,
		PerEntity: true,
		Header:    regexp.MustCompile(`^REPORT- SS-A System Loads Summary for\s+(.*?)\s+WEATHER FILE`),
		Tables: []TableSchema{
			{
				IndexNames: []string{"Month"},
				Columns: []string{
					"Cooling Energy (MBTU)",
					"Day", "Hour",
					"Dry-bulb Temp",
					"Wet-bulb Temp",
					"Max Cooling Load (KBtu/hr)",
					"Heating Energy (MBTU)",
					"Day", "Hour",
					"Dry-bulb Temp",
					"Wet-bulb Temp",
					"Max Heating Load (KBtu/hr)",
					"Electrical Energy (KWH)",
					"Max Elec Load (KW)",
				},
				Fixed: ssFixedIndex,
			},
		},
	},
	ReportSSB: {
		Code:      ReportSSB,
		PerEntity: true,
		Header:    regexp.MustCompile(`^REPORT- SS-B System Loads Summary for\s+(.*?)\s+WEATHER FILE`),
		Tables: []TableSchema{
			{
				IndexNames: []string{"Month"},
				Columns: []string{
					"Cooling by Zone Coils or Nat Ventil (MBTU)",
					"Max Cooling by Zone Coils or Nat Ventil (KBtu/Hr)",
					"Heating by Zone Coils or Nat Ventil (MBTU)",
					"Max Heating by Zone Coils or Nat Ventil (KBtu/Hr)",
					"Baseboard Heating Energy (MBTU)",
					"Max Baseboard Heating Energy (KBtu/Hr)",
					"Preheat Coil Energy or Elec For Furn Fan (MBTU)",
					"Max Preheat Coil Energy or Elec for Furn Fan (KBtu/Hr)",
				},
				Fixed: ssFixedIndex,
			},
		},
	},
	ReportLVD: {
		Code: ReportLVD,
		Tables: []TableSchema{
			{
				Name:       TableAvgU,
				IndexNames: []string{"Surface"},
				Columns: []string{
					"Avg Window U-value",
					"Avg Walls U-Value",
					"Avg Window+Walls U-Value",
					"Window Area (sqft)",
					"Wall Area (sqft)",
					"Win+Wall Area (sqft)",
				},
			},
		},
	},
}

// SchemaFor looks up the schema of a report code.
func SchemaFor(code ReportCode) (Schema, bool) {
	s, ok := schemas[code]
	return s, ok
}

// ReportCodes returns the seven report codes in canonical order.
func ReportCodes() []ReportCode {
	return []ReportCode{ReportBEPS, ReportPVA, ReportSVA, ReportPSF, ReportSSA, ReportSSB, ReportLVD}
}
