package simreport

// ParserState carries the mutable context threaded through the single
// forward scan: the active report code, the entity the current lines
// belong to, and the section-specific sub-state. It is owned by the
// dispatcher and mutated only during the scan.
type ParserState struct {
	// Report is the active report code; empty before the first header.
	Report ReportCode
	// Entity is the current meter/system name, set from name-bearing
	// section headers (SV-A, PS-F, SS-A, SS-B).
	Entity string

	// SVASection is the nested SV-A level: SYSTEM, FAN, or ZONE.
	SVASection string

	// Bucket is the current PS-F time bucket: a month name, or TOTAL once
	// the total delimiter has been seen.
	Bucket string

	// BEPS context: the current meter code and its energy type. EnergyType
	// is cleared after each component row so every meter/type pair yields
	// exactly one row.
	Meter      string
	EnergyType string

	// Unmet accumulates the four BEPS unmet-hours values; the accumulator
	// commits once per document and is never reused.
	Unmet     []string
	UnmetDone bool

	// EquipClass is the active PV-A equipment class, set by the
	// "*** name ***" marker lines.
	EquipClass string
}
