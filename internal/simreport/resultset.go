package simreport

// EntityRegistry maps a report code to the entity names discovered by the
// pre-scan, in first-appearance order. It must be complete for a report
// code before any of that code's tables are allocated.
type EntityRegistry map[ReportCode][]string

// ReportTables holds the finished (or in-progress) tables of one report
// code for one document. For shared codes the map is keyed by sub-table
// name; for per-entity codes it is keyed by entity name.
type ReportTables struct {
	Code   ReportCode
	Order  []string
	Tables map[string]*Table
	// Summary carries post-scan scalars that belong to the report as a
	// whole rather than to any row (LV-D window-to-wall ratio).
	Summary map[string]string

	perEntity bool
}

// Table returns the named table, or nil when absent.
func (rt *ReportTables) Table(name string) *Table { return rt.Tables[name] }

// EntityTable returns the table allocated for an entity. Writing through a
// missing entity is a pre-scan desync, reported as UnregisteredEntityError.
func (rt *ReportTables) EntityTable(entity string) (*Table, error) {
	t, ok := rt.Tables[entity]
	if !ok {
		return nil, &UnregisteredEntityError{Code: rt.Code, Entity: entity}
	}
	return t, nil
}

// replaceTable swaps one table for one or more others at the same position
// in the report order. Used by post-processing to split PRIMARY EQUIPMENT.
func (rt *ReportTables) replaceTable(old string, repl ...*Table) {
	delete(rt.Tables, old)
	for i, name := range rt.Order {
		if name != old {
			continue
		}
		names := make([]string, 0, len(repl))
		for _, t := range repl {
			rt.Tables[t.Name] = t
			names = append(names, t.Name)
		}
		rt.Order = append(rt.Order[:i], append(names, rt.Order[i+1:]...)...)
		return
	}
}

// ScanStats collects per-document scan telemetry.
type ScanStats struct {
	Lines             int
	ZoneWriteFailures int
}

// ResultSet is the full set of tables extracted from one document. Each
// document gets its own independent set; tables are never shared across
// entities or documents.
type ResultSet struct {
	Source  string
	Reports map[ReportCode]*ReportTables
	Stats   ScanStats
}

// NewResultSet allocates empty tables for every report code. Per-entity
// codes get one independent table per registered entity; the registry must
// already be complete for those codes.
func NewResultSet(source string, reg EntityRegistry) *ResultSet {
	rs := &ResultSet{
		Source:  source,
		Reports: make(map[ReportCode]*ReportTables, len(schemas)),
	}
	for _, code := range ReportCodes() {
		sch := schemas[code]
		rt := &ReportTables{
			Code:      code,
			Tables:    make(map[string]*Table),
			Summary:   make(map[string]string),
			perEntity: sch.PerEntity,
		}
		if sch.PerEntity {
			template := sch.Tables[0]
			for _, entity := range reg[code] {
				rt.Tables[entity] = template.build(entity)
				rt.Order = append(rt.Order, entity)
			}
		} else {
			for _, ts := range sch.Tables {
				rt.Tables[ts.Name] = ts.build(ts.Name)
				rt.Order = append(rt.Order, ts.Name)
			}
		}
		rs.Reports[code] = rt
	}
	return rs
}

// RowsWritten sums successful row writes across all tables.
func (rs *ResultSet) RowsWritten() int {
	var n int
	for _, rt := range rs.Reports {
		for _, t := range rt.Tables {
			n += t.Writes()
		}
	}
	return n
}
