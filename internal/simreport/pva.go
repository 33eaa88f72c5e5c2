package simreport

import (
	"fmt"
	"regexp"
	"strings"
)

// pvaHandler extracts the PV-A plant-equipment report. Equipment classes
// (circulation loops, pumps, primary equipment, cooling towers, DHW
// heaters) are announced by "*** name ***" marker lines; each equipment
// record spans two lines, with the name on the first and the values on the
// next.
type pvaHandler struct{}

var (
	pvaClassPattern = regexp.MustCompile(`^\*\*\* (.*?) \*\*\*`)
	pvaNamePattern  = regexp.MustCompile(`^(.*?)\s{2,}`)
)

func (h *pvaHandler) code() ReportCode { return ReportPVA }

func (h *pvaHandler) handleLine(st *ParserState, ln Line, doc *ReportDocument, rs *ResultSet) error {
	if m := pvaClassPattern.FindStringSubmatch(ln.Raw); m != nil {
		st.EquipClass = m[1]
		return nil
	}

	// A data line starts with a word character and is not itself a section
	// header. Its values live on the next document line.
	if !wordStart.MatchString(ln.Raw) || strings.Contains(ln.Raw, sectionMarker) {
		return nil
	}
	m := pvaNamePattern.FindStringSubmatch(ln.Raw)
	if m == nil {
		return nil
	}
	name := m[1]

	if st.EquipClass == "" {
		return fmt.Errorf("equipment row %q before any equipment-class marker", name)
	}
	tbl := rs.Reports[ReportPVA].Table(st.EquipClass)
	if tbl == nil {
		return fmt.Errorf("unknown equipment class %q", st.EquipClass)
	}

	// ln.Num is 1-based, so index ln.Num is the following line.
	next, ok := doc.LineAt(ln.Num)
	if !ok {
		return fmt.Errorf("equipment %q declared on the last line, no value line follows", name)
	}
	return tbl.SetRow(Flat(name), splitWide(strings.TrimSpace(next)))
}
