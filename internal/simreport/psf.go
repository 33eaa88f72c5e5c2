package simreport

import (
	"fmt"
	"log/slog"
	"regexp"
)

// psfHandler extracts the PS-F energy end-use summary, one table per meter
// keyed by (time bucket, measure). Measure rows are recognized by their
// leading one-or-two tokens split on wide gaps so multi-word names like
// "MAX KW" stay whole; a run-of-equals delimiter marks the total boundary
// and retroactively renames an already-allocated month bucket to TOTAL.
type psfHandler struct {
	logger *slog.Logger
}

// a month line is exactly one three-character token.
var psfMonthPattern = regexp.MustCompile(`^\w{3}$`)

// psfMeasureNames maps source row labels to measure names. The slash-style
// date rows carry values like "31/ 18" that must never be numerically
// coerced; the wide split keeps them as single tokens and coercion passes
// them through unchanged.
var psfMeasureNames = map[string]string{
	"KWH":          "KWH",
	"MAX KW":       "Max KW",
	"THERM":        "Therm",
	"MAX THERM/HR": "Max Therm/Hr",
	"PEAK ENDUSE":  "Peak End Use",
	"PEAK PCT":     "Peak Pct",
	"DAY/HR":       "Day/Hour",
	"MON/DY":       "Day/Hour",
}

// psfArity is the fixed column count: twelve end uses plus the total.
const psfArity = 13

func (h *psfHandler) code() ReportCode { return ReportPSF }

func (h *psfHandler) handleLine(st *ParserState, ln Line, _ *ReportDocument, rs *ResultSet) error {
	if len(ln.Fields) == 0 {
		return nil
	}
	rt := rs.Reports[ReportPSF]

	if isEqualsRun(ln.Fields[0]) {
		return h.markTotal(st, ln, rt)
	}

	if psfMonthPattern.MatchString(ln.Raw) {
		st.Bucket = ln.Raw
		return nil
	}

	wide := splitWide(ln.Raw)
	measure, ok := psfMeasureNames[wide[0]]
	if !ok {
		return nil
	}
	if st.Bucket == "" {
		return fmt.Errorf("%s measure row before any month line", measure)
	}
	tbl, err := rt.EntityTable(st.Entity)
	if err != nil {
		return err
	}

	var values []string
	switch wide[0] {
	case "KWH", "MAX KW", "THERM", "MAX THERM/HR":
		values = lastN(ln.Fields, psfArity)
	case "PEAK ENDUSE", "PEAK PCT":
		// no trailing total column in the source line; right-pad with one
		// empty placeholder
		values = lastN(append(ln.Fields, ""), psfArity)
	case "DAY/HR", "MON/DY":
		values = lastN(wide, psfArity)
	}
	return tbl.SetRow(Grouped(st.Bucket, measure), values)
}

// markTotal handles the total-boundary delimiter: the month-axis slot three
// positions from the end is rewritten from its placeholder name to TOTAL,
// keeping the rows already filed under it, and subsequent writes target the
// renamed slot.
func (h *psfHandler) markTotal(st *ParserState, ln Line, rt *ReportTables) error {
	tbl, err := rt.EntityTable(st.Entity)
	if err != nil {
		return err
	}
	groups := tbl.Groups()
	if len(groups) < 3 {
		h.logger.Warn("total delimiter before enough month buckets, ignored",
			slog.Int("line", ln.Num),
			slog.String("meter", st.Entity),
			slog.Int("buckets", len(groups)))
		return nil
	}
	tbl.RenameGroup(groups[len(groups)-3], "TOTAL")
	st.Bucket = "TOTAL"
	return nil
}

func isEqualsRun(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	for _, r := range tok {
		if r != '=' {
			return false
		}
	}
	return true
}

// lastN takes the trailing n elements, or everything when fewer exist (the
// table's arity check rejects short rows).
func lastN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
