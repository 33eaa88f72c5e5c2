package simreport

import (
	"log/slog"
	"regexp"
	"strings"
)

// svaHandler extracts the SV-A system design parameters under three nested
// levels (SYSTEM, FAN, ZONE) selected by keyword lines. Row recognition is
// indentation-sensitive: system rows start at column 0, fan rows are
// indented exactly two spaces, and zone rows start at column 0 but split on
// wide gaps so multi-word zone names survive.
type svaHandler struct {
	logger *slog.Logger
}

var svaFanRowPattern = regexp.MustCompile(`^\s{2}\w`)

// svaFanMergePos is where the occasional split-unit artifact appears in fan
// rows: when the token count exceeds schema arity by one, the tokens at
// this position and the next are rejoined before the write.
const svaFanMergePos = 9

func (h *svaHandler) code() ReportCode { return ReportSVA }

func (h *svaHandler) handleLine(st *ParserState, ln Line, _ *ReportDocument, rs *ResultSet) error {
	if len(ln.Fields) == 0 {
		return nil
	}
	rt := rs.Reports[ReportSVA]

	switch ln.Fields[0] {
	case "SYSTEM", "FAN", "ZONE":
		st.SVASection = ln.Fields[0]
		return nil
	}

	switch st.SVASection {
	case "SYSTEM":
		if wordStart.MatchString(ln.Raw) {
			return rt.Table(TableSystems).SetRow(Flat(st.Entity), ln.Fields)
		}

	case "FAN":
		if svaFanRowPattern.MatchString(ln.Raw) {
			f := ln.Fields
			arity := len(schemas[ReportSVA].Tables[1].Columns)
			if len(f)-1 == arity+1 {
				f = append([]string(nil), f...)
				f[svaFanMergePos] += f[svaFanMergePos+1]
				f = append(f[:svaFanMergePos+1], f[svaFanMergePos+2:]...)
			}
			return rt.Table(TableFans).SetRow(Grouped(st.Entity, f[0]), f[1:])
		}

	case "ZONE":
		if wordStart.MatchString(ln.Raw) {
			wide := splitWide(strings.TrimSpace(ln.Raw))
			err := rt.Table(TableZones).SetRow(Grouped(st.Entity, wide[0]), wide[1:])
			if err != nil {
				// Zone rows are the one place a bad write is non-fatal: log
				// with full line context and keep scanning.
				rs.Stats.ZoneWriteFailures++
				h.logger.Warn("zone row rejected",
					slog.Int("line", ln.Num),
					slog.String("system", st.Entity),
					slog.String("content", ln.Raw),
					slog.String("error", err.Error()))
			}
		}
	}
	return nil
}
