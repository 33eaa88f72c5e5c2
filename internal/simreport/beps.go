package simreport

import (
	"regexp"
	"strings"
)

// bepsHandler extracts the BEPS (building energy performance summary)
// section: per-meter component rows, the site/source energy summary, and
// the four unmet-hours values scattered over four separate lines.
type bepsHandler struct{}

var (
	// a meter line starts at column 0 with the meter code followed by its
	// energy type (NATURAL-GAS or ELECTRICITY).
	bepsMeterPattern = regexp.MustCompile(`^(\w+)\s+[NE][LA]`)
	// the component row for the current meter is the MBTU units line,
	// indented exactly four spaces.
	bepsComponentPattern = regexp.MustCompile(`^\s{4}[MBTU]`)
	bepsSummaryPattern   = regexp.MustCompile(`^\s{19}TOTAL`)
	bepsUnmetPattern     = regexp.MustCompile(`^\s{19}[PH]`)
)

func (h *bepsHandler) code() ReportCode { return ReportBEPS }

func (h *bepsHandler) handleLine(st *ParserState, ln Line, _ *ReportDocument, rs *ResultSet) error {
	if len(ln.Fields) == 0 {
		return nil
	}
	rt := rs.Reports[ReportBEPS]

	if m := bepsMeterPattern.FindStringSubmatch(ln.Raw); m != nil && len(ln.Fields) > 1 {
		st.Meter = m[1]
		st.EnergyType = ln.Fields[1]
	}

	if (st.EnergyType == "NATURAL-GAS" || st.EnergyType == "ELECTRICITY") &&
		bepsComponentPattern.MatchString(ln.Raw) {
		values := append([]string{st.EnergyType}, ln.Fields[1:]...)
		if err := rt.Table(TableBuildingComponents).SetRow(Flat(st.Meter), values); err != nil {
			return err
		}
		// one component row per meter/type pair
		st.EnergyType = ""
	}

	if bepsSummaryPattern.MatchString(ln.Raw) && len(ln.Fields) > 8 {
		// "TOTAL SITE ENERGY" style rows: the first three tokens form the
		// label; the three values sit at fixed token positions among the
		// interleaved unit tokens.
		label := strings.Join(ln.Fields[:3], " ")
		values := []string{ln.Fields[3], ln.Fields[5], ln.Fields[8]}
		if err := rt.Table(TableEnergySummary).SetRow(Flat(label), values); err != nil {
			return err
		}
	}

	if bepsUnmetPattern.MatchString(ln.Raw) && !st.UnmetDone {
		last := ln.Fields[len(ln.Fields)-1]
		st.Unmet = append(st.Unmet, strings.TrimRight(last, "%*"))
		if len(st.Unmet) == 4 {
			if err := rt.Table(TableUnmetInfo).SetRow(Flat("Unmet"), st.Unmet); err != nil {
				return err
			}
			st.UnmetDone = true
		}
	}
	return nil
}
