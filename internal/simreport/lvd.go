package simreport

import (
	"regexp"
	"strings"
)

// lvdHandler extracts the LV-D exterior-surface U-value table. Surface rows
// appear in two positional variants (column 0 and indented-by-four), plus
// the "ALL WALLS" aggregate row whose name spans two tokens, so the handler
// drops one extra leading field for it.
type lvdHandler struct{}

var (
	lvdLeafPattern     = regexp.MustCompile(`^([\w-]+)\s{15,21}\d`)
	lvdIndentedPattern = regexp.MustCompile(`^\s{4}([\w+]+)\s+\d`)
)

const lvdAllWalls = "ALL WALLS"

func (h *lvdHandler) code() ReportCode { return ReportLVD }

func (h *lvdHandler) handleLine(_ *ParserState, ln Line, _ *ReportDocument, rs *ResultSet) error {
	if len(ln.Fields) == 0 {
		return nil
	}
	tbl := rs.Reports[ReportLVD].Table(TableAvgU)

	if m := lvdLeafPattern.FindStringSubmatch(ln.Raw); m != nil {
		return tbl.SetRow(Flat(m[1]), ln.Fields[1:])
	}
	if m := lvdIndentedPattern.FindStringSubmatch(ln.Raw); m != nil {
		return tbl.SetRow(Flat(m[1]), ln.Fields[1:])
	}
	if strings.Contains(ln.Raw, lvdAllWalls) {
		return tbl.SetRow(Flat(lvdAllWalls), ln.Fields[2:])
	}
	return nil
}
