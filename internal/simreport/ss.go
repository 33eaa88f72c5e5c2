package simreport

// ssHandler extracts the SS-A and SS-B system-loads summaries, one table
// per system over the fixed 14-row index (twelve months, TOTAL, MAX).
// Month rows copy their tokens directly; TOTAL and MAX rows interleave
// cooling/heating/electrical subtotals at different column offsets in the
// source, so each is reassembled with report-specific empty-column padding
// at fixed positions.
type ssHandler struct {
	report ReportCode
}

func (h *ssHandler) code() ReportCode { return h.report }

func (h *ssHandler) handleLine(st *ParserState, ln Line, _ *ReportDocument, rs *ResultSet) error {
	if len(ln.Fields) == 0 {
		return nil
	}
	f := ln.Fields

	var values []string
	switch {
	case monthSet[f[0]]:
		values = f[1:]
	case f[0] == "TOTAL" || f[0] == "MAX":
		var err error
		if values, err = h.reassemble(f); err != nil {
			return err
		}
	default:
		return nil
	}

	tbl, err := rs.Reports[h.report].EntityTable(st.Entity)
	if err != nil {
		return err
	}
	return tbl.SetRow(Flat(f[0]), values)
}

// reassemble rebuilds a TOTAL or MAX row at schema arity. The paddings are
// schema-fixed, not inferred: SS-A pads 5-then-5-then-1 around the three
// TOTAL values and 5-then-5-then-0 with a shifted ordering for MAX; SS-B
// alternates its four values with single empty columns, leading with a
// value for TOTAL and with a blank for MAX.
func (h *ssHandler) reassemble(f []string) ([]string, error) {
	want := 4 // label + three values
	if h.report == ReportSSB {
		want = 5
	}
	if len(f) < want {
		return nil, &ArityError{Table: string(h.report) + " " + f[0], Want: want - 1, Got: len(f) - 1}
	}

	pad := func(n int) []string { return make([]string, n) }
	var values []string
	switch {
	case h.report == ReportSSA && f[0] == "TOTAL":
		values = append(values, f[1])
		values = append(values, pad(5)...)
		values = append(values, f[2])
		values = append(values, pad(5)...)
		values = append(values, f[3], "")
	case h.report == ReportSSA:
		values = append(values, pad(5)...)
		values = append(values, f[1])
		values = append(values, pad(5)...)
		values = append(values, f[2], "", f[3])
	case f[0] == "TOTAL":
		values = append(values, f[1], "", f[2], "", f[3], "", f[4], "")
	default:
		values = append(values, "", f[1], "", f[2], "", f[3], "", f[4])
	}
	return values, nil
}
