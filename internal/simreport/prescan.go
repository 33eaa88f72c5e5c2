package simreport

import (
	"fmt"
	"strings"
)

// DiscoverEntities runs the header pre-scan for one report code: a full
// pass over the document collecting entity names declared in that code's
// section headers, de-duplicated in first-appearance order. A header line
// that matches the marker and code but defeats the name-capture pattern is
// a fatal parse error for the document.
func DiscoverEntities(doc *ReportDocument, code ReportCode) ([]string, error) {
	sch, ok := SchemaFor(code)
	if !ok {
		return nil, fmt.Errorf("unknown report code %q", code)
	}
	if sch.Header == nil {
		return nil, fmt.Errorf("report %s declares no entities in its headers", code)
	}

	var names []string
	seen := make(map[string]bool)
	for i, raw := range doc.Lines() {
		fields := strings.Fields(raw)
		if len(fields) < 2 || fields[0] != sectionMarker || fields[1] != string(code) {
			continue
		}
		m := sch.Header.FindStringSubmatch(raw)
		if m == nil {
			return nil, &HeaderCaptureError{Code: code, Line: i + 1, Content: raw}
		}
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names, nil
}
