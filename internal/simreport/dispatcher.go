package simreport

import (
	"log/slog"
	"regexp"
	"strings"
)

// Line is one document line handed to a handler: its 1-based number, the
// raw text (leading whitespace is significant for several reports), and the
// whitespace-split tokens.
type Line struct {
	Num    int
	Raw    string
	Fields []string
}

// handler is the per-report line classifier and row writer. Errors returned
// from handleLine abort the document's parse; recoverable conditions are
// resolved (or logged) inside the handler.
type handler interface {
	code() ReportCode
	handleLine(st *ParserState, ln Line, doc *ReportDocument, rs *ResultSet) error
}

// Parser runs the stateful multi-section scan over a document.
type Parser struct {
	logger   *slog.Logger
	handlers map[ReportCode]handler
}

// NewParser builds a parser with all seven report handlers registered.
// A nil logger falls back to slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Parser{logger: logger, handlers: make(map[ReportCode]handler)}
	for _, h := range []handler{
		&bepsHandler{},
		&pvaHandler{},
		&svaHandler{logger: logger},
		&psfHandler{logger: logger},
		&ssHandler{report: ReportSSA},
		&ssHandler{report: ReportSSB},
		&lvdHandler{},
	} {
		p.handlers[h.code()] = h
	}
	return p
}

// wideSplit splits on runs of two or more spaces, keeping multi-word names
// ("Apt 1 Zn", "MAX KW") intact.
var wideSplit = regexp.MustCompile(`\s{2,}`)

func splitWide(s string) []string {
	return wideSplit.Split(strings.TrimRight(s, " \t"), -1)
}

// wordStart matches lines beginning with a word character at column 0.
var wordStart = regexp.MustCompile(`^\w`)

// Parse runs the pre-scan, the main forward pass, and post-processing, and
// returns the document's finished tables. Fatal conditions (header capture
// failure, unregistered entity write, malformed row with no resolving
// policy) abort the parse of this document only.
func (p *Parser) Parse(doc *ReportDocument) (*ResultSet, error) {
	// The pre-scan must be complete for a report code before any table for
	// that code is allocated.
	reg := EntityRegistry{}
	for _, code := range []ReportCode{ReportPSF, ReportSSA, ReportSSB} {
		names, err := DiscoverEntities(doc, code)
		if err != nil {
			return nil, err
		}
		reg[code] = names
		p.logger.Debug("pre-scan complete",
			slog.String("document", doc.Source()),
			slog.String("report", string(code)),
			slog.Int("entities", len(names)))
	}

	rs := NewResultSet(doc.Source(), reg)
	st := &ParserState{}

	for i, raw := range doc.Lines() {
		ln := Line{Num: i + 1, Raw: raw, Fields: strings.Fields(raw)}
		rs.Stats.Lines++

		// Section headers switch the active report; the line itself is
		// consumed here and never reaches a handler.
		if len(ln.Fields) > 1 && ln.Fields[0] == sectionMarker {
			st.Report = ReportCode(ln.Fields[1])
			if sch, ok := SchemaFor(st.Report); ok && sch.Header != nil {
				m := sch.Header.FindStringSubmatch(raw)
				if m == nil {
					return nil, &HeaderCaptureError{Code: st.Report, Line: ln.Num, Content: raw}
				}
				st.Entity = m[1]
			}
			continue
		}

		h, ok := p.handlers[st.Report]
		if !ok {
			continue
		}
		if err := h.handleLine(st, ln, doc, rs); err != nil {
			return nil, &ParseError{Source: doc.Source(), Line: ln.Num, Content: raw, Err: err}
		}
	}

	postProcess(rs)

	p.logger.Info("document parsed",
		slog.String("document", doc.Source()),
		slog.Int("lines", rs.Stats.Lines),
		slog.Int("rows", rs.RowsWritten()),
		slog.Int("zone_write_failures", rs.Stats.ZoneWriteFailures))
	return rs, nil
}
