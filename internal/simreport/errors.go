package simreport

import "fmt"

// HeaderCaptureError reports a section-header line whose marker and report
// code matched but whose entity-name pattern did not. Parsing the document
// cannot continue safely without knowing the active entity, so this error
// is fatal for the document.
type HeaderCaptureError struct {
	Code    ReportCode
	Line    int
	Content string
}

func (e *HeaderCaptureError) Error() string {
	return fmt.Sprintf("%s header on line %d captured no entity name: %q", e.Code, e.Line, e.Content)
}

// UnregisteredEntityError reports a row write aimed at an entity the
// pre-scan never discovered. It indicates a pre-scan/main-scan desync and
// aborts the document's parse.
type UnregisteredEntityError struct {
	Code   ReportCode
	Entity string
}

func (e *UnregisteredEntityError) Error() string {
	return fmt.Sprintf("no %s table allocated for entity %q: not discovered during pre-scan", e.Code, e.Entity)
}

// ArityError reports a committed row whose value count does not match the
// table's fixed column count after handler-level padding and slicing.
type ArityError struct {
	Table string
	Want  int
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("table %q: row has %d values, want %d", e.Table, e.Got, e.Want)
}

// ParseError wraps a handler failure with its full line context.
type ParseError struct {
	Source  string
	Line    int
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s line %d: %v (line content: %q)", e.Source, e.Line, e.Err, e.Content)
}

func (e *ParseError) Unwrap() error { return e.Err }
