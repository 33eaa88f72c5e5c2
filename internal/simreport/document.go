package simreport

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReportDocument is an ordered sequence of text lines read from one .SIM
// file. It is immutable once constructed; the parser never modifies it.
type ReportDocument struct {
	source string
	lines  []string
}

// ReadDocument reads a .SIM file into memory. DOE-2 output is Latin-1
// encoded, so the bytes are decoded through ISO 8859-1 before splitting
// into lines. The source identifier is the file name without its extension.
func ReadDocument(path string) (*ReportDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	name := filepath.Base(path)
	source := strings.TrimSuffix(name, filepath.Ext(name))
	return NewDocument(source, lines), nil
}

// NewDocument wraps already-split lines as a document. Used by tests and by
// callers that read the bytes themselves.
func NewDocument(source string, lines []string) *ReportDocument {
	return &ReportDocument{source: source, lines: lines}
}

// Source returns the document's source identifier.
func (d *ReportDocument) Source() string { return d.source }

// Lines returns the document's lines. Callers must not modify the slice.
func (d *ReportDocument) Lines() []string { return d.lines }

// Len returns the number of lines in the document.
func (d *ReportDocument) Len() int { return len(d.lines) }

// LineAt returns the line at the given zero-based index. The second return
// is false when the index is out of range.
func (d *ReportDocument) LineAt(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}
	return d.lines[i], true
}
