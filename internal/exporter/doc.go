// Package exporter writes finished report tables out of the parser: one
// titled CSV file per report code per document, plus an optional aggregate
// Excel workbook with one sheet per report code. The parser core hands it
// read-only tables and knows nothing about serialization.
package exporter
