package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"simcli/internal/config"
	"simcli/internal/simreport"
)

// CSVWriter exports a document's tables as per-report CSV files inside a
// folder named after the document.
type CSVWriter struct {
	paths *config.Paths
}

// NewCSVWriter creates a CSV writer rooted at the configured output
// directory.
func NewCSVWriter(paths *config.Paths) *CSVWriter {
	return &CSVWriter{paths: paths}
}

// Export writes one CSV file per report code.
func (w *CSVWriter) Export(rs *simreport.ResultSet) error {
	dir := w.paths.DocumentDir(rs.Source)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	for _, code := range simreport.ReportCodes() {
		path := filepath.Join(dir, fmt.Sprintf("%s %s.csv", rs.Source, code))
		if err := w.writeReport(path, rs, code); err != nil {
			return fmt.Errorf("failed to export %s: %w", code, err)
		}
	}
	slog.Info("CSV export complete",
		slog.String("document", rs.Source),
		slog.String("directory", dir))
	return nil
}

func (w *CSVWriter) writeReport(path string, rs *simreport.ResultSet, code simreport.ReportCode) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// UTF-8 BOM helps Excel open the file cleanly.
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(file)
	defer cw.Flush()

	rt := rs.Reports[code]
	if err := cw.Write([]string{fmt.Sprintf("%s %s Report", rs.Source, code)}); err != nil {
		return err
	}
	cw.Write([]string{""})

	for _, name := range rt.Order {
		tbl := rt.Tables[name]
		cw.Write([]string{name})
		if code == simreport.ReportLVD {
			if wwr, ok := rt.Summary["WWR%"]; ok {
				cw.Write([]string{"WWR%", wwr})
			}
		}
		if code == simreport.ReportPSF {
			if err := writeTableTransposed(cw, tbl); err != nil {
				return err
			}
		} else if err := writeTable(cw, tbl); err != nil {
			return err
		}
		cw.Write([]string{""})
	}

	cw.Flush()
	return cw.Error()
}

// writeTableTransposed writes a two-level table with end uses as rows and
// the (month, measure) pairs as a two-row column header, matching the
// orientation utility summaries are normally read in.
func writeTableTransposed(cw *csv.Writer, tbl *simreport.Table) error {
	keys := tbl.Keys()
	groups := make([]string, 0, len(keys)+1)
	labels := make([]string, 0, len(keys)+1)
	groups = append(groups, tbl.IndexNames[0])
	labels = append(labels, tbl.IndexNames[1])
	for _, key := range keys {
		groups = append(groups, key.Group)
		labels = append(labels, key.Label)
	}
	if err := cw.Write(groups); err != nil {
		return err
	}
	if err := cw.Write(labels); err != nil {
		return err
	}

	for i, col := range tbl.Columns() {
		record := make([]string, 0, len(keys)+1)
		record = append(record, col)
		for _, key := range keys {
			row, _ := tbl.Row(key)
			record = append(record, row[i])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(cw *csv.Writer, tbl *simreport.Table) error {
	header := append(append([]string(nil), tbl.IndexNames...), tbl.Columns()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, key := range tbl.Keys() {
		row, _ := tbl.Row(key)
		record := make([]string, 0, len(header))
		if len(tbl.IndexNames) == 2 {
			record = append(record, key.Group, key.Label)
		} else {
			record = append(record, key.Label)
		}
		record = append(record, row...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}
