package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"simcli/internal/config"
	"simcli/internal/simreport"
)

// WorkbookWriter aggregates all of a document's tables into one Excel
// workbook, one sheet per report code.
type WorkbookWriter struct {
	paths *config.Paths
}

// NewWorkbookWriter creates a workbook writer rooted at the configured
// output directory.
func NewWorkbookWriter(paths *config.Paths) *WorkbookWriter {
	return &WorkbookWriter{paths: paths}
}

// Export writes "<source> Master.xlsx" into the document's output folder.
// Numeric cells are written as numbers; everything else stays text.
func (w *WorkbookWriter) Export(rs *simreport.ResultSet) error {
	dir := w.paths.DocumentDir(rs.Source)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s Master.xlsx", rs.Source))

	f := excelize.NewFile()
	defer f.Close()

	for i, code := range simreport.ReportCodes() {
		sheet := string(code)
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, code, rs.Reports[code]); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	slog.Info("workbook export complete",
		slog.String("document", rs.Source),
		slog.String("path", path))
	return nil
}

func writeSheet(f *excelize.File, sheet string, code simreport.ReportCode, rt *simreport.ReportTables) error {
	rowNum := 1
	setRow := func(cells []any) error {
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		rowNum++
		return nil
	}

	for _, name := range rt.Order {
		tbl := rt.Tables[name]
		if err := setRow([]any{name}); err != nil {
			return err
		}

		var err error
		if code == simreport.ReportPSF {
			err = writeBlockTransposed(setRow, tbl)
		} else {
			err = writeBlock(setRow, tbl)
		}
		if err != nil {
			return err
		}
		// blank spacer row between tables
		rowNum++
	}
	return nil
}

func writeBlock(setRow func([]any) error, tbl *simreport.Table) error {
	header := append(append([]string(nil), tbl.IndexNames...), tbl.Columns()...)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := setRow(cells); err != nil {
		return err
	}

	for _, key := range tbl.Keys() {
		row, _ := tbl.Row(key)
		var cells []any
		if len(tbl.IndexNames) == 2 {
			cells = append(cells, key.Group, key.Label)
		} else {
			cells = append(cells, key.Label)
		}
		cells = appendCoerced(cells, row)
		if err := setRow(cells); err != nil {
			return err
		}
	}
	return nil
}

// writeBlockTransposed lays a two-level block out with end uses as rows
// and the (month, measure) pairs as a two-row column header, matching the
// CSV orientation.
func writeBlockTransposed(setRow func([]any) error, tbl *simreport.Table) error {
	keys := tbl.Keys()
	groups := []any{tbl.IndexNames[0]}
	labels := []any{tbl.IndexNames[1]}
	for _, key := range keys {
		groups = append(groups, key.Group)
		labels = append(labels, key.Label)
	}
	if err := setRow(groups); err != nil {
		return err
	}
	if err := setRow(labels); err != nil {
		return err
	}

	for i, col := range tbl.Columns() {
		cells := []any{col}
		for _, key := range keys {
			row, _ := tbl.Row(key)
			cells = appendCoerced(cells, row[i:i+1])
		}
		if err := setRow(cells); err != nil {
			return err
		}
	}
	return nil
}

func appendCoerced(cells []any, raw []string) []any {
	for _, v := range raw {
		if n, ok := simreport.CoerceFloat(v); ok {
			cells = append(cells, n)
		} else {
			cells = append(cells, v)
		}
	}
	return cells
}
