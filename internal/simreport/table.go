package simreport

import (
	"strconv"
	"strings"
)

// RowKey identifies a table row. Group is empty for flat single-level
// indexes and carries the outer level (system name, month bucket) for
// two-level indexes.
type RowKey struct {
	Group string
	Label string
}

// Flat builds a single-level row key.
func Flat(label string) RowKey { return RowKey{Label: label} }

// Grouped builds a two-level row key.
func Grouped(group, label string) RowKey { return RowKey{Group: group, Label: label} }

// Table is a named 2-D structure with a fixed column list and rows keyed by
// a possibly two-level label. Writing a row to an existing key is an upsert:
// the last write wins. Cell values are kept as raw tokens; numeric coercion
// happens at read time.
type Table struct {
	Name       string
	IndexNames []string

	columns  []string
	textCols map[string]bool
	keys     []RowKey
	rows     map[RowKey][]string
	writes   int
}

// NewTable allocates an empty table. The column count is fixed for the
// table's lifetime; only AppendDerived may extend it.
func NewTable(name string, indexNames, columns []string) *Table {
	return &Table{
		Name:       name,
		IndexNames: append([]string(nil), indexNames...),
		columns:    append([]string(nil), columns...),
		textCols:   make(map[string]bool),
		rows:       make(map[RowKey][]string),
	}
}

// MarkText flags columns whose values are never numerically coerced
// (equipment types, fan control modes, day/hour stamps).
func (t *Table) MarkText(cols ...string) {
	for _, c := range cols {
		t.textCols[c] = true
	}
}

// Columns returns the current column list.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Keys returns the row keys in insertion order.
func (t *Table) Keys() []RowKey {
	return append([]RowKey(nil), t.keys...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.keys) }

// Writes returns how many times SetRow succeeded, counting overwrites.
func (t *Table) Writes() int { return t.writes }

// Preallocate inserts empty rows for the given keys, fixing their position
// in the index. Later SetRow calls on the same keys overwrite in place.
func (t *Table) Preallocate(keys ...RowKey) {
	for _, k := range keys {
		if _, ok := t.rows[k]; ok {
			continue
		}
		t.keys = append(t.keys, k)
		t.rows[k] = make([]string, len(t.columns))
	}
}

// SetRow upserts a row. The value count must match the column count
// exactly; handlers are responsible for any padding, slicing, or merging
// before calling.
func (t *Table) SetRow(key RowKey, values []string) error {
	if len(values) != len(t.columns) {
		return &ArityError{Table: t.Name, Want: len(t.columns), Got: len(values)}
	}
	if _, ok := t.rows[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.rows[key] = append([]string(nil), values...)
	t.writes++
	return nil
}

// Row returns the values stored under key.
func (t *Table) Row(key RowKey) ([]string, bool) {
	v, ok := t.rows[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// Cell returns the raw value at (key, col). When column names repeat (SS-A
// carries Day/Hour twice), the first occurrence wins.
func (t *Table) Cell(key RowKey, col string) (string, bool) {
	row, ok := t.rows[key]
	if !ok {
		return "", false
	}
	for i, c := range t.columns {
		if c == col && i < len(row) {
			return row[i], true
		}
	}
	return "", false
}

// SetCell rewrites a single cell in place.
func (t *Table) SetCell(key RowKey, col, value string) bool {
	row, ok := t.rows[key]
	if !ok {
		return false
	}
	for i, c := range t.columns {
		if c == col && i < len(row) {
			row[i] = value
			return true
		}
	}
	return false
}

// Float coerces the cell at (key, col) to a number. Text-marked columns and
// values that do not parse cleanly report a miss; the raw token stays
// untouched either way.
func (t *Table) Float(key RowKey, col string) (float64, bool) {
	if t.textCols[col] {
		return 0, false
	}
	s, ok := t.Cell(key, col)
	if !ok {
		return 0, false
	}
	return CoerceFloat(s)
}

// Groups returns the distinct outer-level key groups in first-appearance
// order. Empty for flat tables.
func (t *Table) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, k := range t.keys {
		if k.Group == "" || seen[k.Group] {
			continue
		}
		seen[k.Group] = true
		groups = append(groups, k.Group)
	}
	return groups
}

// RenameGroup relabels every row key in the old group, keeping index
// positions. Rows already written under the old name stay attached.
func (t *Table) RenameGroup(old, new string) {
	for i, k := range t.keys {
		if k.Group != old {
			continue
		}
		nk := RowKey{Group: new, Label: k.Label}
		t.rows[nk] = t.rows[k]
		delete(t.rows, k)
		t.keys[i] = nk
	}
}

// Row is a read view over one table row, handed to derived-metric
// functions.
type Row struct {
	t   *Table
	key RowKey
}

// Key returns the row's key.
func (r Row) Key() RowKey { return r.key }

// Cell returns the raw value in the named column.
func (r Row) Cell(col string) string {
	v, _ := r.t.Cell(r.key, col)
	return v
}

// Float coerces the named column, reporting a miss for unparseable values.
func (r Row) Float(col string) (float64, bool) {
	return r.t.Float(r.key, col)
}

// AppendDerived adds a computed column. For rows where fn reports a miss
// the cell is left empty. Derived columns are only ever appended after the
// scan completes.
func (t *Table) AppendDerived(col string, fn func(r Row) (float64, bool)) {
	t.columns = append(t.columns, col)
	for _, k := range t.keys {
		var cell string
		if v, ok := fn(Row{t: t, key: k}); ok {
			cell = FormatFloat(v)
		}
		t.rows[k] = append(t.rows[k], cell)
	}
}

// CoerceFloat implements coerce-or-passthrough: the trimmed token is parsed
// as a float; a false return means the caller should keep the original
// text. Tokens strconv cannot parse, commas included, stay text.
func CoerceFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatFloat renders a derived value back into cell form.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
