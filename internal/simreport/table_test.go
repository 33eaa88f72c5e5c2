package simreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRowArity(t *testing.T) {
	tbl := NewTable("t", []string{"Label"}, []string{"A", "B", "C"})

	err := tbl.SetRow(Flat("x"), []string{"1", "2"})
	require.Error(t, err)
	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 3, arity.Want)
	assert.Equal(t, 2, arity.Got)

	err = tbl.SetRow(Flat("x"), []string{"1", "2", "3", "4"})
	require.ErrorAs(t, err, &arity)

	require.NoError(t, tbl.SetRow(Flat("x"), []string{"1", "2", "3"}))
	assert.Equal(t, 1, tbl.Len())
}

func TestSetRowUpsert(t *testing.T) {
	tbl := NewTable("t", []string{"Label"}, []string{"A"})
	require.NoError(t, tbl.SetRow(Flat("x"), []string{"first"}))
	require.NoError(t, tbl.SetRow(Flat("y"), []string{"other"}))
	require.NoError(t, tbl.SetRow(Flat("x"), []string{"second"}))

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 3, tbl.Writes())
	assert.Equal(t, []RowKey{Flat("x"), Flat("y")}, tbl.Keys())

	v, ok := tbl.Cell(Flat("x"), "A")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestPreallocateFixesOrder(t *testing.T) {
	tbl := NewTable("t", []string{"Month"}, []string{"A"})
	tbl.Preallocate(Flat("JAN"), Flat("FEB"), Flat("TOTAL"))

	// Writing out of order does not rearrange the index.
	require.NoError(t, tbl.SetRow(Flat("TOTAL"), []string{"3"}))
	require.NoError(t, tbl.SetRow(Flat("JAN"), []string{"1"}))

	assert.Equal(t, []RowKey{Flat("JAN"), Flat("FEB"), Flat("TOTAL")}, tbl.Keys())

	row, ok := tbl.Row(Flat("FEB"))
	require.True(t, ok)
	assert.Equal(t, []string{""}, row)
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{name: "plain", in: "42.5", want: 42.5, ok: true},
		{name: "comma stays text", in: "1,234.5", ok: false},
		{name: "trailing dot", in: "120.", want: 120, ok: true},
		{name: "negative", in: "-371.45", want: -371.45, ok: true},
		{name: "padded", in: "  7.1  ", want: 7.1, ok: true},
		{name: "date token passes through", in: "31/ 18", ok: false},
		{name: "text", in: "CONST-VOL", ok: false},
		{name: "empty", in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFloatSkipsTextColumns(t *testing.T) {
	tbl := NewTable("t", []string{"Label"}, []string{"Type", "Value"})
	tbl.MarkText("Type")
	require.NoError(t, tbl.SetRow(Flat("x"), []string{"123", "456"}))

	_, ok := tbl.Float(Flat("x"), "Type")
	assert.False(t, ok, "text-marked column must never coerce")

	v, ok := tbl.Float(Flat("x"), "Value")
	require.True(t, ok)
	assert.Equal(t, 456.0, v)
}

func TestGroupsAndRename(t *testing.T) {
	tbl := NewTable("t", []string{"Month", "Measure"}, []string{"A"})
	require.NoError(t, tbl.SetRow(Grouped("JAN", "KWH"), []string{"1"}))
	require.NoError(t, tbl.SetRow(Grouped("JAN", "Max KW"), []string{"2"}))
	require.NoError(t, tbl.SetRow(Grouped("FEB", "KWH"), []string{"3"}))

	assert.Equal(t, []string{"JAN", "FEB"}, tbl.Groups())

	tbl.RenameGroup("JAN", "TOTAL")
	assert.Equal(t, []string{"TOTAL", "FEB"}, tbl.Groups())

	// Rows stay attached under the new name.
	v, ok := tbl.Cell(Grouped("TOTAL", "Max KW"), "A")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	_, ok = tbl.Row(Grouped("JAN", "KWH"))
	assert.False(t, ok)

	// A later write to the renamed group upserts rather than appending.
	require.NoError(t, tbl.SetRow(Grouped("TOTAL", "KWH"), []string{"9"}))
	assert.Equal(t, 3, tbl.Len())
}

func TestAppendDerived(t *testing.T) {
	tbl := NewTable("t", []string{"Label"}, []string{"Flow", "Power"})
	require.NoError(t, tbl.SetRow(Flat("p1"), []string{"100.0", "5.0"}))
	require.NoError(t, tbl.SetRow(Flat("p2"), []string{"bad", "5.0"}))

	tbl.AppendDerived("W/GPM", func(r Row) (float64, bool) {
		flow, ok1 := r.Float("Flow")
		kw, ok2 := r.Float("Power")
		if !ok1 || !ok2 || flow == 0 {
			return 0, false
		}
		return 1000 * kw / flow, true
	})

	assert.Equal(t, []string{"Flow", "Power", "W/GPM"}, tbl.Columns())

	v, ok := tbl.Cell(Flat("p1"), "W/GPM")
	require.True(t, ok)
	assert.Equal(t, "50", v)

	// Unparseable inputs leave the derived cell empty.
	v, ok = tbl.Cell(Flat("p2"), "W/GPM")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestCellFirstOccurrenceWins(t *testing.T) {
	// SS-A carries the Day and Hour column names twice.
	tbl := NewTable("t", []string{"Month"}, []string{"Day", "Hour", "Day", "Hour"})
	require.NoError(t, tbl.SetRow(Flat("JAN"), []string{"21", "16", "1", "6"}))

	v, ok := tbl.Cell(Flat("JAN"), "Day")
	require.True(t, ok)
	assert.Equal(t, "21", v)
}
