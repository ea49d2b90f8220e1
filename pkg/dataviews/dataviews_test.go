package dataviews

import (
	"testing"

	"github.com/BigRLab/thedom/pkg/dictutil"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellTexts(r *Row) []string {
	var out []string
	for _, c := range r.Cells() {
		out = append(out, c.Text())
	}
	return out
}

func TestTable_Empty(t *testing.T) {
	n, err := NewFactory().Build("Table", "test", "")
	require.NoError(t, err)
	table := n.(*Table)

	assert.Empty(t, table.Rows())
	assert.Empty(t, table.Columns())
	assert.Equal(t, `<table name="test" id="test"><thead><tr></tr></thead><tbody></tbody></table>`, node.Render(table))
}

func TestRow_Cell(t *testing.T) {
	table := NewTable("", "")
	row := table.AddRow()

	assert.Nil(t, row.ActualCell("Name"))

	label := row.Cell("Name")
	require.NotNil(t, label)
	assert.Equal(t, []string{"Name"}, table.Columns())
	assert.Same(t, label, row.Cell("Name"))
	assert.Same(t, label, row.ActualCell("Name").Label())

	label.SetText("Ada")
	assert.Equal(t, "Ada", row.ActualCell("Name").Text())
	assert.Equal(t,
		`<table><thead><tr><th>Name</th></tr></thead><tbody><tr><td>Ada</td></tr></tbody></table>`,
		node.Render(table))
}

func TestTable_AddColumn(t *testing.T) {
	table := NewTable("", "")
	first := table.AddRow()
	col := table.AddColumn("A")

	assert.Same(t, col, table.AddColumn("A"))
	assert.Equal(t, "A", col.Text())
	assert.Len(t, first.Cells(), 1)

	second := table.AddRow()
	assert.Len(t, second.Cells(), 1)

	table.AddColumn("B")
	assert.Equal(t, "", first.Cell("B").Text())
	assert.Len(t, first.Cells(), 2)
}

func TestTable_AddRows(t *testing.T) {
	t.Run("maps sort new columns", func(t *testing.T) {
		table := NewTable("", "")
		table.AddRows(map[string]any{"B": 2, "A": 1}, map[string]any{"A": "x"})

		assert.Equal(t, []string{"A", "B"}, table.Columns())
		require.Len(t, table.Rows(), 2)
		assert.Equal(t, []string{"1", "2"}, cellTexts(table.Rows()[0]))
		assert.Equal(t, []string{"x", ""}, cellTexts(table.Rows()[1]))
	})

	t.Run("pairs keep order", func(t *testing.T) {
		table := NewTable("", "")
		table.AddRowPairs([]dictutil.Pair{{Key: "B", Value: "b"}, {Key: "A", Value: "a"}})

		assert.Equal(t, []string{"B", "A"}, table.Columns())
		assert.Equal(t, []string{"b", "a"}, cellTexts(table.Rows()[0]))
	})
}

func TestTable_SetColumns(t *testing.T) {
	table := NewTable("", "")
	table.AddRows(map[string]any{"A": "a", "B": "b"})

	table.SetColumns([]string{"B", "A"})

	assert.Equal(t, []string{"B", "A"}, table.Columns())
	assert.Equal(t, []string{"b", "a"}, cellTexts(table.Rows()[0]))
	assert.Equal(t, "a", table.Rows()[0].Cell("A").Text())

	table.SetColumns([]string{"C"})
	assert.Equal(t, []string{"C", "B", "A"}, table.Columns())
	assert.Equal(t, []string{"", "b", "a"}, cellTexts(table.Rows()[0]))
}

func TestTable_Cell(t *testing.T) {
	table := NewTable("", "")
	table.AddRows(map[string]any{"A": "a"})

	label, err := table.Cell(0, "A")
	require.NoError(t, err)
	assert.Equal(t, "a", label.Text())

	_, err = table.Cell(3, "A")
	assert.Error(t, err)
}

func TestTable_Properties(t *testing.T) {
	table := NewTable("", "")
	err := node.SetProperties(table, map[string]any{
		"columns": []any{"B", "A"},
		"rows": []any{
			map[string]any{"A": 1, "B": 2},
			dictutil.NewOrderedMap(dictutil.Pair{Key: "C", Value: 3}),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "C"}, table.Columns())
	require.Len(t, table.Rows(), 2)
	assert.Equal(t, []string{"2", "1", ""}, cellTexts(table.Rows()[0]))
	assert.Equal(t, []string{"", "", "3"}, cellTexts(table.Rows()[1]))

	err = node.SetProperties(table, map[string]any{"rows": "nope"})
	assert.Error(t, err)
}

func TestColumn(t *testing.T) {
	col := NewColumn("Test")
	assert.Equal(t, "Test", col.Text())

	col.SetText("Other")
	assert.Equal(t, "Other", col.Text())
	assert.Contains(t, node.Render(col), "Other")
}

func TestStoredValue(t *testing.T) {
	n, err := NewFactory().Build("storedValue", "Test", "Test")
	require.NoError(t, err)
	sv := n.(*StoredValue)

	require.NoError(t, node.SetProperties(sv, map[string]any{"text": "Shown", "value": "42"}))
	assert.Equal(t, "Shown", sv.Text())
	assert.Equal(t, "42", sv.Value())
	assert.Equal(t, `<span>Shown<input name="Test" id="Test" value="42" type="hidden" /></span>`, node.Render(sv))

	vars := map[string]any{}
	sv.ExportVariables(vars, true)
	assert.Equal(t, "42", vars["Test"])
}
