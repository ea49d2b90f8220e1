// Package dataviews presents data sets: tables built from rows of
// column/value pairs, and stored values.
package dataviews

import (
	"fmt"
	"slices"
	"sort"

	"github.com/BigRLab/thedom/pkg/dictutil"
	"github.com/BigRLab/thedom/pkg/display"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
)

// Column is one header or body cell. Its text lives in a label.
type Column struct {
	node.Element
	label *display.Label
}

func newColumn(tag, text string) *Column {
	c := &Column{label: display.NewFreeText("", "")}
	c.Init(c, tag, "", "")
	c.label.SetText(text)
	_ = c.Element.AddChild(c.label)
	return c
}

// NewColumn creates a header cell showing text.
func NewColumn(text string) *Column { return newColumn("th", text) }

// Label returns the label holding the cell text.
func (c *Column) Label() *display.Label { return c.label }

// Text returns the cell text.
func (c *Column) Text() string { return c.label.Text() }

// SetText replaces the cell text.
func (c *Column) SetText(text string) { c.label.SetText(text) }

// Row is a table row with one cell per table column.
type Row struct {
	node.Element
	table *Table
}

// ActualCell returns the cell under column, or nil when the column does not exist.
func (r *Row) ActualCell(column string) *Column {
	i := slices.Index(r.table.columns, column)
	if i < 0 || i >= r.Count() {
		return nil
	}
	return r.ChildAt(i).(*Column)
}

// Cell returns the label of the cell under column, creating the column if needed.
func (r *Row) Cell(column string) *display.Label {
	if c := r.ActualCell(column); c != nil {
		return c.Label()
	}
	r.table.AddColumn(column)
	return r.ActualCell(column).Label()
}

// Cells returns the cells in column order.
func (r *Row) Cells() []*Column {
	out := make([]*Column, 0, r.Count())
	for _, c := range r.Children() {
		out = append(out, c.(*Column))
	}
	return out
}

// Table lays out rows of cells under a header of column names.
type Table struct {
	node.Element
	head    *node.Element
	header  *node.Element
	body    *node.Element
	columns []string
	rows    []*Row
}

var tableProperties = node.BaseProperties().
	Method("columns", schema.Slice(schema.String()), func(n node.Node, v any) error {
		n.(*Table).SetColumns(toStrings(v.([]any)))
		return nil
	}).
	Method("rows", nil, func(n node.Node, v any) error {
		return n.(*Table).addRowsFrom(v)
	})

// NewTable creates an empty table.
func NewTable(id, name string) *Table {
	t := &Table{}
	t.Init(t, "table", id, name)
	t.UseProperties(tableProperties)
	t.head = node.New("thead", "", "")
	t.header = node.New("tr", "", "")
	t.body = node.New("tbody", "", "")
	_ = t.head.AddChild(t.header)
	_ = t.Element.AddChildren(t.head, t.body)
	t.SetChildTarget(t.body)
	return t
}

// Header returns the header row.
func (t *Table) Header() *node.Element { return t.header }

// Columns returns the column names in display order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Rows returns the body rows.
func (t *Table) Rows() []*Row { return t.rows }

// AddColumn appends a column, or returns the existing one with that name.
func (t *Table) AddColumn(name string) *Column {
	if i := slices.Index(t.columns, name); i >= 0 {
		return t.header.ChildAt(i).(*Column)
	}
	col := NewColumn(name)
	_ = t.header.AddChild(col)
	t.columns = append(t.columns, name)
	for _, r := range t.rows {
		_ = r.AddChild(newColumn("td", ""))
	}
	return col
}

// AddRow appends an empty row with a cell per column.
func (t *Table) AddRow() *Row {
	r := &Row{table: t}
	r.Init(r, "tr", "", "")
	for range t.columns {
		_ = r.AddChild(newColumn("td", ""))
	}
	_ = t.body.AddChild(r)
	t.rows = append(t.rows, r)
	return r
}

// Cell returns the label of a cell by row index and column name, creating
// the column if needed.
func (t *Table) Cell(row int, column string) (*display.Label, error) {
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", row, len(t.rows))
	}
	return t.rows[row].Cell(column), nil
}

// SetColumns reorders the columns, moving existing cells along. Unknown
// names become new columns; columns left out keep their place after the
// listed ones.
func (t *Table) SetColumns(columns []string) {
	for _, c := range columns {
		t.AddColumn(c)
	}
	order := slices.Clone(columns)
	for _, c := range t.columns {
		if !slices.Contains(order, c) {
			order = append(order, c)
		}
	}
	index := make([]int, len(order))
	for i, c := range order {
		index[i] = slices.Index(t.columns, c)
	}
	reorder(t.header, index)
	for _, r := range t.rows {
		reorder(&r.Element, index)
	}
	t.columns = order
}

func reorder(parent *node.Element, index []int) {
	children := slices.Clone(parent.Children())
	var after node.Node
	for _, i := range index {
		_ = parent.MoveChild(children[i], after)
		after = children[i]
	}
}

// AddRows appends one row per map. New columns are added in sorted order.
func (t *Table) AddRows(rows ...map[string]any) {
	for _, data := range rows {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		r := t.AddRow()
		for _, k := range keys {
			r.Cell(k).SetText(node.Stringify(data[k]))
		}
	}
}

// AddRowPairs appends one row per pair list, adding new columns in the
// order they appear.
func (t *Table) AddRowPairs(rows ...[]dictutil.Pair) {
	for _, pairs := range rows {
		r := t.AddRow()
		for _, p := range pairs {
			r.Cell(p.Key).SetText(node.Stringify(p.Value))
		}
	}
}

func (t *Table) addRowsFrom(v any) error {
	switch rows := v.(type) {
	case []map[string]any:
		t.AddRows(rows...)
	case []any:
		for i, item := range rows {
			switch row := item.(type) {
			case map[string]any:
				t.AddRows(row)
			case *dictutil.OrderedMap:
				t.AddRowPairs(row.Pairs())
			default:
				return fmt.Errorf("row %d: expected a mapping, got %T", i, item)
			}
		}
	default:
		return fmt.Errorf("expected a list of rows, got %T", v)
	}
	return nil
}

func toStrings(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = node.Stringify(item)
	}
	return out
}
