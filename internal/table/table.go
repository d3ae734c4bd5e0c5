// Package table holds loaded export data and the rules for reading it:
// parsing files into in-memory tables and classifying their columns into
// dimensions and measures.
package table

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// Sentinel errors for loading and classification. Callers match with errors.Is.
var (
	// ErrLoad indicates the file could not be parsed into a table.
	ErrLoad = errors.New("could not load file")

	// ErrInsufficientColumns indicates the table has fewer than two
	// columns, so no measure can be separated from the dimensions.
	ErrInsufficientColumns = errors.New("table must have at least 2 columns")
)

// Table is an ordered collection of named columns of equal length.
// Cell values are typed at load time: float64, bool, string, or nil for
// missing data. A Table is not mutated once loading completes.
type Table struct {
	cols *orderedmap.OrderedMap[string, []any]
	rows int
}

// New creates an empty table with the given column names.
// Names must be unique and non-empty.
func New(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New("table needs at least one column")
	}
	cols := orderedmap.NewOrderedMap[string, []any]()
	for _, name := range columns {
		if name == "" {
			return nil, errors.New("column name must be non-empty")
		}
		if _, exists := cols.Get(name); exists {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		cols.Set(name, nil)
	}
	return &Table{cols: cols}, nil
}

// AppendRow appends one value per column, in column order.
func (t *Table) AppendRow(values []any) error {
	if len(values) != t.cols.Len() {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), t.cols.Len())
	}
	i := 0
	for el := t.cols.Front(); el != nil; el = el.Next() {
		t.cols.Set(el.Key, append(el.Value, values[i]))
		i++
	}
	t.rows++
	return nil
}

// Columns returns the column names in source order.
func (t *Table) Columns() []string {
	names := make([]string, 0, t.cols.Len())
	for el := t.cols.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]any, bool) {
	return t.cols.Get(name)
}

// Value returns the cell at the named column and row index.
func (t *Table) Value(column string, row int) any {
	col, ok := t.cols.Get(column)
	if !ok || row < 0 || row >= len(col) {
		return nil
	}
	return col[row]
}

// Row returns one value per column for the given row index, in column order.
func (t *Table) Row(row int) []any {
	values := make([]any, 0, t.cols.Len())
	for el := t.cols.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value[row])
	}
	return values
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return t.cols.Len() }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols.Get(name)
	return ok
}
