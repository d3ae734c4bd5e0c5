package table

// DimensionColumns partitions a table's columns positionally: the last
// column is the measure, every other column is a dimension. The rule is
// the structural contract of the supported export shape and is applied
// regardless of column content.
func DimensionColumns(t *Table) ([]string, error) {
	columns := t.Columns()
	if len(columns) < 2 {
		return nil, ErrInsufficientColumns
	}
	return columns[:len(columns)-1], nil
}
