// Package diff joins two loaded tables on their dimension columns and
// classifies every composite key as unchanged, changed, added, or removed.
package diff

import (
	"fmt"
	"math"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/plandiff/internal/table"
)

// keySeparator joins dimension values into a composite key. Double-pipe is
// unlikely to appear inside real dimension values.
const keySeparator = "||"

// DefaultTolerance is the comparison tolerance used when none is configured.
const DefaultTolerance = 1e-10

// Compare joins baseline and comparison on the dimension columns and
// classifies every composite key into exactly one of the four result sets.
// Numeric measures are equal when their absolute difference is strictly
// below tolerance; non-numeric measures compare by exact value, with nil
// equal to nil so missing data does not show up as a change.
func Compare(baseline, comparison *table.Table, dimensions []string, tolerance float64) (result *Result, err error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidTolerance, tolerance)
	}
	if len(dimensions) == 0 {
		return nil, ErrNoDimensions
	}
	if baseline.NumRows() == 0 {
		return nil, fmt.Errorf("%w: baseline has no rows", ErrEmptyInput)
	}
	if comparison.NumRows() == 0 {
		return nil, fmt.Errorf("%w: comparison has no rows", ErrEmptyInput)
	}
	if err := checkSchema(baseline, comparison); err != nil {
		return nil, err
	}
	for _, dim := range dimensions {
		if !baseline.HasColumn(dim) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
		}
	}
	measures := measureColumns(baseline, dimensions)
	if len(measures) == 0 {
		return nil, ErrNoMeasures
	}

	// The join itself must never escape as a panic.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrComparisonFailed, r)
		}
	}()

	baselineKeys := keyIndex(baseline, dimensions)
	comparisonKeys := keyIndex(comparison, dimensions)

	unchanged := mustNew(baseline.Columns())
	changed := newChangedTable(baseline, comparison, dimensions, measures)
	added := mustNew(comparison.Columns())
	removed := mustNew(baseline.Columns())

	for el := baselineKeys.Front(); el != nil; el = el.Next() {
		bRow := el.Value
		cRow, inBoth := comparisonKeys.Get(el.Key)
		if !inBoth {
			mustAppend(removed, baseline.Row(bRow))
			continue
		}
		if measuresEqual(baseline, comparison, measures, bRow, cRow, tolerance) {
			mustAppend(unchanged, baseline.Row(bRow))
		} else {
			changed.append(baseline, comparison, bRow, cRow)
		}
	}
	for el := comparisonKeys.Front(); el != nil; el = el.Next() {
		if _, inBaseline := baselineKeys.Get(el.Key); !inBaseline {
			mustAppend(added, comparison.Row(el.Value))
		}
	}

	return &Result{
		Unchanged:        unchanged,
		Changed:          changed.table,
		Added:            added,
		Removed:          removed,
		DimensionColumns: dimensions,
		MeasureColumns:   measures,
		TotalBaseline:    baseline.NumRows(),
		TotalComparison:  comparison.NumRows(),
	}, nil
}

// checkSchema requires identical column name sets, naming the asymmetric
// columns on mismatch.
func checkSchema(baseline, comparison *table.Table) error {
	var missingFromComparison, missingFromBaseline []string
	for _, col := range baseline.Columns() {
		if !comparison.HasColumn(col) {
			missingFromComparison = append(missingFromComparison, col)
		}
	}
	for _, col := range comparison.Columns() {
		if !baseline.HasColumn(col) {
			missingFromBaseline = append(missingFromBaseline, col)
		}
	}
	if len(missingFromComparison) == 0 && len(missingFromBaseline) == 0 {
		return nil
	}
	var parts []string
	if len(missingFromComparison) > 0 {
		parts = append(parts, fmt.Sprintf("missing from comparison: %s", strings.Join(missingFromComparison, ", ")))
	}
	if len(missingFromBaseline) > 0 {
		parts = append(parts, fmt.Sprintf("missing from baseline: %s", strings.Join(missingFromBaseline, ", ")))
	}
	return fmt.Errorf("%w (%s)", ErrSchemaMismatch, strings.Join(parts, "; "))
}

// measureColumns returns all columns minus the dimensions, in source order.
func measureColumns(t *table.Table, dimensions []string) []string {
	dimSet := make(map[string]struct{}, len(dimensions))
	for _, d := range dimensions {
		dimSet[d] = struct{}{}
	}
	var measures []string
	for _, col := range t.Columns() {
		if _, isDim := dimSet[col]; !isDim {
			measures = append(measures, col)
		}
	}
	return measures
}

// keyIndex maps each row's composite key to its row index, in row order.
// When duplicate keys occur the first row wins, so each key is classified
// exactly once.
func keyIndex(t *table.Table, dimensions []string) *orderedmap.OrderedMap[string, int] {
	index := orderedmap.NewOrderedMap[string, int]()
	parts := make([]string, len(dimensions))
	for row := 0; row < t.NumRows(); row++ {
		for i, dim := range dimensions {
			parts[i] = table.FormatValue(t.Value(dim, row))
		}
		key := strings.Join(parts, keySeparator)
		if _, exists := index.Get(key); !exists {
			index.Set(key, row)
		}
	}
	return index
}

// measuresEqual reports whether every measure column matches between the
// two rows under the tolerance rule.
func measuresEqual(baseline, comparison *table.Table, measures []string, bRow, cRow int, tolerance float64) bool {
	for _, m := range measures {
		if !valuesEqual(baseline.Value(m, bRow), comparison.Value(m, cRow), tolerance) {
			return false
		}
	}
	return true
}

// valuesEqual applies the equality rule for a single measure value pair.
// A difference of exactly the tolerance counts as a change.
func valuesEqual(a, b any, tolerance float64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	fa, aNum := table.ToFloat64(a)
	fb, bNum := table.ToFloat64(b)
	if aNum && bNum {
		return math.Abs(fa-fb) < tolerance
	}
	return a == b
}

// changedTable accumulates changed rows in the output shape dictated by
// the measure count: a single measure gets baseline/comparison value
// columns (plus delta columns when numeric); multiple measures get the raw
// measure columns from both sides.
type changedTable struct {
	table      *table.Table
	dimensions []string
	measures   []string
	numeric    bool
}

func newChangedTable(baseline, comparison *table.Table, dimensions, measures []string) *changedTable {
	ct := &changedTable{dimensions: dimensions, measures: measures}

	columns := append([]string{}, dimensions...)
	switch {
	case len(measures) == 1:
		ct.numeric = numericColumn(baseline, measures[0]) && numericColumn(comparison, measures[0])
		columns = append(columns, BaselineValueColumn, ComparisonValueColumn)
		if ct.numeric {
			columns = append(columns, ChangeColumn, ChangePercentColumn)
		}
	default:
		for _, m := range measures {
			columns = append(columns, m+"_baseline", m+"_comparison")
		}
	}
	ct.table = mustNew(columns)
	return ct
}

func (ct *changedTable) append(baseline, comparison *table.Table, bRow, cRow int) {
	values := make([]any, 0, ct.table.NumCols())
	for _, dim := range ct.dimensions {
		values = append(values, baseline.Value(dim, bRow))
	}

	if len(ct.measures) == 1 {
		b := baseline.Value(ct.measures[0], bRow)
		c := comparison.Value(ct.measures[0], cRow)
		values = append(values, b, c)
		if ct.numeric {
			values = append(values, delta(b, c)...)
		}
	} else {
		for _, m := range ct.measures {
			values = append(values, baseline.Value(m, bRow), comparison.Value(m, cRow))
		}
	}
	mustAppend(ct.table, values)
}

// delta computes change and change_percent for a numeric measure pair.
// The percent is nil when the baseline is zero, never an error or infinity,
// and both are nil when either side is missing.
func delta(b, c any) []any {
	fb, bNum := table.ToFloat64(b)
	fc, cNum := table.ToFloat64(c)
	if !bNum || !cNum {
		return []any{nil, nil}
	}
	change := fc - fb
	if fb == 0 {
		return []any{change, nil}
	}
	return []any{change, change / fb * 100}
}

// numericColumn reports whether every non-nil value in the column is numeric.
func numericColumn(t *table.Table, name string) bool {
	col, ok := t.Column(name)
	if !ok {
		return false
	}
	for _, v := range col {
		if v == nil {
			continue
		}
		if _, isNum := table.ToFloat64(v); !isNum {
			return false
		}
	}
	return true
}

func mustNew(columns []string) *table.Table {
	t, err := table.New(columns)
	if err != nil {
		panic(err)
	}
	return t
}

func mustAppend(t *table.Table, values []any) {
	if err := t.AppendRow(values); err != nil {
		panic(err)
	}
}
