package diff

import (
	"github.com/dbsmedya/plandiff/internal/sniff"
	"github.com/dbsmedya/plandiff/internal/table"
)

// Derived column names emitted for changed rows.
const (
	BaselineValueColumn   = "baseline_value"
	ComparisonValueColumn = "comparison_value"
	ChangeColumn          = "change"
	ChangePercentColumn   = "change_percent"
)

// Result holds the structured outcome of comparing two tables.
// Every composite key of the two inputs appears in exactly one of the four
// row sets. Created once by Compare and read-only afterwards.
type Result struct {
	Unchanged *table.Table
	Changed   *table.Table
	Added     *table.Table
	Removed   *table.Table

	DimensionColumns []string
	MeasureColumns   []string

	TotalBaseline   int
	TotalComparison int

	// Shape is the export layout both inputs matched, when known.
	Shape sniff.Shape
}

// HasChanges reports whether any row was changed, added, or removed.
func (r *Result) HasChanges() bool {
	return r.TotalChanges() > 0
}

// TotalChanges returns the combined count of changed, added, and removed rows.
func (r *Result) TotalChanges() int {
	return r.Changed.NumRows() + r.Added.NumRows() + r.Removed.NumRows()
}
