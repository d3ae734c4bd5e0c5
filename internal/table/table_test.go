package table

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tbl, err := New([]string{"Region", "Product", "Sales"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if tbl.NumCols() != 3 {
		t.Errorf("expected 3 columns, got %d", tbl.NumCols())
	}
	if tbl.NumRows() != 0 {
		t.Errorf("new table should have 0 rows, got %d", tbl.NumRows())
	}
	want := []string{"Region", "Product", "Sales"}
	if !reflect.DeepEqual(tbl.Columns(), want) {
		t.Errorf("column order not preserved: got %v", tbl.Columns())
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for no columns")
	}
	if _, err := New([]string{"A", "A"}); err == nil {
		t.Error("expected error for duplicate column names")
	}
	if _, err := New([]string{"A", ""}); err == nil {
		t.Error("expected error for empty column name")
	}
}

func TestAppendRowAndAccess(t *testing.T) {
	tbl, err := New([]string{"Region", "Sales"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := tbl.AppendRow([]any{"North", 1000.0}); err != nil {
		t.Fatalf("AppendRow() failed: %v", err)
	}
	if err := tbl.AppendRow([]any{"South", nil}); err != nil {
		t.Fatalf("AppendRow() failed: %v", err)
	}

	if tbl.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", tbl.NumRows())
	}
	if got := tbl.Value("Region", 0); got != "North" {
		t.Errorf("Value(Region, 0) = %v", got)
	}
	if got := tbl.Value("Sales", 1); got != nil {
		t.Errorf("Value(Sales, 1) = %v, want nil", got)
	}
	if got := tbl.Row(1); !reflect.DeepEqual(got, []any{"South", nil}) {
		t.Errorf("Row(1) = %v", got)
	}

	col, ok := tbl.Column("Sales")
	if !ok || len(col) != 2 {
		t.Errorf("Column(Sales) = %v, %t", col, ok)
	}
}

func TestAppendRow_ArityMismatch(t *testing.T) {
	tbl, _ := New([]string{"A", "B"})
	if err := tbl.AppendRow([]any{"only one"}); err == nil {
		t.Error("expected error for wrong value count")
	}
}

func TestValue_OutOfRange(t *testing.T) {
	tbl, _ := New([]string{"A"})
	tbl.AppendRow([]any{1.0})

	if got := tbl.Value("missing", 0); got != nil {
		t.Errorf("missing column should yield nil, got %v", got)
	}
	if got := tbl.Value("A", 5); got != nil {
		t.Errorf("out-of-range row should yield nil, got %v", got)
	}
	if tbl.HasColumn("missing") {
		t.Error("HasColumn should be false for missing column")
	}
}
