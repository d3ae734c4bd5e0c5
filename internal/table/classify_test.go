package table

import (
	"errors"
	"reflect"
	"testing"
)

func TestDimensionColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{"two columns", []string{"LineItem", "Value"}, []string{"LineItem"}},
		{"four columns", []string{"LineItem", "Region", "Product", "Sales"}, []string{"LineItem", "Region", "Product"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.columns)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			got, err := DimensionColumns(tbl)
			if err != nil {
				t.Fatalf("DimensionColumns() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DimensionColumns() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The rule is positional: content never influences the partition.
func TestDimensionColumns_IgnoresContent(t *testing.T) {
	tbl, _ := New([]string{"Numeric", "AlsoNumeric"})
	tbl.AppendRow([]any{1.0, 2.0})
	tbl.AppendRow([]any{3.0, 4.0})

	got, err := DimensionColumns(tbl)
	if err != nil {
		t.Fatalf("DimensionColumns() failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Numeric"}) {
		t.Errorf("DimensionColumns() = %v, want [Numeric]", got)
	}
}

func TestDimensionColumns_InsufficientColumns(t *testing.T) {
	tbl, _ := New([]string{"OnlyOne"})
	_, err := DimensionColumns(tbl)
	if !errors.Is(err, ErrInsufficientColumns) {
		t.Errorf("expected ErrInsufficientColumns, got %v", err)
	}
}
