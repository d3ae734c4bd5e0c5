// Package testutil generates synthetic CSV export files for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CSVSpec describes a synthetic export file.
type CSVSpec struct {
	Headers      []string
	Rows         [][]string
	Delimiter    string // defaults to ","
	BOM          bool
	PageSelector string // emitted as a leading "Page Selectors: ..." line
	LeadingBlank bool   // emit one blank line before the data
}

// CSV builds the file content for a spec.
func CSV(spec CSVSpec) string {
	delim := spec.Delimiter
	if delim == "" {
		delim = ","
	}

	var b strings.Builder
	if spec.BOM {
		b.WriteString("\ufeff")
	}
	if spec.LeadingBlank {
		b.WriteString("\n")
	}
	if spec.PageSelector != "" {
		b.WriteString("Page Selectors: " + spec.PageSelector + "\n")
	}
	if len(spec.Headers) > 0 {
		b.WriteString(strings.Join(spec.Headers, delim) + "\n")
	}
	for _, row := range spec.Rows {
		b.WriteString(strings.Join(row, delim) + "\n")
	}
	return b.String()
}

// WriteCSV writes a spec to name under dir and returns the full path.
func WriteCSV(t *testing.T, dir, name string, spec CSVSpec) string {
	t.Helper()
	return WriteFile(t, dir, name, CSV(spec))
}

// WriteFile writes raw content to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// SalesHeaders is the header row used by the standard scenarios.
var SalesHeaders = []string{"Region", "Product", "Sales"}

// SalesRows returns three matching sales rows.
func SalesRows() [][]string {
	return [][]string{
		{"North", "Widget A", "1000"},
		{"South", "Widget B", "2000"},
		{"East", "Widget C", "1500"},
	}
}
