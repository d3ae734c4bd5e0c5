// Package render formats comparison results for the terminal. Rendering is
// a pure build-a-string step; writing happens in a single Print call so the
// core stays free of output side effects.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/plandiff/internal/config"
	"github.com/dbsmedya/plandiff/internal/diff"
	"github.com/dbsmedya/plandiff/internal/table"
)

// Formatter renders diff results and errors as terminal text.
type Formatter struct {
	maxRows  int
	colorize bool
	out      io.Writer
}

// New creates a Formatter writing to out with the given display settings.
func New(cfg config.DisplayConfig, out io.Writer) *Formatter {
	colorize := false
	switch cfg.Color {
	case "always":
		colorize = true
	case "never":
		colorize = false
	default:
		colorize = color.IsSupportColor()
	}
	maxRows := cfg.MaxRows
	if maxRows <= 0 {
		maxRows = 10
	}
	return &Formatter{maxRows: maxRows, colorize: colorize, out: out}
}

// Render builds the complete report for a comparison result.
func (f *Formatter) Render(r *diff.Result) string {
	var b strings.Builder

	b.WriteString(f.paint(color.Bold, "Comparison summary") + "\n")
	fmt.Fprintf(&b, "  Baseline rows:    %d\n", r.TotalBaseline)
	fmt.Fprintf(&b, "  Comparison rows:  %d\n", r.TotalComparison)
	fmt.Fprintf(&b, "  Dimensions:       %s\n", strings.Join(r.DimensionColumns, ", "))
	fmt.Fprintf(&b, "  Measures:         %s\n", strings.Join(r.MeasureColumns, ", "))
	b.WriteString("\n")

	fmt.Fprintf(&b, "  Unchanged:  %d\n", r.Unchanged.NumRows())
	fmt.Fprintf(&b, "  Changed:    %s\n", f.count(r.Changed.NumRows(), color.Yellow))
	fmt.Fprintf(&b, "  Added:      %s\n", f.count(r.Added.NumRows(), color.Green))
	fmt.Fprintf(&b, "  Removed:    %s\n", f.count(r.Removed.NumRows(), color.Red))
	b.WriteString("\n")

	if !r.HasChanges() {
		b.WriteString(f.paint(color.Green, "✅ No changes found.") + "\n")
		return b.String()
	}

	f.section(&b, "Changed rows", r.Changed, color.Yellow)
	f.section(&b, "Added rows", r.Added, color.Green)
	f.section(&b, "Removed rows", r.Removed, color.Red)

	return b.String()
}

// RenderError builds the single human-readable failure line.
func (f *Formatter) RenderError(err error) string {
	return f.paint(color.Red, fmt.Sprintf("❌ Error: %v", err)) + "\n"
}

// Print writes a rendered report in one call.
func (f *Formatter) Print(s string) {
	fmt.Fprint(f.out, s)
}

func (f *Formatter) section(b *strings.Builder, title string, t *table.Table, c color.Color) {
	if t.NumRows() == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", f.paint(c, title), t.NumRows())
	b.WriteString(f.renderTable(t))
	b.WriteString("\n")
}

// renderTable lays out up to maxRows rows with display-width-aware padding,
// followed by a marker for anything beyond the cap.
func (f *Formatter) renderTable(t *table.Table) string {
	columns := t.Columns()
	shown := t.NumRows()
	if shown > f.maxRows {
		shown = f.maxRows
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	cells := make([][]string, shown)
	for row := 0; row < shown; row++ {
		cells[row] = make([]string, len(columns))
		for i, col := range columns {
			s := table.FormatValue(t.Value(col, row))
			cells[row][i] = s
			if w := runewidth.StringWidth(s); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("  " + padRow(columns, widths) + "\n")
	rules := make([]string, len(columns))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	b.WriteString("  " + padRow(rules, widths) + "\n")
	for _, row := range cells {
		b.WriteString("  " + padRow(row, widths) + "\n")
	}
	if hidden := t.NumRows() - shown; hidden > 0 {
		fmt.Fprintf(&b, "  … %d more\n", hidden)
	}
	return b.String()
}

func padRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// pad right-fills s with spaces to the target display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func (f *Formatter) paint(c color.Color, s string) string {
	if !f.colorize {
		return s
	}
	return c.Sprint(s)
}

func (f *Formatter) count(n int, c color.Color) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return s
	}
	return f.paint(c, s)
}
