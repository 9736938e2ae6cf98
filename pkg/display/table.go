// Package display renders tabular CLI output.
//
// Tables are rendered with display-width-aware padding so unicode collection
// names line up correctly in terminals.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnDef defines a single table column's properties.
//
// Fields:
//   - Name: Column header text (displayed as given)
//   - MinWidth: Minimum column width in character cells
type ColumnDef struct {
	// Name is the column header text.
	Name string

	// MinWidth is the minimum width in character cells.
	// The column expands to fit content if content is wider.
	MinWidth int
}

// Table accumulates rows for a fixed column schema and renders them aligned.
//
// Fields:
//   - Columns: Ordered column definitions
//   - Rows: Accumulated rows, each a slice of cell values
type Table struct {
	// Columns defines the table columns in display order.
	Columns []ColumnDef

	// Rows holds the accumulated rows.
	Rows [][]string
}

// NewTable creates a table with the given column schema.
//
// Parameters:
//   - columns: Ordered column definitions
//
// Returns:
//   - *Table: Empty table ready for rows
func NewTable(columns ...ColumnDef) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row of cell values.
//
// Missing cells render empty; extra cells beyond the schema are dropped.
//
// Parameters:
//   - cells: Cell values in column order
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table with a header line to w.
//
// It performs the following operations:
//   - Step 1: Computes each column's width from header, minimum, and content
//   - Step 2: Writes the uppercase header row
//   - Step 3: Writes each data row padded to the column widths
//
// Parameters:
//   - w: Destination writer
func (t *Table) Render(w io.Writer) {
	widths := t.columnWidths()

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = strings.ToUpper(col.Name)
	}
	writeRow(w, headers, widths)

	for _, row := range t.Rows {
		writeRow(w, row, widths)
	}
}

// columnWidths computes the final display width for each column.
//
// Returns:
//   - []int: Width per column, covering header, MinWidth, and all cells
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = DisplayWidth(col.Name)
		if col.MinWidth > widths[i] {
			widths[i] = col.MinWidth
		}
	}

	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := DisplayWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// writeRow writes one padded row. The last column is not right-padded.
func writeRow(w io.Writer, cells []string, widths []int) {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts[i] = cell
		} else {
			parts[i] = ToWidth(cell, widths[i])
		}
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
}

// DisplayWidth returns the display width of a string, accounting for unicode
// characters that occupy more than one cell.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces to a specific display width.
//
// Strings already at or beyond the target width come back unchanged.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells
//
// Returns:
//   - string: The padded string
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}
