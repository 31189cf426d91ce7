package model

import "strings"

// Row is an ordered sequence of cell values, one per column.
type Row []string

// Table represents a table as ordered rows of normalized cell strings.
type Table struct {
	Rows []Row
}

// NewTable creates a table from raw rows. Every cell is normalized via
// NormalizeCell; the rows themselves are copied so the table does not alias
// the caller's slices.
func NewTable(rows [][]string) Table {
	t := Table{Rows: make([]Row, len(rows))}
	for i, row := range rows {
		t.Rows[i] = make(Row, len(row))
		for j, cell := range row {
			t.Rows[i][j] = NormalizeCell(cell)
		}
	}
	return t
}

// RowCount returns the number of rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// HasContent reports whether the table contains at least one non-empty cell.
// Tables with zero rows, or whose cells are all empty strings, have no
// content and are dropped by the extractor.
func (t Table) HasContent() bool {
	for _, row := range t.Rows {
		for _, cell := range row {
			if cell != "" {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two tables hold identical rows, field for field.
func (t Table) Equal(other Table) bool {
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i, row := range t.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if cell != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// GetText returns a plain text representation with cells separated by tabs
// and rows by newlines.
func (t Table) GetText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(row, "\t"))
	}
	return sb.String()
}
