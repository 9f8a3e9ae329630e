// Package refdata loads the crime-rate and weight reference tables.
//
// A table comes from a Source (CSV file, XLSX workbook or SQL table), has its
// column names normalized, and is converted into typed records once at
// startup. The resulting Reference is never mutated.
package refdata

import "strings"

// Table is a loaded tabular dataset with normalized column names. Every row
// has exactly len(Columns) cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// NormalizeColumn trims surrounding whitespace, lowercases and removes every
// internal space, so " Crime Type " and "crimetype" name the same column.
func NormalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

// newTable normalizes header and pads or trims each row to the header width.
func newTable(name string, header []string, rows [][]string) *Table {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = NormalizeColumn(h)
	}

	shaped := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
		}
		shaped = append(shaped, cells)
	}

	return &Table{Name: name, Columns: columns, Rows: shaped}
}

// Index returns the position of the normalized column, or -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
