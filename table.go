package lvt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("not a finite number")

// Table is a sheet of string cells with a named header row. Column names
// match exactly, without trimming.
type Table struct {
	Header []string
	Rows   [][]string

	columns map[string]int
	// sheet row number of each row, when it differs from index+2
	lines []int
}

func NewTable(header []string, rows [][]string) *Table {
	t := &Table{
		Header:  header,
		Rows:    rows,
		columns: make(map[string]int, len(header)),
	}
	for i, name := range header {
		if _, ok := t.columns[name]; !ok {
			t.columns[name] = i
		}
	}
	return t
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// SheetRow returns the one based row number in the source sheet of row.
func (t *Table) SheetRow(row int) int {
	if t.lines == nil {
		return row + 2
	}
	return t.lines[row]
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, error) {
	idx, ok := t.columns[name]
	if !ok {
		return 0, fmt.Errorf("missing column %q", name)
	}
	return idx, nil
}

// Cell returns the raw value at row, col. Short rows read as empty cells,
// since trailing empty cells are not stored in the sheet.
func (t *Table) Cell(row, col int) string {
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Float coerces the cell at row, col to a finite float64.
func (t *Table) Float(row, col int) (float64, error) {
	val := strings.TrimSpace(t.Cell(row, col))
	f, err := strconv.ParseFloat(val, 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errNotFinite
	}
	if err != nil {
		return 0, &CoercionError{Row: t.SheetRow(row), Column: t.Header[col], Value: val, Err: err}
	}
	return f, nil
}

// FloatColumn coerces every value in the named column.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(t.Rows))
	for i := range t.Rows {
		if vals[i], err = t.Float(i, col); err != nil {
			return nil, err
		}
	}
	return vals, nil
}

func (t *Table) subset(rows []int) *Table {
	sub := &Table{
		Header:  t.Header,
		Rows:    make([][]string, len(rows)),
		columns: t.columns,
		lines:   make([]int, len(rows)),
	}
	for i, r := range rows {
		sub.Rows[i] = t.Rows[r]
		sub.lines[i] = t.SheetRow(r)
	}
	return sub
}

// CoercionError is returned when a cell cannot be read as a number. Row is
// the row number in the source sheet.
type CoercionError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("row %d, column %s: cannot convert %q to a number", e.Row, e.Column, e.Value)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
