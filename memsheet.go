package divsheet

import (
	"fmt"
	"sort"
)

type position struct{ row, col int }

// MemSheet is an in-memory Sheet.
//
// It counts the clear and write operations it receives so callers can check what a
// refresh did.
type MemSheet struct {
	cells map[position]any
	names map[string]position

	Clears int // number of ClearRange calls
	Writes int // number of WriteColumn calls
}

// NewMemSheet returns an empty sheet.
func NewMemSheet() *MemSheet {
	return &MemSheet{
		cells: make(map[position]any),
		names: make(map[string]position),
	}
}

// Define names the cell at row, col.
func (s *MemSheet) Define(name string, row, col int) { s.names[name] = position{row, col} }

// Set sets the value of a cell, nil clears it.
func (s *MemSheet) Set(row, col int, value any) {
	if isBlank(value) {
		delete(s.cells, position{row, col})
		return
	}
	s.cells[position{row, col}] = value
}

// Get returns the value of a cell, nil if blank.
func (s *MemSheet) Get(row, col int) any { return s.cells[position{row, col}] }

// Rows returns the sorted list of rows having at least one non blank cell in col.
func (s *MemSheet) Rows(col int) []int {
	var rows []int
	for p := range s.cells {
		if p.col == col {
			rows = append(rows, p.row)
		}
	}
	sort.Ints(rows)
	return rows
}

func (s *MemSheet) ReadNamedRange(name string) (Cell, error) {
	p, ok := s.names[name]
	if !ok {
		return Cell{}, fmt.Errorf("named range %q is not defined", name)
	}
	return Cell{Row: p.row, Col: p.col, Value: s.text(p)}, nil
}

func (s *MemSheet) WriteNamedRange(name string, value any) error {
	p, ok := s.names[name]
	if !ok {
		return fmt.Errorf("named range %q is not defined", name)
	}
	s.Set(p.row, p.col, value)
	return nil
}

func (s *MemSheet) ReadColumn(col, startRow int) ([]string, error) {
	var values []string
	for row := startRow; ; row++ {
		v := s.text(position{row, col})
		if v == "" {
			return values, nil
		}
		values = append(values, v)
	}
}

func (s *MemSheet) LastRow(col int) (int, error) {
	rows := s.Rows(col)
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[len(rows)-1], nil
}

func (s *MemSheet) ClearRange(col, fromRow, toRow int) error {
	s.Clears++
	for row := fromRow; row <= toRow; row++ {
		delete(s.cells, position{row, col})
	}
	return nil
}

func (s *MemSheet) WriteColumn(col, startRow int, values []any) error {
	s.Writes++
	for i, v := range values {
		s.Set(startRow+i, col, v)
	}
	return nil
}

func (s *MemSheet) text(p position) string {
	v, ok := s.cells[p]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
