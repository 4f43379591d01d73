// SPDX-License-Identifier: MIT

// Package table is a read-only columnar container: an ordered list of
// equal-length vectors with one name per column.
//
// A Table is immutable after construction. Column vectors are shared, not
// copied; callers must not mutate them while the table is in use.
package table

import (
	"fmt"

	"github.com/katalvlaran/tabmat/vec"
)

// Table holds ordered, named, equal-length columns.
type Table struct {
	names []string
	cols  []vec.Vector
	nrow  int
}

// New builds a Table from names and columns.
//
// Implementation:
//   - Stage 1: names must match columns one to one (nil names ⇒ "V1", "V2", ...).
//   - Stage 2: every column must be non-nil and every vector column must
//     have the first vector column's length. Non-vector columns (a single
//     language object) stand for every row and are exempt.
//
// Errors: ErrNameCount, ErrNilColumn, ErrRaggedColumns.
// Complexity: O(ncol).
func New(names []string, cols ...vec.Vector) (*Table, error) {
	if names == nil {
		names = DefaultNames(len(cols))
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("table: New: %d names for %d columns: %w", len(names), len(cols), ErrNameCount)
	}
	nrow, sized := 0, false
	for j, c := range cols {
		if c == nil {
			return nil, fmt.Errorf("table: New: column %d: %w", j+1, ErrNilColumn)
		}
		if !c.Type().IsVector() && c.Type() != vec.TypePairList {
			continue
		}
		if !sized {
			nrow, sized = c.Len(), true
			continue
		}
		if c.Len() != nrow {
			return nil, fmt.Errorf("table: New: column %d has %d rows, want %d: %w", j+1, c.Len(), nrow, ErrRaggedColumns)
		}
	}
	if !sized && len(cols) > 0 {
		nrow = 1
	}

	return &Table{
		names: append([]string(nil), names...),
		cols:  append([]vec.Vector(nil), cols...),
		nrow:  nrow,
	}, nil
}

// DefaultNames returns "V1".."Vn".
func DefaultNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("V%d", i+1)
	}

	return out
}

// NCol returns the number of columns.
func (t *Table) NCol() int { return len(t.cols) }

// NRow returns the shared column length (0 for a table without columns,
// 1 for a table made of non-vector columns only).
func (t *Table) NRow() int { return t.nrow }

// Names returns a copy of the column names.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Columns returns a copy of the column slice; the vectors themselves are shared.
func (t *Table) Columns() []vec.Vector { return append([]vec.Vector(nil), t.cols...) }

// Column returns column j.
func (t *Table) Column(j int) (vec.Vector, error) {
	if j < 0 || j >= len(t.cols) {
		return nil, fmt.Errorf("table: Column(%d) of %d: %w", j, len(t.cols), ErrColumnIndex)
	}

	return t.cols[j], nil
}

// Index returns the position of the first column called name.
func (t *Table) Index(name string) (int, error) {
	for j, n := range t.names {
		if n == name {
			return j, nil
		}
	}

	return -1, fmt.Errorf("table: Index(%q): %w", name, ErrUnknownColumn)
}

// Drop returns a table without column j. The row count is preserved even
// when the last column is removed.
func (t *Table) Drop(j int) (*Table, error) {
	if j < 0 || j >= len(t.cols) {
		return nil, fmt.Errorf("table: Drop(%d) of %d: %w", j, len(t.cols), ErrColumnIndex)
	}
	names := make([]string, 0, len(t.names)-1)
	names = append(names, t.names[:j]...)
	names = append(names, t.names[j+1:]...)
	cols := make([]vec.Vector, 0, len(t.cols)-1)
	cols = append(cols, t.cols[:j]...)
	cols = append(cols, t.cols[j+1:]...)

	return &Table{names: names, cols: cols, nrow: t.nrow}, nil
}
