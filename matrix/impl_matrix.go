// SPDX-License-Identifier: MIT

// Package matrix - Matrix accessors & formatting.
//
// Purpose:
//   - Expose the column-major buffer, its labels and its element type.
//   - Guarantee safety at the public surface: At/Int64At return errors instead of panicking.
//   - Render a matrix as text, one bracketed row per line.
//
// Complexity quicksheet:
//   - Rows/Cols/Type/IsWideInteger: O(1); At/Int64At: O(1); Dimnames: O(r+c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabmat/vec"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtNull     = "NULL"
)

// matrixErrorf wraps err with the accessor name and the callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.nrow
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.ncol
}

// Type returns the element type of the buffer; a nil matrix reports Logical,
// the type of an empty matrix.
func (m *Matrix) Type() vec.Type {
	if m == nil || m.data == nil {
		return vec.TypeLogical
	}

	return m.data.Type()
}

// Data returns the column-major buffer itself (not a copy).
// Cell (i, j) is element j*Rows()+i.
func (m *Matrix) Data() vec.Vector {
	if m == nil {
		return nil
	}

	return m.data
}

// Dimnames returns a copy of the row and column labels.
func (m *Matrix) Dimnames() Dimnames {
	if m == nil {
		return Dimnames{}
	}

	return Dimnames{
		Rows: cloneLabels(m.dimnames.Rows),
		Cols: cloneLabels(m.dimnames.Cols),
	}
}

// Class returns the class currently attached to the buffer.
func (m *Matrix) Class() []string {
	if m == nil || m.data == nil {
		return nil
	}

	return m.data.Attrs().Class()
}

// IsWideInteger reports whether the cells are integer64 bit patterns.
// It stays true after the "integer64" class has been removed from the buffer.
func (m *Matrix) IsWideInteger() bool { return m != nil && m.wideInteger }

// At returns cell (i, j) as its storage value (see vec.Elem); integer64
// cells come back as int64.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) At(i, j int) (any, error) {
	if m == nil {
		return nil, matrixErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	if err := m.checkIndex(i, j); err != nil {
		return nil, matrixErrorf(ctxAt, i, j, err)
	}
	k := j*m.nrow + i
	if m.wideInteger {
		return m.data.(*vec.Double).Int64At(k), nil
	}
	v, err := vec.Elem(m.data, k)
	if err != nil {
		return nil, matrixErrorf(ctxAt, i, j, err)
	}

	return v, nil
}

// Int64At returns integer64 cell (i, j); vec.NAInteger64 marks a missing value.
//
// Errors:
//   - ErrNilMatrix, ErrNotInteger64, ErrOutOfRange.
func (m *Matrix) Int64At(i, j int) (int64, error) {
	if m == nil {
		return 0, matrixErrorf(ctxInt64At, i, j, ErrNilMatrix)
	}
	if !m.wideInteger {
		return 0, matrixErrorf(ctxInt64At, i, j, ErrNotInteger64)
	}
	if err := m.checkIndex(i, j); err != nil {
		return 0, matrixErrorf(ctxInt64At, i, j, err)
	}

	return m.data.(*vec.Double).Int64At(j*m.nrow + i), nil
}

// checkIndex validates 0 <= i < nrow and 0 <= j < ncol.
func (m *Matrix) checkIndex(i, j int) error {
	if i < 0 || i >= m.nrow || j < 0 || j >= m.ncol {
		return ErrOutOfRange
	}

	return nil
}

// String renders the matrix row by row, e.g. "[1, 2]\n[3, 4]\n".
// Missing values print as NA.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < m.nrow; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.ncol; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.cellText(i, j))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// CellString formats cell (i, j) the way String does.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func (m *Matrix) CellString(i, j int) (string, error) {
	if m == nil {
		return "", matrixErrorf(ctxCellString, i, j, ErrNilMatrix)
	}
	if err := m.checkIndex(i, j); err != nil {
		return "", matrixErrorf(ctxCellString, i, j, err)
	}

	return m.cellText(i, j), nil
}

// cellText formats cell (i, j). m must be non-nil and (i, j) in range.
func (m *Matrix) cellText(i, j int) string {
	k := j*m.nrow + i
	if m.wideInteger {
		return vec.FormatInt64(m.data.(*vec.Double).Int64At(k)).String()
	}
	switch x := m.data.(type) {
	case *vec.Raw:
		return vec.FormatRaw(x.Data[k]).String()
	case *vec.Logical:
		return vec.FormatLogical(x.Data[k]).String()
	case *vec.Integer:
		return vec.FormatInteger(x.Data[k]).String()
	case *vec.Double:
		return vec.FormatDouble(x.Data[k]).String()
	case *vec.Complex:
		return vec.FormatComplex(x.Data[k]).String()
	case *vec.Character:
		return x.Data[k].String()
	case *vec.List:
		return listCellText(x.Data[k])
	default:
		return "?"
	}
}

// listCellText summarizes a List cell: scalars print their value, anything
// longer prints as "<type>,<length>".
func listCellText(v vec.Vector) string {
	if v == nil {
		return _fmtNull
	}
	if lang, ok := v.(*vec.Language); ok {
		return lang.String()
	}
	if v.Len() == 1 && v.Type().IsAtomic() {
		if text, err := vec.AsCharacter(v); err == nil {
			return text.Data[0].String()
		}
	}

	return fmt.Sprintf("%s,%d", v.Type(), v.Len())
}
