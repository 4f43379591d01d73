// SPDX-License-Identifier: MIT

// Package matrix: domain types of the table → matrix conversion.
// This file contains ONLY the public types (Matrix, Dimnames, Warning) and the
// Filler capability the conversion is parameterized by. Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/tabmat/recycle"
	"github.com/katalvlaran/tabmat/vec"
)

// Dimnames holds the labels of both dimensions.
// Rows == nil means the matrix carries no row labels.
type Dimnames struct {
	Rows []string // len == Rows() or nil
	Cols []string // len == Cols(); copied from the table's column names
}

// Matrix is a homogeneous two-dimensional array stored column-major:
// cell (i, j) lives at data[j*nrow + i].
//
// The element type is the type of the backing vector. When wideInteger is
// set the backing vector is a Double whose cells hold int64 bit patterns,
// whether or not the "integer64" class is still attached to it.
type Matrix struct {
	nrow, ncol  int        // dimensions (>= 0)
	data        vec.Vector // column-major buffer, Len() == nrow*ncol
	dimnames    Dimnames   // row/column labels
	wideInteger bool       // cells are integer64 bit patterns
}

// Warning is a non-fatal precision-loss report from the fill step.
// It should never be observed when type inference is correct.
type Warning struct {
	Column  int    // 1-based column index
	Message string // message reported by the Filler
}

// String formats the warning as "Column <j>: <message>".
func (w Warning) String() string {
	return fmt.Sprintf("Column %d: %s", w.Column, w.Message)
}

// Filler copies n values of src into dst starting at dstStart, performing
// the standard element coercions. It returns a non-empty warning when
// precision was lost and an error when it cannot perform the copy.
type Filler interface {
	Fill(dst vec.Vector, dstStart, n int, src vec.Vector) (warning string, err error)
}

// FillerFunc adapts an ordinary function to the Filler interface.
type FillerFunc func(dst vec.Vector, dstStart, n int, src vec.Vector) (string, error)

// Fill calls f.
func (f FillerFunc) Fill(dst vec.Vector, dstStart, n int, src vec.Vector) (string, error) {
	return f(dst, dstStart, n, src)
}

// RecycleFiller is the default Filler, backed by recycle.Into reading the
// source from its first element.
var RecycleFiller Filler = FillerFunc(func(dst vec.Vector, dstStart, n int, src vec.Vector) (string, error) {
	return recycle.Into(dst, dstStart, n, src, 0)
})
