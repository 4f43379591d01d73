// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tabmat/vec"
)

// ToGonum copies a numeric matrix into a row-major *mat.Dense.
//
// Implementation:
//   - Stage 1: reject nil, empty and non-numeric matrices.
//   - Stage 2: transpose the column-major buffer into a row-major float64
//     slice, mapping every missing value to NaN.
//
// Behavior highlights:
//   - Raw, Logical, Integer and Double buffers are accepted.
//   - integer64 cells are converted with float64(int64), which rounds
//     magnitudes above 2^53.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (zero rows or columns), ErrNotNumeric.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, ErrNilMatrix)
	}
	if m.nrow == 0 || m.ncol == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxToGonum, m.nrow, m.ncol, ErrBadShape)
	}
	cell, err := numericReader(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, err)
	}

	out := make([]float64, m.nrow*m.ncol)
	for j := 0; j < m.ncol; j++ {
		for i := 0; i < m.nrow; i++ {
			out[i*m.ncol+j] = cell(j*m.nrow + i)
		}
	}

	return mat.NewDense(m.nrow, m.ncol, out), nil
}

// numericReader returns a function reading buffer element k as float64.
func numericReader(m *Matrix) (func(k int) float64, error) {
	switch x := m.data.(type) {
	case *vec.Raw:
		return func(k int) float64 { return float64(x.Data[k]) }, nil
	case *vec.Logical:
		return func(k int) float64 { return int32ToFloat(x.Data[k]) }, nil
	case *vec.Integer:
		return func(k int) float64 { return int32ToFloat(x.Data[k]) }, nil
	case *vec.Double:
		if m.wideInteger {
			return func(k int) float64 {
				n := x.Int64At(k)
				if n == vec.NAInteger64 {
					return math.NaN()
				}
				return float64(n)
			}, nil
		}
		return func(k int) float64 { return x.Data[k] }, nil
	default:
		return nil, fmt.Errorf("%s buffer: %w", m.data.Type(), ErrNotNumeric)
	}
}

// int32ToFloat converts a Logical or Integer cell, NA becoming NaN.
func int32ToFloat(n int32) float64 {
	if n == vec.NAInteger {
		return math.NaN()
	}

	return float64(n)
}
