// SPDX-License-Identifier: MIT

// Package matrix - Column Materialization.
//
// Purpose:
//   - Pre-coerce each column into something the Filler can copy into the
//     destination type, then hand the column to the Filler.
//
// Decision table (first match wins):
//  1. List destination, non-List column: box atomic/pair-list values, rewrap
//     expressions one by one, replicate non-vector values.
//  2. Character destination, integer64 column: format as decimal text.
//  3. Character destination, Complex column: render as text.
//  4. Anything else: pass through unchanged.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tabmat/vec"
)

// materialize fills every column of m from cols, in order.
// wide reports whether inference saw an integer64 column.
func materialize(m *Matrix, cols []vec.Vector, wide bool, o *Options) error {
	typ := m.data.Type()
	for j, col := range cols {
		coerced, err := coerceColumn(col, typ, wide, m.nrow)
		if err != nil {
			return fmt.Errorf("%s: column %d: %w", ctxMaterialize, j+1, err)
		}
		warning, err := o.filler.Fill(m.data, j*m.nrow, m.nrow, coerced)
		if err != nil {
			return fmt.Errorf("%s: column %d: %w", ctxMaterialize, j+1, err)
		}
		if warning != "" {
			o.warn(Warning{Column: j + 1, Message: warning})
		}
	}

	return nil
}

// coerceColumn applies the decision table to one column.
func coerceColumn(col vec.Vector, typ vec.Type, wide bool, nrow int) (vec.Vector, error) {
	switch {
	case typ == vec.TypeList && col.Type() != vec.TypeList:
		return boxColumn(col, nrow)
	case typ == vec.TypeCharacter && wide && vec.IsInteger64(col):
		return formatInteger64Column(col)
	case typ == vec.TypeCharacter && col.Type() == vec.TypeComplex:
		return vec.AsCharacter(col)
	default:
		return col, nil
	}
}

// boxColumn turns a non-List column into a List of nrow cells.
func boxColumn(col vec.Vector, nrow int) (vec.Vector, error) {
	t := col.Type()
	switch {
	case t.IsAtomic() || t == vec.TypePairList:
		out, err := vec.AsList(col)
		if err != nil {
			return nil, fmt.Errorf("cannot box %s into list: %v: %w", t, err, ErrInternal)
		}
		return out, nil

	case t == vec.TypeExpression:
		// Coercing the whole column would merge its elements into a single
		// call; each cell must stay a one-element expression instead.
		expr, ok := col.(*vec.Expression)
		if !ok {
			return nil, fmt.Errorf("cannot box %T as expression: %w", col, ErrInternal)
		}
		out := &vec.List{Data: make([]vec.Vector, len(expr.Data))}
		for i, e := range expr.Data {
			out.Data[i] = vec.WrapExpression(e)
		}
		return out, nil

	case !t.IsVector():
		// A non-vector value stands for the whole column; its siblings were
		// already recycled to nrow, so repeat it nrow times.
		out := &vec.List{Data: make([]vec.Vector, nrow)}
		for i := range out.Data {
			out.Data[i] = col
		}
		return out, nil

	default:
		return nil, fmt.Errorf("cannot coerce type %s to list: %w", t, ErrInternal)
	}
}

// formatInteger64Column renders an integer64 column as decimal text.
func formatInteger64Column(col vec.Vector) (vec.Vector, error) {
	d, ok := col.(*vec.Double)
	if !ok {
		return nil, fmt.Errorf("integer64 column stored as %T: %w", col, ErrInternal)
	}
	out := &vec.Character{Data: make([]vec.Char, len(d.Data))}
	for i := range d.Data {
		out.Data[i] = vec.FormatInt64(d.Int64At(i))
	}

	return out, nil
}
