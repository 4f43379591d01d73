// SPDX-License-Identifier: MIT

// Package matrix - Type Inference.
//
// Purpose:
//   - Fold the column types over the vec lattice into one destination type.
//   - Defer integer64 columns and resolve them in a separate fix-up step, so
//     the fold itself stays a plain monotone maximum.
//
// Determinism:
//   - The fold is a maximum with List as an absorbing state, hence the result
//     does not depend on column order.

package matrix

import "github.com/katalvlaran/tabmat/vec"

// promotion is the state of the inference fold.
type promotion struct {
	max  vec.Type // highest type seen so far (integer64 columns excluded)
	wide bool     // an integer64 column was seen before the fold reached List
}

// absorbed reports whether the fold reached its terminal List state.
func (p *promotion) absorbed() bool { return p.max == vec.TypeList }

// observe folds one column into the state.
func (p *promotion) observe(col vec.Vector) {
	switch rank := col.Type().Rank(); {
	case p.absorbed():
		// nothing ranks above List; later integer64 columns are not recorded
	case vec.IsInteger64(col):
		p.wide = true
	case rank > vec.TypeList.Rank():
		// non-atomic, non-list values can only live inside a List
		p.max = vec.TypeList
	case rank > p.max.Rank():
		p.max = col.Type()
	}
}

// resolve applies the integer64 fix-up:
//   - below Double: integer64 and everything smaller fit a Double slot;
//   - Double or Complex: no numeric type holds both, fall back to text;
//   - Character or List: already general enough.
func (p *promotion) resolve() vec.Type {
	if !p.wide {
		return p.max
	}
	switch rank := p.max.Rank(); {
	case rank < vec.TypeDouble.Rank():
		return vec.TypeDouble
	case rank < vec.TypeCharacter.Rank():
		return vec.TypeCharacter
	default:
		return p.max
	}
}

// InferType returns the destination type able to hold every column and
// whether any integer64 column took part in the decision.
//
// Implementation:
//   - Stage 1: start at Raw, fold every column (observe).
//   - Stage 2: apply the integer64 fix-up (resolve).
//
// Inputs:
//   - cols: non-nil columns.
//
// Complexity:
//   - Time O(ncol), Space O(1).
func InferType(cols []vec.Vector) (vec.Type, bool) {
	p := promotion{max: vec.TypeRaw}
	for _, col := range cols {
		p.observe(col)
	}

	return p.resolve(), p.wide
}
