// SPDX-License-Identifier: MIT

// Package vec - whole-vector coercions.
//
// These are the conversions a bulk copy-with-coercion cannot express on its
// own: boxing scalars into a generic List and rendering numbers as text.
// They allocate a fresh result and never mutate the input.

package vec

import "fmt"

// Scalar returns element i of v boxed as a length-1 vector of the same type.
// The class of v is kept, so an integer64 element stays integer64.
// Complexity: O(1).
func Scalar(v Vector, i int) (Vector, error) {
	if i < 0 || i >= v.Len() {
		return nil, fmt.Errorf("vec: Scalar(%d) of %s[%d]: %w", i, v.Type(), v.Len(), ErrOutOfRange)
	}
	var out Vector
	switch x := v.(type) {
	case *Raw:
		out = NewRaw(x.Data[i])
	case *Logical:
		out = NewLogical(x.Data[i])
	case *Integer:
		out = NewInteger(x.Data[i])
	case *Double:
		out = NewDouble(x.Data[i])
	case *Complex:
		out = NewComplex(x.Data[i])
	case *Character:
		out = NewCharacter(x.Data[i])
	default:
		return nil, fmt.Errorf("vec: Scalar of %s: %w", v.Type(), ErrUnsupportedCoercion)
	}
	out.Attrs().SetClass(v.Attrs().Class())

	return out, nil
}

// AsList converts v to a generic List.
//   - atomic vectors: each element becomes its own length-1 vector;
//   - PairList, Expression, List: elements are carried over as-is.
//
// Errors: ErrUnsupportedCoercion for Language and unknown types.
// Complexity: O(n).
func AsList(v Vector) (*List, error) {
	switch x := v.(type) {
	case *List:
		return NewList(append([]Vector(nil), x.Data...)...), nil
	case *PairList:
		return NewList(append([]Vector(nil), x.Data...)...), nil
	case *Expression:
		return NewList(append([]Vector(nil), x.Data...)...), nil
	}
	if !v.Type().IsAtomic() {
		return nil, fmt.Errorf("vec: AsList of %s: %w", v.Type(), ErrUnsupportedCoercion)
	}
	out := &List{Data: make([]Vector, v.Len())}
	for i := range out.Data {
		elem, err := Scalar(v, i)
		if err != nil {
			return nil, err
		}
		out.Data[i] = elem
	}

	return out, nil
}

// AsCharacter renders every element of an atomic vector as text, keeping
// missing values missing. integer64 Doubles are formatted as integers.
//
// Errors: ErrUnsupportedCoercion for non-atomic input.
// Complexity: O(n).
func AsCharacter(v Vector) (*Character, error) {
	out := &Character{Data: make([]Char, v.Len())}
	switch x := v.(type) {
	case *Raw:
		for i, b := range x.Data {
			out.Data[i] = FormatRaw(b)
		}
	case *Logical:
		for i, b := range x.Data {
			out.Data[i] = FormatLogical(b)
		}
	case *Integer:
		for i, n := range x.Data {
			out.Data[i] = FormatInteger(n)
		}
	case *Double:
		wide := IsInteger64(x)
		for i, f := range x.Data {
			if wide {
				out.Data[i] = FormatInt64(BitsToInt64(f))
			} else {
				out.Data[i] = FormatDouble(f)
			}
		}
	case *Complex:
		for i, c := range x.Data {
			out.Data[i] = FormatComplex(c)
		}
	case *Character:
		copy(out.Data, x.Data)
	default:
		return nil, fmt.Errorf("vec: AsCharacter of %s: %w", v.Type(), ErrUnsupportedCoercion)
	}

	return out, nil
}

// WrapExpression returns a one-element Expression holding elem.
func WrapExpression(elem Vector) *Expression {
	return NewExpression(elem)
}
