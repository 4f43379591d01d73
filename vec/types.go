// SPDX-License-Identifier: MIT

// Package vec - element types and the promotion lattice.
//
// Purpose:
//   - Name every element type a column (or a matrix buffer) can hold.
//   - Provide ONE rank function that totally orders the types for promotion,
//     so callers fold over ranks instead of scattering pairwise comparisons.
//
// Lattice (low → high):
//
//	Raw < Logical < Integer < Double < Complex < Character < List < {PairList, Expression, Language}
//
// Everything ranked above List is "non-atomic non-list": a column of such a
// type can only be represented inside a List destination.

package vec

import "fmt"

// Type identifies the storage type of a Vector.
type Type uint8

const (
	TypeRaw        Type = iota // bytes
	TypeLogical                // tri-state booleans stored as int32
	TypeInteger                // 32-bit signed integers
	TypeDouble                 // float64; also the storage slot of integer64
	TypeComplex                // complex128
	TypeCharacter              // strings with a distinct missing value
	TypeList                   // generic vector of Vectors
	TypePairList               // legacy linked list of Vectors
	TypeExpression             // vector of unevaluated expressions
	TypeLanguage               // non-vector scalar-like value (symbol, call)
)

// Ranks of the lattice. rankOther is shared by every type that is neither
// atomic nor a plain List, including values outside the known enum.
const (
	rankRaw       = 0
	rankLogical   = 1
	rankInteger   = 2
	rankDouble    = 3
	rankComplex   = 4
	rankCharacter = 5
	rankList      = 6
	rankOther     = 7
)

// Rank returns the lattice position of t. Higher is strictly more general.
// Complexity: O(1).
func (t Type) Rank() int {
	switch t {
	case TypeRaw:
		return rankRaw
	case TypeLogical:
		return rankLogical
	case TypeInteger:
		return rankInteger
	case TypeDouble:
		return rankDouble
	case TypeComplex:
		return rankComplex
	case TypeCharacter:
		return rankCharacter
	case TypeList:
		return rankList
	default:
		return rankOther
	}
}

// IsAtomic reports whether t is one of the flat scalar storage types.
func (t Type) IsAtomic() bool {
	return t.Rank() < rankList
}

// IsVector reports whether values of type t have vector semantics
// (element-wise indexing). PairList and Language do not.
func (t Type) IsVector() bool {
	return t.IsAtomic() || t == TypeList || t == TypeExpression
}

// String returns the lower-case type name.
func (t Type) String() string {
	switch t {
	case TypeRaw:
		return "raw"
	case TypeLogical:
		return "logical"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeComplex:
		return "complex"
	case TypeCharacter:
		return "character"
	case TypeList:
		return "list"
	case TypePairList:
		return "pairlist"
	case TypeExpression:
		return "expression"
	case TypeLanguage:
		return "language"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType maps a type name (as produced by Type.String) back to a Type.
func ParseType(name string) (Type, error) {
	for t := TypeRaw; t <= TypeLanguage; t++ {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("vec: ParseType(%q): %w", name, ErrUnknownType)
}
