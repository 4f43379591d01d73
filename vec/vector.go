// SPDX-License-Identifier: MIT

// Package vec - typed vectors and their attributes.
//
// Every concrete vector is a pointer to a struct embedding Attributes and a
// Data slice of the storage type. The same vectors serve as table columns and
// as the flat buffer behind a matrix.
//
// Complexity quicksheet:
//   - Type/Len/Attrs: O(1); New: O(n) zero-init.

package vec

import "fmt"

// Vector is a typed sequence of values with attached attributes.
type Vector interface {
	// Type returns the storage type.
	Type() Type

	// Len returns the number of elements.
	Len() int

	// Attrs returns the mutable attribute set of the vector.
	Attrs() *Attributes
}

// Attributes holds metadata attached to a vector. Only the class vector is
// modelled; it tags logical types (e.g. "integer64") living in a storage type.
type Attributes struct {
	class []string
}

// Attrs returns the receiver so embedding types satisfy Vector.
func (a *Attributes) Attrs() *Attributes { return a }

// Class returns a copy of the class vector (nil when unset).
func (a *Attributes) Class() []string {
	if a.class == nil {
		return nil
	}

	return append([]string(nil), a.class...)
}

// SetClass replaces the class vector. A nil or empty class removes it.
func (a *Attributes) SetClass(class []string) {
	if len(class) == 0 {
		a.class = nil
		return
	}
	a.class = append([]string(nil), class...)
}

// Inherits reports whether name appears in the class vector.
func (a *Attributes) Inherits(name string) bool {
	for _, c := range a.class {
		if c == name {
			return true
		}
	}

	return false
}

// Logical values.
const (
	False int32 = 0
	True  int32 = 1
)

// Char is one element of a Character vector. NA marks the missing string,
// which is distinct from the empty string.
type Char struct {
	Value string
	NA    bool
}

// NAChar is the missing string.
var NAChar = Char{NA: true}

// Str returns a non-missing Char holding s.
func Str(s string) Char { return Char{Value: s} }

// String renders the element, using "NA" for the missing string.
func (c Char) String() string {
	if c.NA {
		return "NA"
	}

	return c.Value
}

// ---------- concrete vectors ----------

// Raw is a vector of bytes.
type Raw struct {
	Attributes
	Data []byte
}

// Logical is a vector of tri-state booleans (False, True, NALogical).
type Logical struct {
	Attributes
	Data []int32
}

// Integer is a vector of 32-bit integers; NAInteger marks missing values.
type Integer struct {
	Attributes
	Data []int32
}

// Double is a vector of float64. With class "integer64" each cell carries
// the bit pattern of an int64 instead (see NewInteger64).
type Double struct {
	Attributes
	Data []float64
}

// Complex is a vector of complex128.
type Complex struct {
	Attributes
	Data []complex128
}

// Character is a vector of strings.
type Character struct {
	Attributes
	Data []Char
}

// List is a generic vector; a nil element is the empty value.
type List struct {
	Attributes
	Data []Vector
}

// PairList is the legacy linked-list container. It is not a vector type for
// promotion purposes but converts to List element by element.
type PairList struct {
	Attributes
	Data []Vector
}

// Expression is a vector of unevaluated expressions.
type Expression struct {
	Attributes
	Data []Vector
}

// Language is a single non-vector value such as a symbol or a call.
// It has no element-wise semantics; Len reports 1.
type Language struct {
	Attributes
	Expr string
}

func (v *Raw) Type() Type        { return TypeRaw }
func (v *Logical) Type() Type    { return TypeLogical }
func (v *Integer) Type() Type    { return TypeInteger }
func (v *Double) Type() Type     { return TypeDouble }
func (v *Complex) Type() Type    { return TypeComplex }
func (v *Character) Type() Type  { return TypeCharacter }
func (v *List) Type() Type       { return TypeList }
func (v *PairList) Type() Type   { return TypePairList }
func (v *Expression) Type() Type { return TypeExpression }
func (v *Language) Type() Type   { return TypeLanguage }

func (v *Raw) Len() int        { return len(v.Data) }
func (v *Logical) Len() int    { return len(v.Data) }
func (v *Integer) Len() int    { return len(v.Data) }
func (v *Double) Len() int     { return len(v.Data) }
func (v *Complex) Len() int    { return len(v.Data) }
func (v *Character) Len() int  { return len(v.Data) }
func (v *List) Len() int       { return len(v.Data) }
func (v *PairList) Len() int   { return len(v.Data) }
func (v *Expression) Len() int { return len(v.Data) }
func (v *Language) Len() int   { return 1 }

// String renders the language object by its source text.
func (v *Language) String() string { return v.Expr }

// Compile-time interface checks.
var (
	_ Vector = (*Raw)(nil)
	_ Vector = (*Logical)(nil)
	_ Vector = (*Integer)(nil)
	_ Vector = (*Double)(nil)
	_ Vector = (*Complex)(nil)
	_ Vector = (*Character)(nil)
	_ Vector = (*List)(nil)
	_ Vector = (*PairList)(nil)
	_ Vector = (*Expression)(nil)
	_ Vector = (*Language)(nil)
)

// ---------- constructors ----------

// NewRaw returns a Raw vector holding vals.
func NewRaw(vals ...byte) *Raw { return &Raw{Data: vals} }

// NewLogical returns a Logical vector holding vals (False, True or NALogical).
func NewLogical(vals ...int32) *Logical { return &Logical{Data: vals} }

// NewInteger returns an Integer vector holding vals.
func NewInteger(vals ...int32) *Integer { return &Integer{Data: vals} }

// NewDouble returns a Double vector holding vals.
func NewDouble(vals ...float64) *Double { return &Double{Data: vals} }

// NewComplex returns a Complex vector holding vals.
func NewComplex(vals ...complex128) *Complex { return &Complex{Data: vals} }

// NewCharacter returns a Character vector holding vals.
func NewCharacter(vals ...Char) *Character { return &Character{Data: vals} }

// Strings returns a Character vector with every element present.
func Strings(vals ...string) *Character {
	data := make([]Char, len(vals))
	for i, s := range vals {
		data[i] = Str(s)
	}

	return &Character{Data: data}
}

// NewList returns a List holding elems.
func NewList(elems ...Vector) *List { return &List{Data: elems} }

// NewPairList returns a PairList holding elems.
func NewPairList(elems ...Vector) *PairList { return &PairList{Data: elems} }

// NewExpression returns an Expression vector holding elems.
func NewExpression(elems ...Vector) *Expression { return &Expression{Data: elems} }

// NewLanguage returns a Language value with the given source text.
func NewLanguage(expr string) *Language { return &Language{Expr: expr} }

// New allocates a zero-valued vector of type t and length n.
// Zero values: 0 for numeric types, False for Logical, "" for Character,
// nil elements for the generic containers.
//
// Errors:
//   - ErrUnknownType for Language and values outside the enum (no length).
//   - ErrOutOfRange for n < 0.
//
// Complexity: O(n).
func New(t Type, n int) (Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("vec: New(%s, %d): %w", t, n, ErrOutOfRange)
	}
	switch t {
	case TypeRaw:
		return &Raw{Data: make([]byte, n)}, nil
	case TypeLogical:
		return &Logical{Data: make([]int32, n)}, nil
	case TypeInteger:
		return &Integer{Data: make([]int32, n)}, nil
	case TypeDouble:
		return &Double{Data: make([]float64, n)}, nil
	case TypeComplex:
		return &Complex{Data: make([]complex128, n)}, nil
	case TypeCharacter:
		return &Character{Data: make([]Char, n)}, nil
	case TypeList:
		return &List{Data: make([]Vector, n)}, nil
	case TypePairList:
		return &PairList{Data: make([]Vector, n)}, nil
	case TypeExpression:
		return &Expression{Data: make([]Vector, n)}, nil
	default:
		return nil, fmt.Errorf("vec: New(%s, %d): %w", t, n, ErrUnknownType)
	}
}

// Elem returns element i of v as its storage value: byte, int32, float64,
// int64 (integer64 Doubles), complex128, Char or Vector. A Language value
// returns itself for i == 0.
func Elem(v Vector, i int) (any, error) {
	if i < 0 || i >= v.Len() {
		return nil, fmt.Errorf("vec: Elem(%d) of %s[%d]: %w", i, v.Type(), v.Len(), ErrOutOfRange)
	}
	switch x := v.(type) {
	case *Raw:
		return x.Data[i], nil
	case *Logical:
		return x.Data[i], nil
	case *Integer:
		return x.Data[i], nil
	case *Double:
		if IsInteger64(x) {
			return x.Int64At(i), nil
		}
		return x.Data[i], nil
	case *Complex:
		return x.Data[i], nil
	case *Character:
		return x.Data[i], nil
	case *List:
		return x.Data[i], nil
	case *PairList:
		return x.Data[i], nil
	case *Expression:
		return x.Data[i], nil
	case *Language:
		return x, nil
	default:
		return nil, fmt.Errorf("vec: Elem on %s: %w", v.Type(), ErrUnknownType)
	}
}
