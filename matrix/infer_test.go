// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabmat/matrix"
	"github.com/katalvlaran/tabmat/vec"
)

// permutations returns every ordering of cols (Heap's algorithm).
func permutations(cols []vec.Vector) [][]vec.Vector {
	work := append([]vec.Vector(nil), cols...)
	var out [][]vec.Vector
	var gen func(k int)
	gen = func(k int) {
		if k <= 1 {
			out = append(out, append([]vec.Vector(nil), work...))
			return
		}
		gen(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
			gen(k - 1)
		}
	}
	gen(len(work))

	return out
}

// TestInferType_Lattice checks the plain maximum over the atomic ladder.
func TestInferType_Lattice(t *testing.T) {
	cases := []struct {
		name string
		cols []vec.Vector
		want vec.Type
	}{
		{"empty", nil, vec.TypeRaw},
		{"raw only", []vec.Vector{vec.NewRaw(1)}, vec.TypeRaw},
		{"raw+logical", []vec.Vector{vec.NewRaw(1), vec.NewLogical(vec.True)}, vec.TypeLogical},
		{"logical+integer", []vec.Vector{vec.NewLogical(vec.True), vec.NewInteger(1)}, vec.TypeInteger},
		{"integer+double", []vec.Vector{vec.NewInteger(1), vec.NewDouble(1)}, vec.TypeDouble},
		{"double+complex", []vec.Vector{vec.NewDouble(1), vec.NewComplex(1)}, vec.TypeComplex},
		{"complex+character", []vec.Vector{vec.NewComplex(1), vec.Strings("a")}, vec.TypeCharacter},
		{"character+list", []vec.Vector{vec.Strings("a"), vec.NewList(nil)}, vec.TypeList},
		{"pairlist", []vec.Vector{vec.NewInteger(1), vec.NewPairList(nil)}, vec.TypeList},
		{"expression", []vec.Vector{vec.NewExpression(nil)}, vec.TypeList},
		{"language", []vec.Vector{vec.NewLanguage("x")}, vec.TypeList},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, wide := matrix.InferType(tc.cols)
			assert.Equal(t, tc.want, got)
			assert.False(t, wide)
		})
	}
}

// TestInferType_OrderIndependent folds every permutation to the same type.
// Without a List the integer64 flag is order independent too.
func TestInferType_OrderIndependent(t *testing.T) {
	cases := []struct {
		set       []vec.Vector
		checkWide bool
	}{
		{[]vec.Vector{vec.NewLogical(vec.True), vec.NewInteger(1), vec.NewRaw(2), vec.NewDouble(1.5)}, true},
		{[]vec.Vector{vec.NewInteger64(1), vec.NewLogical(vec.False), vec.NewInteger(3)}, true},
		{[]vec.Vector{vec.NewInteger64(1), vec.NewDouble(2), vec.NewRaw(0)}, true},
		{[]vec.Vector{vec.NewInteger64(1), vec.NewList(nil), vec.Strings("a"), vec.NewLanguage("f()")}, false},
	}
	for _, tc := range cases {
		wantType, wantWide := matrix.InferType(tc.set)
		for _, perm := range permutations(tc.set) {
			gotType, gotWide := matrix.InferType(perm)
			require.Equal(t, wantType, gotType)
			if tc.checkWide {
				require.Equal(t, wantWide, gotWide)
			}
		}
	}
}

// TestInferType_Integer64AfterList ignores integer64 columns once List is reached.
func TestInferType_Integer64AfterList(t *testing.T) {
	got, wide := matrix.InferType([]vec.Vector{vec.NewList(nil), vec.NewInteger64(1)})
	assert.Equal(t, vec.TypeList, got)
	assert.False(t, wide)

	got, wide = matrix.InferType([]vec.Vector{vec.NewInteger64(1), vec.NewList(nil)})
	assert.Equal(t, vec.TypeList, got)
	assert.True(t, wide)

	got, wide = matrix.InferType([]vec.Vector{vec.NewLanguage("f()"), vec.NewInteger64(1)})
	assert.Equal(t, vec.TypeList, got)
	assert.False(t, wide)
}

// TestInferType_ListAbsorbs ensures nothing outranks a List once seen.
func TestInferType_ListAbsorbs(t *testing.T) {
	for _, other := range []vec.Vector{
		vec.NewRaw(1), vec.NewComplex(1), vec.Strings("x"),
		vec.NewInteger64(7), vec.NewExpression(nil), vec.NewLanguage("q"),
	} {
		got, _ := matrix.InferType([]vec.Vector{vec.NewList(nil), other})
		assert.Equal(t, vec.TypeList, got, "with %s", other.Type())
		got, _ = matrix.InferType([]vec.Vector{other, vec.NewList(nil)})
		assert.Equal(t, vec.TypeList, got, "with %s first", other.Type())
	}
}

// TestInferType_Integer64FixUp covers each branch of the wide-integer rule.
func TestInferType_Integer64FixUp(t *testing.T) {
	wide := vec.NewInteger64(1)
	cases := []struct {
		name  string
		other vec.Vector
		want  vec.Type
	}{
		{"alone", nil, vec.TypeDouble},
		{"raw", vec.NewRaw(1), vec.TypeDouble},
		{"logical", vec.NewLogical(vec.True), vec.TypeDouble},
		{"integer", vec.NewInteger(1), vec.TypeDouble},
		{"double", vec.NewDouble(1), vec.TypeCharacter},
		{"complex", vec.NewComplex(1), vec.TypeCharacter},
		{"character", vec.Strings("a"), vec.TypeCharacter},
		{"list", vec.NewList(nil), vec.TypeList},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols := []vec.Vector{wide}
			if tc.other != nil {
				cols = append(cols, tc.other)
			}
			got, isWide := matrix.InferType(cols)
			assert.Equal(t, tc.want, got)
			assert.True(t, isWide)
		})
	}
}
