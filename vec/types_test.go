// SPDX-License-Identifier: MIT
package vec_test

import (
	"testing"

	"github.com/katalvlaran/tabmat/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRank_TotalOrder checks the documented lattice order.
func TestRank_TotalOrder(t *testing.T) {
	order := []vec.Type{
		vec.TypeRaw, vec.TypeLogical, vec.TypeInteger, vec.TypeDouble,
		vec.TypeComplex, vec.TypeCharacter, vec.TypeList,
	}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Rank(), order[i].Rank(), "%s must rank below %s", order[i-1], order[i])
	}
	for _, other := range []vec.Type{vec.TypePairList, vec.TypeExpression, vec.TypeLanguage, vec.Type(200)} {
		assert.Greater(t, other.Rank(), vec.TypeList.Rank(), "%s must rank above list", other)
	}
}

// TestType_Classification covers IsAtomic and IsVector.
func TestType_Classification(t *testing.T) {
	assert.True(t, vec.TypeCharacter.IsAtomic())
	assert.False(t, vec.TypeList.IsAtomic())
	assert.True(t, vec.TypeList.IsVector())
	assert.True(t, vec.TypeExpression.IsVector())
	assert.False(t, vec.TypePairList.IsVector())
	assert.False(t, vec.TypeLanguage.IsVector())
}

// TestParseType round-trips every known type name.
func TestParseType(t *testing.T) {
	for typ := vec.TypeRaw; typ <= vec.TypeLanguage; typ++ {
		got, err := vec.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := vec.ParseType("int128")
	require.ErrorIs(t, err, vec.ErrUnknownType)
	assert.Equal(t, "unknown(200)", vec.Type(200).String())
}

// TestNew_ZeroValues verifies allocation per type.
func TestNew_ZeroValues(t *testing.T) {
	v, err := vec.New(vec.TypeCharacter, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	assert.Equal(t, vec.Str(""), v.(*vec.Character).Data[0])

	l, err := vec.New(vec.TypeList, 3)
	require.NoError(t, err)
	assert.Nil(t, l.(*vec.List).Data[2])

	_, err = vec.New(vec.TypeLanguage, 1)
	require.ErrorIs(t, err, vec.ErrUnknownType)

	_, err = vec.New(vec.TypeDouble, -1)
	require.ErrorIs(t, err, vec.ErrOutOfRange)
}

// TestAttributes_Class checks class bookkeeping and defensive copies.
func TestAttributes_Class(t *testing.T) {
	d := vec.NewDouble(1)
	assert.Nil(t, d.Attrs().Class())

	cls := []string{"a", "b"}
	d.Attrs().SetClass(cls)
	cls[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, d.Attrs().Class())
	assert.True(t, d.Attrs().Inherits("b"))

	d.Attrs().SetClass(nil)
	assert.Nil(t, d.Attrs().Class())
	assert.False(t, d.Attrs().Inherits("a"))
}

// TestElem reads storage values and reports bounds errors.
func TestElem(t *testing.T) {
	x, err := vec.Elem(vec.NewInteger64(-7), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), x)

	x, err = vec.Elem(vec.Strings("q"), 0)
	require.NoError(t, err)
	assert.Equal(t, vec.Str("q"), x)

	_, err = vec.Elem(vec.NewRaw(1), 1)
	require.ErrorIs(t, err, vec.ErrOutOfRange)
}
