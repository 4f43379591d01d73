// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabmat/matrix"
	"github.com/katalvlaran/tabmat/table"
	"github.com/katalvlaran/tabmat/vec"
)

// mustTable builds a table or fails the test.
func mustTable(t *testing.T, names []string, cols ...vec.Vector) *table.Table {
	t.Helper()
	tb, err := table.New(names, cols...)
	require.NoError(t, err)

	return tb
}

// fakeExpression claims the Expression type without being *vec.Expression.
type fakeExpression struct{ vec.Attributes }

func (*fakeExpression) Type() vec.Type { return vec.TypeExpression }
func (*fakeExpression) Len() int       { return 2 }

// fakeInteger claims an atomic type that no coercion knows how to box.
type fakeInteger struct{ vec.Attributes }

func (*fakeInteger) Type() vec.Type { return vec.TypeInteger }
func (*fakeInteger) Len() int       { return 2 }

// TestAsMatrix_LogicalIntoInteger widens a logical column next to an integer one.
func TestAsMatrix_LogicalIntoInteger(t *testing.T) {
	tb := mustTable(t, []string{"flag", "n"},
		vec.NewLogical(vec.True, vec.False), vec.NewInteger(1, 2))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	assert.Equal(t, vec.TypeInteger, m.Type())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []int32{1, 0, 1, 2}, m.Data().(*vec.Integer).Data)
	assert.Equal(t, []string{"flag", "n"}, m.Dimnames().Cols)
	assert.Nil(t, m.Dimnames().Rows)
}

// TestAsMatrix_Integer64WithCharacter formats wide integers as text.
func TestAsMatrix_Integer64WithCharacter(t *testing.T) {
	tb := mustTable(t, nil,
		vec.NewInteger64(10, vec.NAInteger64), vec.Strings("a", "b"))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	require.Equal(t, vec.TypeCharacter, m.Type())
	assert.Equal(t,
		[]vec.Char{vec.Str("10"), vec.NAChar, vec.Str("a"), vec.Str("b")},
		m.Data().(*vec.Character).Data)
	assert.False(t, m.IsWideInteger())
}

// TestAsMatrix_ListBoxesAtomicColumns boxes each integer into its own cell.
func TestAsMatrix_ListBoxesAtomicColumns(t *testing.T) {
	one, a := vec.NewDouble(1), vec.Strings("a")
	tb := mustTable(t, nil, vec.NewList(one, a), vec.NewInteger(5, 6))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	require.Equal(t, vec.TypeList, m.Type())
	cells := m.Data().(*vec.List).Data
	require.Len(t, cells, 4)
	assert.Same(t, one, cells[0])
	assert.Same(t, a, cells[1])
	assert.Equal(t, vec.NewInteger(5), cells[2])
	assert.Equal(t, vec.NewInteger(6), cells[3])
}

// TestAsMatrix_Integer64MarkerLifecycle shows the marker during fill and
// its removal afterwards.
func TestAsMatrix_Integer64MarkerLifecycle(t *testing.T) {
	tb := mustTable(t, nil,
		vec.NewInteger64(math.MaxInt64, vec.NAInteger64), vec.NewLogical(vec.True, vec.NALogical))

	var marked []bool
	spy := matrix.FillerFunc(func(dst vec.Vector, start, n int, src vec.Vector) (string, error) {
		marked = append(marked, vec.IsInteger64(dst))
		return matrix.RecycleFiller.Fill(dst, start, n, src)
	})

	m, err := matrix.AsMatrix(tb, nil, matrix.WithFiller(spy))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, marked, "marker must be attached before every fill")
	assert.Equal(t, vec.TypeDouble, m.Type())
	assert.Nil(t, m.Class(), "natural class restored after fill")
	assert.True(t, m.IsWideInteger())

	got, err := m.Int64At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
	got, err = m.Int64At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, vec.NAInteger64, got)
	got, err = m.Int64At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
	got, err = m.Int64At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, vec.NAInteger64, got)
}

// TestAsMatrix_RetainInteger64Class keeps the marker when asked to.
func TestAsMatrix_RetainInteger64Class(t *testing.T) {
	tb := mustTable(t, nil, vec.NewInteger64(1, 2), vec.NewInteger(3, 4))

	m, err := matrix.AsMatrix(tb, nil, matrix.WithRetainInteger64Class())
	require.NoError(t, err)
	assert.Equal(t, []string{vec.ClassInteger64}, m.Class())
	assert.True(t, vec.IsInteger64(m.Data()))
}

// TestAsMatrix_Integer64WithDouble falls back to text for both columns.
func TestAsMatrix_Integer64WithDouble(t *testing.T) {
	tb := mustTable(t, nil, vec.NewInteger64(-9007199254740993), vec.NewDouble(2.5))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	require.Equal(t, vec.TypeCharacter, m.Type())
	assert.Equal(t,
		[]vec.Char{vec.Str("-9007199254740993"), vec.Str("2.5")},
		m.Data().(*vec.Character).Data)
}

// TestAsMatrix_Integer64TextRoundTrip renders extremes and NA exactly.
func TestAsMatrix_Integer64TextRoundTrip(t *testing.T) {
	vals := []int64{0, -1, math.MaxInt64, math.MinInt64 + 1, vec.NAInteger64}
	tb := mustTable(t, nil, vec.NewInteger64(vals...), vec.NewComplex(0, 0, 0, 0, 1i))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	cells := m.Data().(*vec.Character).Data
	want := []vec.Char{
		vec.Str("0"), vec.Str("-1"), vec.Str("9223372036854775807"),
		vec.Str("-9223372036854775807"), vec.NAChar,
	}
	assert.Equal(t, want, cells[:5])
	assert.Equal(t, vec.Str("0+1i"), cells[9])
}

// TestAsMatrix_Integer64IntoList keeps each boxed value integer64.
func TestAsMatrix_Integer64IntoList(t *testing.T) {
	tb := mustTable(t, nil, vec.NewInteger64(5, 6), vec.NewList(nil, vec.Strings("z")))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	cells := m.Data().(*vec.List).Data
	require.True(t, vec.IsInteger64(cells[0]))
	assert.Equal(t, int64(6), cells[1].(*vec.Double).Int64At(0))
	assert.Nil(t, cells[2])
	assert.False(t, m.IsWideInteger())
}

// TestAsMatrix_ComplexIntoCharacter pre-renders complex values.
func TestAsMatrix_ComplexIntoCharacter(t *testing.T) {
	tb := mustTable(t, nil, vec.NewComplex(1+2i, vec.NAComplex), vec.Strings("x", "y"))

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	assert.Equal(t,
		[]vec.Char{vec.Str("1+2i"), vec.NAChar, vec.Str("x"), vec.Str("y")},
		m.Data().(*vec.Character).Data)
}

// TestAsMatrix_NonVectorColumns covers expression, pair-list and language columns.
func TestAsMatrix_NonVectorColumns(t *testing.T) {
	x, y := vec.NewLanguage("x"), vec.NewLanguage("y + 1")
	lang := vec.NewLanguage("f(x)")
	tb := mustTable(t, nil,
		vec.NewExpression(x, y),
		vec.NewPairList(vec.NewInteger(1), vec.Strings("p")),
		lang)

	m, err := matrix.AsMatrix(tb, nil)
	require.NoError(t, err)
	require.Equal(t, vec.TypeList, m.Type())
	cells := m.Data().(*vec.List).Data
	require.Len(t, cells, 6)

	assert.Equal(t, vec.NewExpression(x), cells[0], "each cell stays a one-element expression")
	assert.Equal(t, vec.NewExpression(y), cells[1])
	assert.Equal(t, vec.NewInteger(1), cells[2])
	assert.Equal(t, vec.Strings("p"), cells[3])
	assert.Same(t, lang, cells[4], "non-vector value repeated on every row")
	assert.Same(t, lang, cells[5])
}

// TestAsMatrix_ZeroRows returns early without touching the filler.
func TestAsMatrix_ZeroRows(t *testing.T) {
	never := matrix.FillerFunc(func(vec.Vector, int, int, vec.Vector) (string, error) {
		t.Fatal("filler must not run for zero rows")
		return "", nil
	})
	cases := []struct {
		name  string
		cols  []vec.Vector
		want  vec.Type
		class []string
	}{
		{"character", []vec.Vector{vec.NewInteger(), vec.Strings()}, vec.TypeCharacter, nil},
		{"integer64", []vec.Vector{vec.NewInteger64(), vec.NewLogical()}, vec.TypeDouble, []string{vec.ClassInteger64}},
		{"list", []vec.Vector{vec.NewList(), vec.NewDouble(), vec.NewRaw()}, vec.TypeList, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.AsMatrix(mustTable(t, nil, tc.cols...), []string{}, matrix.WithFiller(never))
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Type())
			assert.Equal(t, 0, m.Rows())
			assert.Equal(t, len(tc.cols), m.Cols())
			assert.Equal(t, 0, m.Data().Len())
			assert.Equal(t, tc.class, m.Class())
			assert.Equal(t, table.DefaultNames(len(tc.cols)), m.Dimnames().Cols)
			assert.Equal(t, []string{}, m.Dimnames().Rows)
		})
	}
}

// TestAsMatrix_RowNames attaches labels and rejects a wrong count.
func TestAsMatrix_RowNames(t *testing.T) {
	tb := mustTable(t, nil, vec.NewDouble(1, 2))

	m, err := matrix.AsMatrix(tb, []string{"r1", "r2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, m.Dimnames().Rows)

	_, err = matrix.AsMatrix(tb, []string{"only"})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAsMatrix_InputErrors covers nil and column-less tables.
func TestAsMatrix_InputErrors(t *testing.T) {
	_, err := matrix.AsMatrix(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilTable)

	_, err = matrix.AsMatrix(mustTable(t, nil), nil)
	require.ErrorIs(t, err, matrix.ErrNoColumns)
}

// TestAsMatrix_WarningsAreTagged forwards filler warnings with 1-based columns.
func TestAsMatrix_WarningsAreTagged(t *testing.T) {
	tb := mustTable(t, nil, vec.NewDouble(1, 2), vec.NewDouble(3, 4), vec.NewDouble(5, 6))
	lossy := matrix.FillerFunc(func(dst vec.Vector, start, n int, src vec.Vector) (string, error) {
		if _, err := matrix.RecycleFiller.Fill(dst, start, n, src); err != nil {
			return "", err
		}
		if start == n { // second column
			return "something was rounded", nil
		}
		return "", nil
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var got []matrix.Warning
	m, err := matrix.AsMatrix(tb, nil,
		matrix.WithFiller(lossy),
		matrix.WithLogger(logger),
		matrix.WithWarningHandler(func(w matrix.Warning) { got = append(got, w) }))
	require.NoError(t, err, "warnings are not fatal")
	require.NotNil(t, m)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Column)
	assert.Equal(t, "Column 2: something was rounded", got[0].String())
	assert.Contains(t, logs.String(), "precision lost")
	assert.Contains(t, logs.String(), "destination type resolved")
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data().(*vec.Double).Data)
}

// TestAsMatrix_FillerErrorAborts returns no matrix when a fill fails.
func TestAsMatrix_FillerErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := matrix.FillerFunc(func(vec.Vector, int, int, vec.Vector) (string, error) {
		calls++
		return "", boom
	})

	m, err := matrix.AsMatrix(mustTable(t, nil, vec.NewInteger(1), vec.NewInteger(2)), nil, matrix.WithFiller(failing))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "column 1")
	assert.Nil(t, m)
	assert.Equal(t, 1, calls)
}

// TestAsMatrix_InternalError reports columns no boxing path can handle.
func TestAsMatrix_InternalError(t *testing.T) {
	cases := []struct {
		name string
		col  vec.Vector
	}{
		{"expression impostor", &fakeExpression{}},
		{"atomic impostor", &fakeInteger{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb := mustTable(t, nil, vec.NewList(nil, nil), tc.col)
			m, err := matrix.AsMatrix(tb, nil)
			require.ErrorIs(t, err, matrix.ErrInternal)
			assert.Nil(t, m)
		})
	}
}
