// SPDX-License-Identifier: MIT

package arrowtab

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/katalvlaran/tabmat/table"
	"github.com/katalvlaran/tabmat/vec"
)

// FromRecord converts every column of rec into a table column.
// The record is only read; the caller keeps ownership.
//
// Errors: ErrNilInput, ErrUnsupportedType, table construction errors.
// Complexity: O(rows*cols).
func FromRecord(rec arrow.Record) (*table.Table, error) {
	if rec == nil {
		return nil, fmt.Errorf("arrowtab: FromRecord: %w", ErrNilInput)
	}
	schema := rec.Schema()
	names := make([]string, rec.NumCols())
	cols := make([]vec.Vector, rec.NumCols())
	for j := range cols {
		field := schema.Field(j)
		col, err := column(field.Type, []arrow.Array{rec.Column(j)})
		if err != nil {
			return nil, fmt.Errorf("arrowtab: FromRecord: column %q: %w", field.Name, err)
		}
		names[j], cols[j] = field.Name, col
	}

	return table.New(names, cols...)
}

// FromTable converts a chunked Arrow table, concatenating the chunks of
// each column. The table is only read; the caller keeps ownership.
//
// Errors: ErrNilInput, ErrUnsupportedType, table construction errors.
// Complexity: O(rows*cols).
func FromTable(tbl arrow.Table) (*table.Table, error) {
	if tbl == nil {
		return nil, fmt.Errorf("arrowtab: FromTable: %w", ErrNilInput)
	}
	ncol := int(tbl.NumCols())
	names := make([]string, ncol)
	cols := make([]vec.Vector, ncol)
	for j := 0; j < ncol; j++ {
		c := tbl.Column(j)
		col, err := column(c.DataType(), c.Data().Chunks())
		if err != nil {
			return nil, fmt.Errorf("arrowtab: FromTable: column %q: %w", c.Name(), err)
		}
		names[j], cols[j] = c.Name(), col
	}

	return table.New(names, cols...)
}

// valuer is any typed Arrow array exposing Value(i).
type valuer[T any] interface {
	arrow.Array
	Value(i int) T
}

// gather concatenates chunks element by element, mapping nulls to na.
func gather[T, E any](chunks []arrow.Array, na E, conv func(T) E) []E {
	n := 0
	for _, c := range chunks {
		n += c.Len()
	}
	out := make([]E, 0, n)
	for _, c := range chunks {
		a := c.(valuer[T])
		for i := 0; i < a.Len(); i++ {
			if a.IsNull(i) {
				out = append(out, na)
				continue
			}
			out = append(out, conv(a.Value(i)))
		}
	}

	return out
}

func widen[T int8 | int16 | int32 | uint8 | uint16](x T) int32 { return int32(x) }

func widen64[T int64 | uint32](x T) int64 { return int64(x) }

func identity[T any](x T) T { return x }

func boolToLogical(b bool) int32 {
	if b {
		return vec.True
	}

	return vec.False
}

// column converts the chunks of one Arrow column of type dt.
func column(dt arrow.DataType, chunks []arrow.Array) (vec.Vector, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return vec.NewLogical(gather(chunks, vec.NALogical, boolToLogical)...), nil
	case arrow.INT8:
		return vec.NewInteger(gather(chunks, vec.NAInteger, widen[int8])...), nil
	case arrow.INT16:
		return vec.NewInteger(gather(chunks, vec.NAInteger, widen[int16])...), nil
	case arrow.INT32:
		return vec.NewInteger(gather(chunks, vec.NAInteger, widen[int32])...), nil
	case arrow.UINT8:
		return vec.NewInteger(gather(chunks, vec.NAInteger, widen[uint8])...), nil
	case arrow.UINT16:
		return vec.NewInteger(gather(chunks, vec.NAInteger, widen[uint16])...), nil
	case arrow.INT64:
		return vec.NewInteger64(gather(chunks, vec.NAInteger64, widen64[int64])...), nil
	case arrow.UINT32:
		return vec.NewInteger64(gather(chunks, vec.NAInteger64, widen64[uint32])...), nil
	case arrow.FLOAT32:
		return vec.NewDouble(gather(chunks, vec.NADouble, func(x float32) float64 { return float64(x) })...), nil
	case arrow.FLOAT64:
		return vec.NewDouble(gather(chunks, vec.NADouble, identity[float64])...), nil
	case arrow.STRING, arrow.LARGE_STRING:
		return vec.NewCharacter(gather(chunks, vec.NAChar, vec.Str)...), nil
	case arrow.LIST, arrow.LARGE_LIST:
		return listColumn(dt.(arrow.ListLikeType).Elem(), chunks)
	default:
		return nil, fmt.Errorf("%s: %w", dt, ErrUnsupportedType)
	}
}

// listColumn converts list chunks into a List of per-row vectors.
func listColumn(elem arrow.DataType, chunks []arrow.Array) (vec.Vector, error) {
	var cells []vec.Vector
	for _, c := range chunks {
		a := c.(array.ListLike)
		values := a.ListValues()
		for i := 0; i < a.Len(); i++ {
			if a.IsNull(i) {
				cells = append(cells, nil)
				continue
			}
			start, end := a.ValueOffsets(i)
			cell, err := sliceColumn(elem, values, start, end)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
	}

	return vec.NewList(cells...), nil
}

// sliceColumn converts values[start:end] and releases the slice.
func sliceColumn(dt arrow.DataType, values arrow.Array, start, end int64) (vec.Vector, error) {
	s := array.NewSlice(values, start, end)
	defer s.Release()

	return column(dt, []arrow.Array{s})
}
