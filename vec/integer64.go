// SPDX-License-Identifier: MIT

// Package vec - integer64: a 64-bit signed integer stored in a Double slot.
//
// An integer64 vector is a *Double tagged with class "integer64". Each cell
// holds math.Float64frombits(uint64(v)); the float value itself is
// meaningless. The missing value is math.MinInt64, unrelated to NADouble.

package vec

import (
	"math"
	"strconv"
)

// ClassInteger64 is the class tag of wide-integer vectors.
const ClassInteger64 = "integer64"

// NAInteger64 marks a missing integer64 element.
const NAInteger64 int64 = math.MinInt64

// Int64TextLen is the size of the buffer needed to format any int64 in
// decimal: 19 digits, a sign and one spare byte.
const Int64TextLen = 21

// NewInteger64 returns an integer64 vector holding vals.
func NewInteger64(vals ...int64) *Double {
	data := make([]float64, len(vals))
	for i, x := range vals {
		data[i] = Int64ToBits(x)
	}
	d := &Double{Data: data}
	d.SetClass([]string{ClassInteger64})

	return d
}

// IsInteger64 reports whether v is a wide-integer vector.
func IsInteger64(v Vector) bool {
	if v == nil {
		return false
	}

	return v.Type() == TypeDouble && v.Attrs().Inherits(ClassInteger64)
}

// Int64ToBits stores x in a float64 cell.
func Int64ToBits(x int64) float64 { return math.Float64frombits(uint64(x)) }

// BitsToInt64 reads the int64 stored in a float64 cell.
func BitsToInt64(f float64) int64 { return int64(math.Float64bits(f)) }

// Int64At returns element i reinterpreted as int64. It does not check the
// class; callers decide whether the cells are integer64.
func (v *Double) Int64At(i int) int64 { return BitsToInt64(v.Data[i]) }

// SetInt64 stores x at element i as an int64 bit pattern.
func (v *Double) SetInt64(i int, x int64) { v.Data[i] = Int64ToBits(x) }

// FormatInt64 renders x in decimal, NAInteger64 as the missing string.
// The digits are produced into a fixed stack buffer.
func FormatInt64(x int64) Char {
	if x == NAInteger64 {
		return NAChar
	}
	var buf [Int64TextLen]byte

	return Str(string(strconv.AppendInt(buf[:0], x, 10)))
}
