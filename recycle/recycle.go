// SPDX-License-Identifier: MIT

// Package recycle copies a source vector into a slice of a destination
// vector, converting element types on the way.
//
// Into is the bulk-fill primitive used when a table is materialized into a
// matrix buffer. It knows the numeric ladder (raw → logical → integer →
// double → complex), renders atomic values as text, and is integer64-aware
// for Double destinations tagged with class "integer64". It deliberately does
// NOT render complex numbers or integer64 values as text and does not box
// scalars into lists; callers pre-coerce those cases.
//
// Complexity: O(n) per call, no allocation beyond the formatted strings.
package recycle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tabmat/vec"
)

// maxExactInt is the largest magnitude a float64 represents without gaps.
const maxExactInt = 1 << 53

// Into writes n values of src, starting at srcStart, into dst[dstStart:dstStart+n].
//
// Implementation:
//   - Stage 1: validate the destination window and the source extent. A
//     length-1 source is broadcast to all n cells (srcStart must be 0).
//   - Stage 2: pick a per-element reader for the source type.
//   - Stage 3: convert and store, counting values that could not be stored
//     exactly.
//
// Returns:
//   - warning: non-empty when precision was lost (fractions truncated,
//     out-of-range values set to NA or 0); the copy still completes.
//   - error: ErrOutOfRange, ErrShortSource or ErrUnsupported. Support is
//     decided before the first write, so dst is untouched on error.
func Into(dst vec.Vector, dstStart, n int, src vec.Vector, srcStart int) (string, error) {
	if dstStart < 0 || n < 0 || dstStart+n > dst.Len() {
		return "", fmt.Errorf("recycle: Into(dst[%d], start=%d, n=%d): %w", dst.Len(), dstStart, n, ErrOutOfRange)
	}
	if n == 0 {
		return "", nil
	}
	broadcast := src.Len() == 1 && srcStart == 0
	if !broadcast && (srcStart < 0 || srcStart+n > src.Len()) {
		return "", fmt.Errorf("recycle: Into(src[%d], start=%d, n=%d): %w", src.Len(), srcStart, n, ErrShortSource)
	}
	at := func(i int) int {
		if broadcast {
			return 0
		}
		return srcStart + i
	}

	var lost int
	var err error
	switch d := dst.(type) {
	case *vec.Raw:
		lost, err = intoRaw(d.Data[dstStart:dstStart+n], src, at)
	case *vec.Logical:
		lost, err = intoLogical(d.Data[dstStart:dstStart+n], src, at)
	case *vec.Integer:
		lost, err = intoInteger(d.Data[dstStart:dstStart+n], src, at)
	case *vec.Double:
		if vec.IsInteger64(d) {
			lost, err = intoInteger64(d.Data[dstStart:dstStart+n], src, at)
		} else {
			lost, err = intoDouble(d.Data[dstStart:dstStart+n], src, at)
		}
	case *vec.Complex:
		lost, err = intoComplex(d.Data[dstStart:dstStart+n], src, at)
	case *vec.Character:
		err = intoCharacter(d.Data[dstStart:dstStart+n], src, at)
	case *vec.List:
		err = intoList(d.Data[dstStart:dstStart+n], src, at)
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return "", fmt.Errorf("recycle: %s into %s: %w", typeName(src), typeName(dst), err)
	}
	if lost > 0 {
		return fmt.Sprintf("coercing %s to %s lost precision in %d of %d values", typeName(src), typeName(dst), lost, n), nil
	}

	return "", nil
}

// typeName names the logical type, reporting integer64 separately from double.
func typeName(v vec.Vector) string {
	if vec.IsInteger64(v) {
		return vec.ClassInteger64
	}

	return v.Type().String()
}

// floatReader yields element i as a float64; na marks a missing value and
// lossy marks a value that does not survive the conversion exactly.
type floatReader func(i int) (x float64, na, lossy bool)

// intReader yields element i as an int64 with the same flags.
type intReader func(i int) (x int64, na, lossy bool)

func readFloat(src vec.Vector) (floatReader, error) {
	switch s := src.(type) {
	case *vec.Raw:
		return func(i int) (float64, bool, bool) { return float64(s.Data[i]), false, false }, nil
	case *vec.Logical:
		return func(i int) (float64, bool, bool) {
			x := s.Data[i]
			return float64(x), x == vec.NALogical, false
		}, nil
	case *vec.Integer:
		return func(i int) (float64, bool, bool) {
			x := s.Data[i]
			return float64(x), x == vec.NAInteger, false
		}, nil
	case *vec.Double:
		if vec.IsInteger64(s) {
			return func(i int) (float64, bool, bool) {
				x := s.Int64At(i)
				if x == vec.NAInteger64 {
					return 0, true, false
				}
				return float64(x), false, x > maxExactInt || x < -maxExactInt
			}, nil
		}
		return func(i int) (float64, bool, bool) {
			x := s.Data[i]
			return x, vec.IsNADouble(x), false
		}, nil
	default:
		return nil, ErrUnsupported
	}
}

func readInt(src vec.Vector) (intReader, error) {
	switch s := src.(type) {
	case *vec.Raw:
		return func(i int) (int64, bool, bool) { return int64(s.Data[i]), false, false }, nil
	case *vec.Logical:
		return func(i int) (int64, bool, bool) {
			x := s.Data[i]
			return int64(x), x == vec.NALogical, false
		}, nil
	case *vec.Integer:
		return func(i int) (int64, bool, bool) {
			x := s.Data[i]
			return int64(x), x == vec.NAInteger, false
		}, nil
	case *vec.Double:
		if vec.IsInteger64(s) {
			return func(i int) (int64, bool, bool) {
				x := s.Int64At(i)
				return x, x == vec.NAInteger64, false
			}, nil
		}
		return func(i int) (int64, bool, bool) {
			x := s.Data[i]
			switch {
			case math.IsNaN(x):
				return 0, true, !vec.IsNADouble(x)
			case x >= math.MaxInt64 || x <= math.MinInt64:
				return 0, true, true
			}
			t := math.Trunc(x)
			return int64(t), false, t != x
		}, nil
	default:
		return nil, ErrUnsupported
	}
}

func intoRaw(dst []byte, src vec.Vector, at func(int) int) (int, error) {
	get, err := readInt(src)
	if err != nil {
		return 0, err
	}
	lost := 0
	for i := range dst {
		x, na, lossy := get(at(i))
		if na || x < 0 || x > math.MaxUint8 {
			dst[i] = 0
			lost++
			continue
		}
		dst[i] = byte(x)
		if lossy {
			lost++
		}
	}

	return lost, nil
}

func intoLogical(dst []int32, src vec.Vector, at func(int) int) (int, error) {
	get, err := readFloat(src)
	if err != nil {
		return 0, err
	}
	for i := range dst {
		x, na, _ := get(at(i))
		switch {
		case na || math.IsNaN(x):
			dst[i] = vec.NALogical
		case x != 0:
			dst[i] = vec.True
		default:
			dst[i] = vec.False
		}
	}

	return 0, nil
}

func intoInteger(dst []int32, src vec.Vector, at func(int) int) (int, error) {
	get, err := readInt(src)
	if err != nil {
		return 0, err
	}
	lost := 0
	for i := range dst {
		x, na, lossy := get(at(i))
		if lossy {
			lost++
		}
		switch {
		case na:
			dst[i] = vec.NAInteger
		case x <= math.MinInt32 || x > math.MaxInt32:
			dst[i] = vec.NAInteger
			if !lossy {
				lost++
			}
		default:
			dst[i] = int32(x)
		}
	}

	return lost, nil
}

func intoInteger64(dst []float64, src vec.Vector, at func(int) int) (int, error) {
	get, err := readInt(src)
	if err != nil {
		return 0, err
	}
	lost := 0
	for i := range dst {
		x, na, lossy := get(at(i))
		if lossy {
			lost++
		}
		if na {
			dst[i] = vec.Int64ToBits(vec.NAInteger64)
			continue
		}
		dst[i] = vec.Int64ToBits(x)
	}

	return lost, nil
}

func intoDouble(dst []float64, src vec.Vector, at func(int) int) (int, error) {
	get, err := readFloat(src)
	if err != nil {
		return 0, err
	}
	lost := 0
	for i := range dst {
		x, na, lossy := get(at(i))
		if lossy {
			lost++
		}
		if na {
			dst[i] = vec.NADouble
			continue
		}
		dst[i] = x
	}

	return lost, nil
}

func intoComplex(dst []complex128, src vec.Vector, at func(int) int) (int, error) {
	if s, ok := src.(*vec.Complex); ok {
		for i := range dst {
			dst[i] = s.Data[at(i)]
		}
		return 0, nil
	}
	get, err := readFloat(src)
	if err != nil {
		return 0, err
	}
	lost := 0
	for i := range dst {
		x, na, lossy := get(at(i))
		if lossy {
			lost++
		}
		if na {
			dst[i] = vec.NAComplex
			continue
		}
		dst[i] = complex(x, 0)
	}

	return lost, nil
}

func intoCharacter(dst []vec.Char, src vec.Vector, at func(int) int) error {
	switch s := src.(type) {
	case *vec.Character:
		for i := range dst {
			dst[i] = s.Data[at(i)]
		}
	case *vec.Raw:
		for i := range dst {
			dst[i] = vec.FormatRaw(s.Data[at(i)])
		}
	case *vec.Logical:
		for i := range dst {
			dst[i] = vec.FormatLogical(s.Data[at(i)])
		}
	case *vec.Integer:
		for i := range dst {
			dst[i] = vec.FormatInteger(s.Data[at(i)])
		}
	case *vec.Double:
		if vec.IsInteger64(s) {
			return ErrUnsupported
		}
		for i := range dst {
			dst[i] = vec.FormatDouble(s.Data[at(i)])
		}
	default:
		return ErrUnsupported
	}

	return nil
}

func intoList(dst []vec.Vector, src vec.Vector, at func(int) int) error {
	s, ok := src.(*vec.List)
	if !ok {
		return ErrUnsupported
	}
	for i := range dst {
		dst[i] = s.Data[at(i)]
	}

	return nil
}
