// SPDX-License-Identifier: MIT

package vec

import (
	"math"
	"strconv"
)

// significantDigits bounds the digits used when rendering doubles as text.
const significantDigits = 15

// FormatRaw renders a byte as two lower-case hex digits.
func FormatRaw(b byte) Char {
	const hex = "0123456789abcdef"

	return Str(string([]byte{hex[b>>4], hex[b&0x0f]}))
}

// FormatLogical renders TRUE, FALSE or the missing string.
func FormatLogical(x int32) Char {
	switch x {
	case NALogical:
		return NAChar
	case False:
		return Str("FALSE")
	default:
		return Str("TRUE")
	}
}

// FormatInteger renders x in decimal or the missing string.
func FormatInteger(x int32) Char {
	if x == NAInteger {
		return NAChar
	}

	return Str(strconv.FormatInt(int64(x), 10))
}

// FormatDouble renders x with up to 15 significant digits.
// NADouble becomes the missing string; other NaNs render as "NaN".
func FormatDouble(x float64) Char {
	if IsNADouble(x) {
		return NAChar
	}

	return Str(formatFloat(x))
}

// FormatComplex renders c as "re+imi" (e.g. "1+2i", "0-1.5i").
func FormatComplex(c complex128) Char {
	if IsNAComplex(c) {
		return NAChar
	}
	re, im := real(c), imag(c)
	sign := "+"
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}

	return Str(formatFloat(re) + sign + formatFloat(im) + "i")
}

func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}

	return strconv.FormatFloat(x, 'g', significantDigits, 64)
}
