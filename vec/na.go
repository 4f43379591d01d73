// SPDX-License-Identifier: MIT

package vec

import "math"

// Missing-value sentinels per storage type.
const (
	// NALogical marks a missing Logical element.
	NALogical int32 = math.MinInt32

	// NAInteger marks a missing Integer element.
	NAInteger int32 = math.MinInt32

	// naDoubleBits is a quiet NaN whose low word is 1954; ordinary NaN results
	// of arithmetic never carry this payload.
	naDoubleBits uint64 = 0x7FF00000000007A2
)

// NADouble marks a missing Double element. It is a NaN, so compare with
// IsNADouble rather than ==.
var NADouble = math.Float64frombits(naDoubleBits)

// NAComplex marks a missing Complex element.
var NAComplex = complex(NADouble, NADouble)

// IsNADouble reports whether x is the missing-value NaN (not any NaN).
func IsNADouble(x float64) bool {
	return math.IsNaN(x) && uint32(math.Float64bits(x)) == 1954
}

// IsNAComplex reports whether either part of c is missing.
func IsNAComplex(c complex128) bool {
	return IsNADouble(real(c)) || IsNADouble(imag(c))
}
