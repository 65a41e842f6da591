package byteprim

import "github.com/coregx/byteprim/simd"

// Ordering is the three-way result of Order.
type Ordering = simd.Ordering

// Three-way comparison results (§6).
const (
	Less    = simd.Less
	Equal   = simd.Eq
	Greater = simd.Greater
)

// Order performs a three-way lexicographic comparison of a and b.
func Order(a, b []byte) Ordering {
	return Dispatch.Order(a, len(a), b, len(b))
}

// ByteEqual reports whether a and b are equal as byte ranges.
//
// Example:
//
//	byteprim.ByteEqual([]byte("abc"), []byte("abc")) // true
func ByteEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return Dispatch.Equal(a, b, len(a))
}
