package simd

import (
	"encoding/binary"
	"math/bits"
)

// Ordering is the result of comparing two byte ranges lexicographically.
type Ordering int

const (
	Less Ordering = -1
	Eq   Ordering = 0
	Greater Ordering = 1
)

// Order performs a lexicographic comparison of a[:la] against b[:lb].
//
// It compares min(la, lb) bytes; on the first inequality the byte with the
// smaller unsigned value is Less. If all compared bytes are equal, the
// shorter range is Less; equal-length ranges with all-equal bytes are Eq.
//
// Comparison proceeds in 8-byte SWAR chunks: on an unequal word, the two
// words are byte-swapped to big-endian (so the lowest-address byte
// dominates the comparison, matching what a byte-by-byte scan would decide)
// before comparing them as plain uint64s.
func Order(a []byte, la int, b []byte, lb int) Ordering {
	n := la
	if lb < n {
		n = lb
	}

	i := 0
	for i+8 <= n {
		wa := binary.LittleEndian.Uint64(a[i:])
		wb := binary.LittleEndian.Uint64(b[i:])
		if wa != wb {
			// Byte-swap so the lowest-address byte occupies the highest-order
			// bits: comparing the swapped words as unsigned integers then
			// agrees with a left-to-right byte-by-byte comparison.
			if bits.ReverseBytes64(wa) < bits.ReverseBytes64(wb) {
				return Less
			}
			return Greater
		}
		i += 8
	}
	for i < n {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
		i++
	}

	switch {
	case la < lb:
		return Less
	case la > lb:
		return Greater
	default:
		return Eq
	}
}

// OrderScalar is the byte-at-a-time reference tier.
func OrderScalar(a []byte, la int, b []byte, lb int) Ordering {
	n := la
	if lb < n {
		n = lb
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
	}
	switch {
	case la < lb:
		return Less
	case la > lb:
		return Greater
	default:
		return Eq
	}
}
