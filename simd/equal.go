package simd

import "encoding/binary"

// Equal reports whether the first n bytes of a and b compare equal.
//
// It reads in 8-byte SWAR chunks, comparing whole words at once and
// early-exiting on the first mismatched word, then finishes any remaining
// tail byte-by-byte. Both a and b must have at least n bytes; callers are
// responsible for that invariant (§5: no primitive reads outside the
// caller-provided ranges).
func Equal(a, b []byte, n int) bool {
	if n == 0 {
		return true
	}

	i := 0
	for i+8 <= n {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			return false
		}
		i += 8
	}
	for i < n {
		if a[i] != b[i] {
			return false
		}
		i++
	}
	return true
}

// EqualScalar is the byte-at-a-time reference tier, selectable via the
// dispatcher when the wide tier is restricted (e.g. by tests forcing a
// lower-tier kernel).
func EqualScalar(a, b []byte, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
