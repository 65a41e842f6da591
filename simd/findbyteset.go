package simd

import "github.com/coregx/byteprim/internal/bitset256"

// FindByteSet returns the smallest index i such that h[i] is a member of
// set, or NotFound. Construct set via bitset256.New.
//
// The scalar loop tests each haystack byte against the 256-bit bitmap in
// O(1) per byte via bitset256.Set.Contains; this package does not carry a
// vectorized byte-shuffle variant (no assembly backend survived the
// retrieval), so FindByteSet and its scalar tier coincide.
func FindByteSet(h []byte, set bitset256.Set) int {
	for i, c := range h {
		if set.Contains(c) {
			return i
		}
	}
	return NotFound
}

// RFindByteSet returns the largest index i such that h[i] is a member of
// set, or NotFound.
func RFindByteSet(h []byte, set bitset256.Set) int {
	for i := len(h) - 1; i >= 0; i-- {
		if set.Contains(h[i]) {
			return i
		}
	}
	return NotFound
}
