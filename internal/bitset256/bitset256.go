// Package bitset256 implements a fixed 256-bit bitmap over byte values,
// used by simd's byte-set search primitives to test "is this byte a member
// of the set" in O(1).
package bitset256

import "math/bits"

// Set is a 256-bit bitmap over byte values 0..255, stored as four uint64
// words. Construction from a byte sequence is idempotent; duplicate bytes
// are harmless.
type Set struct {
	words [4]uint64
}

// New builds a Set containing every distinct byte in members.
func New(members []byte) Set {
	var s Set
	for _, b := range members {
		s.Add(b)
	}
	return s
}

// Add inserts b into the set. Adding an already-present byte is a no-op.
func (s *Set) Add(b byte) {
	s.words[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is a member of the set.
func (s Set) Contains(b byte) bool {
	return s.words[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of distinct bytes in the set.
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}
