package byteprim

import (
	"github.com/coregx/byteprim/internal/bitset256"
	"github.com/coregx/byteprim/simd"
)

// NotFound is the sentinel offset returned when a search finds no match
// (§6: "Not-found is a dedicated sentinel value").
const NotFound = -1

// Find returns the offset of the first occurrence of needle in haystack,
// or NotFound if needle does not occur.
//
// Example:
//
//	byteprim.Find([]byte("hello world"), []byte("world")) // 6
func Find(haystack, needle []byte) int {
	return toSentinel(Dispatch.Find(haystack, needle))
}

// RFind returns the offset of the last occurrence of needle in haystack,
// or NotFound if needle does not occur.
func RFind(haystack, needle []byte) int {
	return toSentinel(Dispatch.RFind(haystack, needle))
}

// FindByte returns the offset of the first occurrence of b in haystack,
// or NotFound.
func FindByte(haystack []byte, b byte) int {
	return toSentinel(Dispatch.FindByte(haystack, b))
}

// RFindByte returns the offset of the last occurrence of b in haystack,
// or NotFound.
func RFindByte(haystack []byte, b byte) int {
	return toSentinel(Dispatch.RFindByte(haystack, b))
}

// ByteSet is a 256-bit membership set used by FindByteSet/RFindByteSet.
type ByteSet = bitset256.Set

// NewByteSet builds a ByteSet containing every byte in members.
func NewByteSet(members ...byte) ByteSet {
	return bitset256.New(members)
}

// FindByteSet returns the offset of the first byte in haystack that
// belongs to set, or NotFound.
func FindByteSet(haystack []byte, set ByteSet) int {
	return toSentinel(Dispatch.FindByteSet(haystack, set))
}

// RFindByteSet returns the offset of the last byte in haystack that
// belongs to set, or NotFound.
func RFindByteSet(haystack []byte, set ByteSet) int {
	return toSentinel(Dispatch.RFindByteSet(haystack, set))
}

// toSentinel maps the internal "not found" encoding (simd.NotFound, used
// by every dispatcher tier) onto the exported NotFound constant, so callers
// never see the internal encoding.
func toSentinel(off int) int {
	if off == simd.NotFound {
		return NotFound
	}
	return off
}
