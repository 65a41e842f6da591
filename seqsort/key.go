// Package seqsort computes a stable lexicographic permutation over a
// collection of byte sequences (§4.7): a radix pass over fixed-width
// prefix keys produces a candidate ordering in O(N·K), and an
// introspective tail refinement resolves ties within each prefix-equal
// group by full lexicographic comparison.
package seqsort

// keyWidth is K from §4.7: the number of leading bytes packed into each
// sequence's fixed-width radix key. 8 bytes lets the radix pass discard
// most English-language or identifier-like inputs in a single pass while
// staying a single machine word.
const keyWidth = 8

// packKey copies the first keyWidth bytes of s into a fixed-width key,
// zero-padding short sequences so every key compares consistently
// regardless of the underlying sequence's length.
func packKey(s []byte) [keyWidth]byte {
	var key [keyWidth]byte
	n := len(s)
	if n > keyWidth {
		n = keyWidth
	}
	copy(key[:], s[:n])
	return key
}
