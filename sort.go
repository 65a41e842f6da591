package byteprim

import "github.com/coregx/byteprim/seqsort"

// Argsort computes a permutation of 0..len(seqs)-1 such that
// seqs[perm[0]], seqs[perm[1]], ... is non-decreasing lexicographically,
// stable on ties (§4.7).
//
// Example:
//
//	perm := byteprim.Argsort([][]byte{[]byte("c"), []byte("b"), []byte("a")})
//	// perm == []int{2, 1, 0}
func Argsort(seqs [][]byte) []int {
	return seqsort.Argsort(seqs, make([]int, len(seqs)))
}

// ArgsortTape is Argsort over sequences packed into a single contiguous
// tape addressed by offsets, avoiding one allocation per sequence.
func ArgsortTape(tape []byte, offsets []int) []int {
	n := len(offsets) - 1
	if n < 0 {
		n = 0
	}
	return seqsort.ArgsortTape(tape, offsets, make([]int, n))
}
