package seqsort

import "github.com/coregx/byteprim/internal/conv"

// Argsort computes a permutation π of 0..len(seqs)-1 such that
// seqs[π[0]], seqs[π[1]], ... is non-decreasing lexicographically, stable
// on ties (§4.7). out must have length len(seqs); it is overwritten with
// the permutation and also returned for convenience.
func Argsort(seqs [][]byte, out []int) []int {
	n := len(seqs)
	if len(out) < n {
		out = make([]int, n)
	}
	if n == 0 {
		return out[:0]
	}

	keys := make([][keyWidth]byte, n)
	for i, s := range seqs {
		keys[i] = packKey(s)
	}
	order := radixSort(keys)

	get := func(i int) []byte { return seqs[i] }

	lo := 0
	for lo < n {
		hi := lo + 1
		for hi < n && keys[order[lo]] == keys[order[hi]] {
			hi++
		}
		tailRefine(order, lo, hi, get)
		lo = hi
	}

	copy(out, order)
	return out[:n]
}

// ArgsortTape is Argsort over sequences packed into a single contiguous
// tape, addressed by offsets: sequence i spans tape[offsets[i]:offsets[i+1]].
// This mirrors spec-level APIs that pass one flat buffer plus offsets
// instead of a slice of slices, avoiding N separate allocations in the
// caller.
func ArgsortTape(tape []byte, offsets []int, out []int) []int {
	n := len(offsets) - 1
	if n < 0 {
		n = 0
	}
	// The tape/offsets convention exists for callers passing N and an
	// offsets[N+1] array as fixed-width wire fields (§6); guard that N
	// actually fits the width that convention assumes.
	_ = conv.IntToUint32(n)
	seqs := make([][]byte, n)
	for i := 0; i < n; i++ {
		seqs[i] = tape[offsets[i]:offsets[i+1]]
	}
	return Argsort(seqs, out)
}
