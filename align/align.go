package align

// NeedlemanWunsch computes the global alignment score between a and b
// (§4.6): the same affine-gap recurrence as editdist's Gotoh variant but
// with arbitrary signed substitution scores instead of a flat
// match/mismatch cost, and no zero floor — the reported score is D[n][m].
//
// It allocates a scratch buffer of ScratchSize(len(a), len(b)) int32s.
func NeedlemanWunsch(a, b []byte, cfg Config) (int32, error) {
	scratch := make([]int32, ScratchSize(len(a), len(b)))
	return NeedlemanWunschScratch(a, b, cfg, scratch)
}

// NeedlemanWunschScratch is NeedlemanWunsch with a caller-supplied scratch
// buffer, avoiding the allocation NeedlemanWunsch performs on the caller's
// behalf. scratch must have length >= ScratchSize(len(a), len(b)).
func NeedlemanWunschScratch(a, b []byte, cfg Config, scratch []int32) (int32, error) {
	return gotoh(a, b, cfg, false, scratch)
}

// SmithWaterman computes the best local alignment score between a and b
// (§4.6): as NeedlemanWunsch but every cell is floored at zero, and the
// reported score is the maximum over the entire matrix rather than the
// final cell.
//
// It allocates a scratch buffer of ScratchSize(len(a), len(b)) int32s.
func SmithWaterman(a, b []byte, cfg Config) (int32, error) {
	scratch := make([]int32, ScratchSize(len(a), len(b)))
	return SmithWatermanScratch(a, b, cfg, scratch)
}

// SmithWatermanScratch is SmithWaterman with a caller-supplied scratch
// buffer. scratch must have length >= ScratchSize(len(a), len(b)).
func SmithWatermanScratch(a, b []byte, cfg Config, scratch []int32) (int32, error) {
	return gotoh(a, b, cfg, true, scratch)
}
