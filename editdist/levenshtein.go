package editdist

// LevenshteinBytes computes the edit distance between a and b under a
// linear gap cost model (§4.5), using the anti-diagonal traversal order
// described in §4.5's "Diagonal traversal" subsection.
//
// scratch must have length >= ScratchSize(len(a), len(b)); the caller owns
// it and the engine performs no allocation.
//
// If cfg.Bound >= 0 and the true distance exceeds it, the result is
// cfg.Bound (or ErrBoundExceeded, if cfg.ErrorOnBoundExceed is set).
func LevenshteinBytes(a, b []byte, cfg Config, scratch []int) (int, error) {
	n, m := len(a), len(b)
	subCost := func(i, j int) int {
		if a[i-1] == b[j-1] {
			return 0
		}
		return cfg.MismatchCost
	}
	return diagonalDP(n, m, cfg.GapCost, subCost, cfg, scratch)
}
