package editdist

import "math"

// Config controls a single Levenshtein computation.
type Config struct {
	// GapCost is charged for each inserted or deleted symbol.
	GapCost int
	// MismatchCost is charged when two symbols differ. GapCost 1 with
	// MismatchCost 1 produces the classic unit-cost Levenshtein distance.
	MismatchCost int
	// Bound, if >= 0, caps the computation: once every cell of an
	// anti-diagonal exceeds Bound, the scan stops early.
	Bound int
	// ErrorOnBoundExceed, if true, turns an exceeded bound into
	// ErrBoundExceeded instead of returning Bound as the result (§4.5,
	// §7: "returns an error if a supplied bound is exceeded (when
	// return_bound_on_exceed is configured)").
	ErrorOnBoundExceed bool
}

// NoBound indicates an unbounded computation.
const NoBound = -1

// ScratchSize returns the number of ints a caller must provide via the
// scratch parameter of the diagonal DP engine for inputs of length n and
// m. The engine needs three rotating anti-diagonal buffers, each
// min(n, m)+1 wide, the longest an anti-diagonal can be (§5: "the DP engine
// accepts a scratch buffer of size O(min(n,m))" per anti-diagonal).
func ScratchSize(n, m int) int {
	width := n
	if m < width {
		width = m
	}
	width++
	return 3 * width
}

// diagonalDP runs the §4.5 anti-diagonal traversal of the edit-distance
// recurrence:
//
//	D[0][0] = 0, D[i][0] = i*gap, D[0][j] = j*gap
//	D[i][j] = min(D[i-1][j]+gap, D[i][j-1]+gap, D[i-1][j-1]+subCost(i,j))
//
// subCost(i, j) is called with 1-based i, j (matching the recurrence above)
// and must return the cost of substituting symbol i-1 of a for symbol j-1
// of b.
//
// On anti-diagonal k = i+j, every cell depends only on diagonals k-1 and
// k-2, so the cells of k can be computed without a left-to-right
// dependency within the diagonal — the data dependency a row-major
// Wagner-Fisher pass has on the cell immediately to its left is gone
// under this traversal order.
//
// scratch must have length >= ScratchSize(n, m) and is never reallocated;
// the three rotating windows into it hold diagonals k-2, k-1 and k.
func diagonalDP(n, m int, gapCost int, subCost func(i, j int) int, cfg Config, scratch []int) (int, error) {
	width := n
	if m < width {
		width = m
	}
	width++
	if len(scratch) < 3*width {
		return 0, &DistanceError{Op: "diagonalDP", Err: ErrInvalidArgument}
	}

	bufs := [3][]int{
		scratch[0*width : 1*width],
		scratch[1*width : 2*width],
		scratch[2*width : 3*width],
	}
	// roles[0] = diagonal k-2, roles[1] = diagonal k-1, roles[2] = diagonal k (being built)
	roles := [3]int{0, 1, 2}

	imin := func(k int) int {
		v := k - m
		if v < 0 {
			v = 0
		}
		return v
	}
	imax := func(k int) int {
		v := k
		if n < v {
			v = n
		}
		return v
	}
	// get fetches D[i][k-i] from the diagonal stored in bufs[roles[slot]],
	// which was built for anti-diagonal dk.
	get := func(slot int, dk int, i int) int {
		off := i - imin(dk)
		return bufs[roles[slot]][off]
	}

	for k := 0; k <= n+m; k++ {
		lo, hi := imin(k), imax(k)
		cur := bufs[roles[2]]
		rowBest := math.MaxInt
		for i := lo; i <= hi; i++ {
			j := k - i
			var val int
			switch {
			case i == 0:
				val = j * gapCost
			case j == 0:
				val = i * gapCost
			default:
				diagVal := get(0, k-2, i-1) + subCost(i, j)
				upVal := get(1, k-1, i-1) + gapCost
				leftVal := get(1, k-1, i) + gapCost
				val = diagVal
				if upVal < val {
					val = upVal
				}
				if leftVal < val {
					val = leftVal
				}
			}
			cur[i-lo] = val
			if val < rowBest {
				rowBest = val
			}
		}
		if cfg.Bound >= 0 && rowBest > cfg.Bound {
			if cfg.ErrorOnBoundExceed {
				return 0, &DistanceError{Op: "diagonalDP", Err: ErrBoundExceeded}
			}
			return cfg.Bound, nil
		}
		roles[0], roles[1], roles[2] = roles[1], roles[2], roles[0]
	}

	// After the loop, the final diagonal (k = n+m) was built into what is
	// now roles[1] (the last rotation moved "roles[2]" into slot 1).
	finalBuf := bufs[roles[1]]
	return finalBuf[n-imin(n+m)], nil
}
