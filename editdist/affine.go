package editdist

// AffineConfig controls an affine-gap edit-distance computation: opening a
// gap costs Open, and each symbol thereafter within the same gap costs
// Extend (§4.5's affine-gap variant, §4.6's Gotoh recurrence shared with
// the align package).
type AffineConfig struct {
	Open         int
	Extend       int
	MismatchCost int
}

const infCost = int(^uint(0) >> 1)

// AffineScratchSize returns the number of ints AffineLevenshteinBytes needs
// in its scratch slice for inputs of length n and m: three Gotoh matrices
// (M, Ix, Iy), each two rows of width m+1.
func AffineScratchSize(n, m int) int {
	return 6 * (m + 1)
}

// AffineLevenshteinBytes computes the affine-gap edit distance between a
// and b using Gotoh's three-matrix recurrence, traversed row-major (not
// anti-diagonal): each matrix needs only the previous row to compute the
// current one, so two rows per matrix suffice.
//
//	M[i][j]  = best score ending in a match/mismatch at (i,j)
//	Ix[i][j] = best score ending in a gap consuming a[i] (deletion)
//	Iy[i][j] = best score ending in a gap consuming b[j] (insertion)
//
// scratch must have length >= AffineScratchSize(len(a), len(b)).
func AffineLevenshteinBytes(a, b []byte, cfg AffineConfig, scratch []int) (int, error) {
	n, m := len(a), len(b)
	need := AffineScratchSize(n, m)
	if len(scratch) < need {
		return 0, &DistanceError{Op: "AffineLevenshteinBytes", Err: ErrInvalidArgument}
	}
	width := m + 1
	mPrev, mCur := scratch[0:width], scratch[width:2*width]
	xPrev, xCur := scratch[2*width:3*width], scratch[3*width:4*width]
	yPrev, yCur := scratch[4*width:5*width], scratch[5*width:6*width]

	mPrev[0] = 0
	xPrev[0] = infCost
	yPrev[0] = infCost
	for j := 1; j <= m; j++ {
		mPrev[j] = infCost
		xPrev[j] = infCost
		yPrev[j] = cfg.Open + (j-1)*cfg.Extend
	}

	for i := 1; i <= n; i++ {
		mCur[0] = infCost
		xCur[0] = cfg.Open + (i-1)*cfg.Extend
		yCur[0] = infCost

		for j := 1; j <= m; j++ {
			sub := cfg.MismatchCost
			if a[i-1] == b[j-1] {
				sub = 0
			}
			mCur[j] = minOf3(mPrev[j-1], xPrev[j-1], yPrev[j-1]) + sub

			xCur[j] = minOf2(addSat(mPrev[j], cfg.Open), addSat(xPrev[j], cfg.Extend))
			yCur[j] = minOf2(addSat(mCur[j-1], cfg.Open), addSat(yCur[j-1], cfg.Extend))
		}

		mPrev, mCur = mCur, mPrev
		xPrev, xCur = xCur, xPrev
		yPrev, yCur = yCur, yPrev
	}

	return minOf3(mPrev[m], xPrev[m], yPrev[m]), nil
}

func minOf2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minOf3(a, b, c int) int {
	v := a
	if b < v {
		v = b
	}
	if c < v {
		v = c
	}
	return v
}

// addSat adds a cost to a potentially-infinite base without wrapping
// around on overflow.
func addSat(base, delta int) int {
	if base >= infCost-delta {
		return infCost
	}
	return base + delta
}

