package align

// Config controls a Needleman-Wunsch or Smith-Waterman scoring pass.
type Config struct {
	Matrix    *SubstitutionMatrix
	GapOpen   int32
	GapExtend int32
}

const negInf = int32(-1) << 30

// ScratchSize returns the number of int32s a caller must provide for an
// alignment between sequences of length n and m: three Gotoh matrices
// (M, Ix, Iy), two rows each of width m+1.
func ScratchSize(n, m int) int {
	_ = n
	return 6 * (m + 1)
}

// gotoh runs the shared row-major recurrence behind both Needleman-Wunsch
// and Smith-Waterman (§4.6): they differ only in whether a zero floor is
// applied to M, Ix and Iy at every cell, including the first row and
// column (local == true), and in whether the reported
// score is the final cell or the running maximum over the whole matrix.
func gotoh(a, b []byte, cfg Config, local bool, scratch []int32) (int32, error) {
	n, m := len(a), len(b)
	need := ScratchSize(n, m)
	if len(scratch) < need {
		return 0, &AlignError{Op: "gotoh", Err: ErrInvalidArgument}
	}
	width := m + 1
	mPrev, mCur := scratch[0:width], scratch[width:2*width]
	xPrev, xCur := scratch[2*width:3*width], scratch[3*width:4*width]
	yPrev, yCur := scratch[4*width:5*width], scratch[5*width:6*width]

	initM := func(i, j int) int32 {
		if local {
			return 0
		}
		if i == 0 && j == 0 {
			return 0
		}
		return negInf
	}
	gapRun := func(k int) int32 {
		if k == 0 {
			return negInf
		}
		return cfg.GapOpen + int32(k-1)*cfg.GapExtend
	}

	mPrev[0] = initM(0, 0)
	xPrev[0] = negInf
	yPrev[0] = negInf
	for j := 1; j <= m; j++ {
		mPrev[j] = initM(0, j)
		xPrev[j] = negInf
		if local {
			yPrev[j] = 0
		} else {
			yPrev[j] = gapRun(j)
		}
	}

	best := mPrev[0]
	if yPrev[0] > best {
		best = yPrev[0]
	}

	for i := 1; i <= n; i++ {
		mCur[0] = initM(i, 0)
		if local {
			xCur[0] = 0
		} else {
			xCur[0] = gapRun(i)
		}
		yCur[0] = negInf

		if mCur[0] > best {
			best = mCur[0]
		}
		if xCur[0] > best {
			best = xCur[0]
		}

		for j := 1; j <= m; j++ {
			sub := cfg.Matrix.Score(a[i-1], b[j-1])
			diag := max3(mPrev[j-1], xPrev[j-1], yPrev[j-1]) + sub
			if local && diag < 0 {
				diag = 0
			}
			mCur[j] = diag

			xCur[j] = max2(mPrev[j]+cfg.GapOpen, xPrev[j]+cfg.GapExtend)
			yCur[j] = max2(mCur[j-1]+cfg.GapOpen, yCur[j-1]+cfg.GapExtend)
			if local {
				if xCur[j] < 0 {
					xCur[j] = 0
				}
				if yCur[j] < 0 {
					yCur[j] = 0
				}
			}

			cellBest := max3(mCur[j], xCur[j], yCur[j])
			if cellBest > best {
				best = cellBest
			}
		}

		mPrev, mCur = mCur, mPrev
		xPrev, xCur = xCur, xPrev
		yPrev, yCur = yCur, yPrev
	}

	if local {
		return best, nil
	}
	return max3(mPrev[m], xPrev[m], yPrev[m]), nil
}

func max2(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c int32) int32 {
	v := a
	if b > v {
		v = b
	}
	if c > v {
		v = c
	}
	return v
}
