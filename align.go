package byteprim

import "github.com/coregx/byteprim/align"

// SubstitutionMatrix is a 256x256 signed substitution score table for
// NeedlemanWunsch/SmithWaterman (§4.6).
type SubstitutionMatrix = align.SubstitutionMatrix

// NewSubstitutionMatrix builds a matrix scoring every identical byte pair
// match and every other pair mismatch.
func NewSubstitutionMatrix(match, mismatch int32) *SubstitutionMatrix {
	return align.NewSubstitutionMatrix(match, mismatch)
}

// AlignConfig controls a Needleman-Wunsch or Smith-Waterman alignment.
type AlignConfig struct {
	Matrix    *SubstitutionMatrix
	GapOpen   int32
	GapExtend int32
}

func toAlignConfig(cfg AlignConfig) align.Config {
	return align.Config{Matrix: cfg.Matrix, GapOpen: cfg.GapOpen, GapExtend: cfg.GapExtend}
}

// NeedlemanWunsch computes the global alignment score between a and b
// (§4.6): the final cell of the affine-gap DP matrix.
func NeedlemanWunsch(a, b []byte, cfg AlignConfig) (int32, error) {
	return align.NeedlemanWunsch(a, b, toAlignConfig(cfg))
}

// SmithWaterman computes the best local alignment score between a and b
// (§4.6): the maximum cell of the affine-gap DP matrix, floored at zero.
func SmithWaterman(a, b []byte, cfg AlignConfig) (int32, error) {
	return align.SmithWaterman(a, b, toAlignConfig(cfg))
}
