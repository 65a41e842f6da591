package byteprim

import "github.com/coregx/byteprim/editdist"

// DistanceConfig controls a Levenshtein computation (§4.5).
type DistanceConfig struct {
	GapCost            int
	MismatchCost       int
	Bound              int
	ErrorOnBoundExceed bool
}

// NoBound indicates an unbounded computation; the default zero value of
// DistanceConfig.Bound is 0, which is a valid (very restrictive) bound, so
// callers that want no bound must set Bound: NoBound explicitly.
const NoBound = editdist.NoBound

func toEditdistConfig(cfg DistanceConfig) editdist.Config {
	return editdist.Config{
		GapCost:            cfg.GapCost,
		MismatchCost:       cfg.MismatchCost,
		Bound:              cfg.Bound,
		ErrorOnBoundExceed: cfg.ErrorOnBoundExceed,
	}
}

// Levenshtein computes the byte-wise edit distance between a and b under a
// unit cost model (insert = delete = substitute = 1), unbounded.
//
// Example:
//
//	d, _ := byteprim.Levenshtein([]byte("kitten"), []byte("sitting")) // 3
func Levenshtein(a, b []byte) (int, error) {
	return LevenshteinWithConfig(a, b, DistanceConfig{GapCost: 1, MismatchCost: 1, Bound: NoBound})
}

// LevenshteinWithConfig computes the byte-wise edit distance between a and
// b under cfg, allocating its own scratch buffer.
func LevenshteinWithConfig(a, b []byte, cfg DistanceConfig) (int, error) {
	scratch := make([]int, editdist.ScratchSize(len(a), len(b)))
	return editdist.LevenshteinBytes(a, b, toEditdistConfig(cfg), scratch)
}

// LevenshteinUTF8 computes the edit distance between a and b in codepoints
// rather than bytes (§4.5): a single multi-byte rune counts as one unit
// regardless of how many bytes encode it.
//
// Example:
//
//	cfg := byteprim.DistanceConfig{GapCost: 1, MismatchCost: 1, Bound: byteprim.NoBound}
//	d, _ := byteprim.LevenshteinUTF8([]byte("café"), []byte("cafe"), cfg) // 1
func LevenshteinUTF8(a, b []byte, cfg DistanceConfig) (int, error) {
	n, m := len(a), len(b) // upper bound on codepoint count; safe to over-allocate
	scratch := make([]int, editdist.ScratchSize(n, m))
	return editdist.LevenshteinUTF8(a, b, toEditdistConfig(cfg), scratch)
}

// AffineConfig controls an AffineLevenshtein computation: opening a gap costs Open, and each subsequent symbol in the
// same gap costs Extend.
type AffineConfig struct {
	Open         int
	Extend       int
	MismatchCost int
}

// AffineLevenshtein computes the affine-gap edit distance between a and b.
func AffineLevenshtein(a, b []byte, cfg AffineConfig) (int, error) {
	scratch := make([]int, editdist.AffineScratchSize(len(a), len(b)))
	return editdist.AffineLevenshteinBytes(a, b, editdist.AffineConfig{
		Open: cfg.Open, Extend: cfg.Extend, MismatchCost: cfg.MismatchCost,
	}, scratch)
}
