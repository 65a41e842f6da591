package editdist

import "unicode/utf8"

// decodeCodepoints decodes s into a slice of runes, pre-decoded once so
// the DP recurrence compares codepoints rather than bytes (§4.5's UTF-8
// Levenshtein variant). Returns ErrMalformedUTF8 if s contains an
// ill-formed sequence; no codepoint is invented for the caller.
func decodeCodepoints(s []byte) ([]rune, error) {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &DistanceError{Op: "decodeCodepoints", Err: ErrMalformedUTF8}
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

// LevenshteinUTF8 computes the edit distance between a and b in codepoints
// rather than bytes: two multi-byte UTF-8 sequences encoding the same
// codepoint count as equal, and a substitution between two codepoints
// costs cfg.MismatchCost regardless of how many bytes each encodes.
//
// scratch must have length >= ScratchSize(n, m) where n, m are the
// codepoint counts of a and b — which are not known until decoding, so
// callers that need to preallocate exactly should decode once themselves
// and call LevenshteinBytes-style sizing via ScratchSize(utf8.RuneCount(a),
// utf8.RuneCount(b)).
func LevenshteinUTF8(a, b []byte, cfg Config, scratch []int) (int, error) {
	ra, err := decodeCodepoints(a)
	if err != nil {
		return 0, err
	}
	rb, err := decodeCodepoints(b)
	if err != nil {
		return 0, err
	}

	n, m := len(ra), len(rb)
	need := ScratchSize(n, m)
	if len(scratch) < need {
		return 0, &DistanceError{Op: "LevenshteinUTF8", Err: ErrInvalidArgument}
	}

	subCost := func(i, j int) int {
		if ra[i-1] == rb[j-1] {
			return 0
		}
		return cfg.MismatchCost
	}
	return diagonalDP(n, m, cfg.GapCost, subCost, cfg, scratch)
}
