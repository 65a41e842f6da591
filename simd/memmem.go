package simd

// Find returns the smallest index k such that h[k:k+len(needle)] equals
// needle, or NotFound.
//
// Dispatch is by needle length (§4.3/§4.4): length 0 matches at offset 0,
// length 1 goes straight to FindByte, lengths 2..4 use the short-needle
// parallel-offset kernel, and anything longer uses Boyer-Moore-Horspool
// with the Raita two-anchor heuristic.
func Find(h, needle []byte) int {
	l := len(needle)
	switch {
	case l == 0:
		return 0
	case len(h) < l:
		return NotFound
	case l == 1:
		return FindByte(h, needle[0])
	case l <= 4:
		return findShortNeedle(h, needle)
	default:
		return findLongNeedle(h, needle)
	}
}

// RFind returns the largest index k such that h[k:k+len(needle)] equals
// needle, or NotFound.
func RFind(h, needle []byte) int {
	l := len(needle)
	switch {
	case l == 0:
		return len(h)
	case len(h) < l:
		return NotFound
	case l == 1:
		return RFindByte(h, needle[0])
	case l <= 4:
		return rfindShortNeedle(h, needle)
	default:
		return rfindLongNeedle(h, needle)
	}
}

// FindScalar is the byte-at-a-time reference tier for Find.
func FindScalar(h, needle []byte) int {
	l := len(needle)
	switch {
	case l == 0:
		return 0
	case len(h) < l:
		return NotFound
	case l == 1:
		return FindByteScalar(h, needle[0])
	default:
		return findShortNeedleScalar(h, needle)
	}
}

// RFindScalar is the byte-at-a-time reference tier for RFind.
func RFindScalar(h, needle []byte) int {
	l := len(needle)
	switch {
	case l == 0:
		return len(h)
	case len(h) < l:
		return NotFound
	case l == 1:
		return RFindByteScalar(h, needle[0])
	default:
		return rfindShortNeedleScalar(h, needle)
	}
}
