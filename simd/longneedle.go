package simd

// shiftTableCap bounds how much of a needle the Boyer-Moore-Horspool shift
// table covers. Needles longer than this use the capped prefix to find
// candidates and verify the tail with Equal (§4.4).
const shiftTableCap = 256

// findLongNeedle implements §4.4: Boyer-Moore-Horspool with a Raita-style
// two-anchor heuristic, for needles longer than the short-needle kernel's
// reach (length > 4).
func findLongNeedle(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	if n < l {
		return NotFound
	}
	if l <= shiftTableCap {
		return bmhForward(h, needle)
	}

	// Needle longer than the shift-table cap: find candidates for the
	// capped prefix, then verify the remaining tail with Equal.
	prefix := needle[:shiftTableCap]
	limit := n - l + shiftTableCap
	offset := 0
	for offset < limit {
		rel := bmhForward(h[offset:limit], prefix)
		if rel == NotFound {
			return NotFound
		}
		cand := offset + rel
		tailLen := l - shiftTableCap
		if Equal(h[cand+shiftTableCap:], needle[shiftTableCap:], tailLen) {
			return cand
		}
		offset = cand + 1
	}
	return NotFound
}

// rfindLongNeedle mirrors findLongNeedle, returning the largest valid start
// offset.
func rfindLongNeedle(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	if n < l {
		return NotFound
	}
	if l <= shiftTableCap {
		return bmhReverse(h, needle)
	}

	// Mirror image of the forward over-cap path: anchor on the needle's
	// last shiftTableCap bytes (the suffix), verify the head with Equal.
	suffix := needle[l-shiftTableCap:]
	headLen := l - shiftTableCap
	floor := headLen
	end := n
	for end > floor {
		rel := bmhReverse(h[floor:end], suffix)
		if rel == NotFound {
			return NotFound
		}
		candSuffixStart := floor + rel
		cand := candSuffixStart - headLen
		if Equal(h[cand:], needle[:headLen], headLen) {
			return cand
		}
		end = candSuffixStart + shiftTableCap - 1
	}
	return NotFound
}

// bmhForward runs Boyer-Moore-Horspool with the Raita two-anchor heuristic
// over a needle of length <= shiftTableCap.
//
//  1. A 256-entry shift table gives, for each possible rightmost-compared
//     byte, how far the window can safely advance on mismatch.
//  2. Two anchors are checked before the full needle: the needle's last
//     byte, and its "dissimilar index" d — the first position whose byte
//     differs from needle[0]. These two checks reject most windows without
//     a full compare and specifically defeat pathological repeated-byte
//     haystacks (e.g. "aaaa...a" against needle "aaab").
//  3. On an anchor match, Equal verifies the whole needle.
func bmhForward(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	if n < l {
		return NotFound
	}

	shift := buildShiftTable(needle)
	d := dissimilarIndex(needle)
	last := l - 1

	p := 0
	for p+l <= n {
		lastByte := h[p+last]
		if lastByte == needle[last] && h[p+d] == needle[d] && Equal(h[p:], needle, l) {
			return p
		}
		p += int(shift[lastByte])
	}
	return NotFound
}

// bmhReverse is the reverse counterpart of bmhForward: the shift table and
// anchors are built from the reversed needle, and the window scans from
// the tail of h toward the head, returning the largest valid start offset.
func bmhReverse(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	if n < l {
		return NotFound
	}

	var revBuf [shiftTableCap]byte
	rev := reverseBytes(revBuf[:], needle)
	shift := buildShiftTable(rev)
	d := dissimilarIndex(rev)
	last := l - 1

	for p := n - l; p >= 0; {
		firstByte := h[p]
		if firstByte == needle[0] && h[p+last-d] == needle[last-d] && Equal(h[p:], needle, l) {
			return p
		}
		p -= int(shift[firstByte])
	}
	return NotFound
}

// buildShiftTable computes the bad-character shift table: for each byte
// value, how far the window can advance when that byte is the rightmost
// compared byte and the full needle does not match. needle must have
// length <= shiftTableCap.
func buildShiftTable(needle []byte) [256]uint16 {
	l := len(needle)
	var shift [256]uint16
	for i := range shift {
		shift[i] = uint16(l)
	}
	for i := 0; i < l-1; i++ {
		shift[needle[i]] = uint16(l - 1 - i)
	}
	return shift
}

// dissimilarIndex returns the first index whose byte differs from
// needle[0]. If every byte equals needle[0] (a fully repeated-byte
// needle), it returns the last index, which still gives the algorithm a
// second distinct anchor to check.
func dissimilarIndex(needle []byte) int {
	for i := 1; i < len(needle); i++ {
		if needle[i] != needle[0] {
			return i
		}
	}
	return len(needle) - 1
}

// reverseBytes writes b reversed into dst, which must have length >=
// len(b), and returns dst[:len(b)].
func reverseBytes(dst, b []byte) []byte {
	out := dst[:len(b)]
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
