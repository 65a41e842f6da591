package simd

import "encoding/binary"

// findShortNeedle implements the §4.3 short-needle kernel for needle
// lengths 2..4 (length 1 is handled directly by FindByte).
//
// The needle's bytes (2, 3 or 4 of them) are packed into the low bytes of
// a uint32 pattern. Each 8-byte haystack chunk is loaded once and tested
// at every offset k for which the whole needle fits inside that chunk
// (k+L <= 8); this is the "load k overlapping wide vectors, compare each
// lane" idea from §4.3, expressed here as integer-masked compares against
// shifted views of a single 64-bit load rather than genuine parallel lanes
// (no vector ISA is available in portable Go, but the loaded chunk is
// reused across every offset it can answer for, which is the point of the
// trick: one load, several candidate positions).
//
// For L == 3, mask covers only the low 3 bytes, so the 4th (unused) byte
// of each shifted window never participates in the comparison.
func findShortNeedle(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	if n < l {
		return NotFound
	}

	mask := uint32(1)<<(8*l) - 1
	var pat uint32
	for i := 0; i < l; i++ {
		pat |= uint32(needle[i]) << (8 * i)
	}

	step := 8 - l + 1
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(h[i:])
		for k := 0; k < step; k++ {
			if uint32(chunk>>(8*k))&mask == pat {
				return i + k
			}
		}
		i += step
	}
	for i+l <= n {
		if Equal(h[i:i+l], needle, l) {
			return i
		}
		i++
	}
	return NotFound
}

// rfindShortNeedle is the reverse counterpart of findShortNeedle, scanning
// from the tail of h toward the head and returning the largest valid start
// offset, or NotFound.
func rfindShortNeedle(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	if n < l {
		return NotFound
	}

	mask := uint32(1)<<(8*l) - 1
	var pat uint32
	for i := 0; i < l; i++ {
		pat |= uint32(needle[i]) << (8 * i)
	}

	step := 8 - l + 1
	end := n
	for end-8 >= 0 {
		start := end - 8
		chunk := binary.LittleEndian.Uint64(h[start:])
		for k := step - 1; k >= 0; k-- {
			if uint32(chunk>>(8*k))&mask == pat {
				return start + k
			}
		}
		end -= step
	}
	for i := end - l; i >= 0; i-- {
		if Equal(h[i:i+l], needle, l) {
			return i
		}
	}
	return NotFound
}

// findShortNeedleScalar is the byte-at-a-time reference tier.
func findShortNeedleScalar(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	for i := 0; i+l <= n; i++ {
		if EqualScalar(h[i:i+l], needle, l) {
			return i
		}
	}
	return NotFound
}

// rfindShortNeedleScalar is the byte-at-a-time reference tier.
func rfindShortNeedleScalar(h, needle []byte) int {
	l := len(needle)
	n := len(h)
	for i := n - l; i >= 0; i-- {
		if EqualScalar(h[i:i+l], needle, l) {
			return i
		}
	}
	return NotFound
}
