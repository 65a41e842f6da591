package simd

import (
	"bytes"
	"strings"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 0},
		{"empty_haystack", "", "x", NotFound},
		{"both_empty", "", "", 0},
		{"single_found", "hello", "e", 1},
		{"single_not_found", "hello", "x", NotFound},
		{"at_start", "the quick brown fox", "the", 0},
		{"scenario_1", "the quick brown fox", "quick", 4},
		{"at_end", "hello world", "world", 6},
		{"not_found", "hello world", "xyz", NotFound},
		{"exact_match", "hello", "hello", 0},
		{"needle_too_long", "hi", "hello", NotFound},
		{"multiple_returns_first", "hello hello", "hello", 0},
		{"overlapping_pattern", "aaaa", "aa", 0},
		{"repeated_byte_stress", "aaaaaaa", "aaab", NotFound},
		{"two_byte_needle", "abcdef", "cd", 2},
		{"three_byte_needle", "abcdef", "cde", 2},
		{"four_byte_needle", "abcdef", "cdef", 2},
		{"needle_len_64", strings.Repeat("x", 100) + strings.Repeat("y", 64), strings.Repeat("y", 64), 100},
		{"needle_len_300", strings.Repeat("z", 10) + strings.Repeat("w", 300), strings.Repeat("w", 300), 10},
		{"one_byte_haystack", "a", "a", 0},
		{"one_byte_haystack_miss", "a", "b", NotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Find([]byte(tc.haystack), []byte(tc.needle))
			if got != tc.want {
				t.Errorf("Find(%q, %q) = %d, want %d", tc.haystack, tc.needle, got, tc.want)
			}
			wantScalar := FindScalar([]byte(tc.haystack), []byte(tc.needle))
			if got != wantScalar {
				t.Errorf("Find/FindScalar disagree on (%q,%q): %d vs %d", tc.haystack, tc.needle, got, wantScalar)
			}
		})
	}
}

func TestRFind(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "hello", "", 5},
		{"empty_haystack", "", "x", NotFound},
		{"scenario_2", "abababab", "ab", 6},
		{"single_found_last", "hello", "l", 3},
		{"two_byte", "abcabcabc", "bc", 7},
		{"three_byte", "abcabcabc", "abc", 6},
		{"four_byte", "xabcdxabcd", "abcd", 6},
		{"not_found", "hello", "xyz", NotFound},
		{"needle_len_64", strings.Repeat("x", 64) + strings.Repeat("y", 40) + strings.Repeat("x", 64), strings.Repeat("x", 64), 104},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RFind([]byte(tc.haystack), []byte(tc.needle))
			if got != tc.want {
				t.Errorf("RFind(%q, %q) = %d, want %d", tc.haystack, tc.needle, got, tc.want)
			}
			wantScalar := RFindScalar([]byte(tc.haystack), []byte(tc.needle))
			if got != wantScalar {
				t.Errorf("RFind/RFindScalar disagree on (%q,%q): %d vs %d", tc.haystack, tc.needle, got, wantScalar)
			}
		})
	}
}

// TestFindInvariants checks the §8 round-trip and bounds invariants over a
// fixed grid of haystacks and needles, differentially comparing against
// bytes.Index/LastIndex.
func TestFindInvariants(t *testing.T) {
	haystacks := []string{
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("ab", 50),
		strings.Repeat("a", 200) + "b",
		"",
		"x",
	}
	needles := []string{"a", "ab", "abc", "abcd", "abcde", "quick", "", "zzz", strings.Repeat("a", 70)}

	for _, h := range haystacks {
		for _, n := range needles {
			want := bytes.Index([]byte(h), []byte(n))
			if want == -1 {
				want = NotFound
			}
			got := Find([]byte(h), []byte(n))
			if got != want {
				t.Errorf("Find(%q,%q) = %d, want %d (bytes.Index)", h, n, got, want)
				continue
			}
			if got != NotFound {
				if got+len(n) > len(h) {
					t.Errorf("Find(%q,%q) = %d violates k+ln<=lh", h, n, got)
				}
				if !bytes.Equal([]byte(h)[got:got+len(n)], []byte(n)) {
					t.Errorf("Find(%q,%q) = %d but bytes don't match", h, n, got)
				}
			}

			wantR := bytes.LastIndex([]byte(h), []byte(n))
			if wantR == -1 {
				wantR = NotFound
			}
			gotR := RFind([]byte(h), []byte(n))
			if gotR != wantR {
				t.Errorf("RFind(%q,%q) = %d, want %d (bytes.LastIndex)", h, n, gotR, wantR)
			}
			if got != NotFound && gotR != NotFound && gotR < got {
				t.Errorf("RFind(%q,%q)=%d should be >= Find=%d", h, n, gotR, got)
			}
		}
	}
}

func BenchmarkFindShort(b *testing.B) {
	h := bytes.Repeat([]byte("the quick brown fox "), 100)
	needle := []byte("brown")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(h, needle)
	}
}

func BenchmarkFindLong(b *testing.B) {
	h := bytes.Repeat([]byte("the quick brown fox "), 1000)
	needle := []byte("the quick brown fox jumps over the lazy dog and keeps running")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(h, needle)
	}
}
