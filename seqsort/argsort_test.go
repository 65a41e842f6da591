package seqsort

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"
)

func TestArgsort_Scenario(t *testing.T) {
	seqs := [][]byte{[]byte("c"), []byte("b"), []byte("a")}
	out := Argsort(seqs, make([]int, 3))
	want := []int{2, 1, 0}
	if !equalInts(out, want) {
		t.Errorf("Argsort = %v, want %v", out, want)
	}
}

func TestArgsort_Empty(t *testing.T) {
	out := Argsort(nil, nil)
	if len(out) != 0 {
		t.Errorf("Argsort(nil) = %v, want empty", out)
	}
}

func TestArgsort_SingleElement(t *testing.T) {
	out := Argsort([][]byte{[]byte("x")}, make([]int, 1))
	if !equalInts(out, []int{0}) {
		t.Errorf("Argsort single = %v, want [0]", out)
	}
}

func TestArgsort_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seqs := randomSeqs(rng, 500, 12)
	out := Argsort(seqs, make([]int, len(seqs)))
	seen := make([]bool, len(seqs))
	for _, idx := range out {
		if idx < 0 || idx >= len(seqs) || seen[idx] {
			t.Fatalf("not a permutation: index %d invalid or repeated", idx)
		}
		seen[idx] = true
	}
}

func TestArgsort_NonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seqs := randomSeqs(rng, 500, 12)
	out := Argsort(seqs, make([]int, len(seqs)))
	for i := 1; i < len(out); i++ {
		if bytes.Compare(seqs[out[i-1]], seqs[out[i]]) > 0 {
			t.Fatalf("not non-decreasing at %d: %q > %q", i, seqs[out[i-1]], seqs[out[i]])
		}
	}
}

func TestArgsort_StableOnDuplicates(t *testing.T) {
	seqs := [][]byte{
		[]byte("dup"), []byte("a"), []byte("dup"), []byte("b"), []byte("dup"),
	}
	out := Argsort(seqs, make([]int, len(seqs)))
	var dupPositions []int
	for rank, idx := range out {
		if string(seqs[idx]) == "dup" {
			dupPositions = append(dupPositions, idx)
		}
		_ = rank
	}
	want := []int{0, 2, 4}
	if !equalInts(dupPositions, want) {
		t.Errorf("duplicate original-index order = %v, want %v (stable)", dupPositions, want)
	}
}

func TestArgsort_MatchesSortReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	seqs := randomSeqs(rng, 300, 20)
	got := Argsort(seqs, make([]int, len(seqs)))

	ref := make([]int, len(seqs))
	for i := range ref {
		ref[i] = i
	}
	sort.SliceStable(ref, func(i, j int) bool {
		return bytes.Compare(seqs[ref[i]], seqs[ref[j]]) < 0
	})

	for i := range got {
		if !bytes.Equal(seqs[got[i]], seqs[ref[i]]) {
			t.Fatalf("mismatch at rank %d: got seq %q, reference seq %q", i, seqs[got[i]], seqs[ref[i]])
		}
	}
}

func TestArgsort_LargeDuplicateGroupCollapsesClasses(t *testing.T) {
	// Force a group well above accelThreshold with heavy duplication to
	// exercise refineWithDuplicateClasses.
	seqs := make([][]byte, 300)
	values := []string{"aaaaaaaazz", "aaaaaaaayy", "aaaaaaaaxx"}
	for i := range seqs {
		seqs[i] = []byte(values[i%len(values)])
	}
	out := Argsort(seqs, make([]int, len(seqs)))
	for i := 1; i < len(out); i++ {
		if bytes.Compare(seqs[out[i-1]], seqs[out[i]]) > 0 {
			t.Fatalf("not non-decreasing at %d", i)
		}
	}
	seen := make([]bool, len(seqs))
	for _, idx := range out {
		if seen[idx] {
			t.Fatalf("index %d repeated", idx)
		}
		seen[idx] = true
	}
}

func TestArgsortTape(t *testing.T) {
	tape := []byte("cba")
	offsets := []int{0, 1, 2, 3}
	out := ArgsortTape(tape, offsets, make([]int, 3))
	want := []int{2, 1, 0}
	if !equalInts(out, want) {
		t.Errorf("ArgsortTape = %v, want %v", out, want)
	}
}

func randomSeqs(rng *rand.Rand, n, maxLen int) [][]byte {
	alphabet := []byte("abc")
	seqs := make([][]byte, n)
	for i := range seqs {
		l := rng.Intn(maxLen)
		s := make([]byte, l)
		for j := range s {
			s[j] = alphabet[rng.Intn(len(alphabet))]
		}
		seqs[i] = s
	}
	return seqs
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
