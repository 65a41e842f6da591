package simd

import (
	"bytes"
	"testing"
)

func TestOrder(t *testing.T) {
	tests := []struct {
		a, b string
		want Ordering
	}{
		{"", "", Eq},
		{"", "a", Less},
		{"a", "", Greater},
		{"abc", "abc", Eq},
		{"abc", "abd", Less},
		{"abd", "abc", Greater},
		{"ab", "abc", Less},
		{"abc", "ab", Greater},
		{"abcdefgh", "abcdefgh", Eq},
		{"abcdefgh", "abcdefgi", Less},
		{"abcdefghij", "abcdefghik", Less},
		{"\xff", "\x00", Greater},
	}
	for _, tc := range tests {
		got := Order([]byte(tc.a), len(tc.a), []byte(tc.b), len(tc.b))
		if got != tc.want {
			t.Errorf("Order(%q,%q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if scalarGot := OrderScalar([]byte(tc.a), len(tc.a), []byte(tc.b), len(tc.b)); scalarGot != tc.want {
			t.Errorf("OrderScalar(%q,%q) = %v, want %v", tc.a, tc.b, scalarGot, tc.want)
		}
	}
}

func TestOrderAntisymmetry(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"abc", "abd"}, {"", "x"}, {"hello", "hello"}, {"zzz", "aaa"},
	}
	for _, p := range pairs {
		ab := Order([]byte(p.a), len(p.a), []byte(p.b), len(p.b))
		ba := Order([]byte(p.b), len(p.b), []byte(p.a), len(p.a))
		if int(ab) != -int(ba) {
			t.Errorf("Order(%q,%q)=%v not antisymmetric with Order(%q,%q)=%v", p.a, p.b, ab, p.b, p.a, ba)
		}
	}
}

func TestOrderMatchesBytesCompare(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "abcdefgh", "abcdefghi", "zzzzzzzz"}
	for _, a := range inputs {
		for _, b := range inputs {
			want := Ordering(bytes.Compare([]byte(a), []byte(b)))
			got := Order([]byte(a), len(a), []byte(b), len(b))
			if got != want {
				t.Errorf("Order(%q,%q) = %v, want %v (bytes.Compare)", a, b, got, want)
			}
		}
	}
}
