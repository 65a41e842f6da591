// Package byteprim provides fast primitives over contiguous byte
// sequences: exact substring search, byte-set search, ordering and
// equality, edit distance, alignment scoring, and stable lexicographic
// argsort.
//
// The search, order and equality primitives do not allocate. The
// edit-distance and alignment wrappers in this package allocate their own
// scratch buffers, and Argsort/ArgsortTape allocate their key and
// permutation buffers internally.
//
// byteprim achieves its speed through SWAR (SIMD-within-a-register) byte
// scanning, Boyer-Moore-Horspool search with a Raita two-anchor
// heuristic, anti-diagonal dynamic-programming traversal for edit
// distance, and a runtime capability-based dispatcher that selects the
// best available kernel for the host at process start.
//
// Basic usage:
//
//	// Find a substring
//	off := byteprim.Find([]byte("hello world"), []byte("world"))
//	fmt.Println(off) // 6
//
//	// Compare two byte ranges
//	switch byteprim.Order([]byte("abc"), []byte("abd")) {
//	case byteprim.Less:
//	    fmt.Println("abc < abd")
//	}
//
//	// Edit distance
//	d, err := byteprim.Levenshtein([]byte("kitten"), []byte("sitting"))
//
// Advanced usage:
//
//	// Restrict the dispatcher to scalar kernels for reproducible benchmarks
//	byteprim.Dispatch.SetCapabilities(0)
//
// Limitations:
//   - No locale-aware collation, regex, cryptographic hashing, or Unicode
//     normalization beyond raw codepoint comparison.
//   - No streaming input: every primitive operates on an in-memory byte
//     range supplied in full.
package byteprim

import (
	"github.com/coregx/byteprim/dispatch"
)

// Dispatch is the process-wide capability dispatcher used by the package
// wrappers below. Tests and benchmarks may call Dispatch.SetCapabilities
// or Dispatch.Use to force specific kernels (§4.8).
var Dispatch = dispatch.Default
