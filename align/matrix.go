// Package align scores alignments between byte sequences using arbitrary
// signed substitution scores: Needleman-Wunsch for global alignment and
// Smith-Waterman for local alignment (§4.6), both with affine gap costs
// and both traversed row-major per the Gotoh recurrence shared with
// editdist's affine variant.
package align

// SubstitutionMatrix holds a signed score for every ordered pair of bytes,
// matching §4.6's "256x256 matrix" requirement without committing to any
// particular biological or textual alphabet.
type SubstitutionMatrix struct {
	scores [256][256]int32
}

// NewSubstitutionMatrix builds a matrix where every pair scores mismatch,
// except identical bytes which score match. Callers needing a
// biologically-derived matrix (e.g. BLOSUM62) can adjust entries with Set
// after construction; Set writes both (a, b) and (b, a), so the matrix
// stays symmetric.
func NewSubstitutionMatrix(match, mismatch int32) *SubstitutionMatrix {
	m := &SubstitutionMatrix{}
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			if i == j {
				m.scores[i][j] = match
			} else {
				m.scores[i][j] = mismatch
			}
		}
	}
	return m
}

// Set assigns the score for substituting byte a with byte b (and b with a,
// since alignment scoring is symmetric in practice even though the table
// stores both directions independently).
func (m *SubstitutionMatrix) Set(a, b byte, score int32) {
	m.scores[a][b] = score
	m.scores[b][a] = score
}

// Score returns the substitution score for aligning byte a against byte b.
func (m *SubstitutionMatrix) Score(a, b byte) int32 {
	return m.scores[a][b]
}
