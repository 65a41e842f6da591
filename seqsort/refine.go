package seqsort

import (
	"bytes"
	"sort"
)

// accelThreshold is the minimum group size at which collapsing exact
// duplicates into classes before sorting pays for itself; below it plain
// comparison sort is cheaper than the bookkeeping.
const accelThreshold = 64

// tailRefine resolves ties within a single radix-equal group (all entries
// in order[lo:hi] share the same packed prefix key) by full lexicographic
// comparison, falling back to the original index as a stable tie-break for
// sequences that compare exactly equal (§4.7 "Tail refinement").
//
// get(i) returns the full sequence for original index i.
func tailRefine(order []int, lo, hi int, get func(int) []byte) {
	group := order[lo:hi]
	if len(group) < 2 {
		return
	}
	if len(group) >= accelThreshold {
		refineWithDuplicateClasses(group, get)
		return
	}
	sort.Sort(&tailSorter{idx: group, get: get})
}

// tailSorter adapts a slice of original indices to sort.Interface,
// comparing full sequences and breaking ties by original index. Go's
// sort.Sort is itself an introspective quicksort with a heapsort
// fallback on adversarial inputs, matching §4.7's "introspective sort
// (quicksort with depth-limited fallback to heapsort)" without a
// hand-rolled reimplementation.
type tailSorter struct {
	idx []int
	get func(int) []byte
}

func (t *tailSorter) Len() int      { return len(t.idx) }
func (t *tailSorter) Swap(i, j int) { t.idx[i], t.idx[j] = t.idx[j], t.idx[i] }
func (t *tailSorter) Less(i, j int) bool {
	a, b := t.idx[i], t.idx[j]
	c := bytes.Compare(t.get(a), t.get(b))
	if c != 0 {
		return c < 0
	}
	return a < b
}

// refineWithDuplicateClasses sorts a large prefix-equal group by first
// collapsing exact-duplicate sequences into classes via a map keyed on the
// sequence's bytes, then sorting the (far fewer) classes instead of every
// element individually. A group this size is where real inputs tend to
// carry runs of identical keys (repeated log lines, repeated path
// segments), so collapsing duplicates before the comparison sort turns
// O(group size) comparisons into O(distinct values).
func refineWithDuplicateClasses(group []int, get func(int) []byte) {
	type class struct {
		rep     []byte
		members []int
	}
	byValue := make(map[string]*class, len(group))
	var classes []*class

	for _, idx := range group {
		seq := get(idx)
		cl, ok := byValue[string(seq)]
		if !ok {
			cl = &class{rep: seq}
			byValue[string(seq)] = cl
			classes = append(classes, cl)
		}
		cl.members = append(cl.members, idx)
	}

	sort.Slice(classes, func(i, j int) bool {
		c := bytes.Compare(classes[i].rep, classes[j].rep)
		if c != 0 {
			return c < 0
		}
		return classes[i].members[0] < classes[j].members[0]
	})

	out := group[:0]
	for _, cl := range classes {
		sort.Ints(cl.members)
		out = append(out, cl.members...)
	}
}
