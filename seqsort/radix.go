package seqsort

// radixSort runs keyWidth counting-sort passes over keys, least
// significant byte first, producing order as a permutation of
// 0..len(keys)-1 with sequences bucketed by their packed prefix key.
// Each pass is a stable counting sort, so two keys that are equal across
// all keyWidth bytes retain their original relative order (§4.7:
// "radix bucketing preserves input order").
func radixSort(keys [][keyWidth]byte) []int {
	n := len(keys)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n < 2 {
		return order
	}

	buf := make([]int, n)
	var count [257]int

	for byteIdx := keyWidth - 1; byteIdx >= 0; byteIdx-- {
		for i := range count {
			count[i] = 0
		}
		for _, idx := range order {
			count[keys[idx][byteIdx]+1]++
		}
		for i := 1; i < 257; i++ {
			count[i] += count[i-1]
		}
		for _, idx := range order {
			b := keys[idx][byteIdx]
			buf[count[b]] = idx
			count[b]++
		}
		order, buf = buf, order
	}
	return order
}
