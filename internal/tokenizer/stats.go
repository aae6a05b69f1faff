package tokenizer

// packPair packs an adjacent token ID pair into a single fixed-width map
// key. Token IDs are bounded by the target vocabulary size, so 32 bits per
// side is plenty, and the packing makes a packed key compare in the same
// order as the (left, right) tuple.
func packPair(left, right int) uint64 {
	return uint64(uint32(left))<<32 | uint64(uint32(right))
}

func unpackPair(key uint64) (left, right int) {
	return int(key >> 32), int(uint32(key))
}

// countPairs counts every adjacent ID pair in a flat token stream.
func countPairs(ids []int) map[uint64]int {
	stats := make(map[uint64]int)
	for i := 0; i+1 < len(ids); i++ {
		stats[packPair(ids[i], ids[i+1])]++
	}
	return stats
}

// countPairsWeighted counts adjacent pairs across all chunk splits,
// weighting each chunk's pairs by how often the chunk occurs in the corpus.
// Pairs never span a chunk boundary.
func countPairsWeighted(splits [][]int, counts []int) map[uint64]int {
	stats := make(map[uint64]int)
	for w, split := range splits {
		weight := counts[w]
		for i := 0; i+1 < len(split); i++ {
			stats[packPair(split[i], split[i+1])] += weight
		}
	}
	return stats
}

// bestPair returns the highest-frequency pair. Ties are broken by the
// lexicographically smallest (left, right) pair so training is reproducible
// regardless of map iteration order.
func bestPair(stats map[uint64]int) (uint64, bool) {
	if len(stats) == 0 {
		return 0, false
	}
	var best uint64
	bestCount := 0
	for pair, count := range stats {
		if count > bestCount || (count == bestCount && pair < best) {
			best, bestCount = pair, count
		}
	}
	return best, true
}
