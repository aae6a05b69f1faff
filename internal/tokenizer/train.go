package tokenizer

import (
	"github.com/mattsre/bytepair/internal/logging"
)

// Train learns up to vocabSize-256 merge rules from text. A vocabSize of
// 256 or less performs no merges. Training ends early, without error, when
// no adjacent pair is left to merge. Retraining replaces any previously
// learned state.
func (t *Tokenizer) Train(text string, vocabSize int) {
	numMerges := vocabSize - numByteTokens
	if numMerges <= 0 {
		return
	}

	t.merges = make(map[uint64]int, numMerges)
	t.vocab = byteVocab()

	chunks, counts := t.chunkFrequencies(text)

	// Seed the split table: every chunk starts as its raw byte IDs.
	splits := make([][]int, len(chunks))
	for i, chunk := range chunks {
		splits[i] = byteIDs(chunk)
	}

	for i := 0; i < numMerges; i++ {
		var stats map[uint64]int
		if t.pretokenize {
			stats = countPairsWeighted(splits, counts)
		} else {
			stats = countPairs(splits[0])
		}
		pair, ok := bestPair(stats)
		if !ok {
			logging.Debugf("training stopped after %d merges: no pairs left", i)
			break
		}

		left, right := unpackPair(pair)
		newID := numByteTokens + i
		for w := range splits {
			splits[w] = mergePair(splits[w], left, right, newID)
		}
		t.merges[pair] = newID
		t.vocab = append(t.vocab, concatSpans(t.vocab[left], t.vocab[right]))

		logging.Debugf("merge %d: (%d, %d) -> %d, frequency %d", i, left, right, newID, stats[pair])
	}
}

// chunkFrequencies builds the chunk frequency table, keeping chunks in
// first-appearance order so training order is deterministic. In stream mode
// the whole text is a single chunk.
func (t *Tokenizer) chunkFrequencies(text string) ([]string, []int) {
	if !t.pretokenize {
		return []string{text}, []int{1}
	}

	index := make(map[string]int)
	var chunks []string
	var counts []int
	for _, chunk := range splitChunks(text) {
		if at, ok := index[chunk]; ok {
			counts[at]++
			continue
		}
		index[chunk] = len(chunks)
		chunks = append(chunks, chunk)
		counts = append(counts, 1)
	}
	return chunks, counts
}

// mergePair rewrites every non-overlapping occurrence of (left, right) in
// ids with newID, scanning left to right.
func mergePair(ids []int, left, right, newID int) []int {
	out := make([]int, 0, len(ids))
	for i := 0; i < len(ids); {
		if i+1 < len(ids) && ids[i] == left && ids[i+1] == right {
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}

// byteIDs converts a string to its raw UTF-8 byte IDs.
func byteIDs(s string) []int {
	ids := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		ids[i] = int(s[i])
	}
	return ids
}
