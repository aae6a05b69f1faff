package tokenizer

import (
	"fmt"
	"strings"
)

// Encode converts text to token IDs by applying learned merges in learned
// order: at every step the candidate pair whose rule has the lowest ID wins,
// which reproduces the segmentation training arrived at. Picking the pair
// most frequent in the input instead would diverge from training. With no
// trained merges the result is the raw UTF-8 byte values.
func (t *Tokenizer) Encode(text string) []int {
	if !t.pretokenize {
		return t.encodeChunk(byteIDs(text))
	}

	ids := make([]int, 0, len(text))
	for _, chunk := range splitChunks(text) {
		ids = append(ids, t.encodeChunk(byteIDs(chunk))...)
	}
	return ids
}

// encodeChunk applies merge rules to one chunk until no adjacent pair has a
// rule left, always taking the earliest-learned applicable rule first.
func (t *Tokenizer) encodeChunk(ids []int) []int {
	for len(ids) >= 2 {
		bestID := -1
		var bestKey uint64
		for i := 0; i+1 < len(ids); i++ {
			key := packPair(ids[i], ids[i+1])
			if id, ok := t.merges[key]; ok && (bestID < 0 || id < bestID) {
				bestID = id
				bestKey = key
			}
		}
		if bestID < 0 {
			break
		}
		left, right := unpackPair(bestKey)
		ids = mergePair(ids, left, right, bestID)
	}
	return ids
}

// Decode converts token IDs back to text. An ID outside the vocabulary is
// an error; byte content that does not form valid UTF-8 decodes to the
// Unicode replacement character instead of failing.
func (t *Tokenizer) Decode(ids []int) (string, error) {
	var buf []byte
	for _, id := range ids {
		span, ok := t.TokenBytes(id)
		if !ok {
			return "", fmt.Errorf("unknown token ID %d (vocabulary size %d)", id, len(t.vocab))
		}
		buf = append(buf, span...)
	}
	return strings.ToValidUTF8(string(buf), "�"), nil
}

// CountTokens returns the number of tokens text encodes to.
func (t *Tokenizer) CountTokens(text string) int {
	return len(t.Encode(text))
}
