package tokenizer

import (
	"fmt"
	"sort"

	"github.com/mattsre/bytepair/internal/bpefile"
)

// numByteTokens is the size of the fixed base vocabulary. IDs 0-255 stand
// for single raw bytes and are never reassigned.
const numByteTokens = 256

// Merge is one learned rule: the adjacent pair (Left, Right) rewrites to ID.
// The rank of a rule (its learning order) is ID - 256.
type Merge struct {
	Left  int
	Right int
	ID    int
}

// Tokenizer implements trainable byte-level BPE (Byte-Pair Encoding).
// It is mutated only by Train; once trained or loaded it is read-only and
// safe to share across goroutines.
type Tokenizer struct {
	// Merge rules: packed (left, right) pair → minted token ID.
	// Lower ID = learned earlier = applied first.
	merges map[uint64]int

	// Vocabulary: token ID → byte span. The index is the ID.
	vocab [][]byte

	// Whether text is split into chunks before merges are learned or
	// applied. A stream-trained tokenizer must also encode in stream mode.
	pretokenize bool
}

// NewTokenizer creates an untrained tokenizer that splits input into
// GPT-2 style chunks so merges never cross a category boundary.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		merges:      make(map[uint64]int),
		vocab:       byteVocab(),
		pretokenize: true,
	}
}

// NewStreamTokenizer creates an untrained tokenizer that treats its input
// as one flat byte stream, with no pre-tokenization.
func NewStreamTokenizer() *Tokenizer {
	t := NewTokenizer()
	t.pretokenize = false
	return t
}

// NewTokenizerFromFile rebuilds a tokenizer from a parsed model file.
// The vocabulary is reconstructed by replaying the merge list in order;
// a rule referencing a token that does not exist yet is rejected.
func NewTokenizerFromFile(f *bpefile.File) (*Tokenizer, error) {
	t := NewTokenizer()
	t.pretokenize = f.Pretokenize
	for i, pair := range f.Merges {
		left, right := int(pair[0]), int(pair[1])
		id := numByteTokens + i
		if left >= id || right >= id {
			return nil, fmt.Errorf("merge %d references unknown token pair (%d, %d)", i, left, right)
		}
		t.merges[packPair(left, right)] = id
		t.vocab = append(t.vocab, concatSpans(t.vocab[left], t.vocab[right]))
	}
	return t, nil
}

// ToFile exports the trained state for serialization.
func (t *Tokenizer) ToFile() *bpefile.File {
	f := &bpefile.File{
		Version:     bpefile.FormatVersion,
		Pretokenize: t.pretokenize,
		Merges:      make([][2]uint32, 0, len(t.merges)),
	}
	for _, m := range t.Merges() {
		f.Merges = append(f.Merges, [2]uint32{uint32(m.Left), uint32(m.Right)})
	}
	return f
}

// byteVocab builds the fixed 256-entry base vocabulary.
func byteVocab() [][]byte {
	vocab := make([][]byte, numByteTokens)
	for i := range vocab {
		vocab[i] = []byte{byte(i)}
	}
	return vocab
}

// VocabSize returns the number of token IDs the tokenizer can produce.
func (t *Tokenizer) VocabSize() int {
	return len(t.vocab)
}

// MergeCount returns the number of learned merge rules.
func (t *Tokenizer) MergeCount() int {
	return len(t.merges)
}

// Pretokenizes reports whether this tokenizer splits input into chunks.
func (t *Tokenizer) Pretokenizes() bool {
	return t.pretokenize
}

// TokenBytes returns the byte span a token ID stands for.
// The second result is false for IDs the tokenizer never produced.
func (t *Tokenizer) TokenBytes(id int) ([]byte, bool) {
	if id < 0 || id >= len(t.vocab) {
		return nil, false
	}
	return t.vocab[id], true
}

// Merges returns the learned rules in the order they were learned.
func (t *Tokenizer) Merges() []Merge {
	out := make([]Merge, 0, len(t.merges))
	for key, id := range t.merges {
		left, right := unpackPair(key)
		out = append(out, Merge{Left: left, Right: right, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func concatSpans(a, b []byte) []byte {
	span := make([]byte, 0, len(a)+len(b))
	span = append(span, a...)
	return append(span, b...)
}
