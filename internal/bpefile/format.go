// Package bpefile reads and writes trained tokenizer models as a small
// little-endian binary file: a fixed header followed by the merge rules in
// the order they were learned.
//
// File layout:
//
//	magic        uint32  "BPEF"
//	version      uint32
//	flags        uint32  bit 0: pre-tokenization enabled
//	merge count  uint32
//	merges       count × (left uint32, right uint32)
//
// The vocabulary is not stored. Every minted token's byte span is the
// concatenation of its pair's spans, so the loader rebuilds the full
// vocabulary by replaying the merge list.
package bpefile

// BPEF magic number: "BPEF" in little-endian
const Magic = 0x46455042

// FormatVersion is the current model file version.
const FormatVersion = 1

const flagPretokenize = 1 << 0

// File is a parsed (or to-be-written) model file.
type File struct {
	Version     uint32
	Pretokenize bool
	Merges      [][2]uint32
}
