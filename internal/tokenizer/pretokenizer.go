package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// contractionSuffixes are the apostrophe-led suffixes split into their own
// chunks, longest first so longer suffixes win.
var contractionSuffixes = []string{"'re", "'ve", "'ll", "'s", "'t", "'m", "'d"}

// splitChunks splits text into GPT-2 style chunks: contraction suffixes,
// letter runs, number runs, and punctuation runs (each optionally taking one
// leading space), plus whitespace. The chunks cover the input exactly, in
// order, with no overlaps, so merges learned inside one category are never
// applied across a category boundary.
//
// The classification is an explicit scan over Unicode letter/number/space
// categories rather than a regex, evaluated left to right with the same
// precedence as the GPT-2 pattern.
func splitChunks(text string) []string {
	var chunks []string
	i := 0
	for i < len(text) {
		if n := contractionAt(text, i); n > 0 {
			chunks = append(chunks, text[i:i+n])
			i += n
			continue
		}

		start := i
		j := i
		r, size := utf8.DecodeRuneInString(text[j:])

		// A single leading space attaches to the run that follows it.
		if r == ' ' && j+size < len(text) {
			next, nextSize := utf8.DecodeRuneInString(text[j+size:])
			if !unicode.IsSpace(next) {
				j += size
				r, size = next, nextSize
			}
		}

		switch {
		case unicode.IsLetter(r):
			j += size + runLen(text[j+size:], unicode.IsLetter)
		case unicode.IsNumber(r):
			j += size + runLen(text[j+size:], unicode.IsNumber)
		case !unicode.IsSpace(r):
			j += size + runLen(text[j+size:], isOtherRune)
		default:
			j += size + runLen(text[j+size:], unicode.IsSpace)
			// When the run is followed by a non-whitespace rune, the last
			// whitespace rune belongs to the next chunk instead.
			if j < len(text) {
				_, last := utf8.DecodeLastRuneInString(text[:j])
				if j-last > start {
					j -= last
				}
			}
		}

		chunks = append(chunks, text[start:j])
		i = j
	}
	return chunks
}

// contractionAt returns the byte length of the contraction suffix starting
// at i, or 0 when there is none.
func contractionAt(text string, i int) int {
	if text[i] != '\'' {
		return 0
	}
	for _, suffix := range contractionSuffixes {
		if strings.HasPrefix(text[i:], suffix) {
			return len(suffix)
		}
	}
	return 0
}

// runLen returns the byte length of the leading run of runes in s that
// belong to the given class.
func runLen(s string, class func(rune) bool) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !class(r) {
			break
		}
		n += size
	}
	return n
}

func isOtherRune(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
