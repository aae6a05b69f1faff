package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single word", "hello", []string{"hello"}},
		{"two words", "hello world", []string{"hello", " world"}},
		{"contraction", "don't stop", []string{"don", "'t", " stop"}},
		{"all contractions", "I'm we're you've they'll she's it'd don't",
			[]string{"I", "'m", " we", "'re", " you", "'ve", " they", "'ll",
				" she", "'s", " it", "'d", " don", "'t"}},
		{"digits", "abc 123 def", []string{"abc", " 123", " def"}},
		{"mixed alphanumeric", "C3PO", []string{"C", "3", "PO"}},
		{"punctuation", "hello, world!", []string{"hello", ",", " world", "!"}},
		{"currency", "£48.5m", []string{"£", "48", ".", "5", "m"}},
		{"space before punctuation", "a !!", []string{"a", " !!"}},
		{"double space", "a  b", []string{"a", " ", " b"}},
		{"tab between words", "tab\tsep", []string{"tab", "\t", "sep"}},
		{"trailing spaces", "hi   ", []string{"hi", "   "}},
		{"leading newlines", "\n\nHello", []string{"\n", "\n", "Hello"}},
		{"unicode letters", "héllo wörld", []string{"héllo", " wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitChunks(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitChunks(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitChunksCoversInput(t *testing.T) {
	texts := []string{
		"",
		"The 23-year-old was part of Chelsea's squad at the Club World Cup.",
		"  leading and trailing  ",
		"line one\nline two\r\n\tindented",
		"emoji 👋 and cjk 世界 mixed",
		"numbers 1234567890 punctuation !@#$%^&*()",
	}

	for _, text := range texts {
		chunks := splitChunks(text)
		if got := strings.Join(chunks, ""); got != text {
			t.Errorf("chunks of %q rejoin to %q", text, got)
		}
		for i, chunk := range chunks {
			if chunk == "" {
				t.Errorf("empty chunk at position %d for %q", i, text)
			}
		}
	}
}
