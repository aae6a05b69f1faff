package tokenizer

import (
	"reflect"
	"testing"
)

func TestPackPair(t *testing.T) {
	pairs := [][2]int{{0, 0}, {97, 98}, {255, 256}, {1000, 70000}}
	for _, p := range pairs {
		left, right := unpackPair(packPair(p[0], p[1]))
		if left != p[0] || right != p[1] {
			t.Errorf("unpack(pack(%d, %d)) = (%d, %d)", p[0], p[1], left, right)
		}
	}

	// Packed keys must order the same way as (left, right) tuples.
	if packPair(1, 2) >= packPair(2, 1) {
		t.Error("expected packPair(1, 2) < packPair(2, 1)")
	}
	if packPair(97, 99) >= packPair(98, 0) {
		t.Error("expected packPair(97, 99) < packPair(98, 0)")
	}
}

func TestCountPairs(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int
		expected map[uint64]int
	}{
		{"empty", nil, map[uint64]int{}},
		{"single id", []int{5}, map[uint64]int{}},
		{"repeated pair", []int{1, 2, 2, 3, 1, 2}, map[uint64]int{
			packPair(1, 2): 2,
			packPair(2, 2): 1,
			packPair(2, 3): 1,
			packPair(3, 1): 1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countPairs(tt.ids)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("countPairs(%v) = %v, expected %v", tt.ids, got, tt.expected)
			}
		})
	}
}

func TestCountPairsWeighted(t *testing.T) {
	splits := [][]int{
		{104, 105},
		{104, 105, 105},
	}
	counts := []int{3, 2}

	got := countPairsWeighted(splits, counts)
	expected := map[uint64]int{
		packPair(104, 105): 5,
		packPair(105, 105): 2,
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("countPairsWeighted = %v, expected %v", got, expected)
	}
}

func TestBestPair(t *testing.T) {
	if _, ok := bestPair(map[uint64]int{}); ok {
		t.Error("expected no best pair for empty stats")
	}

	stats := map[uint64]int{
		packPair(2, 1): 3,
		packPair(1, 2): 3,
		packPair(5, 5): 2,
	}
	pair, ok := bestPair(stats)
	if !ok {
		t.Fatal("expected a best pair")
	}
	left, right := unpackPair(pair)
	if left != 1 || right != 2 {
		t.Errorf("tie-break picked (%d, %d), expected (1, 2)", left, right)
	}
}
