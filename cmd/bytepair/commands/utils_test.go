package commands

import (
	"reflect"
	"testing"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []int
		wantErr  bool
	}{
		{"empty", nil, []int{}, false},
		{"single", []string{"42"}, []int{42}, false},
		{"multiple args", []string{"104", "101", "256"}, []int{104, 101, 256}, false},
		{"space separated arg", []string{"1 2  3"}, []int{1, 2, 3}, false},
		{"not a number", []string{"12", "x"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseIDs(%v) succeeded, expected error", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIDs(%v) failed: %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseIDs(%v) = %v, expected %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestReadInputJoinsArgs(t *testing.T) {
	got, err := readInput([]string{"hello", "world"})
	if err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("readInput = %q, expected %q", got, "hello world")
	}
}
