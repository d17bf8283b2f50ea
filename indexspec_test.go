package attachpipe

import (
	"reflect"
	"testing"
)

func TestResolveIndexes(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		total int
		want  []int
	}{
		{"empty expr full range", "", 3, []int{0, 1, 2}},
		{"bare int", "2", 5, []int{1}},
		{"last literal N", "N", 5, []int{4}},
		{"last literal -1", "-1", 5, []int{4}},
		{"N of empty", "N", 0, nil},
		{"two-sided range", "1-3", 5, []int{0, 1, 2}},
		{"range to N", "4-N", 5, []int{3, 4}},
		{"left open", ":2", 5, []int{0, 1}},
		{"right open", "3:", 5, []int{2, 3, 4}},
		{"negative tail", "-2:", 5, []int{3, 4}},
		{"negative tail larger than total", "-10:", 3, []int{0, 1, 2}},
		{"comma separated", "1,3,N", 5, []int{0, 2, 4}},
		{"duplicates removed", "1,1-2,2", 5, []int{0, 1}},
		{"unordered input sorted", "4,1", 5, []int{0, 3}},
		{"out of range dropped", "7", 5, nil},
		{"partially out of range clipped", "4-9", 5, []int{3, 4}},
		{"malformed dropped", "abc", 5, nil},
		{"inverted range dropped", "3-1", 5, nil},
		{"mixed good and bad", "abc,2", 5, []int{1}},
		{"select nothing is not select all", "99", 5, nil},
		{"zero total", "", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveIndexes(tt.expr, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveIndexes(%q, %d) = %v, want %v", tt.expr, tt.total, got, tt.want)
			}
		})
	}
}

// TestResolveIndexesProperties checks the result contract for a spread of
// expressions: strictly ascending, duplicate-free, all in [0,total).
func TestResolveIndexesProperties(t *testing.T) {
	exprs := []string{"", "1", "N", "1-3", ":4", "2:", "-3:", "1,1,2,9-12,abc", "N,1", "3-N"}
	totals := []int{0, 1, 2, 5, 17}

	for _, expr := range exprs {
		for _, total := range totals {
			got := ResolveIndexes(expr, total)
			for i, v := range got {
				if v < 0 || v >= total {
					t.Errorf("ResolveIndexes(%q, %d): element %d out of range", expr, total, v)
				}
				if i > 0 && got[i-1] >= v {
					t.Errorf("ResolveIndexes(%q, %d): not strictly ascending: %v", expr, total, got)
				}
			}
		}
	}
}
