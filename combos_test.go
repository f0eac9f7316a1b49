package aoc

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/combin"
)

func TestOrderedSelections(t *testing.T) {
	got := OrderedSelections([]string{"a", "b"}, 2)
	assert.Equal(t, [][]string{{"a", "a"}, {"a", "b"}, {"b", "a"}, {"b", "b"}}, got)

	for n := 1; n <= 4; n++ {
		set := make([]int, n)
		for i := range set {
			set[i] = i
		}
		for k := 1; k <= 4; k++ {
			sel := OrderedSelections(set, k)
			want := int(math.Pow(float64(n), float64(k)))
			if len(sel) != want {
				t.Errorf("OrderedSelections(%d, %d) has %d, want %d", n, k, len(sel), want)
			}
			if !slices.IsSortedFunc(sel, slices.Compare) {
				t.Errorf("OrderedSelections(%d, %d) not in lexicographic order", n, k)
			}
		}
	}
}

func TestUnorderedSelections(t *testing.T) {
	got := UnorderedSelections([]string{"x", "y", "z"}, 2)
	assert.Equal(t, [][]string{
		{"x", "x"}, {"x", "y"}, {"x", "z"},
		{"y", "y"}, {"y", "z"},
		{"z", "z"},
	}, got)

	for n := 1; n <= 5; n++ {
		set := make([]int, n)
		for i := range set {
			set[i] = i
		}
		for k := 1; k <= 4; k++ {
			sel := UnorderedSelections(set, k)
			if want := combin.Binomial(n+k-1, k); len(sel) != want {
				t.Errorf("UnorderedSelections(%d, %d) has %d, want %d", n, k, len(sel), want)
			}
			if !slices.IsSortedFunc(sel, slices.Compare) {
				t.Errorf("UnorderedSelections(%d, %d) not in lexicographic order", n, k)
			}
			for _, s := range sel {
				if !slices.IsSorted(s) {
					t.Errorf("UnorderedSelections(%d, %d): %v is decreasing", n, k, s)
				}
			}
		}
	}
}

func TestSelectionsEdgeCases(t *testing.T) {
	set := []int{1, 2, 3}
	assert.Equal(t, [][]int{{}}, OrderedSelections(set, 0))
	assert.Equal(t, [][]int{{}}, UnorderedSelections(set, 0))
	assert.Nil(t, OrderedSelections(set, -1))
	assert.Nil(t, UnorderedSelections(set, -1))
	assert.Empty(t, OrderedSelections([]int{}, 2))
	assert.Empty(t, UnorderedSelections([]int{}, 2))
	assert.Equal(t, [][]int{{1}, {2}, {3}}, UnorderedSelections(set, 1))
}
