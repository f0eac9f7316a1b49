package aoc

import (
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// OrderedSelections returns every length-k sequence of elements of set,
// drawn with replacement, in lexicographic order of their positions in
// set. There are len(set)^k of them; k == 0 gives a single empty sequence.
func OrderedSelections[T any](set []T, k int) [][]T {
	switch {
	case k < 0:
		return nil
	case k == 0:
		return [][]T{{}}
	case len(set) == 0:
		return nil
	}
	lens := make([]int, k)
	for i := range lens {
		lens[i] = len(set)
	}
	idx := combin.Cartesian(lens)
	slices.SortFunc(idx, slices.Compare)
	return pick(set, idx)
}

// UnorderedSelections returns every size-k multiset of elements of set as
// a sequence that is non-decreasing in set position, in lexicographic
// order. There are C(len(set)+k-1, k) of them.
func UnorderedSelections[T any](set []T, k int) [][]T {
	switch {
	case k < 0:
		return nil
	case k == 0:
		return [][]T{{}}
	case len(set) == 0:
		return nil
	}
	// Stars and bars: a k-combination c of n+k-1 slots maps to the
	// multiset c[i]-i.
	idx := combin.Combinations(len(set)+k-1, k)
	for _, c := range idx {
		for i := range c {
			c[i] -= i
		}
	}
	slices.SortFunc(idx, slices.Compare)
	return pick(set, idx)
}

func pick[T any](set []T, idx [][]int) [][]T {
	out := make([][]T, len(idx))
	for i, ix := range idx {
		sel := make([]T, len(ix))
		for j, v := range ix {
			sel[j] = set[v]
		}
		out[i] = sel
	}
	return out
}
