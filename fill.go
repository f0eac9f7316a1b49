package aoc

// FloodFill replaces every empty cell reachable from start through
// CrossNeighbors with mark, and returns how many cells it changed. Cells
// that are not empty are walls. The start cell is filled only if it is
// empty itself.
func FloodFill[T comparable](g *Grid[T], start Pos, empty, mark T) (int, error) {
	v, err := g.Get(start)
	if err != nil {
		return 0, err
	}
	if v != empty || empty == mark {
		return 0, nil
	}

	n := 0
	var s Stack[int]
	g.cells[g.Index(start)] = mark
	n++
	s.Push(g.Index(start))
	for i, ok := s.Pop(); ok; i, ok = s.Pop() {
		p := g.PosOf(i)
		for _, o := range CrossNeighbors.offsets() {
			q := p.Add(o.dRow, o.dCol)
			if !g.InBounds(q) {
				continue
			}
			j := g.Index(q)
			if g.cells[j] == empty {
				g.cells[j] = mark
				n++
				s.Push(j)
			}
		}
	}
	return n, nil
}

// InfillPoly fills the inside of the outlines drawn with marker, one row
// at a time, using the even-odd rule.
//
// On each row, every maximal run of marker cells counts as one crossing
// if it is a single cell and as two crossings (its ends) otherwise, so a
// thick stroke does not flip inside and outside more than once per edge.
// Crossings are then paired off left to right and the cells strictly
// between each pair are filled. A leftover crossing fills to the right
// edge.
//
// Outlines that self-intersect are not handled in general.
func InfillPoly[T comparable](g *Grid[T], marker T) {
	var crossings []int
	for _, row := range g.RowsSeq() {
		crossings = crossings[:0]
		for c := 0; c < len(row); c++ {
			if row[c] != marker {
				continue
			}
			start := c
			for c+1 < len(row) && row[c+1] == marker {
				c++
			}
			crossings = append(crossings, start)
			if c != start {
				crossings = append(crossings, c)
			}
		}

		for i := 0; i+1 < len(crossings); i += 2 {
			fillRun(row, crossings[i]+1, crossings[i+1], marker)
		}
		if len(crossings)%2 == 1 {
			fillRun(row, crossings[len(crossings)-1]+1, len(row), marker)
		}
	}
}

// fillRun sets row[from:to] to v.
func fillRun[T any](row []T, from, to int, v T) {
	for i := from; i < to; i++ {
		row[i] = v
	}
}
