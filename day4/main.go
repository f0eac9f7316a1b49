// Command day4 finds paper rolls ('@') that a forklift can reach: those
// with fewer than four rolls among their eight neighbours.
package main

import (
	aoc "github.com/maisem/aoc2025"
)

func main() {
	aoc.Run(aoc.Day4, partA, partB)
}

const (
	roll  = '@'
	floor = '.'
)

// accessible returns the rolls with fewer than four neighbouring rolls.
func accessible(g *aoc.Grid[byte]) []aoc.Pos {
	var out []aoc.Pos
	for p, v := range g.All() {
		if v != roll {
			continue
		}
		n := 0
		for _, q := range g.Neighbors(p, aoc.AllNeighbors) {
			if g.At(q) == roll {
				n++
			}
		}
		if n < 4 {
			out = append(out, p)
		}
	}
	return out
}

func partA(p *aoc.Puzzle) (int64, error) {
	g, err := p.Grid()
	if err != nil {
		return 0, err
	}
	return int64(len(accessible(g))), nil
}

// partB keeps removing accessible rolls until none are left and counts
// them all.
func partB(p *aoc.Puzzle) (int64, error) {
	g, err := p.Grid()
	if err != nil {
		return 0, err
	}
	var removed int64
	for round := 1; ; round++ {
		batch := accessible(g)
		if len(batch) == 0 {
			break
		}
		for _, pos := range batch {
			if err := g.Set(pos, floor); err != nil {
				return 0, err
			}
		}
		removed += int64(len(batch))
		p.Debugf("round %d removed %d", round, len(batch))
	}
	return removed, nil
}
