// Command day1 counts how often a 100-position dial lands on or passes
// zero while following a list of L/R rotations.
package main

import (
	"fmt"

	aoc "github.com/maisem/aoc2025"
)

func main() {
	aoc.Run(aoc.Day1, partA, partB)
}

const dialSize = 100

// rotations parses lines like "L68" or "R14" into signed deltas, left
// being negative.
func rotations(p *aoc.Puzzle) ([]int, error) {
	var out []int
	err := p.ForLines(func(line string) error {
		if line == "" {
			return nil
		}
		n, err := aoc.Int(line[1:])
		if err != nil {
			return err
		}
		switch line[0] {
		case 'L':
			n = -n
		case 'R':
		default:
			return fmt.Errorf("%w: bad rotation %q", aoc.ErrParse, line)
		}
		out = append(out, n)
		return nil
	})
	return out, err
}

// partA counts the rotations that leave the dial at zero.
func partA(p *aoc.Puzzle) (int64, error) {
	rots, err := rotations(p)
	if err != nil {
		return 0, err
	}
	dial, zeros := 50, 0
	for _, r := range rots {
		dial = ((dial+r)%dialSize + dialSize) % dialSize
		if dial == 0 {
			zeros++
		}
	}
	p.Debugf("final dial %d", dial)
	return int64(zeros), nil
}

// partB counts every click that passes or lands on zero.
func partB(p *aoc.Puzzle) (int64, error) {
	rots, err := rotations(p)
	if err != nil {
		return 0, err
	}
	dial, zeros := 50, 0
	for _, r := range rots {
		zeros += aoc.AbsDiff(r/dialSize, 0)
		start := dial
		dial += r % dialSize
		switch {
		case dial >= dialSize:
			dial -= dialSize
			zeros++
		case dial < 0:
			dial += dialSize
			if start != 0 {
				zeros++
			}
		case dial == 0 && start != 0:
			zeros++
		}
	}
	p.Debugf("final dial %d", dial)
	return int64(zeros), nil
}
