// Package aoc is a grab bag of grid, graph and input helpers for solving
// Advent of Code 2025 puzzles, plus a small runner for the per-day
// programs.
//
// Grids are dense row-major arrays addressed by Pos{Row, Col}. Inputs are
// read from <root>/input_data/day<N>/<variant>.txt.
package aoc

import (
	"github.com/rs/zerolog"
)

// Puzzle is what a Part gets to work with: the day's input files for the
// variant being solved, and a logger.
type Puzzle struct {
	Day     Day
	Variant Variant
	Inputs  Inputs

	log zerolog.Logger
}

// SampleMode reports whether the puzzle is reading a sample input.
func (p *Puzzle) SampleMode() bool {
	return p.Variant != Question
}

func (p *Puzzle) Text() (string, error)            { return p.Inputs.Text(p.Day, p.Variant) }
func (p *Puzzle) Lines() ([]string, error)         { return p.Inputs.Lines(p.Day, p.Variant) }
func (p *Puzzle) Groups() ([][]string, error)      { return p.Inputs.Groups(p.Day, p.Variant) }
func (p *Puzzle) Grid() (*Grid[byte], error)       { return p.Inputs.Grid(p.Day, p.Variant) }
func (p *Puzzle) DigitGrid() (*Grid[int64], error) { return p.Inputs.DigitGrid(p.Day, p.Variant) }
func (p *Puzzle) Matrices() ([]*Grid[byte], error) { return p.Inputs.Matrices(p.Day, p.Variant) }

// ForLinesY calls onLine for each line of input, with y the line number
// starting at 0. It stops at the first error onLine returns.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	for y, l := range lines {
		if err := onLine(y, l); err != nil {
			return err
		}
	}
	return nil
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

// Debugf logs at debug level, and only when solving a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode() {
		p.log.Debug().Msgf(format, args...)
	}
}
