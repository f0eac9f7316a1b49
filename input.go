package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Day identifies a puzzle day. Test is a fixture day for inputs that can
// be checked in.
type Day int

const (
	Test Day = iota
	Day1
	Day2
	Day3
	Day4
	Day5
	Day6
	Day7
	Day8
	Day9
	Day10
	Day11
	Day12
)

func (d Day) String() string {
	return fmt.Sprintf("Day %d", int(d))
}

// Dir is the name of the day's input directory.
func (d Day) Dir() string {
	return fmt.Sprintf("day%d", int(d))
}

// Variant names one of the input files of a day.
type Variant int

const (
	Question Variant = iota
	Sample
	AltSample
	ManyMatrix
)

var variantTags = [...]string{
	Question:   "input",
	Sample:     "sample",
	AltSample:  "alt_sample",
	ManyMatrix: "many_matrix",
}

// String returns the variant's file name tag.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantTags) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantTags[v]
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(tag string) (Variant, error) {
	for v, t := range variantTags {
		if t == tag {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrParse, tag)
}

// Inputs reads puzzle input files from under Root.
type Inputs struct {
	Root string
}

// Path returns <Root>/input_data/day<N>/<variant>.txt.
func (in Inputs) Path(d Day, v Variant) string {
	return filepath.Join(in.Root, "input_data", d.Dir(), v.String()+".txt")
}

// Text returns the file contents as is.
func (in Inputs) Text(d Day, v Variant) (string, error) {
	path := in.Path(d, v)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s input: %w", d, err)
	}
	return string(b), nil
}

// Lines returns the lines of the file. Blank lines are kept.
func (in Inputs) Lines(d Day, v Variant) ([]string, error) {
	text, err := in.Text(d, v)
	if err != nil {
		return nil, err
	}
	return SplitLines(text)
}

// Groups returns the file's lines split into blocks separated by blank
// lines.
func (in Inputs) Groups(d Day, v Variant) ([][]string, error) {
	lines, err := in.Lines(d, v)
	if err != nil {
		return nil, err
	}
	return SplitGroups(lines), nil
}

// Grid returns the file as a byte grid.
func (in Inputs) Grid(d Day, v Variant) (*Grid[byte], error) {
	text, err := in.Text(d, v)
	if err != nil {
		return nil, err
	}
	return ParseGrid(text)
}

// DigitGrid returns the file as a grid of digit values.
func (in Inputs) DigitGrid(d Day, v Variant) (*Grid[int64], error) {
	text, err := in.Text(d, v)
	if err != nil {
		return nil, err
	}
	return ParseDigitGrid(text)
}

// Matrices returns one byte grid per blank-line separated block of the
// file.
func (in Inputs) Matrices(d Day, v Variant) ([]*Grid[byte], error) {
	text, err := in.Text(d, v)
	if err != nil {
		return nil, err
	}
	return ParseMatrices(text)
}

// SplitLines splits text into lines, dropping line terminators (LF or
// CRLF). A final newline does not start another line.
func SplitLines(text string) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(nil, len(text)+1)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// SplitGroups splits lines on runs of blank lines. Empty groups are
// dropped.
func SplitGroups(lines []string) [][]string {
	var groups [][]string
	var cur []string
	for _, l := range lines {
		if l == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// ParseGrid parses text into a byte grid, one row per non-blank line.
// All rows must have the same length.
func ParseGrid(text string) (*Grid[byte], error) {
	lines, err := SplitLines(text)
	if err != nil {
		return nil, err
	}
	return gridFromLines(lines)
}

// GridFromRows builds a byte grid from rows, which must all have the same
// length.
func GridFromRows(rows ...string) (*Grid[byte], error) {
	return gridFromLines(rows)
}

func gridFromLines(lines []string) (*Grid[byte], error) {
	g := &Grid[byte]{}
	for i, l := range lines {
		if l == "" {
			continue
		}
		if g.rows == 0 {
			g.cols = len(l)
		} else if len(l) != g.cols {
			return nil, fmt.Errorf("%w: line %d has length %d, want %d", ErrRagged, i+1, len(l), g.cols)
		}
		g.cells = append(g.cells, l...)
		g.rows++
	}
	if g.rows == 0 {
		return nil, fmt.Errorf("%w: no grid rows", ErrParse)
	}
	return g, nil
}

// ParseDigitGrid parses text into a grid of digit values.
func ParseDigitGrid(text string) (*Grid[int64], error) {
	b, err := ParseGrid(text)
	if err != nil {
		return nil, err
	}
	out := &Grid[int64]{rows: b.rows, cols: b.cols, cells: make([]int64, len(b.cells))}
	for i, c := range b.cells {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at %v", ErrNotDigit, c, b.PosOf(i))
		}
		out.cells[i] = int64(c - '0')
	}
	return out, nil
}

// ParseMatrices parses each blank-line separated block of text as its own
// byte grid.
func ParseMatrices(text string) ([]*Grid[byte], error) {
	lines, err := SplitLines(text)
	if err != nil {
		return nil, err
	}
	var out []*Grid[byte]
	for i, group := range SplitGroups(lines) {
		g, err := gridFromLines(group)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// FindRoot returns the nearest directory at or above dir that holds a
// go.mod file.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		_, err := os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod at or above %s: %w", dir, fs.ErrNotExist)
		}
		dir = parent
	}
}
