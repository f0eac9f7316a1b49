package aoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
)

// Rotate90Clockwise rotates a square grid a quarter turn to the right in
// place, by transposing and then reversing each row.
func Rotate90Clockwise[T any](g *Grid[T]) error {
	if g.rows != g.cols {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, g.rows, g.cols)
	}
	n := g.rows
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			g.cells[r*n+c], g.cells[c*n+r] = g.cells[c*n+r], g.cells[r*n+c]
		}
	}
	FlipHorizontal(g)
	return nil
}

// FlipHorizontal reverses the column order of every row in place.
func FlipHorizontal[T any](g *Grid[T]) {
	for _, row := range g.RowsSeq() {
		slices.Reverse(row)
	}
}

// FlipVertical reverses the row order in place.
func FlipVertical[T any](g *Grid[T]) {
	for top, bot := 0, g.rows-1; top < bot; top, bot = top+1, bot-1 {
		a := g.cells[top*g.cols : (top+1)*g.cols]
		b := g.cells[bot*g.cols : (bot+1)*g.cols]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// TrimToBounds returns the smallest sub-grid of g holding every cell that
// is not bg.
func TrimToBounds[T comparable](g *Grid[T], bg T) (*Grid[T], error) {
	minR, maxR := g.rows, -1
	minC, maxC := g.cols, -1
	for p, v := range g.All() {
		if v == bg {
			continue
		}
		minR, maxR = min(minR, p.Row), max(maxR, p.Row)
		minC, maxC = min(minC, p.Col), max(maxC, p.Col)
	}
	if maxR < 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := maxR-minR+1, maxC-minC+1
	out := &Grid[T]{rows: rows, cols: cols, cells: make([]T, 0, rows*cols)}
	for r := minR; r <= maxR; r++ {
		out.cells = append(out.cells, g.cells[r*g.cols+minC:r*g.cols+maxC+1]...)
	}
	return out, nil
}

// Print writes g to stdout, ignoring write errors. See Fprint.
func Print(g *Grid[byte]) {
	_ = Fprint(os.Stdout, g)
}

// Fprint writes each row of g as raw bytes on its own line, with a blank
// line before and after. The format is for eyeballing, not parsing.
func Fprint(w io.Writer, g *Grid[byte]) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('\n')
	for _, row := range g.RowsSeq() {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
