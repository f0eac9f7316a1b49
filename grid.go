package aoc

import (
	"fmt"
	"iter"

	"tailscale.com/util/deephash"
)

// Pos is a (row, col) address in a grid.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p offset by dRow and dCol.
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{p.Row + dRow, p.Col + dCol}
}

// Step returns the position one step from p in direction d. The result
// is not bounds checked.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

// MDist returns the manhattan distance between p and q.
func (p Pos) MDist(q Pos) int {
	return AbsDiff(p.Row, q.Row) + AbsDiff(p.Col, q.Col)
}

// Grid is a dense rows x cols array of cells stored in row-major order.
// The zero value is an empty 0x0 grid.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// NewGrid returns a rows x cols grid with every cell set to fill.
func NewGrid[T any](rows, cols int, fill T) *Grid[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("aoc: negative grid size %dx%d", rows, cols))
	}
	g := &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// GridFromRowMajor builds a rows x cols grid from cells laid out row by
// row. The cells are copied.
func GridFromRowMajor[T any](cells []T, rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrOutOfBounds, rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells do not fill %dx%d", ErrOutOfBounds, len(cells), rows, cols)
	}
	out := make([]T, len(cells))
	copy(out, cells)
	return &Grid[T]{rows: rows, cols: cols, cells: out}, nil
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }

// Size returns the dimensions of the grid as a Pos{rows, cols}.
func (g *Grid[T]) Size() Pos {
	return Pos{g.rows, g.cols}
}

// InBounds reports whether p addresses a cell of g.
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.rows && p.Col < g.cols
}

// Index returns the row-major index of p. It does not check bounds.
func (g *Grid[T]) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// PosOf is the inverse of Index.
func (g *Grid[T]) PosOf(i int) Pos {
	return Pos{i / g.cols, i % g.cols}
}

// Get returns the cell at p.
func (g *Grid[T]) Get(p Pos) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, outOfBounds(p, g.rows, g.cols)
	}
	return g.cells[g.Index(p)], nil
}

// Set stores v at p.
func (g *Grid[T]) Set(p Pos, v T) error {
	if !g.InBounds(p) {
		return outOfBounds(p, g.rows, g.cols)
	}
	g.cells[g.Index(p)] = v
	return nil
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Pos) T {
	if !g.InBounds(p) {
		panic(outOfBounds(p, g.rows, g.cols))
	}
	return g.cells[g.Index(p)]
}

// AtOk is like At but reports false instead of panicking.
func (g *Grid[T]) AtOk(p Pos) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(p)], true
}

// Row returns row r. The returned slice aliases the grid.
func (g *Grid[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= g.rows {
		return nil, fmt.Errorf("%w: row %d not in %dx%d grid", ErrOutOfBounds, r, g.rows, g.cols)
	}
	return g.cells[r*g.cols : (r+1)*g.cols : (r+1)*g.cols], nil
}

// RowsSeq yields every row in order. The yielded slices alias the grid.
func (g *Grid[T]) RowsSeq() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < g.rows; r++ {
			if !yield(r, g.cells[r*g.cols:(r+1)*g.cols:(r+1)*g.cols]) {
				return
			}
		}
	}
}

// All yields every cell with its position in row-major order.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i, v := range g.cells {
			if !yield(g.PosOf(i), v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{rows: g.rows, cols: g.cols, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Hash returns a structural hash of the grid's dimensions and cells.
// Equal grids hash equal, which makes it handy for spotting repeated
// states in simulations.
func (g *Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(g)
}

// Transpose returns a new cols x rows grid with rows and columns swapped.
func Transpose[T any](g *Grid[T]) *Grid[T] {
	out := &Grid[T]{rows: g.cols, cols: g.rows, cells: make([]T, len(g.cells))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.cells[c*out.cols+r] = g.cells[r*g.cols+c]
		}
	}
	return out
}

// Grid3 is a dense width x height x depth array.
type Grid3[T any] struct {
	w, h, d int
	cells   []T
}

// NewGrid3 returns a w x h x d array with every cell set to fill.
func NewGrid3[T any](w, h, d int, fill T) *Grid3[T] {
	if w < 0 || h < 0 || d < 0 {
		panic(fmt.Sprintf("aoc: negative grid size %dx%dx%d", w, h, d))
	}
	g := &Grid3[T]{w: w, h: h, d: d, cells: make([]T, w*h*d)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Size returns the width, height and depth of g.
func (g *Grid3[T]) Size() (w, h, d int) {
	return g.w, g.h, g.d
}

func (g *Grid3[T]) index(x, y, z int) (int, error) {
	if x < 0 || y < 0 || z < 0 || x >= g.w || y >= g.h || z >= g.d {
		return 0, fmt.Errorf("%w: (%d,%d,%d) not in %dx%dx%d grid", ErrOutOfBounds, x, y, z, g.w, g.h, g.d)
	}
	return (z*g.h+y)*g.w + x, nil
}

func (g *Grid3[T]) Get(x, y, z int) (T, error) {
	i, err := g.index(x, y, z)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[i], nil
}

func (g *Grid3[T]) Set(x, y, z int, v T) error {
	i, err := g.index(x, y, z)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}
