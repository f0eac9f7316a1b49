package aoc

import "fmt"

// Direction is one of the four cardinal moves. The values are ordered
// clockwise so turning is modular arithmetic.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the cardinal directions in the order Up, Down, Left,
// Right, which is also the order of CrossNeighbors.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the (row, col) offset of a single step in d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	panic(fmt.Sprintf("aoc: bad direction %d", int(d)))
}

func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

func (d Direction) CounterClockwise() Direction {
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Turn turns d by 90 degrees, to the right if right is true and to the
// left otherwise.
func (d Direction) Turn(right bool) Direction {
	if right {
		return d.Clockwise()
	}
	return d.CounterClockwise()
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Adjacency selects which neighbours of a cell are considered.
type Adjacency int

const (
	AllNeighbors Adjacency = iota
	DiagonalNeighbors
	HorizontalNeighbors
	VerticalNeighbors
	CrossNeighbors
)

type offset struct{ dRow, dCol int }

var adjacencyOffsets = [...][]offset{
	AllNeighbors: {
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	},
	DiagonalNeighbors:   {{-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
	HorizontalNeighbors: {{0, -1}, {0, 1}},
	VerticalNeighbors:   {{-1, 0}, {1, 0}},
	CrossNeighbors:      {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
}

func (k Adjacency) offsets() []offset {
	if k < 0 || int(k) >= len(adjacencyOffsets) {
		panic(fmt.Sprintf("aoc: bad adjacency %d", int(k)))
	}
	return adjacencyOffsets[k]
}

// AdjacentPositions returns the in-bounds neighbours of p selected by
// kind, in the fixed offset order of that kind.
func AdjacentPositions[T any](g *Grid[T], p Pos, kind Adjacency) []Pos {
	offs := kind.offsets()
	out := make([]Pos, 0, len(offs))
	for _, o := range offs {
		if n := p.Add(o.dRow, o.dCol); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors is AdjacentPositions as a method.
func (g *Grid[T]) Neighbors(p Pos, kind Adjacency) []Pos {
	return AdjacentPositions(g, p, kind)
}

// MoveCursor returns the neighbour of p in direction d, or false if that
// neighbour is outside g.
func MoveCursor[T any](g *Grid[T], d Direction, p Pos) (Pos, bool) {
	n := p.Step(d)
	if !g.InBounds(n) {
		return Pos{}, false
	}
	return n, true
}

// Move is MoveCursor as a method.
func (g *Grid[T]) Move(p Pos, d Direction) (Pos, bool) {
	return MoveCursor(g, d, p)
}

// Cursor is a position with a heading.
type Cursor struct {
	Pos Pos
	Dir Direction
}

// Advance moves c one step along its heading.
func (g *Grid[T]) Advance(c Cursor) (Cursor, bool) {
	p, ok := MoveCursor(g, c.Dir, c.Pos)
	if !ok {
		return Cursor{}, false
	}
	c.Pos = p
	return c, true
}
