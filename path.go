package aoc

import (
	"fmt"
	"math"
	"slices"
)

// ShortestPath returns a cheapest path of CrossNeighbors steps from start
// to end, along with its cost. Cells equal to wall cannot be entered.
// Stepping into a cell v costs costOf(v); the start cell is free. Among
// equally cheap paths the one found first wins, with neighbours explored
// in CrossNeighbors order.
//
// It returns ErrOutOfBounds if start or end is outside g, and
// ErrNoSolution if either is a wall or end cannot be reached.
func ShortestPath[T comparable](g *Grid[T], start, end Pos, wall T, costOf func(T) int) ([]Pos, int, error) {
	for _, p := range []Pos{start, end} {
		v, err := g.Get(p)
		if err != nil {
			return nil, 0, err
		}
		if v == wall {
			return nil, 0, fmt.Errorf("%w: %v is a wall", ErrNoSolution, p)
		}
	}

	const unvisited = -1
	dist := make([]int, len(g.cells))
	prev := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = unvisited
	}
	src, dst := g.Index(start), g.Index(end)
	dist[src] = 0

	q := MinQueue[int]()
	q.Push(&PQI[int]{V: src, P: 0})
	for q.Len() > 0 {
		it := q.Pop()
		u := it.V
		if it.P > dist[u] {
			continue // stale
		}
		if u == dst {
			break
		}
		p := g.PosOf(u)
		for _, o := range CrossNeighbors.offsets() {
			n := p.Add(o.dRow, o.dCol)
			if !g.InBounds(n) {
				continue
			}
			v := g.Index(n)
			cell := g.cells[v]
			if cell == wall {
				continue
			}
			c := costOf(cell)
			if c < 0 {
				return nil, 0, fmt.Errorf("aoc: negative cost %d entering %v", c, n)
			}
			if d := dist[u] + c; d < dist[v] {
				dist[v] = d
				prev[v] = u
				q.Push(&PQI[int]{V: v, P: d})
			}
		}
	}

	if dist[dst] == math.MaxInt {
		return nil, 0, fmt.Errorf("%w: %v unreachable from %v", ErrNoSolution, end, start)
	}
	var path []Pos
	for i := dst; i != unvisited; i = prev[i] {
		path = append(path, g.PosOf(i))
	}
	slices.Reverse(path)
	return path, dist[dst], nil
}

// ToGraph builds a unit-weight graph of the cells reachable from start
// through kind neighbours for which passable returns true.
func (grid *Grid[T]) ToGraph(start Pos, kind Adjacency, passable func(T) bool) *Graph[Pos] {
	g := NewGraph[Pos](false)
	if v, ok := grid.AtOk(start); !ok || !passable(v) {
		return g
	}
	g.AddNode(start)

	q := NewQueue(start)
	seen := map[Pos]bool{start: true}
	q.While(func(p Pos) bool {
		for _, n := range grid.Neighbors(p, kind) {
			if !passable(grid.At(n)) {
				continue
			}
			g.AddEdge(p, n, 1)
			if !seen[n] {
				seen[n] = true
				q.Push(n)
			}
		}
		return true
	})
	return g
}
