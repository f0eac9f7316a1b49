package aoc

import (
	"math"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph keyed by K. Edges[a][b] is the weight of the
// edge a->b. Undirected graphs store every edge in both directions.
type Graph[K comparable] struct {
	Directed bool
	Nodes    map[K]bool
	Edges    map[K]map[K]int
}

// Edge is a pair of node keys.
type Edge[T comparable] struct {
	A, B T
}

func NewGraph[K comparable](directed bool) *Graph[K] {
	return &Graph[K]{
		Directed: directed,
		Nodes:    make(map[K]bool),
		Edges:    make(map[K]map[K]int),
	}
}

// LinesToGraph builds a graph from input lines, where mapper turns each
// line into the edges it describes. Nodes are created as edges mention
// them. All edges have weight 1.
func LinesToGraph(lines []string, directed bool, mapper func(line string) []Edge[string]) *Graph[string] {
	g := NewGraph[string](directed)
	for _, line := range lines {
		for _, e := range mapper(line) {
			g.AddEdge(e.A, e.B, 1)
		}
	}
	return g
}

func (g *Graph[K]) Clone() *Graph[K] {
	out := &Graph[K]{
		Directed: g.Directed,
		Nodes:    maps.Clone(g.Nodes),
		Edges:    make(map[K]map[K]int, len(g.Edges)),
	}
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return out
}

// NumEdges returns the number of edges, counting each undirected edge
// once.
func (g *Graph[K]) NumEdges() int {
	n := 0
	for _, e := range g.Edges {
		n += len(e)
	}
	if !g.Directed {
		loops := 0
		for k, e := range g.Edges {
			if _, ok := e[k]; ok {
				loops++
			}
		}
		n = (n-loops)/2 + loops
	}
	return n
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddEdge adds an edge a->b with weight w, and b->a too if g is
// undirected.
func (g *Graph[K]) AddEdge(a, b K, w int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = w
	if g.Directed {
		return
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[b][a] = w
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	if !g.Directed {
		delete(g.Edges[b], a)
	}
}

// ReachableNodes returns the set of nodes reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// NumPaths returns the number of simple paths from start to end.
//
// Directed graphs are assumed to be acyclic and counts are memoised per
// node, which keeps large DAGs tractable. Undirected graphs are searched
// exhaustively.
func (g *Graph[K]) NumPaths(start, end K) int {
	if g.Directed {
		return g.numDAGPaths(start, end, make(map[K]int))
	}
	return g.numPaths(start, end, make(map[K]bool))
}

func (g *Graph[K]) numDAGPaths(from, end K, memo map[K]int) int {
	if from == end {
		return 1
	}
	if n, ok := memo[from]; ok {
		return n
	}
	n := 0
	for k := range g.Edges[from] {
		n += g.numDAGPaths(k, end, memo)
	}
	memo[from] = n
	return n
}

func (g *Graph[K]) numPaths(from, end K, visited map[K]bool) int {
	if from == end {
		return 1
	}
	visited[from] = true
	defer delete(visited, from)
	n := 0
	for k := range g.Edges[from] {
		if !visited[k] {
			n += g.numPaths(k, end, visited)
		}
	}
	return n
}

// AllShortestPaths returns the shortest distance between every ordered
// pair of connected nodes (Floyd-Warshall). Unconnected pairs are absent.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	nodes := maps.Keys(g.Nodes)
	dist := map[key]int{}
	for _, k := range nodes {
		dist[key{k, k}] = 0
		for k2, w := range g.Edges[k] {
			if k2 != k {
				dist[key{k, k2}] = w
			}
		}
	}
	get := func(a, b K) int {
		if d, ok := dist[key{a, b}]; ok {
			return d
		}
		return math.MaxInt
	}
	for _, k2 := range nodes {
		for _, k1 := range nodes {
			e12 := get(k1, k2)
			if e12 == math.MaxInt {
				continue
			}
			for _, k3 := range nodes {
				e23 := get(k2, k3)
				if e23 == math.MaxInt {
					continue
				}
				if e := e12 + e23; e < get(k1, k3) {
					dist[key{k1, k3}] = e
				}
			}
		}
	}
	return dist
}

// InitMap makes *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
