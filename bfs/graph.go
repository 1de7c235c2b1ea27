package bfs

import "fmt"

// Graph is a directed graph over vertices 0..n-1. Parallel edges and
// self-loops are allowed; they never shorten a distance.
type Graph struct {
	adj    [][]int
	frozen []bool
	edges  int
}

// NewGraph returns a graph with n isolated vertices.
// Returns ErrVertexOutOfRange for negative n.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: order %d", ErrVertexOutOfRange, n)
	}

	return &Graph{adj: make([][]int, n), frozen: make([]bool, n)}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.edges }

func (g *Graph) has(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge appends from→to.
func (g *Graph) AddEdge(from, to int) error {
	if !g.has(from) || !g.has(to) {
		return fmt.Errorf("%w: edge %d→%d", ErrVertexOutOfRange, from, to)
	}
	g.adj[from] = append(g.adj[from], to)
	g.edges++

	return nil
}

// Successors returns a copy of v's out-edges in insertion order.
func (g *Graph) Successors(v int) []int {
	if !g.has(v) {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// Freeze marks v as never relaxed.
func (g *Graph) Freeze(v int) error {
	if !g.has(v) {
		return fmt.Errorf("%w: freeze %d", ErrVertexOutOfRange, v)
	}
	g.frozen[v] = true

	return nil
}

// Frozen reports whether v is frozen.
func (g *Graph) Frozen(v int) bool { return g.has(v) && g.frozen[v] }

// reverse builds the predecessor lists: rev[t] holds every s with s→t, in
// ascending s and then edge insertion order.
func (g *Graph) reverse() [][]int {
	rev := make([][]int, len(g.adj))
	for s, targets := range g.adj {
		for _, t := range targets {
			rev[t] = append(rev[t], s)
		}
	}

	return rev
}
