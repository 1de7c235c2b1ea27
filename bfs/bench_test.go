package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lakepath/bfs"
)

// BenchmarkRelax_Chain measures relaxation along a linear chain of N+1 vertices.
func BenchmarkRelax_Chain(b *testing.B) {
	const N = 10000
	g, _ := bfs.NewGraph(N + 1)
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Relax(g, []int{N})
	}
}

// BenchmarkRelax_Grid measures a 64×64 four-neighbour grid seeded at one corner.
func BenchmarkRelax_Grid(b *testing.B) {
	const side = 64
	g, _ := bfs.NewGraph(side * side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			v := i*side + j
			if j+1 < side {
				_ = g.AddEdge(v, v+1)
				_ = g.AddEdge(v+1, v)
			}
			if i+1 < side {
				_ = g.AddEdge(v, v+side)
				_ = g.AddEdge(v+side, v)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Relax(g, []int{side*side - 1})
	}
}
