package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lakepath/bfs"
)

// mustGraph builds a graph of order n with the given edges.
func mustGraph(t testing.TB, n int, edges [][2]int) *bfs.Graph {
	t.Helper()
	g, err := bfs.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestRelax_Errors verifies that invalid inputs and options are rejected.
func TestRelax_Errors(t *testing.T) {
	_, err := bfs.Relax(nil, []int{0})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, 2, nil)
	_, err = bfs.Relax(g, []int{2})
	assert.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.Relax(g, []int{-1})
	assert.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.Relax(g, []int{0}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.NewGraph(-1)
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 5), bfs.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.Freeze(9), bfs.ErrVertexOutOfRange)
}

// TestRelax_Chain checks hop counts along 0→1→2→3 seeded at 3.
func TestRelax_Chain(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := bfs.Relax(g, []int{3})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1, 0}, res.Depth)
	assert.Equal(t, []int{3, 2, 1, 0}, res.Order)
	assert.Equal(t, []int{1, 2, 3, -1}, res.Parent)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

// TestRelax_MultiSourceNearestWins checks that each vertex takes the closer source.
func TestRelax_MultiSourceNearestWins(t *testing.T) {
	// 0→1→2→3→4 and 0→5; sources 4 and 5.
	g := mustGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 5}})
	res, err := bfs.Relax(g, []int{4, 5, 4})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 2, 1, 0, 0}, res.Depth)
	assert.Equal(t, 5, res.Parent[0])
	assert.Equal(t, []int{4, 5, 3, 0, 2, 1}, res.Order)
}

// TestRelax_FrozenAndUnreachable checks that frozen vertices block propagation.
func TestRelax_FrozenAndUnreachable(t *testing.T) {
	// 0→1→2, with 1 frozen; 3 is isolated.
	g := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, g.Freeze(1))
	assert.True(t, g.Frozen(1))
	assert.False(t, g.Frozen(0))

	res, err := bfs.Relax(g, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{bfs.Inf, bfs.Inf, 0, bfs.Inf}, res.Depth)
	assert.False(t, res.Reached(0))
	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	// A frozen source still seeds.
	res, err = bfs.Relax(g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth[0])
}

// TestRelax_CyclesAndSelfLoops verifies that loops never shorten distances.
func TestRelax_CyclesAndSelfLoops(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 2}})
	res, err := bfs.Relax(g, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Depth)
}

// TestRelax_MaxDepth leaves vertices beyond the limit at Inf.
func TestRelax_MaxDepth(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := bfs.Relax(g, []int{3}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{bfs.Inf, 2, 1, 0}, res.Depth)
}

// TestRelax_Hooks records hook invocations in order.
func TestRelax_Hooks(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 2}, {1, 2}})
	var enq, deq []int
	_, err := bfs.Relax(g, []int{2},
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, enq)
	assert.Equal(t, []int{2, 0, 1}, deq)
}

// TestRelax_Cancelled returns the context error.
func TestRelax_Cancelled(t *testing.T) {
	g := mustGraph(t, 2, [][2]int{{0, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Relax(g, []int{1}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRelax_Deterministic runs twice and compares.
func TestRelax_Deterministic(t *testing.T) {
	g := mustGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 0}})
	a, err := bfs.Relax(g, []int{4})
	require.NoError(t, err)
	b, err := bfs.Relax(g, []int{4})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, []int{1, 2}, g.Successors(0))
}
