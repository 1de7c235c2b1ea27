// Package bfs provides a multi-source backward breadth-first relaxation over a
// small directed graph with integer vertex IDs, returning hop distances to the
// nearest source, parent links toward that source, and dequeue order.
//
// What
//
//   - Seed every source at depth 0 and process a FIFO queue.
//   - For a dequeued vertex t, every predecessor s with an edge s→t whose
//     Depth exceeds Depth[t]+1 is lowered to Depth[t]+1 and enqueued.
//   - Vertices marked Frozen are never relaxed; they keep Inf unless they are
//     themselves sources.
//   - Returns a Result containing:
//   - Depth: hop count to the nearest source, Inf when unreachable
//   - Order: dequeue sequence
//   - Parent: next vertex on a shortest route to a source, -1 for sources
//     and unreached vertices
//   - Supports hooks OnEnqueue / OnDequeue and a MaxDepth limit.
//
// Why
//
//   - Distance-to-target problems (how many steps until a goal is reached)
//     are single-source problems on the reversed graph; running them
//     backward from all targets at once costs one pass.
//
// Determinism
//
//	Predecessors are scanned in the order their edges were added, so the
//	dequeue sequence and parent links are fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) for the reverse index plus O(V + E) per relaxation wave.
//   - Memory: O(V + E).
//
// Usage
//
//	g, _ := bfs.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.Freeze(3)
//	res, err := bfs.Relax(g, []int{2},
//	    bfs.WithMaxDepth(10),
//	    bfs.WithOnDequeue(func(id, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if AddEdge/Freeze name a missing vertex.
//   - ErrSourceOutOfRange  if a source ID is not a vertex.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath            from PathTo for unreached vertices.
//   - ctx.Err() when the context is cancelled.
package bfs
