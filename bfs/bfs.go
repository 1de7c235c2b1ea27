package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex ID with the depth it was enqueued at.
type queueItem struct {
	id    int
	depth int
}

// relaxer encapsulates mutable relaxation state.
type relaxer struct {
	graph *Graph
	rev   [][]int
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Relax runs a multi-source backward BFS on g: every vertex in sources gets
// depth 0, and depths propagate against the edge direction, skipping frozen
// vertices. Duplicate sources are seeded once.
// Returns ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, or the
// context error on cancellation.
func Relax(g *Graph, sources []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, src := range sources {
		if !g.has(src) {
			return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, src)
		}
	}

	n := g.Order()
	r := &relaxer{
		graph: g,
		rev:   g.reverse(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Depth:  make([]int, n),
			Order:  make([]int, 0, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		r.res.Depth[v] = Inf
		r.res.Parent[v] = -1
	}
	for _, src := range sources {
		if r.res.Depth[src] == 0 {
			continue
		}
		r.enqueue(src, 0, -1)
	}

	return r.res, r.loop()
}

// enqueue lowers id to depth d via parent and appends it to the queue.
func (r *relaxer) enqueue(id, d, parent int) {
	r.res.Depth[id] = d
	r.res.Parent[id] = parent
	r.opts.OnEnqueue(id, d)
	r.queue = append(r.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (r *relaxer) loop() error {
	for head := 0; head < len(r.queue); head++ {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item := r.queue[head]
		// A later enqueue lowered this vertex; the stale entry adds nothing.
		if item.depth != r.res.Depth[item.id] {
			continue
		}
		r.opts.OnDequeue(item.id, item.depth)
		r.res.Order = append(r.res.Order, item.id)
		r.relaxPredecessors(item)
	}

	return nil
}

// relaxPredecessors lowers every unfrozen s with s→t to depth(t)+1.
func (r *relaxer) relaxPredecessors(item queueItem) {
	next := item.depth + 1
	if r.opts.MaxDepth > 0 && next > r.opts.MaxDepth {
		return
	}
	for _, s := range r.rev[item.id] {
		if r.graph.frozen[s] {
			continue
		}
		if r.res.Depth[s] > next {
			r.enqueue(s, next, item.id)
		}
	}
}
