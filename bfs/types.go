package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and relaxation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when an edge or freeze names a missing vertex.
	ErrVertexOutOfRange = errors.New("bfs: vertex out of range")

	// ErrSourceOutOfRange is returned when a source ID is not a vertex.
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the vertex was never reached.
	ErrNoPath = errors.New("bfs: no path to a source")
)

// Inf marks a vertex that no source reaches.
const Inf = math.MaxInt

// Option configures Relax behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Relax is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize relaxation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called each time a vertex is (re)enqueued with its new depth.
	OnEnqueue func(id, depth int)

	// OnDequeue is called immediately before a vertex's predecessors are scanned.
	OnDequeue func(id, depth int)

	// MaxDepth, if > 0, leaves vertices farther than MaxDepth at Inf.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no-op hooks and no
// depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth bounds the assigned depth.
//
//	d > 0: depths above d stay Inf
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a relaxation:
//   - Depth: hop count to the nearest source, Inf when unreached.
//   - Order: reached vertices in dequeue sequence, each once.
//   - Parent: successor on a shortest route toward a source, -1 otherwise.
type Result struct {
	Depth  []int
	Order  []int
	Parent []int
}

// Reached reports whether id has a finite depth.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] != Inf
}

// PathTo reconstructs the route from id to its nearest source, both ends
// included. Returns ErrNoPath if id was not reached.
func (r *Result) PathTo(id int) ([]int, error) {
	if !r.Reached(id) {
		return nil, fmt.Errorf("%w: vertex %d", ErrNoPath, id)
	}
	path := make([]int, 0, r.Depth[id]+1)
	for cur := id; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}

	return path, nil
}
