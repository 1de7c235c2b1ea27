// Package fitness wires the pipeline together: build the shortest-path
// policy for a model, assemble its P and r, evaluate v, and report the value
// of the start state as the policy's fitness.
package fitness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/lakepath/bellman"
	"github.com/katalvlaran/lakepath/matrix"
	"github.com/katalvlaran/lakepath/mdp"
	"github.com/katalvlaran/lakepath/policy"
)

// ErrGamma is returned for a discount factor outside (0, 1].
var ErrGamma = errors.New("fitness: discount factor must lie in (0, 1]")

// Option configures Run.
type Option func(*Options)

// Options collects the settings forwarded to policy and bellman.
type Options struct {
	Method bellman.Method
	Logger *slog.Logger

	policyOpts  []policy.Option
	bellmanOpts []bellman.Option
}

// DefaultOptions selects the exact method and a discard logger.
func DefaultOptions() Options {
	return Options{
		Method: bellman.MethodExact,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMethod selects the evaluation method. Unknown names fail in Run
// before any construction.
func WithMethod(m bellman.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithTieBreak forwards a tie-break order to policy.Build.
func WithTieBreak(order ...mdp.Action) Option {
	return func(o *Options) { o.policyOpts = append(o.policyOpts, policy.WithTieBreak(order...)) }
}

// WithRand forwards an entropy source to policy.Build.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.policyOpts = append(o.policyOpts, policy.WithRand(r)) }
}

// WithEpsilon forwards the iterative tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.bellmanOpts = append(o.bellmanOpts, bellman.WithEpsilon(eps)) }
}

// WithMaxIters forwards the iterative cap.
func WithMaxIters(n int) Option {
	return func(o *Options) { o.bellmanOpts = append(o.bellmanOpts, bellman.WithMaxIters(n)) }
}

// WithLogger sets the logger for this run and for policy construction.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result carries every intermediate of a run.
type Result struct {
	Policy     *policy.ShortestPath
	States     []mdp.State
	Index      map[mdp.State]int
	P          *matrix.Dense
	R          []float64
	V          []float64
	Fitness    float64
	Method     bellman.Method
	Converged  bool
	Iterations int
}

// Run evaluates the shortest-path policy of m under discount gamma.
//
// Errors: bellman.ErrUnknownMethod, ErrGamma, mdp.ErrMDPNil, option
// violations from policy or bellman, matrix.ErrSingular.
func Run(m mdp.MDP, gamma float64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	method, err := bellman.ParseMethod(string(o.Method))
	if err != nil {
		return nil, fmt.Errorf("fitness: %w", err)
	}
	if math.IsNaN(gamma) || gamma <= 0 || gamma > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrGamma, gamma)
	}
	if m == nil {
		return nil, fmt.Errorf("fitness: %w", mdp.ErrMDPNil)
	}

	pi, err := policy.Build(m, append(o.policyOpts, policy.WithLogger(o.Logger))...)
	if err != nil {
		return nil, fmt.Errorf("fitness: %w", err)
	}
	states := pi.States()
	index := mdp.Index(states)
	P, r, err := mdp.BuildPolicyPr(m, pi, states, index)
	if err != nil {
		return nil, fmt.Errorf("fitness: %w", err)
	}

	ev, err := bellman.Evaluate(method, P, r, gamma, o.bellmanOpts...)
	if err != nil {
		return nil, fmt.Errorf("fitness: %w", err)
	}
	f := ev.V[index[m.Start()]]

	log := o.Logger.With("method", string(method), "gamma", gamma, "states", len(states))
	if !ev.Converged {
		log.Warn("iterative evaluation hit the iteration cap",
			"iterations", ev.Iterations, "residual", ev.Residual)
	}
	log.Debug("evaluated", "fitness", f, "iterations", ev.Iterations)

	return &Result{
		Policy:     pi,
		States:     states,
		Index:      index,
		P:          P,
		R:          r,
		V:          ev.V,
		Fitness:    f,
		Method:     method,
		Converged:  ev.Converged,
		Iterations: ev.Iterations,
	}, nil
}
