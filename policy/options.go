package policy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lakepath/mdp"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("policy: invalid option supplied")

// DefaultTieBreak is the order used to rank equally distant actions.
var DefaultTieBreak = []mdp.Action{mdp.Right, mdp.Down, mdp.Left, mdp.Up}

// Option configures Build via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the construction parameters.
type Options struct {
	// TieBreak ranks actions with equal distance; earlier wins.
	TieBreak []mdp.Action

	// Rand is accepted for interface compatibility; construction is
	// deterministic and never draws from it.
	Rand *rand.Rand

	// Logger receives debug records about relaxation and extraction.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the default tie-break order and a discard logger.
func DefaultOptions() Options {
	tb := make([]mdp.Action, len(DefaultTieBreak))
	copy(tb, DefaultTieBreak)

	return Options{
		TieBreak: tb,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTieBreak sets the tie-break order. The order must be non-empty, list
// only directional moves, and contain no duplicates.
func WithTieBreak(order ...mdp.Action) Option {
	return func(o *Options) {
		if len(order) == 0 {
			o.err = fmt.Errorf("%w: empty tie-break order", ErrOptionViolation)
			return
		}
		seen := make(map[mdp.Action]bool, len(order))
		for _, a := range order {
			if a < mdp.Up || a > mdp.Left {
				o.err = fmt.Errorf("%w: tie-break action %v", ErrOptionViolation, a)
				return
			}
			if seen[a] {
				o.err = fmt.Errorf("%w: duplicate tie-break action %v", ErrOptionViolation, a)
				return
			}
			seen[a] = true
		}
		o.TieBreak = append([]mdp.Action(nil), order...)
	}
}

// WithRand stores an entropy source. It is never used.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithLogger sets the logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
