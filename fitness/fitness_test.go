package fitness_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lakepath/bellman"
	"github.com/katalvlaran/lakepath/fitness"
	"github.com/katalvlaran/lakepath/lake"
	"github.com/katalvlaran/lakepath/matrix"
	"github.com/katalvlaran/lakepath/mdp"
	"github.com/katalvlaran/lakepath/policy"
)

func mustLake(t *testing.T, rows []string, opts ...lake.Option) *lake.Lake {
	t.Helper()
	l, err := lake.Parse(rows, opts...)
	require.NoError(t, err)
	return l
}

func TestRun_Corridor(t *testing.T) {
	l := mustLake(t, []string{"SFG"})

	exact, err := fitness.Run(l, 0.9)
	require.NoError(t, err)
	assert.Equal(t, bellman.MethodExact, exact.Method)
	assert.InDelta(t, 0.9, exact.Fitness, 1e-12)
	assert.True(t, exact.Converged)
	assert.Len(t, exact.V, len(exact.States))
	assert.Equal(t, mdp.Right, exact.Policy.Decide(l.Start()))

	iter, err := fitness.Run(l, 0.9, fitness.WithMethod(bellman.MethodIterative))
	require.NoError(t, err)
	assert.InDelta(t, exact.Fitness, iter.Fitness, 1e-6)
	assert.Positive(t, iter.Iterations)
}

func TestRun_SlipperyBoardAgreement(t *testing.T) {
	l := mustLake(t, lake.Map4x4, lake.WithSlip(1.0/3))
	exact, err := fitness.Run(l, 0.95, fitness.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	iter, err := fitness.Run(l, 0.95, fitness.WithMethod(bellman.MethodIterative), fitness.WithEpsilon(1e-9))
	require.NoError(t, err)

	assert.InDelta(t, exact.Fitness, iter.Fitness, 1e-8)
	assert.Greater(t, exact.Fitness, 0.0)
	assert.Less(t, exact.Fitness, 1.0)
	require.NoError(t, matrix.ValidateRowStochastic(exact.P, 1e-9))
}

func TestRun_UnknownMethodCheckedFirst(t *testing.T) {
	// nil model and bad gamma must not mask the method error.
	_, err := fitness.Run(nil, 7, fitness.WithMethod("bogus"))
	assert.ErrorIs(t, err, bellman.ErrUnknownMethod)
	assert.Contains(t, err.Error(), "bogus")
}

func TestRun_Errors(t *testing.T) {
	l := mustLake(t, []string{"SG"})
	for _, g := range []float64{0, -0.5, 1.01, math.NaN()} {
		_, err := fitness.Run(l, g)
		assert.ErrorIs(t, err, fitness.ErrGamma, "gamma %g", g)
	}

	_, err := fitness.Run(nil, 0.9)
	assert.ErrorIs(t, err, mdp.ErrMDPNil)

	_, err = fitness.Run(l, 0.9, fitness.WithTieBreak(mdp.Absorb))
	assert.ErrorIs(t, err, policy.ErrOptionViolation)

	_, err = fitness.Run(l, 0.9, fitness.WithMethod(bellman.MethodIterative), fitness.WithMaxIters(-1))
	assert.ErrorIs(t, err, bellman.ErrOptionViolation)

	_, err = fitness.Run(l, 1)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRun_WarnsOnCap(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := fitness.Run(mustLake(t, lake.Map8x8), 0.9,
		fitness.WithMethod(bellman.MethodIterative),
		fitness.WithMaxIters(3),
		fitness.WithLogger(logger),
	)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "iteration cap")
	assert.Contains(t, buf.String(), "relaxed distances")
}

func TestRun_TieBreakForwarded(t *testing.T) {
	l := mustLake(t, []string{"SF", "FG"})
	res, err := fitness.Run(l, 0.9, fitness.WithTieBreak(mdp.Down, mdp.Right, mdp.Left, mdp.Up))
	require.NoError(t, err)
	assert.Equal(t, mdp.Down, res.Policy.Decide(l.Start()))
	assert.InDelta(t, 0.9, res.Fitness, 1e-12)
}
