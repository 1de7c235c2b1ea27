package mdp

import (
	"fmt"

	"github.com/katalvlaran/lakepath/matrix"
)

// BuildPolicyPr assembles the transition matrix P and the reward vector r
// induced by pi over states, with index as the row/column map.
//
//   - P[i][j] = Σ Prob over outcomes of pi.Decide(states[i]) landing on states[j].
//   - r[i]    = Σ Prob · Reward(Next) (reward on entry, expected over outcomes).
//
// An action with no outcomes contributes a self-loop with zero reward, so P
// stays row-stochastic. m must implement Rewarder.
//
// Errors: ErrMDPNil, ErrPolicyNil, ErrNoRewards, ErrEmptyEnumeration,
// ErrUnknownState (an outcome outside the enumeration), or matrix errors.
// Complexity: O(V² + V·K).
func BuildPolicyPr(m MDP, pi Policy, states []State, index map[State]int) (*matrix.Dense, []float64, error) {
	if m == nil {
		return nil, nil, ErrMDPNil
	}
	if pi == nil {
		return nil, nil, ErrPolicyNil
	}
	rw, ok := m.(Rewarder)
	if !ok {
		return nil, nil, ErrNoRewards
	}
	n := len(states)
	if n == 0 {
		return nil, nil, ErrEmptyEnumeration
	}

	P, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("mdp: assemble: %w", err)
	}
	r := make([]float64, n)
	row := make([]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		for j = range row {
			row[j] = 0
		}
		s := states[i]
		outcomes := m.Transition(s, pi.Decide(s))
		if len(outcomes) == 0 {
			row[i] = 1
		}
		for _, tr := range outcomes {
			j, ok = index[tr.Next]
			if !ok {
				return nil, nil, fmt.Errorf("mdp: assemble: %v -> %v: %w", s, tr.Next, ErrUnknownState)
			}
			row[j] += tr.Prob
			r[i] += tr.Prob * rw.Reward(tr.Next)
		}
		for j = 0; j < n; j++ {
			if row[j] == 0 {
				continue
			}
			if err = P.Set(i, j, row[j]); err != nil {
				return nil, nil, fmt.Errorf("mdp: assemble: %w", err)
			}
		}
	}

	return P, r, nil
}
