package policy

import (
	"github.com/katalvlaran/lakepath/bfs"
	"github.com/katalvlaran/lakepath/mdp"
)

// MostLikelySuccessor returns the outcome of a in s with the highest
// probability. The first listed outcome wins ties; an empty outcome list
// yields s itself.
func MostLikelySuccessor(m mdp.MDP, s mdp.State, a mdp.Action) mdp.State {
	best := s
	bestP := -1.0
	for _, tr := range m.Transition(s, a) {
		if tr.Prob > bestP {
			best, bestP = tr.Next, tr.Prob
		}
	}

	return best
}

// BuildGraph adds one edge per (state, move) pair, in mdp.Moves order, from
// each enumerated state to the index of its most-likely successor.
// Successors outside index get no edge.
func BuildGraph(m mdp.MDP, states []mdp.State, index map[mdp.State]int) (*bfs.Graph, error) {
	g, err := bfs.NewGraph(len(states))
	if err != nil {
		return nil, err
	}
	for i, s := range states {
		for _, a := range mdp.Moves {
			j, ok := index[MostLikelySuccessor(m, s, a)]
			if !ok {
				continue
			}
			if err = g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
