package policy

import (
	"fmt"

	"github.com/katalvlaran/lakepath/bfs"
	"github.com/katalvlaran/lakepath/mdp"
)

// ShortestPath is an immutable deterministic policy mapping each
// non-terminal state with legal actions to the action that leads fastest
// towards a goal under most-likely dynamics.
type ShortestPath struct {
	model   mdp.MDP
	states  []mdp.State
	index   map[mdp.State]int
	dist    []int
	actions map[mdp.State]mdp.Action
}

var _ mdp.Policy = (*ShortestPath)(nil)

// Build constructs the policy for m.
func Build(m mdp.MDP, opts ...Option) (*ShortestPath, error) {
	if m == nil {
		return nil, fmt.Errorf("policy: %w", mdp.ErrMDPNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	states, err := mdp.Enumerate(m)
	if err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}
	index := mdp.Index(states)

	g, err := BuildGraph(m, states, index)
	if err != nil {
		return nil, fmt.Errorf("policy: graph: %w", err)
	}
	var sources []int
	for i, s := range states {
		if s.Kind == mdp.Goal || s.Kind == mdp.Absorbing {
			sources = append(sources, i)
		}
		if m.IsTerminal(s) {
			if err = g.Freeze(i); err != nil {
				return nil, fmt.Errorf("policy: graph: %w", err)
			}
		}
	}

	res, err := bfs.Relax(g, sources)
	if err != nil {
		return nil, fmt.Errorf("policy: relax: %w", err)
	}
	o.Logger.Debug("relaxed distances",
		"states", len(states), "edges", g.Size(), "sources", len(sources), "reached", countReached(res))

	sp := &ShortestPath{
		model:   m,
		states:  states,
		index:   index,
		dist:    res.Depth,
		actions: make(map[mdp.State]mdp.Action, len(states)),
	}
	rank := rankOf(o.TieBreak)
	for _, s := range states {
		if m.IsTerminal(s) {
			continue
		}
		if a, ok := sp.best(s, rank); ok {
			sp.actions[s] = a
		}
	}
	o.Logger.Debug("policy extracted", "entries", len(sp.actions))

	return sp, nil
}

// best picks the legal action at s with the smallest effective distance,
// ties and the all-unreachable case going to the lowest rank.
func (sp *ShortestPath) best(s mdp.State, rank func(mdp.Action) int) (mdp.Action, bool) {
	legal := sp.model.Actions(s)
	if len(legal) == 0 {
		return mdp.Absorb, false
	}
	bestA, bestD := legal[0], sp.effective(s, legal[0])
	for _, a := range legal[1:] {
		d := sp.effective(s, a)
		if d < bestD || (d == bestD && rank(a) < rank(bestA)) {
			bestA, bestD = a, d
		}
	}

	return bestA, true
}

// effective is the distance of a's most-likely successor; holes and states
// outside the enumeration are unreachable.
func (sp *ShortestPath) effective(s mdp.State, a mdp.Action) int {
	next := MostLikelySuccessor(sp.model, s, a)
	if next.Kind == mdp.Hole {
		return bfs.Inf
	}
	i, ok := sp.index[next]
	if !ok {
		return bfs.Inf
	}

	return sp.dist[i]
}

// rankOf returns the tie-break rank: position in order, and for unlisted
// actions len(order) plus the numeric value.
func rankOf(order []mdp.Action) func(mdp.Action) int {
	pos := make(map[mdp.Action]int, len(order))
	for i, a := range order {
		pos[a] = i
	}

	return func(a mdp.Action) int {
		if p, ok := pos[a]; ok {
			return p
		}
		return len(order) + int(a)
	}
}

func countReached(res *bfs.Result) int {
	n := 0
	for _, d := range res.Depth {
		if d != bfs.Inf {
			n++
		}
	}

	return n
}

// Decide returns the mapped action for s, or mdp.Absorb when s has none.
func (sp *ShortestPath) Decide(s mdp.State) mdp.Action {
	if a, ok := sp.actions[s]; ok {
		return a
	}

	return mdp.Absorb
}

// MDP returns the model the policy was built for.
func (sp *ShortestPath) MDP() mdp.MDP { return sp.model }

// Distance returns the relaxed hop count of s; ok is false when s was not
// enumerated. Unreached states report bfs.Inf.
func (sp *ShortestPath) Distance(s mdp.State) (int, bool) {
	i, ok := sp.index[s]
	if !ok {
		return bfs.Inf, false
	}

	return sp.dist[i], true
}

// Len returns the number of mapped states.
func (sp *ShortestPath) Len() int { return len(sp.actions) }

// States returns a copy of the enumeration the policy was built over.
func (sp *ShortestPath) States() []mdp.State {
	return append([]mdp.State(nil), sp.states...)
}
