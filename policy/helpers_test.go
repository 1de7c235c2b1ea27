package policy_test

import "github.com/katalvlaran/lakepath/mdp"

// tableMDP is a hand-wired model for shapes a board cannot express.
type tableMDP struct {
	start    mdp.State
	terminal map[mdp.State]bool
	actions  map[mdp.State][]mdp.Action
	trans    map[mdp.State]map[mdp.Action][]mdp.Transition
}

func newTable(start mdp.State) *tableMDP {
	return &tableMDP{
		start:    start,
		terminal: map[mdp.State]bool{},
		actions:  map[mdp.State][]mdp.Action{},
		trans:    map[mdp.State]map[mdp.Action][]mdp.Transition{},
	}
}

// det wires a deterministic move from s to next under a and registers a as legal.
func (t *tableMDP) det(s mdp.State, a mdp.Action, next mdp.State) *tableMDP {
	return t.add(s, a, mdp.Transition{Next: next, Prob: 1})
}

func (t *tableMDP) add(s mdp.State, a mdp.Action, outs ...mdp.Transition) *tableMDP {
	if t.trans[s] == nil {
		t.trans[s] = map[mdp.Action][]mdp.Transition{}
	}
	t.trans[s][a] = append(t.trans[s][a], outs...)
	t.actions[s] = append(t.actions[s], a)

	return t
}

// absorbing marks s terminal, draining into the sink.
func (t *tableMDP) absorbing(s mdp.State) *tableMDP {
	t.terminal[s] = true
	return t.det(s, mdp.Absorb, mdp.Sink)
}

func (t *tableMDP) Transition(s mdp.State, a mdp.Action) []mdp.Transition { return t.trans[s][a] }
func (t *tableMDP) IsTerminal(s mdp.State) bool { return t.terminal[s] }
func (t *tableMDP) Actions(s mdp.State) []mdp.Action { return t.actions[s] }
func (t *tableMDP) Start() mdp.State { return t.start }

func cell(row, col int, k mdp.Kind) mdp.State { return mdp.State{Row: row, Col: col, Kind: k} }
