package mdp

import "errors"

// Sentinel errors for enumeration and assembly.
var (
	// ErrMDPNil is returned when a nil MDP is passed.
	ErrMDPNil = errors.New("mdp: model is nil")

	// ErrPolicyNil is returned when a nil Policy is passed to BuildPolicyPr.
	ErrPolicyNil = errors.New("mdp: policy is nil")

	// ErrUnknownState is returned when a transition leads outside the
	// enumerated state set.
	ErrUnknownState = errors.New("mdp: state not in enumeration")

	// ErrNoRewards is returned when the model does not implement Rewarder.
	ErrNoRewards = errors.New("mdp: model does not expose rewards")

	// ErrEmptyEnumeration is returned when there are no states to index.
	ErrEmptyEnumeration = errors.New("mdp: no states enumerated")
)

// Kind tags a State with its role on the board.
type Kind int

const (
	// Ordinary is a free, non-terminal cell.
	Ordinary Kind = iota
	// Start is the designated start cell (non-terminal).
	Start
	// Hole is an undesirable terminal cell.
	Hole
	// Goal is a desirable terminal cell.
	Goal
	// Absorbing is the sink every terminal drains into.
	Absorbing
)

// String returns the board letter for k.
func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "F"
	case Start:
		return "S"
	case Hole:
		return "H"
	case Goal:
		return "G"
	case Absorbing:
		return "⊥"
	default:
		return "?"
	}
}

// State identifies a cell together with its Kind. Two States are equal iff
// all three fields are equal.
type State struct {
	Row, Col int
	Kind     Kind
}

// Sink is the absorbing state that terminals transition into.
var Sink = State{Row: -1, Col: -1, Kind: Absorbing}

// Action is one of the four directional moves or the Absorb no-op.
type Action int

const (
	// Up moves one row towards row 0.
	Up Action = iota
	// Right moves one column towards higher columns.
	Right
	// Down moves one row towards higher rows.
	Down
	// Left moves one column towards column 0.
	Left
	// Absorb is the no-op used at terminal states and for unmapped queries.
	Absorb
)

// Moves lists the directional actions in canonical order.
var Moves = []Action{Up, Right, Down, Left}

// String returns the upper-case action name.
func (a Action) String() string {
	switch a {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Absorb:
		return "ABSORB"
	default:
		return "UNKNOWN"
	}
}

// Delta returns the (row, col) offset of a directional move; Absorb and
// unknown actions return (0, 0).
func (a Action) Delta() (dr, dc int) {
	switch a {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Transition is one (successor, probability) outcome of taking an action.
type Transition struct {
	Next State
	Prob float64
}

// MDP is the read-only capability set the policy constructor and the
// assembler consume.
type MDP interface {
	// Transition lists the outcomes of a in s. Probabilities sum to 1; an
	// empty list means the action has no effect.
	Transition(s State, a Action) []Transition
	// IsTerminal reports whether s ends an episode.
	IsTerminal(s State) bool
	// Actions lists the legal actions at s; it may be empty.
	Actions(s State) []Action
	// Start returns the designated start state.
	Start() State
}

// Rewarder exposes the reward-on-entry function of a model.
type Rewarder interface {
	Reward(s State) float64
}

// Policy maps states to actions. Decide returns Absorb for states it has no
// entry for.
type Policy interface {
	Decide(s State) Action
	MDP() MDP
}
