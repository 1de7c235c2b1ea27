package lake

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lakepath/mdp"
)

// Lake is an immutable FrozenLake board implementing mdp.MDP and mdp.Rewarder.
type Lake struct {
	width, height int
	cells         [][]mdp.Kind
	start         mdp.State
	opts          Options
}

var (
	_ mdp.MDP      = (*Lake)(nil)
	_ mdp.Rewarder = (*Lake)(nil)
)

// Parse builds a Lake from board rows. The rows are copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrNoStart,
// ErrMultipleStarts or ErrOptionViolation.
// Complexity: O(W×H).
func Parse(rows []string, opts ...Option) (*Lake, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]mdp.Kind, h)
	starts := 0
	var start mdp.State
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]mdp.Kind, w)
		for x := 0; x < w; x++ {
			var k mdp.Kind
			switch row[x] {
			case cellStart:
				k = mdp.Start
				starts++
				start = mdp.State{Row: y, Col: x, Kind: k}
			case cellFrozen, cellDot:
				k = mdp.Ordinary
			case cellHole:
				k = mdp.Hole
			case cellGoal:
				k = mdp.Goal
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, row[x], y, x)
			}
			cells[y][x] = k
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	}

	return &Lake{width: w, height: h, cells: cells, start: start, opts: o}, nil
}

// Rows returns the board height.
func (l *Lake) Rows() int { return l.height }

// Cols returns the board width.
func (l *Lake) Cols() int { return l.width }

// Slip returns the configured slip probability.
func (l *Lake) Slip() float64 { return l.opts.Slip }

// InBounds reports whether (row, col) lies on the board.
func (l *Lake) InBounds(row, col int) bool {
	return row >= 0 && row < l.height && col >= 0 && col < l.width
}

// Cell returns the State at (row, col). ok is false off the board.
func (l *Lake) Cell(row, col int) (mdp.State, bool) {
	if !l.InBounds(row, col) {
		return mdp.State{}, false
	}

	return mdp.State{Row: row, Col: col, Kind: l.cells[row][col]}, true
}

// Grid returns the board rows, with F for frozen cells.
func (l *Lake) Grid() []string {
	out := make([]string, l.height)
	var b strings.Builder
	for y := 0; y < l.height; y++ {
		b.Reset()
		for x := 0; x < l.width; x++ {
			b.WriteString(l.cells[y][x].String())
		}
		out[y] = b.String()
	}

	return out
}

// onBoard reports whether s is one of this board's cells (kind included).
func (l *Lake) onBoard(s mdp.State) bool {
	return l.InBounds(s.Row, s.Col) && l.cells[s.Row][s.Col] == s.Kind
}

// Start returns the S cell.
func (l *Lake) Start() mdp.State { return l.start }

// IsTerminal reports whether s is a hole, a goal or the sink.
func (l *Lake) IsTerminal(s mdp.State) bool {
	switch s.Kind {
	case mdp.Hole, mdp.Goal, mdp.Absorbing:
		return true
	default:
		return false
	}
}

// Actions returns [Absorb] for terminals, the four moves for other board
// cells, and nil for states that do not belong to this board.
func (l *Lake) Actions(s mdp.State) []mdp.Action {
	if s == mdp.Sink {
		return []mdp.Action{mdp.Absorb}
	}
	if !l.onBoard(s) {
		return nil
	}
	if l.IsTerminal(s) {
		return []mdp.Action{mdp.Absorb}
	}
	moves := make([]mdp.Action, len(mdp.Moves))
	copy(moves, mdp.Moves)

	return moves
}

// Transition lists the outcomes of a in s. Terminals (and the sink) drain
// into mdp.Sink under Absorb; any other combination that is not a legal
// action yields nil.
func (l *Lake) Transition(s mdp.State, a mdp.Action) []mdp.Transition {
	if l.IsTerminal(s) {
		if a != mdp.Absorb || (s != mdp.Sink && !l.onBoard(s)) {
			return nil
		}
		return []mdp.Transition{{Next: mdp.Sink, Prob: 1}}
	}
	if !l.onBoard(s) || a < mdp.Up || a > mdp.Left {
		return nil
	}
	if l.opts.Slip == 0 {
		return []mdp.Transition{{Next: l.move(s, a), Prob: 1}}
	}

	p := l.opts.Slip
	cw := (a + 1) % 4
	ccw := (a + 3) % 4
	out := make([]mdp.Transition, 0, 3)
	out = addOutcome(out, l.move(s, a), 1-p)
	out = addOutcome(out, l.move(s, cw), p/2)
	out = addOutcome(out, l.move(s, ccw), p/2)

	return out
}

// addOutcome merges prob into an existing outcome for next or appends a new one.
// Zero-probability outcomes are dropped.
func addOutcome(out []mdp.Transition, next mdp.State, prob float64) []mdp.Transition {
	if prob <= 0 {
		return out
	}
	for i := range out {
		if out[i].Next == next {
			out[i].Prob += prob
			return out
		}
	}

	return append(out, mdp.Transition{Next: next, Prob: prob})
}

// move applies a's offset to s, staying in place at the board edge.
func (l *Lake) move(s mdp.State, a mdp.Action) mdp.State {
	dr, dc := a.Delta()
	row, col := s.Row+dr, s.Col+dc
	if !l.InBounds(row, col) {
		return s
	}
	next, _ := l.Cell(row, col)

	return next
}

// Reward returns the reward for entering s.
func (l *Lake) Reward(s mdp.State) float64 {
	switch s.Kind {
	case mdp.Goal:
		return l.opts.GoalReward
	case mdp.Hole:
		return l.opts.HoleReward
	case mdp.Absorbing:
		return 0
	default:
		return l.opts.StepReward
	}
}
