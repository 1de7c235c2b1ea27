package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/lakepath/lake"
	"github.com/katalvlaran/lakepath/mdp"
)

// arrows maps directional actions to glyphs.
var arrows = map[mdp.Action]string{
	mdp.Up:    "↑",
	mdp.Right: "→",
	mdp.Down:  "↓",
	mdp.Left:  "←",
}

const absorbGlyph = "·"

// Arrow returns the glyph for a, or · for Absorb and unknown actions.
func Arrow(a mdp.Action) string {
	if g, ok := arrows[a]; ok {
		return g
	}

	return absorbGlyph
}

// Printer writes boards with or without ANSI colors.
type Printer struct {
	au aurora.Aurora
}

// NewPrinter returns a Printer; colors=false emits plain text.
func NewPrinter(colors bool) *Printer {
	return &Printer{au: aurora.NewAurora(colors)}
}

// Board writes the policy grid and, when v is non-nil, a value grid below it
// using the colored default Printer.
func Board(w io.Writer, l *lake.Lake, pi mdp.Policy, v []float64, index map[mdp.State]int) error {
	return NewPrinter(true).Board(w, l, pi, v, index)
}

// Board writes the policy grid and, when v is non-nil, a value grid. Values of
// states missing from index print as a dash.
func (p *Printer) Board(w io.Writer, l *lake.Lake, pi mdp.Policy, v []float64, index map[mdp.State]int) error {
	if l == nil {
		return fmt.Errorf("render: %w", mdp.ErrMDPNil)
	}
	if pi == nil {
		return fmt.Errorf("render: %w", mdp.ErrPolicyNil)
	}

	var b strings.Builder
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			s, _ := l.Cell(row, col)
			b.WriteString(p.glyph(s, pi))
		}
		b.WriteByte('\n')
	}

	if v != nil {
		b.WriteByte('\n')
		for row := 0; row < l.Rows(); row++ {
			for col := 0; col < l.Cols(); col++ {
				if col > 0 {
					b.WriteByte(' ')
				}
				s, _ := l.Cell(row, col)
				b.WriteString(p.value(s, v, index))
			}
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (p *Printer) glyph(s mdp.State, pi mdp.Policy) string {
	switch s.Kind {
	case mdp.Start:
		return p.au.Yellow("S").String()
	case mdp.Hole:
		return p.au.Blue("H").String()
	case mdp.Goal:
		return p.au.Green("G").String()
	default:
		return Arrow(pi.Decide(s))
	}
}

func (p *Printer) value(s mdp.State, v []float64, index map[mdp.State]int) string {
	i, ok := index[s]
	if !ok || i >= len(v) {
		return p.au.Faint(fmt.Sprintf("%6s", "-")).String()
	}

	return fmt.Sprintf("%6.3f", v[i])
}

// PolicyText returns the uncolored policy grid, one line per row joined by
// "/", as stored in run records.
func PolicyText(l *lake.Lake, pi mdp.Policy) string {
	rows := make([]string, l.Rows())
	p := NewPrinter(false)
	var b strings.Builder
	for row := 0; row < l.Rows(); row++ {
		b.Reset()
		for col := 0; col < l.Cols(); col++ {
			s, _ := l.Cell(row, col)
			b.WriteString(p.glyph(s, pi))
		}
		rows[row] = b.String()
	}

	return strings.Join(rows, "/")
}
