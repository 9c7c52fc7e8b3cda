// Package crossword drives the fixed-point propagation loop that
// solves a regex crossword: alternating a push of each line's current
// board values into its compiled pattern, and a pull of each pattern's
// remaining possibilities back onto the board, until a full round
// changes nothing.
package crossword

import (
	"context"
	"fmt"

	"github.com/brownan/regescrossword/hexgrid"
	"github.com/brownan/regescrossword/letterset"
	"github.com/brownan/regescrossword/re1"
)

// Binding pairs a compiled pattern with the line of cells it governs.
// Pattern is kept alongside NFSM purely for diagnostics: progress
// printing and error messages want the original source text, not a
// re-derivation of it.
type Binding struct {
	Pattern string
	NFSM    *re1.Regexp
	Cells   []*hexgrid.Cell
}

// Bind compiles pattern against alphabet for a line of exactly
// len(cells) cells, and returns the Binding tying them together.
func Bind(pattern string, cells []*hexgrid.Cell, alphabet letterset.Set) (Binding, error) {
	re, err := re1.New(pattern, len(cells), alphabet)
	if err != nil {
		return Binding{}, fmt.Errorf("crossword: bind %q: %w", pattern, err)
	}
	return Binding{Pattern: pattern, NFSM: re, Cells: cells}, nil
}

// Driver holds every line binding for one puzzle and runs the
// propagation loop across all of them together.
type Driver struct {
	Bindings []Binding
}

// NewDriver builds a Driver from any number of line families (one per
// traversal direction, typically), compiling every pattern against
// alphabet. It returns the first bind error encountered, wrapped with
// which pattern caused it.
func NewDriver(alphabet letterset.Set, families ...[]LineSpec) (*Driver, error) {
	d := &Driver{}
	for _, family := range families {
		for _, spec := range family {
			b, err := Bind(spec.Pattern, spec.Cells, alphabet)
			if err != nil {
				return nil, err
			}
			d.Bindings = append(d.Bindings, b)
		}
	}
	return d, nil
}

// LineSpec is one pattern and the cells it constrains, used to build a
// Driver from several traversal families at once via NewDriver.
type LineSpec struct {
	Pattern string
	Cells   []*hexgrid.Cell
}

// NewLineSpec constructs a LineSpec for NewDriver.
func NewLineSpec(pattern string, cells []*hexgrid.Cell) LineSpec {
	return LineSpec{Pattern: pattern, Cells: cells}
}

// Step performs one round of propagation: first every binding's
// pattern is constrained by its cells' current values (board → regex),
// then every cell is constrained by its pattern's remaining
// possibilities (regex → board). It reports whether any cell's value
// changed during the pull half of the round.
func (d *Driver) Step() bool {
	for _, b := range d.Bindings {
		for i, c := range b.Cells {
			b.NFSM.ConstrainSlot(i, c.Value)
		}
	}

	changed := false
	for _, b := range d.Bindings {
		for i, c := range b.Cells {
			if c.Constrain(b.NFSM.PeekSlot(i)) {
				changed = true
			}
		}
	}
	return changed
}

// Run steps the driver to a fixed point, calling onRound (if non-nil)
// after each round with the 1-based round number. It stops early,
// returning ctx.Err(), if ctx is cancelled between rounds; a round
// itself is never interrupted mid-flight.
func (d *Driver) Run(ctx context.Context, onRound func(round int, d *Driver)) error {
	for round := 1; ; round++ {
		changed := d.Step()
		if onRound != nil {
			onRound(round, d)
		}
		if !changed {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// Line renders one binding's current board values as a string, one
// character per cell: the cell's single remaining letter, or "_" if
// more than one letter (or none) remains.
func Line(b Binding) string {
	buf := make([]byte, len(b.Cells))
	for i, c := range b.Cells {
		if r, ok := c.Value.Singleton(); ok {
			buf[i] = byte(r)
		} else {
			buf[i] = '_'
		}
	}
	return string(buf)
}
