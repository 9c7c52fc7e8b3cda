// Package hexgrid builds the 127-cell hexagonal lattice a regex
// crossword is solved on, and exposes the three families of straight
// line traversals the puzzle's regexes bind to.
//
// The construction follows the original left-to-right expand/contract
// procedure: start with a row of sidelen cells, grow one row at a time
// until the middle row, then shrink one row at a time down to the
// bottom. Each new cell is linked to its neighbors in the previous row
// as it is created, so by the time construction finishes every
// six-link neighborhood is fully and reciprocally wired.
package hexgrid

import "github.com/brownan/regescrossword/letterset"

// Cell is a single hexagon in the grid. It holds a candidate letter
// set and up to six neighbor links. A nil link means the cell is on
// that edge of the board.
//
// Cell identity matters: the same *Cell appears in exactly three
// lines, one per traversal family, and Constrain is the only way its
// Value may change.
type Cell struct {
	Value letterset.Set

	Left, Right *Cell
	UL, LR      *Cell
	UR, LL      *Cell
}

// Constrain intersects c's value with s in place and reports whether
// the value changed. It never enlarges c's value.
func (c *Cell) Constrain(s letterset.Set) bool {
	next := c.Value.Intersect(s)
	if next.Equal(c.Value) {
		return false
	}
	c.Value = next
	return true
}

// Grid is a hexagon of side length Side, wired into three axial
// neighbor families and indexed by three edge lists.
type Grid struct {
	Side int

	// LeftEdges, UREdges, and LREdges each hold 2*Side-1 cells, one per
	// line in their traversal family, in the order the puzzle's 39
	// regexes are assigned to them (spec.md §6): LeftEdges[i] walked via
	// Right gives row i, UREdges[i] walked via LL gives diagonal i, and
	// LREdges[i] walked via UL gives the third family.
	LeftEdges, UREdges, LREdges []*Cell
}

// NewGrid builds a Grid of the given side length, with every cell's
// initial value set to alphabet.
func NewGrid(side int, alphabet letterset.Set) *Grid {
	g := &Grid{Side: side}

	row := make([]*Cell, side)
	for i := range row {
		row[i] = &Cell{Value: alphabet}
		if i > 0 {
			row[i-1].Right = row[i]
			row[i].Left = row[i-1]
		}
	}
	g.UREdges = append(g.UREdges, row...)
	g.LeftEdges = append(g.LeftEdges, row[0])

	for i := 0; i < side-1; i++ {
		row = g.expand(row, alphabet)
	}

	g.LREdges = append(g.LREdges, row[len(row)-1])

	for i := 0; i < side-1; i++ {
		row = g.contract(row, alphabet)
	}
	for i := len(row) - 2; i >= 0; i-- {
		g.LREdges = append(g.LREdges, row[i])
	}

	for i, j := 0, len(g.LeftEdges)-1; i < j; i, j = i+1, j-1 {
		g.LeftEdges[i], g.LeftEdges[j] = g.LeftEdges[j], g.LeftEdges[i]
	}

	return g
}

// expand builds a row one cell longer than prev, linking every new
// cell to its upper neighbors in prev as it is created.
func (g *Grid) expand(prev []*Cell, alphabet letterset.Set) []*Cell {
	row := make([]*Cell, 0, len(prev)+1)

	first := &Cell{Value: alphabet}
	prev[0].LL = first
	first.UR = prev[0]
	row = append(row, first)

	for i := 0; i < len(prev)-1; i++ {
		ul, ur := prev[i], prev[i+1]
		c := &Cell{Value: alphabet, UL: ul, UR: ur}
		ul.LR = c
		ur.LL = c
		row = append(row, c)
	}

	last := &Cell{Value: alphabet}
	prev[len(prev)-1].LR = last
	last.UL = prev[len(prev)-1]
	row = append(row, last)

	for i := 0; i < len(row)-1; i++ {
		row[i].Right = row[i+1]
		row[i+1].Left = row[i]
	}

	g.LeftEdges = append(g.LeftEdges, row[0])
	g.UREdges = append(g.UREdges, row[len(row)-1])
	return row
}

// contract builds a row one cell shorter than prev, built only from
// the interior adjacent pairs of prev (no new end cells).
func (g *Grid) contract(prev []*Cell, alphabet letterset.Set) []*Cell {
	row := make([]*Cell, 0, len(prev)-1)

	for i := 0; i < len(prev)-1; i++ {
		ul, ur := prev[i], prev[i+1]
		c := &Cell{Value: alphabet, UL: ul, UR: ur}
		ul.LR = c
		ur.LL = c
		row = append(row, c)
	}

	for i := 0; i < len(row)-1; i++ {
		row[i].Right = row[i+1]
		row[i+1].Left = row[i]
	}

	g.LeftEdges = append(g.LeftEdges, row[0])
	g.LREdges = append(g.LREdges, row[len(row)-1])
	return row
}

// TraverseL2R returns the cells of line i in the left-to-right family,
// starting at LeftEdges[i] and following Right links.
func (g *Grid) TraverseL2R(i int) []*Cell { return walk(g.LeftEdges[i], func(c *Cell) *Cell { return c.Right }) }

// TraverseUR2LL returns the cells of line i in the upper-right to
// lower-left family, starting at UREdges[i] and following LL links.
func (g *Grid) TraverseUR2LL(i int) []*Cell { return walk(g.UREdges[i], func(c *Cell) *Cell { return c.LL }) }

// TraverseLR2UL returns the cells of line i in the lower-right to
// upper-left family, starting at LREdges[i] and following UL links.
func (g *Grid) TraverseLR2UL(i int) []*Cell { return walk(g.LREdges[i], func(c *Cell) *Cell { return c.UL }) }

func walk(start *Cell, next func(*Cell) *Cell) []*Cell {
	var cells []*Cell
	for c := start; c != nil; c = next(c) {
		cells = append(cells, c)
	}
	return cells
}

// AllCells returns every cell in the grid, reached via the left-to-right
// traversal family. Its length is always 3*Side*Side - 3*Side + 1.
func (g *Grid) AllCells() []*Cell {
	var cells []*Cell
	for i := range g.LeftEdges {
		cells = append(cells, g.TraverseL2R(i)...)
	}
	return cells
}
