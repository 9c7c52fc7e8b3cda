// Package puzzle holds the definition of one specific regex crossword:
// a side-7 hex grid's 39 line constraints, grouped into the three
// traversal families hexgrid exposes. It has no knowledge of re1 or
// hexgrid's types beyond the strings and the side length; the engine
// packages never import this one, keeping the puzzle definition a
// pluggable leaf rather than something the solver is wired to.
package puzzle

// Side is the hexagon side length this puzzle was written for. Its 39
// patterns assume exactly this many cells per edge; bind them to a grid
// built with any other side length and most will simply never find a
// satisfying letter (see crossword.Bind).
const Side = 7

// Alphabet is the set of letters every cell and every pattern here
// draws from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// L2R holds the 13 patterns bound to the left-to-right traversal
// family, in row order (row 0 is the bottom row, as hexgrid's
// LeftEdges lists rows bottom-up).
var L2R = [2*Side - 1]string{
	".(C|HH)*",
	"R*D*M*",
	"N.*X.X.X.*E",
	"(RR|HHH)*.?",
	"([^X]|XCC)*",
	"(...?)\\1*",
	"[^C]*[^R]*III.*",
	"C*MC(CCC|MM)*",
	".*",
	"(O|RHH|MM)*",
	"F.*[AO].*[AO].*",
	"(DI|NS|TH|OM)*",
	".*H.*H.*",
}

// UR2LL holds the 13 patterns bound to the upper-right-to-lower-left
// traversal family, in diagonal order.
var UR2LL = [2*Side - 1]string{
	"(ND|ET|IN)[^X]*",
	"[CHMNOR]*I[CHMNOR]*",
	"P+(..)\\1.*",
	"(E|CR|MN)*",
	"([^MC]|MM|CC)*",
	"[AM]*CM(RC)*R?",
	".*",
	".*PRR.*DDC.*",
	"(HHX|[^HX])*",
	"([^EMC]|EM)*",
	".*OXR.*",
	".*LR.*RL.*",
	".*SE.*UE.*",
}

// LR2UL holds the 13 patterns bound to the lower-right-to-upper-left
// traversal family, in diagonal order.
var LR2UL = [2*Side - 1]string{
	"(S|MM|HHH)*",
	"[^M]*M[^M]*",
	"(RX|[^R])*",
	"[CEIMU]*OH[AEMOR]*",
	".*(.)C\\1X\\1.*",
	"[^C]*MMM[^C]*",
	".*(IN|SE|HI)",
	".*(.)(.)(.)(.)\\4\\3\\2\\1.*",
	".*XHCR.*X.*",
	".*DD.*CCM.*",
	".*XEXM*",
	"[CR]*",
	".*G.*V.*H.*",
}

// Blank returns a puzzle of the given side length where every line is
// constrained only by ".*", the loosest possible pattern: useful for
// exercising the engine at sizes the 39 literal patterns above don't
// support.
func Blank(side int) (l2r, ur2ll, lr2ul []string) {
	n := 2*side - 1
	l2r = make([]string, n)
	ur2ll = make([]string, n)
	lr2ul = make([]string, n)
	for i := range l2r {
		l2r[i] = ".*"
		ur2ll[i] = ".*"
		lr2ul[i] = ".*"
	}
	return l2r, ur2ll, lr2ul
}
