package re1

import (
	"fmt"
	"strings"
)

// Debug gates the debug printing helper below. No code path in this
// package calls that helper, so setting Debug prints nothing by itself.
var Debug = false

func debug(f string, args ...interface{}) {
	if Debug {
		fmt.Printf(f, args...)
	}
}

// DebugString renders re's compiled chain disjunction for diagnostics:
// the source pattern followed by one line per surviving chain, each
// slot rendered as its member letters (or "_" if a chain's slot has
// somehow gone empty without being pruned).
func (re *Regexp) DebugString() string {
	var s strings.Builder
	s.WriteString(re.Source)
	fmt.Fprintf(&s, " (%d chains)\n", len(re.chains))
	for i, c := range re.chains {
		if i > 0 {
			s.WriteRune('\n')
		}
		fmt.Fprintf(&s, "%4d:\t", i)
		for j, slot := range c {
			if j > 0 {
				s.WriteRune(' ')
			}
			s.WriteString(slot.String())
		}
	}
	return s.String()
}
