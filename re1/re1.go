// Package re1 implements the non-deterministic finite-state machine at
// the heart of a hex-grid regex crossword: a bounded-length regex
// compiled not to a matching automaton but to an explicit disjunction
// of fixed-length chains, each chain a sequence of candidate letter
// sets ("slots"). Constraining one slot prunes every chain whose slot
// no longer has any candidates left.
//
// The language is a narrow sublanguage, inspired by the grammar this
// package's ancestor (also named re1) used for its own regexes, but
// restricted to what a regex crossword needs:
//
//	regexp    = alternate.
//	alternate = concat [ "|" alternate ].
//	concat    = repeat [ concat ].
//	repeat    = term [ "*" | "+" | "?" ].
//	term      = "." | "(" regexp ")" | charclass | "\" digit | literal.
//	charclass = "[" [ "^" ] { classlit } "]".
//
// The meta characters are:
//
//	|    alternation
//	*    zero or more repetitions, all tried
//	+    one or more repetitions, all tried
//	?    zero or one
//	.    any alphabet letter
//	()   one level of grouping (groups do not nest)
//	[]   character class (^ negates; no ranges)
//	\1-9 back-reference to an earlier group, by position in this chain
//
// There are no anchors, no escapes besides \1-\9, and no quantified or
// nested groups (parsing rejects the latter; a quantified group is
// accepted but loses its ability to be back-referenced, matching the
// source this package's semantics were distilled from).
package re1

import "github.com/brownan/regescrossword/letterset"

type chain = []*letterset.Set

// Regexp holds one compiled pattern's chain disjunction: the set of
// fixed-length ways the pattern can match a string of Length runes
// over Alphabet. It is not a DFA; its entire state is the list of
// surviving chains.
type Regexp struct {
	Source   string
	Length   int
	Alphabet letterset.Set

	chains []chain
}

// New compiles pattern into an NFSM matching strings of exactly length
// runes from alphabet. A pattern that cannot produce any chain of that
// length is not an error: New returns a Regexp with zero chains, which
// ConstrainSlot, PeekSlot, and Match all treat as "no string of this
// length can possibly satisfy this pattern."
//
// The only error New returns is a *ParseError: unbalanced parentheses,
// nested groups, an unrecognized escape, or a character outside the
// alphabet and outside the recognized metacharacters.
func New(pattern string, length int, alphabet letterset.Set) (*Regexp, error) {
	ctx := &parseCtx{pattern: pattern, alphabet: alphabet}
	root, rest, err := parseAlternate(pattern, 0, ctx)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, parseErr(pattern, rest, "unexpected trailing input")
	}

	pcs := genNode(root, length)
	chains := flattenDerefFilter(pcs, length)

	return &Regexp{
		Source:   pattern,
		Length:   length,
		Alphabet: alphabet,
		chains:   chains,
	}, nil
}

// NumChains reports how many chains currently survive. It is mainly
// useful for tests and diagnostics.
func (re *Regexp) NumChains() int { return len(re.chains) }

// ConstrainSlot intersects the set at position i of every surviving
// chain with s, mutating the shared slot object in place so that any
// other position in the same chain aliased to it (a back-reference)
// observes the update too. Any chain whose slot i becomes empty is
// dropped.
func (re *Regexp) ConstrainSlot(i int, s letterset.Set) {
	n := 0
	for _, c := range re.chains {
		*c[i] = c[i].Intersect(s)
		if !c[i].Empty() {
			re.chains[n] = c
			n++
		}
	}
	re.chains = re.chains[:n]
}

// PeekSlot returns the union, over every surviving chain, of the
// candidate set at position i. It is ∅ if no chains survive.
func (re *Regexp) PeekSlot(i int) letterset.Set {
	var u letterset.Set
	for _, c := range re.chains {
		u = u.Union(*c[i])
	}
	return u
}

// Match reports whether s, which must have exactly Length runes,
// satisfies the pattern under the constraints already applied. It
// never mutates re: internally it constrains a throwaway Copy.
func (re *Regexp) Match(s string) bool {
	if len(s) != re.Length {
		return false
	}
	cp := re.Copy()
	for i := 0; i < len(s); i++ {
		cp.ConstrainSlot(i, letterset.Single(rune(s[i])))
		if cp.NumChains() == 0 {
			return false
		}
	}
	return cp.NumChains() > 0
}

// Copy deep-clones re, preserving intra-chain slot aliasing: two
// positions that share a slot object in re share a (different) slot
// object in the copy, via a per-chain identity map from old slot to
// new. Mutating the copy never affects re.
func (re *Regexp) Copy() *Regexp {
	newChains := make([]chain, len(re.chains))
	for i, c := range re.chains {
		seen := make(map[*letterset.Set]*letterset.Set, len(c))
		nc := make(chain, len(c))
		for j, s := range c {
			dup, ok := seen[s]
			if !ok {
				v := *s
				dup = &v
				seen[s] = dup
			}
			nc[j] = dup
		}
		newChains[i] = nc
	}
	return &Regexp{
		Source:   re.Source,
		Length:   re.Length,
		Alphabet: re.Alphabet,
		chains:   newChains,
	}
}
