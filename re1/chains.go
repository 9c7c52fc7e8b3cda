package re1

import "github.com/brownan/regescrossword/letterset"

// itemKind distinguishes the three shapes a pre-chain element can take
// (spec.md §4.C): a slot, a nested group definition, or a back-reference
// marker, before groups are flattened and references are dereferenced.
type itemKind int

const (
	itemSlot itemKind = iota
	itemGroup
	itemBackref
)

type item struct {
	kind  itemKind
	slot  *letterset.Set
	group []item
	ref   int
}

// prechain is one pre-chain: a sequence of slots, group definitions and
// back-reference markers, before its groups are flattened.
type prechain = []item

func litItem(s letterset.Set) item {
	v := s
	return item{kind: itemSlot, slot: &v}
}

// deepCopyChain clones every item in c, recursively, so that unrelated
// occurrences (e.g. different repetitions of a starred atom) never
// share slot identity. The only aliasing this package ever produces is
// introduced later, in flatten, when a back-reference is resolved to
// the exact same slot pointers as its group's definition.
func deepCopyChain(c prechain) prechain {
	out := make(prechain, len(c))
	for i, it := range c {
		out[i] = deepCopyItem(it)
	}
	return out
}

func deepCopyItem(it item) item {
	switch it.kind {
	case itemSlot:
		v := *it.slot
		return item{kind: itemSlot, slot: &v}
	case itemGroup:
		return item{kind: itemGroup, group: deepCopyChain(it.group)}
	default:
		return it
	}
}

func repeatChain(c prechain, times int) prechain {
	out := make(prechain, 0, len(c)*times)
	for i := 0; i < times; i++ {
		out = append(out, deepCopyChain(c)...)
	}
	return out
}

// genNode enumerates every pre-chain a node can produce, for a target
// overall match length of length. It mirrors the original's recursive
// generator: concatenation takes the cartesian product of both sides
// and deep-copies both operands for every pairing, and the star/plus
// quantifiers try every repeat count from (0 or 1) up to length, each
// repetition choosing any of the body's alternatives independently
// (sequences longer than length items are not extended further),
// relying on the final length filter (see flattenDerefFilter) to
// discard anything that doesn't add up.
func genNode(n *node, length int) []prechain {
	switch n.kind {
	case nEmpty:
		return []prechain{{}}

	case nLit:
		return []prechain{{litItem(n.set)}}

	case nBackref:
		return []prechain{{{kind: itemBackref, ref: n.ref}}}

	case nGroup:
		bodies := genNode(n.body, length)
		out := make([]prechain, len(bodies))
		for i, b := range bodies {
			out[i] = prechain{{kind: itemGroup, group: b}}
		}
		return out

	case nAlt:
		return append(genNode(n.left, length), genNode(n.right, length)...)

	case nConcat:
		lefts := genNode(n.left, length)
		rights := genNode(n.right, length)
		out := make([]prechain, 0, len(lefts)*len(rights))
		for _, l := range lefts {
			for _, r := range rights {
				out = append(out, append(deepCopyChain(l), deepCopyChain(r)...))
			}
		}
		return out

	case nStar:
		return genRepeat(n.body, length, 0, length)

	case nPlus:
		return genRepeat(n.body, length, 1, length)

	case nOpt:
		atoms := genNode(n.body, length)
		out := make([]prechain, 0, len(atoms)+1)
		out = append(out, prechain{})
		out = append(out, atoms...)
		return out

	default:
		panic("re1: unhandled node kind")
	}
}

func genRepeat(body *node, length, min, max int) []prechain {
	atoms := genNode(body, length)
	var out []prechain
	seqs := []prechain{{}}
	for k := 0; k <= max && len(seqs) > 0; k++ {
		if k >= min {
			out = append(out, seqs...)
		}
		var grown []prechain
		for _, s := range seqs {
			for _, a := range atoms {
				if next := append(deepCopyChain(s), deepCopyChain(a)...); len(next) <= length {
					grown = append(grown, next)
				}
			}
		}
		seqs = grown
	}
	return out
}

// flattenDerefFilter turns each raw pre-chain into a final chain of
// length-many slots: group items are spliced in place (recording each
// group's flattened slots, indexed by position of appearance within
// this pre-chain, per spec.md §9's open question), back-reference
// markers are replaced by the exact same slot pointers their group
// recorded, and any chain whose resolved length isn't exactly length,
// or that contains an empty slot, is discarded.
func flattenDerefFilter(pcs []prechain, length int) []chain {
	var chains []chain
	for _, pc := range pcs {
		var flattened prechain
		var groups []prechain
		for _, it := range pc {
			if it.kind == itemGroup {
				flattened = append(flattened, it.group...)
				groups = append(groups, it.group)
			} else {
				flattened = append(flattened, it)
			}
		}

		slots, ok := resolveChain(flattened, groups)
		if !ok || len(slots) != length {
			continue
		}
		empty := false
		for _, s := range slots {
			if s.Empty() {
				empty = true
				break
			}
		}
		if empty {
			continue
		}
		chains = append(chains, slots)
	}
	return chains
}

func resolveChain(flattened prechain, groups []prechain) (chain, bool) {
	var slots chain
	for _, it := range flattened {
		switch it.kind {
		case itemSlot:
			slots = append(slots, it.slot)
		case itemBackref:
			if it.ref < 0 || it.ref >= len(groups) {
				return nil, false
			}
			sub, ok := resolveChain(groups[it.ref], groups)
			if !ok {
				return nil, false
			}
			slots = append(slots, sub...)
		case itemGroup:
			// Groups are only one level deep (enforced at parse time),
			// so a group item should never itself contain a nested
			// group marker here.
			return nil, false
		}
	}
	return slots, true
}
