// Package letterset implements a small, value-typed set of uppercase
// Latin letters, represented as a bitmask rather than a map or slice.
//
// The alphabet is fixed at the 26 letters 'A'..'Z', so a single uint32
// holds a complete set with room to spare. This mirrors the bit-vector
// domain representation used elsewhere in this codebase's ancestry for
// small, fixed-size finite domains, adapted here from "1..n" values to
// a rune alphabet.
package letterset

import "strings"

// Set is a set of uppercase letters 'A'..'Z'. The zero value is the
// empty set. Sets are small enough to be copied by value; callers that
// need shared, mutate-in-place identity (see package re1) hold a
// pointer to a Set instead.
type Set uint32

// Full is the set containing every letter 'A' through 'Z'.
const Full Set = 1<<26 - 1

// bitFor reports the bit index for r, or -1 if r is not in 'A'..'Z'.
func bitFor(r rune) int {
	if r < 'A' || r > 'Z' {
		return -1
	}
	return int(r - 'A')
}

// Of returns the set containing exactly the letters in s. Non-letter
// runes are silently ignored.
func Of(s string) Set {
	var set Set
	for _, r := range s {
		if b := bitFor(r); b >= 0 {
			set |= 1 << uint(b)
		}
	}
	return set
}

// Single returns the singleton set containing r, or the empty set if r
// is not an uppercase letter.
func Single(r rune) Set {
	if b := bitFor(r); b >= 0 {
		return 1 << uint(b)
	}
	return 0
}

// Contains reports whether r is a member of s.
func (s Set) Contains(r rune) bool {
	b := bitFor(r)
	return b >= 0 && s&(1<<uint(b)) != 0
}

// Union returns the set union of s and other.
func (s Set) Union(other Set) Set { return s | other }

// Intersect returns the set intersection of s and other.
func (s Set) Intersect(other Set) Set { return s & other }

// Complement returns the set of letters in Full but not in s.
func (s Set) Complement() Set { return Full &^ s }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Count returns the number of members of s.
func (s Set) Count() int {
	n := 0
	for b := s; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Singleton reports whether s has exactly one member, returning it.
func (s Set) Singleton() (rune, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	for i := 0; i < 26; i++ {
		if s&(1<<uint(i)) != 0 {
			return rune('A' + i), true
		}
	}
	panic("unreachable")
}

// Equal reports whether s and other have the same members.
func (s Set) Equal(other Set) bool { return s == other }

// String renders s as a sorted run of its member letters, or "_" for
// the empty set (used by re1's DebugString to render each chain slot).
func (s Set) String() string {
	if s.Empty() {
		return "_"
	}
	var b strings.Builder
	for i := 0; i < 26; i++ {
		if s&(1<<uint(i)) != 0 {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}
