package re1

import "strings"

// metaChars is every rune this package's grammar treats specially.
// Unlike the lineage this sublanguage was trimmed from, there are no
// anchors, so ^ and $ are ordinary characters here.
const metaChars = `|*+?.()[]\`

// Escape marks every metacharacter in t with a leading backslash, for
// callers (diagnostics, generated patterns) that need to guarantee t
// can't be misread as a grouping or quantifier if it's ever spliced
// into a larger pattern string. It is not a general quoting mechanism:
// this grammar has no backslash-literal escape besides \1-\9, so a
// metacharacter outside the alphabet still can't be parsed back as a
// literal by New. Ordinary board letters pass through unchanged.
func Escape(t string) string {
	var s strings.Builder
	for _, r := range t {
		if strings.ContainsRune(metaChars, r) {
			s.WriteRune('\\')
		}
		s.WriteRune(r)
	}
	return s.String()
}
