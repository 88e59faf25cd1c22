package pattern

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/gobwas/glob"
)

// Any is the wildcard sentinel. As the primary character of a CharMatch, or as
// an entry of a template passed to FromOptional, it matches every character.
const Any rune = -1

// CharMatch matches a single character position of a word.
type CharMatch struct {
	primary rune
	alts    CharSet
	cands   []rune // primary, then alts ascending; nil for wildcards
}

// Exact matches exactly c.
func Exact(c rune) CharMatch {
	return CharMatch{primary: c, cands: []rune{c}}
}

// AnyChar matches every character.
func AnyChar() CharMatch {
	return CharMatch{primary: Any}
}

// OneOf matches primary or any of alts. If primary is Any, the result is a
// wildcard and alts are irrelevant.
func OneOf(primary rune, alts ...rune) CharMatch {
	m := CharMatch{primary: primary}
	if primary == Any {
		return m
	}
	for _, c := range alts {
		if c != primary {
			m.alts.Add(c)
		}
	}
	m.cands = append([]rune{primary}, m.alts.Runes()...)
	return m
}

// Primary returns the primary character, which is Any for wildcards.
func (m CharMatch) Primary() rune { return m.primary }

// IsWildcard is true if m matches every character.
func (m CharMatch) IsWildcard() bool { return m.primary == Any }

// Alternatives returns the alternative characters in ascending order.
func (m CharMatch) Alternatives() []rune { return m.alts.Runes() }

// Matches reports whether c is acceptable at this position.
func (m CharMatch) Matches(c rune) bool {
	return m.primary == Any || c == m.primary || m.alts.Contains(c)
}

// Width returns the number of distinct characters m accepts, or -1 for a
// wildcard.
func (m CharMatch) Width() int {
	if m.IsWildcard() {
		return -1
	}
	return len(m.Candidates())
}

// Candidates returns every character m accepts, primary first. It returns nil
// for a wildcard. The slice is shared and must not be modified.
func (m CharMatch) Candidates() []rune {
	if m.IsWildcard() {
		return nil
	}
	if m.cands == nil { // zero value
		return []rune{m.primary}
	}
	return m.cands
}

// String renders m as a regular expression atom.
func (m CharMatch) String() string {
	var b strings.Builder
	m.writeRegex(&b)
	return b.String()
}

func (m CharMatch) writeRegex(b *strings.Builder) {
	switch {
	case m.IsWildcard():
		b.WriteByte('.')
	case m.alts.Empty():
		b.WriteString(regexp2.Escape(string(m.primary)))
	default:
		b.WriteByte('[')
		for _, c := range m.Candidates() {
			switch c {
			case '\\', ']', '[', '^', '-':
				b.WriteByte('\\')
			}
			b.WriteRune(c)
		}
		b.WriteByte(']')
	}
}

func (m CharMatch) writeGlob(b *strings.Builder) {
	switch {
	case m.IsWildcard():
		b.WriteByte('?')
	case m.alts.Empty():
		b.WriteString(glob.QuoteMeta(string(m.primary)))
	default:
		b.WriteByte('{')
		for i, c := range m.Candidates() {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == ',' {
				b.WriteString(`\,`)
			} else {
				b.WriteString(glob.QuoteMeta(string(c)))
			}
		}
		b.WriteByte('}')
	}
}
