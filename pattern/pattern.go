package pattern

import (
	"fmt"
	"strings"
)

// Mode tells how a PatternMatch is anchored against a word.
type Mode uint8

const (
	Word     Mode = iota // pattern spans the complete word
	Prefix               // pattern spans the beginning of a word
	Fragment             // pattern occurs anywhere inside a word
)

func (m Mode) String() string {
	switch m {
	case Word:
		return "word"
	case Prefix:
		return "prefix"
	case Fragment:
		return "fragment"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// PatternMatch is an ordered sequence of character positions plus an
// anchoring mode. Instances are immutable and validated at construction.
type PatternMatch struct {
	chars []CharMatch
	mode  Mode
}

// New creates a pattern from explicit character positions.
//
// A Fragment pattern must neither be empty nor start or end with a wildcard;
// otherwise ErrInvalidPattern is returned.
func New(mode Mode, chars ...CharMatch) (*PatternMatch, error) {
	p := &PatternMatch{
		chars: make([]CharMatch, len(chars)),
		mode:  mode,
	}
	copy(p.chars, chars)
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromString creates a pattern matching s literally.
func FromString(s string, mode Mode) (*PatternMatch, error) {
	chars := make([]CharMatch, 0, len(s))
	for _, c := range s {
		chars = append(chars, Exact(c))
	}
	return New(mode, chars...)
}

// FromOptional creates a pattern from a template where every occurrence of
// Any denotes a wildcard position.
//
//	FromOptional([]rune{'c', Any, 't'}, Word)  ≙  "c.t"
func FromOptional(template []rune, mode Mode) (*PatternMatch, error) {
	chars := make([]CharMatch, len(template))
	for i, c := range template {
		if c == Any {
			chars[i] = AnyChar()
		} else {
			chars[i] = Exact(c)
		}
	}
	return New(mode, chars...)
}

func (p *PatternMatch) validate() error {
	if p.mode > Fragment {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidPattern, p.mode)
	}
	if p.mode != Fragment {
		return nil
	}
	if len(p.chars) == 0 {
		tracer().Errorf("fragment pattern may not be empty")
		return fmt.Errorf("%w: empty fragment", ErrInvalidPattern)
	}
	if p.chars[0].IsWildcard() || p.chars[len(p.chars)-1].IsWildcard() {
		tracer().Errorf("fragment pattern %s has a wildcard boundary", p.Expression())
		return fmt.Errorf("%w: fragment %q starts or ends with a wildcard",
			ErrInvalidPattern, p.Expression())
	}
	return nil
}

// Len returns the number of character positions.
func (p *PatternMatch) Len() int { return len(p.chars) }

// At returns the character position i.
func (p *PatternMatch) At(i int) CharMatch { return p.chars[i] }

// Mode returns the anchoring mode.
func (p *PatternMatch) Mode() Mode { return p.mode }

// Expression renders p as a regular expression: one literal or bracketed set
// of alternatives per position, '.' for wildcards. Prefix patterns get a
// trailing ".*", fragments are surrounded by ".*".
//
//	c[ao]t      (Word)
//	c[ao]t.*    (Prefix)
//	.*c[ao]t.*  (Fragment)
func (p *PatternMatch) Expression() string {
	var b strings.Builder
	if p.mode == Fragment {
		b.WriteString(".*")
	}
	for _, m := range p.chars {
		m.writeRegex(&b)
	}
	if p.mode == Prefix || p.mode == Fragment {
		b.WriteString(".*")
	}
	return b.String()
}

// GlobExpression renders p as a glob: '?' for wildcards, "{a,b}" for
// alternatives, '*' for the unanchored ends.
func (p *PatternMatch) GlobExpression() string {
	var b strings.Builder
	if p.mode == Fragment {
		b.WriteByte('*')
	}
	for _, m := range p.chars {
		m.writeGlob(&b)
	}
	if p.mode == Prefix || p.mode == Fragment {
		b.WriteByte('*')
	}
	return b.String()
}

func (p *PatternMatch) String() string {
	return p.Expression()
}

// MatchString matches word rune by rune, honoring the mode of p.
func (p *PatternMatch) MatchString(word string) bool {
	runes := []rune(word)
	switch p.mode {
	case Word:
		return len(runes) == len(p.chars) && p.matchAt(runes, 0)
	case Prefix:
		return p.matchAt(runes, 0)
	}
	for i := 0; i+len(p.chars) <= len(runes); i++ {
		if p.matchAt(runes, i) {
			return true
		}
	}
	return false
}

func (p *PatternMatch) matchAt(runes []rune, start int) bool {
	if start+len(p.chars) > len(runes) {
		return false
	}
	for i, m := range p.chars {
		if !m.Matches(runes[start+i]) {
			return false
		}
	}
	return true
}
