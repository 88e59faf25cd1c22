package pattern

import (
	"fmt"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/gobwas/glob"
)

// Matcher checks complete words against a pattern.
type Matcher interface {
	Match(word string) bool
}

// Regexp compiles the anchored Expression of p.
func (p *PatternMatch) Regexp() (*regexp2.Regexp, error) {
	return regexp2.Compile("^(?:"+p.Expression()+")$", regexp2.RE2|regexp2.Singleline)
}

// Glob compiles the GlobExpression of p.
func (p *PatternMatch) Glob() (glob.Glob, error) {
	return glob.Compile(p.GlobExpression())
}

type regexMatcher struct {
	compiled *regexp2.Regexp
}

func (m *regexMatcher) Match(word string) bool {
	// errors are only reported on timeouts, which count as a miss
	ok, _ := m.compiled.MatchString(word)
	return ok
}

// gobwas/glob measures fixed-length runs in bytes, which breaks on multi-byte
// characters. Glob matchers therefore need ASCII patterns, and words outside
// ASCII are matched with MatchString.
type globMatcher struct {
	compiled glob.Glob
	p        *PatternMatch
}

func (m *globMatcher) Match(word string) bool {
	if !isASCII(word) {
		return m.p.MatchString(word)
	}
	return m.compiled.Match(word)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// asciiOnly reports whether every character p accepts explicitly is ASCII.
func (p *PatternMatch) asciiOnly() bool {
	for _, m := range p.chars {
		for _, c := range m.Candidates() {
			if c >= utf8.RuneSelf {
				return false
			}
		}
	}
	return true
}

// NewMatcher returns a matcher for whole words, backed by either a "regex" or
// a "glob" compilation of p. The "glob" kind accepts ASCII patterns only.
func NewMatcher(kind string, p *PatternMatch) (Matcher, error) {
	switch kind {
	case "regex":
		compiled, err := p.Regexp()
		if err != nil {
			return nil, err
		}
		return &regexMatcher{compiled: compiled}, nil
	case "glob":
		if !p.asciiOnly() {
			tracer().Errorf("glob matcher for non-ASCII pattern %s", p)
			return nil, fmt.Errorf("%w: glob needs an ASCII pattern, have %s", ErrUnsupportedMatcher, p)
		}
		compiled, err := p.Glob()
		if err != nil {
			return nil, err
		}
		return &globMatcher{compiled: compiled, p: p}, nil
	default:
		return nil, ErrUnsupportedMatcher
	}
}
