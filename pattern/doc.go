/*
Package pattern implements the small matching language used to query a
character trie.

A PatternMatch is a fixed-length sequence of CharMatch positions. Each
position accepts either one primary character, a primary character plus a set
of alternatives, or any character at all. The sequence carries a Mode which
tells how it is anchored against a word:

	Word      the pattern spans the whole word
	Prefix    the pattern spans the beginning of a word
	Fragment  the pattern occurs anywhere inside a word

Patterns may be built from plain strings, from rune templates containing Any
as a placeholder, or parsed from a compact textual form:

	c[ao]t     'c', then 'a' or 'o', then 't'
	c.t        'c', then any character, then 't'
	\.[.x]     a literal dot, then a dot or an 'x'

A pattern renders an equivalent regular expression (Expression) and glob
(GlobExpression). These renderings are informational; tries match patterns by
walking their nodes.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package pattern

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chartrie.pattern'
func tracer() tracing.Trace {
	return tracing.Select("chartrie.pattern")
}

var (
	// ErrInvalidPattern is returned for patterns which cannot be matched
	// meaningfully, e.g. fragments starting or ending with a wildcard.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrUnsupportedMatcher is returned by NewMatcher for unknown kinds.
	ErrUnsupportedMatcher = errors.New("unsupported matcher")
)
