/*
Package chartrie implements a character-indexed prefix tree (trie) with a
value attached to each word.

Besides exact lookup, a trie answers three kinds of queries directly on its
nodes, without materializing the stored words:

	FindValues            words starting with a prefix
	FindValuesMatching    words matching a fixed-length wildcard pattern
	FindValuesContaining  words containing a fragment anywhere

Patterns are built with package pattern. Child tables of nodes are small
Robin-Hood hash maps from package slotmap. Every node memoizes the number of
words and children below it and the depth of its subtree; these caches are
invalidated on every structural change along the path up to the root.

A trie is not safe for concurrent use. Aggregate getters fill their caches on
first access, so even read-only access from several goroutines requires the
caches to be primed (see Trie.Stats) while no writer is active.

Encoding of node subtrees lives in package trieio, line-oriented word lists
are read by package wordlist.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package chartrie

import (
	"github.com/npillmayer/chartrie/pattern"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chartrie'
func tracer() tracing.Trace {
	return tracing.Select("chartrie")
}

// ErrInvalidPattern is returned for malformed patterns, see package pattern.
var ErrInvalidPattern = pattern.ErrInvalidPattern
