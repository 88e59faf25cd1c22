/*
Package slotmap implements a small open-addressing hash map from characters
(runes) to arbitrary values.

It is meant for the child tables of trie nodes, where a single table
typically holds between zero and a hundred entries drawn from a small, dense
alphabet. Collisions are resolved with Robin-Hood displacement, deletions
use backward shifting instead of tombstones.

The zero value of Map is an empty map ready to use. A Map is not safe for
concurrent mutation.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package slotmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chartrie.slotmap'
func tracer() tracing.Trace {
	return tracing.Select("chartrie.slotmap")
}
