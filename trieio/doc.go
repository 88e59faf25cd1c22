/*
Package trieio encodes trie subtrees as compact node records.

Every node becomes one record with five fields; all but the key are omitted
when they carry their default value:

	key             edge character from the parent (always present)
	isWord          node terminates a word (omitted if false)
	childCount      number of direct children (omitted if 0)
	remainingDepth  depth of the subtree below the node (omitted if 0)
	value           rendered value (omitted if empty)

Serialize walks a subtree and feeds records to a RecordWriter. How child
records nest inside their parent is up to the writer: ProtoWriter emits
protobuf wire format, JSONWriter emits nested JSON objects. DecodeProto
rebuilds a trie from ProtoWriter output.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package trieio

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chartrie.trieio'
func tracer() tracing.Trace {
	return tracing.Select("chartrie.trieio")
}

var (
	// ErrUnbalanced is returned by writers receiving Leave without Enter.
	ErrUnbalanced = errors.New("unbalanced record nesting")
	// ErrMalformedRecord is returned when decoding invalid input.
	ErrMalformedRecord = errors.New("malformed record")
)
