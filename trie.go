package chartrie

import (
	"io"
	"reflect"
)

// WordReader yields words and their values one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader[V any] interface {
	Next() (word string, value V, err error)
}

// Trie is a character trie storing a value of type V for every word.
//
// Use V = any for heterogeneous values; the dynamic type of every value is
// recorded in a TypeRegistry.
type Trie[V any] struct {
	root       *Node[V]
	registry   TypeRegistry
	equal      func(a, b V) bool
	Identifier string // identifies the trie in traces
}

// New creates an empty trie.
func New[V any](opts ...Option[V]) *Trie[V] {
	t := &Trie[V]{
		root:       newNode[V](0, nil),
		registry:   NewTypeList(),
		equal:      func(a, b V) bool { return reflect.DeepEqual(a, b) },
		Identifier: "trie",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root node. The root is never nil; it ends a word only if
// the empty word has been added.
func (t *Trie[V]) Root() *Node[V] {
	return t.root
}

// Len returns the number of words.
func (t *Trie[V]) Len() int {
	return t.root.NumWords()
}

// Add stores value for word, replacing a previous value. Missing nodes along
// the path are created.
func (t *Trie[V]) Add(word string, value V) {
	n := t.root
	for _, c := range word {
		n = n.childOrNew(c)
	}
	n.isWord = true
	n.value = value
	n.typeIndex = t.registry.Register(reflect.TypeOf(value))
	n.invalidate()
}

// Extend creates the nodes along path, without marking a word, and returns
// the node at its end. It is meant for rebuilding tries from encodings which
// contain nodes not leading to any word.
func (t *Trie[V]) Extend(path string) *Node[V] {
	n := t.root
	for _, c := range path {
		n = n.childOrNew(c)
	}
	n.invalidate()
	return n
}

// Load adds all words from a streaming source and returns the number of words
// read.
func (t *Trie[V]) Load(reader WordReader[V]) (int, error) {
	count := 0
	for {
		word, value, err := reader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			tracer().Errorf("%s: reading word #%d failed: %v", t.Identifier, count+1, err)
			return count, err
		}
		t.Add(word, value)
		count++
	}
	tracer().Infof("%s: loaded %d words, %d distinct", t.Identifier, count, t.Len())
	return count, nil
}

// Clear removes all words.
func (t *Trie[V]) Clear() {
	var zero V
	t.root.Clear()
	t.root.isWord = false
	t.root.value = zero
	t.root.typeIndex = unset
	t.root.invalidate()
}

// FindValue returns the value stored for word. A word which is missing, or
// which is only a prefix of other words, yields false.
func (t *Trie[V]) FindValue(word string) (V, bool) {
	n := t.root.lookup(word)
	if n == nil || !n.isWord {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Exists reports whether any word carries value. This is a linear scan over
// all nodes, O(number of nodes).
func (t *Trie[V]) Exists(value V) bool {
	found := false
	t.root.walk(func(n *Node[V]) bool {
		if n.isWord && t.equal(n.value, value) {
			found = true
			return false
		}
		return true
	})
	return found
}

// TypeOf resolves the type recorded for the value at n.
func (t *Trie[V]) TypeOf(n *Node[V]) (reflect.Type, bool) {
	return t.registry.Resolve(n.typeIndex)
}

// --- Statistics ------------------------------------------------------------

// Stats describes the shape of a trie.
type Stats struct {
	Nodes     int // including the root
	Words     int
	Depth     int // longest word
	MaxFanOut int // maximum number of children of a node
	MaxProbe  int // longest probe distance in any child table
}

// Stats walks the complete trie, writes statistics to the trace log and
// returns them. As a side effect every aggregate cache is filled.
func (t *Trie[V]) Stats() Stats {
	stats := Stats{
		Words: t.root.NumWords(),
		Depth: t.root.RemainingDepth(),
	}
	t.root.walk(func(n *Node[V]) bool {
		stats.Nodes++
		stats.MaxFanOut = max(stats.MaxFanOut, n.NumChildren())
		stats.MaxProbe = max(stats.MaxProbe, n.children.Stats().MaxProbe)
		return true
	})
	tracer().Infof("Trie Statistics for %s:", t.Identifier)
	tracer().Infof("  Nodes:     %d", stats.Nodes)
	tracer().Infof("  Words:     %d", stats.Words)
	tracer().Infof("  Depth:     %d", stats.Depth)
	tracer().Infof("  Fan-out:   %d", stats.MaxFanOut)
	tracer().Infof("  Max probe: %d", stats.MaxProbe)
	return stats
}
