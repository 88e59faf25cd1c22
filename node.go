package chartrie

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/chartrie/slotmap"
)

const unset = -1 // sentinel for empty caches and missing type indices

// ErrKeyNotFound is signalled by direct descent into a missing child.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError reports the key of a failed descent. It matches
// ErrKeyNotFound with errors.Is.
type KeyNotFoundError struct {
	Key string // the complete key requested
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound.Error(), e.Key)
}

// Is makes errors.Is(err, ErrKeyNotFound) work.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// Node is a vertex of a trie. A node exclusively owns its children.
type Node[V any] struct {
	key       rune
	parent    *Node[V] // back reference, used for cache invalidation only
	children  slotmap.Map[*Node[V]]
	isWord    bool
	value     V
	typeIndex int
	// memoized aggregates, unset if dirty
	numWords       int
	numChildren    int
	remainingDepth int
}

func newNode[V any](key rune, parent *Node[V]) *Node[V] {
	return &Node[V]{
		key:            key,
		parent:         parent,
		typeIndex:      unset,
		numWords:       unset,
		numChildren:    unset,
		remainingDepth: unset,
	}
}

// Key returns the character on the edge from the parent. It is 0 for a root.
func (n *Node[V]) Key() rune { return n.key }

// Parent returns the parent node, or nil for a root or a detached node.
func (n *Node[V]) Parent() *Node[V] { return n.parent }

// IsWord is true if a word ends at n.
func (n *Node[V]) IsWord() bool { return n.isWord }

// Value returns the value of the word ending at n.
func (n *Node[V]) Value() (V, bool) { return n.value, n.isWord }

// TypeIndex returns the registry index of the value's type, or -1.
func (n *Node[V]) TypeIndex() int { return n.typeIndex }

// GetNode returns the child for c. A missing child is an error matching
// ErrKeyNotFound.
func (n *Node[V]) GetNode(c rune) (*Node[V], error) {
	if child, ok := n.children.Get(c); ok {
		return child, nil
	}
	return nil, &KeyNotFoundError{Key: string(c)}
}

// GetNodeAt descends along path, character by character. If a character is
// missing, the error reports the complete path.
func (n *Node[V]) GetNodeAt(path string) (*Node[V], error) {
	if node := n.lookup(path); node != nil {
		return node, nil
	}
	return nil, &KeyNotFoundError{Key: path}
}

// lookup is GetNodeAt without error reporting; it returns nil for a missing
// path.
func (n *Node[V]) lookup(path string) *Node[V] {
	node := n
	for _, c := range path {
		child, ok := node.children.Get(c)
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// GetNodes returns the direct children of n, in no particular order.
func (n *Node[V]) GetNodes() iter.Seq[*Node[V]] {
	return n.children.Values()
}

// Clear discards all children of n. Whether n itself ends a word is not
// changed.
func (n *Node[V]) Clear() {
	for child := range n.children.Values() {
		child.parent = nil
	}
	n.children.Clear()
	n.invalidate()
}

// childOrNew returns the child for c, creating it if necessary.
func (n *Node[V]) childOrNew(c rune) *Node[V] {
	if child, ok := n.children.Get(c); ok {
		return child
	}
	child := newNode(c, n)
	n.children.Set(c, child)
	return child
}

// invalidate marks the aggregates of n and all of its ancestors dirty.
func (n *Node[V]) invalidate() {
	for x := n; x != nil; x = x.parent {
		x.numWords = unset
		x.numChildren = unset
		x.remainingDepth = unset
	}
}

// --- Aggregates ------------------------------------------------------------

// NumChildren returns the number of direct children.
func (n *Node[V]) NumChildren() int {
	if n.numChildren == unset {
		n.numChildren = n.children.Len()
	}
	return n.numChildren
}

// NumWords returns the number of words ending at n or below.
func (n *Node[V]) NumWords() int {
	if n.numWords == unset {
		count := 0
		if n.isWord {
			count = 1
		}
		for child := range n.children.Values() {
			count += child.NumWords()
		}
		n.numWords = count
	}
	return n.numWords
}

// RemainingDepth returns the length of the longest path from n down to a
// leaf, 0 for a leaf.
func (n *Node[V]) RemainingDepth() int {
	if n.remainingDepth == unset {
		depth := 0
		for child := range n.children.Values() {
			depth = max(depth, 1+child.RemainingDepth())
		}
		n.remainingDepth = depth
	}
	return n.remainingDepth
}
