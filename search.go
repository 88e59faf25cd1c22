package chartrie

import (
	"iter"

	"github.com/npillmayer/chartrie/pattern"
)

// walk visits n and every node below it depth-first, without recursion.
// Returns false if visit aborted the walk.
func (n *Node[V]) walk(visit func(*Node[V]) bool) bool {
	stack := []*Node[V]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(top) {
			return false
		}
		for child := range top.children.Values() {
			stack = append(stack, child)
		}
	}
	return true
}

// yieldWords calls yield with the value of every word at or below n.
func yieldWords[V any](n *Node[V], yield func(V) bool) bool {
	return n.walk(func(x *Node[V]) bool {
		return !x.isWord || yield(x.value)
	})
}

// FindValues returns the values of all words starting with prefix; the empty
// prefix selects every word. The order is depth-first and stable as long as
// the trie is not modified.
func (t *Trie[V]) FindValues(prefix string) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n := t.root.lookup(prefix); n != nil {
			yieldWords(n, yield)
		}
	}
}

// FindValuesMatching returns the values of words matching p.
//
// p is matched against the leading characters of words. If matchLength is
// true, a word must end exactly where p ends; otherwise every word extending
// a match counts as well. Fragment patterns are matched anywhere inside words,
// as by FindValuesContainingPattern. A nil pattern matches nothing.
func (t *Trie[V]) FindValuesMatching(p *pattern.PatternMatch, matchLength bool) iter.Seq[V] {
	if p == nil {
		return func(func(V) bool) {}
	}
	if p.Mode() == pattern.Fragment {
		return t.FindValuesContainingPattern(p)
	}
	return func(yield func(V) bool) {
		matchBelow(t.root, p, 0, func(n *Node[V]) bool {
			if matchLength {
				return !n.isWord || yield(n.value)
			}
			return yieldWords(n, yield)
		})
	}
}

// FindValuesLike is FindValuesMatching for a template of characters, where
// pattern.Any denotes a wildcard position.
func (t *Trie[V]) FindValuesLike(template []rune, matchLength bool) (iter.Seq[V], error) {
	mode := pattern.Prefix
	if matchLength {
		mode = pattern.Word
	}
	p, err := pattern.FromOptional(template, mode)
	if err != nil {
		return nil, err
	}
	return t.FindValuesMatching(p, matchLength), nil
}

// FindValuesContaining returns the values of all words containing fragment.
// Every word is reported once, however often it contains fragment. An empty
// fragment yields nothing.
//
// Any node may start a match, so the search visits the complete trie: it is
// considerably more expensive than a prefix search.
func (t *Trie[V]) FindValuesContaining(fragment string) iter.Seq[V] {
	p, err := pattern.FromString(fragment, pattern.Fragment)
	if err != nil {
		return func(func(V) bool) {}
	}
	return t.FindValuesContainingPattern(p)
}

// FindValuesContainingPattern returns the values of all words containing a
// match of p anywhere, regardless of the mode of p. Every word is reported
// once.
func (t *Trie[V]) FindValuesContainingPattern(p *pattern.PatternMatch) iter.Seq[V] {
	return func(yield func(V) bool) {
		if p == nil || p.Len() == 0 {
			return
		}
		seen := make(map[*Node[V]]struct{})
		found := func(end *Node[V]) bool {
			return end.walk(func(x *Node[V]) bool {
				if !x.isWord {
					return true
				}
				if _, dup := seen[x]; dup {
					return true
				}
				seen[x] = struct{}{}
				return yield(x.value)
			})
		}
		stack := []*Node[V]{t.root}
		for len(stack) > 0 {
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if start.RemainingDepth() < p.Len() {
				continue // too shallow, and so is everything below
			}
			if !matchBelow(start, p, 0, found) {
				return
			}
			for child := range start.children.Values() {
				stack = append(stack, child)
			}
		}
	}
}

// matchBelow matches positions i… of p along the edges below n and calls
// found for every node where the match ends. This branches wherever a
// position admits several characters. Returns false if found aborted.
func matchBelow[V any](n *Node[V], p *pattern.PatternMatch, i int, found func(*Node[V]) bool) bool {
	if i == p.Len() {
		return found(n)
	}
	if n.RemainingDepth() < p.Len()-i {
		return true
	}
	m := p.At(i)
	if w := m.Width(); w >= 0 && w <= n.NumChildren() {
		for _, c := range m.Candidates() {
			if child, ok := n.children.Get(c); ok {
				if !matchBelow(child, p, i+1, found) {
					return false
				}
			}
		}
		return true
	}
	for c, child := range n.children.All() {
		if m.Matches(c) && !matchBelow(child, p, i+1, found) {
			return false
		}
	}
	return true
}
