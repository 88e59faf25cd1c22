package trieio

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/npillmayer/chartrie"
)

// Record holds the fields encoded for one node.
type Record struct {
	Key            rune
	IsWord         bool
	ChildCount     int
	RemainingDepth int
	Value          string
}

// RecordWriter receives the records of a subtree depth-first. Enter opens
// the record of a node; the records of its children follow, then Leave
// closes it.
type RecordWriter interface {
	Enter(rec Record) error
	Leave() error
}

// Serialize writes the subtree starting at n to w. Children are visited in
// ascending key order, so equal subtrees produce equal output.
//
// render converts the value of word nodes to text; if it is nil, fmt.Sprint
// is used.
func Serialize[V any](n *chartrie.Node[V], w RecordWriter, render func(V) string) error {
	if render == nil {
		render = func(v V) string { return fmt.Sprint(v) }
	}
	if err := serialize(n, w, render); err != nil {
		tracer().Errorf("serializing subtree failed: %v", err)
		return err
	}
	return nil
}

func serialize[V any](n *chartrie.Node[V], w RecordWriter, render func(V) string) error {
	rec := Record{
		Key:            n.Key(),
		IsWord:         n.IsWord(),
		ChildCount:     n.NumChildren(),
		RemainingDepth: n.RemainingDepth(),
	}
	if v, ok := n.Value(); ok {
		rec.Value = render(v)
	}
	if err := w.Enter(rec); err != nil {
		return err
	}
	children := slices.SortedFunc(n.GetNodes(), func(a, b *chartrie.Node[V]) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	for _, child := range children {
		if err := serialize(child, w, render); err != nil {
			return err
		}
	}
	return w.Leave()
}
