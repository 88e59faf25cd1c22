package chartrie

// Option configures a Trie at creation time.
type Option[V any] func(t *Trie[V])

// WithTypeRegistry replaces the default TypeList.
func WithTypeRegistry[V any](registry TypeRegistry) Option[V] {
	return func(t *Trie[V]) {
		if registry != nil {
			t.registry = registry
		}
	}
}

// WithEquality sets the comparison used by Exists. The default is
// reflect.DeepEqual.
func WithEquality[V any](equal func(a, b V) bool) Option[V] {
	return func(t *Trie[V]) {
		if equal != nil {
			t.equal = equal
		}
	}
}

// WithIdentifier names a trie in traces and statistics.
func WithIdentifier[V any](name string) Option[V] {
	return func(t *Trie[V]) {
		t.Identifier = name
	}
}
