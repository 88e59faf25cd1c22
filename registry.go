package chartrie

import "reflect"

// TypeRegistry assigns small integer indices to value types.
type TypeRegistry interface {
	// Register returns the index of t, appending t if it is new.
	// A nil type has index -1.
	Register(t reflect.Type) int
	// Resolve returns the type for an index.
	Resolve(index int) (reflect.Type, bool)
}

// TypeList is the default TypeRegistry, an ordered list of distinct types.
type TypeList struct {
	types []reflect.Type
	index map[reflect.Type]int
}

// NewTypeList creates an empty registry.
func NewTypeList() *TypeList {
	return &TypeList{index: make(map[reflect.Type]int)}
}

func (l *TypeList) Register(t reflect.Type) int {
	if t == nil {
		return unset
	}
	if i, ok := l.index[t]; ok {
		return i
	}
	l.types = append(l.types, t)
	l.index[t] = len(l.types) - 1
	return len(l.types) - 1
}

func (l *TypeList) Resolve(index int) (reflect.Type, bool) {
	if index < 0 || index >= len(l.types) {
		return nil, false
	}
	return l.types[index], true
}

// Len returns the number of registered types.
func (l *TypeList) Len() int { return len(l.types) }
