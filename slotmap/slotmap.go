package slotmap

import (
	"iter"
	"math/bits"
)

const initialCapacity = 8 // must be a power of 2

// load factor 1/2: a table never holds more than half of its slots
const (
	maxLoadNum = 1
	maxLoadDen = 2
)

// golden is ⌊2^32 / φ⌋, used for Fibonacci hashing of home slots.
const golden uint32 = 2654435769

type slot[V any] struct {
	dist  int32 // probe distance + 1; 0 denotes an empty slot
	key   rune
	value V
}

// Map maps runes to values of type V.
type Map[V any] struct {
	slots []slot[V]
	count int
	shift uint // 32 - log2(len(slots))
}

// New creates an empty map with the default initial capacity.
func New[V any]() *Map[V] {
	m := &Map[V]{}
	m.resize(initialCapacity)
	return m
}

// NewWithCapacity creates an empty map able to hold n entries without
// re-hashing.
func NewWithCapacity[V any](n int) *Map[V] {
	m := &Map[V]{}
	m.resize(capacityFor(n))
	return m
}

func capacityFor(n int) int {
	c := initialCapacity
	for c*maxLoadNum < n*maxLoadDen {
		c <<= 1
	}
	return c
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.count
}

// Get returns the value stored for c. The boolean result is false if c is not
// present; a missing key is never an error.
func (m *Map[V]) Get(c rune) (V, bool) {
	if i, ok := m.find(c); ok {
		return m.slots[i].value, true
	}
	var zero V
	return zero, false
}

// Set inserts c with value v or replaces the value already stored for c.
func (m *Map[V]) Set(c rune, v V) {
	if i, ok := m.find(c); ok {
		m.slots[i].value = v
		return
	}
	if m.slots == nil {
		m.resize(initialCapacity)
	} else if (m.count+1)*maxLoadDen > len(m.slots)*maxLoadNum {
		m.resize(len(m.slots) * 2)
	}
	m.insert(slot[V]{dist: 1, key: c, value: v})
	m.count++
}

// Remove deletes c from the map and reports whether it was present.
func (m *Map[V]) Remove(c rune) bool {
	i, ok := m.find(c)
	if !ok {
		return false
	}
	mask := len(m.slots) - 1
	for {
		next := (i + 1) & mask
		s := m.slots[next]
		if s.dist <= 1 { // empty or sitting in its home slot
			m.slots[i] = slot[V]{}
			break
		}
		s.dist--
		m.slots[i] = s
		i = next
	}
	m.count--
	return true
}

// Clear removes all entries and releases the backing array.
func (m *Map[V]) Clear() {
	m.slots = nil
	m.count = 0
	m.shift = 0
}

// All returns a sequence of all (key, value) pairs in slot order. The map must
// not be modified while the sequence is being consumed.
func (m *Map[V]) All() iter.Seq2[rune, V] {
	return func(yield func(rune, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if s.dist == 0 {
				continue
			}
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Values returns a sequence of all values in slot order.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// --- Internals -------------------------------------------------------------

func (m *Map[V]) home(c rune) int {
	return int((uint32(c) * golden) >> m.shift)
}

// find returns the slot index of c. Probing stops at the first slot which is
// empty or whose occupant is closer to its home than c would be.
func (m *Map[V]) find(c rune) (int, bool) {
	if m.count == 0 {
		return 0, false
	}
	mask := len(m.slots) - 1
	i := m.home(c)
	for d := int32(1); ; d++ {
		s := &m.slots[i]
		if s.dist < d {
			return 0, false
		}
		if s.key == c {
			return i, true
		}
		i = (i + 1) & mask
	}
}

// insert places e, displacing richer entries on its way. The caller has made
// sure there is at least one free slot.
func (m *Map[V]) insert(e slot[V]) {
	mask := len(m.slots) - 1
	i := m.home(e.key)
	for {
		s := &m.slots[i]
		if s.dist == 0 {
			*s = e
			return
		}
		if s.dist < e.dist {
			*s, e = e, *s
		}
		i = (i + 1) & mask
		e.dist++
	}
}

func (m *Map[V]) resize(capacity int) {
	old := m.slots
	m.slots = make([]slot[V], capacity)
	m.shift = uint(32 - bits.TrailingZeros(uint(capacity)))
	if len(old) > 0 {
		tracer().Debugf("slot map resize %d → %d for %d entries", len(old), capacity, m.count)
	}
	for _, s := range old {
		if s.dist == 0 {
			continue
		}
		s.dist = 1
		m.insert(s)
	}
}

// --- Statistics ------------------------------------------------------------

// Stats describes the fill state of a map.
type Stats struct {
	Capacity int
	Count    int
	MaxProbe int // longest distance of an entry from its home slot
}

// LoadFactor returns Count/Capacity.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Count) / float64(s.Capacity)
}

// Stats returns capacity and probe statistics.
func (m *Map[V]) Stats() Stats {
	stats := Stats{Capacity: len(m.slots), Count: m.count}
	for i := range m.slots {
		if d := int(m.slots[i].dist) - 1; d > stats.MaxProbe {
			stats.MaxProbe = d
		}
	}
	return stats
}
