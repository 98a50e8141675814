package arraymap

import (
	"github.com/npillmayer/sortedmap/kv"
)

// Map is an immutable sorted-slice map representation.
//
// Entries are kept in strictly ascending key order under the comparator
// injected at creation. Every mutating operation returns a new Map with a
// fresh backing slice; a Map never changes after it has been handed out.
// This representation is intended for small entry counts, where a copying
// binary-searched slice beats a tree on both time and space.
type Map[K, V any] struct {
	cmp     func(a, b K) int
	entries []kv.Pair[K, V]
}

// New creates an empty array map with the given comparator.
//
// The comparator must implement a strict total order and stays fixed for
// the lifetime of the map and of every map derived from it.
func New[K, V any](cmp func(a, b K) int) *Map[K, V] {
	assert(cmp != nil, "arraymap.New requires a comparator")
	return &Map[K, V]{cmp: cmp}
}

// FromSorted creates an array map over entries, which must already be in
// strictly ascending key order. The slice is copied.
func FromSorted[K, V any](cmp func(a, b K) int, entries []kv.Pair[K, V]) *Map[K, V] {
	assert(cmp != nil, "arraymap.FromSorted requires a comparator")
	m := &Map[K, V]{cmp: cmp}
	if len(entries) > 0 {
		m.entries = append([]kv.Pair[K, V](nil), entries...)
	}
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Comparator returns the comparator the map was created with.
func (m *Map[K, V]) Comparator() func(a, b K) int {
	return m.cmp
}

// search locates key. It returns the position of the first entry with an
// equal or greater key, and whether an equal key is present.
func (m *Map[K, V]) search(key K) (pos int, found bool) {
	lo, hi := 0, len(m.entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := m.cmp(m.entries[mid].Key, key)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// Find returns the value stored for key, if present.
func (m *Map[K, V]) Find(key K) (V, bool) {
	if m == nil || len(m.entries) == 0 {
		var zero V
		return zero, false
	}
	pos, found := m.search(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.entries[pos].Value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.Find(key)
	return found
}

// At returns the entry at position i in key order.
func (m *Map[K, V]) At(i int) (kv.Pair[K, V], error) {
	if m == nil || i < 0 || i >= len(m.entries) {
		return kv.Pair[K, V]{}, ErrIndexOutOfBounds
	}
	return m.entries[i], nil
}

// Min returns the entry with the smallest key, if any.
func (m *Map[K, V]) Min() (kv.Pair[K, V], bool) {
	if m.Len() == 0 {
		return kv.Pair[K, V]{}, false
	}
	return m.entries[0], true
}

// Max returns the entry with the largest key, if any.
func (m *Map[K, V]) Max() (kv.Pair[K, V], bool) {
	if m.Len() == 0 {
		return kv.Pair[K, V]{}, false
	}
	return m.entries[len(m.entries)-1], true
}

// Insert returns a new map with key bound to value. The receiver is left
// unchanged. An existing binding for key is replaced in the new map.
func (m *Map[K, V]) Insert(key K, value V) *Map[K, V] {
	assert(m != nil, "Insert called on nil arraymap")
	pos, found := m.search(key)
	if found {
		entries := append([]kv.Pair[K, V](nil), m.entries...)
		entries[pos] = kv.Pair[K, V]{Key: key, Value: value}
		return &Map[K, V]{cmp: m.cmp, entries: entries}
	}
	entries := make([]kv.Pair[K, V], 0, len(m.entries)+1)
	entries = append(entries, m.entries[:pos]...)
	entries = append(entries, kv.Pair[K, V]{Key: key, Value: value})
	entries = append(entries, m.entries[pos:]...)
	return &Map[K, V]{cmp: m.cmp, entries: entries}
}

// Remove returns a map without a binding for key. If key is absent, the
// receiver itself is returned.
func (m *Map[K, V]) Remove(key K) *Map[K, V] {
	assert(m != nil, "Remove called on nil arraymap")
	pos, found := m.search(key)
	if !found {
		return m
	}
	entries := make([]kv.Pair[K, V], 0, len(m.entries)-1)
	entries = append(entries, m.entries[:pos]...)
	entries = append(entries, m.entries[pos+1:]...)
	return &Map[K, V]{cmp: m.cmp, entries: entries}
}

// Entries returns a copy of the ordered entry sequence.
func (m *Map[K, V]) Entries() []kv.Pair[K, V] {
	if m.Len() == 0 {
		return nil
	}
	return append([]kv.Pair[K, V](nil), m.entries...)
}
