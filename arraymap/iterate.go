package arraymap

import "github.com/npillmayer/sortedmap/kv"

// Iterator walks the entries of one map snapshot in key order.
//
// Iterators are read-only: taking or advancing an iterator never touches
// the underlying map, and any number of iterators may walk the same map
// concurrently.
type Iterator[K, V any] struct {
	entries []kv.Pair[K, V]
	pos     int
	descend bool
}

// Iterator returns an ascending iterator over all entries.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{entries: m.entries}
}

// IteratorFrom returns an ascending iterator positioned at the first entry
// with a key equal to or greater than start.
func (m *Map[K, V]) IteratorFrom(start K) *Iterator[K, V] {
	pos, _ := m.search(start)
	return &Iterator[K, V]{entries: m.entries, pos: pos}
}

// ReverseIterator returns a descending iterator over all entries.
func (m *Map[K, V]) ReverseIterator() *Iterator[K, V] {
	return &Iterator[K, V]{entries: m.entries, pos: len(m.entries) - 1, descend: true}
}

// Done reports whether the iterator has been exhausted.
func (it *Iterator[K, V]) Done() bool {
	if it == nil {
		return true
	}
	if it.descend {
		return it.pos < 0
	}
	return it.pos >= len(it.entries)
}

// Entry returns the entry at the current position.
//
// Calling Entry on an exhausted iterator is a programmer error.
func (it *Iterator[K, V]) Entry() kv.Pair[K, V] {
	assert(!it.Done(), "arraymap iterator read past end")
	return it.entries[it.pos]
}

// Next advances the iterator by one entry.
func (it *Iterator[K, V]) Next() {
	assert(!it.Done(), "arraymap iterator advanced past end")
	if it.descend {
		it.pos--
		return
	}
	it.pos++
}
