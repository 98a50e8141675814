package sortedmap

import (
	"iter"

	"github.com/npillmayer/sortedmap/kv"
)

// entryIterator is the capability set both representations' iterators
// provide: current entry, advance, exhaustion test.
type entryIterator[K, V any] interface {
	Done() bool
	Entry() kv.Pair[K, V]
	Next()
}

// Iterator walks one map snapshot in key order, independent of the active
// representation.
//
// Iterators are read-only and restartable: taking an iterator never
// mutates the map, and the same map may be iterated any number of times,
// concurrently included, with identical results.
type Iterator[K, V any] struct {
	impl entryIterator[K, V]
}

// Iterator returns an ascending iterator over all entries.
func (m Map[K, V]) Iterator() *Iterator[K, V] {
	if m.tree != nil {
		return &Iterator[K, V]{impl: m.tree.Iterator()}
	}
	if m.array != nil {
		return &Iterator[K, V]{impl: m.array.Iterator()}
	}
	return &Iterator[K, V]{}
}

// IteratorFrom returns an ascending iterator positioned at the first entry
// with a key equal to or greater than start.
func (m Map[K, V]) IteratorFrom(start K) *Iterator[K, V] {
	if m.tree != nil {
		return &Iterator[K, V]{impl: m.tree.IteratorFrom(start)}
	}
	if m.array != nil {
		return &Iterator[K, V]{impl: m.array.IteratorFrom(start)}
	}
	return &Iterator[K, V]{}
}

// ReverseIterator returns a descending iterator over all entries.
func (m Map[K, V]) ReverseIterator() *Iterator[K, V] {
	if m.tree != nil {
		return &Iterator[K, V]{impl: m.tree.ReverseIterator()}
	}
	if m.array != nil {
		return &Iterator[K, V]{impl: m.array.ReverseIterator()}
	}
	return &Iterator[K, V]{}
}

// Done reports whether the iterator has been exhausted.
func (it *Iterator[K, V]) Done() bool {
	return it == nil || it.impl == nil || it.impl.Done()
}

// Entry returns the entry at the current position.
//
// Calling Entry on an exhausted iterator is a programmer error.
func (it *Iterator[K, V]) Entry() kv.Pair[K, V] {
	assert(!it.Done(), "sortedmap iterator read past end")
	return it.impl.Entry()
}

// Next advances the iterator by one entry.
func (it *Iterator[K, V]) Next() {
	assert(!it.Done(), "sortedmap iterator advanced past end")
	it.impl.Next()
}

// Range returns an ascending iterator over all entries, for use with
// range-over-func. The returned sequence is restartable.
func (m Map[K, V]) Range() iter.Seq2[K, V] {
	return rangeOver(m.Iterator)
}

// RangeFrom returns an ascending iterator starting at the first entry with
// a key equal to or greater than start.
func (m Map[K, V]) RangeFrom(start K) iter.Seq2[K, V] {
	return rangeOver(func() *Iterator[K, V] { return m.IteratorFrom(start) })
}

// RangeReverse returns a descending iterator over all entries.
func (m Map[K, V]) RangeReverse() iter.Seq2[K, V] {
	return rangeOver(m.ReverseIterator)
}

func rangeOver[K, V any](iterate func() *Iterator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := iterate(); !it.Done(); it.Next() {
			e := it.Entry()
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
