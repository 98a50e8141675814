package avl

import "github.com/npillmayer/sortedmap/kv"

// Iterator walks the entries of one tree snapshot in key order.
//
// The iterator keeps an explicit stack of ancestors instead of parent
// pointers, so nodes stay free of back references and remain shareable
// between tree versions. Stack depth is bounded by the balance invariant.
// Iterators are read-only: any number of them may walk the same tree
// concurrently, with identical results.
type Iterator[K, V any] struct {
	stack   []*node[K, V]
	descend bool
}

// Iterator returns an ascending iterator over all entries.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if t != nil {
		it.pushLeftSpine(t.root)
	}
	return it
}

// IteratorFrom returns an ascending iterator positioned at the first entry
// with a key equal to or greater than start.
func (t *Tree[K, V]) IteratorFrom(start K) *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if t == nil {
		return it
	}
	n := t.root
	for n != nil {
		c := t.cmp(start, n.key)
		switch {
		case c < 0:
			it.stack = append(it.stack, n)
			n = n.left
		case c > 0:
			n = n.right
		default:
			it.stack = append(it.stack, n)
			return it
		}
	}
	return it
}

// ReverseIterator returns a descending iterator over all entries.
func (t *Tree[K, V]) ReverseIterator() *Iterator[K, V] {
	it := &Iterator[K, V]{descend: true}
	if t != nil {
		it.pushRightSpine(t.root)
	}
	return it
}

// ReverseIteratorFrom returns a descending iterator positioned at the last
// entry with a key equal to or less than start.
func (t *Tree[K, V]) ReverseIteratorFrom(start K) *Iterator[K, V] {
	it := &Iterator[K, V]{descend: true}
	if t == nil {
		return it
	}
	n := t.root
	for n != nil {
		c := t.cmp(start, n.key)
		switch {
		case c > 0:
			it.stack = append(it.stack, n)
			n = n.right
		case c < 0:
			n = n.left
		default:
			it.stack = append(it.stack, n)
			return it
		}
	}
	return it
}

func (it *Iterator[K, V]) pushLeftSpine(n *node[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

func (it *Iterator[K, V]) pushRightSpine(n *node[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.right
	}
}

// Done reports whether the iterator has been exhausted.
func (it *Iterator[K, V]) Done() bool {
	return it == nil || len(it.stack) == 0
}

// Entry returns the entry at the current position.
//
// Calling Entry on an exhausted iterator is a programmer error.
func (it *Iterator[K, V]) Entry() kv.Pair[K, V] {
	assertf(!it.Done(), "avl iterator read past end")
	return it.stack[len(it.stack)-1].pair()
}

// Next advances the iterator by one entry.
func (it *Iterator[K, V]) Next() {
	assertf(!it.Done(), "avl iterator advanced past end")
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.descend {
		it.pushRightSpine(n.left)
		return
	}
	it.pushLeftSpine(n.right)
}

// ForEach walks all entries in ascending key order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[K, V]) ForEach(fn func(p kv.Pair[K, V]) bool) {
	if t == nil || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode[K, V any](n *node[K, V], fn func(p kv.Pair[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if !forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.pair()) {
		return false
	}
	return forEachNode(n.right, fn)
}
