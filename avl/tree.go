package avl

import (
	"github.com/npillmayer/sortedmap/kv"
)

// Tree is a persistent height-balanced binary search tree.
//
// Every mutating operation returns a new Tree and leaves the receiver
// fully intact: the path from the root to the changed position is
// reconstructed, every subtree off that path is shared by reference
// between the old and the new tree. Any number of goroutines may read
// from the same tree concurrently without synchronization.
//
// The comparator is injected at creation and fixed for the lifetime of the
// tree and of all trees derived from it. It must be a strict total order
// and free of side effects.
type Tree[K, V any] struct {
	cmp  func(a, b K) int
	root *node[K, V]
}

// New creates an empty tree with the given comparator.
func New[K, V any](cmp func(a, b K) int) *Tree[K, V] {
	assertf(cmp != nil, "avl.New requires a comparator")
	return &Tree[K, V]{cmp: cmp}
}

// Comparator returns the comparator the tree was created with.
func (t *Tree[K, V]) Comparator() func(a, b K) int {
	return t.cmp
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries, using cached subtree sizes.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.count()
}

// Height returns the tree height, where 0 means empty and 1 means a
// single-node tree.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.h()
}

// Find returns the value stored for key, if present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, found := t.Find(key)
	return found
}

// Min returns the entry with the smallest key, if any.
func (t *Tree[K, V]) Min() (kv.Pair[K, V], bool) {
	if t.IsEmpty() {
		return kv.Pair[K, V]{}, false
	}
	return t.root.min().pair(), true
}

// Max returns the entry with the largest key, if any.
func (t *Tree[K, V]) Max() (kv.Pair[K, V], bool) {
	if t.IsEmpty() {
		return kv.Pair[K, V]{}, false
	}
	return t.root.max().pair(), true
}

// At returns the entry at position i in key order, routed through cached
// subtree sizes.
func (t *Tree[K, V]) At(i int) (kv.Pair[K, V], error) {
	if t == nil || i < 0 || i >= t.Len() {
		return kv.Pair[K, V]{}, ErrIndexOutOfBounds
	}
	n := t.root
	for {
		assertf(n != nil, "At routing ran off the tree")
		leftCount := n.left.count()
		switch {
		case i < leftCount:
			n = n.left
		case i > leftCount:
			i -= leftCount + 1
			n = n.right
		default:
			return n.pair(), nil
		}
	}
}

// Insert returns a new tree with key bound to value. The receiver is left
// unchanged. An existing binding for key is replaced in the new tree.
func (t *Tree[K, V]) Insert(key K, value V) *Tree[K, V] {
	assertf(t != nil && t.cmp != nil, "Insert called on uninitialized tree")
	return &Tree[K, V]{cmp: t.cmp, root: t.insert(t.root, key, value)}
}

func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return mkNode(key, value, nil, nil)
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		return rebalance(mkNode(n.key, n.value, t.insert(n.left, key, value), n.right))
	case c > 0:
		return rebalance(mkNode(n.key, n.value, n.left, t.insert(n.right, key, value)))
	}
	// Same key: replace the value, children and shape stay as they are.
	return mkNode(key, value, n.left, n.right)
}

// Remove returns a tree without a binding for key. If key is absent, the
// receiver itself is returned, without any allocation.
func (t *Tree[K, V]) Remove(key K) *Tree[K, V] {
	assertf(t != nil && t.cmp != nil, "Remove called on uninitialized tree")
	if !t.Contains(key) {
		return t
	}
	return &Tree[K, V]{cmp: t.cmp, root: t.remove(t.root, key)}
}

// remove deletes key from subtree n. The key is known to be present.
func (t *Tree[K, V]) remove(n *node[K, V], key K) *node[K, V] {
	assertf(n != nil, "remove descended past a leaf")
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		return rebalance(mkNode(n.key, n.value, t.remove(n.left, key), n.right))
	case c > 0:
		return rebalance(mkNode(n.key, n.value, n.left, t.remove(n.right, key)))
	}
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	// Two children: pull up the in-order successor.
	s := n.right.min()
	return rebalance(mkNode(s.key, s.value, n.left, removeMin(n.right)))
}

// removeMin deletes the smallest entry of subtree n.
func removeMin[K, V any](n *node[K, V]) *node[K, V] {
	assertf(n != nil, "removeMin called on empty subtree")
	if n.left == nil {
		return n.right
	}
	return rebalance(mkNode(n.key, n.value, removeMin(n.left), n.right))
}

// Entries returns the ordered entry sequence as a fresh slice.
func (t *Tree[K, V]) Entries() []kv.Pair[K, V] {
	if t.IsEmpty() {
		return nil
	}
	entries := make([]kv.Pair[K, V], 0, t.Len())
	t.ForEach(func(p kv.Pair[K, V]) bool {
		entries = append(entries, p)
		return true
	})
	return entries
}

// FromSorted creates a tree over entries, which must be in strictly
// ascending key order under cmp. The tree is built perfectly balanced in
// O(n), without going through n single inserts.
func FromSorted[K, V any](cmp func(a, b K) int, entries []kv.Pair[K, V]) *Tree[K, V] {
	assertf(cmp != nil, "avl.FromSorted requires a comparator")
	return &Tree[K, V]{cmp: cmp, root: buildRange(entries)}
}

func buildRange[K, V any](entries []kv.Pair[K, V]) *node[K, V] {
	if len(entries) == 0 {
		return nil
	}
	mid := len(entries) / 2
	e := entries[mid]
	return mkNode(e.Key, e.Value, buildRange(entries[:mid]), buildRange(entries[mid+1:]))
}
