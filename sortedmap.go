package sortedmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	stdcmp "cmp"

	"github.com/npillmayer/sortedmap/arraymap"
	"github.com/npillmayer/sortedmap/avl"
	"github.com/npillmayer/sortedmap/kv"
)

// MaxArraySize is the entry count above which a map switches from the
// sorted-array representation to the balanced-tree representation.
//
// The constant is an efficiency tuning knob, not a correctness one. Values
// in the tens work well: below that, the copying array is both smaller and
// faster than a tree of the same size.
const MaxArraySize = 25

// Map is an immutable, persistent sorted map.
//
// A Map value wraps whichever representation currently fits its size: a
// sorted array for small maps, a persistent balanced tree beyond
// MaxArraySize entries. Insert and Remove return a new Map and never touch
// the receiver; all previously obtained Map values stay valid, sharing
// unchanged structure where the representation supports it.
//
// The zero value of Map carries no comparator and supports only read
// operations (which report an empty map); create usable maps with New or
// NewOrdered.
type Map[K, V any] struct {
	cmp   func(a, b K) int
	array *arraymap.Map[K, V]
	tree  *avl.Tree[K, V]
}

// New creates an empty sorted map ordered by cmp.
//
// The comparator must implement a strict total order, must be free of side
// effects, and stays fixed for the lifetime of the map and of every map
// derived from it.
func New[K, V any](cmp func(a, b K) int) Map[K, V] {
	assert(cmp != nil, "sortedmap.New requires a comparator")
	return Map[K, V]{cmp: cmp, array: arraymap.New[K, V](cmp)}
}

// NewOrdered creates an empty sorted map over a naturally ordered key
// type, using the standard library comparison.
func NewOrdered[K stdcmp.Ordered, V any]() Map[K, V] {
	return New[K, V](stdcmp.Compare[K])
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	if m.tree != nil {
		return m.tree.Len()
	}
	return m.array.Len()
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Find returns the value stored for key, if present. A missing key is a
// normal outcome, not an error.
func (m Map[K, V]) Find(key K) (V, bool) {
	if m.tree != nil {
		return m.tree.Find(key)
	}
	if m.array != nil {
		return m.array.Find(key)
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m Map[K, V]) Contains(key K) bool {
	_, found := m.Find(key)
	return found
}

// Min returns the entry with the smallest key, if any.
func (m Map[K, V]) Min() (kv.Pair[K, V], bool) {
	if m.tree != nil {
		return m.tree.Min()
	}
	if m.array != nil {
		return m.array.Min()
	}
	return kv.Pair[K, V]{}, false
}

// Max returns the entry with the largest key, if any.
func (m Map[K, V]) Max() (kv.Pair[K, V], bool) {
	if m.tree != nil {
		return m.tree.Max()
	}
	if m.array != nil {
		return m.array.Max()
	}
	return kv.Pair[K, V]{}, false
}

// Insert returns a new map with key bound to value; an existing binding
// for key is replaced. The receiver is left unchanged.
//
// If the insert pushes an array-backed map past MaxArraySize, the new map
// is tree-backed: the sorted entries are bulk-loaded into a perfectly
// balanced tree in O(n).
func (m Map[K, V]) Insert(key K, value V) Map[K, V] {
	assert(m.cmp != nil, "sorted map used before New")
	if m.tree != nil {
		return Map[K, V]{cmp: m.cmp, tree: m.tree.Insert(key, value)}
	}
	array := m.array.Insert(key, value)
	if array.Len() > MaxArraySize {
		tracer().Debugf("sorted map outgrew array representation (%d entries), migrating to tree", array.Len())
		return Map[K, V]{cmp: m.cmp, tree: avl.FromSorted(m.cmp, array.Entries())}
	}
	return Map[K, V]{cmp: m.cmp, array: array}
}

// Remove returns a map without a binding for key. Removing an absent key
// returns a map backed by the receiver's unchanged representation.
//
// A tree-backed map stays tree-backed even when it shrinks below
// MaxArraySize; shrinking back to the array representation would only be
// an efficiency refinement and would cost allocation churn around the
// threshold.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	assert(m.cmp != nil, "sorted map used before New")
	if m.tree != nil {
		return Map[K, V]{cmp: m.cmp, tree: m.tree.Remove(key)}
	}
	return Map[K, V]{cmp: m.cmp, array: m.array.Remove(key)}
}

// Entries returns the ordered entry sequence as a fresh slice.
func (m Map[K, V]) Entries() []kv.Pair[K, V] {
	if m.tree != nil {
		return m.tree.Entries()
	}
	if m.array != nil {
		return m.array.Entries()
	}
	return nil
}

// Comparator returns the comparator the map was created with, or nil for
// the zero Map.
func (m Map[K, V]) Comparator() func(a, b K) int {
	return m.cmp
}

// usesTree reports whether the map currently uses the tree representation.
func (m Map[K, V]) usesTree() bool {
	return m.tree != nil
}
