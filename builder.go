package sortedmap

import (
	"slices"

	"github.com/npillmayer/sortedmap/arraymap"
	"github.com/npillmayer/sortedmap/avl"
	"github.com/npillmayer/sortedmap/kv"
)

// Builder incrementally stages entries and finalizes them into a Map.
//
// Staging is cheap: entries are collected unordered and the map is
// materialized only when Map() is called, sorting once and bulk-loading
// the representation appropriate for the final size. Building a large map
// this way costs O(n log n) for the sort plus O(n) for the load, instead
// of n persistent inserts with their path copies.
//
// Staging the same key more than once is allowed; the last staged value
// wins.
type Builder[K, V any] struct {
	cmp    func(a, b K) int
	staged []kv.Pair[K, V]

	done  bool
	dirty bool
	built Map[K, V]
}

// NewBuilder creates a builder for a map ordered by cmp.
func NewBuilder[K, V any](cmp func(a, b K) int) *Builder[K, V] {
	assert(cmp != nil, "sortedmap.NewBuilder requires a comparator")
	return &Builder[K, V]{cmp: cmp, built: New[K, V](cmp)}
}

// Put stages one entry.
//
// It is illegal to stage entries after Map has been called; Reset re-arms
// the builder.
func (b *Builder[K, V]) Put(key K, value V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrMapCompleted
	}
	b.staged = append(b.staged, kv.Pair[K, V]{Key: key, Value: value})
	b.dirty = true
	return nil
}

// Map returns the map built from all staged entries.
//
// Map may be called multiple times; the map is materialized once.
func (b *Builder[K, V]) Map() Map[K, V] {
	if b == nil {
		return Map[K, V]{}
	}
	if b.dirty {
		b.built = b.buildMap()
		b.dirty = false
	}
	b.done = true
	return b.built
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[K, V]) Reset() {
	b.staged = nil
	b.done = false
	b.dirty = false
	b.built = New[K, V](b.cmp)
}

func (b *Builder[K, V]) buildMap() Map[K, V] {
	entries := append([]kv.Pair[K, V](nil), b.staged...)
	slices.SortStableFunc(entries, func(x, y kv.Pair[K, V]) int {
		return b.cmp(x.Key, y.Key)
	})
	// Stable sort keeps staging order among equal keys; keep the last of
	// each run.
	deduped := entries[:0]
	for i, e := range entries {
		if i+1 < len(entries) && b.cmp(e.Key, entries[i+1].Key) == 0 {
			continue
		}
		deduped = append(deduped, e)
	}
	tracer().Debugf("map builder: %d staged entries, %d distinct keys", len(b.staged), len(deduped))
	if len(deduped) > MaxArraySize {
		return Map[K, V]{cmp: b.cmp, tree: avl.FromSorted(b.cmp, deduped)}
	}
	return Map[K, V]{cmp: b.cmp, array: arraymap.FromSorted(b.cmp, deduped)}
}
