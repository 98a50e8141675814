package kv

import "fmt"

// Pair is one ordered (key, value) entry of a sorted map.
//
// Pairs are plain values; the containers never hand out references into
// their internal storage, so holding a Pair never pins a map version.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// P is a convenience constructor for a Pair.
func P[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// String formats the pair as "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
