package sortedmap

// Equality of two maps is structural equality of their ordered entry
// sequences; the active representation does not matter, nor does the
// history of operations that produced the maps.

// Equal reports whether m1 and m2 hold the same ordered entries. Keys are
// compared with m1's comparator, values with ==.
func Equal[K any, V comparable](m1, m2 Map[K, V]) bool {
	return EqualFunc(m1, m2, func(a, b V) bool { return a == b })
}

// EqualFunc reports whether m1 and m2 hold the same ordered entries, with
// values compared by eq. Keys are compared with m1's comparator; both maps
// are expected to be ordered by the same comparator.
func EqualFunc[K, V any](m1, m2 Map[K, V], eq func(a, b V) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	if m1.Len() == 0 {
		return true
	}
	assert(eq != nil, "EqualFunc requires a value equality function")
	cmp := m1.cmp
	assert(cmp != nil, "EqualFunc on non-empty map requires a comparator")
	it1, it2 := m1.Iterator(), m2.Iterator()
	for !it1.Done() {
		e1, e2 := it1.Entry(), it2.Entry()
		if cmp(e1.Key, e2.Key) != 0 || !eq(e1.Value, e2.Value) {
			return false
		}
		it1.Next()
		it2.Next()
	}
	return true
}
