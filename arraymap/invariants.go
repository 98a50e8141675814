package arraymap

import "fmt"

// Check validates the structural invariants of the map.
//
// This checker is intentionally strict and is meant for use in tests.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("arraymap check: nil map")
	}
	if m.cmp == nil {
		return fmt.Errorf("arraymap check: missing comparator")
	}
	for i := 1; i < len(m.entries); i++ {
		if m.cmp(m.entries[i-1].Key, m.entries[i].Key) >= 0 {
			return fmt.Errorf("arraymap check: keys not strictly increasing at position %d", i)
		}
	}
	return nil
}
