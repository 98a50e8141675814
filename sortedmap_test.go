package sortedmap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sortedmap/kv"
)

func TestEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, string]()
	if m.Len() != 0 || !m.IsEmpty() {
		t.Fatalf("expected new map to be empty, Len = %d", m.Len())
	}
	if _, found := m.Find(1); found {
		t.Fatalf("expected Find on empty map to report absence")
	}
	if m.Contains(1) {
		t.Fatalf("expected Contains on empty map to be false")
	}
}

// The walk-through scenario: insert [5 3 8 1 4], check order and size,
// remove 3, check that the older version is unaffected.
func TestInsertRemoveScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		m = m.Insert(k, k)
	}
	if m.Len() != 5 {
		t.Fatalf("expected size 5, got %d", m.Len())
	}
	want := []kv.Pair[int, int]{
		{Key: 1, Value: 1}, {Key: 3, Value: 3}, {Key: 4, Value: 4},
		{Key: 5, Value: 5}, {Key: 8, Value: 8},
	}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	m2 := m.Remove(3)
	if _, found := m2.Find(3); found {
		t.Fatalf("expected 3 to be gone after remove")
	}
	if v, found := m2.Find(5); !found || v != 5 {
		t.Fatalf("expected 5 to survive remove of 3")
	}
	// the pre-removal map is still fully valid
	if m.Len() != 5 {
		t.Fatalf("pre-removal map lost entries, Len = %d", m.Len())
	}
	if v, found := m.Find(3); !found || v != 3 {
		t.Fatalf("pre-removal map lost key 3")
	}
}

func TestMigrationToTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, int]()
	migrated := false
	for i := 0; i < 1000; i++ {
		m = m.Insert(i, i)
		if m.usesTree() {
			migrated = true
		}
	}
	if !migrated {
		t.Fatalf("expected the map to migrate to the tree representation")
	}
	if m.Len() != 1000 {
		t.Fatalf("expected 1000 entries, got %d", m.Len())
	}
	next := 0
	for k, v := range m.Range() {
		if k != next || v != next {
			t.Fatalf("iteration out of order at %d: got (%d, %d)", next, k, v)
		}
		next++
	}
	if next != 1000 {
		t.Fatalf("iteration yielded %d entries", next)
	}
}

func TestMigrationThreshold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, int]()
	for i := 0; i < MaxArraySize; i++ {
		m = m.Insert(i, i)
	}
	if m.usesTree() {
		t.Fatalf("map migrated below the threshold, at %d entries", m.Len())
	}
	m = m.Insert(MaxArraySize, MaxArraySize)
	if !m.usesTree() {
		t.Fatalf("map did not migrate past the threshold, at %d entries", m.Len())
	}
}

func TestPersistenceAcrossMigration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, int]()
	for i := 0; i < MaxArraySize; i++ {
		m = m.Insert(i, i)
	}
	before := m.Entries()
	grown := m.Insert(999, 999) // crosses the threshold
	if !grown.usesTree() || m.usesTree() {
		t.Fatalf("expected only the new version to be tree-backed")
	}
	if diff := cmp.Diff(before, m.Entries()); diff != "" {
		t.Fatalf("array-backed version changed by migration (-want +got):\n%s", diff)
	}
	if v, found := grown.Find(999); !found || v != 999 {
		t.Fatalf("migrated version lost the triggering entry")
	}
}

func TestRemoveKeepsTreeRepresentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, int]()
	for i := 0; i < 2*MaxArraySize; i++ {
		m = m.Insert(i, i)
	}
	for i := 0; i < 2*MaxArraySize-1; i++ {
		m = m.Remove(i)
	}
	if !m.usesTree() {
		t.Fatalf("expected tree representation to be sticky on shrink")
	}
	if m.Len() != 1 || !m.Contains(2*MaxArraySize-1) {
		t.Fatalf("unexpected content after shrinking, Len = %d", m.Len())
	}
}

func TestRangeFromAndReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[int, string]()
	for _, k := range []int{1, 3, 5, 7} {
		m = m.Insert(k, strings.Repeat("x", k))
	}
	var keys []int
	for k := range m.RangeFrom(4) {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]int{5, 7}, keys); diff != "" {
		t.Fatalf("unexpected RangeFrom keys (-want +got):\n%s", diff)
	}
	keys = keys[:0]
	for k := range m.RangeReverse() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]int{7, 5, 3, 1}, keys); diff != "" {
		t.Fatalf("unexpected RangeReverse keys (-want +got):\n%s", diff)
	}
}

func TestIteratorFacade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	m := NewOrdered[string, int]()
	m = m.Insert("b", 2).Insert("a", 1).Insert("c", 3)
	it := m.IteratorFrom("b")
	if it.Done() || it.Entry().Key != "b" {
		t.Fatalf("IteratorFrom should start at b")
	}
	it.Next()
	if it.Done() || it.Entry().Key != "c" {
		t.Fatalf("expected c after b")
	}
	it.Next()
	if !it.Done() {
		t.Fatalf("expected iterator to be done")
	}
}

func TestStringKeysWithCustomComparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sortedmap")
	defer teardown()

	// case-insensitive ordering
	m := New[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	m = m.Insert("Bravo", 2).Insert("alpha", 1).Insert("BRAVO", 20)
	if m.Len() != 2 {
		t.Fatalf("comparator-equal keys must collapse, Len = %d", m.Len())
	}
	if v, _ := m.Find("bravo"); v != 20 {
		t.Fatalf("expected last insert to win under comparator equality, got %d", v)
	}
}
