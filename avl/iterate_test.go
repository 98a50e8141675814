package avl

import (
	"cmp"
	"testing"

	"github.com/npillmayer/sortedmap/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(it *Iterator[int, int]) []int {
	var keys []int
	for ; !it.Done(); it.Next() {
		keys = append(keys, it.Entry().Key)
	}
	return keys
}

func TestIteratorAscending(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 4)
	assert.Equal(t, []int{1, 3, 4, 5, 8}, collect(tr.Iterator()))
}

func TestIteratorDescending(t *testing.T) {
	tr := intTree(5, 3, 8, 1, 4)
	assert.Equal(t, []int{8, 5, 4, 3, 1}, collect(tr.ReverseIterator()))
}

func TestIteratorFrom(t *testing.T) {
	tr := intTree(1, 3, 5, 7, 9)
	assert.Equal(t, []int{5, 7, 9}, collect(tr.IteratorFrom(5)), "present start key is inclusive")
	assert.Equal(t, []int{5, 7, 9}, collect(tr.IteratorFrom(4)), "absent start key begins at next larger")
	assert.Equal(t, []int{1, 3, 5, 7, 9}, collect(tr.IteratorFrom(0)))
	assert.Nil(t, collect(tr.IteratorFrom(10)))
}

func TestReverseIteratorFrom(t *testing.T) {
	tr := intTree(1, 3, 5, 7, 9)
	assert.Equal(t, []int{5, 3, 1}, collect(tr.ReverseIteratorFrom(5)))
	assert.Equal(t, []int{5, 3, 1}, collect(tr.ReverseIteratorFrom(6)))
	assert.Nil(t, collect(tr.ReverseIteratorFrom(0)))
}

func TestIteratorIsRestartable(t *testing.T) {
	tr := intTree(shuffled(sequence(64), 7)...)
	first := collect(tr.Iterator())
	second := collect(tr.Iterator())
	assert.Equal(t, first, second)
}

func TestIteratorOverEmptyTree(t *testing.T) {
	tr := New[int, int](cmp.Compare[int])
	assert.True(t, tr.Iterator().Done())
	assert.True(t, tr.ReverseIterator().Done())
	assert.True(t, tr.IteratorFrom(1).Done())
}

func TestIteratorPastEndPanics(t *testing.T) {
	tr := intTree(1)
	it := tr.Iterator()
	it.Next()
	require.True(t, it.Done())
	assert.Panics(t, func() { it.Next() })
	assert.Panics(t, func() { it.Entry() })
}

func TestForEachStopsEarly(t *testing.T) {
	tr := intTree(sequence(20)...)
	seen := 0
	tr.ForEach(func(p kv.Pair[int, int]) bool {
		seen++
		return seen < 5
	})
	assert.Equal(t, 5, seen)
}
