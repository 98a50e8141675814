package avl

import "github.com/npillmayer/sortedmap/kv"

// node is one immutable subtree of a persistent height-balanced tree.
//
// A node never changes after construction. Updates reconstruct the path
// from the root to the changed position and share every untouched subtree
// by reference with the previous tree version. The height field bounds the
// tree to O(log n) levels; the size field caches the entry count of the
// subtree for O(1) Len and positional routing.
type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	height int
	size   int
}

// mkNode constructs a node over the given children, computing the cached
// height and size. This is the only place nodes are created.
func mkNode[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		left:   left,
		right:  right,
		height: 1 + max(left.h(), right.h()),
		size:   1 + left.count() + right.count(),
	}
}

// h returns the height of a possibly-nil subtree, where nil has height 0.
func (n *node[K, V]) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

// count returns the entry count of a possibly-nil subtree.
func (n *node[K, V]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

// pair returns the node's entry as a kv.Pair value.
func (n *node[K, V]) pair() kv.Pair[K, V] {
	return kv.Pair[K, V]{Key: n.key, Value: n.value}
}

// min returns the node holding the smallest key of the subtree.
func (n *node[K, V]) min() *node[K, V] {
	assertf(n != nil, "min called on empty subtree")
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the node holding the largest key of the subtree.
func (n *node[K, V]) max() *node[K, V] {
	assertf(n != nil, "max called on empty subtree")
	for n.right != nil {
		n = n.right
	}
	return n
}
