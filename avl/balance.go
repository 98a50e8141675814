package avl

// Rebalancing primitives. All of them are functional: they allocate the
// nodes they change and leave their inputs untouched, so subtrees shared
// with older tree versions are never written to.

// balanceOf returns the height difference left minus right.
func balanceOf[K, V any](n *node[K, V]) int {
	assertf(n != nil, "balanceOf called with nil node")
	return n.left.h() - n.right.h()
}

// rotateRight lifts the left child to the subtree root.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	assertf(n != nil && n.left != nil, "rotateRight requires a left child")
	l := n.left
	return mkNode(l.key, l.value, l.left, mkNode(n.key, n.value, l.right, n.right))
}

// rotateLeft lifts the right child to the subtree root.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	assertf(n != nil && n.right != nil, "rotateLeft requires a right child")
	r := n.right
	return mkNode(r.key, r.value, mkNode(n.key, n.value, n.left, r.left), r.right)
}

// rebalance restores the height invariant at n after a single insert or
// remove below it. Children of n are already balanced; their heights may
// differ by at most 2.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	assertf(n != nil, "rebalance called with nil node")
	bf := balanceOf(n)
	assertf(bf >= -2 && bf <= 2, "rebalance called on subtree out of repair range")
	switch {
	case bf > 1:
		if balanceOf(n.left) < 0 {
			n = mkNode(n.key, n.value, rotateLeft(n.left), n.right)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceOf(n.right) > 0 {
			n = mkNode(n.key, n.value, n.left, rotateRight(n.right))
		}
		return rotateLeft(n)
	}
	return n
}
