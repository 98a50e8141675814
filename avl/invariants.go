package avl

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - binary-search-tree key ordering under the injected comparator,
//   - sibling subtree heights differing by at most one,
//   - cached height and size fields consistent with the structure.
//
// This checker is intentionally strict and is meant for use in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: missing comparator", ErrInvalidTree)
	}
	if _, _, err := t.checkNode(t.root); err != nil {
		return err
	}
	return nil
}

func (t *Tree[K, V]) checkNode(n *node[K, V]) (height int, size int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	lh, ls, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rh, rs, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if n.left != nil && t.cmp(n.left.max().key, n.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: left subtree key not less than node key", ErrInvalidTree)
	}
	if n.right != nil && t.cmp(n.key, n.right.min().key) >= 0 {
		return 0, 0, fmt.Errorf("%w: right subtree key not greater than node key", ErrInvalidTree)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d out of range", ErrInvalidTree, bf)
	}
	height = 1 + max(lh, rh)
	size = 1 + ls + rs
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: cached height %d, recomputed %d", ErrInvalidTree, n.height, height)
	}
	if n.size != size {
		return 0, 0, fmt.Errorf("%w: cached size %d, recomputed %d", ErrInvalidTree, n.size, size)
	}
	return height, size, nil
}
