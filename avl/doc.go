/*
Package avl implements the tree representation of an immutable sorted map:
a persistent height-balanced binary search tree.

Nodes are immutable. An insert or remove reconstructs only the path from
the root to the changed position, including any node touched by a
rebalancing rotation, and shares every sibling subtree by reference with
the previous tree version. This structural sharing is what makes holding
many snapshots cheap: a new version costs O(log n) nodes, an old version
costs nothing to keep. Reclamation of unshared nodes is left to the
garbage collector, which implements exactly the contract needed here: a
node lives as long as any tree version still references it.

Each node carries its height and its subtree entry count. The height
difference between siblings is kept within one, bounding the tree to
O(log n) levels; the counts give O(1) Len and positional access.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package avl
