/*
Package arraymap implements the sorted-slice representation of an immutable
sorted map.

Entries live in a single slice in strictly ascending key order. Lookup is a
binary search; insert and remove copy the slice with one entry changed,
inserted or omitted. Old versions stay valid because no slice is ever
written to after it has been published. Unlike the tree representation in
package avl, versions of an array map do not share substructure with one
another, which is why the facade only uses this representation for small
entry counts.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package arraymap
