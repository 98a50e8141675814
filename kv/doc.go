/*
Package kv holds the entry vocabulary shared by the sorted map
representations: an ordered (key, value) pair.

The package is deliberately tiny. Both container representations, the
iterators and the builder traffic in kv.Pair values, keeping their public
signatures free of per-package entry types.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package kv
