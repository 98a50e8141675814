/*
Package sortedmap implements an immutable, persistent sorted map: an
ordered key/value container where every insert or remove returns a new map
value and leaves every previously obtained map fully valid and unchanged.

Persistent maps

A local-first data cache needs many logically distinct snapshots of
ordered state to coexist cheaply: per-transaction views, per-listener
index views, and so on. Copying a whole ordered collection per snapshot
is unacceptable, while in-place mutation would corrupt concurrently held
views. A persistent map resolves this with structural sharing: an update
reconstructs only the O(log n) path it touches and shares everything else
with the previous version. Retaining a snapshot is free.

	Operation    |  sorted map    |  built-in map
	-------------+----------------+--------------
	Find         |  O(log n)      |  O(1)
	Insert       |  O(log n)      |  O(n) to snapshot
	Remove       |  O(log n)      |  O(n) to snapshot
	Snapshot     |  O(1)          |  O(n)
	Iterate      |  O(n), ordered |  O(n), unordered

Two representations implement the same contract. Small maps live in a
sorted array (package arraymap), where binary search plus a short copy
beats any tree. Once a map outgrows MaxArraySize entries, the facade
migrates it to a persistent height-balanced tree (package avl) by bulk
loading the sorted entries in O(n). The representation switch is
transparent to clients.

Maps are created with a comparator and are unusable as bare zero values:

	m := sortedmap.NewOrdered[int, string]()
	m2 := m.Insert(5, "five")        // m still empty
	v, ok := m2.Find(5)              // "five", true

Because all structure is immutable, any number of goroutines may read the
same map value concurrently without synchronization, and a writer never
disturbs readers: it only produces a new map value that the writer alone
initially holds.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sortedmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sortedmap'
func tracer() tracing.Trace {
	return tracing.Select("sortedmap")
}
