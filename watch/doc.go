/*
Package watch broadcasts versions of a sorted map to listeners.

A Feed holds the current version of a map and hands out every newly
published version to all subscribers. Readers never see a half-updated
map: versions are immutable values, so a subscriber can keep using the
version it holds for as long as it likes, unaffected by later
publications.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sortedmap'
func tracer() tracing.Trace {
	return tracing.Select("sortedmap")
}
