/*
Package treeio reads and writes arbor trees as pair streams.

The pair format is line oriented: one node per line, carrying the node's
number of children and its value, lines ordered children before parents.
Any forest can be written this way and rebuilt in a single pass. Loading
may be done asynchronously, with progress broadcast to subscribers,
while preserving a synchronous `Load` API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package treeio

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
