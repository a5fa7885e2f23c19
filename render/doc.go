/*
Package render draws arbor trees as text.

Output is line oriented: one line per tree node, indented with
box-drawing characters according to the node's depth. A Format decides
how each line is decorated; the package ships a plain monochrome format
and a colorized one for terminals.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
