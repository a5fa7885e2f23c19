/*
Package arbor provides immutable multi-way trees of ordered, value-carrying
nodes, with two interchangeable internal representations.

Trees

Multi-way trees (sometimes called rose trees) carry a value per node and an
ordered list of children per node, with no bound on the number of children.
They show up wherever hierarchical data has to be navigated, filtered or
reshaped: document object models, file systems, parsed configuration,
classification schemes, menu structures.

Package arbor stores such trees in one of two forms. The node-linked form is
the textbook one: a node struct holding a value and a slice of child
pointers. It is trivial to construct and to reason about, but every node is a
separate allocation and deep trees chase pointers.

The second form packs a whole tree into two parallel arrays: a values array
in post-order (children before their parent, leftmost child first) and a
structure array holding each node's child count. The arrays fully determine
the tree, the root sits at the highest index, and every navigation question
(size, parent, children, subtree extraction) is answered by index arithmetic
over the child counts. No pointers, one allocation, and subtrees are plain
contiguous array slices.

	Operation      |  node-linked   |  array-encoded
	---------------+----------------+---------------
	Construct node |  O(1)          |   O(n) rebuild
	Navigate       |  O(1) pointer  |   O(subtree)
	Whole-tree walk|  O(n) chasing  |   O(n) linear
	Memory         |  n allocations |   2 arrays

A Tree value starts out in whichever form it was created from and derives the
other form lazily, at most once. All operations on a Tree leave it untouched
and return a new value; any number of readers may share a tree without
locking.

Sibling semantics

Every mutation picks one of two sibling disciplines. Under lax semantics
siblings with equal values may coexist. Under distinct semantics an insert,
update or removal that would place equal values side by side instead merges
the new node into the existing sibling, splicing the new node's children in
front of the sibling's own, and resolving nested collisions the same way.
Distinct trees behave like tries: grafting the branch a→b→c twice yields one
shared path.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where type parameter names hide T.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the arbor module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a node index is outside a tree's
// index range.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrNotATree is flagged whenever an operation would leave more than one
// top-level tree behind.
const ErrNotATree = TreeError("operation leaves a forest, not a tree")

// ErrMalformedPairs is flagged whenever a (child count, value) pair sequence
// does not encode a forest.
const ErrMalformedPairs = TreeError("pair sequence does not encode a forest")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
