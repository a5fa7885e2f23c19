/*
Package arraytree implements multi-way trees encoded in two parallel arrays.

The encoding is post-order: a tree of n nodes is stored as a structure array
holding the child count of every node and a values array holding the node
payloads, both indexed 0..n-1. The children of a node occupy the positions
immediately preceding it, each child being itself the root of a complete
contiguous subtree, leftmost child first. The root of the whole tree is
always at index n-1.

	    a          index:      0  1  2  3  4  5  6
	   / \         value:      c  b  f  e  g  d  a
	  b   d        structure:  0  1  0  1  0  2  2
	  |  / \
	  c  e  g
	     |
	     f

A zero-length array pair encodes the empty tree. Concatenating encodings
yields a forest: the last index is the root of the rightmost tree, and the
remaining trees are found by repeatedly skipping whole subtree ranges.

All navigation works by index arithmetic on the structure array alone; the
values array is only consulted where payloads matter (selection, merging).
Every algorithm in this package is iterative, with explicit stacks and
queues, so arbitrarily deep trees cannot exhaust call-stack space.

Functions in this package trust their input encodings. Violations of the
encoding invariants detected during index arithmetic cause a panic; use
Check and CheckTree to validate untrusted arrays first.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arraytree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
