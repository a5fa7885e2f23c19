package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/arbor/arraytree"
)

// Pairs streams the tree's encoding as (child count, value) pairs, in
// array order. Children precede their parent, so the stream can be
// replayed by FromPairs or by a Builder without lookahead. An empty tree
// yields nothing.
func (t Tree[T]) Pairs() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		structure, values := t.flat()
		for i, n := range structure {
			if !yield(n, values[i]) {
				return
			}
		}
	}
}

// FromPairs rebuilds trees from a stream of (child count, value) pairs as
// produced by Pairs. The stream may hold several top-level trees; they are
// returned leftmost first. An empty stream yields an empty forest.
//
// Every pair must find its declared children among the preceding pairs, or
// the stream does not encode a forest and FromPairs returns
// ErrMalformedPairs.
func FromPairs[T comparable](pairs iter.Seq2[int, T]) ([]Tree[T], error) {
	var structure []int
	var values []T
	available := 0
	for n, value := range pairs {
		if n < 0 || n > available {
			return nil, ErrMalformedPairs
		}
		available -= n - 1
		structure = append(structure, n)
		values = append(values, value)
	}
	roots := arraytree.Roots(structure)
	forest := make([]Tree[T], 0, len(roots))
	for _, r := range roots {
		sub := arraytree.Sub(structure, values, r)
		forest = append(forest, fromArrays(sub.Structure, sub.Values))
	}
	return forest, nil
}
