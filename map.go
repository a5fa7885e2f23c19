package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/arbor/arraytree"
)

// Map returns a tree of the same shape as t, with every value replaced by
// the output of f. A nil f returns the empty tree.
func Map[T comparable, K comparable](t Tree[T], f func(T) K) Tree[K] {
	if f == nil || t.IsEmpty() {
		return Tree[K]{}
	}
	structure, values := t.flat()
	out := arraytree.Map(structure, values, f)
	return fromArrays(out.Structure, out.Values)
}

// FlatMap replaces every node of t by the tree f returns for its value and
// splices the replacements together: a replacement's root takes the node's
// place, the replacement's children come in front of the node's mapped
// children. An empty replacement drops the node, promoting its children.
//
// Node values may repeat among siblings afterwards; use FlatMapDistinct to
// merge them. If dropping the root leaves several top-level trees, FlatMap
// returns the leftmost one; FlatMapForest returns them all.
func FlatMap[T comparable, K comparable](t Tree[T], f func(T) Tree[K]) Tree[K] {
	forest := flatMapForest(t, f, false)
	if len(forest) == 0 {
		return Tree[K]{}
	}
	return forest[0]
}

// FlatMapDistinct is FlatMap with sibling merging: wherever the splicing
// produces equal values among direct siblings, the trees are merged the way
// Distinct insertion merges them. The result is again the leftmost tree if
// the root vanished.
func FlatMapDistinct[T comparable, K comparable](t Tree[T], f func(T) Tree[K]) Tree[K] {
	forest := flatMapForest(t, f, true)
	if len(forest) == 0 {
		return Tree[K]{}
	}
	return forest[0]
}

// FlatMapForest is FlatMap returning every top-level tree that the mapping
// leaves behind, leftmost first. With a surviving root the forest holds a
// single tree.
func FlatMapForest[T comparable, K comparable](t Tree[T], f func(T) Tree[K], mode Mode) []Tree[K] {
	return flatMapForest(t, f, mode == Distinct)
}

func flatMapForest[T comparable, K comparable](t Tree[T], f func(T) Tree[K], distinct bool) []Tree[K] {
	if f == nil || t.IsEmpty() {
		return nil
	}
	structure, values := t.flat()
	mapper := func(value T) arraytree.Subtree[K] {
		return f(value).asSubtree()
	}
	out := arraytree.FlatMap(structure, values, mapper, distinct)
	roots := arraytree.Roots(out.Structure)
	forest := make([]Tree[K], 0, len(roots))
	for _, r := range roots {
		sub := arraytree.Sub(out.Structure, out.Values, r)
		forest = append(forest, fromArrays(sub.Structure, sub.Values))
	}
	return forest
}
