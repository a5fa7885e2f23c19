package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"math"

	"github.com/npillmayer/arbor/arraytree"
)

// Order selects a traversal order for iteration.
type Order int8

const (
	// DepthFirst visits a parent before its children and exhausts each
	// child subtree before moving to the next sibling.
	DepthFirst Order = iota
	// BreadthFirst visits the tree level by level, siblings left to right.
	BreadthFirst
)

// Values returns a lazy iterator over all values of the tree, top-down in
// the given order. Consumers may stop at any point; unvisited subtrees are
// never touched.
func (t Tree[T]) Values(order Order) iter.Seq[T] {
	return t.ValuesWithFilter(order, nil)
}

// ValuesWithFilter is Values restricted to values matching pred. A nil
// pred matches everything. Children of non-matching nodes are still
// visited.
func (t Tree[T]) ValuesWithFilter(order Order, pred func(T) bool) iter.Seq[T] {
	return t.ValuesWithLimit(order, pred, math.MaxInt)
}

// ValuesWithLimit is ValuesWithFilter bounded to maxDepth tree levels. A
// maxDepth of 0 yields nothing, 1 yields at most the root. Depth is counted
// in visited levels, whether or not the nodes on the way pass the filter.
func (t Tree[T]) ValuesWithLimit(order Order, pred func(T) bool, maxDepth int) iter.Seq[T] {
	return func(yield func(T) bool) {
		structure, values := t.flat()
		if len(structure) == 0 {
			return
		}
		root := len(structure) - 1
		for i := range arraytree.WalkWithLimit(structure, root, order == DepthFirst, maxDepth) {
			if pred != nil && !pred(values[i]) {
				continue
			}
			if !yield(values[i]) {
				return
			}
		}
	}
}

// Level describes one node during a level-aware walk: its depth (1 for the
// root), its value, and whether it acts as a leaf under the current filter
// and depth bound, meaning no descendant within the bound passes the
// filter.
type Level[T comparable] struct {
	Depth int
	Value T
	Leaf  bool
}

// Levels returns a lazy depth-first iterator over (depth, value, leaf)
// descriptors of all nodes passing pred, bounded to maxDepth levels. It
// feeds level-aware rendering, where a caller must know whether anything
// below a node will still be printed.
func (t Tree[T]) Levels(pred func(T) bool, maxDepth int) iter.Seq[Level[T]] {
	return func(yield func(Level[T]) bool) {
		structure, values := t.flat()
		if len(structure) == 0 {
			return
		}
		root := len(structure) - 1
		for i, depth := range arraytree.WalkWithLimit(structure, root, true, maxDepth) {
			if pred != nil && !pred(values[i]) {
				continue
			}
			level := Level[T]{
				Depth: depth,
				Value: values[i],
				Leaf:  !arraytree.HasMatchBelow(structure, values, i, maxDepth-depth, pred),
			}
			if !yield(level) {
				return
			}
		}
	}
}

// Branches returns a lazy iterator over all root-to-leaf value paths,
// leftmost branch first. Each yielded slice is a fresh copy.
func (t Tree[T]) Branches() iter.Seq[[]T] {
	return t.BranchesWithLimit(nil, math.MaxInt)
}

// BranchesWithFilter is Branches restricted to branches matching pred,
// which sees the whole branch at once.
func (t Tree[T]) BranchesWithFilter(pred func([]T) bool) iter.Seq[[]T] {
	return t.BranchesWithLimit(pred, math.MaxInt)
}

// BranchesWithLimit is BranchesWithFilter with branches cut off after
// maxDepth values; a cut-off node counts as the end of its branch.
func (t Tree[T]) BranchesWithLimit(pred func([]T) bool, maxDepth int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		structure, values := t.flat()
		if len(structure) == 0 {
			return
		}
		root := len(structure) - 1
		for branch := range arraytree.Branches(structure, values, root, maxDepth, pred) {
			if !yield(branch) {
				return
			}
		}
	}
}

// CountBranches returns the number of root-to-leaf paths matching pred
// without materializing them. A nil pred counts all branches, which equals
// Width.
func (t Tree[T]) CountBranches(pred func([]T) bool) int {
	structure, values := t.flat()
	if len(structure) == 0 {
		return 0
	}
	return arraytree.CountBranches(structure, values, len(structure)-1, pred)
}

// Trees returns a lazy iterator over every subtree of the tree, including
// the tree itself, top-down in the given order. The yielded trees share the
// receiver's storage.
func (t Tree[T]) Trees(order Order) iter.Seq[Tree[T]] {
	return t.TreesWithLimit(order, nil, math.MaxInt)
}

// TreesWithFilter is Trees restricted to subtrees matching pred.
func (t Tree[T]) TreesWithFilter(order Order, pred func(Tree[T]) bool) iter.Seq[Tree[T]] {
	return t.TreesWithLimit(order, pred, math.MaxInt)
}

// TreesWithLimit is TreesWithFilter bounded to subtree roots within
// maxDepth levels.
func (t Tree[T]) TreesWithLimit(order Order, pred func(Tree[T]) bool, maxDepth int) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		structure, values := t.flat()
		if len(structure) == 0 {
			return
		}
		root := len(structure) - 1
		for i := range arraytree.WalkWithLimit(structure, root, order == DepthFirst, maxDepth) {
			sub := arraytree.Sub(structure, values, i)
			candidate := fromArrays(sub.Structure, sub.Values)
			if pred != nil && !pred(candidate) {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}
