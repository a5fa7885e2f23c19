package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/arbor/arraytree"
)

// indexOf resolves a path of values to an array index, leftmost match per
// step, or rightmost with rightmost set.
func (t Tree[T]) indexOf(path []T, rightmost bool) (int, bool) {
	structure, values := t.flat()
	if len(structure) == 0 {
		return -1, false
	}
	return arraytree.IndexOfPath(structure, values, len(structure)-1, path, rightmost)
}

// ContainsPath reports whether path is a value-prefix of the tree,
// starting at the root. The empty path is contained in every tree.
func (t Tree[T]) ContainsPath(path []T) bool {
	if len(path) == 0 {
		return true
	}
	_, found := t.indexOf(path, false)
	return found
}

// ContainsBranch reports whether branch is a complete root-to-leaf value
// path of the tree. Unlike a path, a branch must end exactly at a leaf; the
// empty branch is contained in no tree.
func (t Tree[T]) ContainsBranch(branch []T) bool {
	i, found := t.indexOf(branch, false)
	if !found {
		return false
	}
	structure, _ := t.flat()
	return structure[i] == 0
}

// SelectValue resolves a path and returns the value at its end. When
// several siblings match a path step, the leftmost one is taken. An
// unresolvable or empty path reports not found.
func (t Tree[T]) SelectValue(path []T) (T, bool) {
	return t.selectValue(path, false)
}

// SelectValueLast is SelectValue preferring the rightmost match at every
// path step.
func (t Tree[T]) SelectValueLast(path []T) (T, bool) {
	return t.selectValue(path, true)
}

func (t Tree[T]) selectValue(path []T, rightmost bool) (T, bool) {
	i, found := t.indexOf(path, rightmost)
	if !found {
		var none T
		return none, false
	}
	_, values := t.flat()
	return values[i], true
}

// SelectTree resolves a path and returns the subtree rooted at its end.
// The subtree shares the receiver's storage. When several siblings match a
// path step, the leftmost one is taken. An unresolvable or empty path
// reports not found.
func (t Tree[T]) SelectTree(path []T) (Tree[T], bool) {
	return t.selectTree(path, false)
}

// SelectTreeLast is SelectTree preferring the rightmost match at every
// path step.
func (t Tree[T]) SelectTreeLast(path []T) (Tree[T], bool) {
	return t.selectTree(path, true)
}

func (t Tree[T]) selectTree(path []T, rightmost bool) (Tree[T], bool) {
	i, found := t.indexOf(path, rightmost)
	if !found {
		return Tree[T]{}, false
	}
	structure, values := t.flat()
	sub := arraytree.Sub(structure, values, i)
	return fromArrays(sub.Structure, sub.Values), true
}

// indexOfBy is indexOf matching on keys derived from the node values.
func indexOfBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, rightmost bool) (int, bool) {
	structure, values := t.flat()
	if len(structure) == 0 || key == nil {
		return -1, false
	}
	return arraytree.IndexOfPathBy(structure, values, len(structure)-1, path, key, rightmost)
}

// ContainsPathBy is Tree.ContainsPath with the match performed on keys
// derived from the node values, so a path of lengths can address a tree of
// strings. The path holds keys, not values.
func ContainsPathBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K) bool {
	if len(path) == 0 {
		return true
	}
	_, found := indexOfBy(t, path, key, false)
	return found
}

// ContainsBranchBy is Tree.ContainsBranch matching on derived keys.
func ContainsBranchBy[T comparable, K comparable](t Tree[T], branch []K, key func(T) K) bool {
	i, found := indexOfBy(t, branch, key, false)
	if !found {
		return false
	}
	structure, _ := t.flat()
	return structure[i] == 0
}

// SelectValueBy is Tree.SelectValue matching on derived keys, leftmost
// match per step.
func SelectValueBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K) (T, bool) {
	return selectValueBy(t, path, key, false)
}

// SelectValueLastBy is SelectValueBy preferring the rightmost match.
func SelectValueLastBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K) (T, bool) {
	return selectValueBy(t, path, key, true)
}

func selectValueBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, rightmost bool) (T, bool) {
	i, found := indexOfBy(t, path, key, rightmost)
	if !found {
		var none T
		return none, false
	}
	_, values := t.flat()
	return values[i], true
}

// SelectTreeBy is Tree.SelectTree matching on derived keys, leftmost match
// per step.
func SelectTreeBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K) (Tree[T], bool) {
	return selectTreeBy(t, path, key, false)
}

// SelectTreeLastBy is SelectTreeBy preferring the rightmost match.
func SelectTreeLastBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K) (Tree[T], bool) {
	return selectTreeBy(t, path, key, true)
}

func selectTreeBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, rightmost bool) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, rightmost)
	if !found {
		return Tree[T]{}, false
	}
	structure, values := t.flat()
	sub := arraytree.Sub(structure, values, i)
	return fromArrays(sub.Structure, sub.Values), true
}
