package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/arbor/arraytree"
)

// Mode selects the sibling semantics of a mutation.
type Mode int8

const (
	// Lax permits equal values among direct siblings.
	Lax Mode = iota
	// Distinct keeps direct sibling values unique, merging a node that
	// would duplicate a sibling into that sibling.
	Distinct
)

// mutable returns a working copy of the tree's encoding. The copy never
// aliases the tree's own arrays, so views of the receiver may be spliced
// into it safely.
func (t Tree[T]) mutable() *arraytree.Flat[T] {
	structure, values := t.flat()
	return arraytree.FlatOf(structure, values)
}

// treeFromFlat freezes a working copy into an immutable tree.
func treeFromFlat[T comparable](f *arraytree.Flat[T]) Tree[T] {
	structure, values := f.Detach()
	return fromArrays(structure, values)
}

func (t Tree[T]) checkIndex(i int) error {
	if i < 0 || i >= t.Size() {
		return ErrIndexOutOfBounds
	}
	return nil
}

// asSubtree returns the tree's encoding as an engine fragment view.
func (t Tree[T]) asSubtree() arraytree.Subtree[T] {
	structure, values := t.flat()
	return arraytree.Subtree[T]{Structure: structure, Values: values}
}

// InsertValue returns a new tree with value attached as a new first child
// of the node at index i. Under Distinct an existing child with an equal
// value absorbs the insert.
func (t Tree[T]) InsertValue(i int, value T, mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	f := t.mutable()
	f.InsertValue(i, value, mode == Distinct)
	return treeFromFlat(f), nil
}

// InsertTree returns a new tree with sub attached as a new first child of
// the node at index i. Under Distinct a colliding root value merges sub
// into the existing child, sub's children in front. Inserting an empty sub
// returns the tree unchanged.
func (t Tree[T]) InsertTree(i int, sub Tree[T], mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	if sub.IsEmpty() {
		return t, nil
	}
	f := t.mutable()
	f.InsertTree(i, sub.asSubtree(), mode == Distinct)
	return treeFromFlat(f), nil
}

// InsertChildren returns a new tree with the given subtrees spliced in
// front of the existing children of the node at index i, keeping their
// relative order. Empty subtrees are skipped; under Distinct colliding
// subtrees are merged as for InsertTree.
func (t Tree[T]) InsertChildren(i int, subs []Tree[T], mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	fragments := make([]arraytree.Subtree[T], 0, len(subs))
	for _, sub := range subs {
		if sub.IsEmpty() {
			continue
		}
		fragments = append(fragments, sub.asSubtree())
	}
	f := t.mutable()
	f.InsertChildren(i, fragments, mode == Distinct)
	return treeFromFlat(f), nil
}

// InsertBranch grafts a chain of values onto the tree. The first branch
// value must equal the value of the node at index i; under Distinct the
// walk follows existing matching children as far as possible and only the
// unmatched suffix is attached, under Lax the whole tail is attached as a
// fresh chain. A mismatching first value is flagged as ErrIllegalArguments.
//
// On an empty tree the index must be negative and the branch becomes the
// tree. On a non-empty tree a negative index is refused with ErrNotATree,
// since a second top-level tree cannot be represented.
func (t Tree[T]) InsertBranch(i int, branch []T, mode Mode) (Tree[T], error) {
	if t.IsEmpty() {
		if i >= 0 {
			return Tree[T]{}, ErrIndexOutOfBounds
		}
		f := arraytree.NewFlat[T](len(branch))
		f.InsertBranch(-1, branch, mode == Distinct)
		return treeFromFlat(f), nil
	}
	if i < 0 {
		return Tree[T]{}, ErrNotATree
	}
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	f := t.mutable()
	if !f.InsertBranch(i, branch, mode == Distinct) {
		return Tree[T]{}, ErrIllegalArguments
	}
	return treeFromFlat(f), nil
}

// UpdateValue returns a new tree with the value at index i replaced. Under
// Distinct a replacement equal to a sibling's value dissolves the node into
// that sibling, handing its children over to the sibling's front.
func (t Tree[T]) UpdateValue(i int, value T, mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	f := t.mutable()
	f.UpdateValue(i, value, mode == Distinct)
	return treeFromFlat(f), nil
}

// UpdateTree returns a new tree with the whole subtree at index i replaced
// by sub. An empty sub deletes the subtree. Under Distinct a colliding
// root value merges sub into the sibling instead, sub's children first.
func (t Tree[T]) UpdateTree(i int, sub Tree[T], mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	f := t.mutable()
	f.UpdateTree(i, sub.asSubtree(), mode == Distinct)
	return treeFromFlat(f), nil
}

// ModifyValue applies fn to the value at index i and installs the result,
// under the same collision rules as UpdateValue.
func (t Tree[T]) ModifyValue(i int, fn func(T) T, mode Mode) (Tree[T], error) {
	if fn == nil {
		return Tree[T]{}, ErrIllegalArguments
	}
	value, err := t.ValueAt(i)
	if err != nil {
		return Tree[T]{}, err
	}
	return t.UpdateValue(i, fn(value), mode)
}

// ModifyTree applies fn to the subtree at index i and installs the result,
// under the same collision rules as UpdateTree. fn receives a shared view
// of the subtree; returning the empty tree deletes it.
func (t Tree[T]) ModifyTree(i int, fn func(Tree[T]) Tree[T], mode Mode) (Tree[T], error) {
	if fn == nil {
		return Tree[T]{}, ErrIllegalArguments
	}
	sub, err := t.TreeAt(i)
	if err != nil {
		return Tree[T]{}, err
	}
	return t.UpdateTree(i, fn(sub), mode)
}

// RemoveValue returns a new tree without the node at index i; the node's
// children move up to its former parent, taking its former position. Under
// Distinct promoted children merge into equal-valued remaining siblings.
//
// Removing the root is only possible while it has at most one child, since
// several children would be left over as a forest; that case is flagged as
// ErrNotATree. Removing the root of a single-node tree yields the empty
// tree.
func (t Tree[T]) RemoveValue(i int, mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	structure, _ := t.flat()
	if i == len(structure)-1 && structure[i] > 1 {
		return Tree[T]{}, ErrNotATree
	}
	f := t.mutable()
	f.RemoveValue(i, mode == Distinct)
	return treeFromFlat(f), nil
}

// RemoveTree returns a new tree without the subtree rooted at index i.
// Nothing is promoted; the mode has no effect on this operation and is
// accepted for uniformity. Removing the root subtree yields the empty
// tree.
func (t Tree[T]) RemoveTree(i int, mode Mode) (Tree[T], error) {
	if err := t.checkIndex(i); err != nil {
		return Tree[T]{}, err
	}
	f := t.mutable()
	f.RemoveTree(i)
	return treeFromFlat(f), nil
}

// InsertValueAt is InsertValue addressed by a path instead of an index.
// The path is resolved to its leftmost match; it reports whether the path
// resolved and the insert was applied. On false the original tree is
// returned.
func (t Tree[T]) InsertValueAt(path []T, value T, mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.InsertValue(i, value, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// InsertTreeAt is InsertTree addressed by a path instead of an index.
func (t Tree[T]) InsertTreeAt(path []T, sub Tree[T], mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.InsertTree(i, sub, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// UpdateValueAt is UpdateValue addressed by a path instead of an index.
func (t Tree[T]) UpdateValueAt(path []T, value T, mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.UpdateValue(i, value, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// UpdateTreeAt is UpdateTree addressed by a path instead of an index.
func (t Tree[T]) UpdateTreeAt(path []T, sub Tree[T], mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.UpdateTree(i, sub, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// ModifyValueAt is ModifyValue addressed by a path instead of an index.
func (t Tree[T]) ModifyValueAt(path []T, fn func(T) T, mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.ModifyValue(i, fn, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// ModifyTreeAt is ModifyTree addressed by a path instead of an index.
func (t Tree[T]) ModifyTreeAt(path []T, fn func(Tree[T]) Tree[T], mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.ModifyTree(i, fn, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// RemoveValueAt is RemoveValue addressed by a path instead of an index. A
// path resolving to a root with more than one child reports false, like
// every other inapplicable path operation.
func (t Tree[T]) RemoveValueAt(path []T, mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.RemoveValue(i, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// RemoveTreeAt is RemoveTree addressed by a path instead of an index.
func (t Tree[T]) RemoveTreeAt(path []T, mode Mode) (Tree[T], bool) {
	i, found := t.indexOf(path, false)
	if !found {
		return t, false
	}
	out, err := t.RemoveTree(i, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// InsertValueAtBy is Tree.InsertValueAt with the path matched on keys
// derived from the node values. The path holds keys, not values.
func InsertValueAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, value T, mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.InsertValue(i, value, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// InsertTreeAtBy is Tree.InsertTreeAt matching on derived keys.
func InsertTreeAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, sub Tree[T], mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.InsertTree(i, sub, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// UpdateValueAtBy is Tree.UpdateValueAt matching on derived keys.
func UpdateValueAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, value T, mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.UpdateValue(i, value, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// UpdateTreeAtBy is Tree.UpdateTreeAt matching on derived keys.
func UpdateTreeAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, sub Tree[T], mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.UpdateTree(i, sub, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// ModifyValueAtBy is Tree.ModifyValueAt matching on derived keys.
func ModifyValueAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, fn func(T) T, mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.ModifyValue(i, fn, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// ModifyTreeAtBy is Tree.ModifyTreeAt matching on derived keys.
func ModifyTreeAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, fn func(Tree[T]) Tree[T], mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.ModifyTree(i, fn, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// RemoveValueAtBy is Tree.RemoveValueAt matching on derived keys.
func RemoveValueAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.RemoveValue(i, mode)
	if err != nil {
		return t, false
	}
	return out, true
}

// RemoveTreeAtBy is Tree.RemoveTreeAt matching on derived keys.
func RemoveTreeAtBy[T comparable, K comparable](t Tree[T], path []K, key func(T) K, mode Mode) (Tree[T], bool) {
	i, found := indexOfBy(t, path, key, false)
	if !found {
		return t, false
	}
	out, err := t.RemoveTree(i, mode)
	if err != nil {
		return t, false
	}
	return out, true
}
