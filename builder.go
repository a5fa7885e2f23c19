package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/arbor/arraytree"
)

// Builder assembles trees incrementally and hands them out as immutable
// Tree snapshots.
//
// A Builder stages a forest of finished subtrees. AddPair appends a single
// node which adopts the newest top-level trees as its children, so a
// stream of (child count, value) pairs, children before parents, replays
// into the original tree without lookahead; AddTree appends a whole
// finished tree. The index operations mirror those of Tree, but work on
// the staged arrays in place, without the copy every Tree operation makes.
//
// The zero value is not usable; clients create builders with NewBuilder or
// BuilderOf.
type Builder[T comparable] struct {
	flat *arraytree.Flat[T]
	// roots counts staged top-level trees, valid while dirty is false.
	roots int
	dirty bool
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder[T comparable]() *Builder[T] {
	return &Builder[T]{flat: arraytree.NewFlat[T](0)}
}

// BuilderOf creates a builder staged with copies of the given trees, in
// order. Empty trees are skipped.
func BuilderOf[T comparable](trees ...Tree[T]) *Builder[T] {
	b := NewBuilder[T]()
	for _, t := range trees {
		if t.IsEmpty() {
			continue
		}
		b.flat.AppendTree(t.asSubtree())
		b.roots++
	}
	return b
}

// availableRoots returns the number of staged top-level trees, recounting
// after operations that may have changed it.
func (b *Builder[T]) availableRoots() int {
	if b.dirty {
		b.roots = len(b.flat.Roots())
		b.dirty = false
	}
	return b.roots
}

func (b *Builder[T]) check(i int) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if i < 0 || i >= b.flat.Len() {
		return ErrIndexOutOfBounds
	}
	return nil
}

// AddPair appends a single node. The node adopts the childCount newest
// top-level trees as its children, leftmost first. A child count outside
// the range of staged trees cannot encode a forest and is refused with
// ErrMalformedPairs.
func (b *Builder[T]) AddPair(childCount int, value T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if childCount < 0 || childCount > b.availableRoots() {
		return ErrMalformedPairs
	}
	b.flat.AppendNode(childCount, value)
	b.roots -= childCount - 1
	return nil
}

// AddTree appends a copy of the given tree as a new top-level tree.
// Adding the empty tree is a no-op.
func (b *Builder[T]) AddTree(t Tree[T]) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if t.IsEmpty() {
		return nil
	}
	b.flat.AppendTree(t.asSubtree())
	if !b.dirty {
		b.roots++
	}
	return nil
}

// InsertValue attaches value as a new first child of the node at index i.
// Under Distinct an existing child with an equal value absorbs the insert.
func (b *Builder[T]) InsertValue(i int, value T, mode Mode) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.flat.InsertValue(i, value, mode == Distinct)
	return nil
}

// InsertTree attaches a copy of sub as a new first child of the node at
// index i. Under Distinct a colliding root value merges sub into the
// existing child. Inserting an empty sub is a no-op.
func (b *Builder[T]) InsertTree(i int, sub Tree[T], mode Mode) error {
	if err := b.check(i); err != nil {
		return err
	}
	if sub.IsEmpty() {
		return nil
	}
	b.flat.InsertTree(i, sub.asSubtree(), mode == Distinct)
	return nil
}

// InsertChildren splices copies of the given subtrees in front of the
// existing children of the node at index i, keeping their relative order.
func (b *Builder[T]) InsertChildren(i int, subs []Tree[T], mode Mode) error {
	if err := b.check(i); err != nil {
		return err
	}
	fragments := make([]arraytree.Subtree[T], 0, len(subs))
	for _, sub := range subs {
		if sub.IsEmpty() {
			continue
		}
		fragments = append(fragments, sub.asSubtree())
	}
	b.flat.InsertChildren(i, fragments, mode == Distinct)
	return nil
}

// InsertBranch grafts a chain of values onto the staged forest. With a
// negative index the branch becomes a new top-level tree; otherwise the
// first branch value must equal the value at index i, or the graft is
// refused with ErrIllegalArguments. Under Distinct the walk follows
// existing matching children and only attaches the unmatched suffix.
func (b *Builder[T]) InsertBranch(i int, branch []T, mode Mode) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if len(branch) == 0 {
		return nil
	}
	if i < 0 {
		b.flat.InsertBranch(-1, branch, mode == Distinct)
		if !b.dirty {
			b.roots++
		}
		return nil
	}
	if err := b.check(i); err != nil {
		return err
	}
	if !b.flat.InsertBranch(i, branch, mode == Distinct) {
		return ErrIllegalArguments
	}
	return nil
}

// UpdateValue replaces the value at index i. Under Distinct a replacement
// equal to a sibling's value dissolves the node into that sibling.
func (b *Builder[T]) UpdateValue(i int, value T, mode Mode) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.flat.UpdateValue(i, value, mode == Distinct)
	return nil
}

// UpdateTree replaces the whole subtree at index i by a copy of sub. An
// empty sub deletes the subtree.
func (b *Builder[T]) UpdateTree(i int, sub Tree[T], mode Mode) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.flat.UpdateTree(i, sub.asSubtree(), mode == Distinct)
	b.dirty = true
	return nil
}

// RemoveValue deletes the node at index i; its children move up to the
// node's former parent. Children of a deleted top-level root become
// top-level trees of the staged forest.
func (b *Builder[T]) RemoveValue(i int, mode Mode) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.flat.RemoveValue(i, mode == Distinct)
	b.dirty = true
	return nil
}

// RemoveTree deletes the whole subtree rooted at index i.
func (b *Builder[T]) RemoveTree(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.flat.RemoveTree(i)
	b.dirty = true
	return nil
}

// Len returns the number of staged nodes, across all top-level trees.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.flat.Len()
}

// IsEmpty reports whether nothing is staged.
func (b *Builder[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Tree returns the newest top-level tree as an immutable snapshot. The
// builder keeps its state; later changes do not show up in the returned
// tree, and building may continue. An empty builder returns the empty
// tree.
func (b *Builder[T]) Tree() Tree[T] {
	if b == nil || b.flat.IsEmpty() {
		tracer().Debugf("tree builder: tree is empty")
		return Tree[T]{}
	}
	view := b.flat.View()
	sub := arraytree.Sub(view.Structure, view.Values, b.flat.Len()-1).Clone()
	return fromArrays(sub.Structure, sub.Values)
}

// Forest returns immutable snapshots of all staged top-level trees,
// leftmost first.
func (b *Builder[T]) Forest() []Tree[T] {
	if b == nil || b.flat.IsEmpty() {
		return nil
	}
	view := b.flat.View()
	forest := make([]Tree[T], 0, b.availableRoots())
	for _, r := range b.flat.Roots() {
		sub := arraytree.Sub(view.Structure, view.Values, r).Clone()
		forest = append(forest, fromArrays(sub.Structure, sub.Values))
	}
	return forest
}

// Reset drops the staged forest and prepares the builder for a fresh
// build.
func (b *Builder[T]) Reset() {
	if b == nil {
		return
	}
	b.flat.Reset()
	b.roots = 0
	b.dirty = false
}
