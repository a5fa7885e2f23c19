package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/arbor/arraytree"
)

// Tree is an immutable multi-way tree of values. The zero value
//
//	Tree[string]{}
//
// is a valid object and behaves like the empty tree.
//
// A tree holds its nodes either node-linked or packed into two post-order
// arrays, whichever it was created from, and derives the missing form
// lazily. Navigation, iteration, selection and mutation operate on the
// array form; Root exposes the node form. Methods that take or return
// positions use post-order array indexes, with the root at Size()-1.
//
// Trees are values: every mutating operation leaves the receiver untouched
// and returns a fresh tree. Readers may share a tree freely across
// goroutines.
type Tree[T comparable] struct {
	rep *rep[T]
}

// fromArrays adopts encoding arrays without copying. The arrays must be
// valid and must never be written again.
func fromArrays[T comparable](structure []int, values []T) Tree[T] {
	if len(structure) == 0 {
		return Tree[T]{}
	}
	return Tree[T]{rep: &rep[T]{
		flatFirst: true,
		structure: structure,
		values:    values,
	}}
}

// New creates a tree from a root value and child subtrees, in the given
// order. Empty child trees are skipped.
func New[T comparable](value T, children ...Tree[T]) Tree[T] {
	size := 1
	for _, c := range children {
		size += c.Size()
	}
	f := arraytree.NewFlat[T](size)
	count := 0
	for _, c := range children {
		s, v := c.flat()
		if len(s) == 0 {
			continue
		}
		f.AppendTree(arraytree.Subtree[T]{Structure: s, Values: v})
		count++
	}
	f.AppendNode(count, value)
	s, v := f.Detach()
	return fromArrays(s, v)
}

// FromNode adopts a node-linked tree. The nodes become part of the
// immutable tree value and must not be modified afterwards; callers keeping
// their own node references must hand over a deep copy instead. A nil root
// yields the empty tree.
func FromNode[T comparable](root *Node[T]) Tree[T] {
	if root == nil {
		return Tree[T]{}
	}
	return Tree[T]{rep: &rep[T]{root: root}}
}

// FromSlices creates a tree from a post-order child-count array and a
// parallel values array. The arrays are validated and copied; they must
// encode a single tree. Empty arrays yield the empty tree.
func FromSlices[T comparable](structure []int, values []T) (Tree[T], error) {
	if err := arraytree.CheckTree(structure, values); err != nil {
		return Tree[T]{}, err
	}
	return fromArrays(slices.Clone(structure), slices.Clone(values)), nil
}

// IsEmpty reports whether the tree has no nodes.
func (t Tree[T]) IsEmpty() bool {
	return t.rep == nil
}

// Size returns the number of nodes in the tree.
func (t Tree[T]) Size() int {
	if t.rep == nil {
		return 0
	}
	if t.rep.flatFirst {
		return len(t.rep.structure)
	}
	size := 0
	stack := []*Node[T]{t.rep.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, node.Children...)
	}
	return size
}

// Height returns the number of tree levels. The empty tree has height 0, a
// single node height 1.
func (t Tree[T]) Height() int {
	if t.rep == nil {
		return 0
	}
	if t.rep.flatFirst {
		return arraytree.Height(t.rep.structure, len(t.rep.structure)-1)
	}
	type entry struct {
		node  *Node[T]
		depth int
	}
	height := 0
	stack := []entry{{node: t.rep.root, depth: 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.depth > height {
			height = e.depth
		}
		for _, c := range e.node.Children {
			stack = append(stack, entry{node: c, depth: e.depth + 1})
		}
	}
	return height
}

// Width returns the number of leaves of the tree.
func (t Tree[T]) Width() int {
	if t.rep == nil {
		return 0
	}
	if t.rep.flatFirst {
		return arraytree.Width(t.rep.structure, len(t.rep.structure)-1)
	}
	width := 0
	stack := []*Node[T]{t.rep.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(node.Children) == 0 {
			width++
		}
		stack = append(stack, node.Children...)
	}
	return width
}

// Value returns the root value. The second return value is false for the
// empty tree.
func (t Tree[T]) Value() (T, bool) {
	if t.rep == nil {
		var none T
		return none, false
	}
	if t.rep.flatFirst {
		return t.rep.values[len(t.rep.values)-1], true
	}
	return t.rep.root.Value, true
}

// ValueAt returns the value of the node at array index i.
func (t Tree[T]) ValueAt(i int) (T, error) {
	_, values := t.flat()
	if i < 0 || i >= len(values) {
		var none T
		return none, ErrIndexOutOfBounds
	}
	return values[i], nil
}

// TreeAt returns the subtree rooted at array index i. The subtree shares
// the receiver's storage; no copying takes place.
func (t Tree[T]) TreeAt(i int) (Tree[T], error) {
	structure, values := t.flat()
	if i < 0 || i >= len(structure) {
		return Tree[T]{}, ErrIndexOutOfBounds
	}
	sub := arraytree.Sub(structure, values, i)
	return fromArrays(sub.Structure, sub.Values), nil
}

// Children returns the direct child subtrees of the root, leftmost first.
// The children share the receiver's storage.
func (t Tree[T]) Children() []Tree[T] {
	structure, values := t.flat()
	if len(structure) == 0 {
		return nil
	}
	indexes := arraytree.ChildIndices(structure, len(structure)-1)
	children := make([]Tree[T], len(indexes))
	for k, c := range indexes {
		sub := arraytree.Sub(structure, values, c)
		children[k] = fromArrays(sub.Structure, sub.Values)
	}
	return children
}

// Root returns the root of the node-linked form, deriving it on first use.
// The returned nodes belong to the tree and must be treated as read-only.
func (t Tree[T]) Root() *Node[T] {
	return t.node()
}

// Slices returns copies of the tree's encoding arrays: post-order child
// counts and values. The copies are the caller's to keep.
func (t Tree[T]) Slices() ([]int, []T) {
	structure, values := t.flat()
	return slices.Clone(structure), slices.Clone(values)
}

// Equal reports whether two trees have the same shape and the same values
// in the same sibling order.
func (t Tree[T]) Equal(other Tree[T]) bool {
	s1, v1 := t.flat()
	s2, v2 := other.flat()
	return slices.Equal(s1, s2) && slices.Equal(v1, v2)
}

// String returns the tree in compact literal form, like a(b(c),d). The
// empty tree prints as ().
func (t Tree[T]) String() string {
	structure, values := t.flat()
	if len(structure) == 0 {
		return "()"
	}
	// a token is either a literal or a node index to expand
	type token struct {
		index int
		lit   string
	}
	var sb strings.Builder
	stack := []token{{index: len(structure) - 1}}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tok.lit != "" {
			sb.WriteString(tok.lit)
			continue
		}
		fmt.Fprintf(&sb, "%v", values[tok.index])
		childCount := structure[tok.index]
		if childCount == 0 {
			continue
		}
		children := arraytree.ChildIndices(structure, tok.index)
		stack = append(stack, token{lit: ")"})
		for k := childCount - 1; k >= 0; k-- {
			stack = append(stack, token{index: children[k]})
			if k > 0 {
				stack = append(stack, token{lit: ","})
			}
		}
		stack = append(stack, token{lit: "("})
	}
	return sb.String()
}
