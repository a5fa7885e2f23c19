package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "sync"

// rep carries both representations of a tree. A tree is born with one of
// them; the missing one is derived on first use, at most once, so that
// concurrent readers never race on the conversion.
//
// flatFirst records the form the tree was created from. The born form is
// immutable from the start; the derived form is written under the matching
// sync.Once and read only after it fired.
type rep[T comparable] struct {
	flatFirst bool
	nodeOnce  sync.Once
	flatOnce  sync.Once
	root      *Node[T]
	structure []int
	values    []T
}

// flat returns the array encoding of the tree, deflating the node form on
// first call if the tree was node-born.
func (t Tree[T]) flat() ([]int, []T) {
	if t.rep == nil {
		return nil, nil
	}
	if !t.rep.flatFirst {
		t.rep.flatOnce.Do(func() {
			t.rep.structure, t.rep.values = Deflate(t.rep.root)
		})
	}
	return t.rep.structure, t.rep.values
}

// node returns the node-linked form of the tree, inflating the arrays on
// first call if the tree was array-born.
func (t Tree[T]) node() *Node[T] {
	if t.rep == nil {
		return nil
	}
	if t.rep.flatFirst {
		t.rep.nodeOnce.Do(func() {
			t.rep.root = Inflate(t.rep.structure, t.rep.values)
		})
	}
	return t.rep.root
}

// Inflate builds the node-linked form of an encoded tree. The input arrays
// must encode a single valid tree; violating that is an internal error.
// Inflating the empty encoding yields nil.
//
// Inflate and Deflate are exact inverses, preserving sibling order.
func Inflate[T comparable](structure []int, values []T) *Node[T] {
	if len(structure) == 0 {
		return nil
	}
	stack := make([]*Node[T], 0, 16)
	for i, childCount := range structure {
		node := &Node[T]{Value: values[i]}
		if childCount > 0 {
			assert(childCount <= len(stack), "arbor: malformed encoding, child count exceeds subtrees")
			node.Children = make([]*Node[T], childCount)
			copy(node.Children, stack[len(stack)-childCount:])
			stack = stack[:len(stack)-childCount]
		}
		stack = append(stack, node)
	}
	assert(len(stack) == 1, "arbor: encoding holds a forest, not a single tree")
	return stack[0]
}

// dframe is one level of the iterative deflation walk: a node and the
// position of its next unvisited child.
type dframe[T comparable] struct {
	node *Node[T]
	next int
}

// Deflate computes the array encoding of a node tree. A nil root yields
// empty arrays. The walk is iterative, deep trees cannot overflow the call
// stack.
func Deflate[T comparable](root *Node[T]) ([]int, []T) {
	if root == nil {
		return nil, nil
	}
	var structure []int
	var values []T
	stack := []dframe[T]{{node: root}}
	for len(stack) > 0 {
		ti := len(stack) - 1
		if n := stack[ti].next; n < len(stack[ti].node.Children) {
			stack[ti].next++
			stack = append(stack, dframe[T]{node: stack[ti].node.Children[n]})
			continue
		}
		structure = append(structure, len(stack[ti].node.Children))
		values = append(values, stack[ti].node.Value)
		stack = stack[:ti]
	}
	return structure, values
}
