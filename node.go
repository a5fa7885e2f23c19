package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Node is the node-linked representation of a tree: a value plus an ordered
// list of child nodes. Children are exclusively owned by their parent; a
// node must never appear in two trees or twice in one tree.
//
// Client code builds node trees freely and hands them to FromNode, which
// adopts them. After adoption the nodes belong to the immutable tree value
// and must not be modified.
type Node[T comparable] struct {
	Value    T
	Children []*Node[T]
}

// NewNode creates a node carrying value, with the given child nodes.
func NewNode[T comparable](value T, children ...*Node[T]) *Node[T] {
	return &Node[T]{Value: value, Children: children}
}

// AddChildren appends child nodes and returns the node for chaining.
func (node *Node[T]) AddChildren(children ...*Node[T]) *Node[T] {
	node.Children = append(node.Children, children...)
	return node
}

// IsLeaf reports whether the node has no children.
func (node *Node[T]) IsLeaf() bool {
	return node == nil || len(node.Children) == 0
}
