package arraytree

import "slices"

// Size returns the number of nodes in the subtree rooted at index i.
//
// The subtree of i spans the index range [Bottom(i), i]. Size walks that
// range backwards, consuming one pending slot per node and opening a new
// slot for every declared child:
//
//	index:      0  1  2  3  4  5  6
//	structure:  0  1  0  1  0  2  2
//	Size(5) = 4    (the subtree d(e(f), g) at indexes 2..5)
func Size(structure []int, i int) int {
	assert(i >= 0 && i < len(structure), "arraytree: node index out of range")
	pending := 1
	size := 0
	for j := i; pending > 0; j-- {
		assert(j >= 0, "arraytree: subtree range extends below index 0")
		pending += structure[j] - 1
		size++
	}
	return size
}

// Bottom returns the lowest index of the subtree rooted at i.
func Bottom(structure []int, i int) int {
	return i - Size(structure, i) + 1
}

// Height returns the number of levels of the subtree rooted at i.
// A single node has height 1.
func Height(structure []int, i int) int {
	lo := Bottom(structure, i)
	// left-to-right over the subtree range, folding child heights
	stack := make([]int, 0, 16)
	for j := lo; j <= i; j++ {
		h := 1
		for k := 0; k < structure[j]; k++ {
			assert(len(stack) > 0, "arraytree: child count exceeds available subtrees")
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top+1 > h {
				h = top + 1
			}
		}
		stack = append(stack, h)
	}
	assert(len(stack) == 1, "arraytree: subtree range is not a single tree")
	return stack[0]
}

// Width returns the number of leaves of the subtree rooted at i.
func Width(structure []int, i int) int {
	lo := Bottom(structure, i)
	leaves := 0
	for j := lo; j <= i; j++ {
		if structure[j] == 0 {
			leaves++
		}
	}
	return leaves
}

// ChildIndices returns the indexes of the direct children of node i,
// leftmost child first.
//
// The children are discovered right-to-left by skipping whole subtree
// ranges, starting directly below i.
func ChildIndices(structure []int, i int) []int {
	assert(i >= 0 && i < len(structure), "arraytree: node index out of range")
	n := structure[i]
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	j := i - 1
	for k := n - 1; k >= 0; k-- {
		assert(j >= 0, "arraytree: child count exceeds available subtrees")
		out[k] = j
		j -= Size(structure, j)
	}
	return out
}

// ParentIndex returns the index of the parent of node i, or -1 when i is
// the root of a top-level tree.
//
// The scan walks from the top of the array down to i, tracking how many
// child slots of which node are still unfilled.
func ParentIndex(structure []int, i int) int {
	assert(i >= 0 && i < len(structure), "arraytree: node index out of range")
	type slot struct {
		parent    int
		remaining int
	}
	stack := make([]slot, 0, 16)
	for j := len(structure) - 1; j >= i; j-- {
		parent := -1
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			parent = top.parent
			top.remaining--
			if top.remaining == 0 {
				stack = stack[:len(stack)-1]
			}
		}
		if j == i {
			return parent
		}
		if structure[j] > 0 {
			stack = append(stack, slot{parent: j, remaining: structure[j]})
		}
	}
	return -1
}

// Sizes returns the subtree size of every index, computed in one
// left-to-right pass.
func Sizes(structure []int) []int {
	sizes := make([]int, len(structure))
	stack := make([]int, 0, 16)
	for i, childCount := range structure {
		s := 1
		for k := 0; k < childCount; k++ {
			assert(len(stack) > 0, "arraytree: child count exceeds available subtrees")
			s += stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, s)
		sizes[i] = s
	}
	return sizes
}

// Roots returns the root indexes of all top-level trees of a forest
// encoding, leftmost tree first.
func Roots(structure []int) []int {
	var roots []int
	for j := len(structure) - 1; j >= 0; j -= Size(structure, j) {
		roots = append(roots, j)
	}
	slices.Reverse(roots)
	return roots
}

// Subtree is an encoded subtree, or a forest fragment made of several
// concatenated subtrees. The zero value is the empty tree.
type Subtree[T any] struct {
	Structure []int
	Values    []T
}

// Sub returns a zero-copy Subtree view of the subtree rooted at i.
//
// The views alias the input arrays; callers must not write through them.
func Sub[T any](structure []int, values []T, i int) Subtree[T] {
	lo := Bottom(structure, i)
	return Subtree[T]{
		Structure: structure[lo : i+1 : i+1],
		Values:    values[lo : i+1 : i+1],
	}
}

// IsEmpty reports whether the fragment holds no nodes.
func (sub Subtree[T]) IsEmpty() bool {
	return len(sub.Structure) == 0
}

// Len returns the number of nodes in the fragment.
func (sub Subtree[T]) Len() int {
	return len(sub.Structure)
}

// Root returns the value of the fragment's top node, which for a
// single-tree fragment is the root.
func (sub Subtree[T]) Root() T {
	assert(len(sub.Values) > 0, "arraytree: root of empty fragment")
	return sub.Values[len(sub.Values)-1]
}

// Children returns zero-copy views of the direct child subtrees of the
// fragment's top node, leftmost first.
func (sub Subtree[T]) Children() []Subtree[T] {
	if len(sub.Structure) == 0 {
		return nil
	}
	root := len(sub.Structure) - 1
	indexes := ChildIndices(sub.Structure, root)
	out := make([]Subtree[T], len(indexes))
	for k, c := range indexes {
		out[k] = Sub(sub.Structure, sub.Values, c)
	}
	return out
}

// Clone returns a deep copy of the fragment.
func (sub Subtree[T]) Clone() Subtree[T] {
	return Subtree[T]{
		Structure: slices.Clone(sub.Structure),
		Values:    slices.Clone(sub.Values),
	}
}

// Leaf encodes a single childless node.
func Leaf[T any](value T) Subtree[T] {
	return Subtree[T]{Structure: []int{0}, Values: []T{value}}
}

// Chain encodes a linear single-child chain of values, first value on top.
func Chain[T any](values []T) Subtree[T] {
	n := len(values)
	if n == 0 {
		return Subtree[T]{}
	}
	structure := make([]int, n)
	vs := make([]T, n)
	for k, v := range values {
		vs[n-1-k] = v
		if k < n-1 {
			structure[n-1-k] = 1
		}
	}
	return Subtree[T]{Structure: structure, Values: vs}
}
