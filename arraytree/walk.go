package arraytree

import "iter"

// Walk traverses the subtree rooted at i and yields each node's index
// together with its level, counted from 1 for the subtree root. With
// depthFirst set the order is pre-order depth first, otherwise
// left-to-right breadth first. Traversal is lazy; nodes below a node the
// consumer never reaches are never visited.
func Walk(structure []int, i int, depthFirst bool) iter.Seq2[int, int] {
	return WalkWithLimit(structure, i, depthFirst, maxInt)
}

// WalkWithLimit is Walk restricted to nodes at level maxLevel or above.
// A maxLevel below 1 yields nothing.
func WalkWithLimit(structure []int, i int, depthFirst bool, maxLevel int) iter.Seq2[int, int] {
	if depthFirst {
		return walkDepthFirst(structure, i, maxLevel)
	}
	return walkBreadthFirst(structure, i, maxLevel)
}

type visit struct {
	index int
	level int
}

func walkDepthFirst(structure []int, i int, maxLevel int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if maxLevel < 1 {
			return
		}
		stack := []visit{{index: i, level: 1}}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(v.index, v.level) {
				return
			}
			if v.level == maxLevel {
				continue
			}
			// rightmost child pushed first, so the leftmost pops next
			lo := v.index - Size(structure, v.index)
			for j := v.index - 1; j > lo; j -= Size(structure, j) {
				stack = append(stack, visit{index: j, level: v.level + 1})
			}
		}
	}
}

func walkBreadthFirst(structure []int, i int, maxLevel int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if maxLevel < 1 {
			return
		}
		queue := []visit{{index: i, level: 1}}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if !yield(v.index, v.level) {
				return
			}
			if v.level == maxLevel {
				continue
			}
			for _, j := range ChildIndices(structure, v.index) {
				queue = append(queue, visit{index: j, level: v.level + 1})
			}
		}
	}
}

// HasMatchBelow reports whether any proper descendant of node i within
// extraLevels levels below it matches pred. A nil pred matches every
// value, so the call degenerates to an "is not a leaf" test.
func HasMatchBelow[T any](structure []int, values []T, i int, extraLevels int, pred func(T) bool) bool {
	if extraLevels < 1 {
		return false
	}
	bound := maxInt
	if extraLevels < maxInt-1 {
		bound = extraLevels + 1
	}
	for j, level := range WalkWithLimit(structure, i, true, bound) {
		if level == 1 {
			continue
		}
		if pred == nil || pred(values[j]) {
			return true
		}
	}
	return false
}

const maxInt = int(^uint(0) >> 1)
