package arraytree

import (
	"iter"
	"slices"
)

// Branches yields every root-to-leaf value path of the subtree rooted
// at i, leftmost branch first. With maxLevel set, paths are cut off at
// that level and the cut-off nodes count as leaves. A non-nil pred
// filters the completed paths. Each yielded slice is a fresh copy.
func Branches[T any](structure []int, values []T, i int, maxLevel int, pred func([]T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if maxLevel < 1 {
			return
		}
		stack := []visit{{index: i, level: 1}}
		path := make([]T, 0, 16)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			path = append(path[:v.level-1], values[v.index])
			if structure[v.index] == 0 || v.level == maxLevel {
				if pred == nil || pred(path) {
					if !yield(slices.Clone(path)) {
						return
					}
				}
				continue
			}
			lo := v.index - Size(structure, v.index)
			for j := v.index - 1; j > lo; j -= Size(structure, j) {
				stack = append(stack, visit{index: j, level: v.level + 1})
			}
		}
	}
}

// CountBranches returns the number of root-to-leaf paths of the subtree
// rooted at i that match pred. A nil pred counts all branches, which
// equals Width.
func CountBranches[T any](structure []int, values []T, i int, pred func([]T) bool) int {
	if pred == nil {
		return Width(structure, i)
	}
	// one Sizes prepass keeps the traversal linear
	sizes := Sizes(structure)
	count := 0
	stack := []visit{{index: i, level: 1}}
	path := make([]T, 0, 16)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		path = append(path[:v.level-1], values[v.index])
		if structure[v.index] == 0 {
			if pred(path) {
				count++
			}
			continue
		}
		lo := v.index - sizes[v.index]
		for j := v.index - 1; j > lo; j -= sizes[j] {
			stack = append(stack, visit{index: j, level: v.level + 1})
		}
	}
	return count
}
