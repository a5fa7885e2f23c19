package arraytree

import "fmt"

// Check tests the structural integrity of a forest encoding: the value
// and structure arrays must have equal length, every child count must be
// non-negative, and no node may claim more subtrees than the array holds
// below it.
//
// Check accepts any number of top-level trees, including zero.
func Check[T any](structure []int, values []T) error {
	if len(structure) != len(values) {
		return fmt.Errorf("%w: %d child counts for %d values", ErrLengthMismatch,
			len(structure), len(values))
	}
	available := 0
	for i, childCount := range structure {
		if childCount < 0 {
			return fmt.Errorf("%w: negative child count at index %d", ErrMalformedStructure, i)
		}
		if childCount > available {
			return fmt.Errorf("%w: node at index %d claims %d children, %d available",
				ErrMalformedStructure, i, childCount, available)
		}
		available -= childCount
		available++
	}
	return nil
}

// CheckTree tests the structural integrity of a single-tree encoding.
// On top of the forest invariants it requires at most one top-level tree.
func CheckTree[T any](structure []int, values []T) error {
	if err := Check(structure, values); err != nil {
		return err
	}
	if len(structure) == 0 {
		return nil
	}
	if size := Size(structure, len(structure)-1); size != len(structure) {
		return fmt.Errorf("%w: %d nodes outside the top tree", ErrNotATree,
			len(structure)-size)
	}
	return nil
}
