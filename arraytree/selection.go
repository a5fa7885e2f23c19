package arraytree

// IndexOfPath resolves a path of values, starting at node i, to the
// index of the node the path ends at. The first path element must equal
// the value of node i itself; each further element selects among the
// current node's children. When several siblings match, the leftmost one
// wins, or the rightmost with rightmost set. Resolution is greedy; it
// never backtracks out of a chosen sibling.
//
// An unresolvable path, an empty path and an out-of-range i all report
// not found.
func IndexOfPath[T comparable](structure []int, values []T, i int, path []T, rightmost bool) (int, bool) {
	return IndexOfPathBy(structure, values, i, path, identity[T], rightmost)
}

// IndexOfPathBy is IndexOfPath with the match performed on keys derived
// from the node values. The path holds keys, not values.
func IndexOfPathBy[T any, K comparable](structure []int, values []T, i int, path []K,
	key func(T) K, rightmost bool) (int, bool) {
	//
	if i < 0 || i >= len(structure) || len(path) == 0 {
		return -1, false
	}
	if key(values[i]) != path[0] {
		return -1, false
	}
	cur := i
	for _, step := range path[1:] {
		next := -1
		for _, c := range ChildIndices(structure, cur) {
			if key(values[c]) != step {
				continue
			}
			next = c
			if !rightmost {
				break
			}
		}
		if next < 0 {
			return -1, false
		}
		cur = next
	}
	return cur, true
}

func identity[T comparable](v T) T { return v }
