package arraytree

import "slices"

// Map returns a new encoding with every value replaced by mapper's
// output. The structure array is shared work: it is copied unchanged.
func Map[T any, K comparable](structure []int, values []T, mapper func(T) K) Subtree[K] {
	out := Subtree[K]{
		Structure: slices.Clone(structure),
		Values:    make([]K, len(values)),
	}
	for i, v := range values {
		out.Values[i] = mapper(v)
	}
	return out
}

// FlatMap replaces every node by the tree mapper generates for its
// value. Each generated tree takes the node's place, its own children in
// front of the node's mapped children. A node whose mapper output is
// empty vanishes, and its mapped children move up into the vanished
// node's position. The mapper must return a single tree or the empty
// tree, never a multi-tree fragment.
//
// With distinct set, every splice applies the distinct sibling rule, and
// top-level trees whose roots end up equal are merged left to right.
//
// The input may be a forest, and since mapped roots can vanish the
// result may be one too. FlatMap never modifies its input arrays.
func FlatMap[T any, K comparable](structure []int, values []T, mapper func(T) Subtree[K], distinct bool) Subtree[K] {
	// region of the output arrays produced by one input subtree
	type frag struct {
		start int
		roots int
	}
	out := NewFlat[K](len(structure))
	frags := make([]frag, 0, 16)
	for i, childCount := range structure {
		// pop the children's regions; they are contiguous on top
		combined := frag{start: out.Len(), roots: 0}
		if childCount > 0 {
			assert(childCount <= len(frags), "arraytree: child count exceeds available subtrees")
			tail := frags[len(frags)-childCount:]
			combined.start = tail[0].start
			for _, fr := range tail {
				combined.roots += fr.roots
			}
			frags = frags[:len(frags)-childCount]
		}
		g := mapper(values[i])
		if g.IsEmpty() {
			// the node vanishes, its mapped children take its place
			frags = append(frags, combined)
			continue
		}
		if !distinct {
			gRoot := len(g.Structure) - 1
			out.insertAt(combined.start, Subtree[K]{
				Structure: g.Structure[:gRoot],
				Values:    g.Values[:gRoot],
			})
			out.AppendNode(g.Structure[gRoot]+combined.roots, g.Values[gRoot])
			frags = append(frags, frag{start: combined.start, roots: 1})
			continue
		}
		// distinct: re-splice the generated children and the mapped
		// children one by one under the generated root
		cands := append(g.Children(), out.cloneRegionTrees(combined.start, out.Len())...)
		out.removeRange(combined.start, out.Len())
		out.AppendNode(0, g.Root())
		root := combined.start
		out.spliceDistinct(root, cands, root)
		frags = append(frags, frag{start: combined.start, roots: 1})
	}
	if distinct {
		out.dedupForest()
	}
	s, v := out.Detach()
	return Subtree[K]{Structure: s, Values: v}
}

// cloneRegionTrees returns deep copies of the top-level trees of the
// index range [start, end), leftmost first.
func (f *Flat[T]) cloneRegionTrees(start, end int) []Subtree[T] {
	if start >= end {
		return nil
	}
	counts := f.counts()[start:end]
	items := f.items()[start:end]
	roots := Roots(counts)
	out := make([]Subtree[T], len(roots))
	for k, r := range roots {
		out[k] = Sub(counts, items, r).Clone()
	}
	return out
}

// dedupForest merges top-level trees with equal root values, leftmost
// tree keeping its position and absorbing the children of the others,
// until all top-level root values are distinct.
func (f *Flat[T]) dedupForest() {
	for {
		t, d := f.firstRootCollision()
		if t < 0 {
			return
		}
		kids := f.cloneChildren(d)
		f.removeRange(f.bottom(d), d+1)
		f.spliceDistinct(t, kids, f.bottom(t))
	}
}

// firstRootCollision returns the leftmost pair of top-level roots with
// equal values, or (-1, -1).
func (f *Flat[T]) firstRootCollision() (int, int) {
	roots := f.Roots()
	items := f.items()
	for a := 0; a < len(roots); a++ {
		for b := a + 1; b < len(roots); b++ {
			if items[roots[a]] == items[roots[b]] {
				return roots[a], roots[b]
			}
		}
	}
	return -1, -1
}
