package arraytree

// UpdateValue replaces the value of node i, keeping its children. Under
// distinct semantics a replacement value equal to a sibling's value
// dissolves node i into that sibling: the sibling keeps its position and
// i's children are spliced in front of the sibling's own children,
// merging again on nested collisions.
func (f *Flat[T]) UpdateValue(i int, value T, distinct bool) {
	if distinct {
		if p := f.parent(i); p >= 0 {
			if j := f.childWithValueExcluding(p, value, i); j >= 0 {
				f.dissolveInto(i, p, j, f.cloneChildren(i))
				return
			}
		}
	}
	f.values.Set(i, value)
}

// UpdateTree replaces the whole subtree at i by sub. The parent's child
// count stays untouched, one subtree stands in for another. Under
// distinct semantics a root value colliding with a sibling merges sub
// into that sibling instead, sub's children first. An empty sub deletes
// the subtree at i, like RemoveTree.
//
// sub must not alias the Flat's own arrays.
func (f *Flat[T]) UpdateTree(i int, sub Subtree[T], distinct bool) {
	if sub.IsEmpty() {
		f.RemoveTree(i)
		return
	}
	if distinct {
		if p := f.parent(i); p >= 0 {
			if j := f.childWithValueExcluding(p, sub.Root(), i); j >= 0 {
				f.dissolveInto(i, p, j, sub.Children())
				return
			}
		}
	}
	lo := f.bottom(i)
	f.removeRange(lo, i+1)
	f.insertAt(lo, sub)
}

// dissolveInto removes the subtree at i and splices the orphaned
// children into sibling j under parent p, in front of j's own children.
// The caller passes the children to adopt; they must not alias the
// Flat's arrays.
func (f *Flat[T]) dissolveInto(i, p, j int, adopted []Subtree[T]) {
	size := f.size(i)
	lo := i - size + 1
	f.removeRange(lo, i+1)
	f.bumpChildCount(p-size, -1)
	if j > i {
		j -= size
	}
	f.spliceDistinct(j, adopted, f.bottom(j))
}
