package arraytree

// RemoveValue deletes node i and promotes its children to its former
// parent, in its former position. Under distinct semantics a promoted
// child whose value equals a remaining sibling's is merged into that
// sibling instead of taking an own slot.
//
// Removing a top-level root turns its children into top-level trees.
func (f *Flat[T]) RemoveValue(i int, distinct bool) {
	p := f.parent(i)
	childCount := f.structure.At(i)
	if !distinct || p < 0 {
		f.removeNode(i)
		if p >= 0 {
			f.bumpChildCount(p-1, childCount-1)
		}
		return
	}
	kids := f.cloneChildren(i)
	size := f.size(i)
	lo := i - size + 1
	f.removeRange(lo, i+1)
	f.bumpChildCount(p-size, -1)
	f.spliceDistinct(p-size, kids, lo)
}

// RemoveTree deletes the whole subtree rooted at i, promoting nothing.
func (f *Flat[T]) RemoveTree(i int) {
	p := f.parent(i)
	size := f.size(i)
	f.removeRange(i-size+1, i+1)
	if p >= 0 {
		f.bumpChildCount(p-size, -1)
	}
}
