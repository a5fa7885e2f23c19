package arraytree

// mergeJob is one level of a pending distinct splice: subs still to be
// placed under parent, with cursor marking where the next non-merging
// sub will be inserted.
type mergeJob[T comparable] struct {
	parent int
	subs   []Subtree[T]
	cursor int
}

// spliceDistinct splices subs under parent at cursor, enforcing distinct
// sibling semantics. A sub whose top value equals an existing child is
// not inserted; instead its children are spliced under that child, in
// front of the child's own children, with the same rule applied again at
// every level. Nested merges are resolved deepest first.
//
// subs must not alias the Flat's own arrays. Callers splicing content
// captured from f clone it first.
func (f *Flat[T]) spliceDistinct(parent int, subs []Subtree[T], cursor int) {
	stack := []mergeJob[T]{{parent: parent, subs: subs, cursor: cursor}}
	for len(stack) > 0 {
		ti := len(stack) - 1
		if len(stack[ti].subs) == 0 {
			stack = stack[:ti]
			continue
		}
		sub := stack[ti].subs[0]
		stack[ti].subs = stack[ti].subs[1:]
		if sub.IsEmpty() {
			continue
		}
		if e := f.childWithValue(stack[ti].parent, sub.Root()); e >= 0 {
			// collision: descend into the existing child before placing
			// the remaining siblings
			stack = append(stack, mergeJob[T]{
				parent: e,
				subs:   sub.Children(),
				cursor: f.bottom(e),
			})
			continue
		}
		pos := stack[ti].cursor
		f.insertAt(pos, sub)
		delta := sub.Len()
		for k := range stack {
			if stack[k].parent >= pos {
				stack[k].parent += delta
			}
			if stack[k].cursor > pos {
				stack[k].cursor += delta
			}
		}
		f.bumpChildCount(stack[ti].parent, 1)
		stack[ti].cursor += delta
	}
}

// InsertValue attaches value as a new first child of node i. Under
// distinct semantics an existing child with an equal value absorbs the
// insert instead, leaving the encoding unchanged.
func (f *Flat[T]) InsertValue(i int, value T, distinct bool) {
	f.InsertTree(i, Leaf(value), distinct)
}

// InsertTree attaches a whole subtree as a new first child of node i.
// Under distinct semantics a sub whose root value collides with an
// existing child of i is merged into that child, children first, with
// nested collisions resolved the same way. Inserting the empty tree is a
// no-op.
//
// sub must not alias the Flat's own arrays.
func (f *Flat[T]) InsertTree(i int, sub Subtree[T], distinct bool) {
	if sub.IsEmpty() {
		return
	}
	if distinct {
		f.spliceDistinct(i, []Subtree[T]{sub}, f.bottom(i))
		return
	}
	pos := f.bottom(i)
	f.insertAt(pos, sub)
	f.bumpChildCount(i+sub.Len(), 1)
}

// InsertChildren splices a list of subtrees in front of the existing
// children of node i, preserving their relative order. Lax semantics
// place every sub; distinct semantics merge colliding subs as described
// for InsertTree. Empty subs are skipped.
//
// The subs must not alias the Flat's own arrays.
func (f *Flat[T]) InsertChildren(i int, subs []Subtree[T], distinct bool) {
	if distinct {
		f.spliceDistinct(i, subs, f.bottom(i))
		return
	}
	pos := f.bottom(i)
	cursor := pos
	count := 0
	for _, sub := range subs {
		if sub.IsEmpty() {
			continue
		}
		f.insertAt(cursor, sub)
		cursor += sub.Len()
		count++
	}
	f.bumpChildCount(i+cursor-pos, count)
}

// InsertBranch grafts a linear chain of values onto the forest. The
// first branch value must equal the value of node i; the remaining
// values hang below it. Under distinct semantics existing children are
// walked as far as their values match the branch, and only the unmatched
// suffix is attached as a fresh chain. Lax semantics attach the whole
// tail as a new chain under i.
//
// A negative i appends the branch as a new top-level tree. InsertBranch
// reports whether the branch was placed; a first value not matching node
// i is the one failure mode.
func (f *Flat[T]) InsertBranch(i int, branch []T, distinct bool) bool {
	if len(branch) == 0 {
		return true
	}
	if i < 0 {
		f.AppendTree(Chain(branch))
		return true
	}
	if f.values.At(i) != branch[0] {
		return false
	}
	cur := i
	rest := branch[1:]
	if distinct {
		for len(rest) > 0 {
			c := f.childWithValue(cur, rest[0])
			if c < 0 {
				break
			}
			cur = c
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		return true
	}
	chain := Chain(rest)
	pos := f.bottom(cur)
	f.insertAt(pos, chain)
	f.bumpChildCount(cur+chain.Len(), 1)
	return true
}
