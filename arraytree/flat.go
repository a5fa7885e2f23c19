package arraytree

import (
	"github.com/npillmayer/arbor/buffer"
)

// Flat is a mutable forest encoding backed by growable buffers. It is
// the working representation behind every mutation: callers copy an
// immutable encoding in, splice index ranges in place, and detach the
// result as a fresh immutable encoding.
//
// A Flat trusts its callers to keep the encoding valid. The mutation
// entry points in this package do; code appending raw nodes must run
// Check before handing the arrays onward. Flats are not safe for
// concurrent use.
type Flat[T comparable] struct {
	structure *buffer.Buffer[int]
	values    *buffer.Buffer[T]
}

// NewFlat creates an empty Flat with preallocated capacity.
func NewFlat[T comparable](capacity int) *Flat[T] {
	return &Flat[T]{
		structure: buffer.New[int](capacity),
		values:    buffer.New[T](capacity),
	}
}

// FlatOf creates a Flat holding a copy of the given encoding.
func FlatOf[T comparable](structure []int, values []T) *Flat[T] {
	return &Flat[T]{
		structure: buffer.Of(structure...),
		values:    buffer.Of(values...),
	}
}

// Len returns the number of nodes in the forest.
func (f *Flat[T]) Len() int {
	return f.structure.Len()
}

// IsEmpty reports whether the forest holds no nodes.
func (f *Flat[T]) IsEmpty() bool {
	return f.structure.IsEmpty()
}

// View returns a zero-copy view of the whole forest. The view is
// invalidated by the next mutation.
func (f *Flat[T]) View() Subtree[T] {
	return Subtree[T]{Structure: f.counts(), Values: f.items()}
}

// Snapshot returns an independent copy of the encoding arrays.
func (f *Flat[T]) Snapshot() ([]int, []T) {
	return f.structure.Snapshot(), f.values.Snapshot()
}

// Detach hands the backing arrays over to the caller and empties the
// Flat. The arrays are not copied.
func (f *Flat[T]) Detach() ([]int, []T) {
	return f.structure.Detach(), f.values.Detach()
}

// Reset drops all nodes but keeps the allocated capacity.
func (f *Flat[T]) Reset() {
	f.structure.Reset()
	f.values.Reset()
}

// Roots returns the root indexes of all top-level trees, leftmost first.
func (f *Flat[T]) Roots() []int {
	return Roots(f.counts())
}

// AppendTree appends an encoded fragment above the current top. A
// single-tree fragment becomes a new top-level tree to the right of the
// existing ones.
func (f *Flat[T]) AppendTree(sub Subtree[T]) {
	f.structure.Append(sub.Structure...)
	f.values.Append(sub.Values...)
}

// AppendNode appends one raw (childCount, value) entry. The new node
// adopts the topmost childCount trees of the forest as its children.
// The caller is responsible for childCount not exceeding the number of
// top-level trees; violating that leaves the encoding malformed.
func (f *Flat[T]) AppendNode(childCount int, value T) {
	f.structure.Append(childCount)
	f.values.Append(value)
}

// counts returns the live child-count array. Views must be re-fetched
// after any mutation, growth may have moved the backing store.
func (f *Flat[T]) counts() []int {
	return f.structure.Slice(0, f.structure.Len())
}

func (f *Flat[T]) items() []T {
	return f.values.Slice(0, f.values.Len())
}

func (f *Flat[T]) size(i int) int {
	return Size(f.counts(), i)
}

func (f *Flat[T]) bottom(i int) int {
	return Bottom(f.counts(), i)
}

func (f *Flat[T]) parent(i int) int {
	return ParentIndex(f.counts(), i)
}

// insertAt splices an encoded fragment into the arrays at position pos.
// Indexes at and above pos shift up by the fragment length.
func (f *Flat[T]) insertAt(pos int, sub Subtree[T]) {
	f.structure.InsertSlice(pos, sub.Structure)
	f.values.InsertSlice(pos, sub.Values)
}

// removeRange deletes the index range [i, j) from both arrays.
func (f *Flat[T]) removeRange(i, j int) {
	f.structure.RemoveRange(i, j)
	f.values.RemoveRange(i, j)
}

// removeNode deletes the single entry at index i.
func (f *Flat[T]) removeNode(i int) {
	f.structure.RemoveAt(i)
	f.values.RemoveAt(i)
}

// bumpChildCount adjusts the declared child count of node i. Dropping a
// count below zero means a mutation removed a child its parent never
// declared, which is an unrecoverable encoding corruption.
func (f *Flat[T]) bumpChildCount(i, delta int) {
	n := f.structure.At(i) + delta
	assert(n >= 0, "arraytree: child count drops below zero")
	f.structure.Set(i, n)
}

// childWithValue returns the index of the leftmost direct child of
// parent carrying value v, or -1.
func (f *Flat[T]) childWithValue(parent int, v T) int {
	return f.childWithValueExcluding(parent, v, -1)
}

// childWithValueExcluding is childWithValue skipping the child at index
// excluded.
func (f *Flat[T]) childWithValueExcluding(parent int, v T, excluded int) int {
	items := f.items()
	for _, c := range ChildIndices(f.counts(), parent) {
		if c != excluded && items[c] == v {
			return c
		}
	}
	return -1
}

// cloneChildren returns deep copies of the direct child subtrees of
// node i, leftmost first. Copies stay valid across later mutations.
func (f *Flat[T]) cloneChildren(i int) []Subtree[T] {
	counts := f.counts()
	items := f.items()
	indexes := ChildIndices(counts, i)
	out := make([]Subtree[T], len(indexes))
	for k, c := range indexes {
		out[k] = Sub(counts, items, c).Clone()
	}
	return out
}
