package buffer

import (
	"iter"
	"slices"
)

// Buffer is a growable array of items with positional editing.
//
// It is the backing store for array-encoded trees: tree mutations splice
// whole index ranges in and out, so Buffer favors slice-level operations
// over item-level ones. Growth is amortized (geometric reallocation).
//
// A Buffer is not safe for concurrent mutation.
type Buffer[T any] struct {
	items []T
}

// New creates a buffer with preallocated capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{items: make([]T, 0, capacity)}
}

// Of creates a buffer holding a copy of items.
func Of[T any](items ...T) *Buffer[T] {
	return &Buffer[T]{items: slices.Clone(items)}
}

// Len returns the number of items.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// IsEmpty reports whether the buffer holds no items.
func (b *Buffer[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// At returns the item at position i. Panics for out-of-range positions,
// like slice indexing does.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= len(b.items) {
		panic("buffer: position out of range")
	}
	return b.items[i]
}

// Set overwrites the item at position i.
func (b *Buffer[T]) Set(i int, item T) {
	if i < 0 || i >= len(b.items) {
		panic("buffer: position out of range")
	}
	b.items[i] = item
}

// Top returns the item at the highest position.
func (b *Buffer[T]) Top() T {
	if len(b.items) == 0 {
		panic("buffer: top of empty buffer")
	}
	return b.items[len(b.items)-1]
}

// Append adds items at the end.
func (b *Buffer[T]) Append(items ...T) {
	b.items = append(b.items, items...)
}

// InsertSlice inserts items at position i, shifting items at i and above
// upwards. i == Len() appends.
func (b *Buffer[T]) InsertSlice(i int, items []T) {
	if i < 0 || i > len(b.items) {
		panic("buffer: position out of range")
	}
	b.items = slices.Insert(b.items, i, items...)
}

// RemoveAt removes the single item at position i, shifting items above it
// downwards.
func (b *Buffer[T]) RemoveAt(i int) {
	b.RemoveRange(i, i+1)
}

// RemoveRange removes items in [i,j), shifting items at j and above
// downwards.
func (b *Buffer[T]) RemoveRange(i, j int) {
	if i < 0 || j < i || j > len(b.items) {
		panic("buffer: range out of range")
	}
	b.items = slices.Delete(b.items, i, j)
}

// Slice returns a zero-copy view of [i,j).
//
// The view aliases buffer memory and is invalidated by any subsequent
// mutation of the buffer. Callers must not write through it.
func (b *Buffer[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(b.items) {
		panic("buffer: range out of range")
	}
	return b.items[i:j:j]
}

// Detach hands the backing slice over to the caller and empties the
// buffer. The caller becomes the sole owner of the slice.
func (b *Buffer[T]) Detach() []T {
	items := b.items
	b.items = nil
	return items
}

// Snapshot returns a copy of all items.
func (b *Buffer[T]) Snapshot() []T {
	return slices.Clone(b.items)
}

// Reset drops all items but keeps the allocated capacity.
func (b *Buffer[T]) Reset() {
	b.items = b.items[:0]
}

// Grow reserves capacity for n more items.
func (b *Buffer[T]) Grow(n int) {
	b.items = slices.Grow(b.items, n)
}

// Values returns an iterator over all items in position order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range b.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over position/item pairs in reverse order.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(b.items) - 1; i >= 0; i-- {
			if !yield(i, b.items[i]) {
				return
			}
		}
	}
}

// Select returns an iterator over the items satisfying pred, in position
// order. A nil predicate selects every item.
func (b *Buffer[T]) Select(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range b.items {
			if pred != nil && !pred(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
