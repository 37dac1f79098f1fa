// Package tsarray implements a generic resizable contiguous-buffer
// container with explicit capacity management.
//
// An [Array] owns a contiguous backing buffer of capacity slots and
// keeps its elements in the leading length slots, in insertion order.
// Capacity changes only through the resize engine, which asks the
// capacity planner for a target size and keeps a hysteresis window so
// alternating append/remove patterns don't thrash reallocation. Every
// size computation is validated by overflow-safe arithmetic before it
// reaches an allocation.
//
// Arrays are not thread-safe; see [Guarded] for a mutex-wrapped variant.
package tsarray

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/israel-lugo/tsarray/internal/checked"
)

// Array is a resizable contiguous container of T.
//
// Invariants, maintained by every operation:
//   - length <= capacity
//   - the backing buffer is nil iff capacity == 0
//   - elements occupy slots [0, length) with no holes
//
// On any failure the array is left exactly as it was before the call.
type Array[T any] struct {
	items    []T // len(items) == capacity; reallocated only by resize
	length   int
	capacity int
	elemSize int
	hint     int
	m        *metrics
}

// Cmp is a three-way comparator: negative when a orders before b, zero
// when equal, positive when a orders after b. State can be carried in
// the closure.
type Cmp[T any] func(a, b *T) int

// New creates an empty array. No memory is allocated until the first
// element arrives.
func New[T any](options ...Option) *Array[T] {
	cfg := newConfig(options...)
	var zero T
	return &Array[T]{
		elemSize: int(unsafe.Sizeof(zero)),
		hint:     cfg.hint,
		m:        cfg.metrics,
	}
}

// FromSlice creates an array holding a copy of src. An empty src yields
// an empty array and src is never read (it may be nil).
func FromSlice[T any](src []T, options ...Option) *Array[T] {
	a := New[T](options...)
	if len(src) == 0 {
		return a
	}
	// src already exists in memory, so its size is addressable and
	// resize can't fail
	_ = a.resize(len(src))
	copy(a.items, src)
	return a
}

// newOfLen creates an array of n uninitialized (zero-valued) slots.
func newOfLen[T any](n int) (*Array[T], error) {
	a := New[T]()
	if err := a.resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// Copy creates an independent copy of the array, carrying its length
// hint.
func (a *Array[T]) Copy() *Array[T] {
	c := FromSlice(a.items[:a.length])
	c.hint = a.hint
	return c
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.capacity
}

// Get returns a pointer to the element at index, or (nil, false) when
// index is outside the occupied range. The pointer stays valid until the
// next operation that resizes the array.
func (a *Array[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= a.length {
		return nil, false
	}
	return &a.items[index], true
}

// Iter returns a sequence of all elements in insertion order.
func (a *Array[T]) Iter() iter.Seq[T] {
	return slices.Values(a.items[:a.length])
}

// Append adds v at the end of the array, growing it if necessary.
// Amortized O(1). Fails with [ErrOverflow] when the new length is not
// representable.
func (a *Array[T]) Append(v T) error {
	oldLen := a.length
	if !checked.CanAdd(oldLen, 1) {
		return ErrOverflow
	}
	if err := a.resize(oldLen + 1); err != nil {
		return err
	}
	a.items[oldLen] = v
	return nil
}

// Extend appends a copy of all of src's elements. src is never modified,
// even when src and a are the same array: self-extension appends a copy
// of the current contents.
func (a *Array[T]) Extend(src *Array[T]) error {
	if src == nil {
		return ErrInvalidArgument
	}

	destLen := a.length
	srcLen := src.length
	if !checked.CanAdd(destLen, srcLen) {
		return ErrOverflow
	}

	if err := a.resize(destLen + srcLen); err != nil {
		return err
	}

	// When src == a the resize above may have moved the backing
	// buffer, but it also moved the source elements to [0, srcLen) of
	// the new buffer, and that range can't overlap the destination
	// range because srcLen <= destLen.
	copy(a.items[destLen:destLen+srcLen], src.items[:srcLen])
	return nil
}

// Remove deletes the element at index, shifting all elements with higher
// indexes one slot left. The array may shrink per the hysteresis rule.
// Fails with [ErrNotFound] when index is outside the occupied range;
// negative ("from the end") indexes are not supported.
func (a *Array[T]) Remove(index int) error {
	oldLen := a.length
	if index < 0 || index >= oldLen {
		return ErrNotFound
	}

	if index < oldLen-1 {
		copy(a.items[index:oldLen-1], a.items[index+1:oldLen])
	}

	// can't fail: oldLen-1 is an addressable slot count
	return a.resize(oldLen - 1)
}

// Truncate drops the array to its first n elements. Truncating to the
// current length is a no-op. The array may shrink per the hysteresis
// rule. Fails with [ErrInvalidArgument] when n is negative and with
// [ErrNotFound] when n is beyond the current length.
func (a *Array[T]) Truncate(n int) error {
	if n < 0 {
		return ErrInvalidArgument
	}
	if n > a.length {
		return ErrNotFound
	}
	return a.resize(n)
}

// Reset drops all elements. Capacity shrinks per the hysteresis rule,
// leaving the array ready for reuse.
func (a *Array[T]) Reset() {
	// can't fail: zero is always an addressable slot count
	_ = a.resize(0)
}
