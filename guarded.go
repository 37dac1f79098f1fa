package tsarray

import "sync"

// Guarded wraps an [Array] with a mutex, serializing every operation.
// It is the intended way to share an array between goroutines; the bare
// array has no internal synchronization.
//
// Accessors return element copies rather than pointers, so no reference
// into the backing buffer escapes the lock.
type Guarded[T any] struct {
	mu  sync.Mutex
	arr *Array[T]
}

// Guard wraps arr. The caller must not use arr directly afterwards.
func Guard[T any](arr *Array[T]) *Guarded[T] {
	if arr == nil {
		panic("array can't be nil")
	}
	return &Guarded[T]{arr: arr}
}

// Append adds v at the end of the array.
func (g *Guarded[T]) Append(v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arr.Append(v)
}

// Remove deletes the element at index.
func (g *Guarded[T]) Remove(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arr.Remove(index)
}

// Truncate drops the array to its first n elements.
func (g *Guarded[T]) Truncate(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arr.Truncate(n)
}

// Reset drops all elements.
func (g *Guarded[T]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.arr.Reset()
}

// Len returns the number of elements in the array.
func (g *Guarded[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arr.Len()
}

// Cap returns the number of allocated slots.
func (g *Guarded[T]) Cap() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arr.Cap()
}

// Get returns a copy of the element at index.
func (g *Guarded[T]) Get(index int) (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.arr.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Min returns a copy of the smallest element under cmp.
func (g *Guarded[T]) Min(cmp Cmp[T]) (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.arr.Min(cmp)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Max returns a copy of the largest element under cmp.
func (g *Guarded[T]) Max(cmp Cmp[T]) (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.arr.Max(cmp)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Snapshot returns an independent copy of the current contents.
func (g *Guarded[T]) Snapshot() *Array[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arr.Copy()
}
