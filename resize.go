package tsarray

import (
	"github.com/israel-lugo/tsarray/internal/capacity"
	"github.com/israel-lugo/tsarray/internal/checked"
)

// resize sets the array's length, adjusting capacity when the planner
// asks for it. This is the only place the backing buffer and capacity
// change; all operations route length changes through here.
//
// Fails with ErrOutOfMemory, before touching the allocator, when newLen
// is not an addressable slot count. On failure the array is unchanged.
func (a *Array[T]) resize(newLen int) error {
	if newLen == a.length {
		return nil
	}
	if !checked.ValidSlotCount(newLen, a.elemSize) {
		return ErrOutOfMemory
	}

	oldCap := a.capacity
	newCap := a.plan(newLen)
	if newCap != oldCap {
		var items []T
		if newCap > 0 {
			items = make([]T, newCap)
			copy(items, a.items[:min(a.length, newLen)])
		}
		a.items = items
		a.capacity = newCap
		a.m.reallocated(oldCap, newCap)
	} else if newLen < a.length {
		// release references held by the vacated slots
		clear(a.items[newLen:a.length])
	}

	a.length = newLen
	a.m.sized(a.length, a.capacity)

	return nil
}

// plan picks the target capacity for newLen, biased by the length hint
// when one was configured.
func (a *Array[T]) plan(newLen int) int {
	if a.hint > 0 {
		return capacity.PlanWithHint(a.elemSize, a.capacity, newLen, a.hint)
	}
	return capacity.Plan(a.elemSize, a.capacity, newLen)
}
