// Package capacity computes target buffer capacities for the array
// engine. The planners are pure functions; they never allocate and never
// fail. For valid inputs (newLen itself an addressable slot count) the
// result is always >= newLen, always addressable, and idempotent.
package capacity

import "github.com/israel-lugo/tsarray/internal/checked"

const (
	// GrowthRatio controls the free margin added on reallocation:
	// capacity = newLen + newLen/GrowthRatio + MinMargin.
	GrowthRatio = 8
	// MinMargin is the smallest margin added on reallocation.
	// Must be <= MaxInt - MaxInt/GrowthRatio so the margin can't
	// overflow on its own.
	MinMargin = 4
	// ShrinkRatio bounds the hysteresis window: capacity is left
	// alone while newLen stays within [cap/ShrinkRatio, cap].
	ShrinkRatio = 2
)

// Plan returns the capacity to hold newLen slots of elemSize bytes,
// given the current capacity.
//
// While newLen stays inside the hysteresis window [oldCap/ShrinkRatio,
// oldCap] the old capacity is kept, so alternating append/remove
// patterns don't thrash the allocator. Outside the window the new
// capacity is newLen plus a margin; the margin is dropped when it would
// overflow, and the result is clamped to the largest addressable slot
// count for elemSize.
func Plan(elemSize, oldCap, newLen int) int {
	if newLen <= oldCap && newLen >= oldCap/ShrinkRatio {
		return oldCap
	}

	// newLen/GrowthRatio + MinMargin can't overflow (see MinMargin)
	margin := newLen/GrowthRatio + MinMargin
	if !checked.CanAdd(newLen, margin) {
		margin = 0
	}

	c := newLen + margin
	if !checked.ValidSlotCount(c, elemSize) {
		c = checked.MaxSlots(elemSize)
	}
	return c
}

// PlanWithHint is Plan biased toward an expected steady-state length.
//
// The hint is treated as an estimated mean with standard deviation
// hint/3. Far below the hint (more than two deviations under) growth is
// clamped to two-deviations-under; between two and one deviations under,
// capacity grows linearly with slope 2 toward the hint; within one
// deviation of the hint the capacity snaps to the hint exactly, so an
// array oscillating around its expected length never reallocates; above
// the hint only a small fixed margin is added.
func PlanWithHint(elemSize, oldCap, newLen, hint int) int {
	if newLen <= oldCap && newLen >= oldCap/ShrinkRatio {
		return oldCap
	}
	if hint <= 0 {
		return Plan(elemSize, oldCap, newLen)
	}

	sigma := hint / 3
	floor := hint - 2*sigma

	var target int
	switch {
	case newLen > hint:
		target = checked.AddCapped(newLen, MinMargin, checked.MaxSlots(elemSize))
	case newLen >= hint-sigma:
		target = hint
	case newLen >= floor:
		target = floor + 2*(newLen-floor)
	default:
		target = floor
	}

	if target < newLen {
		target = newLen
	}
	if !checked.ValidSlotCount(target, elemSize) {
		target = checked.MaxSlots(elemSize)
	}
	return target
}
