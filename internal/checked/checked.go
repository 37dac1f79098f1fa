// Package checked provides overflow-safe arithmetic over the index type.
//
// Every size computation that ends up in an allocation or a slot offset
// must go through these predicates first. All functions are total: they
// report or clamp, they never fail.
package checked

import "math"

// CanAdd reports whether x+y is representable in an int.
func CanAdd(x, y int) bool {
	return (y <= 0 || x <= math.MaxInt-y) &&
		(y >= 0 || x >= math.MinInt-y)
}

// CanMul reports whether x*y is representable in an int.
func CanMul(x, y int) bool {
	// avoid division by zero
	if y == 0 {
		return true
	}
	// two's complement can't represent MinInt/(-1)
	if y == -1 {
		return x >= -math.MaxInt
	}

	maxOverY := math.MaxInt / y
	minOverY := math.MinInt / y

	if y > 0 {
		return x <= maxOverY && x >= minOverY
	}
	return x >= maxOverY && x <= minOverY
}

// AddCapped returns x+y, clamped to limit when the sum would overflow or
// exceed it.
func AddCapped(x, y, limit int) int {
	if !CanAdd(x, y) {
		return limit
	}
	if s := x + y; s <= limit {
		return s
	}
	return limit
}

// FitsIndex reports whether an unsigned value is representable as a
// non-negative int.
func FitsIndex(x uint64) bool {
	return x <= math.MaxInt
}

// ValidSlotCount reports whether n slots of elemSize bytes each are
// addressable: n is a valid index, n*elemSize is representable, and the
// byte range of the last slot does not run past the addressable range.
func ValidSlotCount(n, elemSize int) bool {
	if n < 0 || elemSize < 0 {
		return false
	}
	// n*elemSize representable implies (n-1)*elemSize+elemSize is too
	return CanMul(n, elemSize)
}

// MaxSlots returns the largest n for which ValidSlotCount(n, elemSize)
// holds.
func MaxSlots(elemSize int) int {
	if elemSize <= 1 {
		return math.MaxInt
	}
	return math.MaxInt / elemSize
}
