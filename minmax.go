package tsarray

// Min returns a pointer to the smallest element under cmp, scanning the
// whole array. Ties resolve to the leftmost element. Returns (nil,
// false) for an empty array.
func (a *Array[T]) Min(cmp Cmp[T]) (*T, bool) {
	if a.length == 0 {
		return nil, false
	}
	best := &a.items[0]
	for i := 1; i < a.length; i++ {
		if cmp(&a.items[i], best) < 0 {
			best = &a.items[i]
		}
	}
	return best, true
}

// Max returns a pointer to the largest element under cmp, scanning the
// whole array. Ties resolve to the leftmost element. Returns (nil,
// false) for an empty array.
func (a *Array[T]) Max(cmp Cmp[T]) (*T, bool) {
	if a.length == 0 {
		return nil, false
	}
	best := &a.items[0]
	for i := 1; i < a.length; i++ {
		if cmp(&a.items[i], best) > 0 {
			best = &a.items[i]
		}
	}
	return best, true
}
