package tsarray

// Slice creates a new array holding the elements at indexes start,
// start+step, start+2*step, ... for as long as the index stays inside
// [min(start,stop), max(start,stop)) and strictly before stop in the
// direction of step. step may be negative to slice backward, but not
// zero.
//
// The result is empty when start == stop, when the direction of step
// contradicts stop-start, or when the lower bound is at or past the end
// of the array. When stepping backward from a start past the end, the
// effective start is clamped to the last element. A step magnitude
// larger than the range yields the single element at the effective
// start.
//
// Negative ("from the end") indexes are not supported; negative start or
// stop fails with [ErrInvalidArgument], as does a zero step.
func (a *Array[T]) Slice(start, stop, step int) (*Array[T], error) {
	// zero step makes no sense
	if step == 0 {
		return nil, ErrInvalidArgument
	}
	if start < 0 || stop < 0 {
		return nil, ErrInvalidArgument
	}

	lo := min(start, stop)
	hi := min(max(start, stop), a.length)

	if start == stop || // requested empty slice
		(start < stop) != (step > 0) || // direction contradicts step
		lo >= a.length { // lower bound beyond array
		return New[T](), nil
	}

	if step == 1 {
		// straightforward cut
		return FromSlice(a.items[lo:hi]), nil
	}

	abs := step
	if abs < 0 {
		abs = -abs
	}
	n := 1 + (hi-lo-1)/abs

	out, err := newOfLen[T](n)
	if err != nil {
		return nil, err
	}

	// when going backward, the caller may start beyond the array
	effStart := min(start, a.length-1)
	for i := range n {
		out.items[i] = a.items[effStart+i*step]
	}
	return out, nil
}
