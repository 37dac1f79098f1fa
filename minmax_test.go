package tsarray_test

import (
	"strings"
	"testing"

	"github.com/israel-lugo/tsarray"
	"github.com/israel-lugo/tsarray/internal/testing/require"
)

func intCmp(a, b *int) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func TestMinMaxEmpty(t *testing.T) {
	a := tsarray.New[int]()

	_, ok := a.Min(intCmp)
	require.Equal(t, ok, false)

	_, ok = a.Max(intCmp)
	require.Equal(t, ok, false)
}

func TestMinMaxSingle(t *testing.T) {
	const start = 47

	a := tsarray.New[int]()
	appendSeq(t, a, start, start+1)

	first, _ := a.Get(0)

	minVal, ok := a.Min(intCmp)
	require.True(t, ok)
	require.True(t, minVal == first)
	require.Equal(t, *minVal, start)

	maxVal, ok := a.Max(intCmp)
	require.True(t, ok)
	require.True(t, maxVal == first)
	require.Equal(t, *maxVal, start)
}

func TestMinMaxTwoItems(t *testing.T) {
	a := tsarray.New[int]()
	appendSeq(t, a, 0, 2)

	minVal, ok := a.Min(intCmp)
	require.True(t, ok)
	require.Equal(t, *minVal, 0)

	maxVal, ok := a.Max(intCmp)
	require.True(t, ok)
	require.Equal(t, *maxVal, 1)
}

// Ties resolve to the leftmost element.
func TestMinMaxDuplicates(t *testing.T) {
	const x = 47

	a := tsarray.New[int]()
	for range 3 {
		require.Nil(t, a.Append(x))
	}

	first, _ := a.Get(0)

	minVal, ok := a.Min(intCmp)
	require.True(t, ok)
	require.True(t, minVal == first)

	maxVal, ok := a.Max(intCmp)
	require.True(t, ok)
	require.True(t, maxVal == first)
}

func TestMinMaxUnordered(t *testing.T) {
	a := tsarray.FromSlice([]int{5, -3, 12, 0, -3, 12, 7})

	minVal, ok := a.Min(intCmp)
	require.True(t, ok)
	require.Equal(t, *minVal, -3)
	leftmostMin, _ := a.Get(1)
	require.True(t, minVal == leftmostMin)

	maxVal, ok := a.Max(intCmp)
	require.True(t, ok)
	require.Equal(t, *maxVal, 12)
	leftmostMax, _ := a.Get(2)
	require.True(t, maxVal == leftmostMax)
}

// The comparator is a closure, so callers can carry their own state.
func TestMinMaxClosureState(t *testing.T) {
	a := tsarray.FromSlice([]string{"pear", "Apple", "orange"})

	var calls int
	caseless := func(x, y *string) int {
		calls++
		return strings.Compare(strings.ToLower(*x), strings.ToLower(*y))
	}

	minVal, ok := a.Min(caseless)
	require.True(t, ok)
	require.Equal(t, *minVal, "Apple")
	require.Equal(t, calls, a.Len()-1)
}
