package searching

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmExponential is the name stamped on exponential search steps.
const AlgorithmExponential = "Exponential Search"

// Exponential returns the step sequence of an exponential search for
// target over a sorted arr: double a probe index until the value there
// exceeds target, then binary-search the bracketed range
// [i/2, min(i, n-1)]. Sortedness is a precondition, not validated.
// Complexity: O(log n)
func Exponential[T constraints.Ordered](arr *seq.Array[T], target T) trace.Sequence[Detail[T]] {
	return func(yield func(trace.Step[Detail[T]]) bool) {
		emit := stepEmitter(AlgorithmExponential, arr, yield)
		data := arr.ToSlice()
		n := len(data)

		d := newDetail(target)
		d.Left, d.Right, d.RangeStart = 0, n-1, 0
		d.Phase = PhaseRangeFinding
		if !emit(fmt.Sprintf("Initializing exponential search for %v", target), d) {
			return
		}

		if n == 0 {
			d.Phase = PhaseNotFound
			emit(fmt.Sprintf("%v not found in array", target), d)

			return
		}

		if data[0] == target {
			d := newDetail(target)
			d.CurrentIndex, d.FoundIndex = 0, 0
			d.Left, d.Right, d.RangeStart, d.RangeEnd = 0, 0, 0, 0
			d.Phase = PhaseFound
			emit(fmt.Sprintf("Found %v at index 0", target), d)

			return
		}

		// 1. Double the probe index until it overshoots the target.
		i := 1
		for i < n && data[i] <= target {
			probeEnd := min(i*2-1, n-1)

			d := newDetail(target)
			d.CurrentIndex = i
			d.Left, d.Right = 0, probeEnd
			d.RangeStart, d.RangeEnd = i/2, probeEnd
			d.Phase = PhaseRangeFinding
			if !emit(fmt.Sprintf("Checking index %d: %v, expanding range exponentially", i, data[i]), d) {
				return
			}

			if data[i] == target {
				d.FoundIndex = i
				d.Left = i / 2
				d.Phase = PhaseFound
				emit(fmt.Sprintf("Found %v at index %d during range finding", target, i), d)

				return
			}

			i *= 2
		}

		rangeStart := i / 2
		rangeEnd := min(i, n-1)

		d = newDetail(target)
		d.Left, d.Right = rangeStart, rangeEnd
		d.RangeStart, d.RangeEnd = rangeStart, rangeEnd
		d.Phase = PhaseBinarySearch
		if !emit(fmt.Sprintf("Range found: [%d..%d], switching to binary search", rangeStart, rangeEnd), d) {
			return
		}

		// 2. Binary search within the bracketed range.
		left, right := rangeStart, rangeEnd
		for left <= right {
			mid := (left + right) / 2

			d := newDetail(target)
			d.CurrentIndex, d.Left, d.Right = mid, left, right
			d.RangeStart, d.RangeEnd = rangeStart, rangeEnd
			d.Phase = PhaseBinarySearch
			if !emit(fmt.Sprintf("Binary search: checking middle element at index %d: %v", mid, data[mid]), d) {
				return
			}

			switch {
			case data[mid] == target:
				d.FoundIndex = mid
				d.Phase = PhaseFound
				emit(fmt.Sprintf("Found %v at index %d", target, mid), d)

				return
			case data[mid] < target:
				d.Left = mid + 1
				if !emit(fmt.Sprintf("%v < %v, searching right half", data[mid], target), d) {
					return
				}
				left = mid + 1
			default:
				d.Right = mid - 1
				if !emit(fmt.Sprintf("%v > %v, searching left half", data[mid], target), d) {
					return
				}
				right = mid - 1
			}
		}

		d = newDetail(target)
		d.Left, d.Right = left, right
		d.RangeStart, d.RangeEnd = rangeStart, rangeEnd
		d.Phase = PhaseNotFound
		emit(fmt.Sprintf("%v not found in array", target), d)
	}
}
