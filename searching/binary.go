package searching

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmBinary is the name stamped on binary search steps.
const AlgorithmBinary = "Binary Search"

// Binary returns the step sequence of a binary search for target over a
// sorted arr. The probe point is (left+right)/2; each miss halves the
// window. Sortedness is a precondition, not validated.
// Complexity: O(log n)
func Binary[T constraints.Ordered](arr *seq.Array[T], target T) trace.Sequence[Detail[T]] {
	return func(yield func(trace.Step[Detail[T]]) bool) {
		emit := stepEmitter(AlgorithmBinary, arr, yield)
		data := arr.ToSlice()

		left, right := 0, len(data)-1

		d := newDetail(target)
		d.Left, d.Right = left, right
		if !emit(fmt.Sprintf("Initializing search for %v", target), d) {
			return
		}

		for left <= right {
			mid := (left + right) / 2

			d := newDetail(target)
			d.CurrentIndex, d.Left, d.Right, d.Mid = mid, left, right, mid
			if !emit(fmt.Sprintf("Checking middle element at index %d: %v. Search range: [%d..%d]", mid, data[mid], left, right), d) {
				return
			}

			switch {
			case data[mid] == target:
				d.FoundIndex = mid
				emit(fmt.Sprintf("Found %v at index %d", target, mid), d)

				return
			case data[mid] < target:
				d.Left = mid + 1
				if !emit(fmt.Sprintf("%v < %v, so target must be in the right half. Updating search range to [%d..%d]", data[mid], target, mid+1, right), d) {
					return
				}
				left = mid + 1
			default:
				d.Right = mid - 1
				if !emit(fmt.Sprintf("%v > %v, so target must be in the left half. Updating search range to [%d..%d]", data[mid], target, left, mid-1), d) {
					return
				}
				right = mid - 1
			}
		}

		d = newDetail(target)
		d.Left, d.Right = left, right
		emit(fmt.Sprintf("%v not found in array", target), d)
	}
}
