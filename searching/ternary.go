package searching

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmTernary is the name stamped on ternary search steps.
const AlgorithmTernary = "Ternary Search"

// Ternary returns the step sequence of a ternary search for target over a
// sorted arr. Two cut points at one and two thirds of the window split it
// into three parts; each round keeps one of them. Sortedness is a
// precondition, not validated.
// Complexity: O(log n)
func Ternary[T constraints.Ordered](arr *seq.Array[T], target T) trace.Sequence[Detail[T]] {
	return func(yield func(trace.Step[Detail[T]]) bool) {
		emit := stepEmitter(AlgorithmTernary, arr, yield)
		data := arr.ToSlice()

		left, right := 0, len(data)-1

		d := newDetail(target)
		d.Left, d.Right = left, right
		if !emit(fmt.Sprintf("Initializing ternary search for %v", target), d) {
			return
		}

		for left <= right {
			mid1 := left + (right-left)/3
			mid2 := right - (right-left)/3

			d := newDetail(target)
			d.Left, d.Right, d.Mid, d.Mid2 = left, right, mid1, mid2

			d.CurrentIndex = mid1
			if !emit(fmt.Sprintf("Checking first third at index %d: %v", mid1, data[mid1]), d) {
				return
			}
			if data[mid1] == target {
				d.FoundIndex = mid1
				emit(fmt.Sprintf("Found %v at index %d", target, mid1), d)

				return
			}

			d.CurrentIndex = mid2
			if !emit(fmt.Sprintf("Checking second third at index %d: %v", mid2, data[mid2]), d) {
				return
			}
			if data[mid2] == target {
				d.FoundIndex = mid2
				emit(fmt.Sprintf("Found %v at index %d", target, mid2), d)

				return
			}

			switch {
			case target < data[mid1]:
				d.CurrentIndex, d.Left, d.Right = mid1, left, mid1-1
				if !emit(fmt.Sprintf("%v < %v, searching first third", target, data[mid1]), d) {
					return
				}
				right = mid1 - 1
			case target > data[mid2]:
				d.CurrentIndex, d.Left, d.Right = mid2, mid2+1, right
				if !emit(fmt.Sprintf("%v > %v, searching third third", target, data[mid2]), d) {
					return
				}
				left = mid2 + 1
			default:
				d.CurrentIndex, d.Left, d.Right = NoIndex, mid1+1, mid2-1
				if !emit(fmt.Sprintf("%v < %v < %v, searching middle third", data[mid1], target, data[mid2]), d) {
					return
				}
				left, right = mid1+1, mid2-1
			}
		}

		d = newDetail(target)
		d.Left, d.Right = left, right
		emit(fmt.Sprintf("%v not found in array", target), d)
	}
}
