package searching

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmLinear is the name stamped on linear search steps.
const AlgorithmLinear = "Linear Search"

// Linear returns the step sequence of a linear scan for target: probe
// every index left to right until a match or the end of the array. Works
// on unsorted input.
// Complexity: O(n)
func Linear[T constraints.Ordered](arr *seq.Array[T], target T) trace.Sequence[Detail[T]] {
	return func(yield func(trace.Step[Detail[T]]) bool) {
		emit := stepEmitter(AlgorithmLinear, arr, yield)
		data := arr.ToSlice()

		for i, v := range data {
			d := newDetail(target)
			d.CurrentIndex = i
			if !emit(fmt.Sprintf("Checking element at index %d: %v", i, v), d) {
				return
			}

			if v == target {
				d.FoundIndex = i
				emit(fmt.Sprintf("Found %v at index %d", target, i), d)

				return
			}
		}

		emit(fmt.Sprintf("%v not found in array", target), newDetail(target))
	}
}
