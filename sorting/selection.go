package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmSelection is the name stamped on selection sort steps.
const AlgorithmSelection = "Selection Sort"

// Selection returns the step sequence of a selection sort over arr.
// Long-range swaps can reorder equal keys, so selection sort is not
// stable.
// Complexity: O(n^2)
func Selection[T constraints.Ordered](arr *seq.Array[T]) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		raw := stepEmitter(AlgorithmSelection, arr, yield)
		emit := func(desc string, d Detail) bool {
			d.Pivot = NoIndex

			return raw(desc, d)
		}

		n := arr.Len()
		data := arr.ToSlice()

		for i := 0; i < n; i++ {
			minIdx := i

			if !emit(fmt.Sprintf("Finding minimum element starting from index %d", i), Detail{
				Sorted:  span(0, i),
				Current: []int{i},
			}) {
				return
			}

			for j := i + 1; j < n; j++ {
				if !emit(fmt.Sprintf("Comparing %v with current minimum %v", data[j], data[minIdx]), Detail{
					Comparing: []int{j, minIdx},
					Sorted:    span(0, i),
					Current:   []int{j, minIdx},
				}) {
					return
				}

				if data[j] < data[minIdx] {
					minIdx = j
				}
			}

			if minIdx != i {
				if !emit(fmt.Sprintf("Swapping %v with minimum %v", data[i], data[minIdx]), Detail{
					Swapping: []int{i, minIdx},
					Sorted:   span(0, i),
					Current:  []int{i, minIdx},
				}) {
					return
				}

				data[i], data[minIdx] = data[minIdx], data[i]
				_ = arr.Set(i, data[i])
				_ = arr.Set(minIdx, data[minIdx])
			}

			if !emit(fmt.Sprintf("Element %v is now in its correct position", data[i]), Detail{
				Sorted:  span(0, i+1),
				Current: []int{i},
			}) {
				return
			}
		}

		emit("Array is now sorted", Detail{Sorted: span(0, n)})
	}
}
