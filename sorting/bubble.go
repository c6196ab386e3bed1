package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmBubble is the name stamped on bubble sort steps.
const AlgorithmBubble = "Bubble Sort"

// Bubble returns the step sequence of a bubble sort over arr. Adjacent
// elements swap only on strict >, so equal keys keep their relative order
// (stable); a pass with no swap ends the run early.
// Complexity: O(n^2), best O(n)
func Bubble[T constraints.Ordered](arr *seq.Array[T]) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		raw := stepEmitter(AlgorithmBubble, arr, yield)
		emit := func(desc string, d Detail) bool {
			d.Pivot = NoIndex

			return raw(desc, d)
		}

		n := arr.Len()
		data := arr.ToSlice()

		for i := 0; i < n; i++ {
			swapped := false

			for j := 0; j < n-i-1; j++ {
				if !emit(fmt.Sprintf("Comparing elements at indices %d and %d", j, j+1), Detail{
					Comparing: []int{j, j + 1},
					Sorted:    span(n-i, n),
					Current:   []int{j},
				}) {
					return
				}

				if data[j] > data[j+1] {
					data[j], data[j+1] = data[j+1], data[j]
					_ = arr.Set(j, data[j])
					_ = arr.Set(j+1, data[j+1])
					swapped = true

					if !emit(fmt.Sprintf("Swapping elements at indices %d and %d", j, j+1), Detail{
						Comparing: []int{j, j + 1},
						Swapping:  []int{j, j + 1},
						Sorted:    span(n-i, n),
						Current:   []int{j},
					}) {
						return
					}
				}
			}

			if !swapped {
				break
			}
		}

		emit("Array is now sorted", Detail{Sorted: span(0, n)})
	}
}
