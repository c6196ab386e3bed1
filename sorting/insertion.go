package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmInsertion is the name stamped on insertion sort steps.
const AlgorithmInsertion = "Insertion Sort"

// Insertion returns the step sequence of an insertion sort over arr.
// Elements shift right only while strictly greater than the key, so equal
// keys keep their relative order (stable).
// Complexity: O(n^2), best O(n)
func Insertion[T constraints.Ordered](arr *seq.Array[T]) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		raw := stepEmitter(AlgorithmInsertion, arr, yield)
		emit := func(desc string, d Detail) bool {
			d.Pivot = NoIndex

			return raw(desc, d)
		}

		n := arr.Len()
		data := arr.ToSlice()

		for i := 1; i < n; i++ {
			key := data[i]

			if !emit(fmt.Sprintf("Picking up element %v at index %d", key, i), Detail{
				Sorted:  span(0, i),
				Current: []int{i},
			}) {
				return
			}

			// Shift the sorted prefix right until key's slot opens up.
			j := i - 1
			for j >= 0 && data[j] > key {
				if !emit(fmt.Sprintf("Comparing %v with %v", data[j], key), Detail{
					Comparing: []int{j, i},
					Sorted:    span(0, i),
					Current:   []int{j, i},
				}) {
					return
				}

				data[j+1] = data[j]
				_ = arr.Set(j+1, data[j+1])
				j--
			}

			data[j+1] = key
			_ = arr.Set(j+1, key)

			if !emit(fmt.Sprintf("Inserted %v at position %d", key, j+1), Detail{
				Sorted:  span(0, i+1),
				Current: []int{j + 1},
			}) {
				return
			}
		}

		emit("Array is now sorted", Detail{Sorted: span(0, n)})
	}
}
