package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmQuick is the name stamped on quick sort steps.
const AlgorithmQuick = "Quick Sort"

// quickSorter carries the run's working state through the recursion.
type quickSorter[T constraints.Ordered] struct {
	arr  *seq.Array[T]
	data []T
	emit func(desc string, d Detail) bool
}

// Quick returns the step sequence of a quick sort over arr. The pivot is
// the last element of each partition range; partitioning is Lomuto-style,
// with a single boundary index tracking elements <= pivot. Long-range
// swaps make quick sort unstable.
// Complexity: O(n log n) average, O(n^2) worst
func Quick[T constraints.Ordered](arr *seq.Array[T]) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		s := &quickSorter[T]{
			arr:  arr,
			data: arr.ToSlice(),
			emit: stepEmitter(AlgorithmQuick, arr, yield),
		}

		n := arr.Len()
		if !s.sort(0, n-1) {
			return
		}

		s.emit("Array is now sorted", Detail{Sorted: span(0, n), Pivot: NoIndex})
	}
}

// sort recursively partitions [low..high]; false propagates a stopped drain.
func (s *quickSorter[T]) sort(low, high int) bool {
	if low >= high {
		return true
	}

	pivotIdx, ok := s.partition(low, high)
	if !ok {
		return false
	}

	return s.sort(low, pivotIdx-1) && s.sort(pivotIdx+1, high)
}

// partition places the last element of [low..high] at its final index and
// returns that index. Lomuto scheme: i tracks the boundary of elements
// <= pivot.
func (s *quickSorter[T]) partition(low, high int) (int, bool) {
	pivot := s.data[high]

	if !s.emit(fmt.Sprintf("Selecting pivot: %v at index %d", pivot, high), Detail{
		Current: span(low, high+1),
		Pivot:   high,
	}) {
		return 0, false
	}

	i := low - 1
	for j := low; j < high; j++ {
		if !s.emit(fmt.Sprintf("Comparing %v with pivot %v", s.data[j], pivot), Detail{
			Comparing: []int{j, high},
			Current:   []int{j},
			Pivot:     high,
		}) {
			return 0, false
		}

		if s.data[j] <= pivot {
			i++
			if i != j {
				s.data[i], s.data[j] = s.data[j], s.data[i]
				_ = s.arr.Set(i, s.data[i])
				_ = s.arr.Set(j, s.data[j])

				if !s.emit(fmt.Sprintf("Swapping %v and %v", s.data[i], s.data[j]), Detail{
					Comparing: []int{i, j},
					Swapping:  []int{i, j},
					Current:   []int{i, j},
					Pivot:     high,
				}) {
					return 0, false
				}
			} else {
				if !s.emit(fmt.Sprintf("%v is already in correct position", s.data[j]), Detail{
					Current: []int{j},
					Pivot:   high,
				}) {
					return 0, false
				}
			}
		}
	}

	// Drop the pivot onto the boundary.
	if i+1 != high {
		s.data[i+1], s.data[high] = s.data[high], s.data[i+1]
		_ = s.arr.Set(i+1, s.data[i+1])
		_ = s.arr.Set(high, s.data[high])

		if !s.emit(fmt.Sprintf("Placing pivot %v at final position %d", pivot, i+1), Detail{
			Swapping: []int{i + 1, high},
			Sorted:   []int{i + 1},
			Current:  []int{i + 1},
			Pivot:    i + 1,
		}) {
			return 0, false
		}
	} else {
		if !s.emit(fmt.Sprintf("Pivot %v is already in correct position", pivot), Detail{
			Sorted:  []int{high},
			Current: []int{high},
			Pivot:   high,
		}) {
			return 0, false
		}
	}

	return i + 1, true
}
