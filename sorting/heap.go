package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmHeap is the name stamped on heap sort steps.
const AlgorithmHeap = "Heap Sort"

// heapSorter carries the run's working state through the sift recursion.
type heapSorter[T constraints.Ordered] struct {
	arr  *seq.Array[T]
	data []T
	emit func(desc string, d Detail) bool
}

// Heap returns the step sequence of a heap sort over arr: build a max-heap
// in place bottom-up from the last non-leaf node, then repeatedly swap the
// root with the last unsorted element and re-heapify the shrunken heap.
// Root/last swaps make heap sort unstable.
// Complexity: O(n log n)
func Heap[T constraints.Ordered](arr *seq.Array[T]) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		raw := stepEmitter(AlgorithmHeap, arr, yield)
		s := &heapSorter[T]{
			arr:  arr,
			data: arr.ToSlice(),
			emit: func(desc string, d Detail) bool {
				d.Pivot = NoIndex

				return raw(desc, d)
			},
		}

		n := arr.Len()

		// 1. Build the max-heap.
		if !s.emit("Building max heap", Detail{Heap: &HeapInfo{Size: n, Root: NoIndex, Left: NoIndex, Right: NoIndex}}) {
			return
		}
		for i := n/2 - 1; i >= 0; i-- {
			if !s.heapify(n, i) {
				return
			}
		}
		if !s.emit("Max heap built successfully", Detail{Heap: &HeapInfo{Size: n, Root: NoIndex, Left: NoIndex, Right: NoIndex}}) {
			return
		}

		// 2. Extract the maximum one position at a time.
		for i := n - 1; i > 0; i-- {
			s.data[0], s.data[i] = s.data[i], s.data[0]
			_ = s.arr.Set(0, s.data[0])
			_ = s.arr.Set(i, s.data[i])

			if !s.emit(fmt.Sprintf("Moving root %v to sorted position %d", s.data[i], i), Detail{
				Swapping: []int{0, i},
				Sorted:   span(i, n),
				Current:  []int{0, i},
				Heap:     &HeapInfo{Size: i, Root: NoIndex, Left: NoIndex, Right: NoIndex},
			}) {
				return
			}

			if !s.heapify(i, 0) {
				return
			}
		}

		s.emit("Array is now sorted", Detail{Sorted: span(0, n)})
	}
}

// heapify sifts the subtree rooted at rootIdx down within heap [0, size).
func (s *heapSorter[T]) heapify(size, rootIdx int) bool {
	largest := rootIdx
	left := 2*rootIdx + 1
	right := 2*rootIdx + 2

	if left < size {
		if !s.emit(fmt.Sprintf("Comparing root %v with left child %v", s.data[rootIdx], s.data[left]), Detail{
			Comparing: []int{rootIdx, left},
			Current:   []int{rootIdx},
			Heap:      &HeapInfo{Size: size, Root: rootIdx, Left: left, Right: right},
		}) {
			return false
		}

		if s.data[left] > s.data[largest] {
			largest = left
		}
	}

	if right < size {
		if !s.emit(fmt.Sprintf("Comparing %v with right child %v", s.data[largest], s.data[right]), Detail{
			Comparing: []int{largest, right},
			Current:   []int{largest},
			Heap:      &HeapInfo{Size: size, Root: rootIdx, Left: left, Right: right},
		}) {
			return false
		}

		if s.data[right] > s.data[largest] {
			largest = right
		}
	}

	if largest == rootIdx {
		return s.emit(fmt.Sprintf("Heap property satisfied at index %d", rootIdx), Detail{
			Current: []int{rootIdx},
			Heap:    &HeapInfo{Size: size, Root: rootIdx, Left: NoIndex, Right: NoIndex},
		})
	}

	s.data[rootIdx], s.data[largest] = s.data[largest], s.data[rootIdx]
	_ = s.arr.Set(rootIdx, s.data[rootIdx])
	_ = s.arr.Set(largest, s.data[largest])

	if !s.emit(fmt.Sprintf("Swapping %v and %v to maintain heap property", s.data[rootIdx], s.data[largest]), Detail{
		Swapping: []int{rootIdx, largest},
		Current:  []int{rootIdx, largest},
		Heap:     &HeapInfo{Size: size, Root: rootIdx, Left: left, Right: right},
	}) {
		return false
	}

	return s.heapify(size, largest)
}
