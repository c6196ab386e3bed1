package sorting

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmMerge is the name stamped on merge sort steps.
const AlgorithmMerge = "Merge Sort"

// mergeSorter carries the run's working state through the recursion.
type mergeSorter[T constraints.Ordered] struct {
	arr  *seq.Array[T]
	data []T
	emit func(desc string, d Detail) bool
}

// Merge returns the step sequence of a merge sort over arr. Not in-place:
// each merge allocates left/right temporaries and writes the array element
// by element, so intermediate states are visible mid-merge. The <=
// comparison prefers the left half, keeping equal keys in order (stable).
// Complexity: O(n log n) time, O(n) extra space
func Merge[T constraints.Ordered](arr *seq.Array[T]) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		raw := stepEmitter(AlgorithmMerge, arr, yield)
		s := &mergeSorter[T]{
			arr:  arr,
			data: arr.ToSlice(),
			emit: func(desc string, d Detail) bool {
				d.Pivot = NoIndex

				return raw(desc, d)
			},
		}

		n := arr.Len()
		if !s.sort(0, n-1) {
			return
		}

		s.emit("Array is now sorted", Detail{Sorted: span(0, n)})
	}
}

// sort recursively splits [left..right]; false propagates a stopped drain.
func (s *mergeSorter[T]) sort(left, right int) bool {
	if left >= right {
		return true
	}
	mid := (left + right) / 2

	if !s.emit(fmt.Sprintf("Dividing array from index %d to %d at %d", left, right, mid), Detail{
		Current: span(left, right+1),
		Merge:   &MergeInfo{Left: left, Mid: mid, Right: right},
	}) {
		return false
	}

	return s.sort(left, mid) && s.sort(mid+1, right) && s.merge(left, mid, right)
}

// merge combines the sorted halves [left..mid] and [mid+1..right].
func (s *mergeSorter[T]) merge(left, mid, right int) bool {
	leftArr := slices.Clone(s.data[left : mid+1])
	rightArr := slices.Clone(s.data[mid+1 : right+1])
	info := &MergeInfo{Left: left, Mid: mid, Right: right}

	if !s.emit(fmt.Sprintf("Merging sorted halves [%d..%d] and [%d..%d]", left, mid, mid+1, right), Detail{
		Current: span(left, right+1),
		Merge:   info,
	}) {
		return false
	}

	i, j, k := 0, 0, left
	for i < len(leftArr) && j < len(rightArr) {
		if !s.emit(fmt.Sprintf("Comparing %v and %v", leftArr[i], rightArr[j]), Detail{
			Comparing: []int{left + i, mid + 1 + j},
			Current:   []int{k},
			Merge:     info,
		}) {
			return false
		}

		if leftArr[i] <= rightArr[j] {
			s.data[k] = leftArr[i]
			i++
		} else {
			s.data[k] = rightArr[j]
			j++
		}
		_ = s.arr.Set(k, s.data[k])

		if !s.emit(fmt.Sprintf("Placed %v at position %d", s.data[k], k), Detail{
			Sorted:  span(left, k+1),
			Current: []int{k},
			Merge:   info,
		}) {
			return false
		}
		k++
	}

	for i < len(leftArr) {
		s.data[k] = leftArr[i]
		_ = s.arr.Set(k, s.data[k])

		if !s.emit(fmt.Sprintf("Copying remaining element %v from left half", leftArr[i]), Detail{
			Sorted:  span(left, k+1),
			Current: []int{k},
			Merge:   info,
		}) {
			return false
		}
		i++
		k++
	}

	for j < len(rightArr) {
		s.data[k] = rightArr[j]
		_ = s.arr.Set(k, s.data[k])

		if !s.emit(fmt.Sprintf("Copying remaining element %v from right half", rightArr[j]), Detail{
			Sorted:  span(left, k+1),
			Current: []int{k},
			Merge:   info,
		}) {
			return false
		}
		j++
		k++
	}

	return s.emit(fmt.Sprintf("Completed merging range [%d..%d]", left, right), Detail{
		Sorted: span(left, right+1),
	})
}
