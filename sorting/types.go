// Package sorting: the Detail payload and shared step plumbing.
package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// NoIndex marks an index field as not applicable to a step.
const NoIndex = -1

// Detail is the sorting-specific payload of a trace.Step. Index slices are
// fresh per step and safe to retain.
type Detail struct {
	// Comparing holds the indices whose values are being compared.
	Comparing []int

	// Swapping holds the indices being exchanged on swap steps.
	Swapping []int

	// Sorted holds the indices already in their final position.
	Sorted []int

	// Current highlights the indices the algorithm is focused on.
	Current []int

	// Pivot is the pivot index during quick sort; NoIndex otherwise.
	Pivot int

	// Merge describes the active merge range during merge sort.
	Merge *MergeInfo

	// Heap describes the active heap region during heap sort.
	Heap *HeapInfo
}

// MergeInfo is the active merge range [Left..Mid] + [Mid+1..Right].
type MergeInfo struct {
	Left  int
	Mid   int
	Right int
}

// HeapInfo is the live heap region during heap sort. Root, Left, and
// Right are the sift-down frame; NoIndex when outside a sift.
type HeapInfo struct {
	Size  int
	Root  int
	Left  int
	Right int
}

// stepEmitter returns a closure that stamps name, monotonic numbers, and
// a fresh array snapshot onto each emitted step.
func stepEmitter[T constraints.Ordered](name string, arr *seq.Array[T], yield func(trace.Step[Detail]) bool) func(desc string, d Detail) bool {
	var num trace.Counter

	return func(desc string, d Detail) bool {
		return yield(trace.Step[Detail]{
			Algorithm:   name,
			Number:      num.Next(),
			Description: desc,
			Structure:   arr.Snapshot(),
			Detail:      d,
		})
	}
}

// span returns the indices [from, to) as a fresh slice.
func span(from, to int) []int {
	if to < from {
		to = from
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}
