// Package searching: phases, the Detail payload, and shared step plumbing.
package searching

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// ErrUnknownAlgorithm is returned when a registry name does not resolve.
var ErrUnknownAlgorithm = errors.New("searching: unknown algorithm")

// NoIndex marks an index field as not applicable to a step.
const NoIndex = -1

// Phase tags which regime of a search emitted a step. Only exponential
// search moves between phases; the other searches leave Phase empty.
type Phase string

const (
	PhaseRangeFinding Phase = "exponential_range_finding"
	PhaseBinarySearch Phase = "binary_search"
	PhaseFound        Phase = "found"
	PhaseNotFound     Phase = "not_found"
)

// Detail is the search-specific payload of a trace.Step. Index fields
// default to NoIndex when a step has no value for them.
type Detail[T constraints.Ordered] struct {
	// Target is the value being searched for.
	Target T

	// CurrentIndex is the index probed by this step.
	CurrentIndex int

	// FoundIndex is the target's index once located.
	FoundIndex int

	// Left and Right bound the live search window, inclusive.
	Left  int
	Right int

	// Mid is the probe point of binary search; ternary search uses Mid
	// and Mid2 for its one-third and two-thirds cut points.
	Mid  int
	Mid2 int

	// RangeStart and RangeEnd bracket the range located by exponential
	// search's doubling phase.
	RangeStart int
	RangeEnd   int

	// Phase is the regime of this step during exponential search.
	Phase Phase
}

// newDetail returns a Detail with every index field set to NoIndex.
func newDetail[T constraints.Ordered](target T) Detail[T] {
	return Detail[T]{
		Target:       target,
		CurrentIndex: NoIndex,
		FoundIndex:   NoIndex,
		Left:         NoIndex,
		Right:        NoIndex,
		Mid:          NoIndex,
		Mid2:         NoIndex,
		RangeStart:   NoIndex,
		RangeEnd:     NoIndex,
	}
}

// stepEmitter returns a closure that stamps name, monotonic numbers, and
// a fresh array snapshot onto each emitted step.
func stepEmitter[T constraints.Ordered](name string, arr *seq.Array[T], yield func(trace.Step[Detail[T]]) bool) func(desc string, d Detail[T]) bool {
	var num trace.Counter

	return func(desc string, d Detail[T]) bool {
		return yield(trace.Step[Detail[T]]{
			Algorithm:   name,
			Number:      num.Next(),
			Description: desc,
			Structure:   arr.Snapshot(),
			Detail:      d,
		})
	}
}
