package sorting

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// ErrUnknownAlgorithm is returned when a registry name does not resolve.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm is a sort constructor: given an array it returns a fresh,
// lazily produced step sequence that sorts the array as it is drained.
type Algorithm[T constraints.Ordered] func(arr *seq.Array[T]) trace.Sequence[Detail]

// Registry names.
const (
	NameBubble    = "bubble_sort"
	NameInsertion = "insertion_sort"
	NameSelection = "selection_sort"
	NameMerge     = "merge_sort"
	NameQuick     = "quick_sort"
	NameHeap      = "heap_sort"
)

// Lookup resolves a registry name to its implementation.
func Lookup[T constraints.Ordered](name string) (Algorithm[T], bool) {
	switch name {
	case NameBubble:
		return Bubble[T], true
	case NameInsertion:
		return Insertion[T], true
	case NameSelection:
		return Selection[T], true
	case NameMerge:
		return Merge[T], true
	case NameQuick:
		return Quick[T], true
	case NameHeap:
		return Heap[T], true
	default:
		return nil, false
	}
}

// Names returns the registry names in stable order.
func Names() []string {
	return []string{NameBubble, NameInsertion, NameSelection, NameMerge, NameQuick, NameHeap}
}

// Execute resolves name, sorts arr in place, and drains the sequence into
// an ordered step slice. When observe is true, each step is also forwarded
// live to the array's attached observer.
// Returns ErrUnknownAlgorithm for unregistered names.
func Execute[T constraints.Ordered](name string, arr *seq.Array[T], observe bool) ([]trace.Step[Detail], error) {
	alg, ok := Lookup[T](name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	var obs trace.Observer
	if observe && arr != nil {
		obs = arr.Observer()
	}

	return trace.Collect(alg(arr), obs), nil
}
