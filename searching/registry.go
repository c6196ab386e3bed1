package searching

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Algorithm is a search constructor: given an array and a target it
// returns a fresh, lazily produced step sequence.
type Algorithm[T constraints.Ordered] func(arr *seq.Array[T], target T) trace.Sequence[Detail[T]]

// Registry names.
const (
	NameLinear      = "linear_search"
	NameBinary      = "binary_search"
	NameTernary     = "ternary_search"
	NameExponential = "exponential_search"
)

// Lookup resolves a registry name to its implementation.
func Lookup[T constraints.Ordered](name string) (Algorithm[T], bool) {
	switch name {
	case NameLinear:
		return Linear[T], true
	case NameBinary:
		return Binary[T], true
	case NameTernary:
		return Ternary[T], true
	case NameExponential:
		return Exponential[T], true
	default:
		return nil, false
	}
}

// Names returns the registry names in stable order.
func Names() []string {
	return []string{NameLinear, NameBinary, NameTernary, NameExponential}
}

// Execute resolves name, searches arr for target, and drains the sequence
// into an ordered step slice. When observe is true, each step is also
// forwarded live to the array's attached observer.
// Returns ErrUnknownAlgorithm for unregistered names.
func Execute[T constraints.Ordered](name string, arr *seq.Array[T], target T, observe bool) ([]trace.Step[Detail[T]], error) {
	alg, ok := Lookup[T](name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	var obs trace.Observer
	if observe && arr != nil {
		obs = arr.Observer()
	}

	return trace.Collect(alg(arr, target), obs), nil
}
