// Package hashtable: options, sentinel errors, and snapshot types.
package hashtable

import (
	"errors"
	"fmt"
)

// Defaults applied by New when no options are supplied.
const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("hashtable: invalid option supplied")

// Option configures a Table via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Table construction parameters.
type Options struct {
	// Capacity is the initial bucket count.
	Capacity int

	// LoadFactor is the size/capacity threshold that triggers doubling.
	LoadFactor float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns capacity 16 and load factor threshold 0.75.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity, LoadFactor: DefaultLoadFactor}
}

// WithCapacity sets the initial bucket count; n must be positive.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: capacity must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Capacity = n
	}
}

// WithLoadFactor sets the resize threshold; f must be in (0, 1].
func WithLoadFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 || f > 1 {
			o.err = fmt.Errorf("%w: load factor must be in (0, 1] (%g)", ErrOptionViolation, f)

			return
		}
		o.LoadFactor = f
	}
}

// Entry is one key/value pair stored in a bucket.
type Entry[V any] struct {
	Key   string
	Value V
}

// BucketSnapshot is the immutable view of one bucket.
type BucketSnapshot[V any] struct {
	Index   int
	Entries []Entry[V]
}

// TableSnapshot is the immutable view of a whole Table.
type TableSnapshot[V any] struct {
	Capacity   int
	Count      int
	LoadFactor float64
	Buckets    []BucketSnapshot[V]
}

// Kind returns "hash_table".
func (TableSnapshot[V]) Kind() string { return "hash_table" }

// Size returns the captured entry count.
func (s TableSnapshot[V]) Size() int { return s.Count }
