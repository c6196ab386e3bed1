package hashtable

import (
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Table is a chaining hash table with string keys and generic values.
type Table[V any] struct {
	capacity  int
	threshold float64
	buckets   [][]Entry[V]
	size      int
	obs       trace.Observer
}

// New builds an empty Table, applying any number of functional Options.
// Returns ErrOptionViolation for invalid options.
func New[V any](opts ...Option) (*Table[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Table[V]{
		capacity:  o.Capacity,
		threshold: o.LoadFactor,
		buckets:   make([][]Entry[V], o.Capacity),
	}, nil
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (t *Table[V]) Attach(obs trace.Observer) {
	t.obs = obs
	t.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (t *Table[V]) Observer() trace.Observer { return t.obs }

func (t *Table[V]) notify(kind trace.Kind) {
	if t.obs != nil {
		t.obs.OnEvent(kind, t.Snapshot())
	}
}

// bucketIndex maps key to a bucket under the current capacity.
func (t *Table[V]) bucketIndex(key string) int {
	return int(xxhash.Sum64String(key) % uint64(t.capacity))
}

// Insert stores value under key, overwriting in place if the key exists.
// If the insert pushes the load factor above the threshold, the table
// doubles its capacity and rehashes every entry before returning. The
// insert or update event fires before the resize check, so its snapshot
// may show a load factor above the threshold; the resize event with the
// settled load factor follows within the same call.
// Complexity: expected O(1), O(n) on resize
func (t *Table[V]) Insert(key string, value V) {
	if t.set(key, value) {
		t.notify(trace.KindInsert)
	} else {
		t.notify(trace.KindUpdate)
	}

	if t.loadFactor() > t.threshold {
		t.resize()
	}
}

// set places the pair without the resize check; reports whether the key
// was new.
func (t *Table[V]) set(key string, value V) bool {
	idx := t.bucketIndex(key)
	bucket := t.buckets[idx]

	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Value = value

			return false
		}
	}

	t.buckets[idx] = append(bucket, Entry[V]{Key: key, Value: value})
	t.size++

	return true
}

// resize doubles capacity and rehashes every entry under the new modulus.
func (t *Table[V]) resize() {
	old := t.buckets

	t.capacity *= 2
	t.buckets = make([][]Entry[V], t.capacity)
	t.size = 0

	for _, bucket := range old {
		for _, e := range bucket {
			t.set(e.Key, e.Value)
		}
	}

	t.notify(trace.KindResize)
}

// Get returns the value stored under key, or false if absent. Never
// triggers a resize.
// Complexity: expected O(1)
func (t *Table[V]) Get(key string) (V, bool) {
	var zero V
	for _, e := range t.buckets[t.bucketIndex(key)] {
		if e.Key == key {
			return e.Value, true
		}
	}

	return zero, false
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// Delete removes key, reporting whether it was present. Never triggers a
// resize.
// Complexity: expected O(1)
func (t *Table[V]) Delete(key string) bool {
	idx := t.bucketIndex(key)
	bucket := t.buckets[idx]

	for i := range bucket {
		if bucket[i].Key == key {
			t.buckets[idx] = slices.Delete(bucket, i, i+1)
			t.size--
			t.notify(trace.KindDelete)

			return true
		}
	}

	return false
}

// Len returns the entry count.
func (t *Table[V]) Len() int { return t.size }

// Capacity returns the current bucket count.
func (t *Table[V]) Capacity() int { return t.capacity }

// LoadFactor returns size/capacity.
func (t *Table[V]) LoadFactor() float64 { return t.loadFactor() }

func (t *Table[V]) loadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

// Snapshot returns an immutable copy of every bucket and entry.
func (t *Table[V]) Snapshot() trace.Snapshot {
	buckets := make([]BucketSnapshot[V], len(t.buckets))
	for i, bucket := range t.buckets {
		buckets[i] = BucketSnapshot[V]{Index: i, Entries: slices.Clone(bucket)}
	}

	return TableSnapshot[V]{
		Capacity:   t.capacity,
		Count:      t.size,
		LoadFactor: t.loadFactor(),
		Buckets:    buckets,
	}
}
