// Package trace: core protocol types (Kind, Observer, Snapshot, Step).
package trace

// Kind labels an observable event emitted by a container or an algorithm.
type Kind string

// Event kinds emitted by containers on mutation and by Collect per step.
const (
	// KindInit is emitted once when a container is constructed.
	KindInit Kind = "init"

	// KindAppend is emitted when a value is appended to a linear container.
	KindAppend Kind = "append"

	// KindInsert is emitted on positional or keyed insertion.
	KindInsert Kind = "insert"

	// KindUpdate is emitted when an existing element or key is overwritten.
	KindUpdate Kind = "update"

	// KindDelete is emitted on removal of an element, key, or tree value.
	KindDelete Kind = "delete"

	// KindSearch is emitted after a lookup, found or not.
	KindSearch Kind = "search"

	// KindPush and KindPop are stack mutations.
	KindPush Kind = "push"
	KindPop  Kind = "pop"

	// KindEnqueue and KindDequeue are queue mutations.
	KindEnqueue Kind = "enqueue"
	KindDequeue Kind = "dequeue"

	// KindResize is emitted when a hash table doubles its capacity.
	KindResize Kind = "resize"

	// KindRotate is emitted for each single AVL rotation.
	KindRotate Kind = "rotate"

	// KindAddVertex, KindRemoveVertex, KindAddEdge, KindRemoveEdge are
	// graph mutations.
	KindAddVertex    Kind = "add_vertex"
	KindRemoveVertex Kind = "remove_vertex"
	KindAddEdge      Kind = "add_edge"
	KindRemoveEdge   Kind = "remove_edge"

	// KindStep wraps an algorithm Step forwarded live by Collect.
	KindStep Kind = "step"
)

// Observer receives events from a container or a draining Sequence.
// Implementations must not retain or mutate payload internals; snapshots
// handed to them are already defensive copies.
type Observer interface {
	OnEvent(kind Kind, payload any)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(kind Kind, payload any)

// OnEvent calls f(kind, payload).
func (f ObserverFunc) OnEvent(kind Kind, payload any) { f(kind, payload) }

// Snapshot is an immutable, type-tagged view of a container's contents at a
// single moment. Concrete snapshot types live in the container packages
// (seq.ArraySnapshot, tree.TreeSnapshot, hashtable.TableSnapshot, ...).
type Snapshot interface {
	// Kind returns the structure tag, e.g. "array" or "avl_tree".
	Kind() string

	// Size returns the element count captured by this snapshot.
	Size() int
}

// Step is one record of an algorithm's execution trace. Once emitted it is
// never mutated; the Structure snapshot stays valid regardless of later
// changes to the live container.
type Step[D any] struct {
	// Algorithm is the human-readable algorithm name, e.g. "Bubble Sort".
	Algorithm string

	// Number increases monotonically from 1 within one run.
	Number int

	// Description narrates what happened at this step.
	Description string

	// Structure captures the container at the moment of emission.
	Structure Snapshot

	// Detail carries the algorithm-family payload (sorting.Detail,
	// searching.Detail, traverse.Detail, ...).
	Detail D
}
