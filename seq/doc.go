// Package seq provides the linear container primitives of ds-algo-lab:
// Array, List (singly linked), Stack, and Queue, all generic over ordered
// element types and instrumented with optional trace.Observer hooks.
//
// What
//
//   - Array[T]: dynamic array with bounds-checked positional access;
//     the substrate every sorting and searching algorithm operates on.
//   - List[T]: singly linked list with positional insert/delete.
//   - Stack[T]: LIFO over a slice (Push/Pop/Peek).
//   - Queue[T]: FIFO over a slice (Enqueue/Dequeue/Peek).
//
// Every successful mutation notifies the attached observer with the
// operation kind and a fresh Snapshot; snapshots are defensive copies, so
// no external aliasing of internal storage is possible.
//
// Errors
//
//   - ErrIndexOutOfRange  index outside [0, Len()) — or [0, Len()] for
//     Insert. The container is never partially mutated on a bounds error.
//   - ErrEmptyStack       Pop or Peek on an empty Stack.
//   - ErrEmptyQueue       Dequeue or Peek on an empty Queue.
//
// Not-found lookups (Search) return -1, never an error.
//
// Concurrency
//
//	Containers are single-owner and unsynchronized: one logical caller
//	mutates a container at a time. Callers needing cross-goroutine access
//	must add their own exclusion.
package seq
