// Package trace defines the step-instrumentation protocol shared by every
// container and algorithm in ds-algo-lab.
//
// What
//
//   - Step[D]: one immutable unit of an algorithm's execution trace, carrying
//     a monotonic step number, a human-readable description, a type-tagged
//     Snapshot of the container at the moment of emission, and a typed
//     algorithm-specific Detail payload.
//   - Sequence[D]: a lazy, finite producer of Steps. A fresh call to an
//     algorithm constructor yields a fresh Sequence; a Sequence cannot be
//     restarted mid-drain. Compatible with Go 1.23 range-over-func.
//   - Collect: drains a Sequence into an ordered slice, optionally forwarding
//     each Step synchronously to an Observer the instant it is produced.
//   - Observer: the minimal capability interface containers hold to notify an
//     external listener (renderer, grader, metrics collector) of state
//     changes without depending on the listener's type.
//   - Snapshot: the immutable, defensive-copy view of a container handed to
//     renderers and embedded in Steps.
//
// Why
//
//	The ordered Step slice returned by Collect is the complete, replayable
//	history of one algorithm run: a consumer can reconstruct every
//	intermediate container state purely from the sequence, pause on any
//	step, or replay it long after the live container has moved on.
//
// Concurrency
//
//	Single-threaded and pull-based: step production is driven entirely by
//	the consuming call stack. Snapshots are copies, so holding old Steps is
//	always safe against later mutation of the live container.
//
// Usage
//
//	steps := trace.Collect(sorting.Bubble(arr), nil)
//	for _, s := range steps {
//	    fmt.Println(s.Number, s.Description)
//	}
package trace
